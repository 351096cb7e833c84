package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is an immutable description of a node in the virtual tree.
//
// A VNode is never mutated after construction; reconciliation only
// mutates the live tree it is applied to. Children order is
// significant: position is the sole correlation key between an old and
// new tree during unkeyed reconciliation.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes, in render order
	Text     string   // For KindText
}

// Props holds attributes and event handlers.
type Props map[string]any

// New constructs an element VNode from a tag, a property map, and an
// ordered child list. A nil props map becomes an empty map. Children
// are stored exactly as given: nil entries are preserved and no
// flattening or filtering happens, so the caller must supply exactly
// the intended child list. The reconciler treats a nil child as an
// absent position.
func New(tag string, props Props, children ...*VNode) *VNode {
	if props == nil {
		props = make(Props)
	}
	return &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: children,
	}
}

// Text creates a text node. Text nodes carry no props and no children.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// IsText returns true for text nodes. A nil VNode is not a text node.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}

// IsInteractive returns true if this node has event handler props.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsEventProp(key) {
			return true
		}
	}
	return false
}

// Key returns the reconciliation key from the node's props, or ""
// when the node is unkeyed. Only string-valued keys participate in
// keyed child matching.
func (v *VNode) Key() string {
	if v == nil || v.Props == nil {
		return ""
	}
	if key, ok := v.Props["key"].(string); ok {
		return key
	}
	return ""
}

// ReservedProp is the framework-internal property name. It is carried
// on a VNode but never rendered as an attribute.
const ReservedProp = "forceUpdate"

// ClassProp is the property name that renders as the "class" attribute.
const ClassProp = "className"

// IsEventProp returns true if the property name denotes an event
// subscription, i.e. it starts with "on". Event props are subscribed
// at materialization time and never rendered as attributes.
func IsEventProp(name string) bool {
	return strings.HasPrefix(name, "on")
}

// IsReservedProp returns true for properties that must not be rendered
// as attributes: event props and the forceUpdate marker.
func IsReservedProp(name string) bool {
	return IsEventProp(name) || name == ReservedProp
}

// EventName derives the live-tree event name from an event property
// name by stripping the "on" prefix and lower-casing the remainder
// (onClick -> click). Callers must only pass names for which
// IsEventProp is true.
func EventName(prop string) string {
	return strings.ToLower(prop[2:])
}

// AttrName maps a property name to the attribute name it renders as.
// className maps to class; every other property is identity-named.
func AttrName(prop string) string {
	if prop == ClassProp {
		return "class"
	}
	return prop
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onClick", "onInput", etc.
	Handler any    // Function to call
}
