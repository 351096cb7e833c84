package memdom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/weft-ui/weft/pkg/dom"
)

// OpKind identifies a recorded mutation.
type OpKind uint8

const (
	OpCreateElement OpKind = iota
	OpCreateText
	OpSetAttr
	OpRemoveAttr
	OpListen
	OpUnlisten
	OpAppendChild
	OpInsertChild
	OpReplaceChild
	OpRemoveChild
)

// String returns the string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpListen:
		return "Listen"
	case OpUnlisten:
		return "Unlisten"
	case OpAppendChild:
		return "AppendChild"
	case OpInsertChild:
		return "InsertChild"
	case OpReplaceChild:
		return "ReplaceChild"
	case OpRemoveChild:
		return "RemoveChild"
	default:
		return "Unknown"
	}
}

// Op is one recorded mutation against the in-memory tree.
type Op struct {
	Kind   OpKind
	Target string // ID of the node the op was issued against
	Key    string // Attribute key or event name
	Value  string // Attribute value or text content
	Index  int    // Child position for Insert/Replace/Remove
	Child  string // ID of the child node, when the op has one
}

// Doc is an in-memory dom.Document that records every mutation issued
// against it. It is the deterministic render target used by the engine
// tests and by anything that wants to reconcile without a browser.
//
// Not safe for concurrent use; the engine's single-call ownership model
// makes that the caller's problem, same as a real document.
type Doc struct {
	nextID int
	ops    []Op
}

// NewDoc creates an empty in-memory document.
func NewDoc() *Doc {
	return &Doc{}
}

// CreateElement implements dom.Document.
func (d *Doc) CreateElement(tag string) dom.Node {
	n := d.newNode()
	n.tag = tag
	d.record(Op{Kind: OpCreateElement, Target: n.id, Value: tag})
	return n
}

// CreateTextNode implements dom.Document.
func (d *Doc) CreateTextNode(text string) dom.Node {
	n := d.newNode()
	n.text = text
	n.isText = true
	d.record(Op{Kind: OpCreateText, Target: n.id, Value: text})
	return n
}

// Body returns a detached container element to reconcile under,
// without recording its creation in the op log.
func (d *Doc) Body() *Node {
	n := d.newNode()
	n.tag = "body"
	return n
}

// Ops returns the mutations recorded since the last ResetOps.
func (d *Doc) Ops() []Op {
	return d.ops
}

// ResetOps clears the op log.
func (d *Doc) ResetOps() {
	d.ops = nil
}

// CountOps returns how many recorded ops are of the given kinds. With
// no kinds it returns the total op count.
func (d *Doc) CountOps(kinds ...OpKind) int {
	if len(kinds) == 0 {
		return len(d.ops)
	}
	count := 0
	for _, op := range d.ops {
		for _, k := range kinds {
			if op.Kind == k {
				count++
			}
		}
	}
	return count
}

func (d *Doc) newNode() *Node {
	d.nextID++
	return &Node{
		id:       fmt.Sprintf("n%d", d.nextID),
		doc:      d,
		attrs:    make(map[string]string),
		handlers: make(map[string]any),
	}
}

func (d *Doc) record(op Op) {
	d.ops = append(d.ops, op)
}

// Node is an in-memory live node.
type Node struct {
	id       string
	doc      *Doc
	tag      string
	text     string
	isText   bool
	attrs    map[string]string
	handlers map[string]any
	children []*Node
}

// ID returns the node's document-unique identifier.
func (n *Node) ID() string { return n.id }

// Tag returns the element tag, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the text content of a text node.
func (n *Node) Text() string { return n.text }

// IsText returns true for text nodes.
func (n *Node) IsText() bool { return n.isText }

// Attr returns the value of a named attribute and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// Handler returns the subscribed handler for a named event, or nil.
func (n *Node) Handler(event string) any {
	return n.handlers[event]
}

// SetAttribute implements dom.Node.
func (n *Node) SetAttribute(key, value string) {
	n.attrs[key] = value
	n.doc.record(Op{Kind: OpSetAttr, Target: n.id, Key: key, Value: value})
}

// RemoveAttribute implements dom.Node.
func (n *Node) RemoveAttribute(key string) {
	delete(n.attrs, key)
	n.doc.record(Op{Kind: OpRemoveAttr, Target: n.id, Key: key})
}

// AddEventListener implements dom.Node.
func (n *Node) AddEventListener(event string, handler any) {
	n.handlers[event] = handler
	n.doc.record(Op{Kind: OpListen, Target: n.id, Key: event})
}

// RemoveEventListener implements dom.Node.
func (n *Node) RemoveEventListener(event string) {
	delete(n.handlers, event)
	n.doc.record(Op{Kind: OpUnlisten, Target: n.id, Key: event})
}

// AppendChild implements dom.Node.
func (n *Node) AppendChild(child dom.Node) {
	c := child.(*Node)
	n.children = append(n.children, c)
	n.doc.record(Op{Kind: OpAppendChild, Target: n.id, Child: c.id})
}

// InsertChildAt implements dom.Node.
func (n *Node) InsertChildAt(index int, child dom.Node) {
	c := child.(*Node)
	if index < 0 {
		index = 0
	}
	if index >= len(n.children) {
		n.children = append(n.children, c)
	} else {
		n.children = append(n.children, nil)
		copy(n.children[index+1:], n.children[index:])
		n.children[index] = c
	}
	n.doc.record(Op{Kind: OpInsertChild, Target: n.id, Index: index, Child: c.id})
}

// ReplaceChildAt implements dom.Node.
func (n *Node) ReplaceChildAt(index int, child dom.Node) {
	c := child.(*Node)
	if index < 0 || index >= len(n.children) {
		panic(fmt.Sprintf("memdom: replace child %d of %d", index, len(n.children)))
	}
	n.children[index] = c
	n.doc.record(Op{Kind: OpReplaceChild, Target: n.id, Index: index, Child: c.id})
}

// RemoveChildAt implements dom.Node.
func (n *Node) RemoveChildAt(index int) {
	if index < 0 || index >= len(n.children) {
		panic(fmt.Sprintf("memdom: remove child %d of %d", index, len(n.children)))
	}
	n.children = append(n.children[:index], n.children[index+1:]...)
	n.doc.record(Op{Kind: OpRemoveChild, Target: n.id, Index: index})
}

// ChildAt implements dom.Node.
func (n *Node) ChildAt(index int) dom.Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// ChildCount implements dom.Node.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Dispatch fires the handler subscribed for the given event on this
// node, if any, and reports whether one was invoked.
func (n *Node) Dispatch(event, value string) bool {
	handler, ok := n.handlers[event]
	if !ok {
		return false
	}
	dom.Fire(handler, dom.Event{Type: event, Target: n, Value: value})
	return true
}

// String renders the subtree as HTML-ish markup for structural
// assertions in tests. Attributes are emitted in sorted order; event
// handlers are not rendered.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.isText {
		b.WriteString(n.text)
		return
	}
	b.WriteByte('<')
	b.WriteString(n.tag)
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%q", k, n.attrs[k])
	}
	b.WriteByte('>')
	for _, c := range n.children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}
