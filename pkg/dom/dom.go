package dom

// Document creates live nodes. It is the factory half of the live-tree
// capability; Node is the mutation half.
type Document interface {
	// CreateElement creates a detached element node with the given tag.
	CreateElement(tag string) Node

	// CreateTextNode creates a detached text node holding the given
	// content. Text nodes have no attributes and no children.
	CreateTextNode(text string) Node
}

// Node is a mutable node in the externally-owned live tree. The engine
// only issues commands against nodes; it never retains a reference to
// one beyond the reconcile call that created or touched it.
//
// Child positions are zero-based. Implementations decide how to surface
// invalid tags, attributes, or out-of-range indices; the engine neither
// validates nor recovers (typically a panic in test implementations, a
// logged protocol error in remote ones).
type Node interface {
	// SetAttribute sets a named attribute.
	SetAttribute(key, value string)

	// RemoveAttribute removes a named attribute. Removing an absent
	// attribute is a no-op.
	RemoveAttribute(key string)

	// AddEventListener subscribes a handler to a named event. The
	// handler must be invocable: func(Event) or func(). Subscribing a
	// second handler for the same event replaces the first.
	AddEventListener(event string, handler any)

	// RemoveEventListener drops the handler for a named event.
	RemoveEventListener(event string)

	// AppendChild appends a child as the new last child.
	AppendChild(child Node)

	// InsertChildAt inserts a child at the given position, shifting
	// later siblings right. An index at or past the child count
	// appends.
	InsertChildAt(index int, child Node)

	// ReplaceChildAt replaces the child at the given position. The
	// detached child follows the RemoveChildAt lifetime contract.
	ReplaceChildAt(index int, child Node)

	// RemoveChildAt removes the child at the given position. The
	// detached subtree stays usable until the reconcile pass that
	// removed it completes: re-attaching it during the same pass (as a
	// keyed reorder does) must preserve it, and implementations that
	// own node lifetime may reclaim only subtrees still detached when
	// the pass's output is finalized.
	RemoveChildAt(index int)

	// ChildAt returns the child at the given position, or nil when out
	// of range.
	ChildAt(index int) Node

	// ChildCount returns the number of children.
	ChildCount() int
}

// Event is delivered to subscribed handlers when an event fires on a
// live node.
type Event struct {
	// Type is the live event name ("click", "input", ...).
	Type string

	// Target is the node the event fired on.
	Target Node

	// Value carries the event payload, e.g. an input's current value.
	Value string
}

// Fire invokes a subscribed handler with the given event. It accepts
// the two invocable handler shapes and ignores anything else.
func Fire(handler any, ev Event) {
	switch fn := handler.(type) {
	case func(Event):
		fn(ev)
	case func():
		fn()
	}
}
