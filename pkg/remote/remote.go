package remote

import (
	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/protocol"
)

// Doc is a dom.Document whose live tree lives on the other side of a
// wire. Every mutation the engine issues becomes a protocol.Op in an
// internal buffer; the transport drains the buffer with Flush after
// each reconcile pass and ships it as one frame.
//
// The server keeps a skeletal mirror of the remote tree (IDs, child
// order, and event handlers) so that position-addressed mutations and
// inbound events can be resolved. Attribute values are not mirrored;
// the remote side owns them.
//
// Doc is not safe for concurrent use. The session that owns it
// serializes reconcile passes and event dispatch, mirroring the
// engine's single-caller ownership model.
type Doc struct {
	nextID  uint64
	ops     []protocol.Op
	nodes   map[uint64]*Node
	orphans map[uint64]*Node
}

// NewDoc creates a remote document. Node ID 1 is reserved for the
// client's mount point, obtainable via Root.
func NewDoc() *Doc {
	d := &Doc{
		nodes:   make(map[uint64]*Node),
		orphans: make(map[uint64]*Node),
	}
	root := d.newNode()
	root.tag = "root"
	return d
}

// Root returns the mount-point node the client attaches to.
func (d *Doc) Root() *Node {
	return d.nodes[1]
}

// CreateElement implements dom.Document.
func (d *Doc) CreateElement(tag string) dom.Node {
	n := d.newNode()
	n.tag = tag
	d.push(protocol.Op{Code: protocol.OpCreateElement, Node: n.id, Value: tag})
	return n
}

// CreateTextNode implements dom.Document.
func (d *Doc) CreateTextNode(text string) dom.Node {
	n := d.newNode()
	n.isText = true
	d.push(protocol.Op{Code: protocol.OpCreateText, Node: n.id, Value: text})
	return n
}

// Flush drains and returns the ops buffered since the last Flush.
// Subtrees detached during the pass and not re-attached are reclaimed
// here, appending one OpFreeNode per node, so a detached child that
// was re-appended (a keyed reorder) survives with its IDs and
// handlers intact.
func (d *Doc) Flush() []protocol.Op {
	for id, n := range d.orphans {
		delete(d.orphans, id)
		d.free(n)
	}
	ops := d.ops
	d.ops = nil
	return ops
}

// Pending returns the number of buffered ops.
func (d *Doc) Pending() int {
	return len(d.ops)
}

// HandleEvent routes an inbound client event to the handler subscribed
// on the target node. It reports whether a handler fired; an unknown
// node or unsubscribed event is not an error, just a stale client.
func (d *Doc) HandleEvent(ev *protocol.Event) bool {
	n, ok := d.nodes[ev.Node]
	if !ok {
		return false
	}
	handler, ok := n.handlers[ev.Type]
	if !ok {
		return false
	}
	dom.Fire(handler, dom.Event{Type: ev.Type, Target: n, Value: ev.Value})
	return true
}

func (d *Doc) newNode() *Node {
	d.nextID++
	n := &Node{id: d.nextID, doc: d, handlers: make(map[string]any)}
	d.nodes[n.id] = n
	return n
}

func (d *Doc) push(op protocol.Op) {
	d.ops = append(d.ops, op)
}

// orphan marks a detached subtree root for reclamation at the next
// Flush unless it is re-attached before then.
func (d *Doc) orphan(n *Node) {
	d.orphans[n.id] = n
}

// adopt cancels a pending reclamation when a detached node is
// re-attached within the same pass.
func (d *Doc) adopt(n *Node) {
	delete(d.orphans, n.id)
}

// free forgets a node and its subtree so the ID map does not grow
// without bound across replacements and removals.
func (d *Doc) free(n *Node) {
	for _, c := range n.children {
		d.free(c)
	}
	delete(d.nodes, n.id)
	d.push(protocol.Op{Code: protocol.OpFreeNode, Node: n.id})
}

// Node is the server-side skeleton of a remote live node.
type Node struct {
	id       uint64
	doc      *Doc
	tag      string
	isText   bool
	handlers map[string]any
	children []*Node
}

// ID returns the node's wire ID.
func (n *Node) ID() uint64 { return n.id }

// Tag returns the element tag, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// SetAttribute implements dom.Node.
func (n *Node) SetAttribute(key, value string) {
	n.doc.push(protocol.Op{Code: protocol.OpSetAttr, Node: n.id, Key: key, Value: value})
}

// RemoveAttribute implements dom.Node.
func (n *Node) RemoveAttribute(key string) {
	n.doc.push(protocol.Op{Code: protocol.OpRemoveAttr, Node: n.id, Key: key})
}

// AddEventListener implements dom.Node. The handler stays on the
// server; the client only learns that it should forward this event.
func (n *Node) AddEventListener(event string, handler any) {
	n.handlers[event] = handler
	n.doc.push(protocol.Op{Code: protocol.OpListen, Node: n.id, Key: event})
}

// RemoveEventListener implements dom.Node.
func (n *Node) RemoveEventListener(event string) {
	delete(n.handlers, event)
	n.doc.push(protocol.Op{Code: protocol.OpUnlisten, Node: n.id, Key: event})
}

// AppendChild implements dom.Node.
func (n *Node) AppendChild(child dom.Node) {
	c := child.(*Node)
	n.doc.adopt(c)
	n.children = append(n.children, c)
	n.doc.push(protocol.Op{Code: protocol.OpAppendChild, Node: n.id, Child: c.id})
}

// InsertChildAt implements dom.Node.
func (n *Node) InsertChildAt(index int, child dom.Node) {
	c := child.(*Node)
	n.doc.adopt(c)
	if index < 0 {
		index = 0
	}
	if index >= len(n.children) {
		n.children = append(n.children, c)
		index = len(n.children) - 1
	} else {
		n.children = append(n.children, nil)
		copy(n.children[index+1:], n.children[index:])
		n.children[index] = c
	}
	n.doc.push(protocol.Op{Code: protocol.OpInsertChild, Node: n.id, Index: uint64(index), Child: c.id})
}

// ReplaceChildAt implements dom.Node. The replaced subtree is freed at
// the next Flush unless re-attached before then.
func (n *Node) ReplaceChildAt(index int, child dom.Node) {
	c := child.(*Node)
	n.doc.adopt(c)
	old := n.children[index]
	n.children[index] = c
	n.doc.push(protocol.Op{Code: protocol.OpReplaceChild, Node: n.id, Index: uint64(index), Child: c.id})
	n.doc.orphan(old)
}

// RemoveChildAt implements dom.Node. The removed subtree is freed at
// the next Flush unless re-attached before then.
func (n *Node) RemoveChildAt(index int) {
	old := n.children[index]
	n.children = append(n.children[:index], n.children[index+1:]...)
	n.doc.push(protocol.Op{Code: protocol.OpRemoveChild, Node: n.id, Index: uint64(index)})
	n.doc.orphan(old)
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
