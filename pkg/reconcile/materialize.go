package reconcile

import (
	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Materialize converts a VNode subtree into a fresh live subtree.
//
// A text VNode becomes a live text node. An element VNode becomes a
// live element with every non-reserved property applied as an attribute
// (className as "class") and every event property subscribed under its
// derived event name; children are materialized recursively and
// appended in order. Nil children are skipped.
//
// Materialize only allocates new live state; it never mutates an
// existing live node. The returned node is detached until the caller
// attaches it.
func Materialize(doc dom.Document, vnode *vdom.VNode) dom.Node {
	if vnode.IsText() {
		return doc.CreateTextNode(vnode.Text)
	}

	node := doc.CreateElement(vnode.Tag)

	for name, value := range vnode.Props {
		if vdom.IsEventProp(name) {
			node.AddEventListener(vdom.EventName(name), value)
			continue
		}
		if name == vdom.ReservedProp {
			continue
		}
		node.SetAttribute(vdom.AttrName(name), propToString(value))
	}

	for _, child := range vnode.Children {
		if child == nil {
			continue
		}
		node.AppendChild(Materialize(doc, child))
	}

	return node
}
