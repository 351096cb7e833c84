package reconcile

import (
	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Policy names the switchable behaviors of the engine. The zero value
// is the documented default behavior.
type Policy struct {
	// KeyedChildren enables key-based child matching: children carrying
	// a string "key" prop are paired with the old child of the same key
	// before positional comparison takes over for the rest. Off by
	// default; positional matching is the engine's native mode.
	KeyedChildren bool

	// SetFalsyValues narrows property removal to nil values only, so
	// "", 0, and false are set as attribute values. By default any
	// falsy new value removes the attribute instead.
	SetFalsyValues bool

	// ResubscribeHandlers re-applies changed event handlers during
	// property reconciliation. By default only materialization
	// subscribes handlers, so a handler changed between trees keeps its
	// original subscription.
	ResubscribeHandlers bool
}

// Reconciler synchronizes a live tree with successive virtual trees.
//
// The reconciler is stateless between calls: the caller retains the
// previously rendered VNode tree and passes it back on the next call.
// A single Reconcile call runs to completion on the calling goroutine;
// concurrent reconciliation of overlapping live subtrees is the
// caller's responsibility to prevent.
type Reconciler struct {
	Doc    dom.Document
	Policy Policy
}

// New creates a Reconciler with default policy.
func New(doc dom.Document) *Reconciler {
	return &Reconciler{Doc: doc}
}

// Reconcile compares next against prev at child position 0 of parent
// and applies the minimal supported mutations to make the live tree
// match next. On first render prev is nil and next is materialized and
// appended. Passing a nil next removes what prev rendered.
func (r *Reconciler) Reconcile(parent dom.Node, next, prev *vdom.VNode) {
	r.ReconcileAt(parent, next, prev, 0)
}

// ReconcileAt is Reconcile against an explicit child position, for
// callers that rendered prev somewhere other than position 0.
func (r *Reconciler) ReconcileAt(parent dom.Node, next, prev *vdom.VNode, index int) {
	switch {
	case prev == nil && next == nil:
		// Nothing at this position on either side.

	case prev == nil:
		// New position: materialize and append. This case only arises
		// beyond the previous child count, so appending inserts at the
		// right place.
		parent.AppendChild(Materialize(r.Doc, next))

	case next == nil:
		parent.RemoveChildAt(index)

	case changed(next, prev):
		// Shape or tag changed: discard the old subtree wholesale and
		// materialize fresh. No attempt is made to diff into it.
		parent.ReplaceChildAt(index, Materialize(r.Doc, next))

	case next.Kind == vdom.KindElement:
		live := parent.ChildAt(index)
		r.ReconcileProperties(live, next.Props, prev.Props)
		r.reconcileChildren(live, next, prev)

		// Both text and equal: nothing to do.
	}
}

// changed reports whether an old/new pair cannot be patched in place:
// their shapes differ, both are text with different content, or both
// are elements with different tags.
func changed(next, prev *vdom.VNode) bool {
	if next.Kind != prev.Kind {
		return true
	}
	if next.Kind == vdom.KindText {
		return next.Text != prev.Text
	}
	return next.Tag != prev.Tag
}

// reconcileChildren walks the child lists of an in-place-patched
// element by ascending index, recursing into each position.
func (r *Reconciler) reconcileChildren(live dom.Node, next, prev *vdom.VNode) {
	if r.Policy.KeyedChildren && (hasKeys(next.Children) || hasKeys(prev.Children)) {
		r.reconcileKeyedChildren(live, next.Children, prev.Children)
		return
	}
	r.reconcilePositional(live, next.Children, prev.Children)
}

// reconcilePositional is the engine's native child walk: strictly
// ascending index, no identity tracking.
func (r *Reconciler) reconcilePositional(live dom.Node, next, prev []*vdom.VNode) {
	newLen := len(next)
	oldLen := len(prev)
	maxLen := newLen
	if oldLen > maxLen {
		maxLen = oldLen
	}

	// Trailing removals shift later siblings left, so the child
	// originally at i currently sits at i-removed.
	removed := 0
	for i := 0; i < maxLen; i++ {
		var newChild, oldChild *vdom.VNode
		if i < newLen {
			newChild = next[i]
		}
		if i < oldLen {
			oldChild = prev[i]
		}
		if newChild == nil && oldChild != nil {
			r.ReconcileAt(live, nil, oldChild, i-removed)
			removed++
			continue
		}
		r.ReconcileAt(live, newChild, oldChild, i-removed)
	}
}

// reconcileKeyedChildren pairs children by their "key" prop before
// falling back to positional matching. When every key already sits at
// its old position the pass degrades to the positional walk; otherwise
// the live children are detached and re-attached in the new order,
// reusing and in-place patching every key-matched subtree.
func (r *Reconciler) reconcileKeyedChildren(live dom.Node, next, prev []*vdom.VNode) {
	oldByKey := make(map[string]int)
	for i, child := range prev {
		if key := child.Key(); key != "" {
			oldByKey[key] = i
		}
	}

	// match[i] is the old index paired with new index i, or -1.
	match := make([]int, len(next))
	identity := len(next) == len(prev)
	for i, child := range next {
		match[i] = -1
		if key := child.Key(); key != "" {
			if j, ok := oldByKey[key]; ok {
				match[i] = j
			}
		} else if i < len(prev) && prev[i] != nil && prev[i].Key() == "" {
			// Positional fallback for unkeyed children.
			match[i] = i
		}
		if match[i] != i {
			identity = false
		}
	}

	if identity {
		r.reconcilePositional(live, next, prev)
		return
	}

	// Snapshot and detach the old live children, then rebuild in the
	// new order.
	oldLive := make([]dom.Node, len(prev))
	for i := range prev {
		oldLive[i] = live.ChildAt(i)
	}
	for i := len(prev) - 1; i >= 0; i-- {
		live.RemoveChildAt(i)
	}

	for i, child := range next {
		if child == nil {
			continue
		}
		j := match[i]
		if j < 0 || oldLive[j] == nil || changed(child, prev[j]) {
			live.AppendChild(Materialize(r.Doc, child))
			continue
		}
		reused := oldLive[j]
		live.AppendChild(reused)
		if child.Kind == vdom.KindElement {
			r.ReconcileProperties(reused, child.Props, prev[j].Props)
			r.reconcileChildren(reused, child, prev[j])
		}
	}
}

// hasKeys returns true if any child carries a reconciliation key.
func hasKeys(children []*vdom.VNode) bool {
	for _, child := range children {
		if child.Key() != "" {
			return true
		}
	}
	return false
}
