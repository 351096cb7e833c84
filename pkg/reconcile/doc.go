// Package reconcile is the weft engine: it materializes virtual nodes
// into live document nodes and patches a live tree to match a newly
// computed virtual tree with the minimal supported set of mutations.
//
// # Algorithm
//
// Reconcile walks the old and new tree together at each live position.
// A position with no old node gets a fresh materialization appended; a
// position with no new node is removed; a pair whose shape changed
// (text vs element, differing text, or differing tag) is replaced
// wholesale; an unchanged element pair is patched in place, first its
// properties, then its children by ascending index. Children are
// correlated purely by position, so a front insertion cascades into
// replacements for every later sibling. Policy.KeyedChildren opts into
// key-based matching; positional remains the default.
//
// # Ownership
//
// The engine is stateless between calls and synchronous within one: the
// caller retains the previous VNode tree and passes it to the next
// Reconcile, and owns serialization of concurrent access to the live
// tree. Live nodes belong to the document from the moment they are
// attached; the engine holds no reference past the call that touched
// them.
//
// # Failure semantics
//
// Well-formed input has no failure modes. Malformed VNodes are not
// validated; whatever the document implementation does with a bad tag
// or attribute surfaces unwrapped.
package reconcile
