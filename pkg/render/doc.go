// Package render serializes VNode trees to escaped HTML.
//
// It exists for first paint and snapshots: the demo server renders the
// initial tree to markup before the live session takes over, and the
// snapshot store persists the same markup. Rendering applies the same
// property rules as live materialization — event props and forceUpdate
// are dropped, className becomes class — so the two outputs describe
// the same tree.
package render
