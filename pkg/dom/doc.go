// Package dom defines the abstract live-tree capability the weft engine
// renders into.
//
// The engine never owns live nodes and never reaches for a global
// document: a Document is passed explicitly wherever node creation is
// needed, so the same engine runs against an in-memory tree (package
// memdom), a remote browser document (package remote), or any other
// tree-like target.
//
// The live tree is treated as exclusively owned by the calling
// goroutine for the duration of one reconcile call. Nothing here locks;
// callers that reconcile the same subtree from multiple goroutines must
// serialize externally.
package dom
