// Package remote implements the dom capability against a tree that
// lives on the other side of a wire.
//
// The engine reconciles against a remote.Doc exactly as it would
// against an in-memory one; the document turns each mutation into a
// protocol op, and the owning session flushes the op buffer to the
// client after every pass. Events travel the other way: the client
// forwards events for subscribed nodes, and HandleEvent fires the
// server-side handler.
package remote
