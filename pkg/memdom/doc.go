// Package memdom is an in-memory implementation of the dom capability.
//
// Every mutation issued against a Doc is recorded in an op log, which
// is what the engine's testable properties are asserted against: an
// idempotent reconcile pass leaves the log empty, a replacement shows
// up as exactly one ReplaceChild, and so on. Dispatch fires subscribed
// handlers so event wiring can be exercised without a browser.
package memdom
