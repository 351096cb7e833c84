// Package protocol is the binary wire format between a weft server and
// a thin client replaying live-tree mutations.
//
// The server side reconciles against a remote document (package
// remote), which turns every dom call into an Op; batches of ops are
// encoded with a sequence number and sent as one binary frame. The
// client sends back Event frames for subscribed events. Encoding is
// varint-based with length-prefixed strings; decoding enforces
// allocation limits so a malicious peer cannot force large allocations.
package protocol
