// Package server is the demo HTTP/WebSocket server for weft.
//
// It wires the engine end to end: each WebSocket session owns a remote
// document, renders its view on every client event, reconciles against
// the previous tree, and streams the resulting ops to the client as
// binary frames. The plain HTTP side serves the first-paint HTML,
// a liveness probe, and Prometheus metrics.
package server
