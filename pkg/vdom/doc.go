// Package vdom provides the virtual tree model for weft.
//
// A VNode is an immutable description of a UI node: either a text node
// or an element with a tag, a property map, and an ordered child list.
// Reconciliation (package reconcile) compares an old and new VNode tree
// and patches a live document to match; VNodes themselves are never
// mutated.
//
// # Core Types
//
// VNode is the fundamental building block. Props holds attributes and
// event handlers. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created either with New, which stores props and children
// exactly as given, or with the variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Property classification
//
// Property names starting with "on" are event subscriptions: their
// value is subscribed as a handler at materialization and they are
// never rendered as attributes. The name "forceUpdate" is reserved for
// framework use and is likewise never rendered. "className" renders as
// the "class" attribute; every other property renders under its own
// name.
package vdom
