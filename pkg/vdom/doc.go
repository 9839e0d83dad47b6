// Package vdom provides the virtual node tree that components render into.
//
// VNode is the fundamental building block representing elements, text,
// fragments, and raw HTML. Props holds attributes and event handlers.
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"),
//	    H2(Text("Patients")),
//	    Button(OnClick(handler), "Refresh"),
//	)
//
// Unlike diff-based virtual DOM implementations, wardview components rebuild
// and fully replace their subtree on every state change, so this package
// carries no reconciliation machinery. Event handlers attached via On* are
// collected by pkg/render into a binding registry keyed by generated ids.
package vdom
