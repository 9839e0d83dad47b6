// Package component provides the lifecycle and re-render discipline shared by
// every UI unit.
//
// A Component is a pure function from state to a vdom subtree. The Instance
// wrapping it owns a private string-keyed state container; SetState
// shallow-merges a partial update and synchronously runs one full render
// cycle: rebuild the subtree, serialize it, rebind event handlers, notify the
// render sink. There is no batching and no diffing - full replacement on every
// change removes a whole class of partial-update bugs, and update frequency is
// human-interaction-scale.
//
// Instances form a tree for event bubbling only; state is never shared between
// instances. Find and FindAll are scoped to the instance's own subtree.
//
// # Lifecycle
//
//	inst := component.New(view)
//	inst.Mount()          // render once, bind handlers
//	view.SetState(...)    // merge, hook, re-render, rebind
//	inst.Unmount()        // cleanup hook; later SetState calls are dropped
//
// An unmounted instance stays unmounted: Mount returns an error rather than
// resurrecting it.
package component
