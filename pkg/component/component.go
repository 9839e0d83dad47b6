package component

import (
	"github.com/wardview/wardview/pkg/vdom"
)

// Component is the interface every UI unit implements. Render recomputes the
// entire visible subtree from current state; it must be a pure function of
// the component's state and receive no other mutable input.
type Component interface {
	Render() *vdom.VNode
}

// Attacher is an optional hook invoked after every render, once the new
// subtree's handlers have been bound. Implementations must not call SetState
// from within the hook.
type Attacher interface {
	Attach()
}

// Cleaner is an optional hook invoked once when the instance unmounts.
type Cleaner interface {
	Cleanup()
}

// StateObserver is an optional hook invoked on every state merge with
// snapshots of the previous and next state. Implementations must not call
// SetState from within the hook.
type StateObserver interface {
	StateChanged(oldState, newState map[string]any)
}

// instanceBinder is implemented by Base so New can hand the component a
// reference to its own instance.
type instanceBinder interface {
	bindInstance(*Instance)
}

// Base provides components with access to their own Instance. Concrete
// components embed Base and call SetState/State/Mounted directly:
//
//	type CounterView struct {
//	    component.Base
//	}
//
//	func (v *CounterView) Render() *vdom.VNode {
//	    n, _ := v.State()["count"].(int)
//	    return vdom.Button(
//	        vdom.OnClick(func(vdom.Event) {
//	            v.SetState(map[string]any{"count": n + 1})
//	        }),
//	        vdom.Textf("%d", n),
//	    )
//	}
type Base struct {
	inst *Instance
}

func (b *Base) bindInstance(inst *Instance) {
	b.inst = inst
}

// Instance returns the component's instance, or nil before New is called.
func (b *Base) Instance() *Instance {
	return b.inst
}

// State returns a snapshot of the instance state. See Instance.State.
func (b *Base) State() map[string]any {
	if b.inst == nil {
		return map[string]any{}
	}
	return b.inst.State()
}

// SetState merges partial state and triggers a re-render. See Instance.SetState.
func (b *Base) SetState(partial map[string]any) {
	if b.inst != nil {
		b.inst.SetState(partial)
	}
}

// Mounted reports whether the instance is currently mounted. Components must
// check this before applying state from an asynchronous completion, since the
// user may have navigated away while the call was in flight.
func (b *Base) Mounted() bool {
	return b.inst != nil && b.inst.Mounted()
}

// Emit dispatches a bubbling notification. See Instance.Emit.
func (b *Base) Emit(name string, payload any) {
	if b.inst != nil {
		b.inst.Emit(name, payload)
	}
}
