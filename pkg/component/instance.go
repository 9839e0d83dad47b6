package component

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/wardview/wardview/pkg/render"
	"github.com/wardview/wardview/pkg/vdom"
)

// instanceIDCounter is used to generate unique instance IDs.
var instanceIDCounter atomic.Uint64

func generateInstanceID() string {
	id := instanceIDCounter.Add(1)
	return fmt.Sprintf("c%d", id)
}

// Instance is a mounted component with its private state container and
// isolated rendering subtree.
//
// Lifecycle: Unmounted → Mount (render once, bind handlers) → any number of
// SetState cycles (merge, observer hook, full re-render, rebind) → Unmount
// (cleanup hook; the instance never mounts again). SetState after Unmount is
// dropped with a debug log.
//
// Each SetState is a fully serialized render cycle guarded by the instance
// mutex; calls are applied in call order. Different instances never share
// state and may run cycles concurrently.
type Instance struct {
	// InstanceID is the unique instance identifier.
	InstanceID string

	comp     Component
	renderer *render.Renderer
	logger   *slog.Logger

	mu      sync.Mutex
	mounted bool
	state   map[string]any
	tree    *vdom.VNode
	html    string

	// parent and children form the ancestor chain Emit bubbles along.
	parent   *Instance
	children []*Instance

	listenerMu sync.Mutex
	listeners  map[string][]func(payload any)

	// renderSink, when set, observes the HTML of every completed render cycle.
	renderSink func(html string)
}

// New creates an unmounted instance for the component. If the component embeds
// Base it is handed a reference to the new instance.
func New(c Component) *Instance {
	inst := &Instance{
		InstanceID: generateInstanceID(),
		comp:       c,
		renderer:   render.NewRenderer(),
		logger:     slog.Default().With("component", "runtime"),
		state:      make(map[string]any),
		listeners:  make(map[string][]func(payload any)),
	}
	if binder, ok := c.(instanceBinder); ok {
		binder.bindInstance(inst)
	}
	return inst
}

// SetLogger replaces the instance logger.
func (i *Instance) SetLogger(logger *slog.Logger) {
	i.logger = logger
}

// SetRenderSink registers a callback observing the HTML of every render cycle,
// including the initial mount render.
func (i *Instance) SetRenderSink(fn func(html string)) {
	i.renderSink = fn
}

// Mount transitions the instance to Mounted: one initial render, then handler
// binding. Mounting an already-mounted or previously-unmounted instance is an
// error.
func (i *Instance) Mount() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.mounted {
		return fmt.Errorf("component %s: already mounted", i.InstanceID)
	}
	if i.comp == nil {
		return fmt.Errorf("component %s: unmounted instance cannot be remounted", i.InstanceID)
	}
	i.mounted = true
	return i.renderCycleLocked()
}

// MountWithState seeds the initial state before the first render.
func (i *Instance) MountWithState(initial map[string]any) error {
	i.mu.Lock()
	for k, v := range initial {
		i.state[k] = v
	}
	i.mu.Unlock()
	return i.Mount()
}

// Mounted reports whether the instance is currently mounted.
func (i *Instance) Mounted() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.mounted
}

// State returns a defensive copy of the state container. Mutating the
// returned map never affects internal state.
func (i *Instance) State() map[string]any {
	i.mu.Lock()
	defer i.mu.Unlock()
	return copyState(i.state)
}

// SetState shallow-merges partial into the state container, invokes the
// StateChanged hook with old/new snapshots, re-renders the full subtree and
// rebinds handlers. Calls after Unmount are dropped.
func (i *Instance) SetState(partial map[string]any) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.mounted {
		i.logger.Debug("setState on unmounted component dropped",
			"instance", i.InstanceID)
		return
	}

	oldState := copyState(i.state)
	for k, v := range partial {
		i.state[k] = v
	}

	if observer, ok := i.comp.(StateObserver); ok {
		observer.StateChanged(oldState, copyState(i.state))
	}

	if err := i.renderCycleLocked(); err != nil {
		i.logger.Error("render cycle failed",
			"instance", i.InstanceID, "error", err)
	}
}

// renderCycleLocked runs one full render cycle: reset bindings, rebuild the
// subtree from current state, serialize, rebind, notify. Caller holds i.mu.
func (i *Instance) renderCycleLocked() error {
	i.renderer.Reset()

	tree := i.comp.Render()
	html, err := i.renderer.RenderToString(tree)
	if err != nil {
		return err
	}

	i.tree = tree
	i.html = html

	if attacher, ok := i.comp.(Attacher); ok {
		attacher.Attach()
	}

	if i.renderSink != nil {
		i.renderSink(html)
	}
	return nil
}

// HTML returns the serialized output of the last render cycle.
func (i *Instance) HTML() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.html
}

// Tree returns the root of the last rendered subtree.
func (i *Instance) Tree() *vdom.VNode {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.tree
}

// Dispatch routes a browser event to the handler bound at the given binding
// id during the last render. It returns false if no handler matches, which
// happens routinely when an event races a re-render.
func (i *Instance) Dispatch(bindID, eventName string, ev vdom.Event) bool {
	i.mu.Lock()
	if !i.mounted {
		i.mu.Unlock()
		return false
	}
	handler, ok := i.renderer.Handlers()[bindID+"_on"+eventName]
	i.mu.Unlock()

	if !ok {
		return false
	}
	// Invoked outside the lock: handlers call SetState.
	handler(ev)
	return true
}

// AddChild attaches a child instance for event bubbling.
func (i *Instance) AddChild(child *Instance) {
	i.mu.Lock()
	defer i.mu.Unlock()
	child.parent = i
	i.children = append(i.children, child)
}

// RemoveChild detaches a child instance.
func (i *Instance) RemoveChild(child *Instance) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for idx, ch := range i.children {
		if ch == child {
			i.children = append(i.children[:idx], i.children[idx+1:]...)
			child.parent = nil
			return
		}
	}
}

// Unmount tears the instance down: children first in reverse order, then the
// Cleanup hook, then state destruction. Further SetState calls are no-ops;
// the instance cannot be resurrected.
func (i *Instance) Unmount() {
	i.mu.Lock()
	children := make([]*Instance, len(i.children))
	copy(children, i.children)
	i.mu.Unlock()

	for idx := len(children) - 1; idx >= 0; idx-- {
		children[idx].Unmount()
	}

	i.mu.Lock()
	if !i.mounted {
		i.mu.Unlock()
		return
	}
	i.mounted = false
	comp := i.comp
	i.mu.Unlock()

	if cleaner, ok := comp.(Cleaner); ok {
		cleaner.Cleanup()
	}

	i.mu.Lock()
	i.state = make(map[string]any)
	i.tree = nil
	i.html = ""
	i.comp = nil
	i.children = nil
	i.renderer.Reset()
	i.mu.Unlock()

	if i.parent != nil {
		i.parent.RemoveChild(i)
	}
}

func copyState(state map[string]any) map[string]any {
	out := make(map[string]any, len(state))
	for k, v := range state {
		out[k] = v
	}
	return out
}
