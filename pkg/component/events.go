package component

// On registers a listener for bubbling notifications with the given name.
// Listeners fire when this instance or any descendant emits the name.
func (i *Instance) On(name string, fn func(payload any)) {
	i.listenerMu.Lock()
	defer i.listenerMu.Unlock()
	i.listeners[name] = append(i.listeners[name], fn)
}

// Emit dispatches a structured notification carrying payload as its detail.
// Delivery starts at this instance and bubbles through the ancestor chain;
// every registered listener along the path fires. There is no way to stop
// propagation.
func (i *Instance) Emit(name string, payload any) {
	for node := i; node != nil; node = node.parentInstance() {
		for _, fn := range node.listenersFor(name) {
			fn(payload)
		}
	}
}

func (i *Instance) parentInstance() *Instance {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.parent
}

// listenersFor snapshots the listener slice so Emit never holds the lock
// while invoking callbacks.
func (i *Instance) listenersFor(name string) []func(payload any) {
	i.listenerMu.Lock()
	defer i.listenerMu.Unlock()
	fns := i.listeners[name]
	out := make([]func(payload any), len(fns))
	copy(out, fns)
	return out
}
