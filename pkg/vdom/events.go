package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g. "click" becomes "onclick").
func event(name string, handler Handler) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler Handler) EventHandler { return event("click", handler) }

// OnInput handles input events (fired as the value changes).
func OnInput(handler Handler) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when the value is committed).
func OnChange(handler Handler) EventHandler { return event("change", handler) }

// OnSubmit handles form submit events. The Event carries the form's
// name→value pairs.
func OnSubmit(handler Handler) EventHandler { return event("submit", handler) }

// OnBlur handles blur events.
func OnBlur(handler Handler) EventHandler { return event("blur", handler) }
