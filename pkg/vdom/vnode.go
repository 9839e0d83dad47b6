package vdom

import "strings"

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement  NodeKind = iota // <div>, <input>, etc.
	KindText                     // Plain text node
	KindFragment                 // Grouping without a wrapper element
	KindRaw                      // Raw HTML (dangerous)
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node in a component's rendered subtree. A component rebuilds its
// entire VNode tree on every state change; trees are never mutated in place.
type VNode struct {
	Kind     NodeKind
	Tag      string   // Element tag name (e.g. "div")
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw
}

// Props holds attributes and event handlers. Handler values live under
// "on"-prefixed keys and are bound by the renderer, not serialized.
type Props map[string]any

// IsInteractive returns true if this node carries event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Event describes a user interaction delivered to a handler: a click, an
// input edit, or a form submission with its field values.
type Event struct {
	// Type is the event name without the "on" prefix ("click", "submit").
	Type string

	// Value carries the current value of the target control, if any.
	Value string

	// Form carries name→value pairs for submit events.
	Form map[string]string
}

// Handler is an event callback attached to an element.
type Handler func(Event)

// EventHandler pairs an event name with its handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler Handler
}
