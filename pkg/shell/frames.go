package shell

// Frame is the JSON message exchanged with the thin client. One type serves
// both directions; unused fields stay empty.
type Frame struct {
	// Type discriminates the frame. Inbound: "navigate", "event", "submit",
	// "ping". Outbound: "render", "location", "pong", "error".
	Type string `json:"type"`

	// Location is the navigable location for navigate and location frames.
	Location string `json:"location,omitempty"`

	// Target is the binding id the event fired on.
	Target string `json:"target,omitempty"`

	// Event is the DOM event name ("click", "input", "submit", ...).
	Event string `json:"event,omitempty"`

	// Value carries the input value for input and change events.
	Value string `json:"value,omitempty"`

	// Form carries name to value pairs for submit events.
	Form map[string]string `json:"form,omitempty"`

	// Region names the DOM region a render frame replaces ("main" or "nav").
	Region string `json:"region,omitempty"`

	// HTML is the rendered markup for render frames.
	HTML string `json:"html,omitempty"`

	// Message carries the reason on error frames.
	Message string `json:"message,omitempty"`
}

// Inbound frame types.
const (
	FrameNavigate = "navigate"
	FrameEvent    = "event"
	FrameSubmit   = "submit"
	FramePing     = "ping"
)

// Outbound frame types.
const (
	FrameRender   = "render"
	FrameLocation = "location"
	FramePong     = "pong"
	FrameError    = "error"
)

// Render regions.
const (
	RegionMain = "main"
	RegionNav  = "nav"
)

// App is the per-session runtime the shell hosts. Start receives the frame
// sink and must push the initial render; HandleFrame processes one inbound
// frame; Close tears the runtime down. All three are called from the
// session's event goroutine, never concurrently.
type App interface {
	Start(send func(Frame))
	HandleFrame(f Frame)
	Close()
}

// AppFactory builds a fresh App for each connection.
type AppFactory func() (App, error)
