package router

import (
	"log/slog"
	"sync"
)

// Navigation targets used by the auth guard.
const (
	RootPath     = "/"
	LoginPath    = "/login"
	RegisterPath = "/register"
	HomePath     = "/dashboard"
)

// maxRedirects bounds guard-driven redirect chains during one resolution.
const maxRedirects = 8

// Handler renders the view for a resolved location.
type Handler func(m Match)

// AuthChecker reports whether a session credential is held. Satisfied by
// *gateway.Client.
type AuthChecker interface {
	IsAuthenticated() bool
}

// Router maps the current navigable location to a render callback while
// enforcing the authentication invariant: a protected view is never resolved
// without a credential, and the login view is never resolved with one (the
// registration sub-flow excepted).
//
// The route table is populated once at startup and is read-only afterwards.
// Navigate only records the target location; Resolve observes it. Construct
// one Router at startup and pass it by reference to all consumers.
type Router struct {
	auth   AuthChecker
	logger *slog.Logger

	mu       sync.RWMutex
	table    map[string]Handler
	notFound Handler
	location string
	navHook  func(visible bool)
}

// New creates a Router gated on the given auth checker.
func New(auth AuthChecker) *Router {
	return &Router{
		auth:   auth,
		logger: slog.Default().With("component", "router"),
		table:  make(map[string]Handler),
	}
}

// SetLogger replaces the router logger.
func (r *Router) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// Register inserts a route. The last registration for a path wins; routes
// cannot be unregistered.
func (r *Router) Register(path string, handler Handler) {
	m := parseLocation(path)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table[m.Path] = handler
}

// SetNotFound sets the fallback handler for unregistered paths.
func (r *Router) SetNotFound(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound = handler
}

// SetNavHook registers the navigation-affordance callback, invoked on every
// successful resolution with the current authentication state. The navigation
// bar is shown iff a credential is held.
func (r *Router) SetNavHook(fn func(visible bool)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navHook = fn
}

// Navigate records a new target location. It does not invoke any handler;
// the next Resolve observes the change.
func (r *Router) Navigate(location string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.location = location
}

// Location returns the current navigable location.
func (r *Router) Location() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.location
}

// Goto is Navigate followed by Resolve - what a link activation or a
// completed flow calls.
func (r *Router) Goto(location string) {
	r.Navigate(location)
	r.Resolve()
}

// Resolve parses the current location, applies the auth guard, updates the
// navigation affordance, and invokes the matching handler or the not-found
// fallback. Call it on every navigation signal and once at startup.
//
// Guard rules, checked in order:
//   - protected path without a credential: force-navigate to /login
//   - public path other than /register while a credential is held:
//     force-navigate to /dashboard
//
// The guard runs before the fallback, so an unauthenticated user on an
// unknown protected path is redirected to login, never shown "not found".
// With no fallback registered, resolving an unknown path does nothing.
func (r *Router) Resolve() {
	for i := 0; i < maxRedirects; i++ {
		m := parseLocation(r.Location())
		authenticated := r.auth.IsAuthenticated()

		if !isPublic(m.Path) && !authenticated {
			r.Navigate(LoginPath)
			continue
		}
		if isPublic(m.Path) && m.Path != RegisterPath && authenticated {
			r.Navigate(HomePath)
			continue
		}

		r.mu.RLock()
		handler, ok := r.table[m.Path]
		fallback := r.notFound
		navHook := r.navHook
		r.mu.RUnlock()

		if navHook != nil {
			navHook(authenticated)
		}

		if !ok {
			if fallback == nil {
				r.logger.Debug("no handler and no fallback registered", "path", m.Path)
				return
			}
			handler = fallback
		}
		handler(m)
		return
	}
	r.logger.Error("redirect loop during resolution", "location", r.Location())
}

// isPublic classifies a primary path. Everything outside the login and
// registration flow requires a credential.
func isPublic(path string) bool {
	switch path {
	case RootPath, LoginPath, RegisterPath:
		return true
	}
	return false
}
