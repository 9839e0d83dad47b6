// Package router resolves fragment-style locations ("#/patients/7?tab=x") to
// registered render callbacks, gating every resolution on authentication
// state.
//
// Navigation is two-phase: Navigate records the target location, Resolve
// observes it. Guard redirects (unauthenticated access to a protected path,
// authenticated access to the login flow) re-enter resolution with a new
// location; the guard always runs before the not-found fallback.
package router
