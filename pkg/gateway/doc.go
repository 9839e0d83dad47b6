// Package gateway mediates all traffic between the dashboard runtime and the
// remote records service.
//
// A single Client is constructed at startup and handed by reference to every
// consumer; it exclusively owns the session credential, persisting it through
// a CredentialStore so an authenticated session survives restarts. Every call
// returns a Result - a tagged union of success data or a failure message plus
// optional field-keyed validation errors. The gateway never panics, never
// leaks transport errors to UI code, and never retries (at-most-once per
// call).
//
// Requests always carry Content-Type: application/json and, while a
// credential is held, Authorization: Bearer <token>. Each request is traced
// with an OpenTelemetry span and counted in prometheus metrics.
package gateway
