// Package validate holds the local validation rule surface for the record
// forms. The rules mirror the remote service's own checks so a form can be
// rejected before any network round trip; field validators return a nil error
// when the value is acceptable, group validators aggregate per-field messages
// into an Errors map keyed by the form field name.
package validate
