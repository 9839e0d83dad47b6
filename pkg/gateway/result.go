package gateway

// Result is the tagged union every gateway call returns. Failures are
// reported as data, never raised: callers branch on Success and read Error
// or FieldErrors.
type Result struct {
	// Success is true iff the call completed with a 2xx status and a
	// parseable body.
	Success bool

	// Data is the decoded response body. On failure it may still carry
	// whatever the remote side returned alongside the error.
	Data map[string]any

	// Error is a single human-readable message, set iff Success is false.
	Error string

	// FieldErrors maps form-field names to validation messages when the
	// remote side returned the {errors:{field:msg}} shape.
	FieldErrors map[string]string
}

// failure builds a failed Result with the given message.
func failure(msg string) Result {
	return Result{Error: msg}
}

// Str returns the string at key in Data, or "".
func (r Result) Str(key string) string {
	s, _ := r.Data[key].(string)
	return s
}

// Map returns the nested object at key in Data, or nil.
func (r Result) Map(key string) map[string]any {
	m, _ := r.Data[key].(map[string]any)
	return m
}

// Slice returns the array at key in Data, or nil.
func (r Result) Slice(key string) []any {
	s, _ := r.Data[key].([]any)
	return s
}
