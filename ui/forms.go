package ui

import (
	"fmt"

	. "github.com/wardview/wardview/pkg/vdom"
)

// Shared form scaffolding used by the login, registration, record, and
// vitals forms.

// str reads a string value out of a state snapshot.
func str(state map[string]any, key string) string {
	s, _ := state[key].(string)
	return s
}

// boolOf reads a bool out of a state snapshot.
func boolOf(state map[string]any, key string) bool {
	b, _ := state[key].(bool)
	return b
}

// intOf reads an int out of a state snapshot. JSON decoding stores numbers
// as float64, so both representations are accepted.
func intOf(state map[string]any, key string) int {
	switch v := state[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// errsOf reads the field-error map out of a state snapshot.
func errsOf(state map[string]any) map[string]string {
	m, _ := state["errors"].(map[string]string)
	return m
}

// errorSummary renders the aggregate count above a form, or nothing when the
// form is clean.
func errorSummary(errs map[string]string) *VNode {
	if len(errs) == 0 {
		return Nothing()
	}
	noun := "errors"
	if len(errs) == 1 {
		noun = "error"
	}
	return Div(Class("error-summary"), Role("alert"),
		Textf("Please correct the %d %s below", len(errs), noun),
	)
}

// fieldMessage renders the inline message for one field, or nothing.
func fieldMessage(errs map[string]string, field string) *VNode {
	msg := errs[field]
	if msg == "" {
		return Nothing()
	}
	return Small(Class("field-error"), Text(msg))
}

// banner renders a page-level error message, or nothing.
func banner(msg string) *VNode {
	if msg == "" {
		return Nothing()
	}
	return Div(Class("banner banner-error"), Role("alert"), Text(msg))
}

// notice renders a page-level success message, or nothing.
func notice(msg string) *VNode {
	if msg == "" {
		return Nothing()
	}
	return Div(Class("banner banner-ok"), Role("status"), Text(msg))
}

// labeledField renders a label, an input carrying its current value, and the
// field's inline error.
func labeledField(label, name, typ, value string, errs map[string]string) *VNode {
	return Div(Class("field"),
		Label(For(name), Text(label)),
		Input(ID(name), Name(name), Type(typ), Value(value)),
		fieldMessage(errs, name),
	)
}

// labeledArea is labeledField for multi-line text.
func labeledArea(label, name, value string, errs map[string]string) *VNode {
	return Div(Class("field"),
		Label(For(name), Text(label)),
		Textarea(ID(name), Name(name), Text(value)),
		fieldMessage(errs, name),
	)
}

// submitButton renders the form's submit control, disabled while a request
// is in flight.
func submitButton(label string, busy bool) *VNode {
	text := label
	if busy {
		text = "Please wait..."
	}
	return Button(Type("submit"), Disabled(busy), Text(text))
}

// fmtStat formats a nullable numeric statistic. Absent values render as a
// dash, matching the service's null averages for vitals nobody recorded.
func fmtStat(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%.1f", n)
	case int:
		return fmt.Sprintf("%d", n)
	}
	return "-"
}

// fmtVital formats a raw measurement value without padding decimals.
func fmtVital(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%g", n)
	case int:
		return fmt.Sprintf("%d", n)
	}
	return "-"
}

// cell reads a display string out of a decoded record object.
func cell(record map[string]any, key string) string {
	switch v := record[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	case int:
		return fmt.Sprintf("%d", v)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", record[key])
}

// recordID reads the numeric id out of a decoded record object.
func recordID(record map[string]any) int {
	switch v := record["id"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
