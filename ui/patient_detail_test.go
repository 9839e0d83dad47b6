package ui

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardview/wardview/pkg/vdom"
)

func detailHarness(t *testing.T) (*harness, *PatientDetailView) {
	t.Helper()
	h := newHarness(t)
	h.gw.SetToken("tok")
	h.svc.on("GET /patients/7", http.StatusOK, map[string]any{
		"patient": patientRecord(7, "Ada", "Lovelace"),
	})
	h.svc.on("GET /patients/7/vitals", http.StatusOK, map[string]any{
		"vitals": []any{map[string]any{
			"recorded_at":              "2026-08-20 09:15",
			"blood_pressure_systolic":  120.0,
			"blood_pressure_diastolic": 80.0,
			"heart_rate":               72.0,
			"notes":                    "stable",
		}},
	})
	h.svc.on("GET /patients/7/vitals/stats", http.StatusOK, map[string]any{
		"statistics": map[string]any{
			"total_records":                8.0,
			"avg_blood_pressure_systolic":  121.5,
			"avg_blood_pressure_diastolic": 79.8,
			"avg_heart_rate":               71.2,
			"avg_temperature":              nil,
			"avg_respiratory_rate":         nil,
			"avg_oxygen_saturation":        98.1,
		},
	})

	view := NewPatientDetailView(h.gw, h.nav, 7)
	mount(t, view)
	return h, view
}

func TestPatientDetailRendersEverything(t *testing.T) {
	h, view := detailHarness(t)
	view.Load()

	html := view.Instance().HTML()
	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "1985-12-10")
	assert.Contains(t, html, "8 recorded measurements")
	assert.Contains(t, html, "121.5")
	assert.Contains(t, html, "stable")
	// Null averages render as a dash.
	assert.Contains(t, html, "<td>-</td>")
	assert.Positive(t, h.svc.requestCount())
}

func TestAddVitalsCrossFieldRuleBlocksSubmit(t *testing.T) {
	h, view := detailHarness(t)
	view.Load()
	before := h.svc.requestCount()

	view.submitVitals(vdom.Event{Form: map[string]string{
		"blood_pressure_systolic":  "80",
		"blood_pressure_diastolic": "120",
	}})

	assert.Equal(t, before, h.svc.requestCount())
	assert.Contains(t, view.Instance().HTML(),
		"Systolic blood pressure must be greater than diastolic blood pressure")
}

func TestAddVitalsEmptySetBlocked(t *testing.T) {
	h, view := detailHarness(t)
	view.Load()
	before := h.svc.requestCount()

	view.submitVitals(vdom.Event{Form: map[string]string{"notes": "sleeping"}})

	assert.Equal(t, before, h.svc.requestCount())
	assert.Contains(t, view.Instance().HTML(),
		"At least one vital sign measurement is required")
}

func TestAddVitalsSuccessReloadsHistory(t *testing.T) {
	h, view := detailHarness(t)
	view.Load()
	h.svc.on("POST /patients/7/vitals", http.StatusCreated, map[string]any{
		"vital": map[string]any{"id": 9.0},
	})

	view.submitVitals(vdom.Event{Form: map[string]string{
		"heart_rate": "72",
	}})

	require.Contains(t, h.svc.requests, "POST /patients/7/vitals")
	// The history and stats are fetched again after the write.
	var historyFetches int
	for _, req := range h.svc.requests {
		if req == "GET /patients/7/vitals" {
			historyFetches++
		}
	}
	assert.GreaterOrEqual(t, historyFetches, 2)
}

func TestPatientDetailLoadErrorShowsBanner(t *testing.T) {
	h := newHarness(t)
	h.gw.SetToken("tok")
	h.svc.on("GET /patients/9", http.StatusNotFound, map[string]any{"error": "Patient not found"})

	view := NewPatientDetailView(h.gw, h.nav, 9)
	inst := mount(t, view)
	view.Load()

	assert.Contains(t, inst.HTML(), "Patient not found")
}
