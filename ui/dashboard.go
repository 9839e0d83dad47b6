package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wardview/wardview/pkg/component"
	"github.com/wardview/wardview/pkg/gateway"
	"github.com/wardview/wardview/pkg/router"
	. "github.com/wardview/wardview/pkg/vdom"
)

// recentPatientCount bounds the dashboard's recent-activity panel.
const recentPatientCount = 5

// DashboardView is the landing view: total patient count, the most recent
// records, and the latest recorded vitals for each of them.
type DashboardView struct {
	component.Base
	gw  *gateway.Client
	nav *router.Router
}

func NewDashboardView(gw *gateway.Client, nav *router.Router) *DashboardView {
	return &DashboardView{gw: gw, nav: nav}
}

// Load fetches the dashboard data. Call it after Mount, typically from the
// shell's event goroutine.
func (v *DashboardView) Load() {
	if !v.Mounted() {
		return
	}
	v.SetState(map[string]any{"loading": true, "error": ""})

	res := v.gw.Patients(context.Background(), "", 1, recentPatientCount)
	if !v.Mounted() {
		return
	}
	if !res.Success {
		v.SetState(map[string]any{"loading": false, "error": res.Error})
		return
	}

	patients := res.Slice("patients")
	total := 0
	if p := res.Map("pagination"); p != nil {
		if t, ok := p["total"].(float64); ok {
			total = int(t)
		}
	}

	// One latest-vitals fetch per recent record. Failures degrade to an
	// empty summary rather than failing the whole view.
	latest := map[string]any{}
	for _, raw := range patients {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		id := recordID(record)
		if id == 0 {
			continue
		}
		vres := v.gw.Vitals(context.Background(), id, true)
		if !v.Mounted() {
			return
		}
		if vres.Success {
			if vitals := vres.Slice("vitals"); len(vitals) > 0 {
				latest[strconv.Itoa(id)] = vitals[0]
			}
		}
	}

	v.SetState(map[string]any{
		"loading":  false,
		"patients": patients,
		"total":    total,
		"latest":   latest,
	})
}

func (v *DashboardView) Render() *VNode {
	state := v.State()
	patients, _ := state["patients"].([]any)
	latest, _ := state["latest"].(map[string]any)

	return Section(Class("dashboard"),
		H1(Text("Dashboard")),
		banner(str(state, "error")),
		If(boolOf(state, "loading"), P(Class("loading"), Text("Loading..."))),
		Div(Class("stat-cards"),
			Div(Class("stat-card"),
				Strong(Textf("%d", intOf(state, "total"))),
				Small(Text("patients on record")),
			),
		),
		H2(Text("Recent patients")),
		IfElse(len(patients) == 0 && !boolOf(state, "loading"),
			P(Class("empty"), Text("No patients yet.")),
			Ul(Class("recent-list"),
				Range(patients, func(raw any, _ int) *VNode {
					record, ok := raw.(map[string]any)
					if !ok {
						return Nothing()
					}
					return v.recentRow(record, latest)
				}),
			),
		),
		P(A(Href("#/patients"), Text("All patients")),
			Text(" | "),
			A(Href("#/patients/new"), Text("Add patient")),
		),
	)
}

func (v *DashboardView) recentRow(record, latest map[string]any) *VNode {
	id := recordID(record)
	name := fmt.Sprintf("%s %s", cell(record, "first_name"), cell(record, "last_name"))

	return Li(Class("recent-row"),
		A(Href(fmt.Sprintf("#/patients/%d", id)), Text(name)),
		Span(Class("vitals-summary"), Text(latestSummary(latest, id))),
	)
}

// latestSummary condenses the newest vitals record to one line.
func latestSummary(latest map[string]any, id int) string {
	record, ok := latest[strconv.Itoa(id)].(map[string]any)
	if !ok {
		return "no vitals recorded"
	}

	parts := ""
	if sys, dia := record["blood_pressure_systolic"], record["blood_pressure_diastolic"]; sys != nil && dia != nil {
		parts = fmt.Sprintf("BP %s/%s", fmtVital(sys), fmtVital(dia))
	}
	if hr := record["heart_rate"]; hr != nil {
		if parts != "" {
			parts += ", "
		}
		parts += fmt.Sprintf("HR %s", fmtVital(hr))
	}
	if parts == "" {
		return "vitals recorded"
	}
	return parts
}
