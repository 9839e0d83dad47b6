package ui

import (
	"context"
	"fmt"

	"github.com/wardview/wardview/pkg/component"
	"github.com/wardview/wardview/pkg/gateway"
	"github.com/wardview/wardview/pkg/router"
	"github.com/wardview/wardview/pkg/validate"
	. "github.com/wardview/wardview/pkg/vdom"
)

// vitalColumn pairs a measurement key with its display label.
type vitalColumn struct {
	key   string
	label string
}

// vitalColumns drives both the history table and the stats panel.
var vitalColumns = []vitalColumn{
	{"blood_pressure_systolic", "Systolic"},
	{"blood_pressure_diastolic", "Diastolic"},
	{"heart_rate", "Heart rate"},
	{"temperature", "Temperature"},
	{"respiratory_rate", "Respiratory rate"},
	{"oxygen_saturation", "SpO2"},
}

// PatientDetailView shows one record's demographics, its vitals history and
// aggregate statistics, and an inline form for appending a new set of
// measurements.
type PatientDetailView struct {
	component.Base
	gw        *gateway.Client
	nav       *router.Router
	patientID int
}

func NewPatientDetailView(gw *gateway.Client, nav *router.Router, patientID int) *PatientDetailView {
	return &PatientDetailView{gw: gw, nav: nav, patientID: patientID}
}

// Load fetches the record, its vitals history, and the statistics.
func (v *PatientDetailView) Load() {
	if !v.Mounted() {
		return
	}
	v.SetState(map[string]any{"loading": true, "error": ""})

	res := v.gw.Patient(context.Background(), v.patientID)
	if !v.Mounted() {
		return
	}
	if !res.Success {
		v.SetState(map[string]any{"loading": false, "error": res.Error})
		return
	}
	v.SetState(map[string]any{"patient": res.Map("patient")})

	v.reloadVitals()
	if !v.Mounted() {
		return
	}
	v.SetState(map[string]any{"loading": false})
}

// reloadVitals refreshes the history and statistics, leaving demographics
// alone. Used on initial load and after a successful measurement submit.
func (v *PatientDetailView) reloadVitals() {
	res := v.gw.Vitals(context.Background(), v.patientID, false)
	if !v.Mounted() {
		return
	}
	if res.Success {
		v.SetState(map[string]any{"vitals": res.Slice("vitals")})
	}

	stats := v.gw.VitalStats(context.Background(), v.patientID)
	if !v.Mounted() {
		return
	}
	if stats.Success {
		v.SetState(map[string]any{"stats": stats.Map("statistics")})
	}
}

func (v *PatientDetailView) Render() *VNode {
	state := v.State()
	patient, _ := state["patient"].(map[string]any)
	vitals, _ := state["vitals"].([]any)
	stats, _ := state["stats"].(map[string]any)

	if patient == nil {
		return Section(Class("patient-detail"),
			banner(str(state, "error")),
			If(boolOf(state, "loading"), P(Class("loading"), Text("Loading..."))),
		)
	}

	return Section(Class("patient-detail"),
		Header(Class("detail-header"),
			H1(Textf("%s %s", cell(patient, "first_name"), cell(patient, "last_name"))),
			A(Class("button"), Href(fmt.Sprintf("#/patients/%d/edit", v.patientID)), Text("Edit")),
		),
		banner(str(state, "error")),
		v.demographics(patient),
		v.statistics(stats),
		v.history(vitals),
		v.vitalsForm(state),
		P(A(Href("#/patients"), Text("Back to patients"))),
	)
}

func (v *PatientDetailView) demographics(patient map[string]any) *VNode {
	row := func(label, key string) *VNode {
		value := cell(patient, key)
		if value == "" {
			value = "-"
		}
		return Tr(Th(Text(label)), Td(Text(value)))
	}
	return Section(Class("demographics"),
		H2(Text("Demographics")),
		Table(
			row("Date of birth", "date_of_birth"),
			row("Gender", "gender"),
			row("Phone", "phone"),
			row("Email", "email"),
			row("Address", "address"),
			row("Medical history", "medical_history"),
		),
	)
}

func (v *PatientDetailView) statistics(stats map[string]any) *VNode {
	if stats == nil {
		return Nothing()
	}
	return Section(Class("vital-stats"),
		H2(Text("Statistics")),
		P(Textf("%d recorded measurements", intAt(stats, "total_records", 0))),
		Table(Class("stats"),
			THead(Tr(Range(vitalColumns, func(c vitalColumn, _ int) *VNode {
				return Th(Text(c.label))
			}))),
			TBody(Tr(Range(vitalColumns, func(c vitalColumn, _ int) *VNode {
				return Td(Text(fmtStat(stats["avg_"+c.key])))
			}))),
		),
	)
}

func (v *PatientDetailView) history(vitals []any) *VNode {
	return Section(Class("vitals-history"),
		H2(Text("Vitals history")),
		IfElse(len(vitals) == 0,
			P(Class("empty"), Text("No vitals recorded yet.")),
			Table(Class("records"),
				THead(Tr(
					Th(Text("Recorded")),
					Range(vitalColumns, func(c vitalColumn, _ int) *VNode {
						return Th(Text(c.label))
					}),
					Th(Text("Notes")),
				)),
				TBody(Range(vitals, func(raw any, _ int) *VNode {
					record, ok := raw.(map[string]any)
					if !ok {
						return Nothing()
					}
					return Tr(
						Td(Text(cell(record, "recorded_at"))),
						Range(vitalColumns, func(c vitalColumn, _ int) *VNode {
							value := "-"
							if record[c.key] != nil {
								value = fmtVital(record[c.key])
							}
							return Td(Text(value))
						}),
						Td(Text(cell(record, "notes"))),
					)
				})),
			),
		),
	)
}

func (v *PatientDetailView) vitalsForm(state map[string]any) *VNode {
	errs, _ := state["vitals_errors"].(map[string]string)

	return Section(Class("vitals-form"),
		H2(Text("Record vitals")),
		fieldMessage(errs, "general"),
		fieldMessage(errs, "blood_pressure"),
		Form(OnSubmit(v.submitVitals),
			Div(Class("vitals-grid"),
				labeledField("Systolic", "blood_pressure_systolic", "number", "", errs),
				labeledField("Diastolic", "blood_pressure_diastolic", "number", "", errs),
				labeledField("Heart rate", "heart_rate", "number", "", errs),
				labeledField("Temperature", "temperature", "number", "", errs),
				labeledField("Respiratory rate", "respiratory_rate", "number", "", errs),
				labeledField("SpO2", "oxygen_saturation", "number", "", errs),
			),
			labeledArea("Notes", "notes", "", errs),
			submitButton("Record", boolOf(state, "vitals_busy")),
		),
	)
}

func (v *PatientDetailView) submitVitals(ev Event) {
	in := validate.VitalsInput{
		Systolic:         ev.Form["blood_pressure_systolic"],
		Diastolic:        ev.Form["blood_pressure_diastolic"],
		HeartRate:        ev.Form["heart_rate"],
		Temperature:      ev.Form["temperature"],
		RespiratoryRate:  ev.Form["respiratory_rate"],
		OxygenSaturation: ev.Form["oxygen_saturation"],
		Notes:            ev.Form["notes"],
	}

	if ok, errs := in.Validate(); !ok {
		v.SetState(map[string]any{"vitals_errors": map[string]string(errs)})
		return
	}

	v.SetState(map[string]any{
		"vitals_errors": map[string]string{},
		"vitals_busy":   true,
	})

	res := v.gw.AddVitals(context.Background(), v.patientID, in.Payload())
	if !v.Mounted() {
		return
	}
	if !res.Success {
		next := map[string]any{"vitals_busy": false}
		if len(res.FieldErrors) > 0 {
			next["vitals_errors"] = res.FieldErrors
		} else {
			next["error"] = res.Error
		}
		v.SetState(next)
		return
	}

	v.SetState(map[string]any{"vitals_busy": false})
	v.reloadVitals()
}
