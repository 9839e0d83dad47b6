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

// PatientFormView creates or edits one record. A zero patientID means
// create; otherwise the form loads and edits the existing record. Local group
// validation runs before any network call, and remote field errors land in
// the same per-field slots local ones do.
type PatientFormView struct {
	component.Base
	gw        *gateway.Client
	nav       *router.Router
	patientID int
}

func NewPatientFormView(gw *gateway.Client, nav *router.Router, patientID int) *PatientFormView {
	return &PatientFormView{gw: gw, nav: nav, patientID: patientID}
}

// Load seeds the form from the existing record when editing.
func (v *PatientFormView) Load() {
	if v.patientID == 0 || !v.Mounted() {
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

	record := res.Map("patient")
	v.SetState(map[string]any{
		"loading":         false,
		"first_name":      cell(record, "first_name"),
		"last_name":       cell(record, "last_name"),
		"date_of_birth":   cell(record, "date_of_birth"),
		"gender":          cell(record, "gender"),
		"phone":           cell(record, "phone"),
		"email":           cell(record, "email"),
		"address":         cell(record, "address"),
		"medical_history": cell(record, "medical_history"),
	})
}

func (v *PatientFormView) Render() *VNode {
	state := v.State()
	errs := errsOf(state)

	title := "Add patient"
	action := "Create record"
	if v.patientID != 0 {
		title = "Edit patient"
		action = "Save changes"
	}

	return Section(Class("patient-form"),
		H1(Text(title)),
		banner(str(state, "error")),
		errorSummary(errs),
		If(boolOf(state, "loading"), P(Class("loading"), Text("Loading..."))),
		Form(OnSubmit(v.submit),
			labeledField("First name", "first_name", "text", str(state, "first_name"), errs),
			labeledField("Last name", "last_name", "text", str(state, "last_name"), errs),
			labeledField("Date of birth", "date_of_birth", "date", str(state, "date_of_birth"), errs),
			genderSelect(str(state, "gender"), errs),
			labeledField("Phone", "phone", "tel", str(state, "phone"), errs),
			labeledField("Email", "email", "email", str(state, "email"), errs),
			labeledField("Address", "address", "text", str(state, "address"), errs),
			labeledArea("Medical history", "medical_history", str(state, "medical_history"), errs),
			submitButton(action, boolOf(state, "busy")),
		),
		P(A(Href("#/patients"), Text("Back to patients"))),
	)
}

func genderSelect(current string, errs map[string]string) *VNode {
	options := []string{"Male", "Female", "Other"}
	return Div(Class("field"),
		Label(For("gender"), Text("Gender")),
		Select(ID("gender"), Name("gender"),
			Option(Value(""), Selected(current == ""), Text("Select...")),
			Range(options, func(g string, _ int) *VNode {
				return Option(Value(g), Selected(current == g), Text(g))
			}),
		),
		fieldMessage(errs, "gender"),
	)
}

func (v *PatientFormView) submit(ev Event) {
	in := validate.PatientInput{
		FirstName:      ev.Form["first_name"],
		LastName:       ev.Form["last_name"],
		DateOfBirth:    ev.Form["date_of_birth"],
		Gender:         ev.Form["gender"],
		Phone:          ev.Form["phone"],
		Email:          ev.Form["email"],
		Address:        ev.Form["address"],
		MedicalHistory: ev.Form["medical_history"],
	}

	retained := map[string]any{
		"first_name":      in.FirstName,
		"last_name":       in.LastName,
		"date_of_birth":   in.DateOfBirth,
		"gender":          in.Gender,
		"phone":           in.Phone,
		"email":           in.Email,
		"address":         in.Address,
		"medical_history": in.MedicalHistory,
		"error":           "",
	}

	if ok, errs := in.Validate(); !ok {
		retained["errors"] = map[string]string(errs)
		v.SetState(retained)
		return
	}

	retained["errors"] = map[string]string{}
	retained["busy"] = true
	v.SetState(retained)

	var res gateway.Result
	if v.patientID == 0 {
		res = v.gw.CreatePatient(context.Background(), in.Payload())
	} else {
		res = v.gw.UpdatePatient(context.Background(), v.patientID, in.Payload())
	}
	if !v.Mounted() {
		return
	}
	if !res.Success {
		v.SetState(map[string]any{
			"busy":   false,
			"error":  res.Error,
			"errors": res.FieldErrors,
		})
		return
	}

	id := v.patientID
	if id == 0 {
		id = recordID(res.Map("patient"))
	}
	if id != 0 {
		v.nav.Goto(fmt.Sprintf("#/patients/%d", id))
		return
	}
	v.nav.Goto("#/patients")
}
