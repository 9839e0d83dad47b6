package ui

import (
	"context"
	"fmt"

	"github.com/wardview/wardview/pkg/component"
	"github.com/wardview/wardview/pkg/gateway"
	"github.com/wardview/wardview/pkg/router"
	. "github.com/wardview/wardview/pkg/vdom"
)

// patientsPerPage is the fixed page size for the list view.
const patientsPerPage = 10

// PatientListView is the searchable, paginated patient table.
type PatientListView struct {
	component.Base
	gw  *gateway.Client
	nav *router.Router
}

func NewPatientListView(gw *gateway.Client, nav *router.Router) *PatientListView {
	return &PatientListView{gw: gw, nav: nav}
}

// Load fetches the current page with the current search term.
func (v *PatientListView) Load() {
	if !v.Mounted() {
		return
	}
	state := v.State()
	search := str(state, "search")
	page := intOf(state, "page")
	if page < 1 {
		page = 1
	}

	v.SetState(map[string]any{"loading": true, "error": ""})

	res := v.gw.Patients(context.Background(), search, page, patientsPerPage)
	if !v.Mounted() {
		return
	}
	if !res.Success {
		v.SetState(map[string]any{"loading": false, "error": res.Error})
		return
	}

	next := map[string]any{
		"loading":  false,
		"patients": res.Slice("patients"),
		"page":     page,
	}
	if p := res.Map("pagination"); p != nil {
		next["page"] = intAt(p, "page", page)
		next["pages"] = intAt(p, "pages", 1)
		next["total"] = intAt(p, "total", 0)
	}
	v.SetState(next)
}

func (v *PatientListView) Render() *VNode {
	state := v.State()
	patients, _ := state["patients"].([]any)
	page := intOf(state, "page")
	pages := intOf(state, "pages")

	return Section(Class("patient-list"),
		H1(Text("Patients")),
		banner(str(state, "error")),
		Form(Class("search-bar"), OnSubmit(v.search),
			Input(Name("search"), Type("search"),
				Placeholder("Search by name"), Value(str(state, "search"))),
			Button(Type("submit"), Text("Search")),
			A(Class("button"), Href("#/patients/new"), Text("Add patient")),
		),
		If(boolOf(state, "loading"), P(Class("loading"), Text("Loading..."))),
		IfElse(len(patients) == 0 && !boolOf(state, "loading"),
			P(Class("empty"), Text("No matching patients.")),
			Table(Class("records"),
				THead(Tr(
					Th(Text("Name")),
					Th(Text("Date of birth")),
					Th(Text("Gender")),
					Th(Text("Phone")),
				)),
				TBody(Range(patients, func(raw any, _ int) *VNode {
					record, ok := raw.(map[string]any)
					if !ok {
						return Nothing()
					}
					return v.row(record)
				})),
			),
		),
		v.pager(page, pages, intOf(state, "total")),
	)
}

func (v *PatientListView) row(record map[string]any) *VNode {
	id := recordID(record)
	return Tr(Class("record-row"),
		OnClick(func(Event) { v.nav.Goto(fmt.Sprintf("#/patients/%d", id)) }),
		Td(Textf("%s %s", cell(record, "first_name"), cell(record, "last_name"))),
		Td(Text(cell(record, "date_of_birth"))),
		Td(Text(cell(record, "gender"))),
		Td(Text(cell(record, "phone"))),
	)
}

func (v *PatientListView) pager(page, pages, total int) *VNode {
	if pages <= 1 {
		return Nothing()
	}
	return Div(Class("pager"),
		Button(Disabled(page <= 1), OnClick(func(Event) { v.goToPage(page - 1) }),
			Text("Previous")),
		Span(Textf("Page %d of %d (%d patients)", page, pages, total)),
		Button(Disabled(page >= pages), OnClick(func(Event) { v.goToPage(page + 1) }),
			Text("Next")),
	)
}

func (v *PatientListView) search(ev Event) {
	v.SetState(map[string]any{"search": ev.Form["search"], "page": 1})
	v.Load()
}

func (v *PatientListView) goToPage(page int) {
	v.SetState(map[string]any{"page": page})
	v.Load()
}

// intAt reads a numeric field from a decoded JSON object.
func intAt(m map[string]any, key string, fallback int) int {
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return fallback
}
