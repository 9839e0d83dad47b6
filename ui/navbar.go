package ui

import (
	"github.com/wardview/wardview/pkg/component"
	"github.com/wardview/wardview/pkg/gateway"
	"github.com/wardview/wardview/pkg/router"
	. "github.com/wardview/wardview/pkg/vdom"
)

// Navbar is the top navigation affordance. The router's navigation hook
// drives its visibility: it renders nothing while no credential is held.
type Navbar struct {
	component.Base
	gw  *gateway.Client
	nav *router.Router
}

func NewNavbar(gw *gateway.Client, nav *router.Router) *Navbar {
	return &Navbar{gw: gw, nav: nav}
}

// SetVisible is wired to router.SetNavHook.
func (v *Navbar) SetVisible(visible bool) {
	if !v.Mounted() {
		return
	}
	v.SetState(map[string]any{"visible": visible})
}

func (v *Navbar) Render() *VNode {
	if !boolOf(v.State(), "visible") {
		return Nothing()
	}
	return Header(Class("navbar"),
		Nav(
			A(Href("#/dashboard"), Text("Dashboard")),
			A(Href("#/patients"), Text("Patients")),
		),
		Button(Class("logout"), OnClick(v.logout), Text("Sign out")),
	)
}

func (v *Navbar) logout(Event) {
	// The in-memory credential is cleared even when persistence fails, so
	// navigation proceeds regardless.
	_ = v.gw.Logout()
	v.nav.Goto(router.LoginPath)
}
