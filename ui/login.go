package ui

import (
	"context"

	"github.com/wardview/wardview/pkg/component"
	"github.com/wardview/wardview/pkg/gateway"
	"github.com/wardview/wardview/pkg/router"
	"github.com/wardview/wardview/pkg/validate"
	. "github.com/wardview/wardview/pkg/vdom"
)

// LoginView is the sign-in form. On success the credential lands in the
// gateway and navigation moves to the dashboard.
type LoginView struct {
	component.Base
	gw  *gateway.Client
	nav *router.Router
}

func NewLoginView(gw *gateway.Client, nav *router.Router) *LoginView {
	return &LoginView{gw: gw, nav: nav}
}

func (v *LoginView) Render() *VNode {
	state := v.State()
	errs := errsOf(state)

	return Section(Class("auth-page"),
		H1(Text("Sign in")),
		banner(str(state, "error")),
		Form(OnSubmit(v.submit),
			labeledField("Username", "username", "text", str(state, "username"), errs),
			labeledField("Password", "password", "password", "", errs),
			submitButton("Sign in", boolOf(state, "busy")),
		),
		P(Class("auth-switch"),
			Text("No account yet? "),
			A(Href("#/register"), Text("Register")),
		),
	)
}

func (v *LoginView) submit(ev Event) {
	in := validate.LoginInput{
		Username: ev.Form["username"],
		Password: ev.Form["password"],
	}
	if ok, errs := in.Validate(); !ok {
		v.SetState(map[string]any{
			"username": in.Username,
			"errors":   map[string]string(errs),
			"error":    "",
		})
		return
	}

	v.SetState(map[string]any{
		"username": in.Username,
		"errors":   map[string]string{},
		"error":    "",
		"busy":     true,
	})

	res := v.gw.Login(context.Background(), in.Username, in.Password)
	if !v.Mounted() {
		return
	}
	if !res.Success {
		v.SetState(map[string]any{"busy": false, "error": res.Error})
		return
	}
	v.nav.Goto(router.HomePath)
}
