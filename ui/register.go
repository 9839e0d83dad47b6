package ui

import (
	"context"

	"github.com/wardview/wardview/pkg/component"
	"github.com/wardview/wardview/pkg/gateway"
	"github.com/wardview/wardview/pkg/router"
	"github.com/wardview/wardview/pkg/validate"
	. "github.com/wardview/wardview/pkg/vdom"
)

// RegisterView is the account-creation form. Local validation runs first and
// short-circuits the network call; remote field errors render the same way
// local ones do.
type RegisterView struct {
	component.Base
	gw  *gateway.Client
	nav *router.Router
}

func NewRegisterView(gw *gateway.Client, nav *router.Router) *RegisterView {
	return &RegisterView{gw: gw, nav: nav}
}

func (v *RegisterView) Render() *VNode {
	state := v.State()
	errs := errsOf(state)

	return Section(Class("auth-page"),
		H1(Text("Create account")),
		banner(str(state, "error")),
		errorSummary(errs),
		Form(OnSubmit(v.submit),
			labeledField("Username", "username", "text", str(state, "username"), errs),
			labeledField("Email", "email", "email", str(state, "email"), errs),
			labeledField("Password", "password", "password", "", errs),
			submitButton("Register", boolOf(state, "busy")),
		),
		P(Class("auth-switch"),
			Text("Already registered? "),
			A(Href("#/login"), Text("Sign in")),
		),
	)
}

func (v *RegisterView) submit(ev Event) {
	in := validate.RegistrationInput{
		Username: ev.Form["username"],
		Email:    ev.Form["email"],
		Password: ev.Form["password"],
	}
	retained := map[string]any{
		"username": in.Username,
		"email":    in.Email,
	}

	if ok, errs := in.Validate(); !ok {
		retained["errors"] = map[string]string(errs)
		retained["error"] = ""
		v.SetState(retained)
		return
	}

	retained["errors"] = map[string]string{}
	retained["error"] = ""
	retained["busy"] = true
	v.SetState(retained)

	res := v.gw.Register(context.Background(), in.Username, in.Email, in.Password)
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
	v.nav.Goto("#/login")
}
