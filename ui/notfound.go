package ui

import (
	"github.com/wardview/wardview/pkg/component"
	. "github.com/wardview/wardview/pkg/vdom"
)

// NotFoundView is the fallback for unknown locations.
type NotFoundView struct {
	component.Base
}

func NewNotFoundView() *NotFoundView {
	return &NotFoundView{}
}

func (v *NotFoundView) Render() *VNode {
	return Section(Class("not-found"),
		H1(Text("Page not found")),
		P(Text("The page you were looking for does not exist.")),
		P(A(Href("#/dashboard"), Text("Back to the dashboard"))),
	)
}
