package wardview

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/wardview/wardview/pkg/component"
	"github.com/wardview/wardview/pkg/router"
	"github.com/wardview/wardview/pkg/shell"
	"github.com/wardview/wardview/pkg/vdom"
	"github.com/wardview/wardview/ui"
)

// App is one browser session's runtime: its router, the navbar, and the
// currently mounted leaf view. All methods run on the session's event
// goroutine; the shell never calls them concurrently.
type App struct {
	rt     *Runtime
	nav    *router.Router
	logger *slog.Logger

	send func(shell.Frame)

	navbar     *ui.Navbar
	navbarInst *component.Instance
	current    *component.Instance
}

func newApp(rt *Runtime) *App {
	a := &App{
		rt:     rt,
		nav:    router.New(rt.gw),
		logger: rt.logger.With("component", "app"),
	}
	a.registerRoutes()
	return a
}

func (a *App) registerRoutes() {
	gw := a.rt.gw

	a.nav.Register(router.RootPath, func(router.Match) {
		// Bare root is never a destination; an unauthenticated session
		// lands on the login form, the guard sends authenticated ones home.
		a.nav.Goto(router.LoginPath)
	})
	a.nav.Register(router.LoginPath, func(router.Match) {
		a.show(ui.NewLoginView(gw, a.nav), nil)
	})
	a.nav.Register(router.RegisterPath, func(router.Match) {
		a.show(ui.NewRegisterView(gw, a.nav), nil)
	})
	a.nav.Register(router.HomePath, func(router.Match) {
		view := ui.NewDashboardView(gw, a.nav)
		a.show(view, view.Load)
	})
	a.nav.Register("/patients", a.showPatients)
	a.nav.SetNotFound(func(router.Match) {
		a.show(ui.NewNotFoundView(), nil)
	})
}

// showPatients resolves the /patients sub-locations: the list, the create
// form, one record, and the edit form.
func (a *App) showPatients(m router.Match) {
	gw := a.rt.gw

	switch {
	case len(m.Extra) == 0:
		view := ui.NewPatientListView(gw, a.nav)
		a.show(view, view.Load)

	case m.Extra[0] == "new":
		a.show(ui.NewPatientFormView(gw, a.nav, 0), nil)

	default:
		id, err := strconv.Atoi(m.Extra[0])
		if err != nil {
			a.show(ui.NewNotFoundView(), nil)
			return
		}
		if len(m.Extra) > 1 && m.Extra[1] == "edit" {
			view := ui.NewPatientFormView(gw, a.nav, id)
			a.show(view, view.Load)
			return
		}
		view := ui.NewPatientDetailView(gw, a.nav, id)
		a.show(view, view.Load)
	}
}

// show replaces the current leaf view: unmount the old instance, mount the
// new one with a render sink feeding the main region, then run the loader.
func (a *App) show(c component.Component, load func()) {
	if a.current != nil {
		a.current.Unmount()
	}

	inst := component.New(c)
	inst.SetRenderSink(func(html string) {
		a.send(shell.Frame{Type: shell.FrameRender, Region: shell.RegionMain, HTML: html})
	})
	a.current = inst

	if err := inst.Mount(); err != nil {
		a.logger.Error("view mount failed", "error", err)
		return
	}
	if load != nil {
		load()
	}
}

// Start mounts the navbar, resolves the initial location, and pushes the
// first renders.
func (a *App) Start(send func(shell.Frame)) {
	a.send = send

	a.navbar = ui.NewNavbar(a.rt.gw, a.nav)
	a.navbarInst = component.New(a.navbar)
	a.navbarInst.SetRenderSink(func(html string) {
		a.send(shell.Frame{Type: shell.FrameRender, Region: shell.RegionNav, HTML: html})
	})
	if err := a.navbarInst.Mount(); err != nil {
		a.logger.Error("navbar mount failed", "error", err)
	}
	a.nav.SetNavHook(a.navbar.SetVisible)

	a.nav.Goto(router.RootPath)
	a.syncLocation()
}

// HandleFrame processes one inbound frame from the thin client.
func (a *App) HandleFrame(f shell.Frame) {
	switch f.Type {
	case shell.FrameNavigate:
		a.nav.Goto(f.Location)
		a.syncLocation()

	case shell.FrameEvent, shell.FrameSubmit:
		if a.current == nil {
			return
		}
		handled := a.current.Dispatch(f.Target, f.Event, vdom.Event{
			Type:  f.Event,
			Value: f.Value,
			Form:  f.Form,
		})
		if !handled {
			// Routinely happens when an event races a re-render.
			a.logger.Debug("event without handler", "target", f.Target, "event", f.Event)
			return
		}
		a.syncLocation()
	}
}

// syncLocation mirrors the router's location back to the browser hash after
// guard redirects or handler-driven navigation.
func (a *App) syncLocation() {
	location := a.nav.Location()
	if !strings.HasPrefix(location, "#") {
		location = "#" + location
	}
	a.send(shell.Frame{Type: shell.FrameLocation, Location: location})
}

// Close unmounts everything the session mounted.
func (a *App) Close() {
	if a.current != nil {
		a.current.Unmount()
		a.current = nil
	}
	if a.navbarInst != nil {
		a.navbarInst.Unmount()
		a.navbarInst = nil
	}
}
