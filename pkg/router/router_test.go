package router

import (
	"testing"
)

// fakeAuth is a toggleable AuthChecker.
type fakeAuth struct {
	authenticated bool
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authenticated }

func newTestRouter(authenticated bool) (*Router, *fakeAuth, map[string]int) {
	auth := &fakeAuth{authenticated: authenticated}
	r := New(auth)
	calls := map[string]int{}

	r.Register("/login", func(Match) { calls["login"]++ })
	r.Register("/register", func(Match) { calls["register"]++ })
	r.Register("/dashboard", func(Match) { calls["dashboard"]++ })
	r.Register("/patients", func(Match) { calls["patients"]++ })
	r.SetNotFound(func(Match) { calls["notfound"]++ })

	return r, auth, calls
}

func TestNavigateDoesNotInvoke(t *testing.T) {
	r, _, calls := newTestRouter(true)

	r.Navigate("#/dashboard")
	if len(calls) != 0 {
		t.Errorf("Navigate alone invoked handlers: %v", calls)
	}
	if r.Location() != "#/dashboard" {
		t.Errorf("Location = %q", r.Location())
	}
}

func TestResolveInvokesRegisteredHandler(t *testing.T) {
	r, _, calls := newTestRouter(true)

	r.Goto("#/patients")
	if calls["patients"] != 1 {
		t.Errorf("patients handler calls = %d, want 1", calls["patients"])
	}
}

func TestGuardProtectedRedirectsToLogin(t *testing.T) {
	r, _, calls := newTestRouter(false)

	r.Goto("#/patients")
	if calls["patients"] != 0 {
		t.Error("protected handler ran without credential")
	}
	if calls["login"] != 1 {
		t.Errorf("login calls = %d, want 1", calls["login"])
	}
	if r.Location() != LoginPath {
		t.Errorf("Location = %q, want %q", r.Location(), LoginPath)
	}
}

func TestGuardPublicRedirectsToHome(t *testing.T) {
	r, _, calls := newTestRouter(true)

	r.Goto("#/login")
	if calls["login"] != 0 {
		t.Error("login view rendered while authenticated")
	}
	if calls["dashboard"] != 1 {
		t.Errorf("dashboard calls = %d, want 1", calls["dashboard"])
	}

	r.Goto("#/")
	if calls["dashboard"] != 2 {
		t.Errorf("root should redirect home, dashboard calls = %d", calls["dashboard"])
	}
}

// The registration sub-flow stays reachable while authenticated.
func TestRegisterExemptFromPublicRedirect(t *testing.T) {
	r, _, calls := newTestRouter(true)

	r.Goto("#/register")
	if calls["register"] != 1 {
		t.Errorf("register calls = %d, want 1", calls["register"])
	}
}

// Guard precedes fallback: unknown paths fall through to not-found only when
// authenticated; unauthenticated they redirect to login.
func TestUnknownPathGuardPrecedesFallback(t *testing.T) {
	r, auth, calls := newTestRouter(true)

	r.Goto("#/bogus")
	if calls["notfound"] != 1 {
		t.Errorf("notfound calls = %d, want 1", calls["notfound"])
	}

	auth.authenticated = false
	r.Goto("#/bogus")
	if calls["notfound"] != 1 {
		t.Error("unauthenticated unknown path reached not-found")
	}
	if calls["login"] != 1 {
		t.Errorf("login calls = %d, want 1", calls["login"])
	}
}

func TestUnknownPathWithoutFallback(t *testing.T) {
	auth := &fakeAuth{authenticated: true}
	r := New(auth)
	r.Register("/dashboard", func(Match) {})

	// No fallback registered: resolution must be a silent no-op.
	r.Goto("#/bogus")
}

func TestLastRegistrationWins(t *testing.T) {
	auth := &fakeAuth{authenticated: true}
	r := New(auth)

	var which string
	r.Register("/patients", func(Match) { which = "first" })
	r.Register("/patients", func(Match) { which = "second" })

	r.Goto("#/patients")
	if which != "second" {
		t.Errorf("handler = %q, want second", which)
	}
}

func TestHandlerReceivesExtraAndQuery(t *testing.T) {
	auth := &fakeAuth{authenticated: true}
	r := New(auth)

	var got Match
	r.Register("/patients", func(m Match) { got = m })

	r.Goto("#/patients/7/vitals?tab=stats")
	if len(got.Extra) != 2 || got.Extra[0] != "7" || got.Extra[1] != "vitals" {
		t.Errorf("Extra = %v", got.Extra)
	}
	if got.Query.Get("tab") != "stats" {
		t.Errorf("Query[tab] = %q", got.Query.Get("tab"))
	}
}

func TestNavHookTracksAuthState(t *testing.T) {
	r, auth, _ := newTestRouter(false)

	var visible, called bool
	r.SetNavHook(func(v bool) { visible = v; called = true })

	r.Goto("#/login")
	if !called || visible {
		t.Errorf("nav hook: called=%v visible=%v, want called, hidden", called, visible)
	}

	auth.authenticated = true
	r.Goto("#/dashboard")
	if !visible {
		t.Error("nav hook should show affordance while authenticated")
	}
}

// Login flow end to end at the router level: unauthenticated /login renders,
// then after the credential appears the same location redirects home.
func TestLoginThenRedirect(t *testing.T) {
	r, auth, calls := newTestRouter(false)

	r.Goto("#/login")
	if calls["login"] != 1 {
		t.Fatalf("login calls = %d, want 1", calls["login"])
	}

	auth.authenticated = true
	r.Resolve()
	if calls["dashboard"] != 1 {
		t.Errorf("dashboard calls = %d, want 1 after credential appears", calls["dashboard"])
	}
}
