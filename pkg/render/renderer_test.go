package render

import (
	"strings"
	"testing"

	"github.com/wardview/wardview/pkg/vdom"
)

func TestRenderBasicElement(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderToString(vdom.Div(
		vdom.Class("card"),
		vdom.H2("Patients"),
	))
	if err != nil {
		t.Fatal(err)
	}

	want := `<div class="card"><h2>Patients</h2></div>`
	if html != want {
		t.Errorf("html = %q, want %q", html, want)
	}
}

func TestRenderEscapesText(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderToString(vdom.P(vdom.Text(`<script>&"'`)))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(html, "<script>") {
		t.Errorf("text was not escaped: %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;&amp;&quot;&#39;") {
		t.Errorf("unexpected escaping: %q", html)
	}
}

func TestRenderRawUnescaped(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderToString(vdom.Raw("<b>bold</b>"))
	if err != nil {
		t.Fatal(err)
	}
	if html != "<b>bold</b>" {
		t.Errorf("raw html altered: %q", html)
	}
}

func TestRenderVoidElement(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderToString(vdom.Input(vdom.Type("text"), vdom.Name("q")))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "</input>") {
		t.Errorf("void element rendered with closing tag: %q", html)
	}
}

func TestRenderBooleanAttrs(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderToString(vdom.Fragment(
		vdom.Button(vdom.Disabled(true), "Save"),
		vdom.Button(vdom.Disabled(false), "Cancel"),
	))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<button disabled>") {
		t.Errorf("true boolean attr missing: %q", html)
	}
	if strings.Count(html, "disabled") != 1 {
		t.Errorf("false boolean attr should be omitted: %q", html)
	}
}

func TestRenderCollectsHandlers(t *testing.T) {
	r := NewRenderer()

	clicked := false
	node := vdom.Div(
		vdom.Button(vdom.OnClick(func(vdom.Event) { clicked = true }), "Go"),
		vdom.Input(vdom.OnInput(func(vdom.Event) {}), vdom.Name("search")),
	)

	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(html, `data-wv="b1"`) || !strings.Contains(html, `data-wv="b2"`) {
		t.Errorf("binding ids missing: %q", html)
	}
	if !strings.Contains(html, `data-on-click="true"`) {
		t.Errorf("event marker missing: %q", html)
	}

	handlers := r.Handlers()
	if len(handlers) != 2 {
		t.Fatalf("len(handlers) = %d, want 2", len(handlers))
	}
	h, ok := handlers["b1_onclick"]
	if !ok {
		t.Fatalf("handler b1_onclick not registered, have %v", keys(handlers))
	}
	h(vdom.Event{Type: "click"})
	if !clicked {
		t.Error("dispatched handler did not run")
	}
}

func TestRendererReset(t *testing.T) {
	r := NewRenderer()

	if _, err := r.RenderToString(vdom.Button(vdom.OnClick(func(vdom.Event) {}))); err != nil {
		t.Fatal(err)
	}
	if len(r.Handlers()) != 1 {
		t.Fatalf("expected one handler before reset")
	}

	r.Reset()
	if len(r.Handlers()) != 0 {
		t.Error("reset should clear the handler registry")
	}

	html, err := r.RenderToString(vdom.Button(vdom.OnClick(func(vdom.Event) {})))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `data-wv="b1"`) {
		t.Errorf("binding counter should restart at b1 after reset: %q", html)
	}
}

func keys(m map[string]vdom.Handler) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
