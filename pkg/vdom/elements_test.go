package vdom

import "testing"

func TestCreateElementArgs(t *testing.T) {
	node := Div(
		Class("card", "wide"),
		ID("main"),
		nil, // ignored
		H2("Title"),
		[]*VNode{Text("a"), nil, Text("b")},
		"shorthand text",
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("got kind=%v tag=%q", node.Kind, node.Tag)
	}
	if node.Props["class"] != "card wide" {
		t.Errorf("class = %v, want %q", node.Props["class"], "card wide")
	}
	if node.Props["id"] != "main" {
		t.Errorf("id = %v, want %q", node.Props["id"], "main")
	}
	// h2, a, b, shorthand
	if len(node.Children) != 4 {
		t.Fatalf("len(children) = %d, want 4", len(node.Children))
	}
	if node.Children[3].Kind != KindText || node.Children[3].Text != "shorthand text" {
		t.Errorf("string arg should become a text child, got %+v", node.Children[3])
	}
}

func TestCreateElementHandler(t *testing.T) {
	called := false
	node := Button(OnClick(func(Event) { called = true }))

	h, ok := node.Props["onclick"].(Handler)
	if !ok {
		t.Fatalf("onclick prop has type %T, want Handler", node.Props["onclick"])
	}
	h(Event{Type: "click"})
	if !called {
		t.Error("stored handler was not invoked")
	}
}

func TestAttrSlice(t *testing.T) {
	node := Input([]Attr{Type("text"), Name("username"), {}})
	if node.Props["type"] != "text" || node.Props["name"] != "username" {
		t.Errorf("attrs not applied: %v", node.Props)
	}
	if _, ok := node.Props[""]; ok {
		t.Error("empty attr should be skipped")
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("input") {
		t.Error("input should be void")
	}
	if IsVoidElement("div") {
		t.Error("div should not be void")
	}
}
