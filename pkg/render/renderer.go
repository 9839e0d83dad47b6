package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wardview/wardview/pkg/vdom"
)

// Renderer serializes VNode trees to HTML. It assigns a binding id to every
// interactive element and collects the element's handlers into a registry so
// the owning component can dispatch incoming events after each render.
//
// A Renderer is not safe for concurrent use; each component instance owns one.
type Renderer struct {
	bindCounter uint32
	handlers    map[string]vdom.Handler
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		handlers: make(map[string]vdom.Handler),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node)
}

// Handlers returns the handler registry collected during rendering.
// Keys are in the format "bid_eventname" (e.g. "b1_onclick").
func (r *Renderer) Handlers() map[string]vdom.Handler {
	return r.handlers
}

// Reset clears the binding counter and handler registry for the next render
// cycle. Components call this before every full re-render so stale bindings
// never survive a cycle.
func (r *Renderer) Reset() {
	r.bindCounter = 0
	r.handlers = make(map[string]vdom.Handler)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if node.IsInteractive() {
		bid := r.nextBindID()
		if _, err := fmt.Fprintf(w, ` data-wv="%s"`, bid); err != nil {
			return err
		}
		r.registerHandlers(bid, node)
	}

	if vdom.IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// renderAttributes writes all non-handler attributes in sorted key order so
// output is deterministic.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if node.Props == nil {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Handlers are registered, not serialized. Event marker attributes
		// let the thin client know which DOM events to forward.
		if strings.HasPrefix(key, "on") && isHandler(value) {
			eventName := strings.ToLower(key[2:])
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, eventName); err != nil {
				return err
			}
			continue
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) nextBindID() string {
	r.bindCounter++
	return fmt.Sprintf("b%d", r.bindCounter)
}

func (r *Renderer) registerHandlers(bid string, node *vdom.VNode) {
	for key, value := range node.Props {
		if !strings.HasPrefix(key, "on") {
			continue
		}
		if h, ok := value.(vdom.Handler); ok {
			r.handlers[bid+"_"+key] = h
		}
	}
}

func isHandler(value any) bool {
	_, ok := value.(vdom.Handler)
	return ok
}

// booleanAttrs render as bare attribute names when true and are omitted
// when false.
var booleanAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
	"readonly": true,
	"required": true,
	"selected": true,
}

func isBooleanAttr(key string) bool {
	return booleanAttrs[key]
}

func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
