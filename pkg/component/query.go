package component

import (
	"strings"

	"github.com/wardview/wardview/pkg/vdom"
)

// Find returns the first node in the instance's own rendered subtree matching
// the selector, or nil. Selectors support tag names, #id, .class, and
// combinations such as "input.error". The search never crosses into another
// instance's subtree.
func (i *Instance) Find(selector string) *vdom.VNode {
	matches := i.query(selector, true)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// FindAll returns every node in the instance's own rendered subtree matching
// the selector, in document order.
func (i *Instance) FindAll(selector string) []*vdom.VNode {
	return i.query(selector, false)
}

func (i *Instance) query(selector string, firstOnly bool) []*vdom.VNode {
	tree := i.Tree()
	if tree == nil {
		return nil
	}

	sel, ok := parseSelector(selector)
	if !ok {
		return nil
	}

	var matches []*vdom.VNode
	var walk func(node *vdom.VNode) bool
	walk = func(node *vdom.VNode) bool {
		if node == nil {
			return false
		}
		if sel.matches(node) {
			matches = append(matches, node)
			if firstOnly {
				return true
			}
		}
		for _, child := range node.Children {
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(tree)
	return matches
}

// selector is a parsed simple selector: optional tag, optional id, classes.
type selector struct {
	tag     string
	id      string
	classes []string
}

func parseSelector(s string) (selector, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return selector{}, false
	}

	var sel selector
	// Split on # and . boundaries, keeping the delimiter with its token.
	token := strings.Builder{}
	kind := byte(0) // 0 = tag, '#' = id, '.' = class
	flush := func() {
		t := token.String()
		token.Reset()
		if t == "" {
			return
		}
		switch kind {
		case '#':
			sel.id = t
		case '.':
			sel.classes = append(sel.classes, t)
		default:
			sel.tag = t
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '#' || c == '.' {
			flush()
			kind = c
			continue
		}
		token.WriteByte(c)
	}
	flush()

	if sel.tag == "" && sel.id == "" && len(sel.classes) == 0 {
		return selector{}, false
	}
	return sel, true
}

func (s selector) matches(node *vdom.VNode) bool {
	if node.Kind != vdom.KindElement {
		return false
	}
	if s.tag != "" && node.Tag != s.tag {
		return false
	}
	if s.id != "" {
		id, _ := node.Props["id"].(string)
		if id != s.id {
			return false
		}
	}
	if len(s.classes) > 0 {
		class, _ := node.Props["class"].(string)
		have := strings.Fields(class)
		for _, want := range s.classes {
			found := false
			for _, c := range have {
				if c == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}
