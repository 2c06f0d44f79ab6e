package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/feedtab"
	"golang.org/x/net/html"
)

var _ feedtab.Node = (*Node)(nil)

// matchers caches compiled selectors. Extraction runs the same handful of
// selectors against every block of every document.
var matchers sync.Map

// compile returns the compiled selector, or nil if selector is invalid.
// Comma-separated groups are accepted.
func compile(selector string) goquery.Matcher {
	v, ok := matchers.Load(selector)
	if !ok {
		sel, err := cascadia.Compile(selector)
		if err != nil {
			sel = nil
		}
		v, _ = matchers.LoadOrStore(selector, sel)
	}
	sel, _ := v.(cascadia.Selector)
	if sel == nil {
		return nil
	}
	return sel
}

// Node wraps a single-element goquery selection.
type Node struct {
	sel *goquery.Selection
}

// Select returns all descendants matching selector in document order.
// An invalid selector matches nothing.
func (n *Node) Select(selector string) []feedtab.Node {
	m := compile(selector)
	if m == nil {
		return nil
	}
	found := n.sel.FindMatcher(m)
	nodes := make([]feedtab.Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// SelectOne returns the first descendant matching selector, or nil.
func (n *Node) SelectOne(selector string) feedtab.Node {
	m := compile(selector)
	if m == nil {
		return nil
	}
	found := n.sel.FindMatcher(m)
	if found.Length() == 0 {
		// A nil *Node stored in the interface would not compare equal to nil.
		return nil
	}
	return &Node{sel: found.First()}
}

// Text returns the node's text content.
func (n *Node) Text(sep string, strip bool) string {
	if !strip {
		return n.sel.Text()
	}
	leaves := n.Strings()
	for i, s := range leaves {
		leaves[i] = strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(leaves, sep)
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Closest returns the nearest ancestor accepted by match.
func (n *Node) Closest(match func(feedtab.Node) bool) feedtab.Node {
	for p := n.sel.Parent(); p.Length() > 0; p = p.Parent() {
		if p.Nodes[0].Type != html.ElementNode {
			break
		}
		candidate := &Node{sel: p}
		if match(candidate) {
			return candidate
		}
	}
	return nil
}

// Strings returns trimmed, non-empty text leaves in document order.
// Text inside script and style elements is skipped.
func (n *Node) Strings() []string {
	var out []string
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		switch h.Type {
		case html.TextNode:
			if s := strings.TrimSpace(h.Data); s != "" {
				out = append(out, s)
			}
			return
		case html.ElementNode:
			if h.Data == "script" || h.Data == "style" {
				return
			}
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, h := range n.sel.Nodes {
		walk(h)
	}
	return out
}
