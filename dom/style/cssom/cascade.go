package cssom

import (
	"errors"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/aural/dom/style"
	"github.com/npillmayer/aural/dom/styledtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoDocument is returned if Style is called without an HTML node.
var ErrNoDocument = errors.New("cannot style empty document")

// compiledRule is a rule with its selectors parsed, remembering its position
// among all the rules of all stylesheets.
type compiledRule struct {
	rule      Rule
	selectors cascadia.SelectorGroup
	order     int
}

// declaration is a candidate value for a property of a node.
type declaration struct {
	value       style.Property
	important   bool
	inline      bool // from the element's style attribute
	specificity cascadia.Specificity
	order       int
}

// overrides is true if d wins over other in the cascade.
func (d declaration) overrides(other declaration) bool {
	if d.important != other.important {
		return d.important
	}
	if d.inline != other.inline {
		return d.inline
	}
	if d.specificity != other.specificity {
		return other.specificity.Less(d.specificity)
	}
	return d.order > other.order
}

// Style creates a styled tree for the HTML tree at root. The rules of the
// stylesheets are applied in the order the stylesheets are given.
//
// Text nodes are styled with an empty property map. Whitespace-only text,
// comments, doctypes and the content of <head>, <style> and <script>
// elements are not included in the styled tree.
func Style(root *html.Node, sheets ...StyleSheet) (*styledtree.StyNode, error) {
	if root == nil {
		return nil, ErrNoDocument
	}
	rules := compile(sheets)
	tracer().Debugf("styling with %d rules from %d stylesheets", len(rules), len(sheets))
	sn := styleNode(root, nil, rules)
	if sn == nil {
		return nil, ErrNoDocument
	}
	return sn, nil
}

func compile(sheets []StyleSheet) []compiledRule {
	var rules []compiledRule
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, r := range sheet.Rules() {
			sel, err := cascadia.ParseGroup(r.Selector())
			if err != nil {
				tracer().P("selector", r.Selector()).Errorf("skipping CSS rule: %v", err)
				continue
			}
			rules = append(rules, compiledRule{rule: r, selectors: sel, order: len(rules)})
		}
	}
	return rules
}

func styleNode(h *html.Node, parent *styledtree.StyNode, rules []compiledRule) *styledtree.StyNode {
	switch h.Type {
	case html.TextNode:
		if strings.TrimSpace(h.Data) == "" {
			return nil
		}
		return styledtree.NewNodeForHTMLNode(h)
	case html.ElementNode:
		switch h.DataAtom {
		case atom.Head, atom.Style, atom.Script:
			return nil
		}
	case html.DocumentNode:
	default:
		return nil
	}
	sn := styledtree.NewNodeForHTMLNode(h)
	if h.Type == html.ElementNode {
		sn.SetStyles(specifiedValues(h, parent, rules))
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if chnode := styleNode(ch, sn, rules); chnode != nil {
			sn.AddChild(chnode)
		}
	}
	return sn
}

// specifiedValues collects the winning declarations of all rules matching
// an element, and of the element's style attribute. A value of "inherit"
// copies the parent's value, if present; "initial" removes the property.
func specifiedValues(h *html.Node, parent *styledtree.StyNode, rules []compiledRule) *style.PropertyMap {
	winners := make(map[string]declaration)
	for _, r := range rules {
		spec, ok := bestMatch(r.selectors, h)
		if !ok {
			continue
		}
		for _, key := range r.rule.Properties() {
			d := declaration{
				value:       r.rule.Value(key),
				important:   r.rule.IsImportant(key),
				specificity: spec,
				order:       r.order,
			}
			if current, found := winners[key]; !found || d.overrides(current) {
				winners[key] = d
			}
		}
	}
	for _, d := range inlineDeclarations(h, len(rules)) {
		if current, found := winners[d.key]; !found || d.overrides(current) {
			winners[d.key] = d.declaration
		}
	}
	pmap := style.NewPropertyMap()
	for key, d := range winners {
		switch {
		case d.value.IsEmpty(), d.value.IsInitial():
			continue
		case d.value.IsInherit():
			if parent != nil {
				if v, ok := parent.Styles().Get(key); ok {
					pmap.Set(key, v)
				}
			}
		default:
			pmap.Add(key, d.value)
		}
	}
	return pmap
}

type inlineDeclaration struct {
	key string
	declaration
}

// inlineDeclarations parses the style attribute of an element. Inline
// declarations are ordered after all stylesheet rules, starting with order.
// A style attribute which fails to parse is ignored.
func inlineDeclarations(h *html.Node, order int) []inlineDeclaration {
	var src string
	found := false
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == "style" {
			src, found = a.Val, true
		}
	}
	if !found || strings.TrimSpace(src) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		tracer().P("style", src).Errorf("ignoring style attribute of <%s>: %v", h.Data, err)
		return nil
	}
	inline := make([]inlineDeclaration, 0, len(decls))
	for i, d := range decls {
		inline = append(inline, inlineDeclaration{
			key: d.Property,
			declaration: declaration{
				value:     style.Property(d.Value),
				important: d.Important,
				inline:    true,
				order:     order + i,
			},
		})
	}
	return inline
}

// bestMatch returns the highest specificity of all selectors of a group
// matching h.
func bestMatch(group cascadia.SelectorGroup, h *html.Node) (cascadia.Specificity, bool) {
	var best cascadia.Specificity
	matched := false
	for _, sel := range group {
		if !sel.Match(h) {
			continue
		}
		if spec := sel.Specificity(); !matched || best.Less(spec) {
			best = spec
		}
		matched = true
	}
	return best, matched
}
