/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Stylesheets are parsed with https://github.com/aymerick/douceur. Qualified
rules are taken as they are, rules nested in "@media" blocks only if one of
the media queries addresses speech (media type "speech", "aural" or "all",
or no media type at all). Negated queries ("not …") are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/aural/dom/style"
	"github.com/npillmayer/aural/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	rules []cssom.Rule
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
func Wrap(stylesheet *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{}
	if stylesheet != nil {
		sheet.collect(stylesheet.Rules)
	}
	return sheet
}

// ParseStyleSheet parses CSS source text into a stylesheet.
func ParseStyleSheet(source string) (*CSSStyles, error) {
	stylesheet, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(stylesheet), nil
}

func (sheet *CSSStyles) collect(rules []*css.Rule) {
	for _, r := range rules {
		switch r.Kind {
		case css.QualifiedRule:
			sheet.rules = append(sheet.rules, Rule(*r))
		case css.AtRule:
			if r.Name == "@media" && isSpeechMedia(r.Prelude) {
				sheet.collect(r.Rules)
			}
		}
	}
}

// isSpeechMedia checks a media query list for a query addressing speech.
// Negated queries never match. A query without a media type, like
// "(min-width: 10em)", addresses all media.
func isSpeechMedia(queryList string) bool {
	for _, query := range strings.Split(strings.ToLower(queryList), ",") {
		tokens := strings.Fields(query)
		if len(tokens) > 0 && tokens[0] == "only" {
			tokens = tokens[1:]
		}
		if len(tokens) == 0 || tokens[0] == "not" {
			continue
		}
		if strings.HasPrefix(tokens[0], "(") {
			return true
		}
		switch tokens[0] {
		case "speech", "aural", "all":
			return true
		}
	}
	return false
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.rules))
	copy(rules, sheet.rules)
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "voice-family"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key with this rule, e.g. "female".
// If a key is declared more than once, the last declaration counts.
func (r Rule) Value(key string) style.Property {
	if d := r.declaration(key); d != nil {
		return style.Property(d.Value)
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.declaration(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) declaration(key string) *css.Declaration {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i]
		}
	}
	return nil
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements failing to parse are
// reported as an error, together with the stylesheets parsed so far.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	var sheets []*CSSStyles
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		el := FindElement(a, htmldoc)
		if el == nil {
			continue
		}
		for ch := el.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.DataAtom != atom.Style || ch.FirstChild == nil {
				continue
			}
			sheet, err := ParseStyleSheet(ch.FirstChild.Data)
			if err != nil {
				return sheets, err
			}
			sheets = append(sheets, sheet)
		}
	}
	return sheets, nil
}

// FindElement searches depth-first for the first element of type a.
func FindElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := FindElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
