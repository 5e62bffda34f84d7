package ssml

import (
	"strings"

	"github.com/npillmayer/aural/dom/style"
	"golang.org/x/net/html"
)

// markup knows how to put tags and text onto indented lines.
type markup struct {
	indent int  // spaces per nesting level
	escape bool // escape special characters instead of stripping quotes
}

var defaultMarkup = markup{indent: 2}

// Wrap encloses already rendered markup in a tag pair, indented for depth:
//
//    <tag a1="v1" a2="v2">
//    inner
//    </tag>
//
// Attributes are written in the order given. Double quotes are stripped from
// attribute values.
func Wrap(tag string, attrs []style.KeyValue, inner string, depth int) string {
	return defaultMarkup.wrap(tag, attrs, inner, depth)
}

func (mk markup) wrap(tag string, attrs []style.KeyValue, inner string, depth int) string {
	var b strings.Builder
	mk.openTag(&b, tag, attrs, depth)
	b.WriteString(inner)
	mk.closeTag(&b, tag, depth)
	return b.String()
}

func (mk markup) openTag(b *strings.Builder, tag string, attrs []style.KeyValue, depth int) {
	mk.indentTo(b, depth)
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(mk.attrValue(a.Value.String()))
		b.WriteByte('"')
	}
	b.WriteString(">\n")
}

func (mk markup) closeTag(b *strings.Builder, tag string, depth int) {
	mk.indentTo(b, depth)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
}

// text writes trimmed text on a line of its own. Inner whitespace is kept.
func (mk markup) text(b *strings.Builder, s string, depth int) {
	mk.indentTo(b, depth)
	s = strings.TrimSpace(s)
	if mk.escape {
		s = html.EscapeString(s)
	}
	b.WriteString(s)
	b.WriteByte('\n')
}

func (mk markup) attrValue(v string) string {
	if mk.escape {
		return html.EscapeString(v)
	}
	return strings.ReplaceAll(v, `"`, "")
}

func (mk markup) indentTo(b *strings.Builder, depth int) {
	if n := depth * mk.indent; n > 0 {
		b.WriteString(strings.Repeat(" ", n))
	}
}
