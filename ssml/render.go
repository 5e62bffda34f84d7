package ssml

import (
	"strings"

	"github.com/npillmayer/aural/dom/style"
	"github.com/npillmayer/aural/dom/styledtree"
	"github.com/npillmayer/aural/tree"
	"golang.org/x/net/html"
)

// DefaultMaxRecursion is the nesting level up to which a Renderer descends
// recursively. Deeper subtrees are rendered with an explicit stack.
const DefaultMaxRecursion = 512

// Renderer renders styled trees. Create renderers with NewRenderer.
// A Renderer holds no state besides its options and may be shared between
// goroutines.
type Renderer struct {
	markup
	maxRecursion int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithIndent sets the number of spaces per nesting level (default 2).
func WithIndent(n int) Option {
	return func(r *Renderer) {
		if n < 0 {
			n = 0
		}
		r.indent = n
	}
}

// WithEscaping lets the renderer escape markup-special characters in text and
// attribute values, instead of writing text verbatim and stripping quotes.
func WithEscaping() Option {
	return func(r *Renderer) {
		r.escape = true
	}
}

// WithMaxRecursion sets the nesting level up to which the renderer recurses.
// Values < 1 select rendering with an explicit stack for the whole tree.
func WithMaxRecursion(n int) Option {
	return func(r *Renderer) {
		r.maxRecursion = n
	}
}

// NewRenderer creates a renderer with the given options applied.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{markup: defaultMarkup, maxRecursion: DefaultMaxRecursion}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders a styled tree with default options, starting at depth 0.
func Render(root *styledtree.StyNode) string {
	return NewRenderer().Render(root)
}

// Render renders a styled tree, starting at depth 0.
func (r *Renderer) Render(root *styledtree.StyNode) string {
	return r.RenderAt(root, 0)
}

// RenderAt renders a styled (sub-)tree with root indented for depth.
func (r *Renderer) RenderAt(root *styledtree.StyNode, depth int) string {
	if root == nil {
		return ""
	}
	tracer().Debugf("rendering <%s> at depth %d", root.TagName(), depth)
	var b strings.Builder
	r.render(&b, root, depth, 0)
	return b.String()
}

// render recurses over the tree, writing the node's own opening tag, the
// opening tags of its synthetic tags, the children, and then the closing tags.
func (r *Renderer) render(b *strings.Builder, node *styledtree.StyNode, depth int, level int) {
	if level >= r.maxRecursion {
		r.renderFlat(b, node, depth)
		return
	}
	h := node.HTMLNode()
	if h == nil {
		return
	}
	switch h.Type {
	case html.TextNode:
		r.text(b, h.Data, depth)
		return
	case html.DocumentNode:
		for _, ch := range node.Children() {
			r.render(b, ch, depth, level+1)
		}
		return
	case html.ElementNode:
	default:
		return
	}
	plain, wrappers := partition(node.Styles())
	r.openTag(b, h.Data, append(domAttributes(h), plain...), depth)
	for i, w := range wrappers {
		r.openTag(b, string(w.tag), w.attrs, depth+1+i)
	}
	for _, ch := range node.Children() {
		r.render(b, ch, depth+1+len(wrappers), level+1)
	}
	for i := len(wrappers) - 1; i >= 0; i-- {
		r.closeTag(b, string(wrappers[i].tag), depth+1+i)
	}
	r.closeTag(b, h.Data, depth)
}

// renderFlat produces the same output as render, but walks the tree with an
// explicit stack. Closing tags are kept on a stack of their own until a node
// is left.
func (r *Renderer) renderFlat(b *strings.Builder, root *styledtree.StyNode, depth int) {
	tracer().Debugf("rendering <%s> at depth %d without recursion", root.TagName(), depth)
	var closing []string
	tree.Walk[*styledtree.StyNode](root.TreeNode(), depth, tree.VisitorFuncs[*styledtree.StyNode]{
		EnterFunc: func(n *tree.Node[*styledtree.StyNode], d int) (int, bool) {
			h := n.Payload.HTMLNode()
			if h == nil {
				closing = append(closing, "")
				return d, false
			}
			switch h.Type {
			case html.TextNode:
				r.text(b, h.Data, d)
				closing = append(closing, "")
				return d, false
			case html.DocumentNode:
				closing = append(closing, "")
				return d, true
			case html.ElementNode:
			default:
				closing = append(closing, "")
				return d, false
			}
			plain, wrappers := partition(n.Payload.Styles())
			r.openTag(b, h.Data, append(domAttributes(h), plain...), d)
			for i, w := range wrappers {
				r.openTag(b, string(w.tag), w.attrs, d+1+i)
			}
			var c strings.Builder
			for i := len(wrappers) - 1; i >= 0; i-- {
				r.closeTag(&c, string(wrappers[i].tag), d+1+i)
			}
			r.closeTag(&c, h.Data, d)
			closing = append(closing, c.String())
			return d + 1 + len(wrappers), true
		},
		LeaveFunc: func(n *tree.Node[*styledtree.StyNode], d int) {
			top := len(closing) - 1
			b.WriteString(closing[top])
			closing = closing[:top]
		},
	})
}

// domAttributes returns the raw attributes of an HTML element in document
// order, except for "class" and "style". Both are consumed by the cascade.
func domAttributes(h *html.Node) []style.KeyValue {
	attrs := make([]style.KeyValue, 0, len(h.Attr))
	for _, a := range h.Attr {
		if a.Namespace == "" && (a.Key == "class" || a.Key == "style") {
			continue
		}
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + key
		}
		attrs = append(attrs, style.KeyValue{Key: key, Value: style.Property(a.Val)})
	}
	return attrs
}
