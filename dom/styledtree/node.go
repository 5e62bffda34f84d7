package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/aural/dom/style"
	"github.com/npillmayer/aural/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	computedStyles      *style.PropertyMap
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
// The node starts out with an empty property map.
func NewNodeForHTMLNode(h *html.Node) *StyNode {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = h
	sn.computedStyles = style.NewPropertyMap()
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Element creates a styled node for a new HTML element node.
func Element(tag string, attrs ...html.Attribute) *StyNode {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	return NewNodeForHTMLNode(h)
}

// Text creates a styled node for a new HTML text node.
func Text(s string) *StyNode {
	return NewNodeForHTMLNode(&html.Node{Type: html.TextNode, Data: s})
}

// Attr is a shortcut to create an HTML attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func (sn *StyNode) String() string {
	if sn == nil {
		return "StyNode(nil)"
	}
	return fmt.Sprintf("StyNode(%s #ch=%d)", sn.TagName(), sn.ChildCount())
}

// TreeNode returns the generic tree node of a styled node.
func (sn *StyNode) TreeNode() *tree.Node[*StyNode] {
	if sn == nil {
		return nil
	}
	return &sn.Node
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	if sn == nil {
		return nil
	}
	return sn.htmlNode
}

// Styles returns the resolved style values of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	if sn == nil {
		return nil
	}
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// SetProperty sets a single style property, creating a property map if necessary.
// It returns the styled node to allow for chaining.
func (sn *StyNode) SetProperty(key string, v style.Value) *StyNode {
	if sn.computedStyles == nil {
		sn.computedStyles = style.NewPropertyMap()
	}
	sn.computedStyles.Set(key, v)
	return sn
}

// AddChild appends a styled child node.
// It returns the parent node to allow for chaining.
func (sn *StyNode) AddChild(ch *StyNode) *StyNode {
	if ch != nil {
		sn.Node.AddChild(&ch.Node)
	}
	return sn
}

// Children returns the styled children of a node, in document order.
func (sn *StyNode) Children() []*StyNode {
	chs := sn.Node.Children()
	r := make([]*StyNode, 0, len(chs))
	for _, ch := range chs {
		if ch != nil {
			r = append(r, ch.Payload)
		}
	}
	return r
}

// ParentNode returns the styled parent or nil.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Node.Parent())
}

// IsText is true for nodes linked to an HTML text node.
func (sn *StyNode) IsText() bool {
	return sn.htmlNode != nil && sn.htmlNode.Type == html.TextNode
}

// IsElement is true for nodes linked to an HTML element node.
func (sn *StyNode) IsElement() bool {
	return sn.htmlNode != nil && sn.htmlNode.Type == html.ElementNode
}

// TagName returns the tag name of an element node, or "#text" for text nodes.
func (sn *StyNode) TagName() string {
	switch {
	case sn.HTMLNode() == nil:
		return ""
	case sn.IsText():
		return "#text"
	case sn.htmlNode.Type == html.DocumentNode:
		return "#document"
	}
	return sn.htmlNode.Data
}

// Attribute returns the value of a raw DOM attribute.
func (sn *StyNode) Attribute(key string) (string, bool) {
	if sn.htmlNode == nil {
		return "", false
	}
	for _, a := range sn.htmlNode.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
