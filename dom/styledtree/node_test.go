package styledtree

import (
	"testing"

	"github.com/npillmayer/aural/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestBuildStyledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.dom")
	defer teardown()
	//
	p := Element("p", Attr("id", "intro"), Attr("class", "lead"))
	p.SetProperty("pitch", style.Keyword("high"))
	hello := Text("hello")
	p.AddChild(hello).AddChild(Element("em"))
	if !p.IsElement() || p.IsText() || p.TagName() != "p" {
		t.Errorf("expected p to be an element node named p, is %q", p.TagName())
	}
	if !hello.IsText() || hello.TagName() != "#text" {
		t.Errorf("expected text node, is %q", hello.TagName())
	}
	if len(p.Children()) != 2 || p.Children()[0] != hello {
		t.Fatalf("expected p to have 2 children, first is hello; has %v", p.Children())
	}
	if hello.ParentNode() != p {
		t.Errorf("expected parent of hello to be p")
	}
	if id, ok := p.Attribute("id"); !ok || id != "intro" {
		t.Errorf("expected attribute id=intro, is %q", id)
	}
	if v, ok := p.Styles().Get("pitch"); !ok || v.String() != "high" {
		t.Errorf("expected pitch=high, is %v", v)
	}
	if Node(p.TreeNode()) != p {
		t.Error("expected tree node payload to reference the styled node")
	}
}

func TestNodeForHTMLNode(t *testing.T) {
	h := &html.Node{Type: html.DocumentNode}
	sn := NewNodeForHTMLNode(h)
	if sn.HTMLNode() != h || sn.TagName() != "#document" {
		t.Errorf("expected document node, is %q", sn.TagName())
	}
	if sn.Styles() == nil || sn.Styles().Len() != 0 {
		t.Error("expected new styled node to have an empty property map")
	}
	sn.SetStyles(nil)
	sn.SetProperty("volume", style.Keyword("loud"))
	if sn.Styles().Len() != 1 {
		t.Error("expected SetProperty to create a property map")
	}
	if Node(nil) != nil {
		t.Error("expected Node(nil) to be nil")
	}
}

func TestStyNodeString(t *testing.T) {
	p := Element("p")
	p.AddChild(Text("x"))
	if p.String() != "StyNode(p #ch=1)" {
		t.Errorf("expected StyNode(p #ch=1), is %s", p.String())
	}
	var none *StyNode
	if none.String() != "StyNode(nil)" {
		t.Errorf("expected StyNode(nil), is %s", none.String())
	}
}
