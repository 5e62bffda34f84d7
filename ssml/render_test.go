package ssml_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/npillmayer/aural/dom/domdbg"
	"github.com/npillmayer/aural/dom/style"
	"github.com/npillmayer/aural/dom/styledtree"
	"github.com/npillmayer/aural/ssml"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRenderParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	p := styledtree.Element("p")
	p.SetProperty("pitch", style.Keyword("high")).SetProperty("color", style.Keyword("red"))
	p.AddChild(styledtree.Text("hello"))
	expected := `<p color="red">
  <prosody pitch="high">
    hello
  </prosody>
</p>
`
	assert.Equal(t, expected, ssml.Render(p))
}

func TestRenderText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	r := ssml.NewRenderer()
	txt := styledtree.Text("  \n hello   big\tworld \n")
	assert.Equal(t, "      hello   big\tworld\n", r.RenderAt(txt, 3))
	assert.Equal(t, "hello   big\tworld\n", r.RenderAt(txt, 0))
	// siblings do not influence a text node
	div := styledtree.Element("div")
	div.AddChild(styledtree.Text("a")).AddChild(txt).AddChild(styledtree.Text("b"))
	assert.Contains(t, r.Render(div), "  hello   big\tworld\n")
	assert.Equal(t, "\n", r.Render(styledtree.Text("   ")))
}

func TestRenderValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	span := styledtree.Element("span")
	span.SetProperty("color", style.RGB(255, 0, 16)).SetProperty("width", style.Px(12))
	span.SetProperty("margin", style.LengthOf(2.5, "em"))
	expected := `<span color="#FF0010" margin="2.5px" width="12px">
</span>
`
	assert.Equal(t, expected, ssml.Render(span))
}

func TestRenderNestedSyntheticTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	s := styledtree.Element("s", styledtree.Attr("id", "x"), styledtree.Attr("class", "loud"),
		styledtree.Attr("style", "volume: loud"), styledtree.Attr("lang", "en"))
	s.SetProperty("voice-family", style.Keyword("anna"))
	s.SetProperty("volume", style.Keyword("loud"))
	s.SetProperty("level", style.Keyword("strong"))
	s.SetProperty("pitch", style.Keyword("low"))
	s.SetProperty("rate", style.Keyword("slow"))
	s.AddChild(styledtree.Text("hi"))
	expected := `<s id="x" lang="en" rate="slow">
  <emphasis level="strong">
    <prosody pitch="low" volume="loud">
      <voice voice-family="anna">
        hi
      </voice>
    </prosody>
  </emphasis>
</s>
`
	out := ssml.Render(s)
	assert.Equal(t, expected, out)
	checkNesting(t, out, 2)
}

func TestRenderDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	doc := buildDocument()
	t.Logf("styled tree:\n%s", domdbg.Dump(doc))
	out := ssml.Render(doc)
	t.Logf("output:\n%s", out)
	expected := `<speak version="1.1">
  <p>
    <voice voice-gender="female">
      First sentence.
      <s>
        <em>
          <emphasis level="moderate">
            Stressed
          </emphasis>
        </em>
      </s>
      and the rest.
    </voice>
  </p>
  <p color="#0000FF">
    Second paragraph.
  </p>
</speak>
`
	assert.Equal(t, expected, out)
	checkNesting(t, out, 2)
	//
	xml := etree.NewDocument()
	require.NoError(t, xml.ReadFromString(out))
	root := xml.Root()
	require.NotNil(t, root)
	assert.Equal(t, "speak", root.Tag)
	em := xml.FindElement("//emphasis")
	require.NotNil(t, em)
	assert.Equal(t, "moderate", em.SelectAttrValue("level", ""))
	assert.Equal(t, "Stressed", strings.TrimSpace(em.Text()))
	assert.Len(t, root.SelectElements("p"), 2)
}

func TestRenderChildrenWithoutWrappers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	r := ssml.NewRenderer()
	div := styledtree.Element("div")
	a := styledtree.Element("a", styledtree.Attr("href", "#x"))
	a.AddChild(styledtree.Text("link"))
	b := styledtree.Text("tail")
	div.AddChild(a).AddChild(b)
	expected := "<div>\n" + r.RenderAt(a, 1) + r.RenderAt(b, 1) + "</div>\n"
	assert.Equal(t, expected, r.Render(div))
}

func TestRenderQuotesAndEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	q := styledtree.Element("q", styledtree.Attr("title", `say "hi"`))
	q.SetProperty("voice-family", style.Keyword(`"Mary Ann"`))
	q.AddChild(styledtree.Text("a < b & c"))
	expected := `<q title="say hi">
  <voice voice-family="Mary Ann">
    a < b & c
  </voice>
</q>
`
	assert.Equal(t, expected, ssml.Render(q))
	//
	escaped := ssml.NewRenderer(ssml.WithEscaping()).Render(q)
	expected = `<q title="say &#34;hi&#34;">
  <voice voice-family="&#34;Mary Ann&#34;">
    a &lt; b &amp; c
  </voice>
</q>
`
	assert.Equal(t, expected, escaped)
	xml := etree.NewDocument()
	require.NoError(t, xml.ReadFromString(escaped))
	assert.Equal(t, `say "hi"`, xml.Root().SelectAttrValue("title", ""))
}

func TestRenderOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	p := styledtree.Element("p")
	p.SetProperty("level", style.Keyword("strong"))
	p.AddChild(styledtree.Text("x"))
	r := ssml.NewRenderer(ssml.WithIndent(4))
	expected := "    <p>\n        <emphasis level=\"strong\">\n            x\n        </emphasis>\n    </p>\n"
	assert.Equal(t, expected, r.RenderAt(p, 1))
	flat := ssml.NewRenderer(ssml.WithIndent(-1))
	assert.Equal(t, "<p>\n<emphasis level=\"strong\">\nx\n</emphasis>\n</p>\n", flat.Render(p))
}

func TestRenderForeignNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	assert.Equal(t, "", ssml.Render(nil))
	comment := styledtree.NewNodeForHTMLNode(&html.Node{Type: html.CommentNode, Data: "c"})
	assert.Equal(t, "", ssml.Render(comment))
	assert.Equal(t, "", ssml.Render(styledtree.NewNodeForHTMLNode(nil)))
	doc := styledtree.NewNodeForHTMLNode(&html.Node{Type: html.DocumentNode})
	doc.AddChild(comment).AddChild(styledtree.Element("speak"))
	assert.Equal(t, "<speak>\n</speak>\n", ssml.Render(doc))
	flat := ssml.NewRenderer(ssml.WithMaxRecursion(0))
	assert.Equal(t, "<speak>\n</speak>\n", flat.Render(doc))
	assert.Equal(t, "", flat.Render(comment))
}

func TestRecursiveAndFlatRenderingAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	doc := buildDocument()
	expected := ssml.Render(doc)
	for _, limit := range []int{0, 1, 2, 3, 100} {
		r := ssml.NewRenderer(ssml.WithMaxRecursion(limit))
		assert.Equal(t, expected, r.Render(doc), "max recursion = %d", limit)
		assert.Equal(t, ssml.NewRenderer().RenderAt(doc, 2), r.RenderAt(doc, 2), "max recursion = %d", limit)
	}
	escaped := ssml.NewRenderer(ssml.WithEscaping(), ssml.WithIndent(3))
	flat := ssml.NewRenderer(ssml.WithEscaping(), ssml.WithIndent(3), ssml.WithMaxRecursion(0))
	assert.Equal(t, escaped.Render(doc), flat.Render(doc))
}

func TestRenderDeepDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aural.ssml")
	defer teardown()
	//
	const height = 5000
	root := styledtree.Element("div")
	n := root
	for i := 1; i < height; i++ {
		ch := styledtree.Element("div")
		if i%1000 == 0 {
			ch.SetProperty("pitch", style.Keyword(fmt.Sprintf("+%d%%", i/1000)))
		}
		n.AddChild(ch)
		n = ch
	}
	n.AddChild(styledtree.Text("bottom"))
	out := ssml.NewRenderer(ssml.WithIndent(0)).Render(root)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, 2*height+2*4+1, len(lines))
	assert.Equal(t, "bottom", lines[height+4])
	checkNesting(t, ssml.NewRenderer(ssml.WithIndent(1)).Render(root), 1)
}

func TestWrap(t *testing.T) {
	attrs := []style.KeyValue{{Key: "b", Value: "2"}, {Key: "a", Value: `"1"`}}
	out := ssml.Wrap("prosody", attrs, "    x\n", 1)
	assert.Equal(t, "  <prosody b=\"2\" a=\"1\">\n    x\n  </prosody>\n", out)
	assert.Equal(t, "<voice>\n</voice>\n", ssml.Wrap("voice", nil, "", 0))
}

// --- Helpers ---------------------------------------------------------------

func buildDocument() *styledtree.StyNode {
	speak := styledtree.Element("speak", styledtree.Attr("version", "1.1"))
	p1 := styledtree.Element("p", styledtree.Attr("class", "first"))
	p1.SetProperty("voice-gender", style.Keyword("female"))
	s := styledtree.Element("s")
	em := styledtree.Element("em")
	em.SetProperty("level", style.Keyword("moderate"))
	em.AddChild(styledtree.Text(" Stressed "))
	s.AddChild(em)
	p1.AddChild(styledtree.Text("First sentence.")).AddChild(s).AddChild(styledtree.Text("and the rest."))
	p2 := styledtree.Element("p")
	p2.SetProperty("color", style.RGB(0, 0, 255))
	p2.AddChild(styledtree.Text("\n   Second paragraph.\n"))
	speak.AddChild(p1).AddChild(p2)
	return speak
}

// checkNesting verifies that every opening tag is closed with the same name
// at the same indentation, and that indentation grows by one level per tag.
func checkNesting(t *testing.T, out string, indent int) {
	t.Helper()
	type open struct {
		name  string
		depth int
	}
	var stack []open
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		trimmed := strings.TrimLeft(line, " ")
		spaces := len(line) - len(trimmed)
		if spaces%indent != 0 {
			t.Fatalf("line %d: indentation %d is not a multiple of %d", i, spaces, indent)
		}
		depth := spaces / indent
		switch {
		case strings.HasPrefix(trimmed, "</"):
			name := strings.TrimSuffix(strings.TrimPrefix(trimmed, "</"), ">")
			if len(stack) == 0 {
				t.Fatalf("line %d: closing %s without opening tag", i, name)
			}
			top := stack[len(stack)-1]
			if top.name != name || top.depth != depth {
				t.Fatalf("line %d: closing %s@%d does not match %s@%d", i, name, depth, top.name, top.depth)
			}
			stack = stack[:len(stack)-1]
		default:
			expected := len(stack)
			if depth != expected {
				t.Fatalf("line %d: expected depth %d, is %d: %q", i, expected, depth, line)
			}
			if strings.HasPrefix(trimmed, "<") {
				name := strings.TrimPrefix(trimmed, "<")
				name = strings.TrimSuffix(strings.Fields(name)[0], ">")
				stack = append(stack, open{name, depth})
			}
		}
	}
	if len(stack) != 0 {
		t.Errorf("unclosed tags: %v", stack)
	}
}
