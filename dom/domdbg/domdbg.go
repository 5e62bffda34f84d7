/*
Package domdbg implements helpers to debug a styled tree.

Dump prints a styled tree as an indented outline, ToGraphViz writes a
diagram in GraphViz DOT format.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/aural/dom/style"
	"github.com/npillmayer/aural/dom/styledtree"
	"github.com/npillmayer/aural/tree"
	"github.com/xlab/treeprint"
)

// Dump returns an outline of a styled tree. Every node is listed with its
// name and its style properties, text nodes with (a prefix of) their text.
func Dump(root *styledtree.StyNode) string {
	if root == nil {
		return "<nil>\n"
	}
	outline := treeprint.New()
	branches := []treeprint.Tree{outline}
	tree.Walk[*styledtree.StyNode](root.TreeNode(), 0, tree.VisitorFuncs[*styledtree.StyNode]{
		EnterFunc: func(n *tree.Node[*styledtree.StyNode], depth int) (int, bool) {
			sn := n.Payload
			var br treeprint.Tree
			switch {
			case n.ChildCount() > 0:
				br = branches[len(branches)-1].AddBranch(label(sn))
			default:
				br = branches[len(branches)-1].AddNode(label(sn))
			}
			branches = append(branches, br)
			return depth + 1, true
		},
		LeaveFunc: func(n *tree.Node[*styledtree.StyNode], depth int) {
			branches = branches[:len(branches)-1]
		},
	})
	return outline.String()
}

func label(sn *styledtree.StyNode) string {
	if sn.IsText() {
		return shortText(sn.HTMLNode().Data, 20)
	}
	name := sn.TagName()
	if sn.IsElement() {
		name = "<" + name + ">"
	}
	if sn.Styles().Len() > 0 {
		name += " " + sn.Styles().String()
	}
	return name
}

func shortText(text string, max int) string {
	s := strings.TrimSpace(text)
	if r := []rune(s); len(r) > max {
		s = string(r[:max]) + "…"
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return fmt.Sprintf("%q", s)
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
}

type node struct {
	N    *styledtree.StyNode
	Name string
}

type edge struct {
	N1, N2 node
}

type styles struct {
	Name       string
	Properties []style.KeyValue
}

// ToGraphViz outputs a diagram for a styled tree in GraphViz (DOT) format.
// Every node with style properties is linked to a record listing them.
func ToGraphViz(root *styledtree.StyNode, w io.Writer) error {
	tmpl, err := template.New("styledtree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("stynode").Funcs(
		template.FuncMap{
			"shortstring": func(sn *styledtree.StyNode) string {
				return shortText(sn.HTMLNode().Data, 10)
			},
		}).Parse(styNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("styedge").Parse(styEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		names := make(map[*styledtree.StyNode]string)
		if err = nodes(root, w, names, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(root *styledtree.StyNode, w io.Writer, names map[*styledtree.StyNode]string,
	gparams *graphParamsType) (err error) {
	//
	tree.Walk[*styledtree.StyNode](root.TreeNode(), 0, tree.VisitorFuncs[*styledtree.StyNode]{
		EnterFunc: func(n *tree.Node[*styledtree.StyNode], depth int) (int, bool) {
			if err != nil {
				return depth, false
			}
			sn := n.Payload
			name := fmt.Sprintf("node%05d", len(names)+1)
			names[sn] = name
			if err = gparams.NodeTmpl.Execute(w, &node{sn, name}); err != nil {
				return depth, false
			}
			if sn.Styles().Len() > 0 {
				err = gparams.StyleTmpl.Execute(w, styles{name, sn.Styles().Properties()})
			}
			if parent := sn.ParentNode(); parent != nil && err == nil {
				e := edge{node{parent, names[parent]}, node{sn, name}}
				err = gparams.EdgeTmpl.Execute(w, e)
			}
			return depth + 1, err == nil
		},
	})
	return err
}

// --- Templates -------------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const styNodeTmpl = `{{ if .N.IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.TagName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const stylesTmpl = `{{ .Name }}_styles [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_styles [dir=none weight=1 style="dashed"] ;
`
