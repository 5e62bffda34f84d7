/*
Package styledtree is a straightforward implementation of a styled document tree.

Overview

A styled node links an HTML node (package golang.org/x/net/html) with the
resolved style values for this node. Styled nodes are built on top of the
generic tree type of package tree, with the tree node's payload referencing
the styled node itself.

Styled trees are usually created by cssom.Style from an HTML parse tree and a
set of stylesheets. For tests and programmatic use, Element and Text create
styled nodes together with a minimal HTML node:

    p := styledtree.Element("p", styledtree.Attr("id", "intro"))
    p.SetProperty("pitch", style.Keyword("high"))
    p.AddChild(styledtree.Text("hello"))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree
