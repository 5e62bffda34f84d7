/*
Package cssom applies CSS stylesheets to an HTML parse tree.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. This package
takes an HTML (sub-)tree and a list of stylesheets and creates a styled tree
(package styledtree), holding the specified values for every node.

Only a small part of CSS is supported: rules are matched by selector
(using https://godoc.org/github.com/andybalholm/cascadia), ordered by
specificity and source order, and "!important" declarations win over
normal ones. Declarations in an element's style attribute take precedence
over all selector rules of equal importance. There is no implicit
inheritance: a property is passed down only if a rule says "inherit".
Shorthands are not expanded and values are not computed beyond the
conversions of package style. For aural styles this is sufficient:
properties like pitch or voice-family are rendered as enclosing tags and
therefore apply to all descendents anyway.

CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
Concrete implementations may be found in sub-packages (e.g. douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'aural.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("aural.cssom")
}
