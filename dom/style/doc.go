/*
Package style holds resolved style values for nodes of a styled tree.

Overview

CSS declarations arrive as raw text (type Property). Once the cascade has
selected the winning declaration for a node, the raw text is converted into a
resolved Value, which is one of

    - a keyword, e.g. "high" or "female"
    - an RGB color, e.g. #FF0010
    - a length in pixels, e.g. 12px

Every consumer renders values with Value.String, so there is exactly one
canonical text form per value.

A PropertyMap collects the resolved values of a node. Iteration over a
PropertyMap is always sorted by property name.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'aural.dom'
func tracer() tracing.Trace {
	return tracing.Select("aural.dom")
}
