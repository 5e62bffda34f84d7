/*
Package ssml renders a styled document tree as speech synthesis markup.

Overview

Aural CSS properties like pitch or voice-family do not map to attributes
of the element they are attached to. Speech synthesis markup rather expects
them as dedicated elements enclosing the text they apply to. The renderer
therefore partitions the style properties of every element node:

    pitch, volume                             =>  <prosody …>
    voice-family, voice-variant, voice-gender =>  <voice …>
    level                                     =>  <emphasis …>
    anything else                             =>  plain attribute

Plain attributes go onto the element's own tag, following the element's raw
DOM attributes (except "class" and "style"). All other properties are collected into
synthetic tags which wrap the element's children. An element

    <p style="pitch: high; color: red">hello</p>

renders as

    <p color="red">
      <prosody pitch="high">
        hello
      </prosody>
    </p>

Output

Every tag and every text node is put on a line of its own, indented by two
spaces per nesting level. Synthetic tags count as nesting levels. If more
than one synthetic tag applies to a node, they nest in alphabetical order of
their names, i.e. emphasis encloses prosody, which encloses voice. Attributes
of synthetic tags and style attributes are sorted by property name, raw DOM
attributes keep their document order.

The output has no prolog and no self-closing tags. Text is not escaped and
double quotes are stripped from attribute values, unless a Renderer is
created with option WithEscaping.

Rendering is total: it never fails, and nil or foreign nodes (comments,
doctypes) render as empty strings.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ssml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aural.ssml'.
func tracer() tracing.Trace {
	return tracing.Select("aural.ssml")
}
