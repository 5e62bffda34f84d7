/*
Package tree implements a small generic tree type.

Overview

Styled documents are trees of nodes. In Go we do not subclass a tree node
type for every kind of tree in use, but rather compose: concrete node types
embed a Node[T] and set the payload to reference themselves.

Nodes keep an ordered slice of children, guarded by a mutex, so a tree may be
populated from several goroutines. Reading a tree once it is built (walking,
rendering) does not need any further synchronization from clients.

Walk traverses a (sub-)tree depth-first with an explicit stack instead of
recursion. Documents may nest arbitrarily deep, and walking them must not be
limited by the goroutine stack.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aural.tree'.
func tracer() tracing.Trace {
	return tracing.Select("aural.tree")
}
