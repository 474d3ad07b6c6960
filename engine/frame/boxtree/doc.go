/*
Package boxtree maintains the structural invariants of a frame tree.

A block container has either all of its children inline-level, or all of
them block-level. Whenever a block-level child is inserted among inline
children, runs of inline children are wrapped into anonymous blocks.
Removing children may leave anonymous blocks adjacent to each other, or a
single anonymous block without block-level siblings; these are merged and
collapsed again.

Floats and absolutely positioned frames are neutral: they may be part of
an inline run, but a run consisting of floats and positioned frames alone
is never wrapped.

All transformations are named operations and may be applied to a tree
before layout. They mark the frames involved for layout.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.frame")
}
