/*
Package layout computes the geometry of a frame tree, following the CSS 2.1
visual formatting model for block containers.

Overview

Layout places boxes within larger boxes. A block container lays out its
children either as a sequence of block-level frames (block flow) or hands
them to an inline formatter, which breaks them into lines. Both variants
interact with floats, which are tracked per block by a FloatManager.

Vertical margins of adjoining block-level frames collapse. The collapsing
state of one pass over the children of a block is held in a marginInfo,
and every block remembers the maximum positive and negative margins at its
top and bottom (frame.MarginValues), so that its parent is able to
collapse them with neighbouring margins.

Layout is incremental. Frames carry dirty flags (see package frame), and a
layout pass descends only into frames which need layout. A block which
only has positioned descendants needing layout skips its normal flow
entirely.

Every layout pass is driven by a Context, carrying the quirks mode flag,
the chain of containing block widths, the inline formatter and the
recursion bound. Contexts are not safe for concurrent use; a pass has to
run to completion before another one begins.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.layout'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.layout")
}
