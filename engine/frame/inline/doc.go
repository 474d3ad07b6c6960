/*
Package inline lays out the inline content of a block into line boxes.

The inline children of a block (text, inline flows, atomic inlines, forced
breaks, and neutral floats and positioned frames) are flattened into a
sequence of items, held as a rope of leaves (package cords). Lines are built
greedily from this sequence. Text is broken at line break opportunities as
defined by UAX#14, and measured with a monospace measurer, using UAX#11 for
the width of East Asian characters.

Inline layout does not know about floats by itself. A block handing its
inline content to a Formatter provides an Env, which answers queries for
the available horizontal space at a vertical position and positions floats.

Bidi reordering and text shaping are not performed.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.inline'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.inline")
}
