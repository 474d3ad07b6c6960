/*
Package framedebug writes frame trees in GraphViz DOT format, for
debugging.

	framedebug.ToGraphViz(canvas, w)

Every frame is shown with its kind, element name and border box. Frames
still needing layout are marked with a star.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.frame")
}
