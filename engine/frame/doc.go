/*
Package frame deals with layout frames, the boxes of a render tree.

Layout may be understood as the process of placing boxes within
larger boxes. A frame is the visual representation of an element (or of an
anonymous wrapper generated for an element's content). Frames follow the
CSS box model: every frame has a border box with padding, border and margins
on four sides.

Frames form a tree. A parent exclusively owns its children, children hold a
non-owning back-reference to their parent. Float records and registrations
of positioned frames are non-owning references into the same tree and are
dropped whenever a frame is detached (see ForgetFrame).

Frames carry dirty flags which drive incremental layout. Marking a frame
for layout propagates up to the root of the tree, stopping at the first
ancestor which already has been marked.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.frame")
}
