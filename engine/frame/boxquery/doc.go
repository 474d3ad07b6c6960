/*
Package boxquery implements XPath queries over a frame tree.

We use this library for XPath queries:

	github.com/antchfx/xpath

Frames appear as elements named after their kind, e.g. `block`, `inline`
or `tablecell`; text frames appear as text nodes. Every element carries
attributes for its geometry (`x`, `y`, `w`, `h`, in pixels, relative to
its containing block) and, where present, `id`, `name` (the element name),
`float` and `anonymous`.

	frames, err := boxquery.Find(canvas, `//block[@float="left"]`)

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated
here.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.frame")
}
