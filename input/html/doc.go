/*
Package html builds frame trees from HTML documents.

The HTML input is parsed with golang.org/x/net/html. Style is computed from
a small user agent stylesheet, the rules of `<style>` elements and `style`
attributes, in this order. Selectors are matched with cascadia; rules apply
in document order, without regard of selector specificity. Only the subset
of CSS which is relevant for block layout is evaluated (see package css).

Build creates a canvas frame with a frame for every element which generates
a box, and a text frame for every text node. Floated and absolutely
positioned inline elements are turned into blocks. Finally, anonymous blocks
are inserted where block containers have mixed content.

A document without a doctype (or with a legacy one) is flagged to be laid
out in quirks mode.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.input'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.input")
}
