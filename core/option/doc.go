/*
Package option implements matching of optional values.

Style values in a layout engine are often "something or nothing", or one of
a couple of keywords ("auto", a percentage, a fixed length). Package option
lets clients express decisions over such values in a declarative manner:

	w, err := width.Match(option.Of{
	     option.None: zero,        // unset
	     css.Auto:    shrinkToFit, // keyword
	     option.Some: fixed,       // any other value
	})

Values of the choices map may either be plain values or functions, which
will be called with the option value as an argument.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.core'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.core")
}
