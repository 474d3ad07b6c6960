/*
Package css holds the style snapshot consumed by layout.

Style resolution (cascade, inheritance, computed values) is not the business
of this module. Layout consumes style as a read-only record of computed
values, type Style. Lengths are option types (DimenT) which may be fixed,
a percentage of the containing block, or `auto`/unset.

For convenience, a Style may be populated from CSS declarations
(`width: 40px; float: left`) with ParseDeclarations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockflow.style'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.style")
}
