/*
Package harfbuzz is a shaping backend using HarfBuzz, as ported to Go by
Benoit Kugler (github.com/benoitkugler/textlayout).

The backend accepts OpenType script tags ("arab", "lao ", "dev2") as well as
ISO 15924 script codes ("Arab"). Language system tags are converted to BCP 47
where possible ("DEU " → "de"). Glyph positions are reported in font units.

A Backend may be shared between sessions. Calls to Shape are serialized.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package harfbuzz

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'otsession.harfbuzz'.
func tracer() tracing.Trace {
	return tracing.Select("otsession.harfbuzz")
}
