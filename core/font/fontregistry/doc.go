/*
Package fontregistry manages a registry for loaded fonts.

Shaping sessions only borrow fonts. The registry is the place where an
application keeps them alive and finds them again by name.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otsession.font'
func tracer() tracing.Trace {
	return tracing.Select("otsession.font")
}
