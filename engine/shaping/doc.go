/*
Package shaping assembles OpenType shaping requests and hands them to a
shaping backend.

A Session holds the parameters for shaping runs of text: font, type size,
script tag, language tag, writing mode and writing direction. Clients set
parameters in any order and then call ShapeText any number of times:

	session := shaping.NewSession(harfbuzz.New())
	session.SetFont(f)
	session.SetTypeSize(12)
	session.SetScriptTag(tag.MustParse("arab"))
	session.SetLanguageTag(tag.MustParse("URD "))
	var result shaping.Result
	err := session.ShapeText(&result, []rune(text), 0, len(text))

Mode and direction may be left at their defaults. They are resolved for every
call to ShapeText: a default direction is taken from the backend's script
table, a default mode follows the resolved direction. Resolution never
writes back to the session, so a session configured with defaults keeps
answering ModeDefault and DirectionDefault.

Sessions are not safe for concurrent use. Use one session per goroutine
or guard a shared session with a mutex.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package shaping

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'otsession.shaping'.
func tracer() tracing.Trace {
	return tracing.Select("otsession.shaping")
}
