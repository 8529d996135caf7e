package shaping

import (
	"github.com/npillmayer/otsession/core/font"
	"github.com/npillmayer/otsession/core/tag"
)

// Backend is a shaping backend, i.e. an implementation of glyph substitution
// and positioning.
//
// Shape receives a request with a concrete writing mode and direction and
// fills result. It must overwrite result completely, not append to it.
// Result.Reset prepares a result for a request.
type Backend interface {
	DirectionTable
	Shape(req Request, result *Result) error
}

// Request is a fully resolved shaping request. Sessions create requests;
// backends consume them.
type Request struct {
	Font        *font.ScalableFont
	TypeSize    float64
	ScriptTag   tag.Tag
	LanguageTag tag.Tag
	Mode        WritingMode      // never ModeDefault
	Direction   WritingDirection // never DirectionDefault
	Text        []rune           // complete text, may serve as context
	Start, End  int              // range of Text to shape
}

// Len returns the number of characters to shape.
func (req Request) Len() int {
	return req.End - req.Start
}

// Runes returns the characters to shape.
func (req Request) Runes() []rune {
	return req.Text[req.Start:req.End]
}
