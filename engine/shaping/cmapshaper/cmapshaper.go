/*
Package cmapshaper implements a minimal shaping backend. It maps every
character to a glyph with the font's cmap table and advances it by the
glyph's horizontal metrics. There is no glyph substitution and no
positioning beyond advances; GSUB and GPOS tables are ignored.

Characters are grouped into clusters by grapheme (UAX #29), such that a
base character and its combining marks share a cluster. Characters missing
from the font are output as glyph 0 (.notdef).

The backend is useful for fonts without OpenType layout tables, for
testing, and as a fallback for environments where HarfBuzz is not wanted.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cmapshaper

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/otsession/core/font"
	"github.com/npillmayer/otsession/core/tag"
	"github.com/npillmayer/otsession/engine/shaping"
	"github.com/npillmayer/otsession/engine/shaping/otscript"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// tracer traces with key 'otsession.shaping'.
func tracer() tracing.Trace {
	return tracing.Select("otsession.shaping")
}

var graphemeClassesSetup sync.Once

// Backend is a shaping backend using cmap and hmtx only.
type Backend struct{}

// New creates a cmap backend.
func New() *Backend {
	graphemeClassesSetup.Do(grapheme.SetupGraphemeClasses)
	return &Backend{}
}

var _ shaping.Backend = (*Backend)(nil)

// ScriptDefaultDirection returns RightToLeft for scripts written right to
// left and LeftToRight for all others.
func (be *Backend) ScriptDefaultDirection(script tag.Tag) shaping.WritingDirection {
	if otscript.IsRightToLeft(script) {
		return shaping.RightToLeft
	}
	return shaping.LeftToRight
}

// Shape maps the characters of req to glyphs, one glyph per character.
// Script and language are ignored. Backward output reverses the glyphs.
func (be *Backend) Shape(req shaping.Request, result *shaping.Result) error {
	if req.Font == nil || req.Font.SFNT == nil {
		return errors.New("cmap shaper needs a parsed font")
	}
	result.Reset(req)
	gstr := grapheme.StringFromString(string(req.Runes()))
	pos := req.Start
	for i := 0; i < gstr.Len(); i++ {
		cluster := pos
		for _, r := range gstr.Nth(i) {
			gid, err := req.Font.GlyphIndex(r)
			if err != nil && !errors.Is(err, font.ErrNoGlyph) {
				return fmt.Errorf("cmap lookup of %#U: %w", r, err)
			}
			adv, err := req.Font.GlyphAdvance(gid)
			if err != nil {
				return fmt.Errorf("advance of glyph %d: %w", gid, err)
			}
			result.AppendGlyph(uint16(gid), cluster, int32(adv), shaping.GlyphOffset{})
			pos++
		}
	}
	if pos != req.End {
		return fmt.Errorf("grapheme segmentation lost characters: %d of %d", pos-req.Start, req.Len())
	}
	if req.Mode.IsBackward() {
		result.ReverseGlyphs()
	}
	result.MapCharsToGlyphs()
	tracer().Debugf("cmap shaper produced %d glyphs", result.GlyphCount())
	return nil
}
