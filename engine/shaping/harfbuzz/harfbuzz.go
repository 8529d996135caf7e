package harfbuzz

import (
	"bytes"
	"fmt"
	"sync"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/npillmayer/otsession/core/font"
	"github.com/npillmayer/otsession/core/tag"
	"github.com/npillmayer/otsession/engine/shaping"
	"github.com/npillmayer/otsession/engine/shaping/otscript"
)

// Backend is a shaping backend calling HarfBuzz.
type Backend struct {
	sync.Mutex
	fonts map[*font.ScalableFont]*hb.Font
}

// New creates a HarfBuzz backend.
func New() *Backend {
	return &Backend{fonts: make(map[*font.ScalableFont]*hb.Font)}
}

var _ shaping.Backend = (*Backend)(nil)

// ScriptDefaultDirection returns RightToLeft for scripts written right to
// left and LeftToRight for all others, including unknown scripts.
func (be *Backend) ScriptDefaultDirection(script tag.Tag) shaping.WritingDirection {
	if otscript.IsRightToLeft(script) {
		return shaping.RightToLeft
	}
	return shaping.LeftToRight
}

// Direction4HB translates a direction to a HarfBuzz direction.
func Direction4HB(d shaping.WritingDirection) hb.Direction {
	if d == shaping.RightToLeft {
		return hb.RightToLeft
	}
	return hb.LeftToRight
}

// Shape calls the HarfBuzz shaper for req.
//
// The complete text of req is handed to HarfBuzz as context, thus cluster
// values of result are indices into req.Text. HarfBuzz produces glyphs of
// right-to-left text in visual order; if this does not match req.Mode, the
// glyph sequence is reversed.
func (be *Backend) Shape(req shaping.Request, result *shaping.Result) (err error) {
	be.Lock()
	defer be.Unlock()
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("HarfBuzz panicked: %v", r)
			err = fmt.Errorf("harfbuzz: %v", r)
		}
	}()
	hbFont, err := be.hbFont(req.Font)
	if err != nil {
		return err
	}
	buf := hb.NewBuffer()
	buf.Props = hb.SegmentProperties{
		Direction: Direction4HB(req.Direction),
		Script:    Script4HB(req.ScriptTag),
		Language:  Lang4HB(req.LanguageTag),
	}
	buf.AddRunes(req.Text, req.Start, req.Len())
	buf.Shape(hbFont, nil)
	//
	result.Reset(req)
	for i, info := range buf.Info {
		pos := buf.Pos[i]
		result.AppendGlyph(uint16(info.Glyph), info.Cluster, int32(pos.XAdvance),
			shaping.GlyphOffset{X: int32(pos.XOffset), Y: int32(pos.YOffset)})
	}
	if req.Mode.IsBackward() != (req.Direction == shaping.RightToLeft) {
		result.ReverseGlyphs()
	}
	result.MapCharsToGlyphs()
	tracer().Debugf("HarfBuzz produced %d glyphs for %d characters", result.GlyphCount(), req.Len())
	return nil
}

// hbFont returns the HarfBuzz font for f, parsing it on first use.
func (be *Backend) hbFont(f *font.ScalableFont) (*hb.Font, error) {
	if hbFont, ok := be.fonts[f]; ok {
		return hbFont, nil
	}
	face, err := hbtt.Parse(bytes.NewReader(f.Binary), true)
	if err != nil {
		return nil, fmt.Errorf("harfbuzz cannot parse font %q: %w", f.Fontname, err)
	}
	hbFont := hb.NewFont(face)
	be.fonts[f] = hbFont
	tracer().Infof("HarfBuzz loaded font %q", f.Fontname)
	return hbFont, nil
}

// Forget removes a font from the backend's cache.
func (be *Backend) Forget(f *font.ScalableFont) {
	be.Lock()
	defer be.Unlock()
	delete(be.fonts, f)
}
