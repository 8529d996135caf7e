/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

Shaping sessions hold a *ScalableFont and pass it to a shaping backend together
with a type size; this package never scales fonts itself.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'otsession.font'
func tracer() tracing.Trace {
	return tracing.Select("otsession.font")
}

// ErrNoGlyph is returned if a font does not map a code-point to a glyph.
var ErrNoGlyph = errors.New("font has no glyph for code-point")

// ScalableFont is an internal representation of an outline-font of type
// TTF or OTF.
//
// Binary must not be changed after parsing, as backends may read from it
// at any time.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, or "internal" for embedded fonts
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	if f.Fontname == "" {
		f.Fontname = filepath.Base(fontfile)
	}
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}

// UnitsPerEm returns the design units per em of the font.
func (sf *ScalableFont) UnitsPerEm() sfnt.Units {
	if sf == nil || sf.SFNT == nil {
		return 0
	}
	return sf.SFNT.UnitsPerEm()
}

// SizeByEm returns the factor converting font units to units of typeSize.
func (sf *ScalableFont) SizeByEm(typeSize float64) float64 {
	upem := sf.UnitsPerEm()
	if upem == 0 {
		return 0
	}
	return typeSize / float64(upem)
}

// GlyphIndex returns the glyph mapped to r by the font's cmap.
// If there is no mapping, GlyphIndex returns glyph 0 and ErrNoGlyph.
func (sf *ScalableFont) GlyphIndex(r rune) (sfnt.GlyphIndex, error) {
	var buf sfnt.Buffer
	gid, err := sf.SFNT.GlyphIndex(&buf, r)
	if err != nil {
		return 0, err
	}
	if gid == 0 {
		return 0, ErrNoGlyph
	}
	return gid, nil
}

// GlyphAdvance returns the horizontal advance of a glyph in font units.
func (sf *ScalableFont) GlyphAdvance(gid sfnt.GlyphIndex) (sfnt.Units, error) {
	var buf sfnt.Buffer
	// With ppem = upem, the 26.6 result carries font units unscaled.
	adv, err := sf.SFNT.GlyphAdvance(&buf, gid, fixed.Int26_6(sf.SFNT.UnitsPerEm()), xfont.HintingNone)
	if err != nil {
		return 0, err
	}
	return sfnt.Units(adv), nil
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else fails.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}
