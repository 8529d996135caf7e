package shaping

import (
	"fmt"
	"strings"
)

// GlyphOffset is the displacement of a glyph from its pen position, in font units.
type GlyphOffset struct {
	X, Y int32
}

// Result is the output of shaping a range of characters.
//
// Glyph data is kept in font units; the float accessors scale it to units of
// the type size via SizeByEm. If Backward is set, glyphs are stored in reverse
// logical order.
//
// A Result is owned by the client and may be re-used. Every successful call of
// Session.ShapeText overwrites it. After a failed call its content is undefined.
type Result struct {
	Backward    bool          // glyphs flow backward
	CharStart   int           // first character shaped
	CharEnd     int           // index after the last character shaped
	SizeByEm    float64       // type size / units per em
	GlyphIDs    []uint16      // glyph indices into the font
	Clusters    []int         // for each glyph, the index of the first character of its cluster
	Advances    []int32       // advance per glyph, font units
	Offsets     []GlyphOffset // offset per glyph, font units
	CharToGlyph []int         // for each character of [CharStart, CharEnd), its first glyph
}

// Reset clears r and prepares it for req. Slices keep their capacity.
func (r *Result) Reset(req Request) {
	r.Backward = req.Mode.IsBackward()
	r.CharStart, r.CharEnd = req.Start, req.End
	r.SizeByEm = req.Font.SizeByEm(req.TypeSize)
	r.GlyphIDs = r.GlyphIDs[:0]
	r.Clusters = r.Clusters[:0]
	r.Advances = r.Advances[:0]
	r.Offsets = r.Offsets[:0]
	r.CharToGlyph = r.CharToGlyph[:0]
}

// AppendGlyph adds a glyph to the end of r.
func (r *Result) AppendGlyph(gid uint16, cluster int, advance int32, offset GlyphOffset) {
	r.GlyphIDs = append(r.GlyphIDs, gid)
	r.Clusters = append(r.Clusters, cluster)
	r.Advances = append(r.Advances, advance)
	r.Offsets = append(r.Offsets, offset)
}

// GlyphCount returns the number of glyphs.
func (r *Result) GlyphCount() int {
	return len(r.GlyphIDs)
}

// CharCount returns the number of characters shaped.
func (r *Result) CharCount() int {
	return r.CharEnd - r.CharStart
}

// Advance returns the advance of glyph i in units of the type size.
func (r *Result) Advance(i int) float64 {
	return float64(r.Advances[i]) * r.SizeByEm
}

// Offset returns the offset of glyph i in units of the type size.
func (r *Result) Offset(i int) (x, y float64) {
	o := r.Offsets[i]
	return float64(o.X) * r.SizeByEm, float64(o.Y) * r.SizeByEm
}

// Width returns the sum of all advances in units of the type size.
func (r *Result) Width() float64 {
	var w int64
	for _, a := range r.Advances {
		w += int64(a)
	}
	return float64(w) * r.SizeByEm
}

// ReverseGlyphs reverses the order of all glyph data.
func (r *Result) ReverseGlyphs() {
	n := len(r.GlyphIDs)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		r.GlyphIDs[i], r.GlyphIDs[j] = r.GlyphIDs[j], r.GlyphIDs[i]
		r.Clusters[i], r.Clusters[j] = r.Clusters[j], r.Clusters[i]
		r.Advances[i], r.Advances[j] = r.Advances[j], r.Advances[i]
		r.Offsets[i], r.Offsets[j] = r.Offsets[j], r.Offsets[i]
	}
}

// MapCharsToGlyphs derives CharToGlyph from Clusters. Backends call it after
// glyphs are in their final order.
//
// Every character maps to the lowest glyph position of its cluster. Characters
// inside a cluster (e.g., the second letter of a ligature) map to the glyph of
// the cluster's first character. If r has no glyphs at all, every character
// maps to -1.
func (r *Result) MapCharsToGlyphs() {
	n := r.CharCount()
	r.CharToGlyph = r.CharToGlyph[:0]
	for i := 0; i < n; i++ {
		r.CharToGlyph = append(r.CharToGlyph, -1)
	}
	if n == 0 {
		return
	}
	for j, cluster := range r.Clusters {
		c := cluster - r.CharStart
		if c < 0 || c >= n {
			continue
		}
		if g := r.CharToGlyph[c]; g < 0 || j < g {
			r.CharToGlyph[c] = j
		}
	}
	first := -1
	for i := 0; i < n; i++ {
		if r.CharToGlyph[i] >= 0 {
			first = r.CharToGlyph[i]
			break
		}
	}
	prev := first
	for i := 0; i < n; i++ {
		if r.CharToGlyph[i] < 0 {
			r.CharToGlyph[i] = prev
		} else {
			prev = r.CharToGlyph[i]
		}
	}
}

func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Result{backward=%v, chars=[%d,%d), glyphs=%d, ids=%v, advances=%v, offsets=%v, char-to-glyph=%v}",
		r.Backward, r.CharStart, r.CharEnd, r.GlyphCount(), r.GlyphIDs, r.Advances, r.Offsets, r.CharToGlyph)
	return b.String()
}
