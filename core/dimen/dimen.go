/*
Package dimen implements typographic dimensions and units.

Shaping sessions take type sizes as plain numbers in big points (PDF points,
1/72 inch). Dimen converts between sizes given with units and those numbers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/otsession/core"
)

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels"
	PT   Dimen = 65291   // printers point 1/72.27 inch
	PC   Dimen = 12 * PT // pica
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// FromPoints converts a number of big points to a dimension. Values outside
// the range of Dimen saturate at MaxDimen or MinDimen.
func FromPoints(bp float64) Dimen {
	return saturate(bp * float64(BP))
}

// Limits of Dimen. MaxDimen is a little less than 32768bp.
const (
	MaxDimen Dimen = math.MaxInt32
	MinDimen Dimen = math.MinInt32
)

func saturate(sp float64) Dimen {
	switch {
	case math.IsNaN(sp):
		return Zero
	case sp >= float64(MaxDimen):
		return MaxDimen
	case sp <= float64(MinDimen):
		return MinDimen
	}
	return Dimen(math.Round(sp))
}

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)([a-zA-Z]{2})?$`)

var units = map[string]Dimen{
	"":   BP,
	"bp": BP,
	"px": PX,
	"pt": PT,
	"pc": PC,
	"mm": MM,
	"cm": CM,
	"in": IN,
	"sp": SP,
}

// ParsePoints parses a number with an optional unit, e.g. "12pt" or "4.5mm",
// and returns it in big points. A number without unit is taken as big points.
// Unlike ParseDimen, ParsePoints has no upper bound.
func ParsePoints(s string) (float64, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if d == nil {
		return 0, core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	scale, ok := units[strings.ToLower(d[2])]
	if !ok {
		return 0, core.Error(core.EINVALID, "unknown unit %q", d[2])
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	return n * float64(scale) / float64(BP), nil
}

// ParseDimen parses a number with an optional unit, like ParsePoints.
// Dimensions beyond the range of Dimen (about ±32767bp) are rejected.
func ParseDimen(s string) (Dimen, error) {
	bp, err := ParsePoints(s)
	if err != nil {
		return 0, err
	}
	sp := math.Round(bp * float64(BP))
	if sp > float64(MaxDimen) || sp < float64(MinDimen) {
		return 0, core.Error(core.EINVALID, "dimension too large: %q", s)
	}
	return Dimen(sp), nil
}
