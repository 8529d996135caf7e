package shaping

import (
	"fmt"

	"golang.org/x/text/unicode/bidi"
)

// WritingMode tells the shaper in which order to produce glyphs.
//
// ModeDefault lets the writing direction decide. The forced modes produce
// glyphs forward (left to right) or backward (right to left), whatever the
// script's direction is.
type WritingMode int

// Writing modes
const (
	ModeDefault WritingMode = iota
	ModeForcedLeftToRight
	ModeForcedRightToLeft
)

// ModeForward and ModeBackward name the forced modes by glyph order relative
// to logical text order.
const (
	ModeForward  = ModeForcedLeftToRight
	ModeBackward = ModeForcedRightToLeft
)

// IsValid is a predicate: is m one of the defined writing modes?
func (m WritingMode) IsValid() bool {
	return m >= ModeDefault && m <= ModeForcedRightToLeft
}

// IsBackward is true for ModeForcedRightToLeft.
func (m WritingMode) IsBackward() bool {
	return m == ModeForcedRightToLeft
}

func (m WritingMode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeForcedLeftToRight:
		return "forward"
	case ModeForcedRightToLeft:
		return "backward"
	}
	return fmt.Sprintf("WritingMode(%d)", int(m))
}

// WritingDirection is the inherent direction of a script.
type WritingDirection int

// Writing directions
const (
	DirectionDefault WritingDirection = iota
	LeftToRight
	RightToLeft
)

// IsValid is a predicate: is d one of the defined writing directions?
func (d WritingDirection) IsValid() bool {
	return d >= DirectionDefault && d <= RightToLeft
}

func (d WritingDirection) String() string {
	switch d {
	case DirectionDefault:
		return "default"
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	}
	return fmt.Sprintf("WritingDirection(%d)", int(d))
}

// DirectionFromBidi converts a direction of package x/text/unicode/bidi.
// Mixed and neutral directions map to DirectionDefault.
func DirectionFromBidi(d bidi.Direction) WritingDirection {
	switch d {
	case bidi.LeftToRight:
		return LeftToRight
	case bidi.RightToLeft:
		return RightToLeft
	}
	return DirectionDefault
}

// DetectDirection finds the direction of text from its first strongly typed
// character (rules P2 and P3 of UAX #9). Text without strong characters
// yields DirectionDefault.
func DetectDirection(text []rune) WritingDirection {
	return DirectionFromBidi(paragraphDirection(text))
}

func paragraphDirection(text []rune) bidi.Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return bidi.LeftToRight
		case bidi.R, bidi.AL:
			return bidi.RightToLeft
		}
	}
	return bidi.Neutral
}
