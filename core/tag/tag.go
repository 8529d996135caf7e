package tag

import (
	"fmt"
	"strings"
)

// Tag is defined by the OpenType spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// None is the all-zero tag. Sessions use it for "no script" and "no language".
const None Tag = 0

// Make packs four bytes into a Tag, a into bits 31–24 and d into bits 7–0.
// Only the low 8 bits of each argument are used.
func Make(a, b, c, d int) Tag {
	return Tag(uint32(a&0xff)<<24 |
		uint32(b&0xff)<<16 |
		uint32(c&0xff)<<8 |
		uint32(d&0xff))
}

// FromBytes creates a Tag from a 4-byte slice. A shorter slice is padded with
// spaces, a longer one is cut.
func FromBytes(b []byte) Tag {
	var p [4]byte
	copy(p[:], "    ")
	copy(p[:], b)
	return Make(int(p[0]), int(p[1]), int(p[2]), int(p[3]))
}

// Decode unpacks a tag into its four bytes, most significant first.
func Decode(t Tag) (a, b, c, d byte) {
	return byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)
}

// Bytes is the method form of Decode.
func (t Tag) Bytes() (a, b, c, d byte) {
	return Decode(t)
}

// Parse creates a Tag from a 4-character string. Every character has to be
// printable ASCII (0x20…0x7E); OpenType pads short tags with spaces, e.g. "lao ".
func Parse(s string) (Tag, error) {
	if len(s) != 4 {
		return None, fmt.Errorf("tag %q: must have exactly 4 characters", s)
	}
	for i := 0; i < 4; i++ {
		if !printable(s[i]) {
			return None, fmt.Errorf("tag %q: character at position %d is not printable ASCII", s, i)
		}
	}
	return FromBytes([]byte(s)), nil
}

// MustParse is like Parse, but panics on invalid input.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// IsPrintable reports whether all four bytes are printable ASCII.
func (t Tag) IsPrintable() bool {
	a, b, c, d := t.Bytes()
	return printable(a) && printable(b) && printable(c) && printable(d)
}

// String returns the four bytes as text. Tags with non-printable bytes are
// rendered in hex instead.
func (t Tag) String() string {
	if t == None {
		return "<none>"
	}
	if !t.IsPrintable() {
		return fmt.Sprintf("0x%08x", uint32(t))
	}
	a, b, c, d := t.Bytes()
	return string([]byte{a, b, c, d})
}

// Trimmed returns the tag's text without trailing padding spaces.
func (t Tag) Trimmed() string {
	if t == None || !t.IsPrintable() {
		return ""
	}
	return strings.TrimRight(t.String(), " ")
}

func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
