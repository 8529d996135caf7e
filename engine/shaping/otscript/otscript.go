/*
Package otscript maps OpenType script tags to ISO 15924 scripts and knows
which scripts are written right to left.

Most OpenType script tags are ISO 15924 codes in lowercase. Exceptions are
short tags padded with spaces ("lao ", "yi  "), the tag "math" and the
new-style Indic tags ("dev2", "bng2", …).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package otscript

import (
	"fmt"

	"github.com/npillmayer/otsession/core/tag"
	"golang.org/x/text/language"
)

var scriptAliases = map[tag.Tag]tag.Tag{
	tag.Make('m', 'a', 't', 'h'): tag.Make('z', 'm', 't', 'h'),
	tag.Make('b', 'n', 'g', '2'): tag.Make('b', 'e', 'n', 'g'),
	tag.Make('d', 'e', 'v', '2'): tag.Make('d', 'e', 'v', 'a'),
	tag.Make('g', 'j', 'r', '2'): tag.Make('g', 'u', 'j', 'r'),
	tag.Make('g', 'u', 'r', '2'): tag.Make('g', 'u', 'r', 'u'),
	tag.Make('k', 'n', 'd', '2'): tag.Make('k', 'n', 'd', 'a'),
	tag.Make('m', 'l', 'm', '2'): tag.Make('m', 'l', 'y', 'm'),
	tag.Make('o', 'r', 'y', '2'): tag.Make('o', 'r', 'y', 'a'),
	tag.Make('t', 'm', 'l', '2'): tag.Make('t', 'a', 'm', 'l'),
	tag.Make('t', 'e', 'l', '2'): tag.Make('t', 'e', 'l', 'u'),
	tag.Make('m', 'y', 'm', '2'): tag.Make('m', 'y', 'm', 'r'),
}

var defaultScript = tag.Make('d', 'f', 'l', 't')

// Normalize maps an OpenType script tag or an ISO 15924 code to a
// lowercase ISO 15924 code. Short OpenType tags are padded with their last
// letter ("lao " → "laoo", "yi  " → "yiii"). The zero tag and DFLT map to
// tag.None.
func Normalize(script tag.Tag) tag.Tag {
	if script == tag.None {
		return tag.None
	}
	a, b, c, d := script.Bytes()
	q := [4]byte{a, b, c, d}
	for i := range q {
		if q[i] >= 'A' && q[i] <= 'Z' {
			q[i] += 'a' - 'A'
		}
	}
	for i := 1; i < 4; i++ {
		if q[i] == ' ' {
			q[i] = q[i-1]
		}
	}
	t := tag.Make(int(q[0]), int(q[1]), int(q[2]), int(q[3]))
	if t == defaultScript {
		return tag.None
	}
	if alias, ok := scriptAliases[t]; ok {
		return alias
	}
	return t
}

// ISO15924 returns the x/text script for an OpenType script tag.
// Tags which do not denote a registered script result in an error.
func ISO15924(script tag.Tag) (language.Script, error) {
	n := Normalize(script)
	if n == tag.None {
		return language.Script{}, fmt.Errorf("no script for tag %s", script)
	}
	return language.ParseScript(n.String())
}

// FromISO15924 returns the OpenType script tag for a script, in the
// style of current OpenType (old-style tags for Indic scripts).
func FromISO15924(script language.Script) tag.Tag {
	s := script.String()
	if len(s) != 4 {
		return tag.None
	}
	return Normalize(tag.FromBytes([]byte(s)))
}

// rtlScripts lists the scripts written right to left, as lowercase ISO 15924
// codes.
var rtlScripts = map[tag.Tag]struct{}{}

func init() {
	for _, s := range []string{
		"arab", "hebr", "syrc", "thaa", "cprt", "khar", "phnx", "nkoo",
		"lydi", "avst", "armi", "phli", "prti", "sarb", "orkh", "samr",
		"mand", "merc", "mero", "mani", "mend", "nbat", "narb", "palm",
		"phlp", "hatr", "adlm", "rohg", "sogo", "sogd", "elym", "chrs",
		"yezi", "ougr",
	} {
		rtlScripts[tag.MustParse(s)] = struct{}{}
	}
}

// IsRightToLeft is true for scripts written right to left.
func IsRightToLeft(script tag.Tag) bool {
	_, ok := rtlScripts[Normalize(script)]
	return ok
}
