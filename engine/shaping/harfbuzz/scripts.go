package harfbuzz

import (
	"fmt"

	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/npillmayer/otsession/core/tag"
	"github.com/npillmayer/otsession/engine/shaping/otscript"
	"golang.org/x/text/language"
)

// Script4HB converts an OpenType script tag to a HarfBuzz script.
// HarfBuzz scripts are ISO 15924 codes in lowercase.
func Script4HB(script tag.Tag) hblang.Script {
	return hblang.Script(otscript.Normalize(script))
}

// OpenType language system tags are not ISO 639 codes ("FAR " is Persian,
// "TRK " is Turkish). BCP 47 names for common ones; all others are "und".
var langPrefixes = map[tag.Tag]language.Tag{
	tag.MustParse("ARA "): language.Arabic,
	tag.MustParse("DEU "): language.German,
	tag.MustParse("ENG "): language.English,
	tag.MustParse("ESP "): language.Spanish,
	tag.MustParse("FAR "): language.Persian,
	tag.MustParse("FRA "): language.French,
	tag.MustParse("HIN "): language.Hindi,
	tag.MustParse("ITA "): language.Italian,
	tag.MustParse("IWR "): language.Hebrew,
	tag.MustParse("JAN "): language.Japanese,
	tag.MustParse("KOR "): language.Korean,
	tag.MustParse("NLD "): language.Dutch,
	tag.MustParse("PLK "): language.Polish,
	tag.MustParse("ROM "): language.Romanian,
	tag.MustParse("RUS "): language.Russian,
	tag.MustParse("SRB "): language.Serbian,
	tag.MustParse("TRK "): language.Turkish,
	tag.MustParse("URD "): language.Urdu,
	tag.MustParse("ZHS "): language.SimplifiedChinese,
	tag.MustParse("ZHT "): language.TraditionalChinese,
}

var defaultLanguage = tag.MustParse("dflt")

// Lang4HB converts an OpenType language system tag to a HarfBuzz language.
//
// The tag is handed over verbatim in HarfBuzz's private-use subtag
// "-x-hbot-<8 hex digits>", which makes HarfBuzz select exactly this language
// system. The zero tag and dflt map to the empty language.
func Lang4HB(lang tag.Tag) hblang.Language {
	if lang == tag.None || lang == defaultLanguage {
		return ""
	}
	prefix := "und"
	if l, ok := langPrefixes[lang]; ok {
		prefix = l.String()
	}
	return hblang.NewLanguage(fmt.Sprintf("%s-x-hbot-%08x", prefix, uint32(lang)))
}
