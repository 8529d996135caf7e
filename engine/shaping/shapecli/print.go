package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/otsession/engine/shaping"
	"github.com/pterm/pterm"
)

func printResult(r *shaping.Result) {
	order := "forward"
	if r.Backward {
		order = "backward"
	}
	pterm.Printfln("%d glyphs for characters [%d,%d), %s, width %.2f",
		r.GlyphCount(), r.CharStart, r.CharEnd, order, r.Width())
	if r.GlyphCount() == 0 {
		return
	}
	pterm.DefaultTable.WithHasHeader().WithData(resultTable(r)).Render()
	pterm.Printfln("char → glyph: %v", r.CharToGlyph)
}

func resultTable(r *shaping.Result) [][]string {
	data := [][]string{
		{"Index", "Glyph", "Cluster", "Advance", "Offset"},
	}
	for i := 0; i < r.GlyphCount(); i++ {
		x, y := r.Offset(i)
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", r.GlyphIDs[i]),
			fmt.Sprintf("%d", r.Clusters[i]),
			fmt.Sprintf("%.2f", r.Advance(i)),
			fmt.Sprintf("(%.2f, %.2f)", x, y),
		})
	}
	return data
}

func printSession(s *shaping.Session) {
	pterm.DefaultTable.WithHasHeader().WithData(sessionTable(s)).Render()
}

func sessionTable(s *shaping.Session) [][]string {
	fontname := "<none>"
	if s.Font() != nil {
		fontname = s.Font().Fontname
	}
	resolved := s.ResolvedLayout()
	return [][]string{
		{"Parameter", "Value", "Resolved"},
		{"font", fontname, ""},
		{"size", fmt.Sprintf("%g", s.TypeSize()), ""},
		{"script", s.ScriptTag().String(), ""},
		{"language", s.LanguageTag().String(), ""},
		{"mode", s.TextMode().String(), resolved.Mode.String()},
		{"direction", s.TextDirection().String(), resolved.Direction.String()},
	}
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "mode", "dir", "direction":
		pterm.Info.Println("Mode and direction")
		pterm.Println(`
	The direction is the inherent direction of a script. If it is 'default',
	it is taken from the script. The mode tells in which order glyphs are
	produced. If it is 'default', right-to-left text produces glyphs backward.
	A forced mode always wins. With 'dir auto' the direction is set from the
	first strong character of each text before it is shaped.

	mode default|forward|backward
	dir  default|ltr|rtl|auto
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	font <name|path>          load a font
	size <dimen>              set the type size, e.g. 12, 12pt, 4mm
	script <tag>              set the OpenType script tag, e.g. latn, arab, lao
	lang <tag>                set the OpenType language tag, e.g. DEU, URD
	mode <mode>               see 'help mode'
	dir <direction>           see 'help mode'
	shape <text>              shape the text
	range <start> <end> <text> shape characters [start,end) of the text
	show                      show the session's parameters
	quit                      leave
	`)
	}
}
