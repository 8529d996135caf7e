package shaping

import (
	"math"
	"testing"

	"github.com/npillmayer/otsession/core/tag"
	"golang.org/x/text/unicode/bidi"
)

func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }

func TestResolveTable(t *testing.T) {
	table := newRecorder()
	cases := []struct {
		intent Layout
		script tag.Tag
		want   Layout
	}{
		{Layout{}, latn, Layout{ModeForward, LeftToRight}},
		{Layout{}, arab, Layout{ModeBackward, RightToLeft}},
		{Layout{}, tag.None, Layout{ModeForward, LeftToRight}},
		{Layout{ModeForward, DirectionDefault}, arab, Layout{ModeForward, RightToLeft}},
		{Layout{ModeBackward, DirectionDefault}, latn, Layout{ModeBackward, LeftToRight}},
		{Layout{ModeDefault, RightToLeft}, latn, Layout{ModeBackward, RightToLeft}},
		{Layout{ModeDefault, LeftToRight}, arab, Layout{ModeForward, LeftToRight}},
		{Layout{ModeForward, RightToLeft}, arab, Layout{ModeForward, RightToLeft}},
	}
	for i, c := range cases {
		got := Resolve(c.intent, c.script, table)
		if got != c.want {
			t.Errorf("case %d: resolve %v for %s = %v, want %v", i, c.intent, c.script, got, c.want)
		}
		if !got.IsResolved() {
			t.Errorf("case %d: expected layout to be resolved", i)
		}
	}
}

func TestResolveWithoutTable(t *testing.T) {
	got := Resolve(Layout{}, arab, nil)
	if got.IsResolved() {
		t.Errorf("expected resolution without direction table to stay unresolved, got %v", got)
	}
	if got.Direction != DirectionDefault {
		t.Errorf("direction = %v, want default", got.Direction)
	}
	if d := ScriptDefaultDirection(nil, latn); d != DirectionDefault {
		t.Errorf("direction from nil table = %v", d)
	}
}

func TestScriptDefaultDirectionForwardsTag(t *testing.T) {
	table := newRecorder()
	if d := ScriptDefaultDirection(table, arab); d != RightToLeft {
		t.Errorf("direction of arab = %v, want rtl", d)
	}
	if d := ScriptDefaultDirection(table, latn); d != LeftToRight {
		t.Errorf("direction of latn = %v, want ltr", d)
	}
	if d := ScriptDefaultDirection(table, xxxx); d != LeftToRight {
		t.Errorf("unknown script should follow backend convention, got %v", d)
	}
	if table.lookups != 3 {
		t.Errorf("expected 3 lookups, have %d", table.lookups)
	}
}

func TestEnumStrings(t *testing.T) {
	if ModeBackward.String() != "backward" || ModeDefault.String() != "default" {
		t.Errorf("unexpected mode names")
	}
	if RightToLeft.String() != "rtl" || WritingDirection(5).String() != "WritingDirection(5)" {
		t.Errorf("unexpected direction names")
	}
	if WritingMode(3).IsValid() || !ModeForward.IsValid() {
		t.Errorf("mode validity broken")
	}
}

func TestDetectDirection(t *testing.T) {
	for _, c := range []struct {
		text string
		dir  WritingDirection
	}{
		{"Hello", LeftToRight},
		{"مرحبا", RightToLeft},
		{"שלום", RightToLeft},
		{"12, (א)", RightToLeft},
		{"  42 Hello مرحبا", LeftToRight},
		{"1234 !?", DirectionDefault},
		{"", DirectionDefault},
	} {
		if d := DetectDirection([]rune(c.text)); d != c.dir {
			t.Errorf("direction of %q = %v, want %v", c.text, d, c.dir)
		}
	}
	if DirectionFromBidi(bidi.Mixed) != DirectionDefault {
		t.Errorf("mixed bidi direction should map to default")
	}
}
