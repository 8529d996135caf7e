package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otsession/core"
	"github.com/npillmayer/otsession/core/dimen"
	"github.com/npillmayer/otsession/core/font"
	"github.com/npillmayer/otsession/core/locate/resources"
	"github.com/npillmayer/otsession/core/tag"
	"github.com/npillmayer/otsession/engine/shaping"
	"github.com/npillmayer/otsession/engine/shaping/otscript"
	"github.com/npillmayer/schuko"
	"github.com/pterm/pterm"
	xfont "golang.org/x/image/font"
)

// Intp is our interpreter object. It owns one shaping session.
type Intp struct {
	session *shaping.Session
	conf    schuko.Configuration
	repl    *readline.Instance
	result  shaping.Result
	autoDir bool // detect the direction of each text before shaping
}

// NewIntp creates an interpreter with a session for backend. The session
// starts with the fallback font at 12pt.
func NewIntp(backend shaping.Backend, conf schuko.Configuration) *Intp {
	intp := &Intp{
		session: shaping.NewSession(backend),
		conf:    conf,
	}
	intp.session.SetFont(font.FallbackFont())
	_ = intp.session.SetTypeSize(12)
	return intp
}

// Op codes
const (
	QUIT int = iota
	HELP
	FONT
	SIZE
	SCRIPT
	LANG
	MODE
	DIR
	SHAPE
	RANGE
	SHOW
)

var opNames = map[string]int{
	"quit":   QUIT,
	"exit":   QUIT,
	"help":   HELP,
	"font":   FONT,
	"size":   SIZE,
	"script": SCRIPT,
	"lang":   LANG,
	"mode":   MODE,
	"dir":    DIR,
	"shape":  SHAPE,
	"range":  RANGE,
	"show":   SHOW,
}

// Command is a parsed input line.
type Command struct {
	code int
	args []string // arguments, if any
	text string   // text to shape
}

// parseCommand splits a line into op and arguments. Commands shape and range
// take the remainder of the line as text, leading and inner spaces included.
func parseCommand(line string) (Command, error) {
	op, rest := splitWord(strings.TrimLeft(line, " \t"))
	code, ok := opNames[strings.ToLower(op)]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q, try 'help'", op)
	}
	cmd := Command{code: code}
	switch code {
	case SHAPE:
		cmd.text = rest
	case RANGE:
		var start, end string
		start, rest = splitWord(rest)
		end, rest = splitWord(rest)
		cmd.args = []string{start, end}
		cmd.text = rest
	default:
		cmd.args = strings.Fields(rest)
	}
	return cmd, nil
}

func splitWord(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func (cmd Command) arg(i int) string {
	if len(cmd.args) > i {
		return cmd.args[i]
	}
	return ""
}

func (intp *Intp) execute(cmd Command) (quit bool, err error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(cmd.arg(0))
	case FONT:
		err = intp.loadFont(strings.Join(cmd.args, " "))
	case SIZE:
		var size float64
		if size, err = dimen.ParsePoints(cmd.arg(0)); err != nil {
			return false, err
		}
		err = intp.session.SetTypeSize(size)
	case SCRIPT:
		var t tag.Tag
		if t, err = parseTag(cmd.arg(0)); err == nil {
			if _, e := otscript.ISO15924(t); e != nil {
				pterm.Warning.Printfln("%s is not a registered script", t)
			}
			intp.session.SetScriptTag(t)
		}
	case LANG:
		var t tag.Tag
		if t, err = parseTag(cmd.arg(0)); err == nil {
			intp.session.SetLanguageTag(t)
		}
	case MODE:
		var m shaping.WritingMode
		if m, err = parseMode(cmd.arg(0)); err == nil {
			err = intp.session.SetTextMode(m)
		}
	case DIR:
		if intp.autoDir = strings.EqualFold(cmd.arg(0), "auto"); intp.autoDir {
			break
		}
		var d shaping.WritingDirection
		if d, err = parseDirection(cmd.arg(0)); err == nil {
			err = intp.session.SetTextDirection(d)
		}
	case SHAPE:
		text := []rune(cmd.text)
		err = intp.shape(text, 0, len(text))
	case RANGE:
		var start, end int
		if start, err = strconv.Atoi(cmd.arg(0)); err != nil {
			return false, core.WrapError(err, core.EINVALID, "start is not a number: %q", cmd.arg(0))
		}
		if end, err = strconv.Atoi(cmd.arg(1)); err != nil {
			return false, core.WrapError(err, core.EINVALID, "end is not a number: %q", cmd.arg(1))
		}
		err = intp.shape([]rune(cmd.text), start, end)
	case SHOW:
		printSession(intp.session)
	}
	return false, err
}

func (intp *Intp) shape(text []rune, start, end int) error {
	if intp.autoDir && start >= 0 && start <= end && end <= len(text) {
		dir := shaping.DetectDirection(text[start:end])
		if err := intp.session.SetTextDirection(dir); err != nil {
			return err
		}
		tracer().Debugf("detected direction %v", dir)
	}
	if err := intp.session.ShapeText(&intp.result, text, start, end); err != nil {
		return err
	}
	printResult(&intp.result)
	return nil
}

func (intp *Intp) loadFont(name string) error {
	if name == "" {
		return core.Error(core.EINVALID, "font needs a name or a path")
	}
	promise := resources.ResolveFont(intp.conf, nil, name, xfont.StyleNormal, xfont.WeightNormal)
	f, err := promise.Font()
	if f == nil {
		return err
	}
	if err != nil {
		pterm.Warning.Printfln("%s, using %s", core.UserMessage(err), f.Fontname)
	}
	intp.session.SetFont(f)
	pterm.Info.Printfln("font is %s (%d units per em)", f.Fontname, f.UnitsPerEm())
	return nil
}

// parseTag accepts tags with trailing spaces omitted, e.g. "lao" for "lao ".
func parseTag(s string) (tag.Tag, error) {
	if s == "" {
		return tag.None, errors.New("tag missing")
	}
	if len(s) < 4 {
		s += strings.Repeat(" ", 4-len(s))
	}
	t, err := tag.Parse(s)
	if err != nil {
		return tag.None, core.WrapError(err, core.EINVALID, "not a tag: %q", s)
	}
	return t, nil
}

func parseMode(s string) (shaping.WritingMode, error) {
	switch strings.ToLower(s) {
	case "default", "":
		return shaping.ModeDefault, nil
	case "forward", "ltr":
		return shaping.ModeForward, nil
	case "backward", "rtl":
		return shaping.ModeBackward, nil
	}
	return shaping.ModeDefault, core.Error(core.EINVALID, "mode is one of default|forward|backward")
}

func parseDirection(s string) (shaping.WritingDirection, error) {
	switch strings.ToLower(s) {
	case "default", "":
		return shaping.DirectionDefault, nil
	case "ltr", "lefttoright":
		return shaping.LeftToRight, nil
	case "rtl", "righttoleft":
		return shaping.RightToLeft, nil
	}
	return shaping.DirectionDefault, core.Error(core.EINVALID, "direction is one of default|ltr|rtl|auto")
}
