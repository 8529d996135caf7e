/*
Command shapecli is an interactive playground for shaping sessions.

A single session is kept across commands. Set font, size, script, language,
mode and direction one at a time, then shape text and look at the glyphs:

	shape > script arab
	shape > shape سلام
	shape > mode forward
	shape > range 0 2 سلام

Type "help" for a list of commands.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otsession/core"
	"github.com/npillmayer/otsession/core/locate/resources"
	"github.com/npillmayer/otsession/engine/shaping"
	"github.com/npillmayer/otsession/engine/shaping/cmapshaper"
	"github.com/npillmayer/otsession/engine/shaping/harfbuzz"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otsession.cli'
func tracer() tracing.Trace {
	return tracing.Select("otsession.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load (name or path)")
	backendName := flag.String("backend", "harfbuzz", "Shaping backend [harfbuzz|cmap]")
	fontdirs := flag.String("fontdirs", "", "Additional font directories, separated by "+string(os.PathListSeparator))
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.otsession.cli":       *tlevel,
		"trace.otsession.shaping":   *tlevel,
		"trace.otsession.harfbuzz":  *tlevel,
		"trace.otsession.font":      *tlevel,
		"trace.otsession.resources": *tlevel,
		resources.FontDirsKey:       *fontdirs,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the shaping CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	backend, err := selectBackend(*backendName)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	intp := NewIntp(backend, conf)
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil {
			core.UserError(err)
		}
	}
	//
	// set up REPL
	repl, err := readline.New("shape > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                              // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func selectBackend(name string) (shaping.Backend, error) {
	switch strings.ToLower(name) {
	case "harfbuzz", "hb", "":
		return harfbuzz.New(), nil
	case "cmap":
		return cmapshaper.New(), nil
	}
	return nil, core.Error(core.EINVALID, "unknown shaping backend %q", name)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Debugf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}
