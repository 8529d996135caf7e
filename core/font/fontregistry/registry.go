package fontregistry

import (
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/otsession/core"
	"github.com/npillmayer/otsession/core/font"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// Registry is a type for holding information about loaded fonts.
type Registry struct {
	sync.Mutex
	fonts map[string]*font.ScalableFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*font.ScalableFont),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns the font stored under `normalizedName`.
//
// If no such font has been stored, Font will return the system-wide fallback
// font, together with an error of code core.EMISSING.
func (fr *Registry) Font(normalizedName string) (*font.ScalableFont, error) {
	tracer().Debugf("registry searches for font %s", normalizedName)
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[normalizedName]; ok {
		return f, nil
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := core.Error(core.EMISSING, "font %s not found in registry", normalizedName)
	return font.FallbackFont(), err
}

// Contains is a predicate: has a font been stored under `normalizedName`?
func (fr *Registry) Contains(normalizedName string) bool {
	fr.Lock()
	defer fr.Unlock()
	_, ok := fr.fonts[normalizedName]
	return ok
}

// Names returns the sorted keys of all registered fonts.
func (fr *Registry) Names() []string {
	fr.Lock()
	defer fr.Unlock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LogFontList is a helper function to dump the list of known fonts in a
// registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	tracer().Infof("--- registered fonts ---")
	for _, k := range fr.Names() {
		fr.Lock()
		f := fr.fonts[k]
		fr.Unlock()
		tracer().Infof("font [%s] = %v", k, f.Fontname)
	}
	tracer().Infof("------------------------")
}

// NormalizeFontname creates a registry key from a font name, a style and a
// weight, e.g. "Gentium Plus.ttf" in italic → "gentium_plus-italic".
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case xfont.WeightLight, xfont.WeightExtraLight:
		fname += "-light"
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold:
		fname += "-bold"
	}
	return fname
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
