package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/otsession/core"
	"github.com/npillmayer/otsession/core/font"
	"github.com/npillmayer/otsession/core/font/fontregistry"
	"github.com/npillmayer/schuko"
	xfont "golang.org/x/image/font"
)

// FontDirsKey is the configuration key for a list of additional font
// directories, separated by the OS path list separator.
const FontDirsKey = "fontdirs"

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s", name)
}

type fontPlusErr struct {
	font *font.ScalableFont
	err  error
}

// FontPromise is returned by ResolveFont. Font blocks until the font has been
// loaded or the search has failed.
type FontPromise interface {
	Font() (*font.ScalableFont, error)
	FontContext(ctx context.Context) (*font.ScalableFont, error)
}

// fontLoader delivers the result of a font search. The result is written
// once, before done is closed; every await returns it.
type fontLoader struct {
	done   chan struct{}
	result fontPlusErr
}

func (loader *fontLoader) Font() (*font.ScalableFont, error) {
	return loader.FontContext(context.Background())
}

func (loader *fontLoader) FontContext(ctx context.Context) (*font.ScalableFont, error) {
	select {
	case <-loader.done:
		return loader.result.font, loader.result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ResolveFont resolves a font by name. name may be a font name ("Noto Naskh Arabic")
// or a path to a font file.
//
// Resolution order is: file path, the registry given, font directories from
// configuration key `fontdirs`, system fonts. A font found on disk is stored
// in the registry. If nothing is found, the promise delivers the fallback
// font together with an error of code core.EMISSING.
//
// conf and reg may be nil; reg then defaults to the global registry.
func ResolveFont(conf schuko.Configuration, reg *fontregistry.Registry, name string,
	style xfont.Style, weight xfont.Weight) FontPromise {
	//
	if reg == nil {
		reg = fontregistry.GlobalRegistry()
	}
	loader := &fontLoader{done: make(chan struct{})}
	go func() {
		defer close(loader.done)
		loader.result = resolveFont(conf, reg, name, style, weight)
	}()
	return loader
}

func resolveFont(conf schuko.Configuration, reg *fontregistry.Registry, name string,
	style xfont.Style, weight xfont.Weight) (result fontPlusErr) {
	//
	key := fontregistry.NormalizeFontname(filepath.Base(name), style, weight)
	if reg.Contains(key) {
		result.font, result.err = reg.Font(key)
		return
	}
	var fpath string
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		fpath = name
	}
	if fpath == "" && conf != nil {
		fpath = findInDirs(conf.GetString(FontDirsKey), name)
	}
	if fpath == "" {
		if p, err := findfont.Find(name); err == nil && p != "" {
			tracer().Debugf("%s is a system font", name)
			fpath = p
		}
	}
	if fpath == "" {
		tracer().Infof("font %s not found, using fallback font", name)
		result.font, result.err = font.FallbackFont(), NotFound(name)
		return
	}
	f, err := font.LoadOpenTypeFont(fpath)
	if err != nil {
		result.err = core.WrapError(err, core.EINVALID, "cannot load font %s", fpath)
		return
	}
	tracer().Infof("loaded font %s from %s", f.Fontname, fpath)
	reg.StoreFont(key, f)
	result.font = f
	return
}

// findInDirs searches a list of directories for a font file whose base name,
// without extension, matches name case-insensitively.
func findInDirs(dirlist string, name string) string {
	if dirlist == "" {
		return ""
	}
	want := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	want = strings.ReplaceAll(want, " ", "")
	for _, dir := range filepath.SplitList(dirlist) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			tracer().Errorf("cannot read font directory %s: %v", dir, err)
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if ext != ".ttf" && ext != ".otf" {
				continue
			}
			base := strings.ToLower(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
			if strings.ReplaceAll(base, " ", "") == want {
				return filepath.Join(dir, e.Name())
			}
		}
	}
	return ""
}
