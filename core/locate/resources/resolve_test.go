package resources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/otsession/core"
	"github.com/npillmayer/otsession/core/font"
	"github.com/npillmayer/otsession/core/font/fontregistry"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestResolveFromRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsession.resources")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	reg.StoreFont("go_sans", font.FallbackFont())
	f, err := ResolveFont(nil, reg, "Go Sans", xfont.StyleNormal, xfont.WeightNormal).Font()
	require.NoError(t, err)
	assert.Same(t, font.FallbackFont(), f)
}

func TestResolveFromConfiguredDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsession.resources")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "GoRegular.ttf"), goregular.TTF, 0644))
	conf := testconfig.Conf{
		FontDirsKey: dir,
	}
	reg := fontregistry.NewRegistry()
	f, err := ResolveFont(conf, reg, "goregular", xfont.StyleNormal, xfont.WeightNormal).Font()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "GoRegular.ttf"), f.Filepath)
	assert.True(t, reg.Contains("goregular"), "expected font to be cached in registry")
}

func TestResolveFromPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsession.resources")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "Some-Font.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0644))
	f, err := ResolveFont(nil, fontregistry.NewRegistry(), path, xfont.StyleNormal, xfont.WeightNormal).Font()
	require.NoError(t, err)
	assert.Equal(t, path, f.Filepath)
}

func TestResolveMissingFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsession.resources")
	defer teardown()
	//
	f, err := ResolveFont(nil, fontregistry.NewRegistry(), "No Such Font Anywhere 4711",
		xfont.StyleNormal, xfont.WeightNormal).Font()
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Same(t, font.FallbackFont(), f)
}

func TestResolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	promise := ResolveFont(nil, fontregistry.NewRegistry(), "No Such Font Anywhere 4711",
		xfont.StyleNormal, xfont.WeightNormal)
	// either the search already finished or the cancellation wins
	f, err := promise.FontContext(ctx)
	if err == nil {
		t.Errorf("expected an error, got font %v", f)
	}
}

func TestPromiseDeliversRepeatedly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsession.resources")
	defer teardown()
	//
	promise := ResolveFont(nil, fontregistry.NewRegistry(), "No Such Font Anywhere 4711",
		xfont.StyleNormal, xfont.WeightNormal)
	for i := 0; i < 3; i++ {
		f, err := promise.Font()
		assert.Same(t, font.FallbackFont(), f, "await #%d", i)
		assert.Equal(t, core.EMISSING, core.Code(err), "await #%d", i)
	}
	f, err := promise.FontContext(context.Background())
	assert.Same(t, font.FallbackFont(), f)
	assert.Error(t, err)
}
