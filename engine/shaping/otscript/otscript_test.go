package otscript

import (
	"testing"

	"github.com/npillmayer/otsession/core/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNormalize(t *testing.T) {
	for in, out := range map[string]string{
		"latn": "latn", "Arab": "arab", "lao ": "laoo", "yi  ": "yiii",
		"nko ": "nkoo", "vai ": "vaii", "dev2": "deva", "mym2": "mymr",
		"math": "zmth",
	} {
		assert.Equal(t, tag.MustParse(out), Normalize(tag.MustParse(in)), "normalize %q", in)
	}
	assert.Equal(t, tag.None, Normalize(tag.MustParse("DFLT")))
	assert.Equal(t, tag.None, Normalize(tag.None))
}

func TestISO15924(t *testing.T) {
	s, err := ISO15924(tag.MustParse("arab"))
	require.NoError(t, err)
	assert.Equal(t, language.MustParseScript("Arab"), s)
	s, err = ISO15924(tag.MustParse("dev2"))
	require.NoError(t, err)
	assert.Equal(t, "Deva", s.String())
	_, err = ISO15924(tag.None)
	assert.Error(t, err)
	_, err = ISO15924(tag.MustParse("q!x#"))
	assert.Error(t, err)
	assert.Equal(t, tag.MustParse("hebr"), FromISO15924(language.MustParseScript("Hebr")))
}

func TestDirections(t *testing.T) {
	for _, s := range []string{"arab", "Arab", "hebr", "syrc", "nko ", "adlm", "thaa"} {
		assert.True(t, IsRightToLeft(tag.MustParse(s)), s)
	}
	for _, s := range []string{"latn", "cyrl", "dev2", "hani", "xxxx", "DFLT"} {
		assert.False(t, IsRightToLeft(tag.MustParse(s)), s)
	}
	assert.False(t, IsRightToLeft(tag.None))
}
