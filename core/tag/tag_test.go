package tag

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeLayout(t *testing.T) {
	tg := Make('a', 'r', 'a', 'b')
	assert.Equal(t, Tag(0x61726162), tg)
	assert.Equal(t, "arab", tg.String())
	assert.Equal(t, Tag(0x01020304), Make(1, 2, 3, 4))
}

func TestMakeMasksHighBits(t *testing.T) {
	// signed bytes
	assert.Equal(t, Tag(0xff808000), Make(-1, -128, 0x80, 0))
	// out-of-range ints keep only their low byte
	assert.Equal(t, Make(0x41, 0x42, 0x43, 0x44), Make(0x141, 0xff42, -0xbd, 0x7fffff44))
}

func TestRoundTripPerPosition(t *testing.T) {
	for v := 0; v < 256; v++ {
		for pos := 0; pos < 4; pos++ {
			var q [4]int
			q[pos] = v
			a, b, c, d := Decode(Make(q[0], q[1], q[2], q[3]))
			got := [4]int{int(a), int(b), int(c), int(d)}
			if got != q {
				t.Fatalf("round trip of %v = %v", q, got)
			}
		}
	}
}

func TestRoundTripSampled(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	seen := make(map[Tag][4]byte)
	for i := 0; i < 100000; i++ {
		var q [4]byte
		rnd.Read(q[:])
		tg := Make(int(q[0]), int(q[1]), int(q[2]), int(q[3]))
		a, b, c, d := tg.Bytes()
		require.Equal(t, q, [4]byte{a, b, c, d})
		if prev, ok := seen[tg]; ok && prev != q {
			t.Fatalf("tags for %v and %v collide", prev, q)
		}
		seen[tg] = q
	}
}

func TestParse(t *testing.T) {
	tg, err := Parse("lao ")
	require.NoError(t, err)
	assert.Equal(t, Make('l', 'a', 'o', ' '), tg)
	assert.Equal(t, "lao", tg.Trimmed())

	for _, bad := range []string{"", "lat", "latin", "la\tn", "lä n"} {
		_, err := Parse(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
	assert.Panics(t, func() { MustParse("xx") })
}

func TestFromBytesPads(t *testing.T) {
	assert.Equal(t, MustParse("yi  "), FromBytes([]byte("yi")))
	assert.Equal(t, MustParse("DFLT"), FromBytes([]byte("DFLTX")))
}

func TestStringOfUnprintable(t *testing.T) {
	assert.Equal(t, "<none>", None.String())
	assert.Equal(t, "0x00010203", Make(0, 1, 2, 3).String())
	assert.False(t, Make(0, 1, 2, 3).IsPrintable())
	assert.Equal(t, "", Make(0, 1, 2, 3).Trimmed())
}
