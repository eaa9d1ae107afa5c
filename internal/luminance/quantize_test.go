package luminance

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinEdges(t *testing.T) {
	edges := BinEdges()
	require.Len(t, edges, 12)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 256.0, edges[11])
	assert.InDelta(t, 23.27, edges[1], 0.01)
	assert.InDelta(t, 46.55, edges[2], 0.01)
	for i := 1; i < len(edges); i++ {
		assert.Greater(t, edges[i], edges[i-1])
	}
}

func TestLevelOf_Boundaries(t *testing.T) {
	cases := map[uint8]int{
		0:   0,
		23:  0,
		24:  1,
		46:  1,
		47:  2,
		128: 5,
		232: 9,
		233: 10,
		255: 10,
	}
	for v, want := range cases {
		assert.Equal(t, want, LevelOf(v), "brightness %d", v)
	}
}

func TestQuantize_RangeAndDistinct(t *testing.T) {
	m := Quantize(rampGray(3))
	require.Equal(t, 256, m.Width)
	require.Equal(t, 3, m.Height)

	for _, v := range m.Pix {
		assert.LessOrEqual(t, int(v), Levels-1)
	}
	assert.Equal(t, Levels, m.Distinct())
	assert.Equal(t, Levels-1, m.Max())

	counts := m.Counts()
	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 256*3, total)
}

func TestQuantize_SubImage(t *testing.T) {
	g := rampGray(4).SubImage(image.Rect(128, 1, 130, 3)).(*image.Gray)
	m := Quantize(g)
	require.Equal(t, 2, m.Width)
	require.Equal(t, 2, m.Height)
	assert.Equal(t, 5, m.At(0, 0))
	assert.Equal(t, 5, m.At(1, 1))
}

func TestNormalize_DividesByObservedMax(t *testing.T) {
	m := &LevelMap{Width: 3, Height: 1, Pix: []uint8{0, 2, 5}}
	out := Normalize(m)
	assert.Equal(t, []uint8{0, 102, 255}, out.Pix)
}

func TestNormalize_AllZeroLevels(t *testing.T) {
	m := Quantize(solidGray(8, 8, 3))
	require.Equal(t, 0, m.Max())

	out := Normalize(m)
	for _, v := range out.Pix {
		require.Equal(t, uint8(0), v)
	}
}

func TestNormalize_IdempotentOnFullRange(t *testing.T) {
	m := &LevelMap{Width: 256, Height: 1, Pix: make([]uint8, 256)}
	for i := range m.Pix {
		m.Pix[i] = uint8(i)
	}
	out := Normalize(m)
	assert.Equal(t, m.Pix, out.Pix)
}
