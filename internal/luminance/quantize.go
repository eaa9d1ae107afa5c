package luminance

import (
	"image"
	"math"
	"sort"
)

// Levels is the number of discrete brightness buckets.
const Levels = 11

// BinEdges returns the 12 evenly spaced boundaries over [0,256] that split
// the brightness range into Levels half-open intervals.
func BinEdges() [Levels + 1]float64 {
	var edges [Levels + 1]float64
	for i := range edges {
		edges[i] = 256 * float64(i) / Levels
	}
	return edges
}

// levelTable maps every 8-bit brightness to its level.
var levelTable = buildLevelTable()

func buildLevelTable() [256]uint8 {
	var lut [256]uint8
	edges := BinEdges()
	for v := range lut {
		// First edge strictly greater than v, minus one.
		i := sort.Search(len(edges), func(i int) bool { return edges[i] > float64(v) })
		lut[v] = uint8(i - 1)
	}
	return lut
}

// LevelOf returns the level of a single brightness value.
func LevelOf(v uint8) int { return int(levelTable[v]) }

// LevelMap holds one level per pixel, row-major, Width*Height entries.
type LevelMap struct {
	Width  int
	Height int
	Pix    []uint8
}

// Quantize assigns every pixel of gray to a level in [0, Levels-1].
func Quantize(gray *image.Gray) *LevelMap {
	b := gray.Bounds()
	m := &LevelMap{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]uint8, b.Dx()*b.Dy()),
	}
	for y := 0; y < m.Height; y++ {
		i := gray.PixOffset(b.Min.X, b.Min.Y+y)
		row := gray.Pix[i : i+m.Width]
		out := m.Pix[y*m.Width : (y+1)*m.Width]
		for x, v := range row {
			out[x] = levelTable[v]
		}
	}
	return m
}

// At returns the level at (x, y).
func (m *LevelMap) At(x, y int) int { return int(m.Pix[y*m.Width+x]) }

// Max returns the largest level present in the map.
func (m *LevelMap) Max() int {
	var hi uint8
	for _, v := range m.Pix {
		if v > hi {
			hi = v
		}
	}
	return int(hi)
}

// Counts returns the number of pixels at each level.
func (m *LevelMap) Counts() [Levels]int {
	var c [Levels]int
	for _, v := range m.Pix {
		if int(v) < Levels {
			c[v]++
		}
	}
	return c
}

// Distinct returns how many different levels occur in the map.
func (m *LevelMap) Distinct() int {
	var seen [256]bool
	n := 0
	for _, v := range m.Pix {
		if !seen[v] {
			seen[v] = true
			n++
		}
	}
	return n
}

// Normalize stretches the map onto [0,255] by dividing through the largest
// level actually present: round(level / max * 255). A map whose maximum is
// zero yields an all-zero buffer.
func Normalize(m *LevelMap) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	hi := m.Max()
	if hi == 0 {
		return out
	}

	var lut [256]uint8
	for v := 0; v <= hi; v++ {
		lut[v] = uint8(math.Round(float64(v) / float64(hi) * 255))
	}
	for y := 0; y < m.Height; y++ {
		src := m.Pix[y*m.Width : (y+1)*m.Width]
		dst := out.Pix[y*out.Stride : y*out.Stride+m.Width]
		for x, v := range src {
			dst[x] = lut[v]
		}
	}
	return out
}
