package luminance

import (
	"image"
	"image/color"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

// clipEpsilon is the smallest clip threshold still treated as non-zero.
// Spline ringing around a single spike leaves residues far below it.
const clipEpsilon = 1e-9

// Histogram counts pixels per raw brightness value.
type Histogram [256]int

// ComputeHistogram counts the brightness occurrences in gray.
func ComputeHistogram(gray *image.Gray) Histogram {
	var h Histogram
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := gray.PixOffset(b.Min.X, y)
		for _, v := range gray.Pix[i : i+b.Dx()] {
			h[v]++
		}
	}
	return h
}

// Total returns the number of counted pixels.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Peak returns the most frequent brightness and its count. Ties go to the
// darker value.
func (h *Histogram) Peak() (value, count int) {
	for v, c := range h {
		if c > count {
			value, count = v, c
		}
	}
	return value, count
}

// Mean returns the average brightness, or 0 for an empty histogram.
func (h *Histogram) Mean() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	values := make([]float64, len(h))
	weights := make([]float64, len(h))
	for v, c := range h {
		values[v] = float64(v)
		weights[v] = float64(c)
	}
	return stat.Mean(values, weights)
}

// Median returns the lowest brightness at which half the pixels are counted.
func (h *Histogram) Median() int {
	total := h.Total()
	if total == 0 {
		return 0
	}
	half := (total + 1) / 2
	acc := 0
	for v, c := range h {
		acc += c
		if acc >= half {
			return v
		}
	}
	return 255
}

// Normalize min-max scales the counts onto [0, height]. A histogram whose
// counts are all equal scales to zeros.
func (h *Histogram) Normalize(height int) []float64 {
	out := make([]float64, len(h))
	for i, c := range h {
		out[i] = float64(c)
	}
	lo, hi := floats.Min(out), floats.Max(out)
	if hi == lo {
		return make([]float64, len(h))
	}
	floats.AddConst(-lo, out)
	floats.Scale(float64(height)/(hi-lo), out)
	return out
}

// Resample evaluates a not-a-knot cubic spline through values (knots at
// 0..len-1) at width evenly spaced points covering the same domain.
func Resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	if width == 0 || len(values) == 0 {
		return out
	}
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	var pred interp.Predictor
	var spline interp.NotAKnotCubic
	if err := spline.Fit(xs, values); err == nil {
		pred = &spline
	} else {
		var lin interp.PiecewiseLinear
		if err := lin.Fit(xs, values); err != nil {
			floats.AddConst(values[0], out)
			return out
		}
		pred = &lin
	}

	last := xs[len(xs)-1]
	for i := range out {
		x := 0.0
		if width > 1 {
			x = last * float64(i) / float64(width-1)
		}
		out[i] = pred.Predict(x)
	}
	return out
}

// ClipPercentile clips values into [0, p-th percentile] and rescales the
// result onto [0, height]. A non-positive threshold yields all zeros.
func ClipPercentile(values []float64, p float64, height int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	limit := percentile(values, p)
	if !(limit > clipEpsilon) {
		return out
	}

	scale := float64(height) / limit
	for i, v := range values {
		out[i] = min(max(v, 0), limit) * scale
	}
	return out
}

// percentile interpolates linearly between closest ranks at position
// p/100*(n-1) of the sorted values.
func percentile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	ranks := make([]float64, n)
	for i := range ranks {
		ranks[i] = float64(i) / float64(n-1)
	}
	var lin interp.PiecewiseLinear
	if err := lin.Fit(ranks, sorted); err != nil {
		return sorted[n-1]
	}
	return lin.Predict(p / 100)
}

// HistogramHeight derives the histogram panel height from the source
// height, never below one row.
func HistogramHeight(srcHeight int, fraction float64) (height int, clamped bool) {
	height = int(float64(srcHeight) * fraction)
	if height < 1 {
		return 1, true
	}
	return height, false
}

// HistogramSeries turns h into width plot heights in [0, height].
func HistogramSeries(h Histogram, width, height int, clip float64) []float64 {
	return ClipPercentile(Resample(h.Normalize(height), width), clip, height)
}

// RenderHistogram draws series as a white polyline on a black panel.
// Point i sits at x=i, y=height-int(v), kept inside the panel so a zero
// series still shows as a baseline.
func RenderHistogram(series []float64, height int) *image.RGBA {
	width := len(series)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	row := func(v float64) int {
		y := height - int(v)
		return min(max(y, 0), height-1)
	}
	if width == 1 {
		img.SetRGBA(0, row(series[0]), white)
	}
	for i := 1; i < width; i++ {
		drawLine(img, i-1, row(series[i-1]), i, row(series[i]), white)
	}
	return img
}

// drawLine rasterizes an 8-connected Bresenham segment, both ends included.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
