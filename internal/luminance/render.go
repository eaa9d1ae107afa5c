// Package luminance turns a still image into a discretized luminance map:
// brightness bucketed into 11 levels, drawn through the Jet ramp, with a
// level legend and a brightness histogram in the top-right corner.
//
// Every stage is a pure function of its inputs and the pipeline runs
// strictly in order:
//
//	Grayscale -> Quantize -> Normalize -> Colorize
//	          -> ComputeHistogram -> HistogramSeries -> RenderHistogram
//	RenderLegend -> Composite
//
// Only a missing or empty source image is an error. Degenerate data (a
// single-level map, a flat histogram) and undersized panels resolve to
// well-defined outputs and are reported in Result.Notes.
package luminance

import (
	"fmt"
	"image"
)

// Options controls panel geometry and blending. Level count and ramp are
// fixed.
type Options struct {
	// LegendFraction is the legend width as a fraction of the image width.
	LegendFraction float64
	// HistogramFraction is the histogram height as a fraction of the image height.
	HistogramFraction float64
	// BlendWeight scales the colorized image under the histogram panel.
	BlendWeight float64
	// ClipPercentile caps the resampled histogram before rescaling (0-100).
	ClipPercentile float64
}

// DefaultOptions returns the stock layout.
func DefaultOptions() Options {
	return Options{
		LegendFraction:    0.20,
		HistogramFraction: 0.15,
		BlendWeight:       0.5,
		ClipPercentile:    98,
	}
}

// Geometry describes the panels placed on the output.
type Geometry struct {
	LegendWidth     int
	LegendHeight    int
	HistogramWidth  int
	HistogramHeight int
}

// Result carries the composite and every intermediate it was built from.
type Result struct {
	Gray           *image.Gray
	Levels         *LevelMap
	Histogram      Histogram
	Series         []float64
	Colorized      *image.RGBA
	Legend         *image.RGBA
	HistogramPanel *image.RGBA
	Output         *image.NRGBA
	Geometry       Geometry
	Notes          []string
}

// Render runs the full pipeline over img.
func Render(img image.Image, opts ...func(o *Options)) (*Result, error) {
	opt := DefaultOptions()
	for _, apply := range opts {
		apply(&opt)
	}
	opt = opt.sanitized()

	gray, err := Grayscale(img)
	if err != nil {
		return nil, err
	}
	res := &Result{Gray: gray}
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()

	res.Levels = Quantize(gray)
	if res.Levels.Distinct() == 1 {
		res.Notes = append(res.Notes, fmt.Sprintf("single level map: every pixel at level %d", res.Levels.Max()))
	}
	ramp := Jet()
	res.Colorized = ramp.Colorize(Normalize(res.Levels))

	lw, lh, clamped := LegendSize(w, opt.LegendFraction)
	if clamped {
		res.Notes = append(res.Notes, fmt.Sprintf("legend width clamped to %dpx", lw))
	}
	res.Legend = RenderLegend(lw, lh, ramp)

	hh, clamped := HistogramHeight(h, opt.HistogramFraction)
	if clamped {
		res.Notes = append(res.Notes, fmt.Sprintf("histogram height clamped to %dpx", hh))
	}
	res.Histogram = ComputeHistogram(gray)
	res.Series = HistogramSeries(res.Histogram, lw, hh, opt.ClipPercentile)
	if isZero(res.Series) {
		res.Notes = append(res.Notes, "flat histogram: drawn at baseline")
	}
	res.HistogramPanel = RenderHistogram(res.Series, hh)

	res.Output = Composite(res.Colorized, res.Legend, res.HistogramPanel, opt.BlendWeight)
	res.Geometry = Geometry{
		LegendWidth:     lw,
		LegendHeight:    lh,
		HistogramWidth:  lw,
		HistogramHeight: hh,
	}
	return res, nil
}

// sanitized replaces out-of-range values with defaults.
func (o Options) sanitized() Options {
	def := DefaultOptions()
	if o.LegendFraction <= 0 || o.LegendFraction > 1 {
		o.LegendFraction = def.LegendFraction
	}
	if o.HistogramFraction <= 0 || o.HistogramFraction > 1 {
		o.HistogramFraction = def.HistogramFraction
	}
	if o.BlendWeight < 0 {
		o.BlendWeight = def.BlendWeight
	}
	if o.ClipPercentile <= 0 || o.ClipPercentile > 100 {
		o.ClipPercentile = def.ClipPercentile
	}
	return o
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
