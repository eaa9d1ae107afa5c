package luminance

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Blend computes sat(panel + weight*base) over the panel rectangle, reading
// base from its own top-left corner. Panel pixels that fall outside base
// blend against black.
func Blend(panel, base *image.RGBA, weight float64) *image.RGBA {
	pb := panel.Bounds()
	bb := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, pb.Dx(), pb.Dy()))

	for y := 0; y < pb.Dy(); y++ {
		for x := 0; x < pb.Dx(); x++ {
			p := panel.RGBAAt(pb.Min.X+x, pb.Min.Y+y)
			var q color.RGBA
			if pt := bb.Min.Add(image.Pt(x, y)); pt.In(bb) {
				q = base.RGBAAt(pt.X, pt.Y)
			}
			out.SetRGBA(x, y, color.RGBA{
				R: saturate(float64(p.R) + weight*float64(q.R)),
				G: saturate(float64(p.G) + weight*float64(q.G)),
				B: saturate(float64(p.B) + weight*float64(q.B)),
				A: 255,
			})
		}
	}
	return out
}

func saturate(v float64) uint8 {
	return uint8(min(max(math.Round(v), 0), 255))
}

// Stack places top directly above bottom, left aligned.
func Stack(top, bottom image.Image) *image.NRGBA {
	tb, bb := top.Bounds(), bottom.Bounds()
	out := imaging.New(max(tb.Dx(), bb.Dx()), tb.Dy()+bb.Dy(), color.Black)
	out = imaging.Paste(out, top, image.Pt(0, 0))
	return imaging.Paste(out, bottom, image.Pt(0, tb.Dy()))
}

// Paste returns a copy of dst with panel written into its top-right corner.
// Parts of panel that do not fit are dropped.
func Paste(dst, panel image.Image) *image.NRGBA {
	db := dst.Bounds()
	pos := image.Pt(db.Max.X-panel.Bounds().Dx(), db.Min.Y)
	return imaging.Paste(dst, panel, pos)
}

// Composite blends the histogram panel, stacks the legend above it and
// pastes the pair into the top-right corner of colorized.
func Composite(colorized, legend, hist *image.RGBA, weight float64) *image.NRGBA {
	blended := Blend(hist, colorized, weight)
	return Paste(colorized, Stack(legend, blended))
}
