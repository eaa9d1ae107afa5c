package luminance

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Ramp is a 256-entry color lookup table indexed by a scaled scalar.
type Ramp [256]color.RGBA

var jetTable = buildJet()

// buildJet constructs the classic Jet ramp: dark blue, blue, cyan, yellow,
// red, dark red. Each channel is a clamped triangle centered at 1/4 (B),
// 1/2 (G) and 3/4 (R) of the domain.
func buildJet() Ramp {
	var r Ramp
	for i := range r {
		x := float64(i) / 255
		c := colorful.Color{
			R: jetChannel(x, 0.75),
			G: jetChannel(x, 0.50),
			B: jetChannel(x, 0.25),
		}.Clamped()
		cr, cg, cb := c.RGB255()
		r[i] = color.RGBA{R: cr, G: cg, B: cb, A: 255}
	}
	return r
}

func jetChannel(x, center float64) float64 {
	return 1.5 - math.Abs(4*(x-center))
}

// Jet returns a copy of the Jet ramp.
func Jet() *Ramp {
	r := jetTable
	return &r
}

// At returns the ramp color for v.
func (r *Ramp) At(v uint8) color.RGBA { return r[v] }

// Samples returns n colors taken at evenly spaced indexes over [0,255].
// Indexes are truncated, so the first sample is r[0] and the last r[255].
func (r *Ramp) Samples(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := range out {
		idx := 0
		if n > 1 {
			idx = int(255 * float64(i) / float64(n-1))
		}
		out[i] = r[idx]
	}
	return out
}

// Colorize maps every sample of gray through the ramp.
func (r *Ramp) Colorize(gray *image.Gray) *image.RGBA {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := gray.PixOffset(b.Min.X, b.Min.Y+y)
		di := y * dst.Stride
		for x := 0; x < w; x++ {
			c := r[gray.Pix[si+x]]
			dst.Pix[di] = c.R
			dst.Pix[di+1] = c.G
			dst.Pix[di+2] = c.B
			dst.Pix[di+3] = 255
			di += 4
		}
	}
	return dst
}
