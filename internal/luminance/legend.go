package luminance

import (
	"image"
	"image/draw"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// labelScale is the label digit height as a fraction of the panel height.
	labelScale = 0.3
	// labelRefSize is the point size the reference glyph is measured at.
	labelRefSize = 64.0
)

var (
	labelFont      = mustParseFont(goregular.TTF)
	labelRefHeight = referenceGlyphHeight(labelFont)
)

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic("luminance: parse label font: " + err.Error())
	}
	return f
}

// referenceGlyphHeight measures the ink height of "0" at labelRefSize.
func referenceGlyphHeight(f *truetype.Font) float64 {
	face := truetype.NewFace(f, &truetype.Options{Size: labelRefSize, DPI: 72})
	defer face.Close()
	b, _ := font.BoundString(face, "0")
	return float64((b.Max.Y - b.Min.Y).Ceil())
}

// LegendSize derives the legend panel geometry from the source width.
// The width is fraction of srcWidth truncated to a multiple of Levels and
// never smaller than one pixel per swatch; the height is width/Levels.
// clamped reports that the minimum was applied.
func LegendSize(srcWidth int, fraction float64) (width, height int, clamped bool) {
	width = int(float64(srcWidth) * fraction)
	width -= width % Levels
	if width < Levels {
		width = Levels
		clamped = true
	}
	return width, width / Levels, clamped
}

// Swatches returns the rectangle of every legend swatch for a panel of the
// given size. Swatch i spans [i*width/Levels, (i+1)*width/Levels).
func Swatches(width, height int) []image.Rectangle {
	out := make([]image.Rectangle, Levels)
	for i := range out {
		out[i] = image.Rect(i*width/Levels, 0, (i+1)*width/Levels, height)
	}
	return out
}

// RenderLegend draws Levels colored swatches labelled with their index.
// Colors come from Levels+1 evenly spaced ramp samples; the last sample
// only marks the upper boundary and is not drawn.
func RenderLegend(width, height int, ramp *Ramp) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	colors := ramp.Samples(Levels + 1)
	face := labelFace(height)
	if face != nil {
		defer face.Close()
	}

	for i, r := range Swatches(width, height) {
		draw.Draw(img, r, image.NewUniform(colors[i]), image.Point{}, draw.Src)
		if face != nil {
			drawLabel(img, face, strconv.Itoa(i), (r.Min.X+r.Max.X)/2, height/2)
		}
	}
	return img
}

// labelFace returns a face whose "0" is labelScale of panelHeight tall, or
// nil when that would be below one point.
func labelFace(panelHeight int) font.Face {
	if labelRefHeight <= 0 {
		return nil
	}
	size := labelRefSize * labelScale * float64(panelHeight) / labelRefHeight
	if size < 1 {
		return nil
	}
	return truetype.NewFace(labelFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func drawLabel(img *image.RGBA, face font.Face, text string, cx, cy int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	b, _ := d.BoundString(text)
	tw := (b.Max.X - b.Min.X).Ceil()
	th := (b.Max.Y - b.Min.Y).Ceil()
	d.Dot = freetype.Pt(cx-tw/2, cy+th/2)
	d.DrawString(text)
}
