package luminance

import (
	"errors"
	"fmt"
	"image"
	"reflect"

	"github.com/disintegration/imaging"
)

// ErrUndecodable reports that no usable source image was supplied.
// It is the only condition that aborts a render.
var ErrUndecodable = errors.New("undecodable input")

// BT.601 luma weights in 14-bit fixed point: 0.299, 0.587, 0.114.
const (
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868
	lumaShift = 14
	lumaHalf  = 1 << (lumaShift - 1)
)

// Grayscale reduces img to a single-channel brightness buffer anchored at
// the origin. Alpha is ignored.
func Grayscale(img image.Image) (*image.Gray, error) {
	if img == nil {
		return nil, ErrUndecodable
	}
	if v := reflect.ValueOf(img); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, fmt.Errorf("%w: nil %T", ErrUndecodable, img)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrUndecodable, b)
	}

	src := imaging.Clone(img)
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		si := y * src.Stride
		di := y * dst.Stride
		for x := 0; x < w; x++ {
			dst.Pix[di+x] = luma(src.Pix[si], src.Pix[si+1], src.Pix[si+2])
			si += 4
		}
	}
	return dst, nil
}

func luma(r, g, b uint8) uint8 {
	return uint8((lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b) + lumaHalf) >> lumaShift)
}
