package pipeline

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
)

// Load decodes the image at path, applying any EXIF orientation. Every
// failure wraps luminance.ErrUndecodable.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(luminance.ErrUndecodable, "decode %s: %v", path, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.Wrapf(luminance.ErrUndecodable, "decode %s: empty image", path)
	}
	return img, nil
}
