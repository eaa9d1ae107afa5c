package encoder

import (
	"image"
)

// Encoder writes an image in one output format.
type Encoder interface {
	// Format returns the output format name (e.g. "jpeg", "png", "bmp", "tiff").
	Format() string

	// Encode converts the image to bytes. quality (1-100) is ignored by
	// lossless formats.
	Encode(img image.Image, quality int) ([]byte, error)

	// Extension returns the file extension without dot.
	Extension() string
}
