package encoder

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 24, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 24; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 15), B: 90, A: 255})
		}
	}
	return img
}

func TestForExtension(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		ext    string
		format string
		ok     bool
	}{
		{".jpg", "jpeg", true},
		{"JPEG", "jpeg", true},
		{".png", "png", true},
		{".tif", "tiff", true},
		{"bmp", "bmp", true},
		{".webp", "jpeg", false},
		{".gif", "jpeg", false},
		{"", "jpeg", false},
	}
	for _, tc := range cases {
		enc, ok := r.ForExtension(tc.ext)
		if enc == nil {
			t.Fatalf("%q: nil encoder", tc.ext)
		}
		if enc.Format() != tc.format || ok != tc.ok {
			t.Errorf("%q: got (%s, %v), want (%s, %v)", tc.ext, enc.Format(), ok, tc.format, tc.ok)
		}
	}
}

func TestEncodersRoundTripDimensions(t *testing.T) {
	r := NewRegistry()
	src := testImage()
	for _, f := range r.Available() {
		enc := r.Get(f)
		data, err := enc.Encode(src, 80)
		if err != nil {
			t.Fatalf("%s: encode: %v", f, err)
		}
		cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s: decode config: %v", f, err)
		}
		if name != f {
			t.Errorf("%s: decoded as %s", f, name)
		}
		if cfg.Width != 24 || cfg.Height != 16 {
			t.Errorf("%s: got %dx%d", f, cfg.Width, cfg.Height)
		}
	}
}

func TestJPEGQualityFallback(t *testing.T) {
	enc := &JPEGEncoder{}
	a, err := enc.Encode(testImage(), 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := enc.Encode(testImage(), DefaultJPEGQuality)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("quality 0 should encode like the default quality")
	}
}
