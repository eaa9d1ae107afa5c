package encoder

import (
	"fmt"
	"strings"
)

// Registry maps format names and file extensions to encoders.
type Registry struct {
	encoders map[string]Encoder
	fallback Encoder
}

// NewRegistry creates a registry with every built-in encoder.
func NewRegistry() *Registry {
	jpg := &JPEGEncoder{}
	r := &Registry{
		encoders: make(map[string]Encoder),
		fallback: jpg,
	}
	for _, enc := range []Encoder{jpg, &PNGEncoder{}, &BMPEncoder{}, &TIFFEncoder{}} {
		r.encoders[enc.Format()] = enc
	}
	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[Normalize(format)]
}

// ForExtension returns the encoder matching a file extension (with or
// without the dot). Extensions without an encoder (gif, webp, unknown)
// get the JPEG fallback and ok=false.
func (r *Registry) ForExtension(ext string) (enc Encoder, ok bool) {
	if enc := r.Get(ext); enc != nil {
		return enc, true
	}
	return r.fallback, false
}

// Available returns all format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range []string{"jpeg", "png", "tiff", "bmp"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	return fmt.Sprintf("encoders: %s (fallback %s)",
		strings.Join(r.Available(), ", "), r.fallback.Format())
}

// Normalize lowercases a format or extension and folds aliases
// (jpg -> jpeg, tif -> tiff).
func Normalize(format string) string {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	switch f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return f
}
