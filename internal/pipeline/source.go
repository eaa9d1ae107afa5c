package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/encoder"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
)

// OutputSuffix is appended to the source name for every derived file.
const OutputSuffix = "_luminance"

// Source represents the image file being analysed.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// Name is the base file name without extension.
	Name string
	// Ext is the file extension as written, including the dot.
	Ext string
	// Format is the normalized source format (png, jpeg, webp, gif, bmp, tiff).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// Inspect resolves path and checks that it names a regular file with a
// recognized image extension. Every failure wraps luminance.ErrUndecodable.
func Inspect(path string) (Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Source{}, errors.Wrap(luminance.ErrUndecodable, "empty image path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Source{}, errors.Wrapf(luminance.ErrUndecodable, "resolve %s: %v", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Source{}, errors.Wrapf(luminance.ErrUndecodable, "stat %s: %v", path, err)
	}
	if info.IsDir() {
		return Source{}, errors.Wrapf(luminance.ErrUndecodable, "%s is a directory", path)
	}

	ext := filepath.Ext(abs)
	if !imageExtensions[strings.ToLower(ext)] {
		return Source{}, errors.Wrapf(luminance.ErrUndecodable, "unsupported image extension %q", ext)
	}

	return Source{
		AbsPath: abs,
		Name:    strings.TrimSuffix(filepath.Base(abs), ext),
		Ext:     ext,
		Format:  encoder.Normalize(ext),
		Size:    info.Size(),
	}, nil
}

// OutputPath derives <name>_luminance.<ext> inside dir, or next to the
// source when dir is empty.
func (s Source) OutputPath(dir, ext string) string {
	if dir == "" {
		dir = filepath.Dir(s.AbsPath)
	}
	return filepath.Join(dir, s.Name+OutputSuffix+"."+strings.TrimPrefix(ext, "."))
}
