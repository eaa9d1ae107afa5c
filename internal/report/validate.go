package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/hasher"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
)

// Validate checks a report for internal consistency and verifies the output
// file it references, resolved against baseDir. It returns one message per
// problem found.
func Validate(r *Report, baseDir string) []string {
	var errs []string

	if r.Version != SupportedVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}

	// Dimensions.
	src, out := r.Source, r.Output
	if src.Width <= 0 || src.Height <= 0 {
		errs = append(errs, fmt.Sprintf("invalid source dimensions %dx%d", src.Width, src.Height))
	}
	if out.Width != src.Width || out.Height != src.Height {
		errs = append(errs, fmt.Sprintf("output %dx%d does not match source %dx%d",
			out.Width, out.Height, src.Width, src.Height))
	}
	pixels := src.Width * src.Height
	if r.Stats.Pixels != pixels {
		errs = append(errs, fmt.Sprintf("stats.pixels mismatch: %d != %d", r.Stats.Pixels, pixels))
	}

	// Levels.
	if len(r.Levels) != luminance.Levels {
		errs = append(errs, fmt.Sprintf("expected %d levels, got %d", luminance.Levels, len(r.Levels)))
	}
	levelSum := 0
	for i, l := range r.Levels {
		if l.Level != i {
			errs = append(errs, fmt.Sprintf("levels[%d]: index %d", i, l.Level))
		}
		if l.Upper <= l.Lower {
			errs = append(errs, fmt.Sprintf("levels[%d]: empty interval [%g,%g)", i, l.Lower, l.Upper))
		}
		if l.Pixels < 0 {
			errs = append(errs, fmt.Sprintf("levels[%d]: negative pixel count", i))
		}
		levelSum += l.Pixels
	}
	if levelSum != pixels {
		errs = append(errs, fmt.Sprintf("level pixels sum to %d, want %d", levelSum, pixels))
	}
	if r.Stats.MaxLevel < 0 || r.Stats.MaxLevel >= luminance.Levels {
		errs = append(errs, fmt.Sprintf("stats.max_level out of range: %d", r.Stats.MaxLevel))
	}

	// Histogram.
	if len(r.Histogram) != 256 {
		errs = append(errs, fmt.Sprintf("expected 256 histogram bins, got %d", len(r.Histogram)))
	}
	histSum := 0
	for _, c := range r.Histogram {
		histSum += c
	}
	if histSum != pixels {
		errs = append(errs, fmt.Sprintf("histogram sums to %d, want %d", histSum, pixels))
	}

	// Geometry.
	g := r.Geometry
	if g.LegendWidth < luminance.Levels || g.LegendWidth%luminance.Levels != 0 {
		errs = append(errs, fmt.Sprintf("legend width %d is not a positive multiple of %d",
			g.LegendWidth, luminance.Levels))
	}
	if g.HistogramWidth != g.LegendWidth {
		errs = append(errs, fmt.Sprintf("histogram width %d != legend width %d", g.HistogramWidth, g.LegendWidth))
	}
	if g.LegendHeight < 1 || g.HistogramHeight < 1 {
		errs = append(errs, fmt.Sprintf("invalid panel heights %d/%d", g.LegendHeight, g.HistogramHeight))
	}

	// Output file.
	if out.Path == "" {
		return append(errs, "output: missing path")
	}
	fullPath := filepath.Join(baseDir, out.Path)
	info, err := os.Stat(fullPath)
	if err != nil {
		return append(errs, fmt.Sprintf("output: file not found: %s", out.Path))
	}
	if out.Size > 0 && info.Size() != out.Size {
		errs = append(errs, fmt.Sprintf("output: size mismatch: report=%d, disk=%d", out.Size, info.Size()))
	}
	if out.Hash == "" {
		errs = append(errs, "output: missing hash")
	} else if sum, err := hasher.SumFile(fullPath); err != nil {
		errs = append(errs, fmt.Sprintf("output: hash %s: %v", out.Path, err))
	} else if sum != out.Hash {
		errs = append(errs, fmt.Sprintf("output: hash mismatch: report=%s, disk=%s", out.Hash, sum))
	}

	return errs
}
