package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
)

// New creates an empty report with defaults.
func New(profileName string) *Report {
	return &Report{
		Version:     SupportedVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
	}
}

// Fill copies levels, histogram, geometry and notes out of a render.
func (r *Report) Fill(res *luminance.Result) {
	edges := luminance.BinEdges()
	colors := luminance.Jet().Samples(luminance.Levels + 1)
	counts := res.Levels.Counts()
	total := res.Histogram.Total()

	r.Levels = make([]LevelInfo, luminance.Levels)
	for i := range r.Levels {
		c, _ := colorful.MakeColor(colors[i])
		share := 0.0
		if total > 0 {
			share = float64(counts[i]) / float64(total)
		}
		r.Levels[i] = LevelInfo{
			Level:  i,
			Lower:  edges[i],
			Upper:  edges[i+1],
			Color:  c.Hex(),
			Pixels: counts[i],
			Share:  share,
		}
	}

	r.Histogram = append([]int(nil), res.Histogram[:]...)
	r.Geometry = Geometry{
		LegendWidth:     res.Geometry.LegendWidth,
		LegendHeight:    res.Geometry.LegendHeight,
		HistogramWidth:  res.Geometry.HistogramWidth,
		HistogramHeight: res.Geometry.HistogramHeight,
	}
	r.Notes = append([]string(nil), res.Notes...)

	peak, _ := res.Histogram.Peak()
	r.Stats = Stats{
		Pixels:         total,
		MeanBrightness: res.Histogram.Mean(),
		Median:         res.Histogram.Median(),
		Peak:           peak,
		MaxLevel:       res.Levels.Max(),
		DistinctLevels: res.Levels.Distinct(),
	}
}

// WriteJSON serializes the report to a JSON file.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// Read loads a report from disk.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}
