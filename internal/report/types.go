package report

// Report is the JSON sidecar written next to a luminance map.
type Report struct {
	Version     int         `json:"version"`
	GeneratedAt string      `json:"generated_at"`
	Profile     string      `json:"profile"`
	Source      SourceInfo  `json:"source"`
	Output      OutputInfo  `json:"output"`
	Geometry    Geometry    `json:"geometry"`
	Levels      []LevelInfo `json:"levels"`
	Histogram   []int       `json:"histogram"` // 256 counts, one per brightness
	Stats       Stats       `json:"stats"`
	Notes       []string    `json:"notes,omitempty"` // absorbed degenerate conditions
}

// SourceInfo holds metadata about the input image.
type SourceInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// OutputInfo describes the encoded luminance map.
type OutputInfo struct {
	Path   string `json:"path"`   // relative to the report's directory
	Format string `json:"format"` // "jpeg", "png", "bmp", "tiff"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // xxhash64, 16 hex chars
}

// Geometry records the panels composited onto the output.
type Geometry struct {
	LegendWidth     int `json:"legend_width"`
	LegendHeight    int `json:"legend_height"`
	HistogramWidth  int `json:"histogram_width"`
	HistogramHeight int `json:"histogram_height"`
}

// LevelInfo describes one brightness level.
type LevelInfo struct {
	Level  int     `json:"level"`
	Lower  float64 `json:"lower"` // inclusive brightness bound
	Upper  float64 `json:"upper"` // exclusive brightness bound
	Color  string  `json:"color"` // legend swatch, #rrggbb
	Pixels int     `json:"pixels"`
	Share  float64 `json:"share"` // pixels / total, 0-1
}

// Stats aggregates brightness metrics.
type Stats struct {
	Pixels         int     `json:"pixels"`
	MeanBrightness float64 `json:"mean_brightness"`
	Median         int     `json:"median_brightness"`
	Peak           int     `json:"peak_brightness"`
	MaxLevel       int     `json:"max_level"`
	DistinctLevels int     `json:"distinct_levels"`
}

// SupportedVersion is the current schema version.
const SupportedVersion = 1
