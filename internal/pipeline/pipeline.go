package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/encoder"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/hasher"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/profile"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/report"
)

// Config holds all parameters for one render.
type Config struct {
	InputPath string
	OutputDir string // empty: next to the input
	Format    string // output extension override; empty: follow the input
	Profile   profile.Profile
	Quality   int // 0: profile default
	Report    bool
	Verbose   bool
}

// Outcome is what a run produced.
type Outcome struct {
	Source     Source
	OutputPath string
	ReportPath string // empty when no report was written
	Result     *luminance.Result
	Report     *report.Report
	Elapsed    time.Duration
}

// Pipeline wires decoding, the luminance core, encoding and the report.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Quality <= 0 || cfg.Quality > 100 {
		cfg.Quality = cfg.Profile.Quality
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Run executes the render and writes its outputs.
func (p *Pipeline) Run() (*Outcome, error) {
	start := time.Now()
	p.logf("%s", p.registry.String())

	// Step 1: Inspect and decode.
	src, err := Inspect(p.cfg.InputPath)
	if err != nil {
		return nil, err
	}
	img, err := Load(src.AbsPath)
	if err != nil {
		return nil, err
	}
	p.logf("decoded %s (%dx%d, %s)", src.AbsPath, img.Bounds().Dx(), img.Bounds().Dy(), src.Format)

	// Step 2: Render.
	res, err := luminance.Render(img, p.cfg.Profile.Apply)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	for _, n := range res.Notes {
		p.logf("note: %s", n)
	}

	// Step 3: Encode and write.
	ext := p.cfg.Format
	if ext == "" {
		ext = src.Ext
	}
	enc, ok := p.registry.ForExtension(ext)
	if !ok {
		p.logf("no encoder for %q, writing %s", ext, enc.Format())
		ext = enc.Extension()
	}
	data, err := enc.Encode(res.Output, p.cfg.Quality)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", enc.Format(), err)
	}

	if p.cfg.OutputDir != "" {
		if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	outPath := src.OutputPath(p.cfg.OutputDir, ext)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", outPath, err)
	}
	p.logf("wrote %s (%d bytes)", outPath, len(data))

	out := &Outcome{
		Source:     src,
		OutputPath: outPath,
		Result:     res,
	}

	// Step 4: Report.
	b := img.Bounds()
	r := report.New(p.cfg.Profile.Name)
	r.Source = report.SourceInfo{
		Path:   src.AbsPath,
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: src.Format,
		Size:   src.Size,
	}
	ob := res.Output.Bounds()
	r.Output = report.OutputInfo{
		Path:   filepath.Base(outPath),
		Format: enc.Format(),
		Width:  ob.Dx(),
		Height: ob.Dy(),
		Size:   int64(len(data)),
		Hash:   hasher.Sum(data),
	}
	r.Fill(res)
	out.Report = r

	if p.cfg.Report {
		reportPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".json"
		if err := report.WriteJSON(r, reportPath); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
		out.ReportPath = reportPath
		p.logf("wrote %s", reportPath)
	}

	out.Elapsed = time.Since(start)
	return out, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[lumamap] "+format+"\n", args...)
	}
}
