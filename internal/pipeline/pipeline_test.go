package pipeline

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/hasher"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/profile"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/report"
)

func writeGradientPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / (w - 1))
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := writeGradientPNG(t, dir, "photo.PNG", 8, 8)

	src, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "photo", src.Name)
	assert.Equal(t, ".PNG", src.Ext)
	assert.Equal(t, "png", src.Format)
	assert.Positive(t, src.Size)

	_, err = Inspect(dir)
	assert.ErrorIs(t, err, luminance.ErrUndecodable)

	_, err = Inspect(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, luminance.ErrUndecodable)

	_, err = Inspect("  ")
	assert.ErrorIs(t, err, luminance.ErrUndecodable)

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))
	_, err = Inspect(txt)
	assert.ErrorIs(t, err, luminance.ErrUndecodable)
}

func TestOutputPath(t *testing.T) {
	src := Source{AbsPath: filepath.Join("/data", "in", "cat.jpeg"), Name: "cat", Ext: ".jpeg"}
	assert.Equal(t, filepath.Join("/data", "in", "cat_luminance.jpeg"), src.OutputPath("", ".jpeg"))
	assert.Equal(t, filepath.Join("/out", "cat_luminance.png"), src.OutputPath("/out", "png"))
}

func TestLoadUndecodable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, luminance.ErrUndecodable))

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.True(t, errors.Is(err, luminance.ErrUndecodable))
}

func TestRunWritesOutputAndReport(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "maps")
	path := writeGradientPNG(t, in, "ramp.png", 121, 40)

	p := New(Config{
		InputPath: path,
		OutputDir: out,
		Profile:   profile.Get(profile.DefaultName),
		Report:    true,
	})
	res, err := p.Run()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "ramp_luminance.png"), res.OutputPath)
	assert.Equal(t, filepath.Join(out, "ramp_luminance.json"), res.ReportPath)

	f, err := os.Open(res.OutputPath)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 121, 40), decoded.Bounds())

	digest, err := hasher.SumFile(res.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, digest, res.Report.Output.Hash)

	r, err := report.Read(res.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, "default", r.Profile)
	assert.Equal(t, 121*40, r.Stats.Pixels)
	assert.Equal(t, 22, r.Geometry.LegendWidth)
	assert.Empty(t, report.Validate(r, out))
}

func TestRunFallsBackToJPEG(t *testing.T) {
	in := t.TempDir()
	path := writeGradientPNG(t, in, "frame.png", 30, 30)

	p := New(Config{
		InputPath: path,
		Format:    "webp",
		Profile:   profile.Get("compact"),
	})
	res, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(in, "frame_luminance.jpg"), res.OutputPath)
	assert.Empty(t, res.ReportPath)
	assert.Equal(t, "jpeg", res.Report.Output.Format)
	assert.Equal(t, 85, p.cfg.Quality)
}

func TestRunUndecodable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.jpg")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := New(Config{InputPath: path, Profile: profile.Get("")}).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, luminance.ErrUndecodable)

	_, err = os.Stat(filepath.Join(dir, "empty_luminance.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := New(Config{
		InputPath: filepath.Join(dir, "nope.png"),
		Profile:   profile.Get(profile.DefaultName),
		Report:    true,
	}).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, luminance.ErrUndecodable)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
