package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/pipeline"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/profile"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/report"
)

var statsProfile string

var statsCmd = &cobra.Command{
	Use:   "stats <image_or_report>",
	Short: "Display brightness statistics for an image or a render report",
	Long: `For an image, quantizes its brightness and prints the level
distribution and panel geometry without writing anything. For a
.json report written by render, prints the recorded statistics.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsProfile, "profile", "p", profile.DefaultName, "profile used for panel geometry")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]

	if strings.EqualFold(filepath.Ext(path), ".json") {
		r, err := report.Read(path)
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), r)
		return nil
	}

	src, err := pipeline.Inspect(path)
	if err != nil {
		return err
	}
	img, err := pipeline.Load(src.AbsPath)
	if err != nil {
		return err
	}
	logVerbose("decoded %s", src.AbsPath)

	gray, err := luminance.Grayscale(img)
	if err != nil {
		return err
	}
	levels := luminance.Quantize(gray)
	hist := luminance.ComputeHistogram(gray)

	prof := profile.Get(statsProfile)
	var opts luminance.Options
	prof.Apply(&opts)
	lw, lh, _ := luminance.LegendSize(levels.Width, opts.LegendFraction)
	hh, _ := luminance.HistogramHeight(levels.Height, opts.HistogramFraction)

	// Only the analysis half of Render runs here; Fill needs just these fields.
	r := report.New(prof.Name)
	r.Source = report.SourceInfo{
		Path:   src.AbsPath,
		Width:  levels.Width,
		Height: levels.Height,
		Format: src.Format,
		Size:   src.Size,
	}
	r.Fill(&luminance.Result{
		Gray:      gray,
		Levels:    levels,
		Histogram: hist,
		Geometry: luminance.Geometry{
			LegendWidth:     lw,
			LegendHeight:    lh,
			HistogramWidth:  lw,
			HistogramHeight: hh,
		},
	})

	printStats(cmd.OutOrStdout(), r)
	return nil
}

func printStats(w io.Writer, r *report.Report) {
	fmt.Fprintln(w)
	if r.GeneratedAt != "" {
		fmt.Fprintf(w, "  Report version:   %d\n", r.Version)
		fmt.Fprintf(w, "  Generated:        %s\n", r.GeneratedAt)
	}
	fmt.Fprintf(w, "  Profile:          %s\n", r.Profile)
	fmt.Fprintf(w, "  Source:           %s (%dx%d %s, %s)\n",
		filepath.Base(r.Source.Path), r.Source.Width, r.Source.Height, r.Source.Format, formatBytes(r.Source.Size))
	if r.Output.Path != "" {
		fmt.Fprintf(w, "  Output:           %s (%s, %s)\n", r.Output.Path, r.Output.Format, formatBytes(r.Output.Size))
	}
	fmt.Fprintln(w)

	s := r.Stats
	fmt.Fprintf(w, "  Pixels:           %d\n", s.Pixels)
	fmt.Fprintf(w, "  Mean brightness:  %.1f\n", s.MeanBrightness)
	fmt.Fprintf(w, "  Median:           %d\n", s.Median)
	fmt.Fprintf(w, "  Peak:             %d\n", s.Peak)
	fmt.Fprintf(w, "  Levels:           %d distinct, max %d\n", s.DistinctLevels, s.MaxLevel)
	fmt.Fprintln(w)

	g := r.Geometry
	fmt.Fprintf(w, "  Legend panel:     %dx%d\n", g.LegendWidth, g.LegendHeight)
	fmt.Fprintf(w, "  Histogram panel:  %dx%d\n", g.HistogramWidth, g.HistogramHeight)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Level distribution:")
	for _, l := range r.Levels {
		bar := strings.Repeat("█", int(l.Share*40+0.5))
		fmt.Fprintf(w, "    %2d  [%6.2f, %6.2f)  %s  %8d  %5.1f%%  %s\n",
			l.Level, l.Lower, l.Upper, l.Color, l.Pixels, l.Share*100, bar)
	}
	fmt.Fprintln(w)

	if len(r.Notes) > 0 {
		fmt.Fprintf(w, "  Notes (%d):\n", len(r.Notes))
		for _, n := range r.Notes {
			fmt.Fprintf(w, "    ⚠ %s\n", n)
		}
		fmt.Fprintln(w)
	}
}
