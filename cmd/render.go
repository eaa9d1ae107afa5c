package cmd

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/encoder"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/pipeline"
	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/profile"
)

var (
	renderOutDir  string
	renderProfile string
	renderQuality int
	renderFormat  string
	renderReport  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [image]",
	Short: "Render the luminance map of an image",
	Long: `Decodes the image, quantizes its brightness into 11 levels, colors
the levels through the Jet ramp and composites a legend and a
brightness histogram into the top-right corner.

Writes <name>_luminance.<ext> next to the image (or into --out) and a
<name>_luminance.json report. Without an argument the path is read
from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", "", "output directory (default: next to the image)")
	renderCmd.Flags().StringVarP(&renderProfile, "profile", "p", profile.DefaultName,
		"rendering profile ("+strings.Join(profile.Names(), ", ")+")")
	renderCmd.Flags().IntVarP(&renderQuality, "quality", "q", 0, "quality 1-100 (0 = profile default)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "",
		"output format: "+outputFormats()+" (default: same as input)")
	renderCmd.Flags().BoolVar(&renderReport, "report", true, "write a JSON report next to the output")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		p, err := promptPath(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		input = p
	}

	if !profile.Known(renderProfile) {
		logVerbose("unknown profile %q, using %s settings", renderProfile, profile.DefaultName)
	}
	prof := profile.Get(renderProfile)
	if renderQuality > 0 {
		prof.Quality = renderQuality
	}

	outDir := renderOutDir
	if outDir != "" {
		abs, err := filepath.Abs(outDir)
		if err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		outDir = abs
	}

	logVerbose("input:   %s", input)
	logVerbose("profile: %s (legend=%.2f, histogram=%.2f, blend=%.2f, clip=%.0f, quality=%d)",
		prof.Name, prof.LegendFraction, prof.HistogramFraction, prof.BlendWeight, prof.ClipPercentile, prof.Quality)

	p := pipeline.New(pipeline.Config{
		InputPath: input,
		OutputDir: outDir,
		Format:    renderFormat,
		Profile:   prof,
		Report:    renderReport,
		Verbose:   verbose,
	})

	out, err := p.Run()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	printRenderReport(cmd.OutOrStdout(), out)
	return nil
}

// promptPath asks for an image path on r, echoing the prompt on w.
func promptPath(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Image path: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read image path: %w", err)
	}
	path := strings.Trim(strings.TrimSpace(line), `"'`)
	if path == "" {
		return "", fmt.Errorf("no image path given")
	}
	return path, nil
}

func printRenderReport(w io.Writer, out *pipeline.Outcome) {
	res := out.Result
	rep := out.Report

	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║             lumamap render complete              ║")
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════╝")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Source:      %s (%dx%d %s, %s)\n",
		filepath.Base(out.Source.AbsPath), rep.Source.Width, rep.Source.Height,
		rep.Source.Format, formatBytes(rep.Source.Size))
	fmt.Fprintf(w, "  Output:      %s (%s, %s)\n",
		out.OutputPath, rep.Output.Format, formatBytes(rep.Output.Size))
	fmt.Fprintf(w, "  Profile:     %s\n", rep.Profile)
	fmt.Fprintf(w, "  Legend:      %dx%d\n", res.Geometry.LegendWidth, res.Geometry.LegendHeight)
	fmt.Fprintf(w, "  Histogram:   %dx%d\n", res.Geometry.HistogramWidth, res.Geometry.HistogramHeight)
	fmt.Fprintf(w, "  Levels:      %d distinct (max %d)\n", rep.Stats.DistinctLevels, rep.Stats.MaxLevel)
	fmt.Fprintf(w, "  Brightness:  mean %.1f, median %d\n", rep.Stats.MeanBrightness, rep.Stats.Median)
	fmt.Fprintf(w, "  Hash:        %s\n", rep.Output.Hash)
	fmt.Fprintf(w, "  Time:        %s\n", out.Elapsed.Round(time.Millisecond))
	if out.ReportPath != "" {
		fmt.Fprintf(w, "  Report:      %s\n", out.ReportPath)
	}
	fmt.Fprintln(w)

	if len(res.Notes) > 0 {
		fmt.Fprintf(w, "  Notes (%d):\n", len(res.Notes))
		for _, n := range res.Notes {
			fmt.Fprintf(w, "    ⚠ %s\n", n)
		}
		fmt.Fprintln(w)
	}
}

// outputFormats lists the formats --format can write.
func outputFormats() string {
	return strings.Join(encoder.NewRegistry().Available(), ", ")
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
