package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lumamap",
	Short: "Discretized luminance maps for still images",
	Long: `lumamap — reduces an image to 11 brightness levels, colors them
through a Jet ramp and stamps a level legend plus a brightness
histogram into the top-right corner.

The output keeps the input's dimensions and is written as
<name>_luminance.<ext>, with an optional JSON report alongside.`,
	Version:      version,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"lumamap %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[lumamap] "+format+"\n", args...)
	}
}
