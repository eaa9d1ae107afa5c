package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report.json>",
	Short: "Validate a render report and check the output file it describes",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	reportPath := args[0]

	r, err := report.Read(reportPath)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	errs := report.Validate(r, filepath.Dir(reportPath))
	if len(errs) == 0 {
		fmt.Fprintln(w, "  ✓ Report is valid")
		fmt.Fprintf(w, "  ✓ %s matches (%d bytes, hash %s)\n", r.Output.Path, r.Output.Size, r.Output.Hash)
		return nil
	}

	fmt.Fprintf(w, "  ✗ Report has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(w, "    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}
