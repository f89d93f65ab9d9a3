package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stubgen/internal/gherkin"
	"stubgen/internal/scenario"
	"stubgen/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [directories]",
	Short: "Check feature documents against the official Gherkin grammar",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}
		return RunValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// RunValidate parses every feature document under the given directories
// with the strict Gherkin parser and reports syntax diagnostics.
func RunValidate(w, errW io.Writer, directories []string) error {
	files, err := scenario.SearchFeatureFilesIn(directories)
	if err != nil {
		return err
	}

	failed := 0
	for _, report := range gherkin.ValidateFiles(files) {
		if !report.Ok() {
			failed++
			ui.FailLine(errW, report.Path, report.Err)
			continue
		}
		ui.OkLine(w, report.Path, fmt.Sprintf("%d scenarios, %d steps", report.Scenarios, report.Steps))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents have syntax errors", failed, len(files))
	}
	fmt.Fprintf(w, "validated %d documents\n", len(files))
	return nil
}
