package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stubgen/internal/generator"
	"stubgen/internal/ui"
)

var (
	inputFlag        string
	outputFlag       string
	tagsFlag         string
	packageFlag      string
	continuationFlag bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one binding stub file per feature document",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := generator.Options{
			Tags:              tagsFlag,
			PackageName:       packageFlag,
			ContinuationStubs: continuationFlag,
		}
		return RunGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), inputFlag, outputFlag, opts)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&inputFlag, "input", "i", ".", "Directory searched recursively for feature documents")
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "bindings", "Directory the binding files are written to")
	generateCmd.Flags().StringVar(&tagsFlag, "tags", "", "Tag expression selecting the scenarios to scaffold")
	generateCmd.Flags().StringVar(&packageFlag, "package", "", "Package name for generated files (default: detected from the output directory)")
	generateCmd.Flags().BoolVar(&continuationFlag, "continuation-stubs", false, "Also generate stubs for And/But lines, carrying the inherited kind")
	rootCmd.AddCommand(generateCmd)
}

// RunGenerate runs a whole generation batch and prints the per-document
// outcomes and the closing summary. It returns an error when the run could
// not start at all or when at least one document failed.
func RunGenerate(ctx context.Context, w, errW io.Writer, inputDir, outputDir string, opts generator.Options) error {
	summary, err := generator.New(opts).Run(ctx, inputDir, outputDir)
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		for _, warning := range result.Warnings {
			ui.WarnLine(errW, warning.String())
		}
		switch result.Status {
		case generator.StatusGenerated:
			ui.OkLine(w, result.Document, result.Output)
		case generator.StatusSkipped:
			ui.SkipLine(w, result.Document)
		case generator.StatusFailed:
			ui.FailLine(errW, result.Document, result.Err)
		}
	}
	ui.SummaryLine(w,
		summary.Count(generator.StatusGenerated),
		summary.Count(generator.StatusSkipped),
		summary.Count(generator.StatusFailed))

	if !summary.Ok() {
		return fmt.Errorf("%d of %d documents failed", summary.Count(generator.StatusFailed), len(summary.Results))
	}
	return nil
}
