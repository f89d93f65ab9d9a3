// Package generator runs the per-document pipeline over a batch of scenario
// documents: read, extract, compose, write. Documents are independent; a
// failure in one never aborts the rest.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tagexpressions "github.com/cucumber/tag-expressions/go/v6"

	"stubgen/internal/binding"
	"stubgen/internal/output"
	"stubgen/internal/scenario"
)

// Options configures a generation run.
type Options struct {
	// Tags is a cucumber tag expression; scenarios not matching it
	// contribute no steps. Empty keeps everything.
	Tags string

	// PackageName overrides the package name detected from the output
	// directory.
	PackageName string

	// ContinuationStubs makes And/But lines produce their own stubs,
	// carrying the inherited kind.
	ContinuationStubs bool
}

// Status is the outcome of one document.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

type (
	// Result is the outcome of a single document.
	Result struct {
		Document string
		Output   string
		Status   Status
		Err      error
		Warnings []scenario.Warning
		Notes    []binding.Note
	}

	// Summary aggregates the results of a whole run.
	Summary struct {
		Results []Result
	}

	Generator struct {
		source DocumentSource
		writer UnitWriter
		logger *slog.Logger
		opts   Options
	}
)

// Count returns how many results carry the given status.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Ok reports whether no document failed.
func (s *Summary) Ok() bool { return s.Count(StatusFailed) == 0 }

// New builds a Generator over the real filesystem.
func New(opts Options) *Generator {
	return NewWith(fsSource{}, fsWriter{}, slog.Default(), opts)
}

// NewWith builds a Generator with explicit collaborators, used by tests.
func NewWith(source DocumentSource, writer UnitWriter, logger *slog.Logger, opts Options) *Generator {
	return &Generator{
		source: source,
		writer: writer,
		logger: logger,
		opts:   opts,
	}
}

// Run generates one binding file per feature document found under inputDir
// into outputDir. Per-document errors are collected on the summary; only a
// structural failure (unusable input directory, uncreatable output root, or
// a malformed tag expression) is returned as an error.
func (g *Generator) Run(ctx context.Context, inputDir, outputDir string) (*Summary, error) {
	extractOpts := scenario.ExtractOptions{ContinuationStubs: g.opts.ContinuationStubs}
	if g.opts.Tags != "" {
		filter, err := tagexpressions.Parse(g.opts.Tags)
		if err != nil {
			return nil, fmt.Errorf("invalid tag expression %q: %w", g.opts.Tags, err)
		}
		extractOpts.TagFilter = filter
	}

	files, err := g.source.Search([]string{inputDir})
	if err != nil {
		return nil, err
	}

	// Destination creation is an explicit upfront step; failing it fails
	// the whole run, not a single document.
	if err := g.writer.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	packageName := g.opts.PackageName
	if packageName == "" {
		packageName = binding.DetectPackageName(outputDir)
	}

	// Documents found in different subdirectories may share a base name and
	// therefore derive the same output file; track the names claimed so far
	// so later documents can be re-suffixed instead of overwriting.
	usedFiles := make(map[string]bool, len(files))
	usedNames := make(map[string]bool, len(files))

	summary := &Summary{Results: make([]Result, 0, len(files))}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Results = append(summary.Results,
			g.generateOne(file, outputDir, packageName, extractOpts, usedFiles, usedNames))
	}

	return summary, nil
}

// resolveOutputCollision claims the unit's file and type names. When either
// is already taken by an earlier document, both get the same stable numeric
// suffix, in discovery order, so no document silently overwrites another.
func resolveOutputCollision(unit *binding.BindingUnit, usedFiles, usedNames map[string]bool) bool {
	if !usedFiles[unit.FileName] && !usedNames[unit.Name] {
		usedFiles[unit.FileName] = true
		usedNames[unit.Name] = true
		return false
	}

	stem := strings.TrimSuffix(unit.FileName, ".go")
	for n := 2; ; n++ {
		file := fmt.Sprintf("%s%d.go", stem, n)
		name := fmt.Sprintf("%s%d", unit.Name, n)
		if !usedFiles[file] && !usedNames[name] {
			unit.FileName = file
			unit.Name = name
			usedFiles[file] = true
			usedNames[name] = true
			return true
		}
	}
}

func (g *Generator) generateOne(path, outputDir, packageName string, extractOpts scenario.ExtractOptions,
	usedFiles, usedNames map[string]bool) Result {
	result := Result{Document: path}

	doc, err := g.source.Read(path)
	if err != nil {
		g.logger.Error("skipping unreadable document", "path", path, "error", err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	phrases, warnings := scenario.Extract(doc, extractOpts)
	result.Warnings = warnings
	for _, warning := range warnings {
		g.logger.Warn("ambiguous step line ignored", "at", warning.String())
	}

	if len(phrases) == 0 {
		result.Status = StatusSkipped
		return result
	}

	unit, notes := binding.Compose(path, phrases)
	if resolveOutputCollision(unit, usedFiles, usedNames) {
		notes = append(notes, binding.Note(fmt.Sprintf(
			"output renamed to %s because another document also derives %s",
			unit.FileName, binding.FileName(path))))
	}
	result.Notes = notes
	for _, note := range notes {
		g.logger.Info("naming collision resolved", "document", path, "note", string(note))
	}

	written, err := g.writer.Write(unit, outputDir, packageName)
	if err != nil {
		g.logger.Error("skipping unwritable document", "path", path, "error", err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	result.Status = StatusGenerated
	result.Output = written
	return result
}

// fsSource and fsWriter are the real-filesystem collaborators.
type (
	fsSource struct{}
	fsWriter struct{}
)

func (fsSource) Search(directories []string) ([]string, error) {
	return scenario.SearchFeatureFilesIn(directories)
}

func (fsSource) Read(path string) (*scenario.ScenarioDocument, error) {
	return scenario.ReadDocument(path)
}

func (fsWriter) EnsureDir(dir string) error {
	return output.EnsureDir(dir)
}

func (fsWriter) Write(unit *binding.BindingUnit, dir, packageName string) (string, error) {
	return output.Write(unit, dir, packageName)
}
