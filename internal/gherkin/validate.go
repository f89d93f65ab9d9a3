// Package gherkin checks scenario documents against the official Gherkin
// grammar. The generator itself scans documents tolerantly; this package
// backs the validate command, where strictness is the point.
package gherkin

import (
	"bytes"
	"fmt"
	"os"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/google/uuid"
)

// Report is the outcome of validating one document.
type Report struct {
	Path      string
	Scenarios int
	Steps     int
	Err       error
}

// Ok reports whether the document parsed cleanly.
func (r Report) Ok() bool { return r.Err == nil }

// ValidateFile parses the document with the official Gherkin parser and
// counts the scenarios and steps it compiles to.
func ValidateFile(path string) Report {
	report := Report{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Err = fmt.Errorf("could not read document %s: %w", path, err)
		return report
	}

	id := (&messages.Incrementing{}).NewId
	document, err := gherkin.ParseGherkinDocument(bytes.NewReader(data), id)
	if err != nil {
		report.Err = fmt.Errorf("gherkin parse error in file %s, error=%w", path, err)
		return report
	}

	pickles := gherkin.Pickles(*document, path, uuid.NewString)
	report.Scenarios = len(pickles)
	for _, pickle := range pickles {
		report.Steps += len(pickle.Steps)
	}

	return report
}

// ValidateFiles validates every document and returns one report per path.
func ValidateFiles(paths []string) []Report {
	reports := make([]Report, 0, len(paths))
	for _, path := range paths {
		reports = append(reports, ValidateFile(path))
	}
	return reports
}
