package scenario

import (
	"fmt"
	"os"
)

// ReadError marks a document that could not be loaded. It is scoped to a
// single document; the batch continues past it.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read document %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ReadDocument loads the full UTF-8 text of the feature file at path.
func ReadDocument(path string) (*ScenarioDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return &ScenarioDocument{
		Path:    path,
		RawText: string(data),
	}, nil
}
