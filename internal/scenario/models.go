package scenario

import "fmt"

type (
	// Kind is the primary step keyword a phrase belongs to.
	Kind string

	// ScenarioDocument is one feature file, read in full. Immutable once read.
	ScenarioDocument struct {
		Path    string
		RawText string
	}

	// StepPhrase is the literal text of one step line, tagged with its kind
	// and the index of the scenario that produced it.
	StepPhrase struct {
		Kind          Kind
		Text          string
		ScenarioIndex int
	}

	// Warning is a non-fatal problem found while scanning a document.
	Warning struct {
		Path string
		Line int
		Text string
	}
)

const (
	Given Kind = "Given"
	When  Kind = "When"
	Then  Kind = "Then"
)

// Kinds lists the primary keywords in their rendering order.
var Kinds = []Kind{Given, When, Then}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.Path, w.Line, w.Text)
}
