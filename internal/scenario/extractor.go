package scenario

import (
	"strings"

	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
)

// ExtractOptions controls how a document is scanned.
type ExtractOptions struct {
	// TagFilter keeps only the scenarios whose tags satisfy the expression.
	// Nil keeps every scenario. Background steps are always kept.
	TagFilter tagexpressions.Evaluatable

	// ContinuationStubs makes And/But lines emit their own phrases, carrying
	// the inherited kind. By default continuations produce no phrase.
	ContinuationStubs bool
}

// Extract scans a document line by line and returns every step phrase in
// document order, covering all scenarios. A Given/When/Then line starts a
// phrase of that kind; And/But inherit the kind of the nearest preceding
// primary line within the same scenario; Scenario and Background headers
// reset the inherited kind. Anything else is ignored. A continuation with
// no preceding primary line is reported as a warning and dropped.
func Extract(doc *ScenarioDocument, opts ExtractOptions) ([]StepPhrase, []Warning) {
	phrases := make([]StepPhrase, 0)
	warnings := make([]Warning, 0)

	var (
		currentKind   Kind
		scenarioIndex int
		active        = true
		featureTags   []string
		pendingTags   []string
	)

	for lineNo, rawLine := range strings.Split(doc.RawText, "\n") {
		line := strings.TrimSpace(rawLine)

		switch {
		case strings.HasPrefix(line, "@"):
			pendingTags = append(pendingTags, strings.Fields(line)...)
			continue

		case strings.HasPrefix(line, "Feature:"):
			featureTags = pendingTags
			pendingTags = nil
			continue

		case strings.HasPrefix(line, "Scenario:"), strings.HasPrefix(line, "Scenario Outline:"):
			scenarioIndex++
			currentKind = ""
			if opts.TagFilter == nil {
				active = true
			} else {
				tags := append(append([]string{}, featureTags...), pendingTags...)
				active = opts.TagFilter.Evaluate(tags)
			}
			pendingTags = nil
			continue

		case strings.HasPrefix(line, "Background:"):
			scenarioIndex++
			currentKind = ""
			active = true
			pendingTags = nil
			continue
		}

		if kind, text, ok := primaryStep(line); ok {
			currentKind = kind
			if active {
				phrases = append(phrases, StepPhrase{
					Kind:          kind,
					Text:          text,
					ScenarioIndex: scenarioIndex,
				})
			}
			continue
		}

		if text, ok := continuationStep(line); ok {
			if currentKind == "" {
				warnings = append(warnings, Warning{
					Path: doc.Path,
					Line: lineNo + 1,
					Text: "continuation step has no preceding Given/When/Then to inherit from",
				})
				continue
			}
			if opts.ContinuationStubs && active {
				phrases = append(phrases, StepPhrase{
					Kind:          currentKind,
					Text:          text,
					ScenarioIndex: scenarioIndex,
				})
			}
		}
	}

	return phrases, warnings
}

func primaryStep(line string) (Kind, string, bool) {
	for _, kind := range Kinds {
		if rest, ok := cutKeyword(line, string(kind)); ok {
			return kind, rest, true
		}
	}
	return "", "", false
}

func continuationStep(line string) (string, bool) {
	for _, keyword := range []string{"And", "But"} {
		if rest, ok := cutKeyword(line, keyword); ok {
			return rest, true
		}
	}
	return "", false
}

// cutKeyword returns the text after the keyword when the line starts with
// the keyword followed by whitespace (or nothing). "Givenx" is not a match.
func cutKeyword(line, keyword string) (string, bool) {
	if line == keyword {
		return "", true
	}
	rest, found := strings.CutPrefix(line, keyword)
	if !found || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
