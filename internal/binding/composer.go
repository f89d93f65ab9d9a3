package binding

import (
	"fmt"

	"stubgen/internal/identifier"
	"stubgen/internal/scenario"
)

// Note is an informational message produced during composition, e.g. a
// collision rename. Notes never fail a document.
type Note string

// Compose turns the full phrase sequence of one document into a BindingUnit.
// Phrases with identical text within a kind collapse to a single entry in
// first-seen order, regardless of which scenario produced them. Identifier
// collisions between distinct texts are resolved with a numeric suffix in
// first-occurrence order and reported as notes.
func Compose(documentPath string, phrases []scenario.StepPhrase) (*BindingUnit, []Note) {
	unit := &BindingUnit{
		Name:         UnitName(documentPath),
		FileName:     FileName(documentPath),
		DocumentPath: documentPath,
	}

	// Dedupe per kind, keeping first-seen order within each kind.
	texts := make(map[scenario.Kind][]string, len(scenario.Kinds))
	seen := make(map[scenario.StepPhrase]struct{}, len(phrases))
	for _, phrase := range phrases {
		key := scenario.StepPhrase{Kind: phrase.Kind, Text: phrase.Text}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		texts[phrase.Kind] = append(texts[phrase.Kind], phrase.Text)
	}

	// Collision resolution runs over the whole unit in group order so that
	// identifiers are unique unit-wide, not just within a kind.
	candidates := make([]string, 0, len(seen))
	for _, kind := range scenario.Kinds {
		for _, text := range texts[kind] {
			candidates = append(candidates, identifier.Derive(text))
		}
	}
	resolved := identifier.ResolveCollisions(candidates)

	notes := make([]Note, 0)
	i := 0
	for _, kind := range scenario.Kinds {
		if len(texts[kind]) == 0 {
			continue
		}
		group := Group{Kind: kind}
		for _, text := range texts[kind] {
			if resolved[i] != candidates[i] {
				notes = append(notes, Note(fmt.Sprintf(
					"step %q renamed from %s to %s to avoid an identifier collision",
					text, candidates[i], resolved[i])))
			}
			group.Entries = append(group.Entries, Entry{Text: text, Identifier: resolved[i]})
			i++
		}
		unit.Groups = append(unit.Groups, group)
	}

	return unit, notes
}
