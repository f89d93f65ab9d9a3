// Package identifier turns free step text into valid, stable Go method
// names. Derivation is a pure function; collision handling is a separate
// explicit pass so that all naming non-determinism risk lives here.
package identifier

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder is used when the text contains no alphanumeric runes at all.
const Placeholder = "UnnamedStep"

// Derive converts step text into a candidate method identifier by splitting
// on non-alphanumeric runes, capitalizing each token and concatenating.
// Identical text always yields the identical identifier.
func Derive(text string) string {
	var b strings.Builder
	startOfToken := true

	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			startOfToken = true
			continue
		}
		if startOfToken {
			b.WriteRune(unicode.ToUpper(r))
			startOfToken = false
		} else {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" {
		return Placeholder
	}
	// A method name must not start with a digit.
	if first, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(first) {
		name = "Step" + name
	}
	return name
}

// ResolveCollisions maps each candidate to a unique identifier. Candidates
// are taken in first-occurrence order; the first holder of a name keeps it,
// later holders of the same name get a numeric suffix (X, X2, X3, ...).
// The result is index-aligned with the input.
func ResolveCollisions(candidates []string) []string {
	resolved := make([]string, len(candidates))
	uses := make(map[string]int, len(candidates))

	for i, candidate := range candidates {
		uses[candidate]++
		if uses[candidate] == 1 {
			resolved[i] = candidate
			continue
		}
		// Suffixed names may themselves collide with a literal candidate
		// seen earlier, so claim the first free slot.
		for n := uses[candidate]; ; n++ {
			suffixed := fmt.Sprintf("%s%d", candidate, n)
			if uses[suffixed] == 0 {
				uses[suffixed]++
				resolved[i] = suffixed
				break
			}
		}
	}

	return resolved
}
