// Package binding composes deduplicated step phrases into one renderable
// binding unit per scenario document.
package binding

import (
	"path/filepath"
	"strings"

	"stubgen/internal/identifier"
	"stubgen/internal/scenario"
)

type (
	// Entry is one stub: a literal match pattern and its resolved method name.
	Entry struct {
		Text       string
		Identifier string
	}

	// Group holds the entries of one primary keyword, in first-seen order.
	Group struct {
		Kind    scenario.Kind
		Entries []Entry
	}

	// BindingUnit is the in-memory form of one generated source file.
	// Groups are always in Given, When, Then order and contain no duplicate
	// texts; no two entries anywhere in the unit share an identifier.
	// FileName starts out derived from the document's base name; the batch
	// generator may re-suffix it when sibling documents share a base name.
	BindingUnit struct {
		Name         string
		FileName     string
		DocumentPath string
		Groups       []Group
	}
)

// baseName strips the directory and feature extension from a document path.
func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), scenario.FeatureExtension)
}

// UnitName derives the binding type name from the document path, e.g.
// "features/user login.feature" becomes "UserLoginSteps".
func UnitName(path string) string {
	return identifier.Derive(baseName(path)) + "Steps"
}

// FileName derives the generated file name from the document path, e.g.
// "features/user login.feature" becomes "user_login_steps.go".
func FileName(path string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(baseName(path)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	stem := b.String()
	if strings.Trim(stem, "_") == "" {
		stem = "unnamed"
	}
	return stem + "_steps.go"
}

// Entries returns every entry of the unit in group order.
func (u *BindingUnit) Entries() []Entry {
	all := make([]Entry, 0)
	for _, group := range u.Groups {
		all = append(all, group.Entries...)
	}
	return all
}
