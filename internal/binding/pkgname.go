package binding

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// DefaultPackageName is used when nothing about the output directory
// suggests a better name.
const DefaultPackageName = "bindings"

// DetectPackageName picks the package name for files generated into dir.
// It prefers the package clause of Go files already in the directory, then
// the last segment of the module path when dir is a module root, then the
// sanitized directory name.
func DetectPackageName(dir string) string {
	if name := packageClauseIn(dir); name != "" {
		return name
	}

	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if mod, err := modfile.Parse("go.mod", data, nil); err == nil && mod.Module != nil {
			if name := sanitizePackageName(filepath.Base(mod.Module.Mod.Path)); name != "" {
				return name
			}
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return DefaultPackageName
	}
	if name := sanitizePackageName(filepath.Base(abs)); name != "" {
		return name
	}
	return DefaultPackageName
}

// packageClauseIn returns the package name declared by Go files in dir, or
// "" when the directory has no parseable Go files.
func packageClauseIn(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil || f.Name == nil {
			continue
		}
		if f.Name.Name != "" {
			return f.Name.Name
		}
	}
	return ""
}

// sanitizePackageName turns a directory or module path segment into a valid
// Go package name: lowercased, hyphens and dots become underscores, other
// invalid runes are dropped, and a leading digit gets an underscore prefix.
func sanitizePackageName(raw string) string {
	if raw == "" || raw == "." || raw == string(filepath.Separator) {
		return ""
	}

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		case r == '-' || r == '.':
			if i > 0 {
				b.WriteRune('_')
			}
		}
	}

	name := b.String()
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}
