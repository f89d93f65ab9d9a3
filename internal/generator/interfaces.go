//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=generator
package generator

import (
	"stubgen/internal/binding"
	"stubgen/internal/scenario"
)

type (
	// DocumentSource finds and loads scenario documents.
	DocumentSource interface {
		Search(directories []string) ([]string, error)
		Read(path string) (*scenario.ScenarioDocument, error)
	}

	// UnitWriter persists rendered binding units.
	UnitWriter interface {
		EnsureDir(dir string) error
		Write(unit *binding.BindingUnit, dir, packageName string) (string, error)
	}
)
