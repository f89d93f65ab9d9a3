package binding

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dave/jennifer/jen"
)

// Render writes the unit as a Go source file: an empty struct type, one
// pending method per stub whose doc comment carries the literal pattern,
// and a Register method wiring each pattern to its method.
func (u *BindingUnit) Render(writer io.Writer, packageName string) error {
	file := jen.NewFile(packageName)
	file.HeaderComment(fmt.Sprintf(
		"Generated by stubgen from %s. Implement the pending step bodies.",
		filepath.Base(u.DocumentPath)))

	file.Commentf("%s holds the step bindings of %s.", u.Name, filepath.Base(u.DocumentPath))
	file.Type().Id(u.Name).Struct()

	for _, group := range u.Groups {
		file.Commentf("%s steps.", group.Kind)
		for _, entry := range group.Entries {
			file.Commentf("%s matches the literal step %q.", entry.Identifier, entry.Text)
			file.Func().
				Params(jen.Id("s").Op("*").Id(u.Name)).
				Id(entry.Identifier).
				Params().
				Error().
				Block(jen.Panic(jen.Lit("pending step: " + entry.Text)))
		}
	}

	file.Comment("Register wires every stub's literal pattern to its method.")
	file.Func().
		Params(jen.Id("s").Op("*").Id(u.Name)).
		Id("Register").
		Params(jen.Id("r").Interface(
			jen.Id("RegisterStep").Params(jen.Id("pattern").String(), jen.Id("fn").Any()),
		)).
		BlockFunc(func(body *jen.Group) {
			for _, entry := range u.Entries() {
				body.Id("r").Dot("RegisterStep").Call(
					jen.Lit(entry.Text), jen.Id("s").Dot(entry.Identifier))
			}
		})

	_, err := writer.Write([]byte(file.GoString()))

	return err
}
