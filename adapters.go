package newtype

import (
	"github.com/anchore/newtype/pkg/codegen"
)

const (
	DefaultTag       = codegen.DefaultTag
	SerializationTag = codegen.SerializationTag
	RowTag           = codegen.RowTag
	StdlibTag        = codegen.StdlibTag
	AllTag           = codegen.AllTag
)

// AdapterInfo describes an adapter that can be selected for generation
type AdapterInfo struct {
	Name       string
	Tags       []string
	Constraint string
}

// Adapters lists every adapter with the tags it can be selected by
func Adapters() []AdapterInfo {
	var out []AdapterInfo
	for _, a := range codegen.Adapters() {
		out = append(out, AdapterInfo{
			Name:       a.Value.Name,
			Tags:       a.Tags,
			Constraint: a.Value.Constraint,
		})
	}
	return out
}

// AdapterNames resolves an adapter selection expression to the names of the selected adapters
func AdapterNames(expr string) ([]string, error) {
	adapters, err := codegen.SelectAdapters(expr)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(adapters))
	for _, a := range adapters {
		names = append(names, a.Name)
	}
	return names, nil
}
