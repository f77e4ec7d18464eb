package codegen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"
	"golang.org/x/tools/imports"
)

var fileTemplate = template.Must(template.New("file").Parse(fileText))

type fileData struct {
	Header     string
	Constraint string
	Package    string
	Imports    []ImportSpec
	Types      []typeData
}

type typeData struct {
	Name     string
	Field    string
	Value    string
	Elem     string
	Ordered  bool
	Hashable bool
	Slice    bool
}

func newTypeData(s *StructInfo) typeData {
	return typeData{
		Name:     s.Name,
		Field:    s.Field.Name,
		Value:    s.Field.Type,
		Elem:     s.Field.Elem,
		Ordered:  s.Field.Kind == OrderedKind,
		Hashable: s.Field.Kind == OrderedKind || s.Field.Kind == ComparableKind,
		Slice:    s.Field.Kind == SliceKind,
	}
}

// emittedMethods returns the names of the methods generated for s with the given adapters
func emittedMethods(s *StructInfo, adapters []*Adapter) *strset.Set {
	t := newTypeData(s)
	names := strset.New("From", "Tagged", "setTagged", "Get", "Unwrap", "Take", "Set", "Equal", "String", "Format", "InnerTypeName")
	if t.Ordered {
		names.Add("Compare")
	}
	if t.Hashable {
		names.Add("Hash")
	}
	if t.Slice {
		names.Add("Values", "All", "Drain")
	}
	for _, a := range adapters {
		names.Add(a.Methods...)
	}
	return names
}

func conflictingMethods(s *StructInfo, adapters []*Adapter) []string {
	if len(s.Methods) == 0 {
		return nil
	}
	emitted := emittedMethods(s, adapters)
	var out []string
	for _, m := range s.Methods {
		if emitted.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func constructorName(typeName string) string {
	return "New" + typeName
}

// CoreFileName is the name of the file holding the common operations of every wrapper in a package
func CoreFileName(pkg string) string {
	return pkg + "_tagged_gen.go"
}

// AdapterFileName is the name of the file holding the methods of one adapter for every wrapper in a package
func AdapterFileName(pkg, adapter string) string {
	return fmt.Sprintf("%s_tagged_%s_gen.go", pkg, adapter)
}

// Render produces the files for one package: the core file plus one file per adapter selected by at least
// one of the structs. A struct's own directive selection takes precedence over defaultAdapters.
func Render(pkg *PackageInfo, structs []*StructInfo, defaultAdapters string) ([]File, error) {
	if len(structs) == 0 {
		return nil, nil
	}

	byAdapter := make(map[string][]*StructInfo)
	var errs error
	for _, s := range structs {
		expr := defaultAdapters
		if s.Adapters != "" {
			expr = s.Adapters
		}
		selected, err := SelectAdapters(expr)
		if err != nil {
			errs = multierror.Append(errs, &RejectionError{Pos: s.Pos, Type: s.Name, Reason: err.Error()})
			continue
		}
		if conflicts := conflictingMethods(s, selected); len(conflicts) > 0 {
			errs = multierror.Append(errs, &RejectionError{
				Pos:    s.Pos,
				Type:   s.Name,
				Reason: fmt.Sprintf("already declares generated methods %s", strings.Join(conflicts, ", ")),
			})
			continue
		}
		for _, a := range selected {
			byAdapter[a.Name] = append(byAdapter[a.Name], s)
		}
	}
	if errs != nil {
		return nil, errs
	}

	core, err := renderCore(pkg, structs)
	if err != nil {
		return nil, err
	}
	files := []File{core}

	for _, a := range Adapters().Collect() {
		selected := byAdapter[a.Name]
		if len(selected) == 0 {
			continue
		}
		f, err := renderAdapter(pkg, a, selected)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func renderCore(pkg *PackageInfo, structs []*StructInfo) (File, error) {
	specs := []ImportSpec{{Path: "fmt"}, {Path: TaggedImportPath}}
	data := fileData{Header: header, Package: pkg.Name}
	for _, s := range structs {
		t := newTypeData(s)
		if t.Hashable {
			specs = append(specs, ImportSpec{Path: "hash/maphash"})
		}
		if t.Slice {
			specs = append(specs, ImportSpec{Path: "iter"})
		}
		specs = append(specs, referencedImports(s)...)
		data.Types = append(data.Types, t)
	}
	data.Imports = dedupeImports(specs)

	path := filepath.Join(pkg.Dir, CoreFileName(pkg.Name))
	content, err := render(path, data, coreBody)
	if err != nil {
		return File{}, err
	}
	return File{
		Path:    path,
		Package: pkg.Name,
		Types:   typeNames(structs),
		Content: content,
	}, nil
}

func renderAdapter(pkg *PackageInfo, a *Adapter, structs []*StructInfo) (File, error) {
	data := fileData{
		Header:     header,
		Constraint: a.Constraint,
		Package:    pkg.Name,
		Imports:    dedupeImports(a.Imports),
	}
	for _, s := range structs {
		data.Types = append(data.Types, newTypeData(s))
	}

	path := filepath.Join(pkg.Dir, AdapterFileName(pkg.Name, a.Name))
	content, err := render(path, data, a.body)
	if err != nil {
		return File{}, err
	}
	return File{
		Path:    path,
		Package: pkg.Name,
		Adapter: a.Name,
		Types:   typeNames(structs),
		Content: content,
	}, nil
}

func render(path string, data fileData, body string) ([]byte, error) {
	t, err := fileTemplate.Clone()
	if err != nil {
		return nil, err
	}
	if _, err := t.New("body").Parse(body); err != nil {
		return nil, fmt.Errorf("unable to parse template for %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("unable to render %s: %w", path, err)
	}

	formatted, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to format %s: %w", path, err)
	}
	return formatted, nil
}

func dedupeImports(specs []ImportSpec) []ImportSpec {
	seen := strset.New()
	var out []ImportSpec
	for _, spec := range specs {
		if seen.Has(spec.Path) {
			continue
		}
		seen.Add(spec.Path)
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

func typeNames(structs []*StructInfo) []string {
	names := make([]string, 0, len(structs))
	for _, s := range structs {
		names = append(names, s.Name)
	}
	return names
}
