package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"
	"github.com/spf13/afero"

	"github.com/anchore/newtype/internal/log"
)

// RejectionError describes an annotated declaration the generator cannot expand
type RejectionError struct {
	Pos    token.Position
	Type   string
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Type, e.Reason)
}

func reject(fset *token.FileSet, ts *ast.TypeSpec, format string, args ...interface{}) error {
	return &RejectionError{
		Pos:    fset.Position(ts.Name.Pos()),
		Type:   ts.Name.Name,
		Reason: fmt.Sprintf(format, args...),
	}
}

var (
	orderedIdents = strset.New(
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "string", "byte", "rune",
	)
	comparableIdents = strset.New("bool", "complex64", "complex128")

	versionSuffix = regexp.MustCompile(`^v[0-9]+$`)
)

// ParsePackage parses every selected file of the package and returns its annotated structs. Files carrying a
// "Code generated" header are ignored. All rejections are collected and returned together.
func ParsePackage(fs afero.Fs, pkg *PackageInfo) ([]*StructInfo, error) {
	fset := token.NewFileSet()
	funcs := strset.New()
	methods := make(map[string]*strset.Set)

	var structs []*StructInfo
	var errs error
	for _, filePath := range pkg.Files {
		src, err := afero.ReadFile(fs, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
		}

		file, err := parser.ParseFile(fset, filePath, src, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse file %q: %w", filePath, err)
		}

		if ast.IsGenerated(file) {
			log.Tracef("skipping generated file: %s", filePath)
			continue
		}

		switch {
		case pkg.Name == "":
			pkg.Name = file.Name.Name
		case pkg.Name != file.Name.Name:
			return nil, fmt.Errorf("found packages %s and %s in %s", pkg.Name, file.Name.Name, pkg.Dir)
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			if fn.Recv == nil || len(fn.Recv.List) == 0 {
				funcs.Add(fn.Name.Name)
				continue
			}
			recv := receiverName(fn.Recv.List[0].Type)
			if methods[recv] == nil {
				methods[recv] = strset.New()
			}
			methods[recv].Add(fn.Name.Name)
		}

		found, err := ExtractTypes(fset, file)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		structs = append(structs, found...)
	}

	for _, s := range structs {
		s.Package = pkg.Name
		if declared, ok := methods[s.Name]; ok {
			s.Methods = declared.List()
			sort.Strings(s.Methods)
		}
		if funcs.Has(constructorName(s.Name)) {
			errs = multierror.Append(errs, &RejectionError{
				Pos:    s.Pos,
				Type:   s.Name,
				Reason: fmt.Sprintf("%s is already declared in the package", constructorName(s.Name)),
			})
		}
	}

	if errs != nil {
		return nil, errs
	}
	return structs, nil
}

// ExtractTypes returns the struct declarations of the file annotated with the directive. Annotated
// declarations that are not non-generic structs with exactly one named or embedded field are rejected.
func ExtractTypes(fset *token.FileSet, file *ast.File) ([]*StructInfo, error) {
	imports := ExtractImports(file)

	var structs []*StructInfo
	var errs error
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil && !genDecl.Lparen.IsValid() {
				doc = genDecl.Doc
			}
			adapters, ok := directive(doc)
			if !ok {
				continue
			}

			field, err := singleField(fset, typeSpec)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}

			structs = append(structs, &StructInfo{
				Name:     typeSpec.Name.Name,
				Package:  file.Name.Name,
				Pos:      fset.Position(typeSpec.Name.Pos()),
				Field:    field,
				Adapters: adapters,
				Imports:  imports,
			})
		}
	}

	return structs, errs
}

func directive(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Directive)
		if !ok {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func singleField(fset *token.FileSet, ts *ast.TypeSpec) (*FieldInfo, error) {
	if ts.Assign.IsValid() {
		return nil, reject(fset, ts, "type aliases cannot be tagged")
	}
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return nil, reject(fset, ts, "generic types cannot be tagged")
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, reject(fset, ts, "must be a struct with exactly one field, got %s", types.ExprString(ts.Type))
	}

	count := 0
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			count++
			continue
		}
		count += len(f.Names)
	}
	switch {
	case count == 0:
		return nil, reject(fset, ts, "must have exactly one field, has none")
	case count > 1:
		return nil, reject(fset, ts, "must have exactly one field, has %d", count)
	}

	f := st.Fields.List[0]
	info := &FieldInfo{
		Type:    types.ExprString(f.Type),
		ASTType: f.Type,
	}
	if len(f.Names) == 0 {
		info.Embedded = true
		info.Name = embeddedName(f.Type)
	} else {
		info.Name = f.Names[0].Name
	}

	if info.Name == "_" {
		return nil, reject(fset, ts, "the field must not be blank")
	}
	if reservedNames().Has(info.Name) {
		return nil, reject(fset, ts, "field %s conflicts with a generated method", info.Name)
	}

	info.Kind, info.Elem = classify(f.Type)
	return info, nil
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.ParenExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	}
	return ""
}

func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	}
	return ""
}

func classify(expr ast.Expr) (Kind, string) {
	switch e := expr.(type) {
	case *ast.Ident:
		switch {
		case orderedIdents.Has(e.Name):
			return OrderedKind, ""
		case comparableIdents.Has(e.Name):
			return ComparableKind, ""
		}
	case *ast.StarExpr, *ast.ChanType:
		return ComparableKind, ""
	case *ast.ArrayType:
		if e.Len == nil {
			return SliceKind, types.ExprString(e.Elt)
		}
	case *ast.ParenExpr:
		return classify(e.X)
	}
	return OtherKind, ""
}

// ExtractImports returns the imports of the file keyed by the name they are referred to by.
// Blank and dot imports are left out.
func ExtractImports(file *ast.File) map[string]ImportSpec {
	imports := make(map[string]ImportSpec)
	for _, imp := range file.Imports {
		p := strings.Trim(imp.Path.Value, "\"")
		spec := ImportSpec{Path: p}

		name := packageName(p)
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			name = imp.Name.Name
			spec.Name = name
		}
		imports[name] = spec
	}
	return imports
}

// packageName guesses the package name of an import path without loading it
func packageName(importPath string) string {
	name := path.Base(importPath)
	if versionSuffix.MatchString(name) && path.Dir(importPath) != "." {
		name = path.Base(path.Dir(importPath))
	}
	if i := strings.Index(name, ".v"); i > 0 {
		name = name[:i]
	}
	name = strings.TrimSuffix(strings.TrimPrefix(name, "go-"), "-go")
	return strings.ReplaceAll(name, "-", "_")
}

// referencedImports returns the imports of the declaring file the field type refers to
func referencedImports(s *StructInfo) []ImportSpec {
	var out []ImportSpec
	seen := strset.New()
	ast.Inspect(s.Field.ASTType, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}
		if spec, ok := s.Imports[id.Name]; ok && !seen.Has(spec.Path) {
			seen.Add(spec.Path)
			out = append(out, spec)
		}
		return false
	})
	return out
}
