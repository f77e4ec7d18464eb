package codegen

import (
	"go/ast"
	"go/token"
)

// PackageInfo holds the Go files of one directory
type PackageInfo struct {
	// Dir is the directory containing the package
	Dir string

	// Name is the package name, known once the files are parsed
	Name string

	// Files contains paths to all .go files in the directory selected by the include patterns
	Files []string

	// Generated contains paths to files in the directory written by a previous run
	Generated []string
}

// StructInfo holds an annotated single-field struct
type StructInfo struct {
	// Name is the struct type name, which also becomes its tag
	Name string

	// Package is the package name this struct belongs to
	Package string

	// Pos is the position of the type name
	Pos token.Position

	// Field is the single field of the struct
	Field *FieldInfo

	// Adapters is the adapter selection given on the directive line, if any
	Adapters string

	// Imports maps the package names visible in the declaring file to their import paths
	Imports map[string]ImportSpec

	// Methods lists the methods already declared on the type in the package, sorted
	Methods []string
}

// FieldInfo holds the field wrapped by an annotated struct
type FieldInfo struct {
	// Name is the field name; for embedded fields this is the type name
	Name string

	// Type is the source representation of the field type
	Type string

	// Elem is the element type when the field is a slice
	Elem string

	// Embedded indicates the field has no explicit name
	Embedded bool

	// Kind classifies the field type for the operations emitted beyond the common set
	Kind Kind

	// ASTType is the AST representation of the field type
	ASTType ast.Expr
}

// Kind classifies a field type by the payload constraints the core package places on some operations
type Kind int

const (
	// OtherKind payloads get the common operation set only
	OtherKind Kind = iota
	// ComparableKind payloads additionally get Hash
	ComparableKind
	// OrderedKind payloads additionally get Hash and Compare
	OrderedKind
	// SliceKind payloads additionally get Values, All and Drain
	SliceKind
)

// ImportSpec is a single import of a source file
type ImportSpec struct {
	// Name is the explicit import name, empty when the path's package name is used
	Name string
	Path string
}

// File is a single generated output file
type File struct {
	// Path is where the file is (or would be) written
	Path string

	// Package is the package name of the file
	Package string

	// Adapter is the adapter the file implements, empty for the core file
	Adapter string

	// Types lists the wrapper types the file declares methods for
	Types []string

	// Content is the formatted source
	Content []byte

	// Stale is set in check mode when the content on disk differs
	Stale bool

	// Removed is set when the file is no longer produced and was (or in check mode would be) removed
	Removed bool

	// Diff is the line diff against the content on disk, only computed in check mode
	Diff string
}
