package codegen

import (
	"github.com/spf13/afero"
)

const (
	// Directive marks a type declaration for generation. Optionally followed by an adapter selection.
	Directive = "//newtype:tagged"

	// TaggedImportPath is the import path of the core package generated code delegates to
	TaggedImportPath = "github.com/anchore/newtype/tagged"

	header = "// Code generated by newtype. DO NOT EDIT."
)

// Config is the uber-configuration containing everything needed by a generator run
type Config struct {
	// Dir is the root directory to scan
	Dir string

	// Recursive scans subdirectories of Dir
	Recursive bool

	// Include holds doublestar patterns relative to Dir selecting the files to parse. Defaults to *.go, or
	// **/*.go when Recursive is set.
	Include []string

	// Types holds wildcard patterns restricting which annotated types are generated. Empty means all.
	Types []string

	// Adapters is the adapter selection expression applied to types whose directive has none
	Adapters string

	// Check reports files that are out of date instead of writing them
	Check bool

	// Fs is the filesystem to read from and write to. Defaults to the OS filesystem.
	Fs afero.Fs
}

func (c Config) includes() []string {
	if len(c.Include) > 0 {
		return c.Include
	}
	if c.Recursive {
		return []string{"**/*.go"}
	}
	return []string{"*.go"}
}
