package newtype

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/anchore/newtype/pkg/codegen"
)

type Option func(*codegen.Config) error

func WithRecursive() Option {
	return func(c *codegen.Config) error {
		c.Recursive = true
		return nil
	}
}

// WithInclude restricts the parsed files to the given doublestar patterns, relative to the generation root.
func WithInclude(patterns ...string) Option {
	return func(c *codegen.Config) error {
		c.Include = append(c.Include, patterns...)
		return nil
	}
}

// WithTypes restricts generation to annotated types matching one of the wildcard patterns.
func WithTypes(patterns ...string) Option {
	return func(c *codegen.Config) error {
		c.Types = append(c.Types, patterns...)
		return nil
	}
}

// WithAdapters sets the adapter selection used by directives that do not name their own, e.g. "+yaml,-sql".
func WithAdapters(expr ...string) Option {
	return func(c *codegen.Config) error {
		joined := strings.Join(expr, ",")
		if _, err := codegen.SelectAdapters(joined); err != nil {
			return err
		}
		c.Adapters = joined
		return nil
	}
}

func WithCheck() Option {
	return func(c *codegen.Config) error {
		c.Check = true
		return nil
	}
}

func WithFs(fs afero.Fs) Option {
	return func(c *codegen.Config) error {
		if fs == nil {
			return fmt.Errorf("no filesystem given")
		}
		c.Fs = fs
		return nil
	}
}

func applyOptions(cfg *codegen.Config, options ...Option) error {
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(cfg); err != nil {
			return fmt.Errorf("unable to parse option: %w", err)
		}
	}
	return nil
}
