package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"
	"github.com/spf13/afero"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/anchore/newtype/pkg/event"
	"github.com/anchore/newtype/runtime"
)

// Generator expands annotated single-field structs into wrapper types backed by tagged.Tagged
type Generator struct {
	cfg Config
}

// NewGenerator validates the configuration and returns a Generator for it
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if _, err := SelectAdapters(cfg.Adapters); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Generate processes every discovered package and returns the files produced. Packages holding rejected
// declarations are skipped and their rejections returned together once all packages are processed.
// In check mode nothing is written and ErrStale is returned when any file differs from disk.
func (g *Generator) Generate(ec runtime.ExecutionContext) ([]File, error) {
	pkgs, err := DiscoverPackages(ec.Fs(), g.cfg)
	if err != nil {
		return nil, err
	}
	ec.Log().Debugf("discovered %d package directories under %s", len(pkgs), g.cfg.Dir)

	prog := progress.NewManual(int64(len(pkgs)))
	defer prog.SetCompleted()
	ec.Publisher().Publish(partybus.Event{
		Type:   event.GenerationStarted,
		Source: g.cfg.Dir,
		Value:  progress.Progressable(prog),
	})

	var files []File
	var errs error
	for _, pkg := range pkgs {
		err := ec.Executor().Execute(func() error {
			out, err := g.generatePackage(ec, pkg)
			files = append(files, out...)
			return err
		})
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		prog.Increment()
		if ec.Context().Err() != nil {
			break
		}
	}

	if g.cfg.Check {
		var stale []string
		for _, f := range files {
			if f.Stale || f.Removed {
				stale = append(stale, f.Path)
			}
		}
		if len(stale) > 0 {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", ")))
		}
	}

	return files, errs
}

func (g *Generator) generatePackage(ec runtime.ExecutionContext, pkg *PackageInfo) ([]File, error) {
	if len(pkg.Files) == 0 && len(pkg.Generated) == 0 {
		return nil, nil
	}
	fs := ec.Fs()

	structs, err := ParsePackage(fs, pkg)
	if err != nil {
		return nil, err
	}
	structs = FilterTypes(structs, g.cfg.Types)

	files, err := Render(pkg, structs, g.cfg.Adapters)
	if err != nil {
		return nil, err
	}

	produced := strset.New()
	for i := range files {
		f := &files[i]
		produced.Add(f.Path)
		if err := g.sync(ec, f); err != nil {
			return nil, err
		}
		publishFile(ec, f)
	}

	for _, path := range pkg.Generated {
		if produced.Has(path) {
			continue
		}
		owned, err := ownedByGenerator(fs, path)
		if err != nil {
			return nil, err
		}
		if !owned {
			ec.Log().Debugf("leaving %s in place, it was not written by newtype", path)
			continue
		}

		f := File{Path: path, Package: pkg.Name, Removed: true}
		if !g.cfg.Check {
			if err := fs.Remove(path); err != nil {
				return nil, fmt.Errorf("unable to remove stale file %q: %w", path, err)
			}
			ec.Log().Infof("removed %s", path)
		}
		publishFile(ec, &f)
		files = append(files, f)
	}

	if len(structs) > 0 {
		ec.Log().Infof("package %s: %d tagged types, %d files", pkg.Name, len(structs), len(produced.List()))
	}
	return files, nil
}

// sync compares the rendered file with what is on disk and writes it when it differs (outside of check mode)
func (g *Generator) sync(ec runtime.ExecutionContext, f *File) error {
	fs := ec.Fs()
	existing, err := afero.ReadFile(fs, f.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		existing = nil
	case err != nil:
		return fmt.Errorf("unable to read %q: %w", f.Path, err)
	case bytes.Equal(existing, f.Content):
		ec.Log().Debugf("up to date: %s", f.Path)
		return nil
	}

	if g.cfg.Check {
		f.Stale = true
		f.Diff = Diff(f.Path, existing, f.Content)
		return nil
	}

	tmp := f.Path + ".tmp"
	ec.RegisterCleanup(func() error {
		if ok, _ := afero.Exists(fs, tmp); ok {
			return fs.Remove(tmp)
		}
		return nil
	})
	if err := afero.WriteFile(fs, tmp, f.Content, 0o644); err != nil {
		return fmt.Errorf("unable to write %q: %w", tmp, err)
	}
	if err := fs.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("unable to move %q into place: %w", f.Path, err)
	}
	ec.Log().Debugf("wrote %s", f.Path)
	return nil
}

func ownedByGenerator(fs afero.Fs, path string) (bool, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return false, fmt.Errorf("unable to read %q: %w", path, err)
	}
	return bytes.HasPrefix(content, []byte(header)), nil
}

func publishFile(ec runtime.ExecutionContext, f *File) {
	ec.Publisher().Publish(partybus.Event{
		Type:   event.FileGenerated,
		Source: f.Path,
		Value: event.GeneratedFile{
			Path:    f.Path,
			Package: f.Package,
			Types:   f.Types,
			Stale:   f.Stale,
			Removed: f.Removed,
		},
	})
}
