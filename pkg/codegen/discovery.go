package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/anchore/newtype/internal/log"
)

// generatedPatterns match the base names of files this generator writes
var generatedPatterns = []string{"*_tagged_gen.go", "*_tagged_*_gen.go"}

// DiscoverPackages finds the directories under cfg.Dir holding Go files selected by the include patterns.
// Test files and files starting with "_" or "." are never selected. Hidden, vendor and testdata directories
// below the root are skipped.
func DiscoverPackages(fs afero.Fs, cfg Config) ([]*PackageInfo, error) {
	root := filepath.Clean(cfg.Dir)
	includes := cfg.includes()
	for _, pattern := range includes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}

	byDir := make(map[string]*PackageInfo)
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		base := info.Name()
		if info.IsDir() {
			if path == root {
				return nil
			}
			if !cfg.Recursive || skipDir(base) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(base, ".go") || strings.HasSuffix(base, "_test.go") ||
			strings.HasPrefix(base, "_") || strings.HasPrefix(base, ".") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		dir := filepath.Dir(path)
		pkg, ok := byDir[dir]
		if !ok {
			pkg = &PackageInfo{Dir: dir}
			byDir[dir] = pkg
		}

		if isGeneratedName(base) {
			pkg.Generated = append(pkg.Generated, path)
			return nil
		}

		if !matchesInclude(includes, rel) {
			log.Tracef("skipping file not matching include patterns: %s", rel)
			return nil
		}
		pkg.Files = append(pkg.Files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", cfg.Dir, err)
	}

	packages := make([]*PackageInfo, 0, len(byDir))
	for _, pkg := range byDir {
		packages = append(packages, pkg)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Dir < packages[j].Dir
	})
	return packages, nil
}

func skipDir(base string) bool {
	return strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || base == "vendor" || base == "testdata"
}

func matchesInclude(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func isGeneratedName(base string) bool {
	return matchesInclude(generatedPatterns, base)
}
