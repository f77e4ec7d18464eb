package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml"

	"github.com/anchore/newtype"
	"github.com/anchore/newtype/internal/log"
)

const localConfigName = ".newtype.toml"

// fileConfig holds the settings a config file may provide; flags take precedence
type fileConfig struct {
	Recursive bool     `toml:"recursive"`
	Include   []string `toml:"include"`
	Types     []string `toml:"types"`
	Adapters  string   `toml:"adapters"`
}

// options merges the file settings with the flags, a flag replacing the file value it corresponds to
func (c fileConfig) options(flags *Config) []newtype.Option {
	var opts []newtype.Option
	if flags.Recursive || c.Recursive {
		opts = append(opts, newtype.WithRecursive())
	}

	include := splitList(flags.Include)
	if len(include) == 0 {
		include = c.Include
	}
	if len(include) > 0 {
		opts = append(opts, newtype.WithInclude(include...))
	}

	types := splitList(flags.Types)
	if len(types) == 0 {
		types = c.Types
	}
	if len(types) > 0 {
		opts = append(opts, newtype.WithTypes(types...))
	}

	adapters := flags.Adapters
	if adapters == "" {
		adapters = c.Adapters
	}
	if adapters != "" {
		opts = append(opts, newtype.WithAdapters(adapters))
	}

	if flags.Check {
		opts = append(opts, newtype.WithCheck())
	}
	return opts
}

// loadFileConfig reads the explicit config file when given, else the user config file, else the one in dir.
// A missing implicit config file is not an error.
func loadFileConfig(explicit, dir string) (fileConfig, error) {
	path, err := findConfigFile(explicit, dir)
	if err != nil || path == "" {
		return fileConfig{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("unable to read config %q: %w", path, err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("unable to parse config %q: %w", path, err)
	}
	log.Debugf("using config: %s", path)
	return cfg, nil
}

func findConfigFile(explicit, dir string) (string, error) {
	if explicit != "" {
		path, err := homedir.Expand(explicit)
		if err != nil {
			return "", fmt.Errorf("unable to expand path=%q: %w", explicit, err)
		}
		return path, nil
	}

	if path, err := xdg.SearchConfigFile(filepath.Join("newtype", "config.toml")); err == nil {
		return path, nil
	}

	local := filepath.Join(dir, localConfigName)
	if _, err := os.Stat(local); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return local, nil
}
