package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/newtype/pkg/codegen"
)

const idsSrc = `package ids

//newtype:tagged
type UserID struct{ id int }
`

// isolate keeps the user's own config file out of the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ids.go"), idsSrc)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &Config{Dir: dir}, &out, nil))
	for _, name := range []string{"ids_tagged_gen.go", "ids_tagged_json_gen.go", "ids_tagged_sql_gen.go"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	require.NoError(t, run(context.Background(), &Config{Check: true}, &out, []string{dir}))
	assert.Empty(t, out.String())

	err := run(context.Background(), &Config{Check: true, Adapters: "+yaml"}, &out, []string{dir})
	require.ErrorIs(t, err, codegen.ErrStale)
	assert.Contains(t, out.String(), "stale")
	assert.Contains(t, out.String(), "ids_tagged_yaml_gen.go")
	assert.NoFileExists(t, filepath.Join(dir, "ids_tagged_yaml_gen.go"))
}

func TestRun_Rejections(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ids.go"), "package ids\n\n//newtype:tagged\ntype Pair struct{ a, b int }\n")

	var out bytes.Buffer
	err := run(context.Background(), &Config{Dir: dir}, &out, nil)
	require.ErrorContains(t, err, "1 declarations rejected")
	assert.Contains(t, out.String(), "Pair: must have exactly one field, has 2")
	assert.NoFileExists(t, filepath.Join(dir, "ids_tagged_gen.go"))
}

func TestRun_Usage(t *testing.T) {
	err := run(context.Background(), &Config{Dir: "a"}, &bytes.Buffer{}, []string{"b"})
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestRun_ListAdapters(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &Config{ListAdapters: true}, &out, nil))
	assert.Contains(t, out.String(), "always built")
	assert.Contains(t, out.String(), "!tagged_nocql")
}

func TestRun_ConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ids.go"), idsSrc)
	writeFile(t, filepath.Join(dir, localConfigName), "adapters = \"msgpack\"\n")

	require.NoError(t, run(context.Background(), &Config{Dir: dir}, &bytes.Buffer{}, nil))
	assert.FileExists(t, filepath.Join(dir, "ids_tagged_msgpack_gen.go"))
	assert.NoFileExists(t, filepath.Join(dir, "ids_tagged_json_gen.go"))
}

func TestLoadFileConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	cfg, err := loadFileConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, cfg)

	explicit := filepath.Join(dir, "custom.toml")
	writeFile(t, explicit, `
recursive = true
include = ["ids/*.go"]
types = ["User*", "Order*"]
adapters = "+yaml"
`)
	cfg, err = loadFileConfig(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, fileConfig{
		Recursive: true,
		Include:   []string{"ids/*.go"},
		Types:     []string{"User*", "Order*"},
		Adapters:  "+yaml",
	}, cfg)

	// flags replace file values
	var merged codegen.Config
	for _, opt := range cfg.options(&Config{Types: "Email", Check: true}) {
		require.NoError(t, opt(&merged))
	}
	assert.Equal(t, codegen.Config{
		Recursive: true,
		Include:   []string{"ids/*.go"},
		Types:     []string{"Email"},
		Adapters:  "+yaml",
		Check:     true,
	}, merged)

	writeFile(t, filepath.Join(dir, "broken.toml"), "adapters = [")
	_, err = loadFileConfig(filepath.Join(dir, "broken.toml"), dir)
	assert.ErrorContains(t, err, "unable to parse config")

	_, err = loadFileConfig(filepath.Join(dir, "missing.toml"), dir)
	assert.ErrorContains(t, err, "unable to read config")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b,"))
	assert.Nil(t, splitList(""))
}

type buffer struct {
	bytes.Buffer
}

func (*buffer) Close() error {
	return nil
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut buffer
	cc := &cli.Context{Out: &out, Err: &errOut, Go: context.Background()}
	err := MainCommand().Run(cc, args)
	return out.String(), errOut.String(), err
}

func TestMainCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ids.go"), idsSrc)

	_, _, err := runCommand(t, "-dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "ids_tagged_gen.go"))

	out, _, err := runCommand(t, "-check", "-dir="+dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = runCommand(t, "-check", "-adapters", "+msgpack", dir)
	require.ErrorIs(t, err, codegen.ErrStale)
	assert.Contains(t, out, "ids_tagged_msgpack_gen.go")
	assert.NoFileExists(t, filepath.Join(dir, "ids_tagged_msgpack_gen.go"))

	_, _, err = runCommand(t, "-types", "Order*", dir)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "ids_tagged_gen.go"))
}

func TestMainCommand_Help(t *testing.T) {
	out, _, err := runCommand(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "synopsis: newtype [opts] [dir...]")
	assert.Contains(t, out, "list-adapters")

	out, _, err = runCommand(t, "-list-adapters")
	require.NoError(t, err)
	assert.Contains(t, out, "always built")
}

func TestMainCommand_UnknownOption(t *testing.T) {
	_, errOut, err := runCommand(t, "-bogus")
	var code cli.ExitCodeErr
	require.ErrorAs(t, err, &code)
	assert.Equal(t, cli.ExitCodeErr(1), code)
	assert.Contains(t, errOut, "synopsis: newtype")
	assert.Contains(t, errOut, `unknown option: "bogus"`)
}

func TestExpandAssignments(t *testing.T) {
	got := expandAssignments(MainCommand(), []string{
		"-dir=a", "--check=false", "-v=true", "-types=x=y", "-unknown=1", "-recursive=maybe", "b", "--", "-dir=c",
	})
	assert.Equal(t, []string{
		"-dir", "a", "-no-check", "-v", "-types", "x=y", "-unknown=1", "-recursive=maybe", "b", "--", "-dir=c",
	}, got)
}
