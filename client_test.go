package newtype

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/newtype/pkg/codegen"
)

const idsSrc = `package ids

//newtype:tagged
type UserID struct{ id int }

//newtype:tagged +yaml
type Names struct{ names []string }
`

func getDummyPackage(t *testing.T, dir string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("unable to create dir: %+v", err)
	}
	if err := afero.WriteFile(fs, filepath.Join(dir, "ids.go"), []byte(idsSrc), 0o644); err != nil {
		t.Fatalf("unable to write file: %+v", err)
	}
	return fs
}

func TestGenerate(t *testing.T) {
	fs := getDummyPackage(t, "/src/ids")

	files, err := Generate(context.Background(), "/src", WithFs(fs), WithRecursive())
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f.Path))
	}
	assert.Equal(t, []string{"ids_tagged_gen.go", "ids_tagged_json_gen.go", "ids_tagged_yaml_gen.go", "ids_tagged_sql_gen.go"}, names)

	_, err = Generate(context.Background(), "/src", WithFs(fs), WithRecursive(), WithCheck())
	require.NoError(t, err)

	// dropping the adapter selects fewer files, which check mode reports
	_, err = Generate(context.Background(), "/src", WithFs(fs), WithRecursive(), WithCheck(), WithAdapters("-sql"))
	assert.ErrorIs(t, err, codegen.ErrStale)
}

func TestGenerate_Options(t *testing.T) {
	fs := getDummyPackage(t, "/src")

	files, err := Generate(context.Background(), "/src", WithFs(fs), WithTypes("User*"), WithAdapters("json"))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, []string{"UserID"}, files[0].Types)

	_, err = Generate(context.Background(), "/src", WithFs(fs), WithInclude("other/*.go"))
	require.NoError(t, err)
	// nothing selected means the previous output is no longer wanted
	exists, err := afero.Exists(fs, "/src/ids_tagged_gen.go")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = Generate(context.Background(), "/src", WithFs(fs), WithAdapters("+toml"))
	assert.ErrorContains(t, err, "unable to parse option")

	_, err = Generate(context.Background(), "/src", WithFs(nil))
	assert.Error(t, err)
}

func TestGenerateWithAdapters(t *testing.T) {
	fs := getDummyPackage(t, "/src")

	files, err := GenerateWithAdapters(context.Background(), "/src", "cql", WithFs(fs))
	require.NoError(t, err)

	var adapters []string
	for _, f := range files {
		adapters = append(adapters, f.Adapter)
	}
	assert.Equal(t, []string{"", "json", "yaml", "sql", "cql"}, adapters)
}

func TestApplyOptions(t *testing.T) {
	cfg := codegen.Config{Dir: "."}
	require.NoError(t, applyOptions(&cfg, nil, WithRecursive(), WithCheck(), WithInclude("a/**/*.go"), WithTypes("A", "B")))
	assert.Equal(t, codegen.Config{
		Dir:       ".",
		Recursive: true,
		Check:     true,
		Include:   []string{"a/**/*.go"},
		Types:     []string{"A", "B"},
	}, cfg)
}

func TestDefaultExecutionContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ec := DefaultExecutionContext(ctx)
	assert.Equal(t, ctx, ec.Context())
	assert.NotNil(t, ec.Fs())
	assert.NotNil(t, DefaultExecutionContext().Context())

	assert.Panics(t, func() {
		DefaultExecutionContext(ctx, ctx)
	})
}
