//go:build !tagged_noyaml

package tagged

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_YAMLMatchesPayload(t *testing.T) {
	tests := []struct {
		name    string
		tagged  any
		payload any
	}{
		{name: "int", tagged: New[userIDTag](42), payload: 42},
		{name: "string", tagged: New[emailTag]("a@b.com"), payload: "a@b.com"},
		{name: "slice", tagged: New[orgTag]([]string{"Alice", "Bob"}), payload: []string{"Alice", "Bob"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := yaml.Marshal(test.tagged)
			require.NoError(t, err)
			expected, err := yaml.Marshal(test.payload)
			require.NoError(t, err)
			require.Equal(t, string(expected), string(got))
		})
	}
}

func Test_YAMLRoundTrip(t *testing.T) {
	type doc struct {
		ID    Tagged[int, userIDTag]   `yaml:"id"`
		Email Tagged[string, emailTag] `yaml:"email"`
		Names Tagged[[]string, orgTag] `yaml:"names"`
	}

	in := doc{
		ID:    New[userIDTag](7),
		Email: New[emailTag]("me@example.com"),
		Names: New[orgTag]([]string{"Alice"}),
	}
	b, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, "id: 7\nemail: me@example.com\nnames:\n    - Alice\n", string(b))

	var out doc
	require.NoError(t, yaml.Unmarshal(b, &out))
	require.True(t, in.ID.Equal(out.ID))
	require.True(t, in.Email.Equal(out.Email))
	require.True(t, in.Names.Equal(out.Names))
}

func Test_YAMLConversionError(t *testing.T) {
	var out struct {
		ID Tagged[int, userIDTag] `yaml:"id"`
	}
	out.ID.Set(3)
	err := yaml.Unmarshal([]byte("id: [1, 2]"), &out)
	require.Error(t, err)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "yaml", convErr.Codec)
	require.Equal(t, 3, out.ID.Get())
}

func Test_YAMLDecodesLikePayload(t *testing.T) {
	type pair struct {
		A int `yaml:"a"`
		B int `yaml:"b"`
	}

	raw := pair{A: 1, B: 2}
	require.NoError(t, yaml.Unmarshal([]byte("a: 5"), &raw))

	p := New[orgTag](pair{A: 1, B: 2})
	require.NoError(t, yaml.Unmarshal([]byte("a: 5"), &p))
	require.Equal(t, raw, p.Get())
}
