package tagged

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

func Test_JSONMatchesPayload(t *testing.T) {
	tests := []struct {
		name    string
		tagged  any
		payload any
	}{
		{name: "int", tagged: New[userIDTag](42), payload: 42},
		{name: "string", tagged: New[emailTag]("a@b.com"), payload: "a@b.com"},
		{name: "float", tagged: New[orgTag](0.5), payload: 0.5},
		{name: "slice", tagged: New[orgTag]([]string{"Alice", "Bob"}), payload: []string{"Alice", "Bob"}},
		{name: "nil slice", tagged: New[orgTag]([]string(nil)), payload: []string(nil)},
		{name: "map", tagged: New[orgTag](map[string]int{"a": 1}), payload: map[string]int{"a": 1}},
		{name: "pointer", tagged: ptr(New[userIDTag](3)), payload: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := json.Marshal(test.tagged)
			require.NoError(t, err)
			expected, err := json.Marshal(test.payload)
			require.NoError(t, err)
			require.Equal(t, string(expected), string(got))
		})
	}
}

func Test_JSONStruct(t *testing.T) {
	type withIDs struct {
		ID    Tagged[string, user]   `json:"id"`
		Email Tagged[string, user]   `json:"email"`
		Count Tagged[int, userIDTag] `json:"count,omitempty"`
	}

	in := withIDs{ID: New[user]("1"), Email: New[user]("me@example.com")}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	// omitempty has no effect on structs, the zero payload is still written
	require.JSONEq(t, `{"id":"1","email":"me@example.com","count":0}`, string(b))

	var out withIDs
	require.NoError(t, json.Unmarshal(b, &out))
	if diff := deep.Equal(in, out); diff != nil {
		t.Errorf("unexpected round trip: %+v", diff)
	}
}

func Test_JSONRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -7, 1 << 30} {
		in := New[userIDTag](v)
		b, err := json.Marshal(in)
		require.NoError(t, err)

		var out UserID
		require.NoError(t, json.Unmarshal(b, &out))
		require.Equal(t, in, out)
	}
}

func Test_JSONHelpers(t *testing.T) {
	id, err := FromJSON[userIDTag, int]("42")
	require.NoError(t, err)
	require.Equal(t, 42, id.Get())

	s, err := id.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "42", s)

	names := New[orgTag]([]string{"a"})
	pretty, err := names.ToJSONPretty()
	require.NoError(t, err)
	require.Equal(t, "[\n  \"a\"\n]", pretty)
}

func Test_JSONConversionError(t *testing.T) {
	id := New[userIDTag](5)
	err := json.Unmarshal([]byte(`"not a number"`), &id)
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	require.Equal(t, "json", convErr.Codec)
	require.Equal(t, "unmarshal", convErr.Op)
	require.Equal(t, "int", convErr.Type)

	var typeErr *json.UnmarshalTypeError
	require.True(t, errors.As(err, &typeErr))

	// the payload is untouched on failure
	require.Equal(t, 5, id.Get())

	_, err = FromJSON[userIDTag, int]("{")
	require.ErrorAs(t, err, &convErr)

	_, err = New[orgTag](make(chan int)).ToJSON()
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "marshal", convErr.Op)
}

func Test_JSONDecodesLikePayload(t *testing.T) {
	type pair struct{ A, B int }

	tests := []struct {
		name string
		data string
		run  func(t *testing.T, data string)
	}{
		{
			name: "null keeps the payload",
			data: `null`,
			run: func(t *testing.T, data string) {
				raw := 5
				require.NoError(t, json.Unmarshal([]byte(data), &raw))

				id := New[userIDTag](5)
				require.NoError(t, json.Unmarshal([]byte(data), &id))
				require.Equal(t, raw, id.Get())
			},
		},
		{
			name: "objects merge into existing fields",
			data: `{"A":5}`,
			run: func(t *testing.T, data string) {
				raw := pair{A: 1, B: 2}
				require.NoError(t, json.Unmarshal([]byte(data), &raw))

				p := New[orgTag](pair{A: 1, B: 2})
				require.NoError(t, json.Unmarshal([]byte(data), &p))
				require.Equal(t, raw, p.Get())
				require.Equal(t, pair{A: 5, B: 2}, p.Get())
			},
		},
		{
			name: "maps merge into existing keys",
			data: `{"b":2}`,
			run: func(t *testing.T, data string) {
				m := New[orgTag](map[string]int{"a": 1})
				require.NoError(t, json.Unmarshal([]byte(data), &m))
				require.Equal(t, map[string]int{"a": 1, "b": 2}, m.Get())
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.run(t, test.data)
		})
	}
}
