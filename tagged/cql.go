//go:build !tagged_nocql

package tagged

import (
	"github.com/gocql/gocql"
)

var (
	_ gocql.Marshaler   = Tagged[int, struct{}]{}
	_ gocql.Unmarshaler = (*Tagged[int, struct{}])(nil)
)

// MarshalCQL encodes the payload for a single CQL column using the driver's own codec for V.
func (t Tagged[V, M]) MarshalCQL(info gocql.TypeInfo) ([]byte, error) {
	b, err := gocql.Marshal(info, t.value)
	if err != nil {
		return nil, conversionError[V]("cql", "marshal", err)
	}
	return b, nil
}

// UnmarshalCQL decodes a single CQL column as a V.
func (t *Tagged[V, M]) UnmarshalCQL(info gocql.TypeInfo, data []byte) error {
	v := t.value
	if err := gocql.Unmarshal(info, data, &v); err != nil {
		return conversionError[V]("cql", "unmarshal", err)
	}
	t.value = v
	return nil
}
