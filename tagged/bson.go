//go:build !tagged_nobson

package tagged

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var (
	_ bson.ValueMarshaler   = Tagged[int, struct{}]{}
	_ bson.ValueUnmarshaler = (*Tagged[int, struct{}])(nil)
)

// MarshalBSONValue encodes the payload as a single BSON value.
func (t Tagged[V, M]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	typ, data, err := bson.MarshalValue(t.value)
	if err != nil {
		return 0, nil, conversionError[V]("bson", "marshal", err)
	}
	return typ, data, nil
}

// UnmarshalBSONValue decodes a single BSON value as a V.
func (t *Tagged[V, M]) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	v := t.value
	if err := (bson.RawValue{Type: typ, Value: data}).Unmarshal(&v); err != nil {
		return conversionError[V]("bson", "unmarshal", err)
	}
	t.value = v
	return nil
}
