//go:build !tagged_nomsgpack

package tagged

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Tagged[int, struct{}]{}
	_ msgpack.CustomDecoder = (*Tagged[int, struct{}])(nil)
)

func (t Tagged[V, M]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.Encode(t.value); err != nil {
		return conversionError[V]("msgpack", "marshal", err)
	}
	return nil
}

func (t *Tagged[V, M]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v := t.value
	if err := dec.Decode(&v); err != nil {
		return conversionError[V]("msgpack", "unmarshal", err)
	}
	t.value = v
	return nil
}
