package tagged

import (
	"encoding/json"
)

// MarshalJSON encodes the payload exactly as encoding/json would encode V.
func (t Tagged[V, M]) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(t.value)
	if err != nil {
		return nil, conversionError[V]("json", "marshal", err)
	}
	return b, nil
}

// UnmarshalJSON decodes data into a copy of the payload the way a V would decode it, so null is a no-op and
// objects merge into the existing fields. On failure the payload is left unchanged.
func (t *Tagged[V, M]) UnmarshalJSON(data []byte) error {
	v := t.value
	if err := json.Unmarshal(data, &v); err != nil {
		return conversionError[V]("json", "unmarshal", err)
	}
	t.value = v
	return nil
}

// ToJSON encodes the payload as a JSON string.
func (t Tagged[V, M]) ToJSON() (string, error) {
	b, err := t.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToJSONPretty encodes the payload as an indented JSON string.
func (t Tagged[V, M]) ToJSONPretty() (string, error) {
	b, err := json.MarshalIndent(t.value, "", "  ")
	if err != nil {
		return "", conversionError[V]("json", "marshal", err)
	}
	return string(b), nil
}

// FromJSON decodes a JSON document into a tagged value:
//
//	id, err := tagged.FromJSON[UserID, int]("42")
func FromJSON[M any, V any](data string) (Tagged[V, M], error) {
	var t Tagged[V, M]
	if err := t.UnmarshalJSON([]byte(data)); err != nil {
		return Tagged[V, M]{}, err
	}
	return t, nil
}
