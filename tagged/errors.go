package tagged

import (
	"fmt"
	"reflect"
)

// ConversionError is returned when an external representation (serialized bytes, a database column)
// cannot be converted to or from the payload of a tagged value.
type ConversionError struct {
	// Codec names the adapter that failed, e.g. "json" or "sql".
	Codec string
	// Op is one of "marshal", "unmarshal", "scan" or "value".
	Op string
	// Type is the payload type.
	Type string
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("tagged: %s %s of %s failed", e.Codec, e.Op, e.Type)
	}
	return fmt.Sprintf("tagged: %s %s of %s: %v", e.Codec, e.Op, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func conversionError[V any](codec, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ConversionError{
		Codec: codec,
		Op:    op,
		Type:  reflect.TypeFor[V]().String(),
		Err:   err,
	}
}
