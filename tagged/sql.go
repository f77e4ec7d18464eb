//go:build !tagged_nosql

package tagged

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"reflect"
)

var (
	_ sql.Scanner   = (*Tagged[int, struct{}])(nil)
	_ driver.Valuer = Tagged[int, struct{}]{}
)

var errNull = errors.New("cannot scan NULL into a non-nilable value")

// Scan populates the payload from a single column. A payload implementing sql.Scanner scans itself,
// otherwise the standard database/sql conversion rules apply. NULL is only accepted by nilable
// payloads (pointers, slices, maps and interfaces).
func (t *Tagged[V, M]) Scan(src any) error {
	var v V
	if s, ok := any(&v).(sql.Scanner); ok {
		if err := s.Scan(src); err != nil {
			return conversionError[V]("sql", "scan", err)
		}
		t.value = v
		return nil
	}

	if src == nil {
		if !nilable[V]() {
			return conversionError[V]("sql", "scan", errNull)
		}
		t.value = v
		return nil
	}

	var n sql.Null[V]
	if err := n.Scan(src); err != nil {
		return conversionError[V]("sql", "scan", err)
	}
	t.value = n.V
	return nil
}

// Value returns the payload as a driver value, using V's own driver.Valuer when it has one.
func (t Tagged[V, M]) Value() (driver.Value, error) {
	v, err := driver.DefaultParameterConverter.ConvertValue(t.value)
	if err != nil {
		return nil, conversionError[V]("sql", "value", err)
	}
	return v, nil
}

func nilable[V any]() bool {
	switch reflect.TypeFor[V]().Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}
