package tagged

import (
	"fmt"
	"reflect"

	gocmp "github.com/google/go-cmp/cmp"
)

// phantom is a zero-size label parameterised by the tag type. It makes Tagged values with different
// tags structurally distinct (so explicit conversion between them is rejected) without adding bytes
// or alignment to the payload.
type phantom[M any] struct{}

// Tagged holds a raw value of type V labelled with the tag type M. The tag exists only for the type
// checker: Tagged[int, UserID] and Tagged[int, OrderID] cannot be assigned, converted or compared to
// one another, while both have exactly the memory layout of an int.
//
// The zero value wraps the zero value of V.
type Tagged[V any, M any] struct {
	_     phantom[M]
	value V
}

// New wraps the raw value under the tag M. The payload type is inferred:
//
//	id := tagged.New[UserID](42) // tagged.Tagged[int, UserID]
func New[M any, V any](value V) Tagged[V, M] {
	return Tagged[V, M]{value: value}
}

// From wraps the raw value under the same tag as the receiver, which lets an alias act as its own
// constructor:
//
//	type Email = tagged.Tagged[string, emailTag]
//	e := Email{}.From("a@b.com")
func (Tagged[V, M]) From(value V) Tagged[V, M] {
	return Tagged[V, M]{value: value}
}

// Get returns the payload without modifying the wrapper.
func (t Tagged[V, M]) Get() V {
	return t.value
}

// Unwrap converts the wrapper back into its raw value.
func (t Tagged[V, M]) Unwrap() V {
	return t.value
}

// Take moves the payload out of the wrapper, leaving the zero value of V behind.
func (t *Tagged[V, M]) Take() V {
	v := t.value
	var zero V
	t.value = zero
	return v
}

// Set replaces the payload.
func (t *Tagged[V, M]) Set(value V) {
	t.value = value
}

// Equal reports whether both payloads are equal. An Equal method on V is honoured, otherwise the
// payloads are compared structurally.
func (t Tagged[V, M]) Equal(other Tagged[V, M]) bool {
	return gocmp.Equal(t.value, other.value, gocmp.Exporter(exportAll))
}

func exportAll(reflect.Type) bool {
	return true
}

// String renders the payload as fmt.Sprint would.
func (t Tagged[V, M]) String() string {
	return fmt.Sprint(t.value)
}

// Format passes every verb, flag, width and precision through to the payload, so the tag never shows
// up in formatted output (including %#v).
func (t Tagged[V, M]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), t.value)
}

// InnerTypeName returns the name of the payload type.
func (t Tagged[V, M]) InnerTypeName() string {
	return reflect.TypeFor[V]().String()
}

func (t Tagged[V, M]) tagged() {}

// Taggable is implemented only by Tagged. Use it as a constraint to require a tagged value where a
// raw primitive would otherwise be accepted:
//
//	func Process[T tagged.Taggable](id T) { ... }
type Taggable interface {
	InnerTypeName() string
	tagged()
}

var _ Taggable = Tagged[int, struct{}]{}
