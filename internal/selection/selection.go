package selection

// Value holds an arbitrary value with associated tags
type Value[T any] struct {
	Value T
	Tags  []string
}

// HasTag indicates the Value has a tag matching one or more of the provided arguments
func (t Value[T]) HasTag(tags ...string) bool {
	for _, tag := range tags {
		for _, existing := range t.Tags {
			if tag == existing {
				return true
			}
		}
	}
	return false
}

// New returns a tagged value, that can be added to a Values collection
func New[T any](value T, tags ...string) Value[T] {
	return Value[T]{
		Value: value,
		Tags:  tags,
	}
}

// Values is a utility to handle a set of tagged items including basic filtering
type Values[T any] []Value[T]

// HasTag indicates one or more Values within this set has a tag matching one or more of the provided arguments
func (t Values[T]) HasTag(tags ...string) bool {
	for _, v := range t {
		if v.HasTag(tags...) {
			return true
		}
	}
	return false
}

// Select returns a new set of Values matching any of the provided tags or all values if no tags provided
func (t Values[T]) Select(tags ...string) Values[T] {
	if len(tags) == 0 {
		return t
	}
	out := make(Values[T], 0, len(t))
	for _, v := range t {
		if v.HasTag(tags...) {
			out = append(out, v)
		}
	}
	return out
}

// Remove returns a new set of Values that do not match any of the provided tags
func (t Values[T]) Remove(tags ...string) Values[T] {
	if len(tags) == 0 {
		return t
	}
	out := make(Values[T], 0, len(t))
	for _, v := range t {
		if !v.HasTag(tags...) {
			out = append(out, v)
		}
	}
	return out
}

// Collect returns a slice containing the values in the set
func (t Values[T]) Collect() []T {
	out := make([]T, len(t))
	for i, v := range t {
		out[i] = v.Value
	}
	return out
}

// Join adds the provided values to a new set and returns the new set, skipping values already present in the
// receiver or earlier in values. Values are compared with ==, so T must be comparable at runtime (use pointers
// for structs holding slices).
func (t Values[T]) Join(values ...Value[T]) Values[T] {
	if len(values) == 0 {
		return t
	}
	out := make(Values[T], 0, len(t)+len(values))
	out = append(out, t...)
next:
	for _, value := range values {
		// check if already present and skip if so
		for _, existing := range out {
			if any(existing.Value) == any(value.Value) {
				continue next
			}
		}
		out = append(out, value)
	}
	return out
}
