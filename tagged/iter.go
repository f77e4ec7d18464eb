package tagged

import (
	"iter"
	"slices"
)

// Values returns an iterator over the elements of a sequence payload. Ranging over it does not
// modify the wrapper, so it may be ranged over again.
func Values[E any, M any](t Tagged[[]E, M]) iter.Seq[E] {
	return slices.Values(t.value)
}

// All returns an iterator over the index and element pairs of a sequence payload.
func All[E any, M any](t Tagged[[]E, M]) iter.Seq2[int, E] {
	return slices.All(t.value)
}

// Drain moves the sequence out of the wrapper and returns a one-shot iterator over its elements.
// The wrapper is reset to a nil payload immediately. The iterator yields the elements at most once:
// stopping early discards the remaining elements and ranging over it again yields nothing.
func Drain[E any, M any](t *Tagged[[]E, M]) iter.Seq[E] {
	owned := t.Take()
	return func(yield func(E) bool) {
		s := owned
		owned = nil
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}

// WrapAll wraps every raw value under the tag M.
func WrapAll[M any, V any](values []V) []Tagged[V, M] {
	if values == nil {
		return nil
	}
	out := make([]Tagged[V, M], len(values))
	for i, v := range values {
		out[i] = Tagged[V, M]{value: v}
	}
	return out
}

// Collect returns a slice containing the raw values of the tagged values
func Collect[V any, M any](values []Tagged[V, M]) []V {
	if values == nil {
		return nil
	}
	out := make([]V, len(values))
	for i, v := range values {
		out[i] = v.value
	}
	return out
}
