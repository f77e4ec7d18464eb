package tagged

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether two tagged values with a comparable payload are equal. It is equivalent to
// a == b.
func Equal[V comparable, M any](a, b Tagged[V, M]) bool {
	return a.value == b.value
}

// Compare orders two tagged values by their payload, following cmp.Compare.
func Compare[V cmp.Ordered, M any](a, b Tagged[V, M]) int {
	return cmp.Compare(a.value, b.value)
}

// Less reports whether a orders before b, following cmp.Less.
func Less[V cmp.Ordered, M any](a, b Tagged[V, M]) bool {
	return cmp.Less(a.value, b.value)
}

// CompareFunc orders two tagged values with a comparison function over their payloads.
func CompareFunc[V any, M any](a, b Tagged[V, M], fn func(V, V) int) int {
	return fn(a.value, b.value)
}

// Hash returns the hash of the payload; the tag does not contribute, so the result is the same as
// maphash.Comparable(seed, t.Get()).
func Hash[V comparable, M any](seed maphash.Seed, t Tagged[V, M]) uint64 {
	return maphash.Comparable(seed, t.value)
}
