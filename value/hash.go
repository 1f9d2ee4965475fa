package value

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// HashAny derives a deterministic hash for an arbitrary column or row
// value. It hashes the value's string representation, the same
// simplification the teacher's fact-hashing takes for ground terms:
// "hash the string representation for simplicity; a more efficient term
// hashing would be preferable in production." Bucket collisions are
// resolved by a final Equal check, so a weaker hash only costs probes,
// never correctness.
func HashAny(v any) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T|%v", v, v)
	return h.Sum64()
}

// HashRow combines the per-column hashes of a row into one row hash, used
// by the row-uniqueness set.
func HashRow(row []any) uint64 {
	h := fnv.New64a()
	for _, col := range row {
		fmt.Fprintf(h, "%T|%v|", col, col)
	}
	return h.Sum64()
}

// Equal reports whether two column values are equal. Comparable dynamic
// types are compared with ==; anything else (slices, maps, funcs) falls
// back to reflect.DeepEqual.
func Equal(a, b any) bool {
	if isComparable(a) && isComparable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

// EqualRow reports whether two rows of equal arity hold equal values in
// every column.
func EqualRow(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
