// Package sorters wraps third-party sort routines behind one signature so
// they can be benchmarked against each other.
//
// Every Func returns a new slice ordered ascending by key and leaves its
// input untouched; the fixture is shared by all benchmark cases.
package sorters

import "strings"

// Func sorts items ascending by the string returned from key.
type Func[T any] func(items []T, key func(T) string) []T

// Variant is a named Func.
type Variant[T any] struct {
	Name string
	Sort Func[T]
}

// Variants returns the sort implementations in benchmark order.
func Variants[T any]() []Variant[T] {
	return []Variant[T]{
		{Name: "gods-arraylist", Sort: ArrayList[T]},
		{Name: "exp-slices", Sort: StableFunc[T]},
		{Name: "text-collate", Sort: Collate[T]()},
	}
}

// Compare orders strings case-insensitively, falling back to byte order
// for strings that differ only in case.
func Compare(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
