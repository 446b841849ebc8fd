package sorters

import "golang.org/x/exp/slices"

// StableFunc sorts with x/exp/slices.SortStableFunc on a clone of items.
func StableFunc[T any](items []T, key func(T) string) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return Compare(key(a), key(b))
	})
	return out
}
