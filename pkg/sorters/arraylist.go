package sorters

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

// ArrayList sorts with gods' arraylist.List.Sort.
func ArrayList[T any](items []T, key func(T) string) []T {
	list := arraylist.New()
	for _, item := range items {
		list.Add(item)
	}

	var cmp utils.Comparator = func(a, b interface{}) int {
		return Compare(key(a.(T)), key(b.(T)))
	}
	list.Sort(cmp)

	out := make([]T, 0, list.Size())
	for _, v := range list.Values() {
		out = append(out, v.(T))
	}
	return out
}
