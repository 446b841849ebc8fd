package sorters

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collateLister adapts a slice and key accessor to collate.Lister.
type collateLister[T any] struct {
	items []T
	key   func(T) string
}

func (l collateLister[T]) Len() int           { return len(l.items) }
func (l collateLister[T]) Swap(i, j int)      { l.items[i], l.items[j] = l.items[j], l.items[i] }
func (l collateLister[T]) Bytes(i int) []byte { return []byte(l.key(l.items[i])) }

// Collate returns a Func that sorts with an English, case-insensitive
// x/text collator. The collator is built once here and reused by every
// call, so the returned Func must not be called concurrently.
func Collate[T any]() Func[T] {
	c := collate.New(language.English, collate.IgnoreCase)
	return func(items []T, key func(T) string) []T {
		out := make([]T, len(items))
		copy(out, items)
		c.Sort(collateLister[T]{items: out, key: key})
		return out
	}
}
