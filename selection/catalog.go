// Package selection implements typed option catalogs, selection coordinators and picker sessions.
//
// A Catalog lists what can be picked, a Coordinator holds what is currently picked and notifies
// subscribers, and a Session is one picker interaction that reports at most one result to its
// Coordinator. Pickers and their owner never reference each other directly.
package selection

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Entry is a single selectable option.
type Entry[T any] struct {
	Key   string
	Value T
}

// Catalog is an immutable, ordered list of options addressable by key.
type Catalog[T any] struct {
	entries []Entry[T]
	index   map[string]int
}

// NewCatalog builds a catalog preserving the order of entries.
// Keys must be non-empty and unique.
func NewCatalog[T any](entries ...Entry[T]) (*Catalog[T], error) {
	c := &Catalog[T]{
		entries: make([]Entry[T], 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if e.Key == "" {
			return nil, ErrEmptyKey
		}

		if _, exists := c.index[e.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}

		c.index[e.Key] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid input. Intended for static tables.
func MustCatalog[T any](entries ...Entry[T]) *Catalog[T] {
	return lo.Must(NewCatalog(entries...))
}

// KeyedBy builds entries from keys, using the key itself as the value.
func KeyedBy(keys ...string) []Entry[string] {
	return lo.Map(keys, func(k string, _ int) Entry[string] {
		return Entry[string]{Key: k, Value: k}
	})
}

// Lookup returns the value stored under key, or None if the key is absent.
func (c *Catalog[T]) Lookup(key string) mo.Option[T] {
	i, ok := c.index[key]
	if !ok {
		return mo.None[T]()
	}

	return mo.Some(c.entries[i].Value)
}

// Entries returns a copy of all entries in construction order.
func (c *Catalog[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns all keys in construction order.
func (c *Catalog[T]) Keys() []string {
	return lo.Map(c.entries, func(e Entry[T], _ int) string {
		return e.Key
	})
}

func (c *Catalog[T]) Len() int {
	return len(c.entries)
}

func (c *Catalog[T]) Contains(key string) bool {
	_, ok := c.index[key]
	return ok
}

// IndexOf returns the position of key, or -1.
func (c *Catalog[T]) IndexOf(key string) int {
	if i, ok := c.index[key]; ok {
		return i
	}
	return -1
}

// Closest returns the key with the smallest edit distance to key.
// Ties resolve to the earlier entry.
func (c *Catalog[T]) Closest(key string) mo.Option[string] {
	if len(c.entries) == 0 {
		return mo.None[string]()
	}

	closest := lo.MinBy(c.Keys(), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return mo.Some(closest)
}

// Filter returns entries whose key fuzzily matches query, case-insensitively.
// An empty query matches everything.
func (c *Catalog[T]) Filter(query string) []Entry[T] {
	if query == "" {
		return c.Entries()
	}

	return lo.Filter(c.entries, func(e Entry[T], _ int) bool {
		return fuzzy.MatchFold(query, e.Key)
	})
}
