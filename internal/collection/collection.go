// Package collection holds ordered, immutable record sequences together with
// the filtering and aggregation helpers computed over them.
//
// A Collection is a value: every effective mutation returns a new value backed
// by a freshly allocated slice and carrying a higher revision, while a no-op
// (unknown identifier, unknown flag) returns the receiver unchanged. Callers
// can therefore detect change by comparing revisions.
package collection

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by Validate when two records share an identifier.
var ErrDuplicateID = errors.New("duplicate record id")

// Record is anything identified by a stable numeric id.
type Record interface {
	RecordID() int64
}

// Collection is an ordered sequence of records of one entity type.
type Collection[T Record] struct {
	items []T
	rev   uint64
}

// New builds a collection from the given records, copying them.
func New[T Record](items ...T) Collection[T] {
	out := make([]T, len(items))
	copy(out, items)
	return Collection[T]{items: out}
}

// Items returns a copy of the records in collection order.
func (c Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c Collection[T]) Len() int {
	return len(c.items)
}

// Revision increases by one on every effective mutation.
func (c Collection[T]) Revision() uint64 {
	return c.rev
}

// Get returns the record with the given id.
func (c Collection[T]) Get(id int64) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Update replaces the record with the given id by fn(record).
// Unknown ids leave the collection unchanged.
func (c Collection[T]) Update(id int64, fn func(T) T) Collection[T] {
	i := c.index(id)
	if i < 0 {
		return c
	}
	next := make([]T, len(c.items))
	copy(next, c.items)
	next[i] = fn(next[i])
	return Collection[T]{items: next, rev: c.rev + 1}
}

// Remove returns a collection without the record with the given id.
// Unknown ids leave the collection unchanged.
func (c Collection[T]) Remove(id int64) Collection[T] {
	i := c.index(id)
	if i < 0 {
		return c
	}
	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	next = append(next, c.items[i+1:]...)
	return Collection[T]{items: next, rev: c.rev + 1}
}

// Toggle flips flag f on the record with the given id.
func (c Collection[T]) Toggle(id int64, f Flag[T]) Collection[T] {
	return c.Update(id, func(r T) T { return f.Set(r, !f.Get(r)) })
}

// ToggleField flips the flag registered under name. Unknown names are ignored.
func (c Collection[T]) ToggleField(id int64, name string, flags FlagSet[T]) Collection[T] {
	f, ok := flags.Lookup(name)
	if !ok {
		return c
	}
	return c.Toggle(id, f)
}

// Filter returns the records matching every predicate, in collection order.
func (c Collection[T]) Filter(preds ...Predicate[T]) []T {
	return Filter(c.items, preds...)
}

// Validate reports duplicate identifiers.
func (c Collection[T]) Validate() error {
	seen := make(map[int64]struct{}, len(c.items))
	for _, it := range c.items {
		id := it.RecordID()
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (c Collection[T]) index(id int64) int {
	for i, it := range c.items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}
