package collection

import "strings"

// AllLabel is the selection label shown for "no category restriction".
const AllLabel = "Tous"

// Predicate reports whether a record should be kept.
type Predicate[T any] func(T) bool

// IsAll reports whether a category selection means "no restriction".
// The empty string, "Tous" and "All" are accepted, ignoring case.
func IsAll(selected string) bool {
	s := strings.TrimSpace(selected)
	return s == "" || strings.EqualFold(s, AllLabel) || strings.EqualFold(s, "All")
}

// InCategory keeps records whose category equals selected exactly, or all
// records when selected is the "all" sentinel.
func InCategory[T any, C ~string](selected string, category func(T) C) Predicate[T] {
	if IsAll(selected) {
		return func(T) bool { return true }
	}
	return func(r T) bool { return string(category(r)) == selected }
}

// MatchesQuery keeps records whose name contains query, ignoring case.
// An empty query keeps everything.
func MatchesQuery[T any](query string, name func(T) string) Predicate[T] {
	q := strings.ToLower(query)
	if q == "" {
		return func(T) bool { return true }
	}
	return func(r T) bool { return strings.Contains(strings.ToLower(name(r)), q) }
}

// Filter is a stable filter over a plain slice. The result is never nil.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
outer:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue outer
			}
		}
		out = append(out, it)
	}
	return out
}
