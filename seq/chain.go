package seq

import "strings"

// Seq is a fluent, immutable wrapper around a slice of T for
// type-preserving pipelines.
//
// Every transforming method returns a new Seq and leaves the receiver
// untouched, so a Seq can be shared and re-chained safely:
//
//	su := seq.Of("summer10", "spring5", "sun20", "fall15").
//	    Filter(func(code string, _ int) bool {
//	        return strings.HasPrefix(code, "su")
//	    })
//
// Operations that change the element type are package-level functions
// (see the package documentation); use [Seq.All] to hand the elements over:
//
//	upper := seq.Map(su.All(), func(code string, _ int) string {
//	    return strings.ToUpper(code)
//	})
type Seq[T any] struct {
	items []T
}

// Of creates a Seq from a variadic list of elements (copied).
func Of[T any](items ...T) *Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Seq[T]{items: dst}
}

// From creates a Seq from a slice (the slice is copied).
func From[T any](items []T) *Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Seq[T]{items: dst}
}

// Empty creates a Seq of type T with no elements.
func Empty[T any]() *Seq[T] {
	return &Seq[T]{items: []T{}}
}

// All returns a copy of the underlying slice.
func (s *Seq[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of elements.
func (s *Seq[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the Seq contains no elements.
func (s *Seq[T]) IsEmpty() bool { return len(s.items) == 0 }

// Each calls fn(item, index) for every element, in order.
func (s *Seq[T]) Each(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// Filter returns a new Seq with only the elements for which fn(item, index)
// is true, in their original order.
func (s *Seq[T]) Filter(fn func(T, int) bool) *Seq[T] {
	return &Seq[T]{items: Filter(s.items, fn)}
}

// Reject returns a new Seq with the elements for which fn is true removed.
func (s *Seq[T]) Reject(fn func(T, int) bool) *Seq[T] {
	return &Seq[T]{items: Reject(s.items, fn)}
}

// First returns the first element, optionally the first matching fns[0].
// Returns the zero value and false when the Seq is empty or nothing matches.
func (s *Seq[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range s.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[0], true
}

// FirstOrFail returns the first element matching fn, or [ErrNoMatch].
func (s *Seq[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := s.First(fn)
	if !ok {
		return item, ErrNoMatch
	}
	return item, nil
}

// Contains reports whether at least one element satisfies fn.
func (s *Seq[T]) Contains(fn func(T) bool) bool {
	return Contains(s.items, fn)
}

// SumBy totals the float64 values extracted by fn.
func (s *Seq[T]) SumBy(fn func(T) float64) float64 {
	return Sum(s.items, fn)
}

// Join concatenates all elements into a string using sep, converting each
// element with fn.
func (s *Seq[T]) Join(sep string, fn func(T) string) string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}
