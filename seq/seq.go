package seq

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to every element and returns a new slice.
// The output has the same length and order as the input.
//
//	upper := seq.Map([]string{"a", "b"}, func(s string, _ int) string {
//	    return strings.ToUpper(s)
//	}) // → ["A", "B"]
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) is true,
// preserving their relative order.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn is false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// FlatMap applies fn to every element (producing a []U each) and flattens
// the results one level into a single slice.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Pluck extracts a single value of type U from every element.
//
//	codes := seq.Pluck(coupons, func(c Coupon) string { return c.Code })
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds items left-to-right into a single value of type U,
// starting from initial.
//
//	sum := seq.Reduce([]int{1, 2, 3, 4}, func(acc, n, _ int) int {
//	    return acc + n
//	}, 0) // → 10
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	acc := initial
	for i, item := range items {
		acc = fn(acc, item, i)
	}
	return acc
}

// Fold folds items left-to-right without an explicit seed: the first
// element becomes the initial accumulator and fn combines the rest into it.
// Returns the zero value and false when items is empty.
func Fold[T any](items []T, fn func(acc, item T) T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	acc := items[0]
	for _, item := range items[1:] {
		acc = fn(acc, item)
	}
	return acc, true
}

// FoldOrFail is like [Fold] but returns [ErrEmptySequence] instead of a
// presence flag when items is empty.
func FoldOrFail[T any](items []T, fn func(acc, item T) T) (T, error) {
	acc, ok := Fold(items, fn)
	if !ok {
		return acc, ErrEmptySequence
	}
	return acc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & counting
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups elements by the comparable key extracted by fn.
// Within each group, elements keep the order they were first encountered in;
// nothing is deduplicated, so every input element lands in exactly one group.
//
//	byTier := seq.GroupBy(coupons, func(c Coupon) string { return c.Discount })
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// CountBy counts elements per comparable key extracted by fn.
// The sum of all counts equals len(items).
func CountBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[fn(item)]++
	}
	return counts
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When several elements share a key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection & sets
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

// Unique returns a new slice with duplicates removed, keeping the first
// occurrence of each value.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Partition splits items into two slices: those satisfying fn and the rest.
// Both halves preserve relative order.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum totals the float64 values extracted by fn.
func Sum[T any](items []T, fn func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += fn(item)
	}
	return total
}
