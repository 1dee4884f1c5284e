// Package seq provides pure, generic higher-order operations over slices —
// map, filter, reduce/fold, group-by, count-by and companions — together
// with a fluent, type-preserving [Seq] pipeline wrapper.
//
// # Purity
//
// Every function and method returns freshly allocated output and never
// mutates its input. Inputs can therefore be shared freely between calls
// and across goroutines without copying or locking.
//
// # Standalone functions vs the fluent wrapper
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type (Map, Reduce, GroupBy, …) are
// package-level functions over plain slices. The [Seq] wrapper covers the
// type-preserving part of a chain; drop back to the package-level functions
// when the element type changes:
//
//	active := seq.Of("summer10", "spring5", "sun20").
//	    Filter(func(code string, _ int) bool {
//	        return strings.HasPrefix(code, "su")
//	    }).
//	    All()
//	upper := seq.Map(active, func(code string, _ int) string {
//	    return strings.ToUpper(code)
//	})
//
// # Callback conventions
//
// Element callbacks receive (item, index); key extractors receive only the
// item. Folds come in a seeded form ([Reduce]) and an unseeded form ([Fold])
// where the first element becomes the accumulator.
package seq
