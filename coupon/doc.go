// Package coupon derives reports from in-memory coupon data using the
// declarative operators in package seq: code normalisation, prefix
// selection, grouping codes by discount tier and counting redemptions
// per code.
//
// All inputs are plain slices already resident in memory; every function is
// a pure transformation that leaves its input untouched.
package coupon
