package coupon

import (
	"strings"

	"couponkit/seq"
)

// Coupon assigns a code to a discount tier. Tiers are opaque strings; the
// package never interprets them numerically.
type Coupon struct {
	Code     string
	Discount string
}

// Redemption records one use of a coupon code by an order. The order
// reference identifies the redemption but carries no weight in any
// aggregation.
type Redemption struct {
	Order string
	Code  string
}

// NormalizeCodes upper-cases every code, preserving length and order.
func NormalizeCodes(codes []string) []string {
	return seq.Map(codes, func(code string, _ int) string {
		return strings.ToUpper(code)
	})
}

// CodesWithPrefix keeps the codes whose original form starts with prefix and
// returns them normalised, in their original relative order.
func CodesWithPrefix(codes []string, prefix string) []string {
	matched := seq.Filter(codes, func(code string, _ int) bool {
		return strings.HasPrefix(code, prefix)
	})
	return NormalizeCodes(matched)
}

// GroupCodesByDiscount maps each discount tier to the codes assigned to it.
// Codes appear in the order their coupons were first encountered and are not
// deduplicated, so every input coupon contributes to exactly one tier.
func GroupCodesByDiscount(coupons []Coupon) map[string][]string {
	groups := seq.GroupBy(coupons, func(c Coupon) string { return c.Discount })
	out := make(map[string][]string, len(groups))
	for tier, members := range groups {
		out[tier] = seq.Pluck(members, func(c Coupon) string { return c.Code })
	}
	return out
}

// CountRedemptions counts how many times each code was redeemed.
// The sum of all counts equals the number of redemptions.
func CountRedemptions(redemptions []Redemption) map[string]int {
	return seq.CountBy(redemptions, func(r Redemption) string { return r.Code })
}

// DistinctCodes returns the codes present in coupons with duplicates
// removed, keeping first-occurrence order.
func DistinctCodes(coupons []Coupon) []string {
	return seq.Unique(seq.Pluck(coupons, func(c Coupon) string { return c.Code }))
}
