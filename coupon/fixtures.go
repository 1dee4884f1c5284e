package coupon

import "github.com/google/uuid"

// SampleCoupons returns the canonical five-coupon data set used by the
// demonstration program and the documentation examples.
func SampleCoupons() []Coupon {
	return []Coupon{
		{Code: "A", Discount: "1"},
		{Code: "B", Discount: "2"},
		{Code: "C", Discount: "1"},
		{Code: "E", Discount: "2"},
		{Code: "F", Discount: "1"},
	}
}

// SampleRedemptions returns the canonical five-redemption data set.
func SampleRedemptions() []Redemption {
	return []Redemption{
		{Order: "ASDF-123456", Code: "A"},
		{Order: "ASDF-123457", Code: "B"},
		{Order: "ASDF-123458", Code: "B"},
		{Order: "ASDF-123459", Code: "A"},
		{Order: "ASDF-123451", Code: "B"},
	}
}

// RandomRedemptions builds n synthetic redemptions with UUID order
// references, cycling through codes. Returns nil when n <= 0 or codes is
// empty.
func RandomRedemptions(n int, codes []string) []Redemption {
	if n <= 0 || len(codes) == 0 {
		return nil
	}
	out := make([]Redemption, n)
	for i := range out {
		out[i] = Redemption{
			Order: uuid.NewString(),
			Code:  codes[i%len(codes)],
		}
	}
	return out
}
