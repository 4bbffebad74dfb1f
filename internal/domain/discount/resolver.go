package discount

import "github.com/shopspring/decimal"

// BillDiscount is the flat reduction contributed by a voucher or manual selection.
func BillDiscount(sel Selection) decimal.Decimal {
	switch s := sel.(type) {
	case Voucher:
		return s.amount
	case Manual:
		return s.amount
	default:
		return decimal.Zero
	}
}

// MembershipDiscount sums the first min(free, units) entries of unitPrices, which
// must be sorted highest first. Line discounts play no part here.
func MembershipDiscount(sel Selection, unitPrices []decimal.Decimal) decimal.Decimal {
	m, ok := sel.(Membership)
	if !ok {
		return decimal.Zero
	}
	n := min(m.freeRemaining, len(unitPrices))
	total := decimal.Zero
	for _, p := range unitPrices[:n] {
		total = total.Add(p)
	}
	return total
}

// FreeServicesUsed is the number of free credits a submission consumes.
func FreeServicesUsed(sel Selection, totalUnits int) int {
	m, ok := sel.(Membership)
	if !ok {
		return 0
	}
	return min(m.freeRemaining, totalUnits)
}

// CapReached reports whether a membership selection blocks adding another unit.
func CapReached(sel Selection, totalUnits int) bool {
	m, ok := sel.(Membership)
	return ok && totalUnits >= m.freeRemaining
}
