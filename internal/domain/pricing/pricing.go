package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeGST = errors.New("gst percent cannot be negative")

var hundred = decimal.NewFromInt(100)

// GSTPercent is a non-negative tax rate. No upper bound is enforced.
type GSTPercent struct {
	value decimal.Decimal
}

func NewGSTPercent(p decimal.Decimal) (GSTPercent, error) {
	if p.IsNegative() {
		return GSTPercent{}, ErrNegativeGST
	}
	return GSTPercent{value: p}, nil
}

func (g GSTPercent) Value() decimal.Decimal { return g.value }

func GSTAmount(subtotal decimal.Decimal, pct GSTPercent) decimal.Decimal {
	return subtotal.Mul(pct.value).Div(hundred)
}

type Input struct {
	ItemTotal          decimal.Decimal
	BillDiscount       decimal.Decimal
	MembershipDiscount decimal.Decimal
	GST                GSTPercent
}

type Breakdown struct {
	ItemTotal          decimal.Decimal
	MembershipDiscount decimal.Decimal
	BillDiscount       decimal.Decimal
	Subtotal           decimal.Decimal
	GSTPercent         decimal.Decimal
	GSTAmount          decimal.Decimal
	FinalTotal         decimal.Decimal
}

// Project derives the totals. The bill discount comes off first, then the
// membership discount, each step floored at zero.
func Project(in Input) Breakdown {
	afterBill := floor(in.ItemTotal.Sub(in.BillDiscount))
	subtotal := floor(afterBill.Sub(in.MembershipDiscount))
	gst := GSTAmount(subtotal, in.GST)
	return Breakdown{
		ItemTotal:          in.ItemTotal,
		MembershipDiscount: in.MembershipDiscount,
		BillDiscount:       in.BillDiscount,
		Subtotal:           subtotal,
		GSTPercent:         in.GST.value,
		GSTAmount:          gst,
		FinalTotal:         subtotal.Add(gst),
	}
}

func floor(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
