package discount

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyVoucherCode    = errors.New("voucher code is required")
	ErrNegativeAmount      = errors.New("discount amount cannot be negative")
	ErrEmptyMembershipID   = errors.New("membership id is required")
	ErrMembershipExhausted = errors.New("membership has no free services remaining")
)

// Selection is the single active discount on a transaction. The set of variants is
// closed: None, Voucher, Membership, Manual.
type Selection interface {
	Kind() Kind
	sealed()
}

type None struct{}

func (None) Kind() Kind { return KindNone }
func (None) sealed()    {}

// Voucher pins the bill discount to the amount accepted at apply time.
type Voucher struct {
	code   string
	amount decimal.Decimal
}

func NewVoucher(code string, pinnedAmount decimal.Decimal) (Voucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Voucher{}, ErrEmptyVoucherCode
	}
	if pinnedAmount.IsNegative() {
		return Voucher{}, ErrNegativeAmount
	}
	return Voucher{code: code, amount: pinnedAmount}, nil
}

func (Voucher) Kind() Kind                { return KindVoucher }
func (Voucher) sealed()                   {}
func (v Voucher) Code() string            { return v.code }
func (v Voucher) Amount() decimal.Decimal { return v.amount }

type Membership struct {
	id            string
	planName      string
	freeRemaining int
}

func NewMembership(rec Record) (Membership, error) {
	if rec.ID == "" {
		return Membership{}, ErrEmptyMembershipID
	}
	if rec.RemainingServices <= 0 {
		return Membership{}, ErrMembershipExhausted
	}
	return Membership{id: rec.ID, planName: rec.PlanName, freeRemaining: rec.RemainingServices}, nil
}

func (Membership) Kind() Kind           { return KindMembership }
func (Membership) sealed()              {}
func (m Membership) ID() string         { return m.id }
func (m Membership) PlanName() string   { return m.planName }
func (m Membership) FreeRemaining() int { return m.freeRemaining }

type Manual struct {
	amount decimal.Decimal
}

func NewManual(amount decimal.Decimal) (Manual, error) {
	if amount.IsNegative() {
		return Manual{}, ErrNegativeAmount
	}
	return Manual{amount: amount}, nil
}

func (Manual) Kind() Kind                { return KindManual }
func (Manual) sealed()                   {}
func (m Manual) Amount() decimal.Decimal { return m.amount }

// Record is one membership returned by a phone lookup.
type Record struct {
	ID                string
	PlanName          string
	RemainingServices int
	ExpiresOn         *time.Time
}
