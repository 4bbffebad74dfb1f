package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CustomerSource string

const (
	SourceWalkin       CustomerSource = "Walkin"
	SourceGoogle       CustomerSource = "Google"
	SourceReference    CustomerSource = "Reference"
	SourceInstagramAds CustomerSource = "Instagram Ads"
	SourceYouTube      CustomerSource = "YouTube"
)

func (s CustomerSource) IsValid() bool {
	switch s {
	case SourceWalkin, SourceGoogle, SourceReference, SourceInstagramAds, SourceYouTube:
		return true
	default:
		return false
	}
}

// NewCustomerSource maps an empty string to Walkin.
func NewCustomerSource(s string) (CustomerSource, error) {
	if s == "" {
		return SourceWalkin, nil
	}
	src := CustomerSource(s)
	if !src.IsValid() {
		return "", ErrInvalidCustomerSource
	}
	return src, nil
}

type PaymentMethod string

const (
	PaymentNone     PaymentMethod = ""
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentUPI      PaymentMethod = "upi"
	PaymentPayLater PaymentMethod = "pay_later"
)

// NewPaymentMethod accepts the methods an operator can pick; pay_later is derived.
func NewPaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case PaymentNone, PaymentCash, PaymentCard, PaymentUPI:
		return m, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

type Customer struct {
	Name   string
	Phone  string
	Source CustomerSource
}

type Staff struct {
	StaffID      string
	StaffName    string
	BilledByID   string
	BilledByName string
}

func (s Staff) IsSet() bool { return s.StaffID != "" }

type Payment struct {
	Method            PaymentMethod
	CashReceived      *decimal.Decimal
	TransactionNumber string
}

// Summary is the priced view of a transaction.
type Summary struct {
	ItemTotal          decimal.Decimal
	MembershipDiscount decimal.Decimal
	BillDiscount       decimal.Decimal
	Subtotal           decimal.Decimal
	GSTPercent         decimal.Decimal
	GSTAmount          decimal.Decimal
	FinalTotal         decimal.Decimal
	TotalUnits         int
	TotalMinutes       int
	FreeServicesUsed   int
}

const (
	// AppointmentLeadTime is the minimum gap between now and a booked appointment.
	AppointmentLeadTime = 10 * time.Minute

	firstSlotHour = 9
	lastSlotHour  = 22
	slotMinutes   = 30
)

// IsServiceSlot reports whether t falls on a half-hour slot between 09:00 and 22:00
// in its own location.
func IsServiceSlot(t time.Time) bool {
	if t.Second() != 0 || t.Nanosecond() != 0 || t.Minute()%slotMinutes != 0 {
		return false
	}
	h := t.Hour()
	if h == lastSlotHour {
		return t.Minute() == 0
	}
	return h >= firstSlotHour && h < lastSlotHour
}
