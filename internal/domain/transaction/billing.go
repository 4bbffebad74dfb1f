package transaction

import (
	"time"

	"spa-pos/internal/domain/discount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const billDiscountTypeFlat = "flat"

type BillingLine struct {
	ServiceID       string
	Name            string
	UnitPrice       decimal.Decimal
	Quantity        int
	Discount        decimal.Decimal
	LineTotal       decimal.Decimal
	DurationMinutes int
}

// BillingRecord is the outbound payload for one completed sale.
type BillingRecord struct {
	TransactionID       uuid.UUID
	BranchID            *string
	Customer            Customer
	Staff               Staff
	PaymentMethod       PaymentMethod
	CashReceived        *decimal.Decimal
	TransactionNumber   string
	Lines               []BillingLine
	Summary             Summary
	DiscountKind        discount.Kind
	BillDiscountType    string
	MembershipID        string
	VoucherCode         string
	IsFutureAppointment bool
	AppointmentAt       *time.Time
	ServiceAt           *time.Time
}

// IsValidPhone reports whether s is exactly ten ASCII digits.
func IsValidPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateForSubmit returns SubmitErrors listing every failed rule, or nil.
func (t *Transaction) ValidateForSubmit(now time.Time) error {
	var errs SubmitErrors
	if t.cart.IsEmpty() {
		errs = append(errs, ErrEmptyCart)
	}
	if t.customer.Name == "" {
		errs = append(errs, ErrMissingCustomerName)
	}
	if !IsValidPhone(t.customer.Phone) {
		errs = append(errs, ErrInvalidPhone)
	}
	if !t.staff.IsSet() {
		errs = append(errs, ErrMissingStaff)
	}
	if t.serviceAt == nil {
		errs = append(errs, ErrMissingServiceTime)
	}
	if t.appointment != nil && !t.appointment.After(now) {
		errs = append(errs, ErrAppointmentInPast)
	}
	if t.payment.Method == PaymentNone && !t.paymentWaived() {
		errs = append(errs, ErrMissingPaymentMethod)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// paymentWaived covers bookings and sales fully settled by a voucher or membership.
func (t *Transaction) paymentWaived() bool {
	switch t.selection.Kind() {
	case discount.KindVoucher, discount.KindMembership:
		return true
	}
	return t.appointment != nil
}

func (t *Transaction) BillingRecord() BillingRecord {
	lines := t.cart.Lines()
	out := make([]BillingLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, BillingLine{
			ServiceID:       l.ServiceID(),
			Name:            l.Name(),
			UnitPrice:       l.UnitPrice(),
			Quantity:        l.Quantity(),
			Discount:        l.LineDiscount(),
			LineTotal:       l.LineTotal(),
			DurationMinutes: l.DurationMinutes(),
		})
	}

	rec := BillingRecord{
		TransactionID:       t.id,
		BranchID:            t.branchID,
		Customer:            t.customer,
		Staff:               t.staff,
		PaymentMethod:       t.payment.Method,
		CashReceived:        t.payment.CashReceived,
		TransactionNumber:   t.payment.TransactionNumber,
		Lines:               out,
		Summary:             t.Summary(),
		DiscountKind:        t.selection.Kind(),
		IsFutureAppointment: t.appointment != nil,
		AppointmentAt:       t.appointment,
		ServiceAt:           t.serviceAt,
	}
	if rec.IsFutureAppointment {
		rec.PaymentMethod = PaymentPayLater
		rec.CashReceived = nil
		rec.TransactionNumber = ""
	}

	switch s := t.selection.(type) {
	case discount.Voucher:
		rec.VoucherCode = s.Code()
	case discount.Membership:
		rec.MembershipID = s.ID()
	case discount.Manual:
		rec.BillDiscountType = billDiscountTypeFlat
	}
	return rec
}
