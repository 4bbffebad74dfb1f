package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money fields accept JSON numbers or strings.

type AddLineRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type LineDiscountRequest struct {
	Discount decimal.Decimal `json:"discount"`
}

type ApplyVoucherRequest struct {
	VoucherCode string `json:"voucher_code" binding:"required"`
}

type MembershipSearchRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type ChooseMembershipRequest struct {
	MembershipID string `json:"membership_id" binding:"required"`
}

type ManualDiscountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type GSTRequest struct {
	Percent decimal.Decimal `json:"percent"`
}

type CustomerRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Source string `json:"source"`
}

type StaffRequest struct {
	StaffID    string `json:"staff_id" binding:"required"`
	BilledByID string `json:"billed_by_id"`
}

type PaymentRequest struct {
	Method            string           `json:"method"`
	CashReceived      *decimal.Decimal `json:"cash_received,omitempty"`
	TransactionNumber string           `json:"transaction_number"`
}

type ScheduleRequest struct {
	At time.Time `json:"at" binding:"required"`
}
