package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// localDateTime is the backend's zone-less timestamp format.
const localDateTime = "2006-01-02T15:04:05"

type billingLine struct {
	ServiceID any         `json:"service_id"`
	Name      string      `json:"name"`
	Price     json.Number `json:"price"`
	Quantity  int         `json:"quantity"`
	Discount  json.Number `json:"discount"`
	LineTotal json.Number `json:"line_total"`
	Duration  int         `json:"duration"`
}

type billingPayload struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	StaffID         any    `json:"staff_id"`
	BilledStaffID   any    `json:"billed_staff_id"`
	BilledStaffName string `json:"billed_staff_name"`
	StaffName       string `json:"staff_name"`
	PaymentMethod   string `json:"payment_method"`

	Cart []billingLine `json:"cart"`

	ItemTotal          json.Number `json:"item_total"`
	BillDiscount       json.Number `json:"bill_discount"`
	MembershipDiscount json.Number `json:"membership_discount"`
	GrandTotal         json.Number `json:"grand_total"`
	GSTPercent         json.Number `json:"gst_percent"`
	GSTAmount          json.Number `json:"gst_amount"`
	FinalTotal         json.Number `json:"final_total"`

	TotalDuration    int     `json:"total_duration"`
	CustomerSource   string  `json:"customer_source"`
	MembershipID     any     `json:"membership_id"`
	VoucherCode      *string `json:"voucherCode"`
	BillDiscountType *string `json:"billDiscountType"`

	IsFutureAppointment bool    `json:"is_future_appointment"`
	AppointmentAt       *string `json:"appointment_at"`
	AppointmentAtISO    *string `json:"appointment_at_iso"`

	FreeServicesUsed  int     `json:"free_services_used"`
	TotalCartServices int     `json:"totalCartServices"`
	DateTime          *string `json:"datetime"`

	CashReceived      *json.Number `json:"cash_received,omitempty"`
	TransactionNumber string       `json:"transaction_number,omitempty"`
	Branch            *string      `json:"branch,omitempty"`
	ReferenceID       string       `json:"pos_reference"`
}

func amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

// idValue sends numeric ids as JSON numbers, as the backend stores them.
func idValue(id string) any {
	if id == "" {
		return nil
	}
	if _, err := strconv.ParseInt(id, 10, 64); err == nil {
		return json.Number(id)
	}
	return id
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func formatLocal(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(localDateTime)
	return &s
}

func newBillingPayload(rec transaction.BillingRecord) billingPayload {
	sum := rec.Summary
	p := billingPayload{
		CustomerName:    rec.Customer.Name,
		CustomerPhone:   rec.Customer.Phone,
		StaffID:         idValue(rec.Staff.StaffID),
		BilledStaffID:   idValue(rec.Staff.BilledByID),
		BilledStaffName: rec.Staff.BilledByName,
		StaffName:       rec.Staff.StaffName,
		PaymentMethod:   string(rec.PaymentMethod),

		Cart: make([]billingLine, 0, len(rec.Lines)),

		ItemTotal:          amount(sum.ItemTotal),
		BillDiscount:       amount(sum.BillDiscount),
		MembershipDiscount: amount(sum.MembershipDiscount),
		GrandTotal:         amount(sum.Subtotal),
		GSTPercent:         json.Number(sum.GSTPercent.String()),
		GSTAmount:          amount(sum.GSTAmount),
		FinalTotal:         amount(sum.FinalTotal),

		TotalDuration:    sum.TotalMinutes,
		CustomerSource:   string(rec.Customer.Source),
		MembershipID:     idValue(rec.MembershipID),
		VoucherCode:      optional(rec.VoucherCode),
		BillDiscountType: optional(rec.BillDiscountType),

		IsFutureAppointment: rec.IsFutureAppointment,
		AppointmentAt:       formatLocal(rec.AppointmentAt),

		FreeServicesUsed:  sum.FreeServicesUsed,
		TotalCartServices: sum.TotalUnits,
		DateTime:          formatLocal(rec.ServiceAt),

		TransactionNumber: rec.TransactionNumber,
		Branch:            rec.BranchID,
		ReferenceID:       rec.TransactionID.String(),
	}
	if rec.AppointmentAt != nil {
		iso := rec.AppointmentAt.UTC().Format(time.RFC3339)
		p.AppointmentAtISO = &iso
	}
	if rec.CashReceived != nil {
		cash := amount(*rec.CashReceived)
		p.CashReceived = &cash
	}
	for _, l := range rec.Lines {
		p.Cart = append(p.Cart, billingLine{
			ServiceID: idValue(l.ServiceID),
			Name:      l.Name,
			Price:     amount(l.UnitPrice),
			Quantity:  l.Quantity,
			Discount:  amount(l.Discount),
			LineTotal: amount(l.LineTotal),
			Duration:  l.DurationMinutes,
		})
	}
	return p
}

// SubmitBilling posts a completed sale. A non-2xx rejection is reported as an
// unsuccessful receipt so the caller keeps the cart.
func (c *Client) SubmitBilling(ctx context.Context, sess *session.Session, rec transaction.BillingRecord) (*commands.BillingReceipt, error) {
	var out messageEnvelope
	err := c.do(ctx, call{
		endpoint: "today_billing",
		method:   http.MethodPost,
		path:     "admin/today-billing",
		body:     newBillingPayload(rec),
		sess:     sess,
	}, &out)
	if err != nil {
		if msg, ok := rejection(err); ok {
			return &commands.BillingReceipt{Success: false, Message: msg}, nil
		}
		return nil, err
	}

	return &commands.BillingReceipt{
		Success: out.ok(),
		Message: out.text(),
	}, nil
}
