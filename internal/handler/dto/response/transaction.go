package response

import (
	"time"

	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/usecase/commands"
	"spa-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts are rendered as strings with two decimal places.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

type LineResponse struct {
	ServiceID       string `json:"service_id"`
	Name            string `json:"name"`
	UnitPrice       string `json:"unit_price"`
	Quantity        int    `json:"quantity"`
	LineDiscount    string `json:"line_discount"`
	LineTotal       string `json:"line_total"`
	DurationMinutes int    `json:"duration_minutes"`
}

type DiscountResponse struct {
	Kind          string  `json:"kind"`
	VoucherCode   string  `json:"voucher_code,omitempty"`
	MembershipID  string  `json:"membership_id,omitempty"`
	PlanName      string  `json:"plan_name,omitempty"`
	FreeRemaining int     `json:"free_remaining,omitempty"`
	Amount        *string `json:"amount,omitempty"`
}

type MembershipCandidateResponse struct {
	ID                string     `json:"id"`
	PlanName          string     `json:"plan_name"`
	RemainingServices int        `json:"remaining_services"`
	ExpiresOn         *time.Time `json:"expires_on,omitempty"`
}

type SummaryResponse struct {
	ItemTotal          string `json:"item_total"`
	MembershipDiscount string `json:"membership_discount"`
	BillDiscount       string `json:"bill_discount"`
	Subtotal           string `json:"subtotal"`
	GSTPercent         string `json:"gst_percent"`
	GSTAmount          string `json:"gst_amount"`
	FinalTotal         string `json:"final_total"`
	TotalUnits         int    `json:"total_units"`
	TotalMinutes       int    `json:"total_minutes"`
	FreeServicesUsed   int    `json:"free_services_used"`
}

type CustomerDetail struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Source string `json:"source"`
}

type StaffDetail struct {
	StaffID      string `json:"staff_id,omitempty"`
	StaffName    string `json:"staff_name,omitempty"`
	BilledByID   string `json:"billed_by_id,omitempty"`
	BilledByName string `json:"billed_by_name,omitempty"`
}

type PaymentDetail struct {
	Method            string  `json:"method"`
	CashReceived      *string `json:"cash_received,omitempty"`
	TransactionNumber string  `json:"transaction_number,omitempty"`
	ChangeDue         *string `json:"change_due,omitempty"`
}

type TransactionResponse struct {
	ID                  uuid.UUID                     `json:"id"`
	Lines               []LineResponse                `json:"lines"`
	Discount            DiscountResponse              `json:"discount"`
	MembershipOptions   []MembershipCandidateResponse `json:"membership_candidates"`
	Summary             SummaryResponse               `json:"summary"`
	Customer            CustomerDetail                `json:"customer"`
	Staff               StaffDetail                   `json:"staff"`
	Payment             PaymentDetail                 `json:"payment"`
	ServiceAt           *time.Time                    `json:"service_at,omitempty"`
	AppointmentAt       *time.Time                    `json:"appointment_at,omitempty"`
	IsFutureAppointment bool                          `json:"is_future_appointment"`
	CreatedAt           time.Time                     `json:"created_at"`
	UpdatedAt           time.Time                     `json:"updated_at"`
}

type TransactionListResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name,omitempty"`
	TotalUnits   int       `json:"total_units"`
	FinalTotal   string    `json:"final_total"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SubmitResponse struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Message       string          `json:"message"`
	Summary       SummaryResponse `json:"summary"`
	Replayed      bool            `json:"replayed,omitempty"`
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	lines := make([]LineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, LineResponse{
			ServiceID:       l.ServiceID,
			Name:            l.Name,
			UnitPrice:       money(l.UnitPrice),
			Quantity:        l.Quantity,
			LineDiscount:    money(l.LineDiscount),
			LineTotal:       money(l.LineTotal),
			DurationMinutes: l.DurationMinutes,
		})
	}

	candidates := make([]MembershipCandidateResponse, 0, len(v.Candidates))
	for _, c := range v.Candidates {
		candidates = append(candidates, MembershipCandidateResponse(c))
	}

	return &TransactionResponse{
		ID:    v.ID,
		Lines: lines,
		Discount: DiscountResponse{
			Kind:          v.Discount.Kind.String(),
			VoucherCode:   v.Discount.VoucherCode,
			MembershipID:  v.Discount.MembershipID,
			PlanName:      v.Discount.PlanName,
			FreeRemaining: v.Discount.FreeRemaining,
			Amount:        moneyPtr(v.Discount.Amount),
		},
		MembershipOptions: candidates,
		Summary:           fromSummary(v.Summary),
		Customer: CustomerDetail{
			Name:   v.Customer.Name,
			Phone:  v.Customer.Phone,
			Source: string(v.Customer.Source),
		},
		Staff: StaffDetail(v.Staff),
		Payment: PaymentDetail{
			Method:            string(v.Payment.Method),
			CashReceived:      moneyPtr(v.Payment.CashReceived),
			TransactionNumber: v.Payment.TransactionNumber,
			ChangeDue:         moneyPtr(v.ChangeDue),
		},
		ServiceAt:           v.ServiceAt,
		AppointmentAt:       v.AppointmentAt,
		IsFutureAppointment: v.IsFutureAppointment,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func FromTransactionList(items []queries.TransactionListItem) []TransactionListResponse {
	out := make([]TransactionListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, TransactionListResponse{
			ID:           it.ID,
			CustomerName: it.CustomerName,
			TotalUnits:   it.TotalUnits,
			FinalTotal:   money(it.FinalTotal),
			UpdatedAt:    it.UpdatedAt,
		})
	}
	return out
}

func FromSubmitResult(r *commands.SubmitResult) SubmitResponse {
	return SubmitResponse{
		TransactionID: r.TransactionID,
		Message:       r.Message,
		Summary:       fromSummary(r.Summary),
		Replayed:      r.Replayed,
	}
}

func fromSummary(s transaction.Summary) SummaryResponse {
	return SummaryResponse{
		ItemTotal:          money(s.ItemTotal),
		MembershipDiscount: money(s.MembershipDiscount),
		BillDiscount:       money(s.BillDiscount),
		Subtotal:           money(s.Subtotal),
		GSTPercent:         s.GSTPercent.String(),
		GSTAmount:          money(s.GSTAmount),
		FinalTotal:         money(s.FinalTotal),
		TotalUnits:         s.TotalUnits,
		TotalMinutes:       s.TotalMinutes,
		FreeServicesUsed:   s.FreeServicesUsed,
	}
}
