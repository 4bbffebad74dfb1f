package queries

import (
	"time"

	"spa-pos/internal/domain/discount"
	"spa-pos/internal/domain/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceView is one catalog entry as listed by the backend
type ServiceView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	DurationMinutes int             `json:"duration_minutes"`
}

type ServicePage struct {
	Items       []ServiceView `json:"items"`
	CurrentPage int           `json:"current_page"`
	LastPage    int           `json:"last_page"`
	Total       int           `json:"total"`
}

type StaffView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// CustomerView is the backend's answer to a phone lookup; Exists is false for new customers
type CustomerView struct {
	Exists bool   `json:"exists"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone"`
}

type LineView struct {
	ServiceID       string          `json:"service_id"`
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int             `json:"quantity"`
	LineDiscount    decimal.Decimal `json:"line_discount"`
	LineTotal       decimal.Decimal `json:"line_total"`
	DurationMinutes int             `json:"duration_minutes"`
}

type DiscountView struct {
	Kind          discount.Kind    `json:"kind"`
	VoucherCode   string           `json:"voucher_code,omitempty"`
	MembershipID  string           `json:"membership_id,omitempty"`
	PlanName      string           `json:"plan_name,omitempty"`
	FreeRemaining int              `json:"free_remaining,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

type MembershipCandidateView struct {
	ID                string     `json:"id"`
	PlanName          string     `json:"plan_name"`
	RemainingServices int        `json:"remaining_services"`
	ExpiresOn         *time.Time `json:"expires_on,omitempty"`
}

// TransactionView is a point-in-time copy of a transaction, safe to use after
// the store lock is released.
type TransactionView struct {
	ID                  uuid.UUID                 `json:"id"`
	Lines               []LineView                `json:"lines"`
	Discount            DiscountView              `json:"discount"`
	Candidates          []MembershipCandidateView `json:"membership_candidates"`
	Summary             transaction.Summary       `json:"summary"`
	Customer            transaction.Customer      `json:"customer"`
	Staff               transaction.Staff         `json:"staff"`
	Payment             transaction.Payment       `json:"payment"`
	ChangeDue           *decimal.Decimal          `json:"change_due,omitempty"`
	ServiceAt           *time.Time                `json:"service_at,omitempty"`
	AppointmentAt       *time.Time                `json:"appointment_at,omitempty"`
	IsFutureAppointment bool                      `json:"is_future_appointment"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}

type TransactionListItem struct {
	ID           uuid.UUID       `json:"id"`
	CustomerName string          `json:"customer_name"`
	TotalUnits   int             `json:"total_units"`
	FinalTotal   decimal.Decimal `json:"final_total"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewTransactionView(t *transaction.Transaction) *TransactionView {
	lines := t.Lines()
	lineViews := make([]LineView, 0, len(lines))
	for _, l := range lines {
		lineViews = append(lineViews, LineView{
			ServiceID:       l.ServiceID(),
			Name:            l.Name(),
			UnitPrice:       l.UnitPrice(),
			Quantity:        l.Quantity(),
			LineDiscount:    l.LineDiscount(),
			LineTotal:       l.LineTotal(),
			DurationMinutes: l.DurationMinutes(),
		})
	}

	records := t.MembershipCandidates()
	candidates := make([]MembershipCandidateView, 0, len(records))
	for _, r := range records {
		candidates = append(candidates, MembershipCandidateView{
			ID:                r.ID,
			PlanName:          r.PlanName,
			RemainingServices: r.RemainingServices,
			ExpiresOn:         r.ExpiresOn,
		})
	}

	return &TransactionView{
		ID:                  t.ID(),
		Lines:               lineViews,
		Discount:            newDiscountView(t.Selection()),
		Candidates:          candidates,
		Summary:             t.Summary(),
		Customer:            t.Customer(),
		Staff:               t.Staff(),
		Payment:             t.Payment(),
		ChangeDue:           t.ChangeDue(),
		ServiceAt:           t.ServiceAt(),
		AppointmentAt:       t.AppointmentAt(),
		IsFutureAppointment: t.IsFutureAppointment(),
		CreatedAt:           t.CreatedAt(),
		UpdatedAt:           t.UpdatedAt(),
	}
}

func newDiscountView(sel discount.Selection) DiscountView {
	v := DiscountView{Kind: sel.Kind()}
	switch s := sel.(type) {
	case discount.Voucher:
		amount := s.Amount()
		v.VoucherCode = s.Code()
		v.Amount = &amount
	case discount.Membership:
		v.MembershipID = s.ID()
		v.PlanName = s.PlanName()
		v.FreeRemaining = s.FreeRemaining()
	case discount.Manual:
		amount := s.Amount()
		v.Amount = &amount
	}
	return v
}

func newTransactionListItem(t *transaction.Transaction) TransactionListItem {
	s := t.Summary()
	return TransactionListItem{
		ID:           t.ID(),
		CustomerName: t.Customer().Name,
		TotalUnits:   s.TotalUnits,
		FinalTotal:   s.FinalTotal,
		UpdatedAt:    t.UpdatedAt(),
	}
}
