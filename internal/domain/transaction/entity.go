package transaction

import (
	"strings"
	"time"

	"spa-pos/internal/domain/cart"
	"spa-pos/internal/domain/catalog"
	"spa-pos/internal/domain/discount"
	"spa-pos/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one unsubmitted POS sale. It holds exactly one discount
// selection at a time.
type Transaction struct {
	id          uuid.UUID
	ownerID     string
	branchID    *string
	cart        *cart.Cart
	selection   discount.Selection
	candidates  []discount.Record
	gst         pricing.GSTPercent
	customer    Customer
	staff       Staff
	payment     Payment
	serviceAt   *time.Time
	appointment *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// New opens a transaction owned by an operator.
func New(ownerID string, branchID *string, now time.Time) *Transaction {
	t := &Transaction{
		id:        uuid.New(),
		ownerID:   ownerID,
		branchID:  branchID,
		createdAt: now,
	}
	t.Reset(now)
	return t
}

// Reset clears everything except identity and ownership.
func (t *Transaction) Reset(now time.Time) {
	t.cart = cart.New()
	t.selection = discount.None{}
	t.candidates = nil
	t.gst = pricing.GSTPercent{}
	t.customer = Customer{Source: SourceWalkin}
	t.staff = Staff{}
	t.payment = Payment{Method: PaymentCash}
	t.serviceAt = nil
	t.appointment = nil
	t.updatedAt = now
}

// Clone returns an independent copy; changes to it leave t untouched.
func (t *Transaction) Clone() *Transaction {
	cp := *t
	cp.cart = t.cart.Clone()
	cp.candidates = t.MembershipCandidates()
	return &cp
}

func (t *Transaction) ID() uuid.UUID                 { return t.id }
func (t *Transaction) OwnerID() string               { return t.ownerID }
func (t *Transaction) BranchID() *string             { return t.branchID }
func (t *Transaction) Lines() []cart.LineItem        { return t.cart.Lines() }
func (t *Transaction) Selection() discount.Selection { return t.selection }
func (t *Transaction) GST() pricing.GSTPercent       { return t.gst }
func (t *Transaction) Customer() Customer            { return t.customer }
func (t *Transaction) Staff() Staff                  { return t.staff }
func (t *Transaction) Payment() Payment              { return t.payment }
func (t *Transaction) ServiceAt() *time.Time         { return t.serviceAt }
func (t *Transaction) AppointmentAt() *time.Time     { return t.appointment }
func (t *Transaction) IsFutureAppointment() bool     { return t.appointment != nil }
func (t *Transaction) CreatedAt() time.Time          { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time          { return t.updatedAt }

func (t *Transaction) MembershipCandidates() []discount.Record {
	out := make([]discount.Record, len(t.candidates))
	copy(out, t.candidates)
	return out
}

func (t *Transaction) IsOwnedBy(userID string) bool {
	return t.ownerID == userID
}

func (t *Transaction) Touch(now time.Time) {
	t.updatedAt = now
}

// --- cart ---

// AddService adds one unit. With a membership active, adding is refused once the
// cart already holds as many units as there are free services left.
func (t *Transaction) AddService(svc catalog.Service) error {
	if discount.CapReached(t.selection, t.cart.TotalUnits()) {
		return ErrMembershipCapReached
	}
	t.cart.Add(svc)
	return nil
}

// SetQuantity applies the same cap to increases only. Decreases and removals are
// always allowed, as are overages that already exist.
func (t *Transaction) SetQuantity(serviceID string, qty int) error {
	if qty > t.cart.Quantity(serviceID) && discount.CapReached(t.selection, t.cart.TotalUnits()) {
		return ErrMembershipCapReached
	}
	return t.cart.SetQuantity(serviceID, qty)
}

func (t *Transaction) SetLineDiscount(serviceID string, amount decimal.Decimal) error {
	return t.cart.SetLineDiscount(serviceID, amount)
}

func (t *Transaction) IsEmpty() bool { return t.cart.IsEmpty() }

// --- discounts ---

// CheckVoucherApplicable runs the local voucher checks before any remote call.
func (t *Transaction) CheckVoucherApplicable(code string) error {
	if strings.TrimSpace(code) == "" {
		return discount.ErrEmptyVoucherCode
	}
	if t.selection.Kind() == discount.KindVoucher {
		return ErrVoucherAlreadyApplied
	}
	return nil
}

// ApplyVoucher records an accepted voucher. The bill discount is pinned to the
// item total at this moment.
func (t *Transaction) ApplyVoucher(code string) error {
	if err := t.CheckVoucherApplicable(code); err != nil {
		return err
	}
	v, err := discount.NewVoucher(code, t.cart.ItemTotal())
	if err != nil {
		return err
	}
	t.replaceSelection(v)
	return nil
}

func (t *Transaction) ResetVoucher() {
	if t.selection.Kind() == discount.KindVoucher {
		t.selection = discount.None{}
	}
}

// RememberMemberships stores the result of a phone lookup for a later choice.
func (t *Transaction) RememberMemberships(records []discount.Record) {
	t.candidates = append([]discount.Record(nil), records...)
}

func (t *Transaction) ChooseMembership(membershipID string) error {
	for _, rec := range t.candidates {
		if rec.ID != membershipID {
			continue
		}
		m, err := discount.NewMembership(rec)
		if err != nil {
			return err
		}
		t.replaceSelection(m)
		return nil
	}
	return ErrMembershipNotFound
}

// ResetMembership also forgets the looked-up candidates.
func (t *Transaction) ResetMembership() {
	if t.selection.Kind() == discount.KindMembership {
		t.selection = discount.None{}
	}
	t.candidates = nil
}

func (t *Transaction) SetManualDiscount(amount decimal.Decimal) error {
	m, err := discount.NewManual(amount)
	if err != nil {
		return err
	}
	t.replaceSelection(m)
	return nil
}

func (t *Transaction) ClearManualDiscount() {
	if t.selection.Kind() == discount.KindManual {
		t.selection = discount.None{}
	}
}

// replaceSelection drops membership candidates when leaving the membership path.
func (t *Transaction) replaceSelection(sel discount.Selection) {
	if sel.Kind() != discount.KindMembership {
		t.candidates = nil
	}
	t.selection = sel
}

// --- tax ---

func (t *Transaction) SetGST(percent decimal.Decimal) error {
	g, err := pricing.NewGSTPercent(percent)
	if err != nil {
		return err
	}
	t.gst = g
	return nil
}

// --- customer, staff, payment, schedule ---

func (t *Transaction) SetCustomer(name, phone, source string) error {
	src, err := NewCustomerSource(source)
	if err != nil {
		return err
	}
	t.customer = Customer{
		Name:   strings.TrimSpace(name),
		Phone:  strings.TrimSpace(phone),
		Source: src,
	}
	return nil
}

func (t *Transaction) SetStaff(staff Staff) {
	t.staff = staff
}

func (t *Transaction) SetPayment(method string, cashReceived *decimal.Decimal, transactionNumber string) error {
	m, err := NewPaymentMethod(method)
	if err != nil {
		return err
	}
	if cashReceived != nil && cashReceived.IsNegative() {
		return ErrNegativeCashReceived
	}
	p := Payment{Method: m}
	switch m {
	case PaymentCash:
		p.CashReceived = cashReceived
	case PaymentCard, PaymentUPI:
		p.TransactionNumber = strings.TrimSpace(transactionNumber)
	}
	t.payment = p
	return nil
}

func (t *Transaction) SetServiceTime(at time.Time) error {
	if !IsServiceSlot(at) {
		return ErrServiceTimeOutsideSlots
	}
	t.serviceAt = &at
	return nil
}

// ScheduleAppointment turns the sale into a future booking paid later.
func (t *Transaction) ScheduleAppointment(at, now time.Time) error {
	if at.Before(now.Add(AppointmentLeadTime)) {
		return ErrAppointmentTooSoon
	}
	t.appointment = &at
	return nil
}

func (t *Transaction) ClearAppointment() {
	t.appointment = nil
}

// --- projections ---

func (t *Transaction) Summary() Summary {
	b := pricing.Project(pricing.Input{
		ItemTotal:          t.cart.ItemTotal(),
		BillDiscount:       discount.BillDiscount(t.selection),
		MembershipDiscount: discount.MembershipDiscount(t.selection, t.cart.UnitPrices()),
		GST:                t.gst,
	})
	units := t.cart.TotalUnits()
	return Summary{
		ItemTotal:          b.ItemTotal,
		MembershipDiscount: b.MembershipDiscount,
		BillDiscount:       b.BillDiscount,
		Subtotal:           b.Subtotal,
		GSTPercent:         b.GSTPercent,
		GSTAmount:          b.GSTAmount,
		FinalTotal:         b.FinalTotal,
		TotalUnits:         units,
		TotalMinutes:       t.cart.TotalMinutes(),
		FreeServicesUsed:   discount.FreeServicesUsed(t.selection, units),
	}
}

// ChangeDue is nil unless the payment is cash with an amount received.
func (t *Transaction) ChangeDue() *decimal.Decimal {
	if t.payment.Method != PaymentCash || t.payment.CashReceived == nil {
		return nil
	}
	change := t.payment.CashReceived.Sub(t.Summary().FinalTotal)
	if change.IsNegative() {
		change = decimal.Zero
	}
	return &change
}
