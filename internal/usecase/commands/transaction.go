package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"spa-pos/internal/domain/cart"
	"spa-pos/internal/domain/discount"
	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/infra"
	"spa-pos/internal/pkg/clock"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/pkg/metrics"
	"spa-pos/internal/usecase/queries"
	"spa-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound    = errs.New("transaction not found")
	ErrServiceNotFound        = errs.New("service not found")
	ErrLineNotFound           = errs.New("line not found")
	ErrInvalidInput           = errs.New("invalid input")
	ErrMembershipCapReached   = errs.New("membership cap reached")
	ErrVoucherAlreadyApplied  = errs.New("voucher already applied")
	ErrVoucherRejected        = errs.New("voucher rejected")
	ErrMembershipLookupFailed = errs.New("membership lookup failed")
	ErrNoMembershipFound      = errs.New("no membership found")
	ErrMembershipNotFound     = errs.New("membership not found")
	ErrMembershipExhausted    = errs.New("membership exhausted")
	ErrStaffNotFound          = errs.New("staff not found")
	ErrStaffLookupFailed      = errs.New("staff lookup failed")
	ErrNotReadyForSubmit      = errs.New("transaction not ready for submit")
	ErrSubmissionFailed       = errs.New("billing submission failed")
	ErrSubmissionInProgress   = errs.New("billing submission in progress")
)

const (
	msgInvalidVoucher   = "Invalid voucher code"
	msgVoucherError     = "Error validating voucher"
	msgNoMembership     = "No active memberships found."
	msgMembershipError  = "Error checking membership."
	msgBillingFailed    = "Unknown error"
	msgSaveFailed       = "Error saving appointment"
	msgBillingSucceeded = "Appointment stored successfully!"
)

type CustomerInput struct {
	Name   string
	Phone  string
	Source string
}

type PaymentInput struct {
	Method            string
	CashReceived      *decimal.Decimal
	TransactionNumber string
}

type SubmitResult struct {
	TransactionID uuid.UUID
	Message       string
	Summary       transaction.Summary
	// Replayed is set when the bill was already submitted and this is its stored receipt.
	Replayed bool
}

type TransactionCommands interface {
	Open(ctx context.Context, sess *session.Session) (*queries.TransactionView, error)
	Discard(ctx context.Context, sess *session.Session, id uuid.UUID) error
	Reset(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error)

	AddLine(ctx context.Context, sess *session.Session, id uuid.UUID, serviceID string) (*queries.TransactionView, error)
	SetQuantity(ctx context.Context, sess *session.Session, id uuid.UUID, serviceID string, qty int) (*queries.TransactionView, error)
	SetLineDiscount(ctx context.Context, sess *session.Session, id uuid.UUID, serviceID string, amount decimal.Decimal) (*queries.TransactionView, error)

	ApplyVoucher(ctx context.Context, sess *session.Session, id uuid.UUID, code string) (*queries.TransactionView, error)
	ResetVoucher(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error)
	SearchMembership(ctx context.Context, sess *session.Session, id uuid.UUID, phone string) (*queries.TransactionView, error)
	ChooseMembership(ctx context.Context, sess *session.Session, id uuid.UUID, membershipID string) (*queries.TransactionView, error)
	ResetMembership(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error)
	SetManualDiscount(ctx context.Context, sess *session.Session, id uuid.UUID, amount decimal.Decimal) (*queries.TransactionView, error)
	ClearManualDiscount(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error)
	SetGST(ctx context.Context, sess *session.Session, id uuid.UUID, percent decimal.Decimal) (*queries.TransactionView, error)

	SetCustomer(ctx context.Context, sess *session.Session, id uuid.UUID, in CustomerInput) (*queries.TransactionView, error)
	SetStaff(ctx context.Context, sess *session.Session, id uuid.UUID, staffID, billedByID string) (*queries.TransactionView, error)
	SetPayment(ctx context.Context, sess *session.Session, id uuid.UUID, in PaymentInput) (*queries.TransactionView, error)
	SetServiceTime(ctx context.Context, sess *session.Session, id uuid.UUID, at time.Time) (*queries.TransactionView, error)
	ScheduleAppointment(ctx context.Context, sess *session.Session, id uuid.UUID, at time.Time) (*queries.TransactionView, error)
	ClearAppointment(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error)

	Submit(ctx context.Context, sess *session.Session, id uuid.UUID) (*SubmitResult, error)
}

type transactionCommandsImpl struct {
	store       TransactionStore
	catalog     ServiceCatalog
	vouchers    VoucherValidator
	memberships MembershipLookup
	billing     BillingGateway
	ledger      SubmissionLedger
	staff       queries.StaffReader
	guard       *shared.SessionGuard
	metrics     *metrics.Metrics
	clock       clock.Clock
}

func NewTransactionCommands(
	store TransactionStore,
	catalog ServiceCatalog,
	vouchers VoucherValidator,
	memberships MembershipLookup,
	billing BillingGateway,
	ledger SubmissionLedger,
	staff queries.StaffReader,
	guard *shared.SessionGuard,
	metrics *metrics.Metrics,
	clock clock.Clock,
) TransactionCommands {
	return &transactionCommandsImpl{
		store:       store,
		catalog:     catalog,
		vouchers:    vouchers,
		memberships: memberships,
		billing:     billing,
		ledger:      ledger,
		staff:       staff,
		guard:       guard,
		metrics:     metrics,
		clock:       clock,
	}
}

func (c *transactionCommandsImpl) Open(ctx context.Context, sess *session.Session) (*queries.TransactionView, error) {
	profile := sess.Profile()
	t := transaction.New(profile.ID(), profile.BranchID(), c.clock.Now())
	if err := c.store.Create(ctx, t); err != nil {
		return nil, err
	}
	slog.Info("transaction opened", "transaction_id", t.ID(), "user_id", profile.ID())
	return queries.NewTransactionView(t), nil
}

func (c *transactionCommandsImpl) Discard(ctx context.Context, sess *session.Session, id uuid.UUID) error {
	if err := c.view(ctx, sess, id, func(*transaction.Transaction) error { return nil }); err != nil {
		return err
	}
	if err := c.store.Delete(ctx, id); err != nil {
		return c.classify(err)
	}
	return nil
}

func (c *transactionCommandsImpl) Reset(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		t.Reset(c.clock.Now())
		return nil
	})
}

// --- cart ---

func (c *transactionCommandsImpl) AddLine(ctx context.Context, sess *session.Session, id uuid.UUID, serviceID string) (*queries.TransactionView, error) {
	svc, ok := c.catalog.Lookup(ctx, shared.CatalogScope(sess), serviceID)
	if !ok {
		return nil, errs.WithUserMessage(
			errs.MarkAll(errs.Newf("service %q is not in the loaded catalog", serviceID), ErrServiceNotFound, errs.ErrNotFound),
			"Service not found, reload the catalog")
	}
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return capError(t, t.AddService(svc))
	})
}

func (c *transactionCommandsImpl) SetQuantity(ctx context.Context, sess *session.Session, id uuid.UUID, serviceID string, qty int) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return capError(t, t.SetQuantity(serviceID, qty))
	})
}

func (c *transactionCommandsImpl) SetLineDiscount(ctx context.Context, sess *session.Session, id uuid.UUID, serviceID string, amount decimal.Decimal) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.SetLineDiscount(serviceID, amount)
	})
}

// capError words a cap refusal with the membership's remaining credits.
func capError(t *transaction.Transaction, err error) error {
	if !errors.Is(err, transaction.ErrMembershipCapReached) {
		return err
	}
	free := 0
	if m, ok := t.Selection().(discount.Membership); ok {
		free = m.FreeRemaining()
	}
	return errs.WithUserMessage(
		errs.MarkAll(err, ErrMembershipCapReached, errs.ErrValidation),
		fmt.Sprintf("You can only add %d services with this membership.", free))
}

// --- discounts ---

func (c *transactionCommandsImpl) ApplyVoucher(ctx context.Context, sess *session.Session, id uuid.UUID, code string) (*queries.TransactionView, error) {
	code = strings.TrimSpace(code)
	if err := c.view(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.CheckVoucherApplicable(code)
	}); err != nil {
		return nil, err
	}

	verdict, err := c.vouchers.CheckVoucher(ctx, sess, code)
	if err != nil {
		c.metrics.VoucherChecks.WithLabelValues("error").Inc()
		slog.Warn("voucher check failed", "transaction_id", id, "error", err.Error())
		if infra.IsKind(err, infra.KindUnauthorized) {
			return nil, c.guard.BackendError(ctx, sess, err, ErrVoucherRejected, msgVoucherError)
		}
		return nil, errs.WithUserMessage(errs.MarkAll(err, ErrVoucherRejected, errs.ErrRemoteRejection), msgVoucherError)
	}
	if !verdict.Valid {
		c.metrics.VoucherChecks.WithLabelValues("rejected").Inc()
		msg := verdict.Message
		if msg == "" {
			msg = msgInvalidVoucher
		}
		return nil, errs.WithUserMessage(
			errs.MarkAll(errs.New("voucher rejected by backend"), ErrVoucherRejected, errs.ErrRemoteRejection), msg)
	}

	c.metrics.VoucherChecks.WithLabelValues("accepted").Inc()
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.ApplyVoucher(code)
	})
}

func (c *transactionCommandsImpl) ResetVoucher(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		t.ResetVoucher()
		return nil
	})
}

func (c *transactionCommandsImpl) SearchMembership(ctx context.Context, sess *session.Session, id uuid.UUID, phone string) (*queries.TransactionView, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, shared.Invalid(errs.New("phone number is required"), ErrInvalidInput)
	}
	if err := c.view(ctx, sess, id, func(*transaction.Transaction) error { return nil }); err != nil {
		return nil, err
	}

	records, err := c.memberships.FindMemberships(ctx, sess, phone)
	if err != nil {
		slog.Warn("membership lookup failed", "transaction_id", id, "error", err.Error())
		return nil, c.guard.BackendError(ctx, sess, err, ErrMembershipLookupFailed, msgMembershipError)
	}
	if len(records) == 0 {
		return nil, errs.WithUserMessage(
			errs.MarkAll(errs.New("no membership for phone"), ErrNoMembershipFound, errs.ErrRemoteRejection), msgNoMembership)
	}

	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		t.RememberMemberships(records)
		return nil
	})
}

func (c *transactionCommandsImpl) ChooseMembership(ctx context.Context, sess *session.Session, id uuid.UUID, membershipID string) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.ChooseMembership(strings.TrimSpace(membershipID))
	})
}

func (c *transactionCommandsImpl) ResetMembership(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		t.ResetMembership()
		return nil
	})
}

func (c *transactionCommandsImpl) SetManualDiscount(ctx context.Context, sess *session.Session, id uuid.UUID, amount decimal.Decimal) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.SetManualDiscount(amount)
	})
}

func (c *transactionCommandsImpl) ClearManualDiscount(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		t.ClearManualDiscount()
		return nil
	})
}

func (c *transactionCommandsImpl) SetGST(ctx context.Context, sess *session.Session, id uuid.UUID, percent decimal.Decimal) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.SetGST(percent)
	})
}

// --- customer, staff, payment, schedule ---

func (c *transactionCommandsImpl) SetCustomer(ctx context.Context, sess *session.Session, id uuid.UUID, in CustomerInput) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.SetCustomer(in.Name, in.Phone, in.Source)
	})
}

// SetStaff resolves names from the backend lists; billedByID may be empty.
func (c *transactionCommandsImpl) SetStaff(ctx context.Context, sess *session.Session, id uuid.UUID, staffID, billedByID string) (*queries.TransactionView, error) {
	staffID, billedByID = strings.TrimSpace(staffID), strings.TrimSpace(billedByID)
	if staffID == "" {
		return nil, shared.Invalid(errs.New("staff is required"), ErrInvalidInput)
	}

	therapists, err := c.staff.ListStaff(ctx, sess)
	if err != nil {
		return nil, c.guard.BackendError(ctx, sess, err, ErrStaffLookupFailed, "Could not load staff")
	}
	therapist, ok := queries.FindStaff(therapists, staffID)
	if !ok {
		return nil, shared.Invalid(errs.Newf("staff %s is not available", staffID), ErrStaffNotFound)
	}

	selected := transaction.Staff{StaffID: therapist.ID, StaffName: therapist.Name}
	if billedByID != "" {
		everyone, err := c.staff.ListAllStaff(ctx, sess)
		if err != nil {
			return nil, c.guard.BackendError(ctx, sess, err, ErrStaffLookupFailed, "Could not load staff")
		}
		biller, ok := queries.FindStaff(everyone, billedByID)
		if !ok {
			return nil, shared.Invalid(errs.Newf("billing staff %s is not available", billedByID), ErrStaffNotFound)
		}
		selected.BilledByID = biller.ID
		selected.BilledByName = biller.Name
	}

	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		t.SetStaff(selected)
		return nil
	})
}

func (c *transactionCommandsImpl) SetPayment(ctx context.Context, sess *session.Session, id uuid.UUID, in PaymentInput) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.SetPayment(in.Method, in.CashReceived, in.TransactionNumber)
	})
}

func (c *transactionCommandsImpl) SetServiceTime(ctx context.Context, sess *session.Session, id uuid.UUID, at time.Time) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.SetServiceTime(at)
	})
}

func (c *transactionCommandsImpl) ScheduleAppointment(ctx context.Context, sess *session.Session, id uuid.UUID, at time.Time) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		return t.ScheduleAppointment(at, c.clock.Now())
	})
}

func (c *transactionCommandsImpl) ClearAppointment(ctx context.Context, sess *session.Session, id uuid.UUID) (*queries.TransactionView, error) {
	return c.mutate(ctx, sess, id, func(t *transaction.Transaction) error {
		t.ClearAppointment()
		return nil
	})
}

// --- submit ---

// Submit posts the bill once. On any failure the transaction is kept so the
// operator can correct it and retry. A second submit of the same transaction
// replays the stored receipt, or is refused while the first is still in flight.
func (c *transactionCommandsImpl) Submit(ctx context.Context, sess *session.Session, id uuid.UUID) (*SubmitResult, error) {
	ownerID := sess.Profile().ID()
	if err := c.ledger.TryClaim(ctx, id, ownerID); err != nil {
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, err
		}
		return c.replay(ctx, ownerID, id)
	}

	result, err := c.submit(ctx, sess, id)
	if err != nil {
		if relErr := c.ledger.Release(ctx, id); relErr != nil {
			slog.Warn("failed to release submission claim", "transaction_id", id, "error", relErr.Error())
		}
		return nil, err
	}
	if err := c.ledger.Complete(ctx, id, *result); err != nil {
		slog.Warn("failed to record submission receipt", "transaction_id", id, "error", err.Error())
	}
	return result, nil
}

// billingError reports every non-success answer from the billing endpoint as a
// submission failure. Only an expired session and transport errors keep their
// own category.
func (c *transactionCommandsImpl) billingError(ctx context.Context, sess *session.Session, err error) error {
	if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindRejected) || infra.IsKind(err, infra.KindDecode) {
		msg := infra.RemoteMessage(err)
		if msg == "" {
			msg = msgSaveFailed
		}
		return errs.WithUserMessage(errs.MarkAll(err, ErrSubmissionFailed, errs.ErrSubmissionFailure), msg)
	}
	return c.guard.BackendError(ctx, sess, err, ErrSubmissionFailed, msgSaveFailed)
}

func (c *transactionCommandsImpl) replay(ctx context.Context, ownerID string, id uuid.UUID) (*SubmitResult, error) {
	rec, err := c.ledger.Get(ctx, id)
	if err != nil {
		// the claim expired or was released in between
		return nil, errs.WithUserMessage(errs.MarkAll(err, ErrSubmissionInProgress, errs.ErrConflict), "Billing is already being submitted")
	}
	if rec.OwnerID != ownerID {
		return nil, errs.WithUserMessage(errs.MarkAll(errs.New("submission owned by another operator"), ErrTransactionNotFound, errs.ErrNotFound), "Transaction not found")
	}
	if rec.Status != SubmissionCompleted || rec.Result == nil {
		return nil, errs.WithUserMessage(errs.MarkAll(errs.New("submission still processing"), ErrSubmissionInProgress, errs.ErrConflict), "Billing is already being submitted")
	}

	result := *rec.Result
	result.Replayed = true
	slog.Info("billing submit replayed", "transaction_id", id)
	return &result, nil
}

func (c *transactionCommandsImpl) submit(ctx context.Context, sess *session.Session, id uuid.UUID) (*SubmitResult, error) {
	var rec transaction.BillingRecord
	if err := c.view(ctx, sess, id, func(t *transaction.Transaction) error {
		if err := t.ValidateForSubmit(c.clock.Now()); err != nil {
			return err
		}
		rec = t.BillingRecord()
		return nil
	}); err != nil {
		return nil, err
	}

	receipt, err := c.billing.SubmitBilling(ctx, sess, rec)
	if err != nil {
		c.metrics.BillingSubmissions.WithLabelValues("error").Inc()
		slog.Warn("billing submission failed", "transaction_id", id, "error", err.Error())
		return nil, c.billingError(ctx, sess, err)
	}
	if !receipt.Success {
		c.metrics.BillingSubmissions.WithLabelValues("rejected").Inc()
		msg := receipt.Message
		if msg == "" {
			msg = msgBillingFailed
		}
		slog.Warn("billing rejected by backend", "transaction_id", id, "message", msg)
		return nil, errs.WithUserMessage(
			errs.MarkAll(errs.New("billing rejected by backend"), ErrSubmissionFailed, errs.ErrSubmissionFailure), msg)
	}

	c.metrics.BillingSubmissions.WithLabelValues("success").Inc()
	if err := c.store.Delete(ctx, id); err != nil {
		slog.Warn("failed to discard submitted transaction", "transaction_id", id, "error", err.Error())
	}
	slog.Info("billing submitted", "transaction_id", id, "final_total", rec.Summary.FinalTotal.StringFixed(2))

	msg := receipt.Message
	if msg == "" {
		msg = msgBillingSucceeded
	}
	return &SubmitResult{
		TransactionID: id,
		Message:       msg,
		Summary:       rec.Summary,
	}, nil
}

// --- helpers ---

func (c *transactionCommandsImpl) view(ctx context.Context, sess *session.Session, id uuid.UUID, fn func(*transaction.Transaction) error) error {
	err := c.store.View(ctx, id, func(t *transaction.Transaction) error {
		if !t.IsOwnedBy(sess.Profile().ID()) {
			return ErrTransactionNotFound
		}
		return fn(t)
	})
	return c.classify(err)
}

func (c *transactionCommandsImpl) mutate(ctx context.Context, sess *session.Session, id uuid.UUID, fn func(*transaction.Transaction) error) (*queries.TransactionView, error) {
	var view *queries.TransactionView
	err := c.store.Update(ctx, id, func(t *transaction.Transaction) error {
		if !t.IsOwnedBy(sess.Profile().ID()) {
			return ErrTransactionNotFound
		}
		if err := fn(t); err != nil {
			return err
		}
		t.Touch(c.clock.Now())
		view = queries.NewTransactionView(t)
		return nil
	})
	if err != nil {
		return nil, c.classify(err)
	}
	return view, nil
}

// classify maps store and domain failures onto usecase errors. Errors that
// already carry a category pass through.
func (c *transactionCommandsImpl) classify(err error) error {
	if err == nil {
		return nil
	}
	for _, category := range []error{errs.ErrValidation, errs.ErrNotFound, errs.ErrRemoteRejection, errs.ErrTransportFailure, errs.ErrSubmissionFailure, errs.ErrSessionExpired, errs.ErrConflict} {
		if errs.Is(err, category) {
			return err
		}
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound), errs.Is(err, ErrTransactionNotFound):
		return errs.WithUserMessage(errs.MarkAll(err, ErrTransactionNotFound, errs.ErrNotFound), "Transaction not found")
	case errors.Is(err, cart.ErrLineNotFound):
		return errs.WithUserMessage(errs.MarkAll(err, ErrLineNotFound, errs.ErrNotFound), "Service is not in the cart")
	case errors.Is(err, transaction.ErrVoucherAlreadyApplied):
		return errs.WithUserMessage(errs.MarkAll(err, ErrVoucherAlreadyApplied, errs.ErrValidation), "Voucher already applied!")
	case errors.Is(err, transaction.ErrMembershipNotFound):
		return shared.Invalid(err, ErrMembershipNotFound)
	case errors.Is(err, discount.ErrMembershipExhausted):
		return shared.Invalid(err, ErrMembershipExhausted)
	case errors.As(err, new(transaction.SubmitErrors)):
		return errs.WithUserMessage(errs.MarkAll(err, ErrNotReadyForSubmit, errs.ErrValidation), "Transaction is not ready for billing")
	case errors.As(err, new(infra.Error)):
		return err
	default:
		return shared.Invalid(err, ErrInvalidInput)
	}
}
