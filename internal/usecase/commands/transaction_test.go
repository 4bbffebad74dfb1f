//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"spa-pos/internal/domain/discount"
	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/infra"
	"spa-pos/internal/infra/memstore"
	"spa-pos/internal/pkg/clock"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/pkg/metrics"
	"spa-pos/internal/usecase/commands"
	"spa-pos/internal/usecase/queries"
	"spa-pos/internal/usecase/shared"
	"spa-pos/tests/common/builder"
	commandsmock "spa-pos/tests/mock/commands"
	queriesmock "spa-pos/tests/mock/queries"

	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 10, 1, 11, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type TransactionCommandsTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	vouchers    *commandsmock.MockVoucherValidator
	memberships *commandsmock.MockMembershipLookup
	billing     *commandsmock.MockBillingGateway
	staff       *queriesmock.MockStaffReader
	store       *memstore.TransactionStore
	sessions    *memstore.SessionStore
	ledger      *memstore.SubmissionLedger
	metrics     *metrics.Metrics
	sess        *session.Session
	cmds        commands.TransactionCommands
}

func (s *TransactionCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.vouchers = commandsmock.NewMockVoucherValidator(s.mockCtrl)
	s.memberships = commandsmock.NewMockMembershipLookup(s.mockCtrl)
	s.billing = commandsmock.NewMockBillingGateway(s.mockCtrl)
	s.staff = queriesmock.NewMockStaffReader(s.mockCtrl)

	s.metrics = metrics.NewNopMetrics()
	s.store = memstore.NewTransactionStore(time.Hour, time.Minute, s.metrics)
	s.sessions = memstore.NewSessionStore(time.Hour, time.Minute)
	s.ledger = memstore.NewSubmissionLedger(time.Hour, time.Minute)
	catalogStore := memstore.NewCatalogStore(time.Hour, time.Minute)

	s.sess = builder.NewSessionBuilder().MustBuild()
	s.Require().NoError(s.sessions.Save(s.ctx, s.sess))
	s.Require().NoError(catalogStore.Merge(s.ctx, shared.CatalogScope(s.sess), builder.Priced(500, 300)))

	fixed := clock.NewFixedClock(testNow)
	guard := shared.NewSessionGuard(s.sessions, fixed)
	s.cmds = commands.NewTransactionCommands(
		s.store, catalogStore, s.vouchers, s.memberships, s.billing, s.ledger, s.staff, guard, s.metrics, fixed,
	)
}

func (s *TransactionCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTransactionCommandsSuite(t *testing.T) {
	suite.Run(t, new(TransactionCommandsTestSuite))
}

// open builds a transaction holding units [500, 300, 300].
func (s *TransactionCommandsTestSuite) open() uuid.UUID {
	view, err := s.cmds.Open(s.ctx, s.sess)
	s.Require().NoError(err)
	_, err = s.cmds.AddLine(s.ctx, s.sess, view.ID, "s1")
	s.Require().NoError(err)
	_, err = s.cmds.AddLine(s.ctx, s.sess, view.ID, "s2")
	s.Require().NoError(err)
	_, err = s.cmds.SetQuantity(s.ctx, s.sess, view.ID, "s2", 2)
	s.Require().NoError(err)
	return view.ID
}

func (s *TransactionCommandsTestSuite) ready() uuid.UUID {
	id := s.open()
	s.staff.EXPECT().ListStaff(gomock.Any(), s.sess).
		Return([]queries.StaffView{{ID: "4", Name: "Ravi"}}, nil)
	s.staff.EXPECT().ListAllStaff(gomock.Any(), s.sess).
		Return([]queries.StaffView{{ID: "2", Name: "Meera"}, {ID: "4", Name: "Ravi"}}, nil)

	_, err := s.cmds.SetCustomer(s.ctx, s.sess, id, commands.CustomerInput{Name: "Asha", Phone: "9876543210", Source: "Google"})
	s.Require().NoError(err)
	_, err = s.cmds.SetStaff(s.ctx, s.sess, id, "4", "2")
	s.Require().NoError(err)
	_, err = s.cmds.SetServiceTime(s.ctx, s.sess, id, time.Date(2025, 10, 1, 15, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	return id
}

func (s *TransactionCommandsTestSuite) assertDec(want string, got decimal.Decimal, field string) {
	s.True(d(want).Equal(got), "%s: want %s got %s", field, want, got)
}

func (s *TransactionCommandsTestSuite) TestOpen() {
	s.Run("success: fresh transaction with defaults", func() {
		view, err := s.cmds.Open(s.ctx, s.sess)
		s.Require().NoError(err)
		s.Empty(view.Lines)
		s.Equal(discount.KindNone, view.Discount.Kind)
		s.Equal(transaction.PaymentCash, view.Payment.Method)
		s.Equal(transaction.SourceWalkin, view.Customer.Source)
		s.Nil(view.ServiceAt)
	})

	s.Run("error: another operator cannot touch it", func() {
		view, err := s.cmds.Open(s.ctx, s.sess)
		s.Require().NoError(err)
		other := builder.NewSessionBuilder().
			WithUser(builder.NewUserBuilder().With(func(u *builder.UserBuilder) { u.ID = "99" })).
			MustBuild()

		_, err = s.cmds.AddLine(s.ctx, other, view.ID, "s1")
		s.True(errs.Is(err, commands.ErrTransactionNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: unknown transaction", func() {
		_, err := s.cmds.Reset(s.ctx, s.sess, uuid.New())
		s.True(errs.Is(err, commands.ErrTransactionNotFound))
	})
}

func (s *TransactionCommandsTestSuite) TestCart() {
	s.Run("success: totals follow the cart", func() {
		id := s.open()
		view, err := s.cmds.SetGST(s.ctx, s.sess, id, d("18"))
		s.Require().NoError(err)
		s.assertDec("1100", view.Summary.ItemTotal, "itemTotal")
		s.assertDec("198", view.Summary.GSTAmount, "gstAmount")
		s.assertDec("1298", view.Summary.FinalTotal, "finalTotal")
		s.Equal(3, view.Summary.TotalUnits)
	})

	s.Run("error: service missing from the loaded catalog", func() {
		id := s.open()
		_, err := s.cmds.AddLine(s.ctx, s.sess, id, "s42")
		s.True(errs.Is(err, commands.ErrServiceNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: line discount on a line not in the cart", func() {
		id := s.open()
		_, err := s.cmds.SetLineDiscount(s.ctx, s.sess, id, "s9", d("10"))
		s.True(errs.Is(err, commands.ErrLineNotFound))
	})

	s.Run("error: negative gst is invalid and leaves state alone", func() {
		id := s.open()
		_, err := s.cmds.SetGST(s.ctx, s.sess, id, d("-1"))
		s.True(errs.Is(err, commands.ErrInvalidInput))
		s.True(errs.Is(err, errs.ErrValidation))

		view, err := s.cmds.SetManualDiscount(s.ctx, s.sess, id, d("0"))
		s.Require().NoError(err)
		s.True(view.Summary.GSTPercent.IsZero())
	})
}

func (s *TransactionCommandsTestSuite) TestApplyVoucher() {
	s.Run("success: voucher covers the whole bill", func() {
		id := s.open()
		s.vouchers.EXPECT().CheckVoucher(gomock.Any(), s.sess, "SPA100").
			Return(&commands.VoucherVerdict{Valid: true}, nil)

		view, err := s.cmds.ApplyVoucher(s.ctx, s.sess, id, " SPA100 ")
		s.Require().NoError(err)
		s.Equal(discount.KindVoucher, view.Discount.Kind)
		s.Equal("SPA100", view.Discount.VoucherCode)
		s.assertDec("0", view.Summary.FinalTotal, "finalTotal")
		s.Equal(1.0, promtest.ToFloat64(s.metrics.VoucherChecks.WithLabelValues("accepted")))
	})

	s.Run("error: second voucher is refused without a backend call", func() {
		id := s.open()
		s.vouchers.EXPECT().CheckVoucher(gomock.Any(), s.sess, "SPA100").
			Return(&commands.VoucherVerdict{Valid: true}, nil).Times(1)
		_, err := s.cmds.ApplyVoucher(s.ctx, s.sess, id, "SPA100")
		s.Require().NoError(err)

		_, err = s.cmds.ApplyVoucher(s.ctx, s.sess, id, "SPA200")
		s.True(errs.Is(err, commands.ErrVoucherAlreadyApplied))
		s.Equal("Voucher already applied!", errs.UserMessage(err, ""))
	})

	s.Run("error: rejection keeps the backend message", func() {
		id := s.open()
		s.vouchers.EXPECT().CheckVoucher(gomock.Any(), s.sess, "OLD").
			Return(&commands.VoucherVerdict{Valid: false, Message: "Voucher expired"}, nil)

		_, err := s.cmds.ApplyVoucher(s.ctx, s.sess, id, "OLD")
		s.True(errs.Is(err, commands.ErrVoucherRejected))
		s.True(errs.Is(err, errs.ErrRemoteRejection))
		s.Equal("Voucher expired", errs.UserMessage(err, ""))
	})

	s.Run("error: rejection without message", func() {
		id := s.open()
		s.vouchers.EXPECT().CheckVoucher(gomock.Any(), s.sess, "BAD").
			Return(&commands.VoucherVerdict{Valid: false}, nil)

		_, err := s.cmds.ApplyVoucher(s.ctx, s.sess, id, "BAD")
		s.Equal("Invalid voucher code", errs.UserMessage(err, ""))
	})

	s.Run("error: transport failure reads as a rejection", func() {
		id := s.open()
		s.vouchers.EXPECT().CheckVoucher(gomock.Any(), s.sess, "SPA100").
			Return(nil, infra.Error{Kind: infra.KindTransport})

		view, err := s.cmds.ApplyVoucher(s.ctx, s.sess, id, "SPA100")
		s.Nil(view)
		s.True(errs.Is(err, errs.ErrRemoteRejection))
		s.Equal("Error validating voucher", errs.UserMessage(err, ""))
	})

	s.Run("error: blank code", func() {
		id := s.open()
		_, err := s.cmds.ApplyVoucher(s.ctx, s.sess, id, "  ")
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: backend 401 ends the session", func() {
		id := s.open()
		s.vouchers.EXPECT().CheckVoucher(gomock.Any(), s.sess, "SPA100").
			Return(nil, infra.Error{Kind: infra.KindUnauthorized})

		_, err := s.cmds.ApplyVoucher(s.ctx, s.sess, id, "SPA100")
		s.True(errs.Is(err, errs.ErrSessionExpired))
		_, getErr := s.sessions.Get(s.ctx, s.sess.ID())
		s.True(infra.IsKind(getErr, infra.KindNotFound))
	})
}

func (s *TransactionCommandsTestSuite) TestMembership() {
	records := []discount.Record{
		{ID: "m1", PlanName: "Gold", RemainingServices: 2},
		{ID: "m2", PlanName: "Silver", RemainingServices: 0},
	}

	s.Run("success: search then choose", func() {
		id := s.open()
		s.memberships.EXPECT().FindMemberships(gomock.Any(), s.sess, "9876543210").Return(records, nil)

		view, err := s.cmds.SearchMembership(s.ctx, s.sess, id, "9876543210")
		s.Require().NoError(err)
		s.Len(view.Candidates, 2)
		s.Equal(discount.KindNone, view.Discount.Kind)

		view, err = s.cmds.ChooseMembership(s.ctx, s.sess, id, "m1")
		s.Require().NoError(err)
		s.Equal("Gold", view.Discount.PlanName)
		s.assertDec("800", view.Summary.MembershipDiscount, "membershipDiscount")
		s.assertDec("300", view.Summary.FinalTotal, "finalTotal")
	})

	s.Run("error: cap message names the remaining services", func() {
		id := s.open()
		s.memberships.EXPECT().FindMemberships(gomock.Any(), s.sess, "9876543210").Return(records, nil)
		_, err := s.cmds.SearchMembership(s.ctx, s.sess, id, "9876543210")
		s.Require().NoError(err)
		_, err = s.cmds.ChooseMembership(s.ctx, s.sess, id, "m1")
		s.Require().NoError(err)

		_, err = s.cmds.AddLine(s.ctx, s.sess, id, "s1")
		s.True(errs.Is(err, commands.ErrMembershipCapReached))
		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal("You can only add 2 services with this membership.", errs.UserMessage(err, ""))
	})

	s.Run("error: exhausted membership", func() {
		id := s.open()
		s.memberships.EXPECT().FindMemberships(gomock.Any(), s.sess, "9876543210").Return(records, nil)
		_, err := s.cmds.SearchMembership(s.ctx, s.sess, id, "9876543210")
		s.Require().NoError(err)

		_, err = s.cmds.ChooseMembership(s.ctx, s.sess, id, "m2")
		s.True(errs.Is(err, commands.ErrMembershipExhausted))
		_, err = s.cmds.ChooseMembership(s.ctx, s.sess, id, "m9")
		s.True(errs.Is(err, commands.ErrMembershipNotFound))
	})

	s.Run("error: no membership for phone", func() {
		id := s.open()
		s.memberships.EXPECT().FindMemberships(gomock.Any(), s.sess, "9876543210").Return(nil, nil)

		_, err := s.cmds.SearchMembership(s.ctx, s.sess, id, "9876543210")
		s.True(errs.Is(err, commands.ErrNoMembershipFound))
		s.Equal("No active memberships found.", errs.UserMessage(err, ""))
	})

	s.Run("error: lookup rejected by backend", func() {
		id := s.open()
		s.memberships.EXPECT().FindMemberships(gomock.Any(), s.sess, "9876543210").
			Return(nil, infra.Rejected("membership check", ""))

		_, err := s.cmds.SearchMembership(s.ctx, s.sess, id, "9876543210")
		s.True(errs.Is(err, commands.ErrMembershipLookupFailed))
		s.Equal("Error checking membership.", errs.UserMessage(err, ""))
	})

	s.Run("error: blank phone", func() {
		id := s.open()
		_, err := s.cmds.SearchMembership(s.ctx, s.sess, id, " ")
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *TransactionCommandsTestSuite) TestSetStaff() {
	s.Run("success: names come from the backend lists", func() {
		id := s.open()
		s.staff.EXPECT().ListStaff(gomock.Any(), s.sess).Return([]queries.StaffView{{ID: "4", Name: "Ravi"}}, nil)
		s.staff.EXPECT().ListAllStaff(gomock.Any(), s.sess).Return([]queries.StaffView{{ID: "2", Name: "Meera"}}, nil)

		view, err := s.cmds.SetStaff(s.ctx, s.sess, id, "4", "2")
		s.Require().NoError(err)
		s.Equal(transaction.Staff{StaffID: "4", StaffName: "Ravi", BilledByID: "2", BilledByName: "Meera"}, view.Staff)
	})

	s.Run("error: unknown therapist", func() {
		id := s.open()
		s.staff.EXPECT().ListStaff(gomock.Any(), s.sess).Return([]queries.StaffView{{ID: "4", Name: "Ravi"}}, nil)

		_, err := s.cmds.SetStaff(s.ctx, s.sess, id, "5", "")
		s.True(errs.Is(err, commands.ErrStaffNotFound))
	})

	s.Run("error: staff list unavailable", func() {
		id := s.open()
		s.staff.EXPECT().ListStaff(gomock.Any(), s.sess).Return(nil, infra.Error{Kind: infra.KindTransport})

		_, err := s.cmds.SetStaff(s.ctx, s.sess, id, "4", "")
		s.True(errs.Is(err, commands.ErrStaffLookupFailed))
		s.True(errs.Is(err, errs.ErrTransportFailure))
	})
}

func (s *TransactionCommandsTestSuite) TestSubmit() {
	s.Run("success: submitted transaction is discarded", func() {
		id := s.ready()
		s.billing.EXPECT().SubmitBilling(gomock.Any(), s.sess, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *session.Session, rec transaction.BillingRecord) (*commands.BillingReceipt, error) {
				s.Equal(id, rec.TransactionID)
				s.Equal("Ravi", rec.Staff.StaffName)
				s.assertDec("1100", rec.Summary.FinalTotal, "finalTotal")
				return &commands.BillingReceipt{Success: true}, nil
			})

		res, err := s.cmds.Submit(s.ctx, s.sess, id)
		s.Require().NoError(err)
		s.Equal("Appointment stored successfully!", res.Message)
		s.Equal(1.0, promtest.ToFloat64(s.metrics.BillingSubmissions.WithLabelValues("success")))

		_, err = s.cmds.Reset(s.ctx, s.sess, id)
		s.True(errs.Is(err, commands.ErrTransactionNotFound))
	})

	s.Run("error: incomplete transaction lists every problem", func() {
		view, err := s.cmds.Open(s.ctx, s.sess)
		s.Require().NoError(err)

		_, err = s.cmds.Submit(s.ctx, s.sess, view.ID)
		s.True(errs.Is(err, commands.ErrNotReadyForSubmit))
		s.True(errs.Is(err, errs.ErrValidation))
		var problems transaction.SubmitErrors
		s.Require().True(errors.As(err, &problems))
		s.Len(problems, 5)
	})

	s.Run("error: backend refusal keeps the cart", func() {
		id := s.ready()
		s.billing.EXPECT().SubmitBilling(gomock.Any(), s.sess, gomock.Any()).
			Return(&commands.BillingReceipt{Success: false, Message: "Slot already booked"}, nil)

		_, err := s.cmds.Submit(s.ctx, s.sess, id)
		s.True(errs.Is(err, commands.ErrSubmissionFailed))
		s.True(errs.Is(err, errs.ErrSubmissionFailure))
		s.Equal("Slot already booked", errs.UserMessage(err, ""))

		view, err := s.cmds.ResetVoucher(s.ctx, s.sess, id)
		s.Require().NoError(err)
		s.Len(view.Lines, 2)
	})

	s.Run("error: billing endpoint failures are submission failures", func() {
		tests := []struct {
			name    string
			err     error
			wantMsg string
		}{
			{name: "missing endpoint", err: infra.Error{Kind: infra.KindNotFound}, wantMsg: "Error saving appointment"},
			{name: "rejected payload", err: infra.Rejected("422", "Staff is off today"), wantMsg: "Staff is off today"},
			{name: "unreadable reply", err: infra.Error{Kind: infra.KindDecode}, wantMsg: "Error saving appointment"},
		}
		for _, tt := range tests {
			id := s.ready()
			s.billing.EXPECT().SubmitBilling(gomock.Any(), s.sess, gomock.Any()).Return(nil, tt.err)

			_, err := s.cmds.Submit(s.ctx, s.sess, id)

			s.True(errs.Is(err, errs.ErrSubmissionFailure), tt.name)
			s.False(errs.Is(err, errs.ErrNotFound), tt.name)
			s.Equal(tt.wantMsg, errs.UserMessage(err, ""), tt.name)
		}
	})

	s.Run("error: transport failure keeps the cart", func() {
		id := s.ready()
		s.billing.EXPECT().SubmitBilling(gomock.Any(), s.sess, gomock.Any()).
			Return(nil, infra.Error{Kind: infra.KindTransport})

		_, err := s.cmds.Submit(s.ctx, s.sess, id)
		s.True(errs.Is(err, errs.ErrTransportFailure))

		_, err = s.cmds.ResetVoucher(s.ctx, s.sess, id)
		s.NoError(err)
	})

	s.Run("success: retry after a failure reaches the backend again", func() {
		id := s.ready()
		gomock.InOrder(
			s.billing.EXPECT().SubmitBilling(gomock.Any(), s.sess, gomock.Any()).Return(nil, infra.Error{Kind: infra.KindTransport}),
			s.billing.EXPECT().SubmitBilling(gomock.Any(), s.sess, gomock.Any()).Return(&commands.BillingReceipt{Success: true}, nil),
		)

		_, err := s.cmds.Submit(s.ctx, s.sess, id)
		s.Require().Error(err)
		res, err := s.cmds.Submit(s.ctx, s.sess, id)
		s.Require().NoError(err)
		s.False(res.Replayed)
	})

	s.Run("success: a second submit replays the receipt without billing twice", func() {
		id := s.ready()
		s.billing.EXPECT().SubmitBilling(gomock.Any(), s.sess, gomock.Any()).
			Return(&commands.BillingReceipt{Success: true, Message: "Saved"}, nil).Times(1)

		first, err := s.cmds.Submit(s.ctx, s.sess, id)
		s.Require().NoError(err)
		again, err := s.cmds.Submit(s.ctx, s.sess, id)
		s.Require().NoError(err)

		s.True(again.Replayed)
		s.Equal(first.Message, again.Message)
		s.assertDec(first.Summary.FinalTotal.String(), again.Summary.FinalTotal, "finalTotal")
	})

	s.Run("error: submit while another is in flight", func() {
		id := s.ready()
		s.Require().NoError(s.ledger.TryClaim(s.ctx, id, s.sess.Profile().ID()))

		_, err := s.cmds.Submit(s.ctx, s.sess, id)

		s.True(errs.Is(err, commands.ErrSubmissionInProgress))
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("error: another operator cannot replay the receipt", func() {
		id := s.ready()
		s.Require().NoError(s.ledger.TryClaim(s.ctx, id, "someone-else"))
		s.Require().NoError(s.ledger.Complete(s.ctx, id, commands.SubmitResult{TransactionID: id}))

		_, err := s.cmds.Submit(s.ctx, s.sess, id)

		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("success: appointment goes out as pay later", func() {
		id := s.ready()
		_, err := s.cmds.ScheduleAppointment(s.ctx, s.sess, id, testNow.Add(24*time.Hour))
		s.Require().NoError(err)
		s.billing.EXPECT().SubmitBilling(gomock.Any(), s.sess, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *session.Session, rec transaction.BillingRecord) (*commands.BillingReceipt, error) {
				s.True(rec.IsFutureAppointment)
				s.Equal(transaction.PaymentPayLater, rec.PaymentMethod)
				return &commands.BillingReceipt{Success: true, Message: "Booked"}, nil
			})

		res, err := s.cmds.Submit(s.ctx, s.sess, id)
		s.Require().NoError(err)
		s.Equal("Booked", res.Message)
	})
}
