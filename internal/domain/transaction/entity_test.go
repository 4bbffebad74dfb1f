//go:build unit

package transaction_test

import (
	"errors"
	"testing"
	"time"

	"spa-pos/internal/domain/cart"
	"spa-pos/internal/domain/discount"
	"spa-pos/internal/domain/transaction"
	"spa-pos/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 1, 11, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%s: want %s got %s", field, want, got)
}

func newTxnWith(t *testing.T, prices ...int64) *transaction.Transaction {
	t.Helper()
	txn := transaction.New("17", nil, now)
	for _, svc := range builder.Priced(prices...) {
		require.NoError(t, txn.AddService(svc))
	}
	return txn
}

// scenarioCart holds units [500, 300, 300].
func scenarioCart(t *testing.T) *transaction.Transaction {
	t.Helper()
	txn := newTxnWith(t, 500, 300)
	require.NoError(t, txn.SetQuantity("s2", 2))
	return txn
}

func withMembership(t *testing.T, txn *transaction.Transaction, free int) {
	t.Helper()
	txn.RememberMemberships([]discount.Record{{ID: "m1", PlanName: "Gold", RemainingServices: free}})
	require.NoError(t, txn.ChooseMembership("m1"))
}

func TestPricingScenarios(t *testing.T) {
	t.Run("no discount with 18 percent gst", func(t *testing.T) {
		txn := scenarioCart(t)
		require.NoError(t, txn.SetGST(d("18")))

		s := txn.Summary()
		assertDec(t, "1100", s.ItemTotal, "itemTotal")
		assertDec(t, "1100", s.Subtotal, "subtotal")
		assertDec(t, "198", s.GSTAmount, "gstAmount")
		assertDec(t, "1298", s.FinalTotal, "finalTotal")
	})

	t.Run("accepted voucher zeroes the bill", func(t *testing.T) {
		txn := scenarioCart(t)
		require.NoError(t, txn.SetGST(d("18")))
		require.NoError(t, txn.ApplyVoucher("FREEBILL"))

		s := txn.Summary()
		assertDec(t, "1100", s.BillDiscount, "billDiscount")
		assertDec(t, "0", s.Subtotal, "subtotal")
		assertDec(t, "0", s.GSTAmount, "gstAmount")
		assertDec(t, "0", s.FinalTotal, "finalTotal")
	})

	t.Run("membership with one credit takes the most expensive unit", func(t *testing.T) {
		txn := scenarioCart(t)
		withMembership(t, txn, 1)

		s := txn.Summary()
		assertDec(t, "500", s.MembershipDiscount, "membershipDiscount")
		assertDec(t, "1100", s.ItemTotal, "itemTotal")
		assertDec(t, "600", s.Subtotal, "subtotal")
		assert.Equal(t, 1, s.FreeServicesUsed)
	})

	t.Run("manual discount without gst", func(t *testing.T) {
		txn := scenarioCart(t)
		require.NoError(t, txn.SetManualDiscount(d("200")))

		s := txn.Summary()
		assertDec(t, "900", s.Subtotal, "subtotal")
		assertDec(t, "900", s.FinalTotal, "finalTotal")
	})

	t.Run("increase at the membership cap is refused and state is unchanged", func(t *testing.T) {
		txn := newTxnWith(t, 500, 300)
		withMembership(t, txn, 2)
		before := txn.Lines()

		require.ErrorIs(t, txn.SetQuantity("s1", 2), transaction.ErrMembershipCapReached)
		require.ErrorIs(t, txn.AddService(builder.Priced(900)[0]), transaction.ErrMembershipCapReached)

		if diff := cmp.Diff(before, txn.Lines(), cmp.AllowUnexported(cart.LineItem{})); diff != "" {
			t.Errorf("lines changed after refused increase (-want +got):\n%s", diff)
		}
	})

	t.Run("line discount above the line clamps to zero", func(t *testing.T) {
		txn := newTxnWith(t, 500)
		require.NoError(t, txn.SetLineDiscount("s1", d("1000")))

		assertDec(t, "0", txn.Lines()[0].LineTotal(), "lineTotal")
		assertDec(t, "0", txn.Summary().ItemTotal, "itemTotal")
	})
}

func TestMembershipSoftCap(t *testing.T) {
	t.Run("increase below the cap may overshoot", func(t *testing.T) {
		txn := newTxnWith(t, 500)
		withMembership(t, txn, 2)

		require.NoError(t, txn.SetQuantity("s1", 5))
		assert.Equal(t, 5, txn.Summary().TotalUnits)
		assert.Equal(t, 2, txn.Summary().FreeServicesUsed)
	})

	t.Run("add is allowed one below the cap and refused at it", func(t *testing.T) {
		txn := newTxnWith(t, 500)
		withMembership(t, txn, 2)
		svc := builder.Priced(500)[0]

		require.NoError(t, txn.AddService(svc))
		require.ErrorIs(t, txn.AddService(svc), transaction.ErrMembershipCapReached)
	})

	t.Run("decreases and removals are never blocked over the cap", func(t *testing.T) {
		txn := scenarioCart(t)
		withMembership(t, txn, 1)

		require.NoError(t, txn.SetQuantity("s2", 1))
		require.NoError(t, txn.SetQuantity("s1", 0))
		assert.Equal(t, 1, txn.Summary().TotalUnits)
	})

	t.Run("setting the same quantity is not an increase", func(t *testing.T) {
		txn := scenarioCart(t)
		withMembership(t, txn, 1)
		require.NoError(t, txn.SetQuantity("s2", 2))
	})

	t.Run("new line through set quantity counts as an increase", func(t *testing.T) {
		txn := newTxnWith(t, 500)
		withMembership(t, txn, 1)
		require.ErrorIs(t, txn.SetQuantity("unknown", 1), transaction.ErrMembershipCapReached)
	})

	t.Run("no membership means no cap", func(t *testing.T) {
		txn := newTxnWith(t, 500)
		require.NoError(t, txn.SetQuantity("s1", 50))
	})
}

func TestDiscountExclusivity(t *testing.T) {
	txn := scenarioCart(t)

	require.NoError(t, txn.ApplyVoucher("V1"))
	assert.Equal(t, discount.KindVoucher, txn.Selection().Kind())

	withMembership(t, txn, 1)
	s := txn.Summary()
	assert.Equal(t, discount.KindMembership, txn.Selection().Kind())
	assertDec(t, "0", s.BillDiscount, "billDiscount after membership")
	assertDec(t, "500", s.MembershipDiscount, "membershipDiscount")

	require.NoError(t, txn.SetManualDiscount(d("150")))
	s = txn.Summary()
	assert.Equal(t, discount.KindManual, txn.Selection().Kind())
	assertDec(t, "150", s.BillDiscount, "billDiscount")
	assertDec(t, "0", s.MembershipDiscount, "membershipDiscount after manual")
	assert.Empty(t, txn.MembershipCandidates())

	require.NoError(t, txn.ApplyVoucher("V2"))
	s = txn.Summary()
	assertDec(t, "1100", s.BillDiscount, "billDiscount")
}

func TestVoucherRules(t *testing.T) {
	t.Run("blank code", func(t *testing.T) {
		txn := scenarioCart(t)
		require.ErrorIs(t, txn.ApplyVoucher("   "), discount.ErrEmptyVoucherCode)
		assert.Equal(t, discount.KindNone, txn.Selection().Kind())
	})

	t.Run("second voucher is refused and keeps the first", func(t *testing.T) {
		txn := scenarioCart(t)
		require.NoError(t, txn.ApplyVoucher("FIRST"))
		require.ErrorIs(t, txn.ApplyVoucher("SECOND"), transaction.ErrVoucherAlreadyApplied)

		v, ok := txn.Selection().(discount.Voucher)
		require.True(t, ok)
		assert.Equal(t, "FIRST", v.Code())
	})

	t.Run("voucher amount stays pinned when the cart grows", func(t *testing.T) {
		txn := scenarioCart(t)
		require.NoError(t, txn.ApplyVoucher("V"))
		require.NoError(t, txn.AddService(builder.NewServiceBuilder().WithID("extra").WithPrice(250).MustBuildDomain()))

		s := txn.Summary()
		assertDec(t, "1100", s.BillDiscount, "billDiscount")
		assertDec(t, "250", s.Subtotal, "subtotal")
	})
}

func TestResetsAreIdempotent(t *testing.T) {
	resets := map[string]struct {
		apply func(*testing.T, *transaction.Transaction)
		reset func(*transaction.Transaction)
	}{
		"voucher": {
			apply: func(t *testing.T, txn *transaction.Transaction) { require.NoError(t, txn.ApplyVoucher("V")) },
			reset: func(txn *transaction.Transaction) { txn.ResetVoucher() },
		},
		"membership": {
			apply: func(t *testing.T, txn *transaction.Transaction) { withMembership(t, txn, 1) },
			reset: func(txn *transaction.Transaction) { txn.ResetMembership() },
		},
		"manual": {
			apply: func(t *testing.T, txn *transaction.Transaction) { require.NoError(t, txn.SetManualDiscount(d("10"))) },
			reset: func(txn *transaction.Transaction) { txn.ClearManualDiscount() },
		},
	}
	for name, r := range resets {
		t.Run(name, func(t *testing.T) {
			txn := scenarioCart(t)
			r.apply(t, txn)

			r.reset(txn)
			once := txn.Summary()
			r.reset(txn)
			twice := txn.Summary()

			assert.Equal(t, discount.KindNone, txn.Selection().Kind())
			assertDec(t, "0", twice.BillDiscount, "billDiscount")
			assertDec(t, "0", twice.MembershipDiscount, "membershipDiscount")
			assert.True(t, once.FinalTotal.Equal(twice.FinalTotal))
		})
	}

	t.Run("resetting a different path leaves the active one alone", func(t *testing.T) {
		txn := scenarioCart(t)
		require.NoError(t, txn.SetManualDiscount(d("100")))
		txn.ResetVoucher()
		assert.Equal(t, discount.KindManual, txn.Selection().Kind())
	})
}

func TestChooseMembership(t *testing.T) {
	txn := scenarioCart(t)
	require.ErrorIs(t, txn.ChooseMembership("m1"), transaction.ErrMembershipNotFound)

	txn.RememberMemberships([]discount.Record{
		{ID: "m1", PlanName: "Gold", RemainingServices: 0},
		{ID: "m2", PlanName: "Silver", RemainingServices: 3},
	})
	require.ErrorIs(t, txn.ChooseMembership("m1"), discount.ErrMembershipExhausted)
	require.NoError(t, txn.ChooseMembership("m2"))
	assert.Len(t, txn.MembershipCandidates(), 2)

	txn.ResetMembership()
	assert.Empty(t, txn.MembershipCandidates())
}

func TestScheduleAndPayment(t *testing.T) {
	t.Run("service time must be a half-hour slot in opening hours", func(t *testing.T) {
		txn := transaction.New("17", nil, now)
		day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		cases := []struct {
			at time.Time
			ok bool
		}{
			{day.Add(9 * time.Hour), true},
			{day.Add(14*time.Hour + 30*time.Minute), true},
			{day.Add(22 * time.Hour), true},
			{day.Add(22*time.Hour + 30*time.Minute), false},
			{day.Add(8*time.Hour + 30*time.Minute), false},
			{day.Add(10*time.Hour + 15*time.Minute), false},
		}
		for _, c := range cases {
			err := txn.SetServiceTime(c.at)
			if c.ok {
				assert.NoError(t, err, c.at.Format(time.Kitchen))
			} else {
				assert.ErrorIs(t, err, transaction.ErrServiceTimeOutsideSlots, c.at.Format(time.Kitchen))
			}
		}
	})

	t.Run("appointment needs ten minutes of lead time", func(t *testing.T) {
		txn := transaction.New("17", nil, now)
		require.ErrorIs(t, txn.ScheduleAppointment(now.Add(9*time.Minute), now), transaction.ErrAppointmentTooSoon)
		require.NoError(t, txn.ScheduleAppointment(now.Add(10*time.Minute), now))
		assert.True(t, txn.IsFutureAppointment())
		txn.ClearAppointment()
		assert.False(t, txn.IsFutureAppointment())
	})

	t.Run("change due for cash", func(t *testing.T) {
		txn := scenarioCart(t)
		assert.Nil(t, txn.ChangeDue())

		cash := d("1500")
		require.NoError(t, txn.SetPayment("cash", &cash, ""))
		require.NotNil(t, txn.ChangeDue())
		assertDec(t, "400", *txn.ChangeDue(), "change")

		short := d("100")
		require.NoError(t, txn.SetPayment("cash", &short, ""))
		assertDec(t, "0", *txn.ChangeDue(), "change")

		require.NoError(t, txn.SetPayment("upi", &cash, " UTR123 "))
		assert.Nil(t, txn.ChangeDue())
		assert.Equal(t, "UTR123", txn.Payment().TransactionNumber)
	})

	t.Run("payment validation", func(t *testing.T) {
		txn := transaction.New("17", nil, now)
		require.ErrorIs(t, txn.SetPayment("cheque", nil, ""), transaction.ErrInvalidPaymentMethod)
		neg := d("-1")
		require.ErrorIs(t, txn.SetPayment("cash", &neg, ""), transaction.ErrNegativeCashReceived)
		require.ErrorIs(t, txn.SetCustomer("A", "9876543210", "TV"), transaction.ErrInvalidCustomerSource)
		require.NoError(t, txn.SetCustomer("A", "9876543210", ""))
		assert.Equal(t, transaction.SourceWalkin, txn.Customer().Source)
	})
}

func readyTxn(t *testing.T) *transaction.Transaction {
	t.Helper()
	txn := scenarioCart(t)
	require.NoError(t, txn.SetCustomer("Asha", "9876543210", "Google"))
	txn.SetStaff(transaction.Staff{StaffID: "4", StaffName: "Ravi", BilledByID: "2", BilledByName: "Meera"})
	require.NoError(t, txn.SetServiceTime(time.Date(2025, 10, 1, 15, 0, 0, 0, time.UTC)))
	return txn
}

func TestValidateForSubmit(t *testing.T) {
	t.Run("ready transaction passes", func(t *testing.T) {
		require.NoError(t, readyTxn(t).ValidateForSubmit(now))
	})

	t.Run("fresh transaction lists every failing rule", func(t *testing.T) {
		txn := transaction.New("17", nil, now)
		require.NoError(t, txn.SetPayment("", nil, ""))

		err := txn.ValidateForSubmit(now)
		var submitErrs transaction.SubmitErrors
		require.True(t, errors.As(err, &submitErrs))
		for _, want := range []error{
			transaction.ErrEmptyCart,
			transaction.ErrMissingCustomerName,
			transaction.ErrInvalidPhone,
			transaction.ErrMissingStaff,
			transaction.ErrMissingServiceTime,
			transaction.ErrMissingPaymentMethod,
		} {
			assert.ErrorIs(t, err, want)
		}
		assert.Len(t, submitErrs, 6)
	})

	t.Run("phone must be exactly ten digits", func(t *testing.T) {
		for _, phone := range []string{"987654321", "98765432101", "98765abcde"} {
			txn := readyTxn(t)
			require.NoError(t, txn.SetCustomer("Asha", phone, ""))
			assert.ErrorIs(t, txn.ValidateForSubmit(now), transaction.ErrInvalidPhone, phone)
		}
	})

	t.Run("payment is waived for voucher membership and bookings", func(t *testing.T) {
		waivers := map[string]func(*testing.T, *transaction.Transaction){
			"voucher":    func(t *testing.T, txn *transaction.Transaction) { require.NoError(t, txn.ApplyVoucher("V")) },
			"membership": func(t *testing.T, txn *transaction.Transaction) { withMembership(t, txn, 1) },
			"appointment": func(t *testing.T, txn *transaction.Transaction) {
				require.NoError(t, txn.ScheduleAppointment(now.Add(time.Hour), now))
			},
		}
		for name, waive := range waivers {
			t.Run(name, func(t *testing.T) {
				txn := readyTxn(t)
				require.NoError(t, txn.SetPayment("", nil, ""))
				require.ErrorIs(t, txn.ValidateForSubmit(now), transaction.ErrMissingPaymentMethod)
				waive(t, txn)
				require.NoError(t, txn.ValidateForSubmit(now))
			})
		}
	})

	t.Run("appointment that has passed", func(t *testing.T) {
		txn := readyTxn(t)
		require.NoError(t, txn.ScheduleAppointment(now.Add(time.Hour), now))
		require.ErrorIs(t, txn.ValidateForSubmit(now.Add(2*time.Hour)), transaction.ErrAppointmentInPast)
	})
}

func TestBillingRecord(t *testing.T) {
	t.Run("membership sale", func(t *testing.T) {
		txn := readyTxn(t)
		require.NoError(t, txn.SetGST(d("18")))
		withMembership(t, txn, 1)

		rec := txn.BillingRecord()
		assert.Equal(t, txn.ID(), rec.TransactionID)
		assert.Equal(t, discount.KindMembership, rec.DiscountKind)
		assert.Equal(t, "m1", rec.MembershipID)
		assert.Empty(t, rec.VoucherCode)
		assert.Equal(t, transaction.PaymentCash, rec.PaymentMethod)
		assert.Equal(t, 1, rec.Summary.FreeServicesUsed)
		assert.Equal(t, 3, rec.Summary.TotalUnits)
		assertDec(t, "600", rec.Summary.Subtotal, "subtotal")
		assertDec(t, "108", rec.Summary.GSTAmount, "gst")
		assertDec(t, "708", rec.Summary.FinalTotal, "final")

		require.Len(t, rec.Lines, 2)
		assert.Equal(t, "s2", rec.Lines[1].ServiceID)
		assert.Equal(t, 2, rec.Lines[1].Quantity)
		assertDec(t, "600", rec.Lines[1].LineTotal, "lineTotal")
		assert.Equal(t, "Ravi", rec.Staff.StaffName)
		assert.Equal(t, transaction.SourceGoogle, rec.Customer.Source)
	})

	t.Run("booking is pay later", func(t *testing.T) {
		txn := readyTxn(t)
		cash := d("2000")
		require.NoError(t, txn.SetPayment("cash", &cash, ""))
		require.NoError(t, txn.ScheduleAppointment(now.Add(24*time.Hour), now))

		rec := txn.BillingRecord()
		assert.True(t, rec.IsFutureAppointment)
		assert.Equal(t, transaction.PaymentPayLater, rec.PaymentMethod)
		assert.Nil(t, rec.CashReceived)
		require.NotNil(t, rec.AppointmentAt)
	})

	t.Run("manual and voucher identifiers", func(t *testing.T) {
		txn := readyTxn(t)
		require.NoError(t, txn.SetManualDiscount(d("50")))
		assert.Equal(t, "flat", txn.BillingRecord().BillDiscountType)

		require.NoError(t, txn.ApplyVoucher("SPA50"))
		rec := txn.BillingRecord()
		assert.Equal(t, "SPA50", rec.VoucherCode)
		assert.Empty(t, rec.BillDiscountType)
	})
}

func TestReset(t *testing.T) {
	txn := readyTxn(t)
	require.NoError(t, txn.SetGST(d("18")))
	require.NoError(t, txn.ApplyVoucher("V"))
	id, owner := txn.ID(), txn.OwnerID()

	txn.Reset(now.Add(time.Minute))

	assert.Equal(t, id, txn.ID())
	assert.Equal(t, owner, txn.OwnerID())
	assert.True(t, txn.IsOwnedBy("17"))
	assert.False(t, txn.IsOwnedBy("18"))
	assert.True(t, txn.IsEmpty())
	assert.Equal(t, discount.KindNone, txn.Selection().Kind())
	assert.True(t, txn.GST().Value().IsZero())
	assert.Equal(t, transaction.Customer{Source: transaction.SourceWalkin}, txn.Customer())
	assert.Equal(t, transaction.PaymentCash, txn.Payment().Method)
	assert.Nil(t, txn.ServiceAt())
	assert.Equal(t, now.Add(time.Minute), txn.UpdatedAt())
}

func TestClone(t *testing.T) {
	txn := readyTxn(t)
	txn.RememberMemberships([]discount.Record{{ID: "m1", PlanName: "Gold", RemainingServices: 2}})

	cp := txn.Clone()
	require.NoError(t, cp.SetQuantity("s1", 7))
	require.NoError(t, cp.ChooseMembership("m1"))
	cp.ResetMembership()

	assert.Equal(t, txn.ID(), cp.ID())
	assert.Equal(t, 1, txn.Lines()[0].Quantity())
	assert.Len(t, txn.MembershipCandidates(), 1)
	assert.Equal(t, discount.KindNone, txn.Selection().Kind())
}
