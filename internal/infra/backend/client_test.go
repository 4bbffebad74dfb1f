//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spa-pos/internal/domain/auth"
	"spa-pos/internal/domain/discount"
	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/infra"
	"spa-pos/internal/infra/backend"
	"spa-pos/internal/pkg/config"
	"spa-pos/internal/pkg/metrics"
	"spa-pos/internal/usecase/commands"
	"spa-pos/internal/usecase/queries"
	"spa-pos/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BackendClientTestSuite struct {
	suite.Suite
	mux     *http.ServeMux
	servers []*httptest.Server
	client  *backend.Client
	sess    *session.Session
	ctx     context.Context
}

func TestBackendClientSuite(t *testing.T) {
	suite.Run(t, new(BackendClientTestSuite))
}

func (s *BackendClientTestSuite) SetupTest() {
	s.start()
	s.sess = builder.NewSessionBuilder().MustBuild()
	s.ctx = context.Background()
}

// SetupSubTest gives every s.Run its own backend.
func (s *BackendClientTestSuite) SetupSubTest() {
	s.start()
}

func (s *BackendClientTestSuite) TearDownTest() {
	for _, srv := range s.servers {
		srv.Close()
	}
	s.servers = nil
}

func (s *BackendClientTestSuite) start() {
	s.mux = http.NewServeMux()
	srv := httptest.NewServer(s.mux)
	s.servers = append(s.servers, srv)
	s.client = backend.NewClient(config.BackendConfig{
		BaseURL: srv.URL + "/api/",
		Timeout: time.Second,
	}, metrics.NewNopMetrics())
}

func (s *BackendClientTestSuite) handle(pattern string, status int, body string) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (s *BackendClientTestSuite) TestLogin() {
	s.Run("success with numeric ids", func() {
		var got map[string]string
		s.mux.HandleFunc("POST /api/web-login", func(w http.ResponseWriter, r *http.Request) {
			s.Empty(r.Header.Get("Authorization"))
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"status":true,"access_token":"tok-1","user":{"id":17,"name":"Asha","email":"asha@spa.test","role":"pos","branch":3}}`))
		})

		creds, err := auth.NewCredentials("frontdesk", "secret")
		s.Require().NoError(err)
		grant, err := s.client.Login(s.ctx, creds)

		s.Require().NoError(err)
		s.Equal(map[string]string{"username": "frontdesk", "password": "secret"}, got)
		s.Equal("tok-1", grant.AccessToken)
		s.Equal("17", grant.UserID)
		s.Equal("pos", grant.Role)
		s.Require().NotNil(grant.BranchID)
		s.Equal("3", *grant.BranchID)
	})

	s.Run("status false is a rejection with the backend message", func() {
		s.handle("POST /api/web-login", http.StatusOK, `{"status":false,"message":"Invalid credentials"}`)

		creds, _ := auth.NewCredentials("frontdesk", "wrong")
		_, err := s.client.Login(s.ctx, creds)

		s.True(infra.IsKind(err, infra.KindRejected))
		s.Equal("Invalid credentials", infra.RemoteMessage(err))
	})
}

func (s *BackendClientTestSuite) TestListServices() {
	var query string
	s.mux.HandleFunc("GET /api/admin/list-product", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer backend-token", r.Header.Get("Authorization"))
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"status":true,"data":{"data":[
			{"id":1,"name":"Swedish Massage","price":"1500.00","final_price":"1200.00","duration":"60","category":{"name":"Massage"}},
			{"id":"2","name":"Foot Spa","price":800,"duration":30}
		],"current_page":1,"last_page":4,"total":38}}`))
	})

	page, err := s.client.ListServices(s.ctx, s.sess, queries.ListServicesParams{Page: 1, PerPage: 10, Search: " massage "})

	s.Require().NoError(err)
	s.Equal("page=1&per_page=10&search=massage", query)
	want := &queries.ServicePage{
		Items: []queries.ServiceView{
			{ID: "1", Name: "Swedish Massage", Category: "Massage", BasePrice: decimal.NewFromInt(1500), FinalPrice: decimal.NewFromInt(1200), DurationMinutes: 60},
			{ID: "2", Name: "Foot Spa", BasePrice: decimal.NewFromInt(800), FinalPrice: decimal.NewFromInt(800), DurationMinutes: 30},
		},
		CurrentPage: 1,
		LastPage:    4,
		Total:       38,
	}
	if diff := cmp.Diff(want, page, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
		s.Failf("service page mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *BackendClientTestSuite) TestStaffAndCustomer() {
	s.handle("GET /api/admin/staff", http.StatusOK, `{"status":true,"staff":[{"id":4,"name":"Meera","role":"therapist"}]}`)
	s.handle("GET /api/admin/allstaff", http.StatusOK, `{"status":true,"staff":[{"id":2,"name":"Ravi","role":"manager"},{"id":4,"name":"Meera","role":"therapist"}]}`)
	s.handle("GET /api/admin/appointments/check-phone/9876543210", http.StatusOK, `{"exists":true,"customer_name":"Asha","customer_phone":"9876543210"}`)
	s.handle("GET /api/admin/appointments/check-phone/9000000000", http.StatusOK, `{"exists":false}`)

	staff, err := s.client.ListStaff(s.ctx, s.sess)
	s.Require().NoError(err)
	s.Equal([]queries.StaffView{{ID: "4", Name: "Meera", Role: "therapist"}}, staff)

	all, err := s.client.ListAllStaff(s.ctx, s.sess)
	s.Require().NoError(err)
	s.Len(all, 2)

	known, err := s.client.FindCustomerByPhone(s.ctx, s.sess, "9876543210")
	s.Require().NoError(err)
	s.Equal(&queries.CustomerView{Exists: true, Name: "Asha", Phone: "9876543210"}, known)

	unknown, err := s.client.FindCustomerByPhone(s.ctx, s.sess, "9000000000")
	s.Require().NoError(err)
	s.Equal(&queries.CustomerView{Exists: false, Phone: "9000000000"}, unknown)
}

func (s *BackendClientTestSuite) TestCheckVoucher() {
	tests := []struct {
		name   string
		status int
		body   string
		want   *commands.VoucherVerdict
	}{
		{name: "accepted", status: http.StatusOK, body: `{"status":true,"message":"Voucher valid"}`, want: &commands.VoucherVerdict{Valid: true, Message: "Voucher valid"}},
		{name: "refused in body", status: http.StatusOK, body: `{"status":false,"message":"Voucher expired"}`, want: &commands.VoucherVerdict{Valid: false, Message: "Voucher expired"}},
		{name: "refused with 422", status: http.StatusUnprocessableEntity, body: `{"message":"Voucher already used"}`, want: &commands.VoucherVerdict{Valid: false, Message: "Voucher already used"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var sent map[string]string
			s.mux.HandleFunc("POST /api/admin/check-voucher", func(w http.ResponseWriter, r *http.Request) {
				s.Require().NoError(json.NewDecoder(r.Body).Decode(&sent))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			verdict, err := s.client.CheckVoucher(s.ctx, s.sess, "SPA100")

			s.Require().NoError(err)
			s.Equal("SPA100", sent["voucherCode"])
			s.Equal(tt.want.Valid, verdict.Valid)
			s.Equal(tt.want.Message, verdict.Message)
		})
	}
}

func (s *BackendClientTestSuite) TestFindMemberships() {
	s.Run("active memberships", func() {
		s.mux.HandleFunc("GET /api/admin/membership/check", func(w http.ResponseWriter, r *http.Request) {
			s.Equal("9876543210", r.URL.Query().Get("phone"))
			_, _ = w.Write([]byte(`{"has_membership":true,"memberships":[
				{"id":11,"plan_name":"Gold","remaining_services":3,"expires_on":"2026-03-31"},
				{"id":12,"plan_name":"Silver","remaining_services":"0"}
			]}`))
		})

		got, err := s.client.FindMemberships(s.ctx, s.sess, "9876543210")

		s.Require().NoError(err)
		expires := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		want := []discount.Record{
			{ID: "11", PlanName: "Gold", RemainingServices: 3, ExpiresOn: &expires},
			{ID: "12", PlanName: "Silver", RemainingServices: 0},
		}
		s.Empty(cmp.Diff(want, got))
	})

	s.Run("no membership", func() {
		s.handle("GET /api/admin/membership/check", http.StatusOK, `{"has_membership":false}`)

		got, err := s.client.FindMemberships(s.ctx, s.sess, "9000000000")

		s.NoError(err)
		s.Empty(got)
	})
}

func (s *BackendClientTestSuite) TestSubmitBilling() {
	serviceAt := time.Date(2025, 10, 1, 15, 0, 0, 0, time.UTC)
	branch := "3"
	rec := transaction.BillingRecord{
		TransactionID: uuid.MustParse("6f1c1f5e-6a52-4f0e-9a53-2a3ad1b0f001"),
		BranchID:      &branch,
		Customer:      transaction.Customer{Name: "Asha", Phone: "9876543210", Source: transaction.SourceGoogle},
		Staff:         transaction.Staff{StaffID: "4", StaffName: "Meera", BilledByID: "2", BilledByName: "Ravi"},
		PaymentMethod: transaction.PaymentUPI,
		Lines: []transaction.BillingLine{{
			ServiceID: "1", Name: "Swedish Massage", UnitPrice: decimal.NewFromInt(500), Quantity: 2,
			Discount: decimal.NewFromInt(50), LineTotal: decimal.NewFromInt(950), DurationMinutes: 60,
		}},
		Summary: transaction.Summary{
			ItemTotal:    decimal.NewFromInt(950),
			BillDiscount: decimal.NewFromInt(100),
			Subtotal:     decimal.NewFromInt(850),
			GSTPercent:   decimal.NewFromInt(18),
			GSTAmount:    decimal.NewFromInt(153),
			FinalTotal:   decimal.NewFromInt(1003),
			TotalUnits:   2,
			TotalMinutes: 120,
		},
		DiscountKind:     discount.KindManual,
		BillDiscountType: "flat",
		ServiceAt:        &serviceAt,
	}

	s.Run("payload uses the backend field names", func() {
		var sent map[string]any
		s.mux.HandleFunc("POST /api/admin/today-billing", func(w http.ResponseWriter, r *http.Request) {
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&sent))
			_, _ = w.Write([]byte(`{"status":true,"message":"Appointment stored successfully!"}`))
		})

		receipt, err := s.client.SubmitBilling(s.ctx, s.sess, rec)

		s.Require().NoError(err)
		s.True(receipt.Success)
		s.Equal("Appointment stored successfully!", receipt.Message)

		s.Equal("Asha", sent["customer_name"])
		s.Equal(float64(4), sent["staff_id"])
		s.Equal(float64(2), sent["billed_staff_id"])
		s.Equal("upi", sent["payment_method"])
		s.Equal(float64(850), sent["grand_total"])
		s.Equal(float64(1003), sent["final_total"])
		s.Equal(float64(120), sent["total_duration"])
		s.Equal("Google", sent["customer_source"])
		s.Equal("flat", sent["billDiscountType"])
		s.Nil(sent["voucherCode"])
		s.Nil(sent["membership_id"])
		s.Equal(false, sent["is_future_appointment"])
		s.Equal("2025-10-01T15:00:00", sent["datetime"])
		s.Equal(float64(2), sent["totalCartServices"])

		cart, ok := sent["cart"].([]any)
		s.Require().True(ok)
		s.Require().Len(cart, 1)
		line := cart[0].(map[string]any)
		s.Equal(float64(1), line["service_id"])
		s.Equal(float64(950), line["line_total"])
	})

	s.Run("status false is an unsuccessful receipt", func() {
		s.handle("POST /api/admin/today-billing", http.StatusOK, `{"status":false,"message":"Staff is busy"}`)

		receipt, err := s.client.SubmitBilling(s.ctx, s.sess, rec)

		s.Require().NoError(err)
		s.False(receipt.Success)
		s.Equal("Staff is busy", receipt.Message)
	})
}

func TestBackendClientErrors(t *testing.T) {
	sess := builder.NewSessionBuilder().MustBuild()

	tests := []struct {
		name   string
		status int
		body   string
		kind   infra.ErrorKind
	}{
		{name: "401 is unauthorized", status: http.StatusUnauthorized, body: `{"message":"Unauthenticated."}`, kind: infra.KindUnauthorized},
		{name: "404 is not found", status: http.StatusNotFound, body: ``, kind: infra.KindNotFound},
		{name: "500 is transport", status: http.StatusInternalServerError, body: `oops`, kind: infra.KindTransport},
		{name: "malformed body is decode", status: http.StatusOK, body: `{"staff":`, kind: infra.KindDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := backend.NewClient(config.BackendConfig{BaseURL: server.URL, Timeout: time.Second}, metrics.NewNopMetrics())
			_, err := client.ListStaff(context.Background(), sess)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.kind), "got %v", err)
		})
	}

	t.Run("invalidated session never reaches the wire", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		dead := builder.NewSessionBuilder().MustBuild()
		dead.Invalidate(time.Now())
		client := backend.NewClient(config.BackendConfig{BaseURL: server.URL, Timeout: time.Second}, metrics.NewNopMetrics())
		_, err := client.ListStaff(context.Background(), dead)

		assert.True(t, infra.IsKind(err, infra.KindUnauthorized))
		assert.False(t, called)
	})

	t.Run("unreachable backend is transport", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := backend.NewClient(config.BackendConfig{BaseURL: url, Timeout: time.Second}, metrics.NewNopMetrics())
		_, err := client.ListStaff(context.Background(), sess)

		assert.True(t, infra.IsKind(err, infra.KindTransport))
	})
}
