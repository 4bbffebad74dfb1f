//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const (
	backendToken    = "backend-e2e-token"
	backendUser     = "frontdesk"
	backendPassword = "password123"
)

// FakeBackend plays the spa backend: fixed catalog and staff, one voucher, one
// membership, and a record of every bill it was sent.
type FakeBackend struct {
	*httptest.Server

	mu       sync.Mutex
	bills    []map[string]any
	rejectAt string
}

func NewFakeBackend() *FakeBackend {
	b := &FakeBackend{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/web-login", b.login)
	mux.HandleFunc("GET /api/admin/list-product", b.authed(b.products))
	mux.HandleFunc("GET /api/admin/staff", b.authed(b.staff))
	mux.HandleFunc("GET /api/admin/allstaff", b.authed(b.allStaff))
	mux.HandleFunc("GET /api/admin/appointments/check-phone/{phone}", b.authed(b.checkPhone))
	mux.HandleFunc("POST /api/admin/check-voucher", b.authed(b.checkVoucher))
	mux.HandleFunc("GET /api/admin/membership/check", b.authed(b.membership))
	mux.HandleFunc("POST /api/admin/today-billing", b.authed(b.billing))
	b.Server = httptest.NewServer(mux)
	return b
}

// Bills returns copies of the billing payloads received so far.
func (b *FakeBackend) Bills() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.bills...)
}

// RejectBillsFor makes billing refuse sales for the given customer name.
func (b *FakeBackend) RejectBillsFor(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rejectAt = name
}

func (b *FakeBackend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bills = nil
	b.rejectAt = ""
}

func (b *FakeBackend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+backendToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})
			return
		}
		next(w, r)
	}
}

func (b *FakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Username != backendUser || body.Password != backendPassword {
		writeJSON(w, http.StatusOK, map[string]any{"status": false, "message": "Invalid username or password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       true,
		"access_token": backendToken,
		"user":         map[string]any{"id": 17, "name": "Front Desk", "email": "desk@spa.test", "role": "pos", "branch": 2},
	})
}

func (b *FakeBackend) products(w http.ResponseWriter, r *http.Request) {
	items := []map[string]any{
		{"id": 1, "name": "Swedish Massage", "price": "1500", "final_price": "1200", "duration": 60, "category": map[string]any{"name": "Massage"}},
		{"id": 2, "name": "Foot Reflexology", "price": "800", "final_price": "800", "duration": "30", "category": map[string]any{"name": "Massage"}},
		{"id": 3, "name": "Facial", "price": 950, "duration": 45},
	}
	if q := strings.ToLower(r.URL.Query().Get("search")); q != "" {
		filtered := items[:0:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it["name"].(string)), q) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": true,
		"data":   map[string]any{"data": items, "current_page": 1, "last_page": 1, "total": len(items)},
	})
}

func (b *FakeBackend) staff(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": true, "staff": []map[string]any{
		{"id": 4, "name": "Ravi", "role": "therapist"},
	}})
}

func (b *FakeBackend) allStaff(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": true, "data": []map[string]any{
		{"id": 2, "name": "Meera", "role": "front_desk"},
		{"id": 4, "name": "Ravi", "role": "therapist"},
	}})
}

func (b *FakeBackend) checkPhone(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("phone") == "9876543210" {
		writeJSON(w, http.StatusOK, map[string]any{"exists": true, "customer_name": "Asha", "customer_phone": "9876543210"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exists": false})
}

func (b *FakeBackend) checkVoucher(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VoucherCode string `json:"voucherCode"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.VoucherCode != "SPA100" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"status": false, "message": "Voucher has expired"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": true, "message": "Voucher is valid"})
}

func (b *FakeBackend) membership(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("phone") != "9876543210" {
		writeJSON(w, http.StatusOK, map[string]any{"has_membership": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"has_membership": true,
		"memberships": []map[string]any{
			{"id": 31, "plan_name": "Gold", "remaining_services": 2, "expires_on": "2099-12-31"},
		},
	})
}

func (b *FakeBackend) billing(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"status": false, "message": "bad payload"})
		return
	}

	b.mu.Lock()
	reject := b.rejectAt != "" && body["customer_name"] == b.rejectAt
	if !reject {
		b.bills = append(b.bills, body)
	}
	b.mu.Unlock()

	if reject {
		writeJSON(w, http.StatusOK, map[string]any{"status": false, "message": "Therapist is already booked"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": true, "message": "Appointment stored successfully!"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
