package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"spa-pos/internal/domain/discount"
	"spa-pos/internal/domain/session"
	"spa-pos/internal/infra"
	"spa-pos/internal/usecase/commands"
)

type voucherRequest struct {
	VoucherCode string `json:"voucherCode"`
}

// CheckVoucher asks the backend whether code is redeemable. A refusal by the
// backend is a verdict, not an error.
func (c *Client) CheckVoucher(ctx context.Context, sess *session.Session, code string) (*commands.VoucherVerdict, error) {
	var out messageEnvelope
	err := c.do(ctx, call{
		endpoint: "check_voucher",
		method:   http.MethodPost,
		path:     "admin/check-voucher",
		body:     voucherRequest{VoucherCode: code},
		sess:     sess,
	}, &out)
	if err != nil {
		if msg, ok := rejection(err); ok {
			return &commands.VoucherVerdict{Valid: false, Message: msg}, nil
		}
		return nil, err
	}

	return &commands.VoucherVerdict{
		Valid:   out.ok(),
		Message: out.text(),
	}, nil
}

// expiryDate accepts "2006-01-02", RFC3339 and the backend's "2006-01-02 15:04:05".
type expiryDate struct {
	t *time.Time
}

var expiryLayouts = []string{time.DateOnly, time.RFC3339, time.DateTime}

func (e *expiryDate) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		e.t = nil
		return nil
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(*s)); err == nil {
			e.t = &t
			return nil
		}
	}
	// an unreadable expiry is treated as absent
	e.t = nil
	return nil
}

type membershipItem struct {
	ID                flexID     `json:"id"`
	PlanName          string     `json:"plan_name"`
	RemainingServices flexInt    `json:"remaining_services"`
	ExpiresOn         expiryDate `json:"expires_on"`
	ExpiresAt         expiryDate `json:"expires_at"`
}

type membershipResponse struct {
	HasMembership flexBool         `json:"has_membership"`
	Memberships   []membershipItem `json:"memberships"`
}

// FindMemberships returns the active memberships for a phone number, possibly none.
func (c *Client) FindMemberships(ctx context.Context, sess *session.Session, phone string) ([]discount.Record, error) {
	var out membershipResponse
	err := c.do(ctx, call{
		endpoint: "check_membership",
		method:   http.MethodGet,
		path:     "admin/membership/check",
		query:    url.Values{"phone": []string{phone}},
		sess:     sess,
	}, &out)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !out.HasMembership {
		return nil, nil
	}

	records := make([]discount.Record, 0, len(out.Memberships))
	for _, m := range out.Memberships {
		expires := m.ExpiresOn.t
		if expires == nil {
			expires = m.ExpiresAt.t
		}
		records = append(records, discount.Record{
			ID:                string(m.ID),
			PlanName:          m.PlanName,
			RemainingServices: int(m.RemainingServices),
			ExpiresOn:         expires,
		})
	}
	return records, nil
}
