package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/infra"
	"spa-pos/internal/pkg/config"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/pkg/metrics"

	"github.com/shopspring/decimal"
)

// maxBody caps how much of a backend response is read.
const maxBody = 4 << 20

// Client talks to the spa backend REST API. All persistent state lives there.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewClient(cfg config.BackendConfig, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		metrics: m,
		logger:  slog.Default().With("component", "backend"),
	}
}

type call struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	body     any
	sess     *session.Session
}

// messageEnvelope is the shape the backend uses for rejections.
type messageEnvelope struct {
	Status  *flexBool `json:"status"`
	Message string    `json:"message"`
	Error   string    `json:"error"`
}

func (m messageEnvelope) ok() bool {
	return m.Status != nil && bool(*m.Status)
}

func (m messageEnvelope) text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

func (c *Client) do(ctx context.Context, req call, out any) error {
	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return infra.WrapErr(c.logger, infra.KindDecode, "encode "+req.endpoint+" request", err)
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + "/" + strings.TrimLeft(req.path, "/")
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return infra.WrapErr(c.logger, infra.KindTransport, "build "+req.endpoint+" request", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.sess != nil {
		token, tokErr := req.sess.Token()
		if tokErr != nil {
			return infra.WrapErr(c.logger, infra.KindUnauthorized, "session has no backend token", tokErr)
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	c.metrics.BackendLatency.WithLabelValues(req.endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return infra.WrapErr(c.logger, infra.KindTransport, req.endpoint+" request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return infra.WrapErr(c.logger, infra.KindTransport, "read "+req.endpoint+" response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(req.endpoint, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return infra.WrapErr(c.logger, infra.KindDecode, "decode "+req.endpoint+" response", err)
	}
	return nil
}

func (c *Client) statusError(endpoint string, status int, raw []byte) error {
	var env messageEnvelope
	_ = json.Unmarshal(raw, &env)
	cause := errs.Newf("backend returned %d", status)

	switch {
	case status == http.StatusUnauthorized:
		return infra.WrapErr(c.logger, infra.KindUnauthorized, endpoint+" unauthorized", cause)
	case status == http.StatusNotFound:
		return infra.WrapErr(c.logger, infra.KindNotFound, endpoint+" not found", cause)
	case status >= http.StatusInternalServerError:
		return infra.WrapErr(c.logger, infra.KindTransport, endpoint+" backend failure", cause)
	default:
		c.logger.Info("backend rejected request", "endpoint", endpoint, "status", status, "message", env.text())
		return infra.Rejected(endpoint+" rejected", env.text())
	}
}

// rejection reports whether err is a backend refusal and the message it carried.
func rejection(err error) (string, bool) {
	if !infra.IsKind(err, infra.KindRejected) {
		return "", false
	}
	return infra.RemoteMessage(err), true
}

// flexID accepts ids sent either as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// flexInt accepts integers that may arrive quoted, e.g. durations.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = flexInt(n)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*f = flexInt(d.IntPart())
	return nil
}

// flexBool accepts true/false, 1/0 and their quoted forms.
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	switch strings.Trim(strings.TrimSpace(string(b)), `"`) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}
