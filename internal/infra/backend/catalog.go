package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/infra"
	"spa-pos/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type productCategory struct {
	Name string `json:"name"`
}

type productItem struct {
	ID         flexID              `json:"id"`
	Name       string              `json:"name"`
	Price      decimal.NullDecimal `json:"price"`
	FinalPrice decimal.NullDecimal `json:"final_price"`
	Duration   flexInt             `json:"duration"`
	Category   *productCategory    `json:"category"`
}

type productPage struct {
	Data        []productItem `json:"data"`
	CurrentPage flexInt       `json:"current_page"`
	LastPage    flexInt       `json:"last_page"`
	Total       flexInt       `json:"total"`
}

type productListResponse struct {
	Status flexBool     `json:"status"`
	Data   *productPage `json:"data"`
}

func (p productItem) toView() queries.ServiceView {
	v := queries.ServiceView{
		ID:              string(p.ID),
		Name:            p.Name,
		DurationMinutes: int(p.Duration),
	}
	if p.Category != nil {
		v.Category = p.Category.Name
	}
	// each price falls back to the other when the backend omits one
	v.BasePrice, v.FinalPrice = p.Price.Decimal, p.FinalPrice.Decimal
	if !p.FinalPrice.Valid {
		v.FinalPrice = v.BasePrice
	}
	if !p.Price.Valid {
		v.BasePrice = v.FinalPrice
	}
	return v
}

func (c *Client) ListServices(ctx context.Context, sess *session.Session, params queries.ListServicesParams) (*queries.ServicePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("per_page", strconv.Itoa(params.PerPage))
	if s := strings.TrimSpace(params.Search); s != "" {
		q.Set("search", s)
	}

	var out productListResponse
	if err := c.do(ctx, call{
		endpoint: "list_services",
		method:   http.MethodGet,
		path:     "admin/list-product",
		query:    q,
		sess:     sess,
	}, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, infra.Rejected("list services refused", "Could not load services")
	}

	page := &queries.ServicePage{
		Items:       make([]queries.ServiceView, 0, len(out.Data.Data)),
		CurrentPage: int(out.Data.CurrentPage),
		LastPage:    int(out.Data.LastPage),
		Total:       int(out.Data.Total),
	}
	for _, item := range out.Data.Data {
		page.Items = append(page.Items, item.toView())
	}
	return page, nil
}

type staffMember struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type staffResponse struct {
	Status flexBool      `json:"status"`
	Staff  []staffMember `json:"staff"`
	Data   []staffMember `json:"data"`
}

func (r staffResponse) members() []staffMember {
	if len(r.Staff) > 0 {
		return r.Staff
	}
	return r.Data
}

func (c *Client) ListStaff(ctx context.Context, sess *session.Session) ([]queries.StaffView, error) {
	return c.listStaff(ctx, sess, "list_staff", "admin/staff")
}

func (c *Client) ListAllStaff(ctx context.Context, sess *session.Session) ([]queries.StaffView, error) {
	return c.listStaff(ctx, sess, "list_all_staff", "admin/allstaff")
}

func (c *Client) listStaff(ctx context.Context, sess *session.Session, endpoint, path string) ([]queries.StaffView, error) {
	var out staffResponse
	if err := c.do(ctx, call{
		endpoint: endpoint,
		method:   http.MethodGet,
		path:     path,
		sess:     sess,
	}, &out); err != nil {
		return nil, err
	}

	members := out.members()
	views := make([]queries.StaffView, 0, len(members))
	for _, m := range members {
		views = append(views, queries.StaffView{ID: string(m.ID), Name: m.Name, Role: m.Role})
	}
	return views, nil
}

type phoneCheckResponse struct {
	Exists        flexBool `json:"exists"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
}

func (c *Client) FindCustomerByPhone(ctx context.Context, sess *session.Session, phone string) (*queries.CustomerView, error) {
	var out phoneCheckResponse
	if err := c.do(ctx, call{
		endpoint: "check_phone",
		method:   http.MethodGet,
		path:     "admin/appointments/check-phone/" + url.PathEscape(phone),
		sess:     sess,
	}, &out); err != nil {
		return nil, err
	}

	view := &queries.CustomerView{Exists: bool(out.Exists), Phone: phone}
	if out.Exists {
		view.Name = out.CustomerName
		if out.CustomerPhone != "" {
			view.Phone = out.CustomerPhone
		}
	}
	return view, nil
}
