package response

import "spa-pos/internal/usecase/queries"

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category,omitempty"`
	BasePrice       string `json:"base_price"`
	FinalPrice      string `json:"final_price"`
	DurationMinutes int    `json:"duration_minutes"`
}

type ServicePageResponse struct {
	Items       []ServiceResponse `json:"items"`
	CurrentPage int               `json:"current_page"`
	LastPage    int               `json:"last_page"`
	Total       int               `json:"total"`
}

type StaffResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type CustomerResponse struct {
	Exists bool   `json:"exists"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone"`
}

func FromServicePage(p *queries.ServicePage) ServicePageResponse {
	items := make([]ServiceResponse, 0, len(p.Items))
	for _, s := range p.Items {
		items = append(items, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Category:        s.Category,
			BasePrice:       money(s.BasePrice),
			FinalPrice:      money(s.FinalPrice),
			DurationMinutes: s.DurationMinutes,
		})
	}
	return ServicePageResponse{
		Items:       items,
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		Total:       p.Total,
	}
}

func FromStaffViews(views []queries.StaffView) []StaffResponse {
	out := make([]StaffResponse, 0, len(views))
	for _, v := range views {
		out = append(out, StaffResponse{ID: v.ID, Name: v.Name, Role: v.Role})
	}
	return out
}

func FromCustomerView(v *queries.CustomerView) CustomerResponse {
	return CustomerResponse{Exists: v.Exists, Name: v.Name, Phone: v.Phone}
}
