package request

import "spa-pos/internal/usecase/queries"

type ListServicesQuery struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1"`
	Search  string `form:"search"`
}

func (q ListServicesQuery) ToParams() queries.ListServicesParams {
	return queries.ListServicesParams{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
	}.Normalize()
}
