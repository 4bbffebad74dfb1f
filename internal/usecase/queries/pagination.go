package queries

import "strings"

const (
	DefaultPerPage = 12
	MaxPerPage     = 100
)

type ListServicesParams struct {
	Page    int
	PerPage int
	Search  string
}

// Normalize clamps paging to what the backend accepts.
func (p ListServicesParams) Normalize() ListServicesParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}
