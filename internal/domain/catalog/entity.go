package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyServiceID   = errors.New("service id is required")
	ErrNegativePrice    = errors.New("service price cannot be negative")
	ErrNegativeDuration = errors.New("service duration cannot be negative")
)

// Service is a sellable catalog entry as published by the backend.
type Service struct {
	id              string
	name            string
	finalPrice      decimal.Decimal
	durationMinutes int
}

func NewService(id, name string, finalPrice decimal.Decimal, durationMinutes int) (Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Service{}, ErrEmptyServiceID
	}
	if finalPrice.IsNegative() {
		return Service{}, ErrNegativePrice
	}
	if durationMinutes < 0 {
		return Service{}, ErrNegativeDuration
	}
	return Service{
		id:              id,
		name:            name,
		finalPrice:      finalPrice,
		durationMinutes: durationMinutes,
	}, nil
}

func (s Service) ID() string                  { return s.id }
func (s Service) Name() string                { return s.name }
func (s Service) FinalPrice() decimal.Decimal { return s.finalPrice }
func (s Service) DurationMinutes() int        { return s.durationMinutes }

// Snapshot is an id-indexed view of a catalog listing.
type Snapshot struct {
	byID  map[string]Service
	order []string
}

func NewSnapshot(services []Service) *Snapshot {
	s := &Snapshot{byID: make(map[string]Service, len(services))}
	for _, svc := range services {
		if _, dup := s.byID[svc.id]; !dup {
			s.order = append(s.order, svc.id)
		}
		s.byID[svc.id] = svc
	}
	return s
}

func (s *Snapshot) Lookup(id string) (Service, bool) {
	svc, ok := s.byID[id]
	return svc, ok
}

// Merge returns a new snapshot holding both listings; entries in other win.
func (s *Snapshot) Merge(other *Snapshot) *Snapshot {
	all := s.Services()
	if other != nil {
		all = append(all, other.Services()...)
	}
	return NewSnapshot(all)
}

func (s *Snapshot) Services() []Service {
	out := make([]Service, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *Snapshot) Len() int { return len(s.order) }
