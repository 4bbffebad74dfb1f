//go:build unit || e2e

package builder

import (
	"strconv"

	"spa-pos/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type ServiceBuilder struct {
	ID              string
	Name            string
	Price           decimal.Decimal
	DurationMinutes int
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              "101",
		Name:            "Swedish Massage",
		Price:           decimal.NewFromInt(500),
		DurationMinutes: 60,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) WithID(id string) *ServiceBuilder {
	b.ID = id
	return b
}

func (b *ServiceBuilder) WithPrice(price int64) *ServiceBuilder {
	b.Price = decimal.NewFromInt(price)
	return b
}

func (b *ServiceBuilder) BuildDomain() (catalog.Service, error) {
	return catalog.NewService(b.ID, b.Name, b.Price, b.DurationMinutes)
}

func (b *ServiceBuilder) MustBuildDomain() catalog.Service {
	svc, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return svc
}

// Priced returns one service per price, with ids s1, s2, ...
func Priced(prices ...int64) []catalog.Service {
	out := make([]catalog.Service, 0, len(prices))
	for i, p := range prices {
		out = append(out, NewServiceBuilder().
			WithID("s"+strconv.Itoa(i+1)).
			WithPrice(p).
			MustBuildDomain())
	}
	return out
}
