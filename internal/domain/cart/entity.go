package cart

import (
	"errors"
	"sort"

	"spa-pos/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

var (
	ErrLineNotFound   = errors.New("cart line not found")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// LineItem is one service in the cart. Price and duration are copied from the
// catalog at add time and never revalidated.
type LineItem struct {
	serviceID       string
	name            string
	unitPrice       decimal.Decimal
	quantity        int
	lineDiscount    decimal.Decimal
	durationMinutes int
}

func newLineItem(svc catalog.Service) LineItem {
	return LineItem{
		serviceID:       svc.ID(),
		name:            svc.Name(),
		unitPrice:       svc.FinalPrice(),
		quantity:        1,
		lineDiscount:    decimal.Zero,
		durationMinutes: svc.DurationMinutes(),
	}
}

func (l LineItem) ServiceID() string             { return l.serviceID }
func (l LineItem) Name() string                  { return l.name }
func (l LineItem) UnitPrice() decimal.Decimal    { return l.unitPrice }
func (l LineItem) Quantity() int                 { return l.quantity }
func (l LineItem) LineDiscount() decimal.Decimal { return l.lineDiscount }
func (l LineItem) DurationMinutes() int          { return l.durationMinutes }

// Gross is unitPrice x quantity before the line discount.
func (l LineItem) Gross() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// LineTotal is clamped at zero.
func (l LineItem) LineTotal() decimal.Decimal {
	total := l.Gross().Sub(l.lineDiscount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Cart keeps lines in insertion order.
type Cart struct {
	lines []LineItem
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(serviceID string) int {
	for i := range c.lines {
		if c.lines[i].serviceID == serviceID {
			return i
		}
	}
	return -1
}

// Add bumps the quantity of an existing line or appends a fresh one.
func (c *Cart) Add(svc catalog.Service) {
	if i := c.indexOf(svc.ID()); i >= 0 {
		c.lines[i].quantity++
		return
	}
	c.lines = append(c.lines, newLineItem(svc))
}

// Quantity returns 0 for an absent line.
func (c *Cart) Quantity(serviceID string) int {
	if i := c.indexOf(serviceID); i >= 0 {
		return c.lines[i].quantity
	}
	return 0
}

func (c *Cart) Contains(serviceID string) bool {
	return c.indexOf(serviceID) >= 0
}

// SetQuantity removes the line when qty <= 0; removing an absent line is a no-op.
func (c *Cart) SetQuantity(serviceID string, qty int) error {
	i := c.indexOf(serviceID)
	if qty <= 0 {
		if i >= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return nil
	}
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines[i].quantity = qty
	return nil
}

func (c *Cart) SetLineDiscount(serviceID string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	i := c.indexOf(serviceID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines[i].lineDiscount = amount
	return nil
}

func (c *Cart) ItemTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (c *Cart) TotalUnits() int {
	n := 0
	for _, l := range c.lines {
		n += l.quantity
	}
	return n
}

func (c *Cart) TotalMinutes() int {
	n := 0
	for _, l := range c.lines {
		n += l.durationMinutes * l.quantity
	}
	return n
}

// UnitPrices expands every line into quantity copies of its unit price, highest first.
func (c *Cart) UnitPrices() []decimal.Decimal {
	prices := make([]decimal.Decimal, 0, c.TotalUnits())
	for _, l := range c.lines {
		for range l.quantity {
			prices = append(prices, l.unitPrice)
		}
	}
	sort.SliceStable(prices, func(i, j int) bool {
		return prices[i].GreaterThan(prices[j])
	})
	return prices
}

func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Clone() *Cart {
	return &Cart{lines: c.Lines()}
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) Clear() {
	c.lines = nil
}
