package pricing

import (
	"errors"

	"pizza_delivery/internal/models"
)

var (
	ErrInvalidSize     = errors.New("invalid pizza size")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Policy controls how the catalog discount is treated. The storefront shows
// the discount as a badge; whether it also reduces the charged price is a
// deployment decision, off by default.
type Policy struct {
	ApplyDiscount bool
}

// Quote is the priced result for one prospective cart line.
type Quote struct {
	UnitPrice int `json:"unit_price"`
	LineTotal int `json:"line_total"`
}

type Calculator struct {
	policy Policy
}

func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

// Quote computes the unit price for a pizza in the given size with the given
// extras, and the line total for the quantity. It is a pure function of its
// inputs: the same call backs both live previews and cart insertion.
func (c *Calculator) Quote(pizza *models.Pizza, size models.PizzaSize, quantity int, extras []models.ExtraIngredient) (*Quote, error) {
	if !size.Valid() {
		return nil, ErrInvalidSize
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	base, ok := pizza.PriceFor(size)
	if !ok {
		return nil, ErrInvalidSize
	}

	unit := base
	for _, extra := range extras {
		unit += extra.Price
	}

	if c.policy.ApplyDiscount && pizza.Discount > 0 {
		// Integer truncation: 349 at 10% discount charges 314.
		unit = unit * (100 - pizza.Discount) / 100
	}

	return &Quote{
		UnitPrice: unit,
		LineTotal: unit * quantity,
	}, nil
}
