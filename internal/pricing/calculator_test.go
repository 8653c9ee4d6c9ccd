package pricing

import (
	"testing"

	"pizza_delivery/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func margherita() *models.Pizza {
	return &models.Pizza{
		ID:   2,
		Name: "Margherita",
		Prices: models.PriceTable{
			models.SizeSmall:  349,
			models.SizeMedium: 499,
			models.SizeLarge:  699,
		},
	}
}

func TestQuoteBasePriceBySize(t *testing.T) {
	calc := NewCalculator(Policy{})

	quote, err := calc.Quote(margherita(), models.SizeLarge, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 699, quote.UnitPrice)
	assert.Equal(t, 1398, quote.LineTotal)

	quote, err = calc.Quote(margherita(), models.SizeSmall, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 349, quote.UnitPrice)
	assert.Equal(t, 349, quote.LineTotal)
}

func TestQuoteAddsExtras(t *testing.T) {
	calc := NewCalculator(Policy{})
	extras := []models.ExtraIngredient{
		{ID: 1, Name: "Extra cheese", Price: 50},
		{ID: 3, Name: "Mushrooms", Price: 40},
	}

	quote, err := calc.Quote(margherita(), models.SizeMedium, 1, extras)
	require.NoError(t, err)
	assert.Equal(t, 499+50+40, quote.UnitPrice)
	assert.Equal(t, 589, quote.LineTotal)
}

func TestQuoteEmptyExtrasReducesToBasePrice(t *testing.T) {
	calc := NewCalculator(Policy{})

	withNil, err := calc.Quote(margherita(), models.SizeMedium, 1, nil)
	require.NoError(t, err)
	withEmpty, err := calc.Quote(margherita(), models.SizeMedium, 1, []models.ExtraIngredient{})
	require.NoError(t, err)

	assert.Equal(t, 499, withNil.UnitPrice)
	assert.Equal(t, withNil, withEmpty)
}

func TestQuoteInvalidSize(t *testing.T) {
	calc := NewCalculator(Policy{})

	_, err := calc.Quote(margherita(), "extra-large", 1, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)

	// Recognized size missing from the price table is also invalid.
	incomplete := &models.Pizza{Prices: models.PriceTable{models.SizeSmall: 100}}
	_, err = calc.Quote(incomplete, models.SizeLarge, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestQuoteInvalidQuantity(t *testing.T) {
	calc := NewCalculator(Policy{})

	for _, quantity := range []int{0, -1, -100} {
		_, err := calc.Quote(margherita(), models.SizeMedium, quantity, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", quantity)
	}
}

func TestQuoteDiscountPolicyOff(t *testing.T) {
	calc := NewCalculator(Policy{ApplyDiscount: false})
	discounted := margherita()
	discounted.Discount = 10

	quote, err := calc.Quote(discounted, models.SizeSmall, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 349, quote.UnitPrice, "discount is display-only by default")
}

func TestQuoteDiscountPolicyOn(t *testing.T) {
	calc := NewCalculator(Policy{ApplyDiscount: true})
	discounted := margherita()
	discounted.Discount = 10

	quote, err := calc.Quote(discounted, models.SizeSmall, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 314, quote.UnitPrice, "349 * 90 / 100 truncates to 314")
	assert.Equal(t, 628, quote.LineTotal)

	// Discount applies to the extras-inclusive unit price.
	extras := []models.ExtraIngredient{{Name: "Extra cheese", Price: 51}}
	quote, err = calc.Quote(discounted, models.SizeSmall, 1, extras)
	require.NoError(t, err)
	assert.Equal(t, 360, quote.UnitPrice, "(349+51) * 90 / 100")
}

func TestQuoteIsPure(t *testing.T) {
	calc := NewCalculator(Policy{})
	pizza := margherita()

	first, err := calc.Quote(pizza, models.SizeLarge, 3, nil)
	require.NoError(t, err)
	second, err := calc.Quote(pizza, models.SizeLarge, 3, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 699, pizza.Prices[models.SizeLarge], "input not mutated")
}
