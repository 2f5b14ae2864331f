package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{1.235, 1.24},
		{1.2349999, 1.23},
		{180, 180},
		{0.005, 0.01},
	}

	for _, c := range cases {
		assert.InDelta(t, c.want, round2(c.in), 1e-9, "round2(%v)", c.in)
	}
}

func TestValueLine(t *testing.T) {
	t.Run("Ten percent off, quantity two", func(t *testing.T) {
		line := valueLine(LineRow{
			ProductID:   "prod-1",
			ProductName: "Beras Premium",
			Price:       100,
			Discount:    10,
			Quantity:    2,
		})

		assert.InDelta(t, 10.00, line.DiscountAmount, 1e-9)
		assert.InDelta(t, 90.00, line.UnitPrice, 1e-9)
		assert.InDelta(t, 180.00, line.LineTotal, 1e-9)
	})

	t.Run("No discount", func(t *testing.T) {
		line := valueLine(LineRow{Price: 42.50, Discount: 0, Quantity: 3})

		assert.InDelta(t, 0, line.DiscountAmount, 1e-9)
		assert.InDelta(t, 42.50, line.UnitPrice, 1e-9)
		assert.InDelta(t, 127.50, line.LineTotal, 1e-9)
	})

	t.Run("Full discount makes the line free", func(t *testing.T) {
		line := valueLine(LineRow{Price: 50, Discount: 100, Quantity: 2})

		assert.InDelta(t, 50.00, line.DiscountAmount, 1e-9)
		assert.InDelta(t, 0, line.UnitPrice, 1e-9)
		assert.InDelta(t, 0, line.LineTotal, 1e-9)
	})

	t.Run("Discount amount rounds before subtraction", func(t *testing.T) {
		// Raw discount is 0.3267; it rounds to 0.33 first, so the unit
		// price is 0.66 and a hundred units total 66.00. Rounding only
		// the final total would give 66.33 instead.
		line := valueLine(LineRow{Price: 0.99, Discount: 33, Quantity: 100})

		assert.InDelta(t, 0.33, line.DiscountAmount, 1e-9)
		assert.InDelta(t, 0.66, line.UnitPrice, 1e-9)
		assert.InDelta(t, 66.00, line.LineTotal, 1e-9)
	})
}

func TestValueCart(t *testing.T) {
	t.Run("Sums rounded line totals", func(t *testing.T) {
		view := valueCart(7, []LineRow{
			{ProductID: "prod-1", Price: 100, Discount: 10, Quantity: 2},
			{ProductID: "prod-2", Price: 42.50, Discount: 0, Quantity: 3},
		})

		assert.Equal(t, int64(7), view.CartID)
		assert.Len(t, view.Lines, 2)
		assert.InDelta(t, 307.50, view.Total, 1e-9)
	})

	t.Run("Aggregate is rounded after summing", func(t *testing.T) {
		// 0.10 + 0.20 accumulates float noise; the final rounding
		// cleans it up to exactly two decimals.
		view := valueCart(7, []LineRow{
			{ProductID: "prod-1", Price: 0.10, Discount: 0, Quantity: 1},
			{ProductID: "prod-2", Price: 0.20, Discount: 0, Quantity: 1},
		})

		assert.InDelta(t, 0.30, view.Total, 1e-12)
	})

	t.Run("Empty cart values to zero", func(t *testing.T) {
		view := valueCart(7, nil)

		assert.Equal(t, int64(7), view.CartID)
		assert.NotNil(t, view.Lines)
		assert.Empty(t, view.Lines)
		assert.Zero(t, view.Total)
	})
}
