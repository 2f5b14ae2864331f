package cart

import "math"

// round2 rounds to 2 decimal places, half away from zero. Prices and
// discounts are non-negative here, so this is plain half-up rounding.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// valueLine prices a single joined row. The discount amount is rounded
// before it is subtracted from the price, and the line total is rounded
// again. Both intermediate roundings are observable in the output and
// callers depend on them.
func valueLine(r LineRow) ValuedLine {
	discountAmount := round2(r.Price * r.Discount / 100)
	unitPrice := r.Price - discountAmount
	return ValuedLine{
		ProductID:      r.ProductID,
		Name:           r.ProductName,
		Price:          r.Price,
		Discount:       r.Discount,
		Quantity:       r.Quantity,
		DiscountAmount: discountAmount,
		UnitPrice:      unitPrice,
		LineTotal:      round2(unitPrice * float64(r.Quantity)),
	}
}

// valueCart maps joined rows into the buyer-facing view. The total sums
// the already-rounded line totals, then rounds once more. Per-line
// rounding happens before the sum, not only at the end.
func valueCart(cartID int64, rows []LineRow) CartView {
	lines := make([]ValuedLine, 0, len(rows))
	var total float64
	for _, r := range rows {
		line := valueLine(r)
		lines = append(lines, line)
		total += line.LineTotal
	}
	return CartView{
		CartID: cartID,
		Lines:  lines,
		Total:  round2(total),
	}
}
