package cart

import "time"

// Cart is the single per-buyer cart row. A buyer has at most one cart;
// lines hang off it in cart_items.
type Cart struct {
	ID        int64     `json:"id"`
	BuyerID   uint      `json:"buyer_id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CartLine is one (cart, product) pairing. UNIQUE(cart_id, product_id)
// guarantees repeated adds merge into the same row.
type CartLine struct {
	ID        int64     `json:"id"`
	CartID    int64     `json:"cart_id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AddParams carries one add-to-cart request.
type AddParams struct {
	BuyerID   uint
	ProductID string
	Quantity  int64
}

// LineRow is a cart line joined with the product fields needed to price it.
type LineRow struct {
	LineID      int64
	ProductID   string
	ProductName string
	Price       float64
	Discount    float64
	Quantity    int64
	UpdatedAt   time.Time
}

// ValuedLine is a priced cart line as returned to the buyer.
type ValuedLine struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Discount       float64 `json:"discount"`
	Quantity       int64   `json:"quantity"`
	DiscountAmount float64 `json:"discount_amount"`
	UnitPrice      float64 `json:"unit_price"`
	LineTotal      float64 `json:"line_total"`
}

// CartView is the full valued cart. An existing cart with no lines yields
// an empty Lines slice and a zero Total.
type CartView struct {
	CartID int64        `json:"cart_id"`
	Lines  []ValuedLine `json:"lines"`
	Total  float64      `json:"total"`
}
