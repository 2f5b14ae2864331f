package product

import "time"

type Product struct {
	ID          string    `json:"id"`
	SellerID    uint      `json:"seller_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type CreateParams struct {
	SellerID    uint
	Name        string
	Category    string
	Description string
	Price       float64
	Discount    float64
}

// UpdateParams carries partial fields; nil keeps the stored value.
type UpdateParams struct {
	Name        *string
	Category    *string
	Description *string
	Price       *float64
	Discount    *float64
}

func (p UpdateParams) hasFields() bool {
	return p.Name != nil ||
		p.Category != nil ||
		p.Description != nil ||
		p.Price != nil ||
		p.Discount != nil
}

// Filter narrows FindMany. NameContains is a case-insensitive substring
// match, CategoryEquals a case-insensitive equality match; empty means
// unfiltered.
type Filter struct {
	NameContains   string
	CategoryEquals string
}
