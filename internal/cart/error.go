package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrProductRequired = errors.New("product id is required")
	ErrProductNotFound = errors.New("product not found")

	// -- Resource State --
	ErrCartNotFound = errors.New("cart not found")
	ErrLineNotFound = errors.New("cart line not found")
)
