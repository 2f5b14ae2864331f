package product

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired     = errors.New("product name is required")
	ErrInvalidPrice     = errors.New("price cannot be negative")
	ErrInvalidDiscount  = errors.New("discount must be between 0 and 100")
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
