package cart

import (
	"context"
	"strings"

	"pasarku-be/internal/logger"
	"pasarku-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, buyerID uint) (CartView, error)
	AddToCart(ctx context.Context, params AddParams) (CartLine, error)
	RemoveFromCart(ctx context.Context, buyerID uint, productID string) (int64, error)
	ClearCart(ctx context.Context, buyerID uint) (int64, error)
}

type service struct {
	repo     Repository
	products product.Repository
}

// NewService creates a new cart service.
func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

// GetCart returns the buyer's cart with every line priced. A buyer who has
// never added anything has no cart row and gets ErrCartNotFound; an existing
// cart with no lines is a valid empty view.
func (s *service) GetCart(ctx context.Context, buyerID uint) (CartView, error) {
	c, err := s.repo.FindCartByBuyer(ctx, buyerID)
	if err != nil {
		return CartView{}, err
	}
	if c == nil {
		return CartView{}, ErrCartNotFound
	}

	rows, err := s.repo.LineRows(ctx, c.ID)
	if err != nil {
		return CartView{}, err
	}

	return valueCart(c.ID, rows), nil
}

// AddToCart adds a product to the buyer's cart. A repeated add for the same
// product merges into the existing line by incrementing its quantity.
func (s *service) AddToCart(ctx context.Context, params AddParams) (CartLine, error) {
	if params.Quantity <= 0 {
		return CartLine{}, ErrInvalidQuantity
	}
	if strings.TrimSpace(params.ProductID) == "" {
		return CartLine{}, ErrProductRequired
	}

	p, err := s.products.FindByID(ctx, params.ProductID)
	if err != nil {
		return CartLine{}, err
	}
	if p == nil {
		return CartLine{}, ErrProductNotFound
	}

	c, err := s.repo.UpsertCart(ctx, params.BuyerID)
	if err != nil {
		return CartLine{}, err
	}

	line, err := s.repo.UpsertLine(ctx, c.ID, params.ProductID, params.Quantity)
	if err != nil {
		return CartLine{}, err
	}

	logger.FromCtx(ctx).Info("product added to cart",
		zap.Uint("buyer_id", params.BuyerID),
		zap.String("product_id", params.ProductID),
		zap.Int64("quantity", line.Quantity),
	)

	return line, nil
}

// RemoveFromCart deletes one product's line from the buyer's cart and reports
// the removed count. An absent line (or no cart at all) is signaled with
// ErrLineNotFound rather than treated as a failure.
func (s *service) RemoveFromCart(ctx context.Context, buyerID uint, productID string) (int64, error) {
	if strings.TrimSpace(productID) == "" {
		return 0, ErrProductRequired
	}

	n, err := s.repo.DeleteLine(ctx, buyerID, productID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrLineNotFound
	}

	return n, nil
}

// ClearCart removes every line from the buyer's cart and reports the count.
// Clearing an already-empty cart succeeds with count zero; only a buyer with
// no cart row at all gets ErrCartNotFound.
func (s *service) ClearCart(ctx context.Context, buyerID uint) (int64, error) {
	c, err := s.repo.FindCartByBuyer(ctx, buyerID)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, ErrCartNotFound
	}

	n, err := s.repo.DeleteLines(ctx, c.ID)
	if err != nil {
		return 0, err
	}

	logger.FromCtx(ctx).Info("cart cleared",
		zap.Uint("buyer_id", buyerID),
		zap.Int64("lines_removed", n),
	)

	return n, nil
}
