package product

import (
	"context"
	"strings"

	"pasarku-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, filter Filter) ([]Product, error)
	Create(ctx context.Context, params CreateParams) (Product, error)
	Update(ctx context.Context, id string, params UpdateParams) (Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if p == nil {
		return Product{}, ErrProductNotFound
	}
	return *p, nil
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.FindMany(ctx, Filter{})
}

func (s *service) Search(ctx context.Context, filter Filter) ([]Product, error) {
	return s.repo.FindMany(ctx, filter)
}

func (s *service) Create(ctx context.Context, params CreateParams) (Product, error) {
	if strings.TrimSpace(params.Name) == "" {
		return Product{}, ErrNameRequired
	}
	if params.Price < 0 {
		return Product{}, ErrInvalidPrice
	}
	if params.Discount < 0 || params.Discount > 100 {
		return Product{}, ErrInvalidDiscount
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		return Product{}, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.String("product_id", p.ID),
		zap.Uint("seller_id", p.SellerID),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (Product, error) {
	if id == "" {
		return Product{}, ErrProductNotFound
	}
	if !params.hasFields() {
		return Product{}, ErrNoFieldsToUpdate
	}

	// Validate only provided fields
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return Product{}, ErrNameRequired
	}
	if params.Price != nil && *params.Price < 0 {
		return Product{}, ErrInvalidPrice
	}
	if params.Discount != nil && (*params.Discount < 0 || *params.Discount > 100) {
		return Product{}, ErrInvalidDiscount
	}

	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product deleted", zap.String("product_id", id))
	return nil
}
