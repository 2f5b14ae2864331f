package category

import (
	"context"
	"strings"
)

// Service lists the catalog's categories for browsing and for driving the
// category filter on product search.
type Service interface {
	List(ctx context.Context, nameContains string) ([]Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, nameContains string) ([]Summary, error) {
	return s.repo.List(ctx, strings.TrimSpace(nameContains))
}
