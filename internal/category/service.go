package category

import (
	"context"
	"strings"

	"methakadai-be/internal/logger"
	"methakadai-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

func (s *service) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	return s.repo.Add(ctx, name)
}

// Delete removes a category non-destructively: products keep existing under
// the default category.
func (s *service) Delete(ctx context.Context, name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrNameRequired
	}
	if name == product.DefaultCategory {
		return 0, ErrProtectedCategory
	}

	moved, err := s.repo.DeleteWithReassign(ctx, name)
	if err != nil {
		return 0, err
	}

	logger.FromCtx(ctx).Info("category deleted",
		zap.String("category", name),
		zap.Int("products_reassigned", moved),
	)
	return moved, nil
}
