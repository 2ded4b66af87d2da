package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// MenuQuery narrows the dish list. Keyword matches name or description,
// case-insensitively; Category matches exactly. Empty fields match everything.
type MenuQuery struct {
	Keyword  string
	Category string
}

// MenuUsecase defines the interface for menu browsing operations.
type MenuUsecase interface {
	ListDishes(ctx context.Context, query MenuQuery) ([]entity.Dish, error)
	GetDish(ctx context.Context, dishID string) (*entity.Dish, error)

	// Categories returns the distinct dish categories in menu order.
	Categories(ctx context.Context) ([]string, error)
}
