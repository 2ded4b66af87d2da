package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(txManager repository.TransactionManager, logger *slog.Logger) usecase.MenuUsecase {
	return &menuService{txManager: txManager, logger: logger}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDishes returns the menu, optionally narrowed by keyword and category.
func (srv *menuService) ListDishes(ctx context.Context, query usecase.MenuQuery) ([]entity.Dish, error) {
	dishes, err := srv.loadDishes(ctx)
	if err != nil {
		return nil, err
	}

	keyword := strings.ToLower(strings.TrimSpace(query.Keyword))
	filtered := make([]entity.Dish, 0, len(dishes))
	for _, dish := range dishes {
		if query.Category != "" && dish.Category != query.Category {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(dish.Name), keyword) &&
			!strings.Contains(strings.ToLower(dish.Description), keyword) {
			continue
		}
		filtered = append(filtered, dish)
	}

	return filtered, nil
}

// GetDish returns one dish by ID.
func (srv *menuService) GetDish(ctx context.Context, dishID string) (*entity.Dish, error) {
	dishes, err := srv.loadDishes(ctx)
	if err != nil {
		return nil, err
	}

	for i := range dishes {
		if dishes[i].ID == dishID {
			return &dishes[i], nil
		}
	}

	return nil, domainerrors.ErrDishNotFound
}

// Categories returns the distinct dish categories in menu order.
func (srv *menuService) Categories(ctx context.Context) ([]string, error) {
	dishes, err := srv.loadDishes(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(dishes))
	categories := make([]string, 0, len(dishes))
	for _, dish := range dishes {
		if _, ok := seen[dish.Category]; ok {
			continue
		}
		seen[dish.Category] = struct{}{}
		categories = append(categories, dish.Category)
	}

	return categories, nil
}

func (srv *menuService) loadDishes(ctx context.Context) ([]entity.Dish, error) {
	var dishes []entity.Dish

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		loaded, err := store.LoadDishes(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load menu")
		}
		dishes = loaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load menu", slog.Any("error", err))

		return nil, err
	}

	return dishes, nil
}
