package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. Carts are held in memory
// per member; the mutex only guards against the concurrent HTTP runtime, the
// application itself is a single logical session.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger

	mu    sync.RWMutex
	carts map[string]entity.CartLines
}

// NewCartService is the constructor for cartService.
func NewCartService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		logger:    logger,
		carts:     make(map[string]entity.CartLines),
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add puts one unit of the dish into the member's cart, merging into an
// existing line when the (dish, taste, note) identity already exists.
func (srv *cartService) Add(ctx context.Context, userID string, input usecase.AddToCartInput) (*usecase.CartView, error) {
	dish, err := srv.findDish(ctx, input.DishID)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.carts[userID] = srv.carts[userID].Add(*dish, input.SelectedTaste, input.Note)
	srv.log(ctx).Debug("Added dish to cart",
		slog.String("user_id", userID),
		slog.String("dish_id", dish.ID),
	)

	return srv.viewLocked(userID), nil
}

// UpdateQuantity adjusts the matching line by delta, dropping it at zero.
// A missing line is a silent no-op.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID string, input usecase.UpdateQuantityInput) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.carts[userID] = srv.carts[userID].UpdateQuantity(
		input.Line.DishID, input.Line.SelectedTaste, input.Line.Note, input.Delta)
	if len(srv.carts[userID]) == 0 {
		delete(srv.carts, userID)
	}

	return srv.viewLocked(userID), nil
}

// SetPaymentMethod switches the matching line's payment method after checking
// the dish actually supports it. An unsupported method never lands in the
// cart, so totals can trust every line's method.
func (srv *cartService) SetPaymentMethod(ctx context.Context, userID string, input usecase.SetPaymentMethodInput) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	line := srv.carts[userID].Find(input.Line.DishID, input.Line.SelectedTaste, input.Line.Note)
	if line != nil && !line.Dish.Supports(input.Method) {
		srv.log(ctx).Warn("Rejected unsupported payment method",
			slog.String("user_id", userID),
			slog.String("dish_id", input.Line.DishID),
			slog.String("method", input.Method.String()),
		)

		return nil, domainerrors.ErrPaymentMethodNotSupported
	}

	srv.carts[userID] = srv.carts[userID].SetPaymentMethod(
		input.Line.DishID, input.Line.SelectedTaste, input.Line.Note, input.Method)

	return srv.viewLocked(userID), nil
}

// Get returns the member's cart with totals.
func (srv *cartService) Get(_ context.Context, userID string) (*usecase.CartView, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.viewLocked(userID), nil
}

// Clear drops the member's cart entirely.
func (srv *cartService) Clear(ctx context.Context, userID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.carts, userID)
	srv.log(ctx).Debug("Cleared cart", slog.String("user_id", userID))

	return nil
}

// Snapshot returns an independent copy of the member's cart lines.
func (srv *cartService) Snapshot(userID string) entity.CartLines {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.carts[userID].Clone()
}

// viewLocked builds the presentation view. Callers must hold the mutex.
func (srv *cartService) viewLocked(userID string) *usecase.CartView {
	lines := srv.carts[userID].Clone()
	if lines == nil {
		lines = entity.CartLines{}
	}

	return &usecase.CartView{Lines: lines, Totals: lines.Totals()}
}

func (srv *cartService) findDish(ctx context.Context, dishID string) (*entity.Dish, error) {
	var dish *entity.Dish

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		dishes, err := store.LoadDishes(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load menu")
		}

		for i := range dishes {
			if dishes[i].ID == dishID {
				dish = &dishes[i]

				return nil
			}
		}

		return domainerrors.ErrDishNotFound
	})
	if err != nil {
		return nil, err
	}

	return dish, nil
}
