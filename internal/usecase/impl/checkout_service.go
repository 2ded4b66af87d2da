package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	cart      usecase.CartUsecase
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	cart usecase.CartUsecase,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: txManager,
		cart:      cart,
		logger:    logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout settles the member's cart. Validation runs against a snapshot of
// the cart; the debit, the order emission, and the session refresh commit in
// one storage transaction, and the cart is cleared only after the commit.
func (srv *checkoutService) Checkout(ctx context.Context, userID string) (*usecase.CheckoutOutput, error) {
	lines := srv.cart.Snapshot(userID)
	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	totals := lines.Totals()

	var output *usecase.CheckoutOutput

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		users, err := store.LoadUsers(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load members")
		}

		idx := -1
		for i := range users {
			if users[i].ID == userID {
				idx = i

				break
			}
		}
		if idx < 0 {
			return domainerrors.ErrUserNotFound
		}
		user := users[idx]

		if user.Balance < totals.TotalMoney {
			return domainerrors.NewInsufficientBalanceError(totals.TotalMoney, user.Balance)
		}
		if user.HouseworkCredits < totals.TotalChores {
			return domainerrors.NewInsufficientChoresError(totals.TotalChores, user.HouseworkCredits)
		}
		if err := srv.recheckMethods(ctx, store, lines); err != nil {
			return err
		}

		newOrders := buildOrders(&user, lines, time.Now())

		users[idx].Balance = entity.RoundBalance(user.Balance - totals.TotalMoney)
		users[idx].HouseworkCredits = user.HouseworkCredits - totals.TotalChores
		if err := store.SaveUsers(ctx, users); err != nil {
			return errors.Wrap(err, "failed to save members")
		}

		orders, err := store.LoadOrders(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load orders")
		}
		// Newest first.
		orders = append(append([]entity.Order{}, newOrders...), orders...)
		if err := store.SaveOrders(ctx, orders); err != nil {
			return errors.Wrap(err, "failed to save orders")
		}

		session, err := store.LoadSession(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load session")
		}
		if session != nil && session.ID == userID {
			if err := store.SaveSession(ctx, &users[idx]); err != nil {
				return errors.Wrap(err, "failed to refresh session")
			}
		}

		settled := users[idx]
		output = &usecase.CheckoutOutput{Orders: newOrders, User: &settled}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout rejected", slog.String("user_id", userID), slog.Any("error", err))

		return nil, err
	}

	if err := srv.cart.Clear(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}
	srv.log(ctx).Info("Checkout settled",
		slog.String("user_id", userID),
		slog.Int("orders", len(output.Orders)),
		slog.Float64("total_money", totals.TotalMoney),
		slog.Int("total_chores", totals.TotalChores),
	)

	return output, nil
}

// recheckMethods guards against a cart line whose payment method the dish no
// longer supports after a menu edit. A dish removed from the menu keeps its
// cart snapshot and settles as-is.
func (srv *checkoutService) recheckMethods(ctx context.Context, store repository.RecordStore, lines entity.CartLines) error {
	dishes, err := store.LoadDishes(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load menu")
	}

	current := make(map[string]*entity.Dish, len(dishes))
	for i := range dishes {
		current[dishes[i].ID] = &dishes[i]
	}

	for i := range lines {
		dish, ok := current[lines[i].Dish.ID]
		if ok && !dish.Supports(lines[i].SelectedPaymentMethod) {
			return domainerrors.ErrPaymentMethodNotSupported
		}
	}

	return nil
}

// buildOrders emits one PENDING order per cart line, snapshotting the dish
// display fields so later menu edits never rewrite history.
func buildOrders(user *entity.User, lines entity.CartLines, now time.Time) []entity.Order {
	orders := make([]entity.Order, 0, len(lines))
	for i := range lines {
		line := &lines[i]

		var cost float64
		if line.SelectedPaymentMethod == entity.PaymentBalance {
			cost = line.Dish.Price * float64(line.Quantity)
		} else {
			cost = float64(line.Dish.ChorePrice * line.Quantity)
		}

		orders = append(orders, entity.Order{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			UserName:      user.Name,
			DishID:        line.Dish.ID,
			DishName:      line.Dish.Name,
			DishImage:     line.Dish.ImageURL,
			Quantity:      line.Quantity,
			PaymentMethod: line.SelectedPaymentMethod,
			TotalCost:     cost,
			Status:        entity.StatusPending,
			Timestamp:     now.UnixMilli(),
			SelectedTaste: line.SelectedTaste,
			Note:          line.Note,
		})
	}

	return orders
}
