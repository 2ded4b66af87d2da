package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deleteIntentTTL is how long a delete confirmation stays valid.
const deleteIntentTTL = 5 * time.Minute

// deleteIntent is the server-side half of a pending two-step deletion.
type deleteIntent struct {
	viewerID  string
	orderIDs  []string
	expiresAt time.Time
}

// orderService implements the OrderUsecase interface. Pending delete intents
// live in memory; an unconfirmed intent simply expires.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.Mutex
	intents map[string]deleteIntent
}

// NewOrderService is the constructor for orderService.
func NewOrderService(txManager repository.TransactionManager, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
		intents:   make(map[string]deleteIntent),
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the orders the viewer may see, newest first. Members see only
// their own orders; admins see the whole kitchen queue. An empty query status
// matches every status.
func (srv *orderService) List(ctx context.Context, viewerID string, query usecase.OrderQuery) ([]entity.Order, error) {
	var visible []entity.Order

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		viewer, err := findUser(ctx, store, viewerID)
		if err != nil {
			return err
		}

		orders, err := store.LoadOrders(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load orders")
		}

		visible = make([]entity.Order, 0, len(orders))
		for i := range orders {
			if !orders[i].VisibleTo(viewer) {
				continue
			}
			if query.Status != "" && orders[i].Status != query.Status {
				continue
			}
			visible = append(visible, orders[i])
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err), slog.String("viewer_id", viewerID))

		return nil, err
	}

	return visible, nil
}

// Advance moves one order a single step along the kitchen workflow. Only an
// admin may advance; a non-admin request is rejected before anything loads
// from the order log, so a rejected advance never mutates state. Advancing a
// terminal order is an idempotent no-op.
func (srv *orderService) Advance(ctx context.Context, viewerID, orderID string) (*entity.Order, error) {
	var advanced *entity.Order

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		viewer, err := findUser(ctx, store, viewerID)
		if err != nil {
			return err
		}
		if !viewer.IsAdmin() {
			return domainerrors.ErrForbidden
		}

		orders, err := store.LoadOrders(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load orders")
		}

		for i := range orders {
			if orders[i].ID != orderID {
				continue
			}

			next := orders[i].Status.Next()
			if next == orders[i].Status {
				advanced = &orders[i]

				return nil
			}
			orders[i].Status = next
			advanced = &orders[i]

			return errors.Wrap(store.SaveOrders(ctx, orders), "failed to save orders")
		}

		return domainerrors.ErrOrderNotFound
	})
	if err != nil {
		srv.log(ctx).Warn("Advance rejected",
			slog.Any("error", err),
			slog.String("viewer_id", viewerID),
			slog.String("order_id", orderID),
		)

		return nil, err
	}
	srv.log(ctx).Info("Order advanced",
		slog.String("order_id", orderID),
		slog.String("status", advanced.Status.String()),
	)

	return advanced, nil
}

// RequestDelete opens a delete intent over the given orders. Every order must
// exist and be visible to the viewer; the returned token must be committed
// before it expires.
func (srv *orderService) RequestDelete(ctx context.Context, viewerID string, orderIDs []string) (*usecase.DeleteIntent, error) {
	if len(orderIDs) == 0 {
		return nil, domainerrors.ErrOrderNotFound
	}

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		viewer, err := findUser(ctx, store, viewerID)
		if err != nil {
			return err
		}

		orders, err := store.LoadOrders(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load orders")
		}

		byID := make(map[string]*entity.Order, len(orders))
		for i := range orders {
			byID[orders[i].ID] = &orders[i]
		}
		for _, id := range orderIDs {
			order, ok := byID[id]
			if !ok || !order.VisibleTo(viewer) {
				return domainerrors.ErrOrderNotFound
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Delete request rejected", slog.Any("error", err), slog.String("viewer_id", viewerID))

		return nil, err
	}

	token := uuid.NewString()
	expiresAt := srv.now().Add(deleteIntentTTL)

	srv.mu.Lock()
	srv.intents[token] = deleteIntent{
		viewerID:  viewerID,
		orderIDs:  append([]string{}, orderIDs...),
		expiresAt: expiresAt,
	}
	srv.mu.Unlock()

	srv.log(ctx).Info("Delete intent opened",
		slog.String("viewer_id", viewerID),
		slog.Int("orders", len(orderIDs)),
	)

	return &usecase.DeleteIntent{Token: token, OrderIDs: orderIDs, ExpiresAt: expiresAt}, nil
}

// CommitDelete consumes a delete intent and removes its orders from the log.
// A token that is unknown, expired, or opened by a different member fails
// with DeleteIntentInvalid; either way the token is spent.
func (srv *orderService) CommitDelete(ctx context.Context, viewerID, token string) error {
	srv.mu.Lock()
	intent, ok := srv.intents[token]
	delete(srv.intents, token)
	srv.mu.Unlock()

	if !ok || intent.viewerID != viewerID || srv.now().After(intent.expiresAt) {
		return domainerrors.ErrDeleteIntentInvalid
	}

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		orders, err := store.LoadOrders(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load orders")
		}

		doomed := make(map[string]struct{}, len(intent.orderIDs))
		for _, id := range intent.orderIDs {
			doomed[id] = struct{}{}
		}

		kept := make([]entity.Order, 0, len(orders))
		for i := range orders {
			if _, gone := doomed[orders[i].ID]; gone {
				continue
			}
			kept = append(kept, orders[i])
		}

		return errors.Wrap(store.SaveOrders(ctx, kept), "failed to save orders")
	})
	if err != nil {
		srv.log(ctx).Error("Delete commit failed", slog.Any("error", err), slog.String("viewer_id", viewerID))

		return err
	}
	srv.log(ctx).Info("Orders deleted",
		slog.String("viewer_id", viewerID),
		slog.Int("orders", len(intent.orderIDs)),
	)

	return nil
}
