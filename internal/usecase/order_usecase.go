package usecase

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
)

// OrderQuery narrows the order list. An empty Status matches every status.
type OrderQuery struct {
	Status entity.OrderStatus
}

// DeleteIntent is the first half of the two-step order deletion: the caller
// must echo Token back within the expiry window to actually delete.
type DeleteIntent struct {
	Token     string    `json:"token"`
	OrderIDs  []string  `json:"orderIds"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// OrderUsecase defines the interface for kitchen order operations. Members
// see and delete their own orders; admins see everything and advance the
// cooking workflow.
type OrderUsecase interface {
	List(ctx context.Context, viewerID string, query OrderQuery) ([]entity.Order, error)
	Advance(ctx context.Context, viewerID, orderID string) (*entity.Order, error)
	RequestDelete(ctx context.Context, viewerID string, orderIDs []string) (*DeleteIntent, error)
	CommitDelete(ctx context.Context, viewerID, token string) error
}
