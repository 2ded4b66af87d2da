package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// CartLineRef names one cart line by its full identity. The same dish with a
// different taste or note is a different line.
type CartLineRef struct {
	DishID        string
	SelectedTaste string
	Note          string
}

// AddToCartInput defines the data required to add one unit of a dish.
type AddToCartInput struct {
	DishID        string
	SelectedTaste string
	Note          string
}

// UpdateQuantityInput adjusts a line's quantity by a signed delta.
type UpdateQuantityInput struct {
	Line  CartLineRef
	Delta int
}

// SetPaymentMethodInput switches a line's payment method.
type SetPaymentMethodInput struct {
	Line   CartLineRef
	Method entity.PaymentMethod
}

// CartView is the cart as presented to the member: the lines plus the
// dual-currency totals derived from them.
type CartView struct {
	Lines  []entity.CartLine `json:"lines"`
	Totals entity.CartTotals `json:"totals"`
}

// CartUsecase defines the interface for cart operations. Carts live in
// memory per member and are never persisted; they vanish on logout,
// checkout, or process restart.
type CartUsecase interface {
	Add(ctx context.Context, userID string, input AddToCartInput) (*CartView, error)
	UpdateQuantity(ctx context.Context, userID string, input UpdateQuantityInput) (*CartView, error)
	SetPaymentMethod(ctx context.Context, userID string, input SetPaymentMethodInput) (*CartView, error)
	Get(ctx context.Context, userID string) (*CartView, error)
	Clear(ctx context.Context, userID string) error

	// Snapshot returns an independent copy of the member's cart lines for
	// checkout to validate and settle against.
	Snapshot(userID string) entity.CartLines
}
