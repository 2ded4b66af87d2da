package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// CheckoutOutput returns the orders emitted by a settled cart and the member
// with both balances already debited.
type CheckoutOutput struct {
	Orders []entity.Order `json:"orders"`
	User   *entity.User   `json:"user"`
}

// CheckoutUsecase settles the member's cart: validation, debit, and order
// emission happen in one storage transaction, and the cart is cleared only
// after the transaction commits.
type CheckoutUsecase interface {
	Checkout(ctx context.Context, userID string) (*CheckoutOutput, error)
}
