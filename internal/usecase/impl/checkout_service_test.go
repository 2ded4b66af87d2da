package impl

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture(t *testing.T) (*fakeStore, usecase.CartUsecase, usecase.CheckoutUsecase) {
	t.Helper()
	store, tm := newFixture()
	cart := NewCartService(tm, discardLogger())

	return store, cart, NewCheckoutService(tm, cart, discardLogger())
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	_, _, checkout := newCheckoutFixture(t)

	_, err := checkout.Checkout(context.Background(), "1")
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_SettlesBalancePurchase(t *testing.T) {
	store, cart, checkout := newCheckoutFixture(t)
	ctx := context.Background()

	// Two portions of d1 at 35 on balance: 500 - 70 = 430.
	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	_, err = cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)

	output, err := checkout.Checkout(ctx, "1")
	require.NoError(t, err)

	require.Len(t, output.Orders, 1)
	order := output.Orders[0]
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "1", order.UserID)
	assert.Equal(t, "爸爸", order.UserName)
	assert.Equal(t, "红烧肉", order.DishName)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, entity.PaymentBalance, order.PaymentMethod)
	assert.InDelta(t, 70.0, order.TotalCost, 1e-9)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.NotZero(t, order.Timestamp)

	assert.InDelta(t, 430.0, output.User.Balance, 1e-9)
	assert.Equal(t, 10, output.User.HouseworkCredits)

	// Persisted state matches the returned view, and the cart is gone.
	assert.InDelta(t, 430.0, store.users[0].Balance, 1e-9)
	require.Len(t, store.orders, 1)
	view, err := cart.Get(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCheckoutService_SettlesHouseworkPurchase(t *testing.T) {
	store, cart, checkout := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	_, err = cart.SetPaymentMethod(ctx, "1", usecase.SetPaymentMethodInput{
		Line:   usecase.CartLineRef{DishID: "d1"},
		Method: entity.PaymentHousework,
	})
	require.NoError(t, err)

	output, err := checkout.Checkout(ctx, "1")
	require.NoError(t, err)

	assert.InDelta(t, 500.0, output.User.Balance, 1e-9)
	assert.Equal(t, 8, output.User.HouseworkCredits)
	assert.InDelta(t, 2.0, output.Orders[0].TotalCost, 1e-9)
	assert.Equal(t, 8, store.users[0].HouseworkCredits)
}

func TestCheckoutService_InsufficientBalance(t *testing.T) {
	store, cart, checkout := newCheckoutFixture(t)
	ctx := context.Background()

	// 宝贝 holds 50; two portions of d1 cost 70.
	_, err := cart.Add(ctx, "3", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	_, err = cart.Add(ctx, "3", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)

	_, err = checkout.Checkout(ctx, "3")
	var insufficientErr *domainerrors.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficientErr)
	assert.InDelta(t, 70.0, insufficientErr.Required, 1e-9)
	assert.InDelta(t, 50.0, insufficientErr.Available, 1e-9)

	// Nothing moved and the cart survived.
	assert.InDelta(t, 50.0, store.users[1].Balance, 1e-9)
	assert.Empty(t, store.orders)
	view, err := cart.Get(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestCheckoutService_InsufficientChores(t *testing.T) {
	_, cart, checkout := newCheckoutFixture(t)
	ctx := context.Background()

	// 宝贝 holds 2 housework credits; two portions of d1 need 4.
	for range 2 {
		_, err := cart.Add(ctx, "3", usecase.AddToCartInput{DishID: "d1"})
		require.NoError(t, err)
	}
	_, err := cart.SetPaymentMethod(ctx, "3", usecase.SetPaymentMethodInput{
		Line:   usecase.CartLineRef{DishID: "d1"},
		Method: entity.PaymentHousework,
	})
	require.NoError(t, err)

	_, err = checkout.Checkout(ctx, "3")
	var insufficientErr *domainerrors.InsufficientChoresError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 4, insufficientErr.Required)
	assert.Equal(t, 2, insufficientErr.Available)
}

func TestCheckoutService_StaleMethodRejected(t *testing.T) {
	store, cart, checkout := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	_, err = cart.SetPaymentMethod(ctx, "1", usecase.SetPaymentMethodInput{
		Line:   usecase.CartLineRef{DishID: "d1"},
		Method: entity.PaymentHousework,
	})
	require.NoError(t, err)

	// The menu changes under the cart: d1 stops accepting housework credits.
	store.dishes[0].SupportsHousework = false

	_, err = checkout.Checkout(ctx, "1")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodNotSupported)
	assert.Empty(t, store.orders)
}

func TestCheckoutService_AllOrNothingOnStorageFailure(t *testing.T) {
	store, cart, checkout := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)

	store.failSaveOrders = true
	_, err = checkout.Checkout(ctx, "1")
	require.Error(t, err)

	// The debit rolled back with the failed order write, and the cart is intact.
	assert.InDelta(t, 500.0, store.users[0].Balance, 1e-9)
	assert.Equal(t, 10, store.users[0].HouseworkCredits)
	assert.Empty(t, store.orders)
	view, err := cart.Get(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestCheckoutService_RefreshesSessionRecord(t *testing.T) {
	store, cart, checkout := newCheckoutFixture(t)
	ctx := context.Background()

	user := store.users[0]
	require.NoError(t, store.SaveSession(ctx, &user))

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	_, err = checkout.Checkout(ctx, "1")
	require.NoError(t, err)

	require.NotNil(t, store.session)
	assert.InDelta(t, 465.0, store.session.Balance, 1e-9)
}

func TestCheckoutService_NewestOrdersFirst(t *testing.T) {
	store, cart, checkout := newCheckoutFixture(t)
	ctx := context.Background()

	store.orders = []entity.Order{{ID: "old", UserID: "1", Status: entity.StatusCompleted}}

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	output, err := checkout.Checkout(ctx, "1")
	require.NoError(t, err)

	require.Len(t, store.orders, 2)
	assert.Equal(t, output.Orders[0].ID, store.orders[0].ID)
	assert.Equal(t, "old", store.orders[1].ID)
}
