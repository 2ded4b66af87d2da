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

func newCartService(t *testing.T) usecase.CartUsecase {
	t.Helper()
	_, tm := newFixture()

	return NewCartService(tm, discardLogger())
}

func TestCartService_AddMergesSameIdentity(t *testing.T) {
	cart := newCartService(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1", SelectedTaste: "加辣版"})
	require.NoError(t, err)
	view, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1", SelectedTaste: "加辣版"})
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, entity.PaymentBalance, view.Lines[0].SelectedPaymentMethod)
}

func TestCartService_DifferentNoteKeepsLinesSeparate(t *testing.T) {
	cart := newCartService(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1", Note: "不要太肥"})
	require.NoError(t, err)
	view, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, 2, view.Totals.Count)
}

func TestCartService_AddUnknownDish(t *testing.T) {
	cart := newCartService(t)

	_, err := cart.Add(context.Background(), "1", usecase.AddToCartInput{DishID: "missing"})
	assert.ErrorIs(t, err, domainerrors.ErrDishNotFound)
}

func TestCartService_UpdateQuantityFloorRemovesLine(t *testing.T) {
	cart := newCartService(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)

	view, err := cart.UpdateQuantity(ctx, "1", usecase.UpdateQuantityInput{
		Line:  usecase.CartLineRef{DishID: "d1"},
		Delta: -3,
	})
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Totals.Count)
}

func TestCartService_UpdateQuantityMissingLineIsNoOp(t *testing.T) {
	cart := newCartService(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)

	view, err := cart.UpdateQuantity(ctx, "1", usecase.UpdateQuantityInput{
		Line:  usecase.CartLineRef{DishID: "d1", Note: "其他备注"},
		Delta: 5,
	})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity)
}

func TestCartService_SetPaymentMethodRejectsUnsupported(t *testing.T) {
	cart := newCartService(t)
	ctx := context.Background()

	// d4 only supports balance.
	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d4"})
	require.NoError(t, err)

	_, err = cart.SetPaymentMethod(ctx, "1", usecase.SetPaymentMethodInput{
		Line:   usecase.CartLineRef{DishID: "d4"},
		Method: entity.PaymentHousework,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodNotSupported)

	view, err := cart.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentBalance, view.Lines[0].SelectedPaymentMethod)
}

func TestCartService_TotalsSplitByMethod(t *testing.T) {
	cart := newCartService(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	_, err = cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	_, err = cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d3"})
	require.NoError(t, err)

	view, err := cart.SetPaymentMethod(ctx, "1", usecase.SetPaymentMethodInput{
		Line:   usecase.CartLineRef{DishID: "d3"},
		Method: entity.PaymentHousework,
	})
	require.NoError(t, err)

	// A line contributes to exactly one bucket by its current method.
	assert.InDelta(t, 70.0, view.Totals.TotalMoney, 1e-9)
	assert.Equal(t, 1, view.Totals.TotalChores)
	assert.Equal(t, 3, view.Totals.Count)
}

func TestCartService_CartsAreIsolatedPerMember(t *testing.T) {
	cart := newCartService(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)

	view, err := cart.Get(ctx, "3")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartService_Clear(t *testing.T) {
	cart := newCartService(t)
	ctx := context.Background()

	_, err := cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)
	require.NoError(t, cart.Clear(ctx, "1"))

	view, err := cart.Get(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}
