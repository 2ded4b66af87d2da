package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dishBoth() Dish {
	return Dish{ID: "d1", Name: "红烧肉", Price: 35, ChorePrice: 2, SupportsBalance: true, SupportsHousework: true}
}

func dishBalanceOnly() Dish {
	return Dish{ID: "d4", Name: "可口可乐", Price: 3, SupportsBalance: true}
}

func dishHouseworkOnly() Dish {
	return Dish{ID: "d9", Name: "洗碗券", ChorePrice: 1, SupportsHousework: true}
}

func TestCartLines_AddMergesOnIdentity(t *testing.T) {
	var lines CartLines
	lines = lines.Add(dishBoth(), "加辣版", "")
	lines = lines.Add(dishBoth(), "加辣版", "")

	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartLines_AddKeepsDistinctIdentities(t *testing.T) {
	var lines CartLines
	lines = lines.Add(dishBoth(), "加辣版", "")
	lines = lines.Add(dishBoth(), "常规口味", "")
	lines = lines.Add(dishBoth(), "常规口味", "少放盐")

	assert.Len(t, lines, 3)
}

func TestCartLines_AddDefaultsPaymentMethod(t *testing.T) {
	var lines CartLines
	lines = lines.Add(dishBoth(), "", "")
	lines = lines.Add(dishHouseworkOnly(), "", "")

	assert.Equal(t, PaymentBalance, lines[0].SelectedPaymentMethod)
	assert.Equal(t, PaymentHousework, lines[1].SelectedPaymentMethod)
}

func TestCartLines_UpdateQuantityClampsAtZero(t *testing.T) {
	var lines CartLines
	lines = lines.Add(dishBoth(), "", "")
	lines = lines.Add(dishBoth(), "", "")

	lines = lines.UpdateQuantity("d1", "", "", -5)
	assert.Empty(t, lines)
}

func TestCartLines_UpdateQuantityMissingKeyIsNoOp(t *testing.T) {
	var lines CartLines
	lines = lines.Add(dishBoth(), "", "")

	updated := lines.UpdateQuantity("d1", "加辣版", "", 3)
	require.Len(t, updated, 1)
	assert.Equal(t, 1, updated[0].Quantity)
}

func TestCartLines_TotalsBucketByMethod(t *testing.T) {
	var lines CartLines
	lines = lines.Add(dishBoth(), "", "")
	lines = lines.Add(dishBoth(), "", "")
	lines = lines.Add(dishBalanceOnly(), "", "")
	lines = lines.Add(dishHouseworkOnly(), "", "")

	totals := lines.Totals()
	assert.InDelta(t, 73.0, totals.TotalMoney, 1e-9)
	assert.Equal(t, 1, totals.TotalChores)
	assert.Equal(t, 4, totals.Count)
}

func TestCartLines_SwitchingMethodMovesWholeLine(t *testing.T) {
	var lines CartLines
	lines = lines.Add(dishBoth(), "", "")
	lines = lines.Add(dishBoth(), "", "")

	lines = lines.SetPaymentMethod("d1", "", "", PaymentHousework)
	totals := lines.Totals()

	// The line contributes to exactly one bucket.
	assert.Zero(t, totals.TotalMoney)
	assert.Equal(t, 4, totals.TotalChores)
}

func TestCartLines_CloneIsIndependent(t *testing.T) {
	var lines CartLines
	lines = lines.Add(dishBoth(), "", "")

	cloned := lines.Clone()
	cloned[0].Quantity = 99

	assert.Equal(t, 1, lines[0].Quantity)
}
