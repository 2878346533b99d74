package controllers

import (
	"testing"

	"pembukuan-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuantityManualAdjustments(t *testing.T) {
	// Running a sequence of clamped adjustments: the final quantity is the
	// signed sum, floored at zero at every step.
	qty := 10.0
	steps := []struct {
		direction models.StockDirection
		amount    float64
	}{
		{models.StockIn, 5},
		{models.StockOut, 8},
		{models.StockOut, 20}, // clamps to 0
		{models.StockIn, 3},
	}
	for _, s := range steps {
		next, err := nextQuantity(qty, s.direction, s.amount, true)
		require.NoError(t, err)
		qty = next
	}
	assert.Equal(t, 3.0, qty)
}

func TestNextQuantityRejectsInvoiceOverdraw(t *testing.T) {
	_, err := nextQuantity(5, models.StockOut, 6, false)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	next, err := nextQuantity(5, models.StockOut, 5, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, next)
}

func TestNextQuantityNegativeAmount(t *testing.T) {
	_, err := nextQuantity(5, models.StockIn, -1, true)
	assert.Error(t, err)
}

func TestNextQuantityUnknownDirection(t *testing.T) {
	_, err := nextQuantity(5, models.StockDirection("sideways"), 1, true)
	assert.Error(t, err)
}

func TestInvertDirection(t *testing.T) {
	assert.Equal(t, models.StockOut, invertDirection(models.StockIn))
	assert.Equal(t, models.StockIn, invertDirection(models.StockOut))
}

func TestInboundInvoiceDeleteRevertsStock(t *testing.T) {
	// An inbound invoice for 10 units is applied, then reverted on delete:
	// the revert runs the inverted direction and subtracts the 10 units.
	qty := 4.0

	applied, err := nextQuantity(qty, models.StockIn, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 14.0, applied)

	reverted, err := nextQuantity(applied, invertDirection(models.StockIn), 10, false)
	require.NoError(t, err)
	assert.Equal(t, qty, reverted)
}
