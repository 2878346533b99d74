package controllers

import (
	"testing"

	"pembukuan-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceCancellable(t *testing.T) {
	assert.True(t, invoiceCancellable(models.InvoicePending))
	assert.False(t, invoiceCancellable(models.InvoiceUsed))
	assert.False(t, invoiceCancellable(models.InvoiceCancelled))
}

func TestBuildInvoiceItemsTotals(t *testing.T) {
	items, total := buildInvoiceItems([]InvoiceItemInput{
		{Name: "Tepung", Quantity: 3, UnitPrice: 12500},
		{Name: "Gula", Quantity: 2, UnitPrice: 10000},
	})

	assert.Len(t, items, 2)
	assert.Equal(t, 37500.0, items[0].LineTotal)
	assert.Equal(t, 20000.0, items[1].LineTotal)
	assert.Equal(t, 57500.0, total)
}
