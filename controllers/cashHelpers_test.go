package controllers

import (
	"testing"

	"pembukuan-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestSignedCashAmount(t *testing.T) {
	assert.Equal(t, 150.0, signedCashAmount(models.CashTxIn, 150))
	assert.Equal(t, -150.0, signedCashAmount(models.CashTxOut, 150))
}

func TestInvertCashType(t *testing.T) {
	assert.Equal(t, models.CashTxOut, invertCashType(models.CashTxIn))
	assert.Equal(t, models.CashTxIn, invertCashType(models.CashTxOut))
}

func TestDeleteRestoresBalanceExactly(t *testing.T) {
	// Applying a transaction and then its inverse always lands back on the
	// starting balance, whatever the type.
	for _, txType := range []models.CashTxType{models.CashTxIn, models.CashTxOut} {
		balance := 75000.0
		after := balance + signedCashAmount(txType, 12345)
		restored := after + signedCashAmount(invertCashType(txType), 12345)
		assert.Equal(t, balance, restored)
	}
}

func TestTransferIsZeroSum(t *testing.T) {
	a, b := 50000.0, 10000.0
	amount := 7500.0

	a += signedCashAmount(models.CashTxOut, amount)
	b += signedCashAmount(models.CashTxIn, amount)

	assert.Equal(t, 42500.0, a)
	assert.Equal(t, 17500.0, b)
	assert.Equal(t, 60000.0, a+b)
}
