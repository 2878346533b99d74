package controllers

import (
	"errors"
	"time"

	"pembukuan-backend/models"

	"gorm.io/gorm"
)

// signedCashAmount maps a transaction to its effect on the account balance.
func signedCashAmount(t models.CashTxType, amount float64) float64 {
	if t == models.CashTxOut {
		return -amount
	}
	return amount
}

// invertCashType gives the type that undoes a transaction's balance effect.
func invertCashType(t models.CashTxType) models.CashTxType {
	if t == models.CashTxIn {
		return models.CashTxOut
	}
	return models.CashTxIn
}

// applyCashDelta inserts a transaction row and moves the account balance by
// its signed amount, both under the caller's transaction so the running
// balance always equals the sum of the log.
func applyCashDelta(
	tx *gorm.DB,
	userID string,
	cashID uint,
	txType models.CashTxType,
	amount float64,
	category string,
	note string,
	refType string,
	refID uint,
	date time.Time,
) (*models.CashTransaction, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	var account models.CashAccount
	if err := tx.Clauses(clauseUpdateLock()).
		Where("user_id = ?", userID).
		First(&account, cashID).Error; err != nil {
		return nil, err
	}

	newBalance := account.Amount + signedCashAmount(txType, amount)
	if err := tx.Model(&models.CashAccount{}).
		Where("id = ?", account.Id).
		Update("amount", newBalance).Error; err != nil {
		return nil, err
	}

	row := models.CashTransaction{
		CashID:   account.Id,
		UserID:   userID,
		Type:     txType,
		Amount:   amount,
		Category: category,
		Note:     note,
		RefType:  refType,
		RefID:    refID,
		Date:     date,
	}
	if err := tx.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// removeCashTransaction deletes a transaction and applies the inverse balance
// adjustment. The adjustment runs first; if it fails the row stays.
func removeCashTransaction(tx *gorm.DB, userID string, txID uint) error {
	var row models.CashTransaction
	if err := tx.Where("user_id = ?", userID).First(&row, txID).Error; err != nil {
		return err
	}

	var account models.CashAccount
	if err := tx.Clauses(clauseUpdateLock()).
		Where("user_id = ?", userID).
		First(&account, row.CashID).Error; err != nil {
		return err
	}

	restored := account.Amount + signedCashAmount(invertCashType(row.Type), row.Amount)
	if err := tx.Model(&models.CashAccount{}).
		Where("id = ?", account.Id).
		Update("amount", restored).Error; err != nil {
		return err
	}

	return tx.Delete(&models.CashTransaction{}, row.Id).Error
}
