package controllers

import (
	"errors"
	"fmt"
	"time"

	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInsufficientStock is returned when an invoice-driven deduction (or a
// revert of an inbound line) would drive an item's quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

func clauseUpdateLock() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// nextQuantity computes the quantity after a stock movement.
// Manual adjustments clamp "out" at zero; invoice-driven movements are
// rejected instead, so the non-negativity invariant holds on every path.
func nextQuantity(current float64, direction models.StockDirection, qty float64, clampAtZero bool) (float64, error) {
	if qty < 0 {
		return 0, errors.New("quantity must not be negative")
	}
	switch direction {
	case models.StockIn:
		return current + qty, nil
	case models.StockOut:
		next := current - qty
		if next < 0 {
			if clampAtZero {
				return 0, nil
			}
			return 0, ErrInsufficientStock
		}
		return next, nil
	default:
		return 0, fmt.Errorf("unknown stock direction %q", direction)
	}
}

// invertDirection gives the direction that undoes a movement.
func invertDirection(d models.StockDirection) models.StockDirection {
	if d == models.StockIn {
		return models.StockOut
	}
	return models.StockIn
}

// applyStockDelta locks the item row, moves its quantity, appends a movement
// log row, and refreshes the linked asset's book value. Must run inside the
// caller's transaction.
func applyStockDelta(
	tx *gorm.DB,
	userID string,
	itemID uint,
	direction models.StockDirection,
	qty float64,
	clampAtZero bool,
	refType string,
	refID uint,
	note string,
) (float64, error) {
	var item models.InventoryItem
	if err := tx.Clauses(clauseUpdateLock()).
		Where("user_id = ?", userID).
		First(&item, itemID).Error; err != nil {
		return 0, err
	}

	newQty, err := nextQuantity(item.Quantity, direction, qty, clampAtZero)
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return 0, fmt.Errorf("%w: %s has %.2f, need %.2f", ErrInsufficientStock, item.Name, item.Quantity, qty)
		}
		return 0, err
	}

	if err := tx.Model(&models.InventoryItem{}).
		Where("id = ?", item.Id).
		Update("quantity", newQty).Error; err != nil {
		return 0, err
	}

	movement := models.InventoryTransaction{
		ItemID:            item.Id,
		UserID:            userID,
		Direction:         direction,
		Quantity:          qty,
		ResultingQuantity: newQty,
		Note:              note,
		RefType:           refType,
		RefID:             refID,
		CreatedAt:         time.Now().UTC(),
	}
	if err := tx.Create(&movement).Error; err != nil {
		return 0, err
	}

	if err := syncAssetValue(tx, item.Id, newQty, item.UnitCost); err != nil {
		return 0, err
	}
	return newQty, nil
}

// syncAssetValue refreshes the book value of the asset row linked to an
// inventory item. Items without a managed asset row are left alone.
func syncAssetValue(tx *gorm.DB, itemID uint, quantity, unitCost float64) error {
	res := tx.Model(&models.Asset{}).
		Where("inventory_item_id = ?", itemID).
		Update("current_value", utils.Round2(quantity*unitCost))
	return res.Error
}

// applyInvoiceStock applies every stock-linked line of an invoice in the
// given direction. Used for both the forward application and (with the
// inverted direction) the revert on edit/delete.
func applyInvoiceStock(tx *gorm.DB, userID string, invoiceID uint, direction models.StockDirection, items []models.PurchaseInvoiceItem, note string) error {
	for _, it := range items {
		if it.InventoryItemID == nil {
			continue
		}
		if _, err := applyStockDelta(tx, userID, *it.InventoryItemID, direction, it.Quantity, false, "invoice", invoiceID, note); err != nil {
			return err
		}
	}
	return nil
}
