package controllers

import (
	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type InventoryItemInput struct {
	Name        string  `json:"name" validate:"required"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	MinQuantity float64 `json:"min_quantity" validate:"gte=0"`
	UnitCost    float64 `json:"unit_cost" validate:"gte=0"`
}

// CreateInventoryItem creates the item together with its managed asset row,
// linked by foreign key.
func CreateInventoryItem(c *fiber.Ctx) error {
	var in InventoryItemInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	item := models.InventoryItem{
		UserID:      userID,
		Name:        in.Name,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		UnitCost:    in.UnitCost,
	}
	if err := db.Create(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create inventory item")
	}

	asset := models.Asset{
		UserID:          userID,
		Name:            item.Name,
		Category:        models.AssetCategoryInventory,
		CurrentValue:    utils.Round2(item.Quantity * item.UnitCost),
		InventoryItemID: &item.Id,
	}
	if err := db.Create(&asset).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create asset record")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func GetInventoryItems(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var items []models.InventoryItem
	if err := db.Where("user_id = ?", userID).Order("name ASC").Find(&items).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"items": items, "message": "success"})
}

// GetLowStockItems lists items at or below their reorder threshold.
func GetLowStockItems(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var items []models.InventoryItem
	if err := db.Where("user_id = ? AND quantity <= min_quantity", userID).
		Order("quantity ASC").Find(&items).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"items": items, "message": "success"})
}

type InventoryItemPatch struct {
	Name        *string  `json:"name"`
	Unit        *string  `json:"unit"`
	MinQuantity *float64 `json:"min_quantity" validate:"omitempty,gte=0"`
	UnitCost    *float64 `json:"unit_cost" validate:"omitempty,gte=0"`
}

// UpdateInventoryItem patches item metadata. Quantity is only ever moved
// through AdjustStock or invoice application, never by direct edit.
func UpdateInventoryItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in InventoryItemPatch
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var item models.InventoryItem
	if err := db.Where("user_id = ?", userID).First(&item, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "inventory item not found")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&item).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update inventory item")
		}
	}

	// Renames and cost changes flow through to the managed asset row.
	assetUpdates := map[string]any{"current_value": utils.Round2(item.Quantity * item.UnitCost)}
	if in.Name != nil {
		assetUpdates["name"] = item.Name
	}
	if err := db.Model(&models.Asset{}).
		Where("inventory_item_id = ?", item.Id).
		Updates(assetUpdates).Error; err != nil {
		return err
	}

	return c.JSON(item)
}

func DeleteInventoryItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	res := db.Where("user_id = ?", userID).Delete(&models.InventoryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "inventory item not found")
	}
	// Movement log and asset row go with the item (FK ON DELETE CASCADE).
	return c.JSON(fiber.Map{"message": "success"})
}

type StockAdjustmentInput struct {
	Direction models.StockDirection `json:"direction" validate:"required,oneof=in out"`
	Quantity  float64               `json:"quantity" validate:"required,gt=0"`
	Note      string                `json:"note"`
}

// AdjustStock applies a manual stock movement. Outbound adjustments are
// clamped at zero rather than rejected.
func AdjustStock(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in StockAdjustmentInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	newQty, err := applyStockDelta(db, userID, id, in.Direction, in.Quantity, true, "adjustment", 0, in.Note)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"item_id":  id,
		"quantity": newQty,
		"message":  "success",
	})
}

// GetInventoryTransactions returns an item's movement log, newest first.
func GetInventoryTransactions(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var movements []models.InventoryTransaction
	if err := db.Where("user_id = ? AND item_id = ?", userID, id).
		Order("id DESC").Find(&movements).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"transactions": movements, "message": "success"})
}
