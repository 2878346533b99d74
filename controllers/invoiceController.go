package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InvoiceItemInput struct {
	InventoryItemID *uint   `json:"inventory_item_id"`
	Name            string  `json:"name" validate:"required"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice       float64 `json:"unit_price" validate:"gte=0"`
}

type InvoiceInput struct {
	ClientID      uint                  `json:"client_id" validate:"required"`
	InvoiceNumber string                `json:"invoice_number" validate:"required"`
	Description   string                `json:"description"`
	Direction     models.StockDirection `json:"direction" validate:"required,oneof=in out"`
	Date          string                `json:"date"`
	Items         []InvoiceItemInput    `json:"items" validate:"required,min=1,dive"`
}

func buildInvoiceItems(inputs []InvoiceItemInput) ([]models.PurchaseInvoiceItem, float64) {
	items := make([]models.PurchaseInvoiceItem, 0, len(inputs))
	var total float64
	for _, in := range inputs {
		lineTotal := utils.Round2(in.Quantity * in.UnitPrice)
		total += lineTotal
		items = append(items, models.PurchaseInvoiceItem{
			InventoryItemID: in.InventoryItemID,
			Name:            in.Name,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			LineTotal:       lineTotal,
		})
	}
	return items, utils.Round2(total)
}

// snapshotInvoice appends an immutable version row for the invoice's current
// state, numbered after the latest existing version.
func snapshotInvoice(tx *gorm.DB, invoice *models.PurchaseInvoice) error {
	blob, err := json.Marshal(invoice)
	if err != nil {
		return err
	}
	var last int
	if err := tx.Model(&models.PurchaseInvoiceVersion{}).
		Where("invoice_id = ?", invoice.ID).
		Select("COALESCE(MAX(version_no), 0)").Scan(&last).Error; err != nil {
		return err
	}
	return tx.Create(&models.PurchaseInvoiceVersion{
		InvoiceID: invoice.ID,
		VersionNo: last + 1,
		Snapshot:  blob,
	}).Error
}

// CreateInvoice writes the invoice, its items, the stock movements of every
// linked line, and (for inbound invoices) the sentinel expense row. The
// request transaction commits them together or not at all.
func CreateInvoice(c *fiber.Ctx) error {
	var in InvoiceInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	items, total := buildInvoiceItems(in.Items)
	invoice := models.PurchaseInvoice{
		UserID:        userID,
		ClientID:      in.ClientID,
		InvoiceNumber: in.InvoiceNumber,
		Description:   in.Description,
		Direction:     in.Direction,
		Items:         items,
		TotalAmount:   total,
		Date:          utils.ParseDateDefault(in.Date, time.Now().UTC()),
		Status:        models.InvoicePending,
	}

	if err := db.Create(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create invoice")
	}

	if err := applyInvoiceStock(db, userID, invoice.ID, invoice.Direction, invoice.Items, "Invoice "+invoice.InvoiceNumber); err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}

	if invoice.Direction == models.StockIn {
		expense := models.Expense{
			UserID:    userID,
			Category:  models.CategoryInvoiceBelanja,
			ClientID:  &invoice.ClientID,
			Amount:    invoice.TotalAmount,
			Note:      "Invoice " + invoice.InvoiceNumber,
			InvoiceID: &invoice.ID,
			Date:      invoice.Date,
		}
		if err := db.Create(&expense).Error; err != nil {
			return err
		}
	}

	if err := snapshotInvoice(db, &invoice); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func GetInvoices(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var invoices []models.PurchaseInvoice
	if err := db.Where("user_id = ?", userID).
		Preload("Items").Preload("Client").
		Order("date DESC, id DESC").Find(&invoices).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"invoices": invoices, "message": "success"})
}

func GetInvoice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var invoice models.PurchaseInvoice
	if err := db.Where("user_id = ?", userID).
		Preload("Items").Preload("Client").
		First(&invoice, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	return c.JSON(invoice)
}

// UpdateInvoice replaces the invoice's content: the original stock effect is
// reverted, new items are applied, and the sentinel expense is brought in
// line with the new direction and total.
func UpdateInvoice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in InvoiceInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var invoice models.PurchaseInvoice
	if err := db.Where("user_id = ?", userID).Preload("Items").First(&invoice, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	if invoice.Status != models.InvoicePending {
		return fiber.NewError(fiber.StatusConflict, "only pending invoices can be edited")
	}

	// Revert the stored direction's effect. The revert of an inbound line is
	// itself a deduction, so it can fail on insufficient stock.
	if err := applyInvoiceStock(db, userID, invoice.ID, invertDirection(invoice.Direction), invoice.Items, "Revert invoice "+invoice.InvoiceNumber); err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}

	if err := db.Where("invoice_id = ?", invoice.ID).Delete(&models.PurchaseInvoiceItem{}).Error; err != nil {
		return err
	}

	items, total := buildInvoiceItems(in.Items)
	for i := range items {
		items[i].InvoiceID = invoice.ID
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	invoice.ClientID = in.ClientID
	invoice.InvoiceNumber = in.InvoiceNumber
	invoice.Description = in.Description
	invoice.Direction = in.Direction
	invoice.TotalAmount = total
	invoice.Date = utils.ParseDateDefault(in.Date, invoice.Date)
	invoice.Items = items
	if err := db.Model(&models.PurchaseInvoice{}).Where("id = ?", invoice.ID).Updates(map[string]any{
		"client_id":      invoice.ClientID,
		"invoice_number": invoice.InvoiceNumber,
		"description":    invoice.Description,
		"direction":      invoice.Direction,
		"total_amount":   invoice.TotalAmount,
		"date":           invoice.Date,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update invoice")
	}

	if err := applyInvoiceStock(db, userID, invoice.ID, invoice.Direction, items, "Invoice "+invoice.InvoiceNumber); err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}

	if err := syncInvoiceExpense(db, userID, &invoice); err != nil {
		return err
	}

	if err := snapshotInvoice(db, &invoice); err != nil {
		return err
	}

	return c.JSON(invoice)
}

// syncInvoiceExpense keeps the sentinel expense row consistent with the
// invoice: present and current for inbound invoices, absent otherwise.
func syncInvoiceExpense(tx *gorm.DB, userID string, invoice *models.PurchaseInvoice) error {
	if invoice.Direction != models.StockIn {
		return tx.Where("invoice_id = ?", invoice.ID).Delete(&models.Expense{}).Error
	}

	var expense models.Expense
	err := tx.Where("invoice_id = ?", invoice.ID).First(&expense).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(&models.Expense{
			UserID:    userID,
			Category:  models.CategoryInvoiceBelanja,
			ClientID:  &invoice.ClientID,
			Amount:    invoice.TotalAmount,
			Note:      "Invoice " + invoice.InvoiceNumber,
			InvoiceID: &invoice.ID,
			Date:      invoice.Date,
		}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&expense).Updates(map[string]any{
		"client_id": invoice.ClientID,
		"amount":    invoice.TotalAmount,
		"note":      "Invoice " + invoice.InvoiceNumber,
		"date":      invoice.Date,
	}).Error
}

// invoiceCancellable reports whether an invoice may move to cancelled. Used
// invoices belong to a sale; cancelled ones already are.
func invoiceCancellable(status models.InvoiceStatus) bool {
	return status == models.InvoicePending
}

// CancelInvoice voids a pending invoice: its stock effect is reverted and its
// sentinel expense removed, but the row and its version history stay on file.
func CancelInvoice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var invoice models.PurchaseInvoice
	if err := db.Where("user_id = ?", userID).Preload("Items").First(&invoice, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	if !invoiceCancellable(invoice.Status) {
		return fiber.NewError(fiber.StatusConflict, "only pending invoices can be cancelled")
	}

	if err := applyInvoiceStock(db, userID, invoice.ID, invertDirection(invoice.Direction), invoice.Items, "Cancel invoice "+invoice.InvoiceNumber); err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}

	if err := db.Where("invoice_id = ?", invoice.ID).Delete(&models.Expense{}).Error; err != nil {
		return err
	}

	invoice.Status = models.InvoiceCancelled
	if err := db.Model(&models.PurchaseInvoice{}).Where("id = ?", invoice.ID).
		Update("status", models.InvoiceCancelled).Error; err != nil {
		return err
	}

	if err := snapshotInvoice(db, &invoice); err != nil {
		return err
	}

	return c.JSON(invoice)
}

// DeleteInvoice reverts the invoice's stock effect, removes its sentinel
// expense, and deletes the invoice with its items and versions. A cancelled
// invoice has no live stock effect left, so only the rows go.
func DeleteInvoice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var invoice models.PurchaseInvoice
	if err := db.Where("user_id = ?", userID).Preload("Items").First(&invoice, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	if invoice.Status == models.InvoiceUsed {
		return fiber.NewError(fiber.StatusConflict, "invoice is linked to a sale")
	}

	if invoice.Status == models.InvoicePending {
		if err := applyInvoiceStock(db, userID, invoice.ID, invertDirection(invoice.Direction), invoice.Items, "Delete invoice "+invoice.InvoiceNumber); err != nil {
			if errors.Is(err, ErrInsufficientStock) {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return err
		}
		if err := db.Where("invoice_id = ?", invoice.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
	}

	if err := db.Where("invoice_id = ?", invoice.ID).Delete(&models.PurchaseInvoiceVersion{}).Error; err != nil {
		return err
	}
	if err := db.Select("Items").Delete(&invoice).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func GetInvoiceVersions(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var invoice models.PurchaseInvoice
	if err := db.Where("user_id = ?", userID).First(&invoice, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}

	var versions []models.PurchaseInvoiceVersion
	if err := db.Where("invoice_id = ?", invoice.ID).
		Order("version_no ASC").Find(&versions).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"versions": versions, "message": "success"})
}
