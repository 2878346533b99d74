package controllers

import (
	"time"

	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SaleItemInput struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	// Optional override; defaults to the product's current price.
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gte=0"`
}

type SaleInput struct {
	ClientID  uint            `json:"client_id" validate:"required"`
	OrderID   *uint           `json:"order_id"`
	InvoiceID *uint           `json:"invoice_id"`
	CashID    *uint           `json:"cash_id"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes"`
	Items     []SaleItemInput `json:"items" validate:"required,min=1,dive"`
}

// createSale carries the whole multi-step effect of recording a sale:
// item pricing, packaging cost, invoice linkage (marks it used, its total
// becomes the sale's additional cost), order completion, and an optional
// cash-ledger posting. All under the request transaction.
func createSale(tx *gorm.DB, userID string, in SaleInput) (*models.Sale, error) {
	items := make([]models.SaleItem, 0, len(in.Items))
	var totalAmount, packagingCost float64
	for _, it := range in.Items {
		var product models.Product
		if err := tx.Where("user_id = ?", userID).First(&product, it.ProductID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "unknown product in sale")
		}
		unitPrice := product.UnitPrice
		if it.UnitPrice != nil {
			unitPrice = *it.UnitPrice
		}
		lineTotal := utils.Round2(it.Quantity * unitPrice)
		totalAmount += lineTotal
		packagingCost += it.Quantity * product.UnitCost
		items = append(items, models.SaleItem{
			ProductID: product.Id,
			Name:      product.Name,
			Quantity:  it.Quantity,
			UnitCost:  product.UnitCost,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}

	var additionalCost float64
	if in.InvoiceID != nil {
		var invoice models.PurchaseInvoice
		if err := tx.Where("user_id = ?", userID).First(&invoice, *in.InvoiceID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "linked invoice not found")
		}
		if invoice.Status != models.InvoicePending {
			return nil, fiber.NewError(fiber.StatusConflict, "linked invoice is not pending")
		}
		if err := tx.Model(&invoice).Update("status", models.InvoiceUsed).Error; err != nil {
			return nil, err
		}
		additionalCost = invoice.TotalAmount
	}

	if in.OrderID != nil {
		var order models.Order
		if err := tx.Where("user_id = ?", userID).First(&order, *in.OrderID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "linked order not found")
		}
		if order.Status != models.OrderPending {
			return nil, fiber.NewError(fiber.StatusConflict, "linked order is not pending")
		}
		if err := tx.Model(&order).Update("status", models.OrderCompleted).Error; err != nil {
			return nil, err
		}
	}

	sale := models.Sale{
		UserID:         userID,
		ClientID:       in.ClientID,
		OrderID:        in.OrderID,
		InvoiceID:      in.InvoiceID,
		Items:          items,
		TotalAmount:    utils.Round2(totalAmount),
		TotalCost:      utils.Round2(packagingCost + additionalCost),
		AdditionalCost: additionalCost,
		Date:           utils.ParseDateDefault(in.Date, time.Now().UTC()),
		Notes:          in.Notes,
	}
	if err := tx.Create(&sale).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "could not create sale")
	}

	if in.CashID != nil {
		if _, err := applyCashDelta(tx, userID, *in.CashID, models.CashTxIn,
			sale.TotalAmount, "Penjualan", "Sale payment", "sale", sale.ID, sale.Date); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	return &sale, nil
}

func CreateSale(c *fiber.Ctx) error {
	var in SaleInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	sale, err := createSale(db, userID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

type ConvertOrderInput struct {
	InvoiceID *uint  `json:"invoice_id"`
	CashID    *uint  `json:"cash_id"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

// ConvertOrder turns a pending order into a sale using the order's own lines.
func ConvertOrder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in ConvertOrderInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var order models.Order
	if err := db.Where("user_id = ?", userID).Preload("Items").First(&order, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	saleInput := SaleInput{
		ClientID:  order.ClientID,
		OrderID:   &order.ID,
		InvoiceID: in.InvoiceID,
		CashID:    in.CashID,
		Date:      in.Date,
		Notes:     in.Notes,
	}
	for _, it := range order.Items {
		price := it.UnitPrice
		saleInput.Items = append(saleInput.Items, SaleItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: &price,
		})
	}

	sale, err := createSale(db, userID, saleInput)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

func GetSales(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	q := db.Where("user_id = ?", userID)
	if clientID := utils.ParseIntDefault(c.Query("client_id"), 0); clientID > 0 {
		q = q.Where("client_id = ?", clientID)
	}
	var sales []models.Sale
	if err := q.Preload("Items").Preload("Client").
		Order("date DESC, id DESC").Find(&sales).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"sales": sales, "message": "success"})
}

func GetSale(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var sale models.Sale
	if err := db.Where("user_id = ?", userID).
		Preload("Items").Preload("Client").
		First(&sale, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "sale not found")
	}
	return c.JSON(sale)
}

// DeleteSale undoes the sale's side effects: the linked invoice returns to
// pending, the originating order returns to pending, and any cash posting is
// reversed before the sale row is removed.
func DeleteSale(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var sale models.Sale
	if err := db.Where("user_id = ?", userID).Preload("Items").First(&sale, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "sale not found")
	}

	if sale.InvoiceID != nil {
		if err := db.Model(&models.PurchaseInvoice{}).
			Where("id = ? AND user_id = ?", *sale.InvoiceID, userID).
			Update("status", models.InvoicePending).Error; err != nil {
			return err
		}
	}
	if sale.OrderID != nil {
		if err := db.Model(&models.Order{}).
			Where("id = ? AND user_id = ?", *sale.OrderID, userID).
			Update("status", models.OrderPending).Error; err != nil {
			return err
		}
	}

	var postings []models.CashTransaction
	if err := db.Where("user_id = ? AND ref_type = ? AND ref_id = ?", userID, "sale", sale.ID).
		Find(&postings).Error; err != nil {
		return err
	}
	for _, p := range postings {
		if err := removeCashTransaction(db, userID, p.Id); err != nil {
			return err
		}
	}

	if err := db.Select("Items").Delete(&sale).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}
