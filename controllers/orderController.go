package controllers

import (
	"time"

	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderItemInput struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	// Optional override; defaults to the product's current price.
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gte=0"`
}

type OrderInput struct {
	ClientID uint             `json:"client_id" validate:"required"`
	Date     string           `json:"date"`
	Notes    string           `json:"notes"`
	Items    []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// buildOrderItems resolves each line against the user's products and prices
// it, returning the items and the order total.
func buildOrderItems(c *fiber.Ctx, inputs []OrderItemInput) ([]models.OrderItem, float64, error) {
	db, userID, err := userDB(c)
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.OrderItem, 0, len(inputs))
	var total float64
	for _, in := range inputs {
		var product models.Product
		if err := db.Where("user_id = ?", userID).First(&product, in.ProductID).Error; err != nil {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "unknown product in order")
		}
		unitPrice := product.UnitPrice
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		lineTotal := utils.Round2(in.Quantity * unitPrice)
		total += lineTotal
		items = append(items, models.OrderItem{
			ProductID: product.Id,
			Name:      product.Name,
			Quantity:  in.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}
	return items, utils.Round2(total), nil
}

func CreateOrder(c *fiber.Ctx) error {
	var in OrderInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	items, total, err := buildOrderItems(c, in.Items)
	if err != nil {
		return err
	}

	order := models.Order{
		UserID:      userID,
		ClientID:    in.ClientID,
		Items:       items,
		TotalAmount: total,
		Date:        utils.ParseDateDefault(in.Date, time.Now().UTC()),
		Status:      models.OrderPending,
		Notes:       in.Notes,
	}
	if err := db.Create(&order).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func GetOrders(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	q := db.Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	if err := q.Preload("Items").Preload("Client").
		Order("date DESC, id DESC").Find(&orders).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders": orders, "message": "success"})
}

func GetOrder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var order models.Order
	if err := db.Where("user_id = ?", userID).
		Preload("Items").Preload("Client").
		First(&order, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}
	return c.JSON(order)
}

func CancelOrder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var order models.Order
	if err := db.Where("user_id = ?", userID).First(&order, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}
	if order.Status != models.OrderPending {
		return fiber.NewError(fiber.StatusConflict, "only pending orders can be cancelled")
	}
	if err := db.Model(&order).Update("status", models.OrderCancelled).Error; err != nil {
		return err
	}
	return c.JSON(order)
}

func DeleteOrder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var order models.Order
	if err := db.Where("user_id = ?", userID).First(&order, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}
	if order.Status == models.OrderCompleted {
		return fiber.NewError(fiber.StatusConflict, "completed orders cannot be deleted")
	}
	if err := db.Select("Items").Delete(&order).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}
