package controllers

import (
	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	UnitCost    float64 `json:"unit_cost" validate:"gte=0"`
}

func CreateProduct(c *fiber.Ctx) error {
	var in ProductInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	product := models.Product{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		UnitPrice:   in.UnitPrice,
		UnitCost:    in.UnitCost,
		Active:      true,
	}
	if err := db.Create(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func GetProducts(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var products []models.Product
	if err := db.Where("user_id = ?", userID).Order("name ASC").Find(&products).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"products": products, "message": "success"})
}

type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Unit        *string  `json:"unit"`
	UnitPrice   *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	UnitCost    *float64 `json:"unit_cost" validate:"omitempty,gte=0"`
	Active      *bool    `json:"active"`
}

func UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in ProductPatch
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := db.Where("user_id = ?", userID).First(&product, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update product")
		}
	}
	return c.JSON(product)
}

func DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	res := db.Where("user_id = ?", userID).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
