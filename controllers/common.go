package controllers

import (
	"pembukuan-backend/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// userDB returns the request-scoped DB handle and the authenticated user id.
func userDB(c *fiber.Ctx) (*gorm.DB, string, error) {
	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "auth context missing")
	}
	db, err := database.FromCtx(c)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}
	return db, userID, nil
}

// paramID parses the :id route parameter.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
