package controllers

import (
	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ClientInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Notes       string `json:"notes"`
}

func CreateClient(c *fiber.Ctx) error {
	var in ClientInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	client := models.Client{
		UserID:      userID,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		City:        in.City,
		Notes:       in.Notes,
	}
	if err := db.Create(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create client")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func GetClients(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var clients []models.Client
	if err := db.Where("user_id = ?", userID).Order("name ASC").Find(&clients).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"clients": clients, "message": "success"})
}

func GetClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var client models.Client
	if err := db.Where("user_id = ?", userID).First(&client, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}
	return c.JSON(client)
}

type ClientPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Notes       *string `json:"notes"`
}

func UpdateClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in ClientPatch
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var client models.Client
	if err := db.Where("user_id = ?", userID).First(&client, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&client).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update client")
		}
	}
	return c.JSON(client)
}

func DeleteClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	res := db.Where("user_id = ?", userID).Delete(&models.Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
