package controllers

import (
	"time"

	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ExpenseInput struct {
	Category string  `json:"category" validate:"required"`
	ClientID *uint   `json:"client_id"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

func CreateExpense(c *fiber.Ctx) error {
	var in ExpenseInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)
	if in.Category == models.CategoryInvoiceBelanja {
		return fiber.NewError(fiber.StatusBadRequest, "category is reserved for invoice expenses")
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	expense := models.Expense{
		UserID:   userID,
		Category: in.Category,
		ClientID: in.ClientID,
		Amount:   in.Amount,
		Note:     in.Note,
		Date:     utils.ParseDateDefault(in.Date, time.Now().UTC()),
	}
	if err := db.Create(&expense).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create expense")
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func GetExpenses(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	q := db.Where("user_id = ?", userID)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	var expenses []models.Expense
	if err := q.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"expenses": expenses, "message": "success"})
}

type ExpensePatch struct {
	Category *string  `json:"category"`
	ClientID *uint    `json:"client_id"`
	Amount   *float64 `json:"amount" validate:"omitempty,gt=0"`
	Note     *string  `json:"note"`
	Date     *string  `json:"date"`
}

func UpdateExpense(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in ExpensePatch
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)
	if in.Category != nil && *in.Category == models.CategoryInvoiceBelanja {
		return fiber.NewError(fiber.StatusBadRequest, "category is reserved for invoice expenses")
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var expense models.Expense
	if err := db.Where("user_id = ?", userID).First(&expense, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "expense not found")
	}
	if expense.InvoiceID != nil {
		return fiber.NewError(fiber.StatusConflict, "invoice expenses are managed through their invoice")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if in.Date != nil {
		updates["date"] = utils.ParseDateDefault(*in.Date, expense.Date)
	}
	if len(updates) > 0 {
		if err := db.Model(&expense).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update expense")
		}
	}
	return c.JSON(expense)
}

func DeleteExpense(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var expense models.Expense
	if err := db.Where("user_id = ?", userID).First(&expense, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "expense not found")
	}
	if expense.InvoiceID != nil {
		return fiber.NewError(fiber.StatusConflict, "invoice expenses are managed through their invoice")
	}
	if err := db.Delete(&expense).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}
