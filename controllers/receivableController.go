package controllers

import (
	"time"

	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ReceivableInput struct {
	ClientID uint    `json:"client_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	DueDate  string  `json:"due_date"`
	Note     string  `json:"note"`
}

func CreateReceivable(c *fiber.Ctx) error {
	var in ReceivableInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	receivable := models.Receivable{
		UserID:          userID,
		ClientID:        in.ClientID,
		Amount:          in.Amount,
		RemainingAmount: in.Amount,
		Status:          models.DebtActive,
		Note:            in.Note,
	}
	if in.DueDate != "" {
		due := utils.ParseDateDefault(in.DueDate, time.Time{})
		if !due.IsZero() {
			receivable.DueDate = &due
		}
	}
	receivable.Status = paymentStatus(receivable.Amount, receivable.RemainingAmount, receivable.DueDate, time.Now().UTC())

	if err := db.Create(&receivable).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create receivable")
	}
	return c.Status(fiber.StatusCreated).JSON(receivable)
}

func GetReceivables(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var receivables []models.Receivable
	if err := db.Where("user_id = ?", userID).
		Preload("Payments").Preload("Client").
		Order("id DESC").Find(&receivables).Error; err != nil {
		return err
	}
	now := time.Now().UTC()
	for i := range receivables {
		receivables[i].Status = paymentStatus(receivables[i].Amount, receivables[i].RemainingAmount, receivables[i].DueDate, now)
	}
	return c.JSON(fiber.Map{"receivables": receivables, "message": "success"})
}

// AddReceivablePayment mirrors AddDebtPayment: the remaining amount is
// decremented by this code path, and an optional cash account receives the
// inflow.
func AddReceivablePayment(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in PaymentInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	var receivable models.Receivable
	if err := db.Clauses(clauseUpdateLock()).
		Where("user_id = ?", userID).First(&receivable, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "receivable not found")
	}

	amount := utils.Round2(in.Amount)
	if amount > receivable.RemainingAmount {
		return fiber.NewError(fiber.StatusBadRequest, "payment exceeds remaining amount")
	}

	payment := models.ReceivablePayment{
		ReceivableID: receivable.ID,
		Amount:       amount,
		CashID:       in.CashID,
		Note:         in.Note,
		Date:         utils.ParseDateDefault(in.Date, time.Now().UTC()),
	}
	if err := db.Create(&payment).Error; err != nil {
		return err
	}

	remaining := utils.Round2(receivable.RemainingAmount - amount)
	status := paymentStatus(receivable.Amount, remaining, receivable.DueDate, time.Now().UTC())
	if err := db.Model(&receivable).Updates(map[string]any{
		"remaining_amount": remaining,
		"status":           status,
	}).Error; err != nil {
		return err
	}

	if in.CashID != nil {
		if _, err := applyCashDelta(db, userID, *in.CashID, models.CashTxIn,
			amount, "Terima Piutang", in.Note, "receivable_payment", payment.ID, payment.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	receivable.RemainingAmount = remaining
	receivable.Status = status
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"receivable": receivable, "payment": payment})
}

func DeleteReceivable(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var receivable models.Receivable
	if err := db.Where("user_id = ?", userID).First(&receivable, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "receivable not found")
	}
	if err := db.Select("Payments").Delete(&receivable).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}
