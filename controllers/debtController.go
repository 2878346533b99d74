package controllers

import (
	"time"

	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// paymentStatus derives the state of a debt or receivable from its amounts
// and due date. Both flows share this one code path; nothing relies on a
// database trigger.
func paymentStatus(amount, remaining float64, due *time.Time, now time.Time) models.DebtStatus {
	if remaining <= 0 {
		return models.DebtPaid
	}
	if due != nil && now.After(*due) {
		return models.DebtOverdue
	}
	if remaining < amount {
		return models.DebtPartial
	}
	return models.DebtActive
}

type DebtInput struct {
	CreditorName string  `json:"creditor_name" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	DueDate      string  `json:"due_date"`
	Note         string  `json:"note"`
}

func CreateDebt(c *fiber.Ctx) error {
	var in DebtInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	debt := models.Debt{
		UserID:          userID,
		CreditorName:    in.CreditorName,
		Amount:          in.Amount,
		RemainingAmount: in.Amount,
		Status:          models.DebtActive,
		Note:            in.Note,
	}
	if in.DueDate != "" {
		due := utils.ParseDateDefault(in.DueDate, time.Time{})
		if !due.IsZero() {
			debt.DueDate = &due
		}
	}
	debt.Status = paymentStatus(debt.Amount, debt.RemainingAmount, debt.DueDate, time.Now().UTC())

	if err := db.Create(&debt).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create debt")
	}
	return c.Status(fiber.StatusCreated).JSON(debt)
}

func GetDebts(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var debts []models.Debt
	if err := db.Where("user_id = ?", userID).Preload("Payments").
		Order("id DESC").Find(&debts).Error; err != nil {
		return err
	}
	// Overdue is time-dependent; refresh it on read.
	now := time.Now().UTC()
	for i := range debts {
		debts[i].Status = paymentStatus(debts[i].Amount, debts[i].RemainingAmount, debts[i].DueDate, now)
	}
	return c.JSON(fiber.Map{"debts": debts, "message": "success"})
}

type PaymentInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	CashID *uint   `json:"cash_id"`
	Note   string  `json:"note"`
	Date   string  `json:"date"`
}

// AddDebtPayment inserts the payment, decrements the remaining amount, and
// optionally posts the outflow to a cash account — one transaction.
func AddDebtPayment(c *fiber.Ctx) error {
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

	var debt models.Debt
	if err := db.Clauses(clauseUpdateLock()).
		Where("user_id = ?", userID).First(&debt, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "debt not found")
	}

	amount := utils.Round2(in.Amount)
	if amount > debt.RemainingAmount {
		return fiber.NewError(fiber.StatusBadRequest, "payment exceeds remaining amount")
	}

	payment := models.DebtPayment{
		DebtID: debt.ID,
		Amount: amount,
		CashID: in.CashID,
		Note:   in.Note,
		Date:   utils.ParseDateDefault(in.Date, time.Now().UTC()),
	}
	if err := db.Create(&payment).Error; err != nil {
		return err
	}

	remaining := utils.Round2(debt.RemainingAmount - amount)
	status := paymentStatus(debt.Amount, remaining, debt.DueDate, time.Now().UTC())
	if err := db.Model(&debt).Updates(map[string]any{
		"remaining_amount": remaining,
		"status":           status,
	}).Error; err != nil {
		return err
	}

	if in.CashID != nil {
		if _, err := applyCashDelta(db, userID, *in.CashID, models.CashTxOut,
			amount, "Bayar Hutang", debt.CreditorName, "debt_payment", payment.ID, payment.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	debt.RemainingAmount = remaining
	debt.Status = status
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"debt": debt, "payment": payment})
}

func DeleteDebt(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var debt models.Debt
	if err := db.Where("user_id = ?", userID).First(&debt, id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "debt not found")
	}
	if err := db.Select("Payments").Delete(&debt).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}
