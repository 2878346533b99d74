package controllers

import (
	"time"

	"pembukuan-backend/middlewares"
	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CashAccountInput struct {
	Name   string                 `json:"name" validate:"required"`
	Type   models.CashAccountType `json:"type" validate:"required,oneof=cash bank e-wallet"`
	Amount float64                `json:"amount" validate:"gte=0"`
}

func CreateCashAccount(c *fiber.Ctx) error {
	var in CashAccountInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	account := models.CashAccount{
		UserID: userID,
		Name:   in.Name,
		Type:   in.Type,
		Amount: in.Amount,
	}
	if err := db.Create(&account).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create cash account")
	}

	// An opening balance shows up in the log like any other inflow.
	if account.Amount > 0 {
		row := models.CashTransaction{
			CashID:   account.Id,
			UserID:   userID,
			Type:     models.CashTxIn,
			Amount:   account.Amount,
			Category: "Saldo Awal",
			RefType:  "manual",
			Date:     time.Now().UTC(),
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func GetCashAccounts(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var accounts []models.CashAccount
	if err := db.Where("user_id = ?", userID).Order("name ASC").Find(&accounts).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"accounts": accounts, "message": "success"})
}

type CashTransactionInput struct {
	CashID   uint              `json:"cash_id" validate:"required"`
	Type     models.CashTxType `json:"type" validate:"required,oneof=in out"`
	Amount   float64           `json:"amount" validate:"required,gt=0"`
	Category string            `json:"category"`
	Note     string            `json:"note"`
	Date     string            `json:"date"`
}

// RecordCashTransaction posts a manual in/out movement; the transaction row
// and the balance update commit together.
func RecordCashTransaction(c *fiber.Ctx) error {
	var in CashTransactionInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	date := utils.ParseDateDefault(in.Date, time.Now().UTC())
	row, err := applyCashDelta(db, userID, in.CashID, in.Type, utils.Round2(in.Amount), in.Category, in.Note, "manual", 0, date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func GetCashTransactions(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	var rows []models.CashTransaction
	if err := db.Where("user_id = ? AND cash_id = ?", userID, id).
		Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"transactions": rows, "message": "success"})
}

type TransferInput struct {
	FromCashID uint    `json:"from_cash_id" validate:"required"`
	ToCashID   uint    `json:"to_cash_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Note       string  `json:"note"`
	Date       string  `json:"date"`
}

// TransferCash moves money between two accounts: one debit row, one credit
// row, two balance updates, one commit.
func TransferCash(c *fiber.Ctx) error {
	var in TransferInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if in.FromCashID == in.ToCashID {
		return fiber.NewError(fiber.StatusBadRequest, "cannot transfer to the same account")
	}

	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	amount := utils.Round2(in.Amount)
	date := utils.ParseDateDefault(in.Date, time.Now().UTC())

	out, err := applyCashDelta(db, userID, in.FromCashID, models.CashTxOut, amount, "Transfer", in.Note, "transfer", in.ToCashID, date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	inRow, err := applyCashDelta(db, userID, in.ToCashID, models.CashTxIn, amount, "Transfer", in.Note, "transfer", in.FromCashID, date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"debit":   out,
		"credit":  inRow,
		"message": "success",
	})
}

// DeleteCashTransaction removes a transaction and restores the account's
// pre-transaction balance.
func DeleteCashTransaction(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	if err := removeCashTransaction(db, userID, id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func DeleteCashAccount(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}
	res := db.Where("user_id = ?", userID).Delete(&models.CashAccount{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "cash account not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
