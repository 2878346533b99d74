package controllers

import (
	"time"

	"pembukuan-backend/models"
	"pembukuan-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// GetFinancialReport aggregates sales, cost of goods, and operational
// expenses for a period.
//
// Query parameters:
//   - period: daily | monthly | quarterly | yearly | all (default monthly)
//   - date:   reference date YYYY-MM-DD (default today)
//   - client_id: optional filter
func GetFinancialReport(c *fiber.Ctx) error {
	db, userID, err := userDB(c)
	if err != nil {
		return err
	}

	period := c.Query("period", PeriodMonthly)
	ref := utils.ParseDateDefault(c.Query("date"), time.Now().UTC())
	start, end, err := ResolveDateRange(period, ref)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	clientID := utils.ParseIntDefault(c.Query("client_id"), 0)

	salesQ := db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end)
	if clientID > 0 {
		salesQ = salesQ.Where("client_id = ?", clientID)
	}
	var sales []models.Sale
	if err := salesQ.Preload("Items").Order("date ASC, id ASC").Find(&sales).Error; err != nil {
		return err
	}

	// The sentinel category is filtered again inside the aggregation; the
	// query-level exclusion just keeps the result set small.
	expenseQ := db.Where("user_id = ? AND date BETWEEN ? AND ? AND category <> ?",
		userID, start, end, models.CategoryInvoiceBelanja)
	if clientID > 0 {
		expenseQ = expenseQ.Where("client_id = ?", clientID)
	}
	var expenses []models.Expense
	if err := expenseQ.Find(&expenses).Error; err != nil {
		return err
	}

	summary := BuildFinancialSummary(period, sales, expenses)
	summary.ProfitMargin = utils.Round1(summary.ProfitMargin)

	return c.JSON(fiber.Map{
		"period":  period,
		"from":    start.Format("2006-01-02"),
		"to":      end.Format("2006-01-02"),
		"summary": summary,
		"message": "success",
	})
}
