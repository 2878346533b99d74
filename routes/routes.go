package routes

import (
	"github.com/gofiber/fiber/v2"

	"pembukuan-backend/controllers"
	"pembukuan-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then the per-request transaction (commits/rolls back around the handler)
	protected.Use(middlewares.RequestTx())

	// Clients
	protected.Post("/client", controllers.CreateClient)
	protected.Get("/clients", controllers.GetClients)
	protected.Get("/client/:id", controllers.GetClient)
	protected.Put("/client/:id", controllers.UpdateClient)
	protected.Delete("/client/:id", controllers.DeleteClient)

	// Products
	protected.Post("/product", controllers.CreateProduct)
	protected.Get("/products", controllers.GetProducts)
	protected.Put("/product/:id", controllers.UpdateProduct)
	protected.Delete("/product/:id", controllers.DeleteProduct)

	// Inventory
	protected.Post("/inventory", controllers.CreateInventoryItem)
	protected.Get("/inventory", controllers.GetInventoryItems)
	protected.Get("/inventory/low-stock", controllers.GetLowStockItems)
	protected.Put("/inventory/:id", controllers.UpdateInventoryItem)
	protected.Delete("/inventory/:id", controllers.DeleteInventoryItem)
	protected.Post("/inventory/:id/adjust", controllers.AdjustStock)
	protected.Get("/inventory/:id/transactions", controllers.GetInventoryTransactions)

	// Cash accounts & transactions
	protected.Post("/cash", controllers.CreateCashAccount)
	protected.Get("/cash", controllers.GetCashAccounts)
	protected.Delete("/cash/:id", controllers.DeleteCashAccount)
	protected.Post("/cash/transaction", controllers.RecordCashTransaction)
	protected.Get("/cash/:id/transactions", controllers.GetCashTransactions)
	protected.Post("/cash/transfer", controllers.TransferCash)
	protected.Delete("/cash/transaction/:id", controllers.DeleteCashTransaction)

	// Purchase invoices (versioned, stock-linked)
	protected.Post("/invoice", controllers.CreateInvoice)
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoice/:id", controllers.GetInvoice)
	protected.Put("/invoice/:id", controllers.UpdateInvoice)
	protected.Put("/invoice/:id/cancel", controllers.CancelInvoice)
	protected.Delete("/invoice/:id", controllers.DeleteInvoice)
	protected.Get("/invoice/:id/versions", controllers.GetInvoiceVersions)

	// Orders
	protected.Post("/order", controllers.CreateOrder)
	protected.Get("/orders", controllers.GetOrders)
	protected.Get("/order/:id", controllers.GetOrder)
	protected.Put("/order/:id/cancel", controllers.CancelOrder)
	protected.Post("/order/:id/convert", controllers.ConvertOrder)
	protected.Delete("/order/:id", controllers.DeleteOrder)

	// Sales
	protected.Post("/sale", controllers.CreateSale)
	protected.Get("/sales", controllers.GetSales)
	protected.Get("/sale/:id", controllers.GetSale)
	protected.Delete("/sale/:id", controllers.DeleteSale)

	// Expenses
	protected.Post("/expense", controllers.CreateExpense)
	protected.Get("/expenses", controllers.GetExpenses)
	protected.Put("/expense/:id", controllers.UpdateExpense)
	protected.Delete("/expense/:id", controllers.DeleteExpense)

	// Debts & receivables
	protected.Post("/debt", controllers.CreateDebt)
	protected.Get("/debts", controllers.GetDebts)
	protected.Post("/debt/:id/payments", controllers.AddDebtPayment)
	protected.Delete("/debt/:id", controllers.DeleteDebt)
	protected.Post("/receivable", controllers.CreateReceivable)
	protected.Get("/receivables", controllers.GetReceivables)
	protected.Post("/receivable/:id/payments", controllers.AddReceivablePayment)
	protected.Delete("/receivable/:id", controllers.DeleteReceivable)

	// Reports
	protected.Get("/reports/financial", controllers.GetFinancialReport)
}
