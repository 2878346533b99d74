package middlewares

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"pembukuan-backend/database"
)

// RequestTx opens a per-request DB transaction for authenticated routes.
// Every multi-step operation (invoice + items + stock + expense, transfer,
// sale + invoice status + cash posting) therefore commits or rolls back as a
// unit; partial application is not a reachable state.
// Order: run AFTER IsAuthenticatedHeader() and AFTER Idempotency() (so
// idempotency records aren't tied to the handler TX).
func RequestTx() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		if c.Locals("userID") == nil {
			// Public endpoints (e.g., /login); just proceed.
			return c.Next()
		}

		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		// Ensure we always cleanup.
		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so Fiber's handler can catch
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				log.WithError(e).Error("tx commit failed")
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		// Make the TX available to handlers via database.FromCtx(c).
		c.Locals("tx", tx)

		err = c.Next()
		return err
	}
}
