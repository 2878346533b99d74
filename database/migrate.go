package database

import (
	"fmt"

	"pembukuan-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - Money column types (NUMERIC(12,2))
// - Foreign keys for ledger-linked rows
// - Basic CHECK constraints (non-negative stock, balances, amounts)
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Client{},
			&models.Product{},
			&models.InventoryItem{},
			&models.InventoryTransaction{},
			&models.Asset{},
			&models.CashAccount{},
			&models.CashTransaction{},
			&models.PurchaseInvoice{},
			&models.PurchaseInvoiceItem{},
			&models.PurchaseInvoiceVersion{},
			&models.Order{},
			&models.OrderItem{},
			&models.Sale{},
			&models.SaleItem{},
			&models.Expense{},
			&models.Debt{},
			&models.DebtPayment{},
			&models.Receivable{},
			&models.ReceivablePayment{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE products            ALTER COLUMN unit_price       TYPE numeric(12,2)`,
			`ALTER TABLE products            ALTER COLUMN unit_cost        TYPE numeric(12,2)`,
			`ALTER TABLE inventory_items     ALTER COLUMN unit_cost        TYPE numeric(12,2)`,
			`ALTER TABLE assets              ALTER COLUMN current_value    TYPE numeric(12,2)`,
			`ALTER TABLE cash_accounts       ALTER COLUMN amount           TYPE numeric(12,2)`,
			`ALTER TABLE cash_transactions   ALTER COLUMN amount           TYPE numeric(12,2)`,
			`ALTER TABLE purchase_invoices   ALTER COLUMN total_amount     TYPE numeric(12,2)`,
			`ALTER TABLE purchase_invoice_items ALTER COLUMN unit_price    TYPE numeric(12,2)`,
			`ALTER TABLE purchase_invoice_items ALTER COLUMN line_total    TYPE numeric(12,2)`,
			`ALTER TABLE order_items         ALTER COLUMN unit_price       TYPE numeric(12,2)`,
			`ALTER TABLE order_items         ALTER COLUMN line_total       TYPE numeric(12,2)`,
			`ALTER TABLE sale_items          ALTER COLUMN unit_cost        TYPE numeric(12,2)`,
			`ALTER TABLE sale_items          ALTER COLUMN unit_price       TYPE numeric(12,2)`,
			`ALTER TABLE sale_items          ALTER COLUMN line_total       TYPE numeric(12,2)`,
			`ALTER TABLE sales               ALTER COLUMN total_amount     TYPE numeric(12,2)`,
			`ALTER TABLE sales               ALTER COLUMN total_cost       TYPE numeric(12,2)`,
			`ALTER TABLE sales               ALTER COLUMN additional_cost  TYPE numeric(12,2)`,
			`ALTER TABLE expenses            ALTER COLUMN amount           TYPE numeric(12,2)`,
			`ALTER TABLE debts               ALTER COLUMN amount           TYPE numeric(12,2)`,
			`ALTER TABLE debts               ALTER COLUMN remaining_amount TYPE numeric(12,2)`,
			`ALTER TABLE receivables         ALTER COLUMN amount           TYPE numeric(12,2)`,
			`ALTER TABLE receivables         ALTER COLUMN remaining_amount TYPE numeric(12,2)`,
			`ALTER TABLE debt_payments       ALTER COLUMN amount           TYPE numeric(12,2)`,
			`ALTER TABLE receivable_payments ALTER COLUMN amount           TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Foreign keys for rows the ledgers depend on ---
		fks := []struct{ table, name, stmt string }{
			{"assets", "fk_assets_inventory_item",
				`ALTER TABLE assets ADD CONSTRAINT fk_assets_inventory_item
				 FOREIGN KEY (inventory_item_id) REFERENCES inventory_items(id)
				 ON UPDATE RESTRICT ON DELETE CASCADE`},
			{"cash_transactions", "fk_cash_transactions_account",
				`ALTER TABLE cash_transactions ADD CONSTRAINT fk_cash_transactions_account
				 FOREIGN KEY (cash_id) REFERENCES cash_accounts(id)
				 ON UPDATE RESTRICT ON DELETE CASCADE`},
			{"inventory_transactions", "fk_inventory_transactions_item",
				`ALTER TABLE inventory_transactions ADD CONSTRAINT fk_inventory_transactions_item
				 FOREIGN KEY (item_id) REFERENCES inventory_items(id)
				 ON UPDATE RESTRICT ON DELETE CASCADE`},
		}
		for _, fk := range fks {
			stmt := fmt.Sprintf(`
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1
		FROM pg_constraint
		WHERE conrelid = '%s'::regclass
		  AND conname  = '%s'
	) THEN
		%s;
	END IF;
END $$;`, fk.table, fk.name, fk.stmt)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("foreign key migration failed (%s): %w", fk.name, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []struct{ table, name, expr string }{
			{"inventory_items", "chk_inventory_items_quantity_nonneg", "quantity >= 0"},
			{"cash_transactions", "chk_cash_transactions_amount_pos", "amount > 0"},
			{"expenses", "chk_expenses_amount_nonneg", "amount >= 0"},
			{"debts", "chk_debts_remaining_nonneg", "remaining_amount >= 0"},
			{"receivables", "chk_receivables_remaining_nonneg", "remaining_amount >= 0"},
		}
		for _, ck := range checks {
			stmt := fmt.Sprintf(`
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint
		WHERE conrelid = '%s'::regclass
		  AND conname  = '%s'
	) THEN
		ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s);
	END IF;
END $$;`, ck.table, ck.name, ck.table, ck.name, ck.expr)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed (%s): %w", ck.name, err)
			}
		}

		return nil
	})
}
