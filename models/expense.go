package models

import "time"

// CategoryInvoiceBelanja marks expenses auto-created from inbound purchase
// invoices. Reports exclude it from operational totals so invoice cost is not
// counted twice (it already flows into cost of goods via sales).
const CategoryInvoiceBelanja = "Invoice Belanja"

type Expense struct {
	Id       uint    `json:"id" gorm:"primaryKey"`
	UserID   string  `json:"-" gorm:"index;not null"`
	Category string  `json:"category" gorm:"size:80;not null"`
	ClientID *uint   `json:"client_id" gorm:"index"`
	Amount   float64 `json:"amount" gorm:"type:numeric(12,2);not null"`
	Note     string  `json:"note" gorm:"size:255"`
	// Set for the auto-created invoice expense; used to delete it when the
	// invoice is deleted.
	InvoiceID *uint     `json:"invoice_id" gorm:"index"`
	Date      time.Time `json:"date" gorm:"index;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
