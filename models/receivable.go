package models

import "time"

// Receivable is money a client owes the business. Payment handling is the
// mirror image of Debt: same explicit remaining-amount update path.
type Receivable struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserID   string `json:"-" gorm:"index;not null"`
	ClientID uint   `json:"-"`
	Client   Client `json:"client" gorm:"foreignKey:ClientID;references:Id"`

	Amount          float64    `json:"amount" gorm:"type:numeric(12,2);not null"`
	RemainingAmount float64    `json:"remaining_amount" gorm:"type:numeric(12,2);not null"`
	Status          DebtStatus `json:"status" gorm:"size:10;not null;default:active"`
	DueDate         *time.Time `json:"due_date"`
	Note            string     `json:"note" gorm:"size:255"`

	Payments []ReceivablePayment `json:"payments" gorm:"foreignKey:ReceivableID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReceivablePayment struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	ReceivableID uint    `json:"receivable_id" gorm:"index;not null"`
	Amount       float64 `json:"amount" gorm:"type:numeric(12,2);not null"`
	// Optional cash account that received the money; posts an "in"
	// transaction to the cash ledger when set.
	CashID *uint     `json:"cash_id"`
	Note   string    `json:"note" gorm:"size:255"`
	Date   time.Time `json:"date" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}
