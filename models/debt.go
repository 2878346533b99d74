package models

import "time"

type DebtStatus string

const (
	DebtActive  DebtStatus = "active"
	DebtPartial DebtStatus = "partial"
	DebtPaid    DebtStatus = "paid"
	DebtOverdue DebtStatus = "overdue"
)

// Debt is money the business owes. RemainingAmount is decremented by the
// server in the same transaction as each payment insert; there is no
// database trigger involved.
type Debt struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       string `json:"-" gorm:"index;not null"`
	CreditorName string `json:"creditor_name" gorm:"not null"`

	Amount          float64    `json:"amount" gorm:"type:numeric(12,2);not null"`
	RemainingAmount float64    `json:"remaining_amount" gorm:"type:numeric(12,2);not null"`
	Status          DebtStatus `json:"status" gorm:"size:10;not null;default:active"`
	DueDate         *time.Time `json:"due_date"`
	Note            string     `json:"note" gorm:"size:255"`

	Payments []DebtPayment `json:"payments" gorm:"foreignKey:DebtID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DebtPayment struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	DebtID uint    `json:"debt_id" gorm:"index;not null"`
	Amount float64 `json:"amount" gorm:"type:numeric(12,2);not null"`
	// Optional cash account the payment was made from; posts an "out"
	// transaction to the cash ledger when set.
	CashID *uint     `json:"cash_id"`
	Note   string    `json:"note" gorm:"size:255"`
	Date   time.Time `json:"date" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}
