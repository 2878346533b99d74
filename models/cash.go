package models

import "time"

type CashAccountType string

const (
	CashTypeCash    CashAccountType = "cash"
	CashTypeBank    CashAccountType = "bank"
	CashTypeEWallet CashAccountType = "e-wallet"
)

type CashTxType string

const (
	CashTxIn  CashTxType = "in"
	CashTxOut CashTxType = "out"
)

type CashAccount struct {
	Id     uint            `json:"id" gorm:"primaryKey"`
	UserID string          `json:"-" gorm:"index;not null"`
	Name   string          `json:"name" gorm:"not null"`
	Type   CashAccountType `json:"type" gorm:"size:10;not null"`
	// Running balance; always equals the signed sum of the account's
	// transactions because both are written in one DB transaction.
	Amount float64 `json:"amount" gorm:"type:numeric(12,2);not null;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CashTransaction struct {
	Id       uint       `json:"id" gorm:"primaryKey"`
	CashID   uint       `json:"cash_id" gorm:"index;not null"`
	UserID   string     `json:"-" gorm:"index;not null"`
	Type     CashTxType `json:"type" gorm:"size:3;not null"`
	Amount   float64    `json:"amount" gorm:"type:numeric(12,2);not null"`
	Category string     `json:"category" gorm:"size:80"`
	Note     string     `json:"note" gorm:"size:255"`
	// Origin of the posting: "manual", "transfer", "sale", "debt_payment",
	// "receivable_payment" (+RefID where applicable).
	RefType string    `json:"ref_type" gorm:"size:20;not null;default:manual"`
	RefID   uint      `json:"ref_id"`
	Date    time.Time `json:"date" gorm:"index;not null"`

	CreatedAt time.Time `json:"created_at"`
}
