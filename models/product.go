package models

import "time"

type Product struct {
	Id          uint    `json:"id" gorm:"primaryKey"`
	UserID      string  `json:"-" gorm:"index;not null"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	// Packaging cost per unit; copied onto sale items as their unit cost.
	UnitCost float64 `json:"unit_cost" gorm:"type:numeric(12,2)"`
	Active   bool    `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
