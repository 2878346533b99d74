package models

import "time"

// Sale is a completed transaction. TotalCost = packaging cost of its items
// plus AdditionalCost taken from the linked purchase invoice, if any.
type Sale struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserID   string `json:"-" gorm:"index;not null"`
	ClientID uint   `json:"-"`
	Client   Client `json:"client" gorm:"foreignKey:ClientID;references:Id"`

	// Originating order; marked completed when the sale is created.
	OrderID *uint `json:"order_id" gorm:"index"`
	// Linked purchase invoice; marked used when the sale is created.
	InvoiceID *uint `json:"invoice_id" gorm:"index"`

	Items          []SaleItem `json:"items" gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	TotalAmount    float64    `json:"total_amount" gorm:"type:numeric(12,2)"`
	TotalCost      float64    `json:"total_cost" gorm:"type:numeric(12,2)"`
	AdditionalCost float64    `json:"additional_cost" gorm:"type:numeric(12,2)"`
	Date           time.Time  `json:"date" gorm:"index;not null"`
	Notes          string     `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaleItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	SaleID    uint    `json:"-" gorm:"index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"not null"`
	Quantity  float64 `json:"quantity" gorm:"not null"`
	// Packaging cost per unit at the time of sale.
	UnitCost  float64 `json:"unit_cost" gorm:"type:numeric(12,2)"`
	UnitPrice float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	LineTotal float64 `json:"line_total" gorm:"type:numeric(12,2)"`
}
