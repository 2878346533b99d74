package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a pending request from a client, convertible into a Sale.
type Order struct {
	ID       uint        `json:"id" gorm:"primaryKey"`
	UserID   string      `json:"-" gorm:"index;not null"`
	ClientID uint        `json:"-"`
	Client   Client      `json:"client" gorm:"foreignKey:ClientID;references:Id"`
	Items    []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	TotalAmount float64     `json:"total_amount" gorm:"type:numeric(12,2)"`
	Date        time.Time   `json:"date" gorm:"index;not null"`
	Status      OrderStatus `json:"status" gorm:"size:10;not null;default:pending"`
	Notes       string      `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"-" gorm:"index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"not null"`
	Quantity  float64 `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	LineTotal float64 `json:"line_total" gorm:"type:numeric(12,2)"`
}
