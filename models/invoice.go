package models

import (
	"time"

	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoiceUsed      InvoiceStatus = "used"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// PurchaseInvoice records stock received from (direction "in") or consumed
// for (direction "out") a client. The direction is an explicit column; it is
// never derived from the description text.
type PurchaseInvoice struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	UserID        string `json:"-" gorm:"index;not null"`
	ClientID      uint   `json:"-"`
	Client        Client `json:"client" gorm:"foreignKey:ClientID;references:Id"`
	InvoiceNumber string `json:"invoice_number" gorm:"unique"`
	Description   string `json:"description"`

	Direction   StockDirection        `json:"direction" gorm:"size:3;not null"`
	Items       []PurchaseInvoiceItem `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	TotalAmount float64               `json:"total_amount" gorm:"type:numeric(12,2)"`
	Date        time.Time             `json:"date" gorm:"index;not null"`
	Status      InvoiceStatus         `json:"status" gorm:"size:10;not null;default:pending"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PurchaseInvoiceItem struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	InvoiceID uint `json:"-" gorm:"index"`
	// Optional link; invoice lines for services or untracked goods leave it nil.
	InventoryItemID *uint   `json:"inventory_item_id" gorm:"index"`
	Name            string  `json:"name" gorm:"not null"`
	Quantity        float64 `json:"quantity" gorm:"not null"`
	UnitPrice       float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	LineTotal       float64 `json:"line_total" gorm:"type:numeric(12,2)"`
}

// PurchaseInvoiceVersion is an immutable snapshot taken on every mutation.
type PurchaseInvoiceVersion struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	InvoiceID uint           `json:"invoice_id" gorm:"index:idx_invoice_versions_invoice_id_version_no,unique,priority:1"`
	VersionNo int            `json:"version_no" gorm:"not null;index:idx_invoice_versions_invoice_id_version_no,unique,priority:2"`
	Snapshot  datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
}
