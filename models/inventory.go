package models

import "time"

// StockDirection is the movement direction of a stock mutation.
type StockDirection string

const (
	StockIn  StockDirection = "in"
	StockOut StockDirection = "out"
)

type InventoryItem struct {
	Id     uint   `json:"id" gorm:"primaryKey"`
	UserID string `json:"-" gorm:"index;not null"`
	Name   string `json:"name" gorm:"not null"`
	Unit   string `json:"unit"`
	// Quantity never goes negative; see stock helpers for the clamping rules.
	Quantity    float64 `json:"quantity" gorm:"not null;default:0"`
	MinQuantity float64 `json:"min_quantity" gorm:"not null;default:0"`
	UnitCost    float64 `json:"unit_cost" gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryTransaction is the append-only movement log behind each item.
type InventoryTransaction struct {
	Id        uint           `json:"id" gorm:"primaryKey"`
	ItemID    uint           `json:"item_id" gorm:"index;not null"`
	UserID    string         `json:"-" gorm:"index;not null"`
	Direction StockDirection `json:"direction" gorm:"size:3;not null"`
	Quantity  float64        `json:"quantity" gorm:"not null"`
	// Quantity on the item after this movement was applied.
	ResultingQuantity float64 `json:"resulting_quantity"`
	Note              string  `json:"note" gorm:"size:255"`
	// Origin of the movement: "adjustment" or "invoice" (+RefID).
	RefType string `json:"ref_type" gorm:"size:20;not null"`
	RefID   uint   `json:"ref_id"`

	CreatedAt time.Time `json:"created_at"`
}

// Asset mirrors an inventory item's book value (quantity × unit cost).
// Linked by a real foreign key, not by name.
type Asset struct {
	Id              uint    `json:"id" gorm:"primaryKey"`
	UserID          string  `json:"-" gorm:"index;not null"`
	Name            string  `json:"name" gorm:"not null"`
	Category        string  `json:"category" gorm:"size:40;not null"`
	CurrentValue    float64 `json:"current_value" gorm:"type:numeric(12,2)"`
	InventoryItemID *uint   `json:"inventory_item_id" gorm:"uniqueIndex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssetCategoryInventory marks assets auto-managed by the inventory ledger.
const AssetCategoryInventory = "Inventaris"
