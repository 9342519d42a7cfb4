package models

import (
	"time"
)

// TransactionReason classifies why stock moved
type TransactionReason string

const (
	ReasonSale        TransactionReason = "sale"
	ReasonVoidWaste   TransactionReason = "void_waste"
	ReasonRestoration TransactionReason = "restoration"
)

// InventoryTransaction represents one audited stock movement. Delta is the
// signed change applied to CurrentStock (negative for deductions), in the
// item's storage unit.
type InventoryTransaction struct {
	ID              string `gorm:"primary_key"`
	LocationID      uint
	OrderID         *uint
	OrderItemID     *uint
	InventoryItemID uint
	ItemName        string
	Delta           float64
	Unit            string
	Cost            float64
	Reason          TransactionReason
	CreatedAt       time.Time
}

// WasteLogEntry represents one waste-log row written alongside a void/waste
// deduction, for shrinkage reporting.
type WasteLogEntry struct {
	ID              string `gorm:"primary_key"`
	LocationID      uint
	OrderItemID     uint
	InventoryItemID uint
	ItemName        string
	Quantity        float64
	Unit            string
	Reason          string
	CreatedAt       time.Time
}
