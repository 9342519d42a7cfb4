package models

import (
	"github.com/jinzhu/gorm"
)

// Ingredient represents a recipe-facing ingredient definition. It may link
// to a purchased InventoryItem, and when IsDailyCountItem is set it also
// carries a prepared-today stock counter maintained separately from raw
// purchased stock.
type Ingredient struct {
	gorm.Model
	Name             string
	InventoryItemID  *uint
	InventoryItem    *InventoryItem
	StandardQuantity float64
	StandardUnit     string
	IsDailyCountItem bool
	CurrentPrepStock float64
	ParentID         *uint
	Children         []Ingredient `gorm:"foreignkey:ParentID"`
}

// PrepItem represents a composed intermediate ingredient (a sauce, a spice
// mix) built in batches from raw inventory items and/or other prep items.
type PrepItem struct {
	gorm.Model
	Name        string
	BatchYield  float64
	OutputUnit  string
	CostPerUnit float64
	Lines       []PrepItemLine `gorm:"foreignkey:PrepItemID"`
}

// PrepItemLine represents one component line of a prep item's recipe.
// Exactly one of InventoryItemID or SubPrepItemID is set: a line either
// consumes a raw item directly or nests another prep item.
type PrepItemLine struct {
	gorm.Model
	PrepItemID      uint
	Position        int
	Quantity        float64
	Unit            string
	InventoryItemID *uint
	InventoryItem   *InventoryItem
	SubPrepItemID   *uint
	SubPrepItem     *PrepItem
}

// IsRaw reports whether the line consumes a raw inventory item
func (l *PrepItemLine) IsRaw() bool {
	return l.InventoryItemID != nil && l.InventoryItem != nil
}
