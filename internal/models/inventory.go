package models

import (
	"github.com/jinzhu/gorm"
)

// InventoryItem represents a purchased raw product tracked in inventory.
// Reference data (name, unit, cost) is authored by the menu management
// tools; the deduction services only ever touch CurrentStock.
type InventoryItem struct {
	gorm.Model
	Name             string
	Category         string
	Department       string
	StorageUnit      string
	CostPerUnit      float64
	YieldCostPerUnit *float64 // cost adjusted for trim/waste yield; nil when not measured
	DefaultPourOz    *float64 // bottle products: default pour size in fluid ounces
	CurrentStock     float64
}

// InventoryCategory represents the category of an inventory item
type InventoryCategory string

const (
	// Inventory categories
	CategoryFood        InventoryCategory = "food"
	CategoryLiquor      InventoryCategory = "liquor"
	CategoryBeer        InventoryCategory = "beer"
	CategoryWine        InventoryCategory = "wine"
	CategoryBeverage    InventoryCategory = "beverage"
	CategoryDisposables InventoryCategory = "disposables"
)

// InventoryDepartment represents the department an item is costed against
type InventoryDepartment string

const (
	// Departments
	DepartmentKitchen InventoryDepartment = "kitchen"
	DepartmentBar     InventoryDepartment = "bar"
	DepartmentRetail  InventoryDepartment = "retail"
)
