package models

import (
	"time"
)

// InventoryDeductionResult is returned by the order and void deduction
// services. Failures are reported here rather than as errors so the
// payment/void flow can decide whether to block the user action.
type InventoryDeductionResult struct {
	Success       bool     `json:"success"`
	ItemsDeducted int      `json:"itemsDeducted"`
	TotalCost     float64  `json:"totalCost"`
	Errors        []string `json:"errors,omitempty"`
}

// PrepStockDeduction describes one prep stock counter change
type PrepStockDeduction struct {
	IngredientID     uint    `json:"ingredientId"`
	Name             string  `json:"name"`
	QuantityDeducted float64 `json:"quantityDeducted"`
	Unit             string  `json:"unit"`
	StockBefore      float64 `json:"stockBefore"`
	StockAfter       float64 `json:"stockAfter"`
}

// PrepStockDeductionResult is returned by the prep stock tracking service
type PrepStockDeductionResult struct {
	Success       bool                 `json:"success"`
	DeductedItems []PrepStockDeduction `json:"deductedItems"`
	Errors        []string             `json:"errors,omitempty"`
}

// UsageLine is one aggregated row of a theoretical usage report
type UsageLine struct {
	InventoryItemID  uint    `json:"inventoryItemId"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Department       string  `json:"department"`
	Unit             string  `json:"unit"`
	TheoreticalUsage float64 `json:"theoreticalUsage"`
	TotalCost        float64 `json:"totalCost"`
}

// TheoreticalUsageResult reports expected ingredient consumption for the
// completed orders of a location over a date range.
type TheoreticalUsageResult struct {
	LocationID uint        `json:"locationId"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Department string      `json:"department,omitempty"`
	OrderCount int         `json:"orderCount"`
	Usage      []UsageLine `json:"usage"`
	TotalCost  float64     `json:"totalCost"`
}

// RecipeCostingResult carries the cost/margin figures for one recipe
type RecipeCostingResult struct {
	TotalCost       float64 `json:"totalCost"`
	SellPrice       float64 `json:"sellPrice"`
	FoodCostPercent float64 `json:"foodCostPercent"`
	GrossProfit     float64 `json:"grossProfit"`
	GrossMargin     float64 `json:"grossMargin"`
}
