// Package costing computes per-line and aggregate recipe cost and margin
// figures. Money arithmetic runs on decimals and is rounded only at the
// result boundary.
package costing

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/monitoring"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/units"
)

// EffectiveCost returns the cost per storage unit to charge a recipe for an
// item: the yield-adjusted cost when one has been measured (an explicit 0
// is valid), the purchase cost otherwise.
func EffectiveCost(item *models.InventoryItem) float64 {
	if item == nil {
		return 0
	}
	if item.YieldCostPerUnit != nil {
		return *item.YieldCostPerUnit
	}
	return item.CostPerUnit
}

// LineCost is the costed form of a single recipe line
type LineCost struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitCost  float64 `json:"unitCost"`
	LineCost  float64 `json:"lineCost"`
	Converted bool    `json:"converted"`
}

// IngredientCosts costs each recipe line against its linked inventory item
// or prep item and returns the per-line breakdown plus the total. Line
// quantities are converted to the costed unit where possible; otherwise the
// raw quantity is used and the fallback is surfaced through metrics.
func IngredientCosts(lines []models.RecipeLine) ([]LineCost, float64) {
	costs := make([]LineCost, 0, len(lines))
	total := decimal.Zero

	for i := range lines {
		line := &lines[i]
		var (
			name     string
			unitCost float64
			costUnit string
		)
		switch {
		case line.InventoryItem != nil:
			name = line.InventoryItem.Name
			unitCost = EffectiveCost(line.InventoryItem)
			costUnit = line.InventoryItem.StorageUnit
		case line.PrepItem != nil:
			name = line.PrepItem.Name
			unitCost = line.PrepItem.CostPerUnit
			costUnit = line.PrepItem.OutputUnit
		default:
			continue
		}

		qty, converted := convertForCosting(line.Quantity, line.Unit, costUnit, name)
		lineCost := decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(unitCost))
		total = total.Add(lineCost)
		costs = append(costs, LineCost{
			Name:      name,
			Quantity:  qty,
			Unit:      costUnit,
			UnitCost:  unitCost,
			LineCost:  lineCost.InexactFloat64(),
			Converted: converted,
		})
	}
	return costs, total.InexactFloat64()
}

// VariantCost adds the cost of a variant option's inventory links on top of
// a base recipe cost, with the same conversion discipline as recipe lines.
func VariantCost(baseCost float64, links []models.VariantOptionLink) float64 {
	total := decimal.NewFromFloat(baseCost)
	for i := range links {
		link := &links[i]
		if link.InventoryItem == nil {
			continue
		}
		qty, _ := convertForCosting(link.Quantity, link.Unit, link.InventoryItem.StorageUnit, link.InventoryItem.Name)
		cost := decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(EffectiveCost(link.InventoryItem)))
		total = total.Add(cost)
	}
	return total.InexactFloat64()
}

// RecipeCosting derives the margin figures for a recipe. Percentage fields
// are 0 when sellPrice is not positive.
func RecipeCosting(totalCost, sellPrice float64) models.RecipeCostingResult {
	result := models.RecipeCostingResult{
		TotalCost: totalCost,
		SellPrice: sellPrice,
	}
	cost := decimal.NewFromFloat(totalCost)
	price := decimal.NewFromFloat(sellPrice)
	profit := price.Sub(cost)
	result.GrossProfit = profit.InexactFloat64()
	if sellPrice > 0 {
		hundred := decimal.NewFromInt(100)
		result.FoodCostPercent = cost.Div(price).Mul(hundred).InexactFloat64()
		result.GrossMargin = profit.Div(price).Mul(hundred).InexactFloat64()
	}
	return result
}

func convertForCosting(qty float64, from, to string, name string) (float64, bool) {
	if units.SameUnit(from, to) {
		return qty, false
	}
	converted, ok := units.Convert(qty, from, to)
	if !ok {
		log.Printf("costing: cannot convert %s to %s for %q, costing raw quantity", from, to, name)
		monitoring.ConversionFallbacks.WithLabelValues(units.Normalize(from), units.Normalize(to)).Inc()
		return qty, false
	}
	return converted, true
}
