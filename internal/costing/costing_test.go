package costing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
)

func f(v float64) *float64 { return &v }

func TestEffectiveCost(t *testing.T) {
	item := &models.InventoryItem{CostPerUnit: 0.04}
	assert.Equal(t, 0.04, EffectiveCost(item))

	item.YieldCostPerUnit = f(0.05)
	assert.Equal(t, 0.05, EffectiveCost(item))

	// An explicit zero yield cost is a valid value, not "unset".
	item.YieldCostPerUnit = f(0)
	assert.Equal(t, 0.0, EffectiveCost(item))

	assert.Equal(t, 0.0, EffectiveCost(nil))
}

func TestIngredientCosts(t *testing.T) {
	beef := &models.InventoryItem{Name: "Ground Beef", StorageUnit: "lb", CostPerUnit: 4.00}
	beef.ID = 1
	cheese := &models.InventoryItem{Name: "Cheddar", StorageUnit: "g", CostPerUnit: 0.02}
	cheese.ID = 2
	sauce := &models.PrepItem{Name: "House Sauce", OutputUnit: "ml", CostPerUnit: 0.01}
	sauce.ID = 3

	lines := []models.RecipeLine{
		{Quantity: 8, Unit: "oz", InventoryItem: beef},   // 0.5 lb * $4.00 = $2.00
		{Quantity: 30, Unit: "g", InventoryItem: cheese}, // same unit, $0.60
		{Quantity: 50, Unit: "ml", PrepItem: sauce},      // $0.50
	}

	costs, total := IngredientCosts(lines)
	if assert.Len(t, costs, 3) {
		assert.InDelta(t, 2.00, costs[0].LineCost, 0.001)
		assert.True(t, costs[0].Converted)
		assert.InDelta(t, 0.60, costs[1].LineCost, 0.001)
		assert.False(t, costs[1].Converted)
		assert.InDelta(t, 0.50, costs[2].LineCost, 0.001)
	}
	assert.InDelta(t, 3.10, total, 0.001)
}

func TestIngredientCostsConversionFallback(t *testing.T) {
	lemons := &models.InventoryItem{Name: "Lemons", StorageUnit: "ea", CostPerUnit: 0.50}
	lemons.ID = 1

	// oz cannot convert to ea; the raw quantity is costed.
	lines := []models.RecipeLine{{Quantity: 2, Unit: "oz", InventoryItem: lemons}}
	costs, total := IngredientCosts(lines)
	if assert.Len(t, costs, 1) {
		assert.False(t, costs[0].Converted)
		assert.InDelta(t, 1.00, costs[0].LineCost, 0.001)
	}
	assert.InDelta(t, 1.00, total, 0.001)
}

func TestIngredientCostsSkipsUnlinkedLines(t *testing.T) {
	lines := []models.RecipeLine{{Quantity: 2, Unit: "oz"}}
	costs, total := IngredientCosts(lines)
	assert.Empty(t, costs)
	assert.Zero(t, total)
}

func TestRecipeCosting(t *testing.T) {
	r := RecipeCosting(5, 20)
	assert.InDelta(t, 25, r.FoodCostPercent, 1e-9)
	assert.InDelta(t, 15, r.GrossProfit, 1e-9)
	assert.InDelta(t, 75, r.GrossMargin, 1e-9)
}

func TestRecipeCostingZeroSellPrice(t *testing.T) {
	r := RecipeCosting(5, 0)
	assert.Zero(t, r.FoodCostPercent)
	assert.Zero(t, r.GrossMargin)
	assert.InDelta(t, -5, r.GrossProfit, 1e-9)

	r = RecipeCosting(5, -1)
	assert.Zero(t, r.FoodCostPercent)
	assert.Zero(t, r.GrossMargin)
}

func TestVariantCost(t *testing.T) {
	oatMilk := &models.InventoryItem{Name: "Oat Milk", StorageUnit: "ml", CostPerUnit: 0.005}
	oatMilk.ID = 1
	links := []models.VariantOptionLink{
		{Quantity: 100, Unit: "ml", InventoryItem: oatMilk},
		{Quantity: 5, Unit: "g"}, // no link, ignored
	}
	got := VariantCost(1.20, links)
	if math.Abs(got-1.70) > 1e-9 {
		t.Errorf("VariantCost = %v, want 1.70", got)
	}
}
