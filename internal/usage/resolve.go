// Package usage resolves sold order items into raw inventory consumption.
// The same three-source resolution (base recipe, liquor pours, modifiers)
// feeds both the theoretical usage report and the stock deduction services.
package usage

import (
	"log"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/costing"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/modifier"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/monitoring"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/prep"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/units"
)

// HousePourOz is the pour size used when neither the recipe line nor the
// bottle declares one.
const HousePourOz = 1.5

// Usage is one resolved raw-inventory consumption. Quantity is in the
// item's storage unit where conversion was possible, the source unit
// otherwise (tolerated approximation, counted in metrics).
type Usage struct {
	Item     *models.InventoryItem
	Quantity float64
	Cost     float64
}

// RemovedItems scans an order item's modifiers for removal instructions and
// resolves each one's target inventory item through whichever linkage path
// is present. A dish's own recipe line for the same item is suppressed too,
// which is how "no onions" cancels the onions the recipe would deduct.
func RemovedItems(item *models.OrderItem) map[uint]bool {
	removed := map[uint]bool{}
	for i := range item.Modifiers {
		m := &item.Modifiers[i]
		if !modifier.IsRemoval(m.Instruction) {
			continue
		}
		if id, ok := m.TargetInventoryItemID(); ok {
			removed[id] = true
		}
	}
	return removed
}

// ResolveItem computes the raw inventory consumption of one sold order
// item: base recipe lines (composed lines exploded to leaves), liquor
// bottle pours, and quantity-adjusting modifiers. Each source is additive;
// removal instructions suppress their target everywhere.
func ResolveItem(item *models.OrderItem, settings models.MultiplierSettings) []Usage {
	if item == nil || item.MenuItem == nil {
		return nil
	}
	orderQty := item.Quantity
	if orderQty <= 0 {
		orderQty = 1
	}
	removed := RemovedItems(item)

	var usages []Usage

	// Base recipe.
	for i := range item.MenuItem.RecipeLines {
		line := &item.MenuItem.RecipeLines[i]
		if lineRemoved(line, removed) {
			continue
		}
		switch {
		case line.InventoryItem != nil:
			usages = appendUsage(usages, line.InventoryItem, line.Quantity*orderQty, line.Unit)
		case line.PrepItem != nil:
			for _, req := range prep.Explode(line.PrepItem, line.Quantity*orderQty, line.Unit) {
				if req.Item == nil || removed[req.Item.ID] {
					continue
				}
				usages = appendUsage(usages, req.Item, req.Quantity, req.Unit)
			}
		}
	}

	// Liquor pours.
	for i := range item.MenuItem.RecipeIngredients {
		ri := &item.MenuItem.RecipeIngredients[i]
		if ri.InventoryItem == nil {
			continue
		}
		pour := pourSizeOz(ri)
		usages = appendUsage(usages, ri.InventoryItem, ri.PourCount*pour*orderQty, "fl_oz")
	}

	// Modifiers.
	for i := range item.Modifiers {
		m := &item.Modifiers[i]
		mult := modifier.Multiplier(m.Instruction, settings)
		if mult == 0 {
			continue
		}
		src := m.ResolveSource()
		if src.Kind == models.SourceNone || src.InventoryItem == nil {
			continue
		}
		if removed[src.InventoryItem.ID] {
			continue
		}
		count := m.Quantity
		if count <= 0 {
			count = 1
		}
		usages = appendUsage(usages, src.InventoryItem, src.Quantity*mult*count*orderQty, src.Unit)
	}

	return usages
}

func lineRemoved(line *models.RecipeLine, removed map[uint]bool) bool {
	if line.InventoryItem != nil && removed[line.InventoryItem.ID] {
		return true
	}
	if line.Ingredient != nil && line.Ingredient.InventoryItem != nil && removed[line.Ingredient.InventoryItem.ID] {
		return true
	}
	return false
}

func pourSizeOz(ri *models.RecipeIngredient) float64 {
	if ri.PourSizeOz != nil && *ri.PourSizeOz > 0 {
		return *ri.PourSizeOz
	}
	if ri.InventoryItem != nil && ri.InventoryItem.DefaultPourOz != nil && *ri.InventoryItem.DefaultPourOz > 0 {
		return *ri.InventoryItem.DefaultPourOz
	}
	return HousePourOz
}

// appendUsage converts qty into the item's storage unit where possible and
// records the costed usage. Conversion failure deducts the raw figure.
func appendUsage(usages []Usage, item *models.InventoryItem, qty float64, unit string) []Usage {
	converted := qty
	if !units.SameUnit(unit, item.StorageUnit) {
		c, ok := units.Convert(qty, unit, item.StorageUnit)
		if ok {
			converted = c
		} else {
			log.Printf("usage: cannot convert %s to %s for %q, using raw quantity", unit, item.StorageUnit, item.Name)
			monitoring.ConversionFallbacks.WithLabelValues(units.Normalize(unit), units.Normalize(item.StorageUnit)).Inc()
		}
	}
	return append(usages, Usage{
		Item:     item,
		Quantity: converted,
		Cost:     converted * costing.EffectiveCost(item),
	})
}
