// Package deduction turns sold, voided, and kitchen-fired order items into
// atomic stock mutations. Each operation is split into a pure planning step
// that produces the full list of mutations and audit rows, and a thin apply
// step that submits the list as one store transaction.
package deduction

import (
	"time"

	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/modifier"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/usage"
)

// StockOp is one scheduled raw stock mutation with its audit record. Delta
// is signed: negative for deductions, positive for restorations.
type StockOp struct {
	InventoryItemID uint
	Name            string
	Delta           float64
	Unit            string
	Cost            float64
	FloorAtZero     bool
	Transaction     models.InventoryTransaction
	WasteEntry      *models.WasteLogEntry
}

// PrepOp is one scheduled prepared-today stock counter change. Quantity is
// always positive; Restore selects increment over decrement. Deductions
// clamp the counter at zero.
type PrepOp struct {
	IngredientID uint
	Name         string
	Quantity     float64
	Unit         string
	Restore      bool
	StockBefore  float64
	StockAfter   float64
}

func newStockOp(u usage.Usage, locationID uint, orderID, orderItemID *uint, delta float64, reason models.TransactionReason) StockOp {
	return StockOp{
		InventoryItemID: u.Item.ID,
		Name:            u.Item.Name,
		Delta:           delta,
		Unit:            u.Item.StorageUnit,
		Cost:            u.Cost,
		Transaction: models.InventoryTransaction{
			ID:              uuid.New().String(),
			LocationID:      locationID,
			OrderID:         orderID,
			OrderItemID:     orderItemID,
			InventoryItemID: u.Item.ID,
			ItemName:        u.Item.Name,
			Delta:           delta,
			Unit:            u.Item.StorageUnit,
			Cost:            u.Cost,
			Reason:          reason,
			CreatedAt:       time.Now(),
		},
	}
}

// BuildOrderOps plans the payment-time stock decrements for a whole order.
// Voided items are skipped; everything else resolves through the same
// three-source usage logic as the theoretical usage report.
func BuildOrderOps(order *models.Order, settings models.MultiplierSettings) ([]StockOp, float64) {
	var (
		ops       []StockOp
		totalCost float64
	)
	if order == nil {
		return nil, 0
	}
	orderID := order.ID
	for i := range order.Items {
		item := &order.Items[i]
		if item.Status == string(models.OrderStatusVoided) {
			continue
		}
		itemID := item.ID
		for _, u := range usage.ResolveItem(item, settings) {
			op := newStockOp(u, order.LocationID, &orderID, &itemID, -u.Quantity, models.ReasonSale)
			ops = append(ops, op)
			totalCost += u.Cost
		}
	}
	return ops, totalCost
}

// BuildVoidOps plans the waste deduction for one voided item: a floored
// stock decrement, an audit transaction, and a waste-log row per resolved
// ingredient.
func BuildVoidOps(item *models.OrderItem, locationID uint, reason string, settings models.MultiplierSettings) ([]StockOp, float64) {
	var (
		ops       []StockOp
		totalCost float64
	)
	if item == nil {
		return nil, 0
	}
	itemID := item.ID
	orderID := item.OrderID
	for _, u := range usage.ResolveItem(item, settings) {
		op := newStockOp(u, locationID, &orderID, &itemID, -u.Quantity, models.ReasonVoidWaste)
		op.FloorAtZero = true
		op.WasteEntry = &models.WasteLogEntry{
			ID:              uuid.New().String(),
			LocationID:      locationID,
			OrderItemID:     itemID,
			InventoryItemID: u.Item.ID,
			ItemName:        u.Item.Name,
			Quantity:        u.Quantity,
			Unit:            u.Item.StorageUnit,
			Reason:          reason,
			CreatedAt:       time.Now(),
		}
		ops = append(ops, op)
		totalCost += u.Cost
	}
	return ops, totalCost
}

// BuildRestoreOps plans the mirror-image increments for a voided item whose
// work was never performed.
func BuildRestoreOps(item *models.OrderItem, locationID uint, settings models.MultiplierSettings) ([]StockOp, float64) {
	var (
		ops       []StockOp
		totalCost float64
	)
	if item == nil {
		return nil, 0
	}
	itemID := item.ID
	orderID := item.OrderID
	for _, u := range usage.ResolveItem(item, settings) {
		ops = append(ops, newStockOp(u, locationID, &orderID, &itemID, u.Quantity, models.ReasonRestoration))
		totalCost += u.Cost
	}
	return ops, totalCost
}

// BuildPrepOps plans prepared-today counter changes for the daily-count
// ingredients an order item consumes, including one level of daily-count
// child ingredients. The removal set suppresses an ingredient and its
// children together.
func BuildPrepOps(item *models.OrderItem, settings models.MultiplierSettings, restore bool) []PrepOp {
	if item == nil || item.MenuItem == nil {
		return nil
	}
	orderQty := item.Quantity
	if orderQty <= 0 {
		orderQty = 1
	}
	removed := usage.RemovedItems(item)

	// Accumulate per ingredient so an ingredient reached twice becomes one
	// counter change.
	acc := map[uint]*PrepOp{}
	order := []uint{}

	addIngredient := func(ing *models.Ingredient, qty float64) {
		if ing == nil || !ing.IsDailyCountItem || qty <= 0 {
			return
		}
		if ing.InventoryItem != nil && removed[ing.InventoryItem.ID] {
			return
		}
		op, ok := acc[ing.ID]
		if !ok {
			op = &PrepOp{
				IngredientID: ing.ID,
				Name:         ing.Name,
				Unit:         ing.StandardUnit,
				Restore:      restore,
				StockBefore:  ing.CurrentPrepStock,
			}
			acc[ing.ID] = op
			order = append(order, ing.ID)
		}
		op.Quantity += qty
	}

	consume := func(ing *models.Ingredient, mult float64) {
		if ing == nil {
			return
		}
		qty := ing.StandardQuantity
		if qty <= 0 {
			qty = 1
		}
		addIngredient(ing, qty*mult*orderQty)
		if ing.InventoryItem != nil && removed[ing.InventoryItem.ID] {
			// Suppressed parent suppresses its children too.
			return
		}
		for i := range ing.Children {
			child := &ing.Children[i]
			childQty := child.StandardQuantity
			if childQty <= 0 {
				childQty = 1
			}
			addIngredient(child, childQty*mult*orderQty)
		}
	}

	for i := range item.MenuItem.RecipeLines {
		consume(item.MenuItem.RecipeLines[i].Ingredient, 1)
	}
	for i := range item.Modifiers {
		m := &item.Modifiers[i]
		mult := modifier.Multiplier(m.Instruction, settings)
		if mult == 0 {
			continue
		}
		consume(m.Ingredient, mult)
	}

	ops := make([]PrepOp, 0, len(order))
	for _, id := range order {
		op := acc[id]
		if restore {
			op.StockAfter = op.StockBefore + op.Quantity
		} else {
			op.StockAfter = op.StockBefore - op.Quantity
			if op.StockAfter < 0 {
				op.StockAfter = 0
			}
		}
		ops = append(ops, *op)
	}
	return ops
}
