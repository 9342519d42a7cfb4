package deduction

import (
	"fmt"
	"log"
	"strings"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/monitoring"
)

// Config holds the waste taxonomy: the void reasons that mean product was
// physically consumed and stock must be deducted.
type Config struct {
	WasteReasons []string
}

// DefaultConfig returns the stock waste taxonomy
func DefaultConfig() Config {
	return Config{
		WasteReasons: []string{
			string(models.VoidKitchenError),
			string(models.VoidCustomerDisliked),
			string(models.VoidWrongOrder),
			string(models.VoidRemade),
			string(models.VoidQualityIssue),
		},
	}
}

// IsWasteReason reports whether a void reason is in the waste taxonomy
func (c Config) IsWasteReason(reason string) bool {
	for _, r := range c.WasteReasons {
		if strings.EqualFold(r, reason) {
			return true
		}
	}
	return false
}

// Store is the persistence surface the services need: consistent snapshot
// reads of the order graph, and an atomic all-or-nothing apply for each
// planned operation list.
type Store interface {
	LoadOrder(orderID uint) (*models.Order, error)
	LoadOrderItem(orderItemID uint) (*models.OrderItem, uint, error)
	LoadSettings(locationID uint) (*models.LocationSettings, error)
	ApplyStockOps(ops []StockOp) error
	ApplyPrepOps(ops []PrepOp) error
}

// Service exposes the order-lifecycle deduction and restoration operations.
// Every method returns a structured result instead of an error so the
// payment/void/send flows can surface failures without crashing.
type Service struct {
	store  Store
	config Config
}

// NewService creates a deduction service over a store
func NewService(store Store, config Config) *Service {
	if len(config.WasteReasons) == 0 {
		config = DefaultConfig()
	}
	return &Service{store: store, config: config}
}

func (s *Service) settingsFor(locationID uint) *models.LocationSettings {
	settings, err := s.store.LoadSettings(locationID)
	if err != nil {
		// Missing settings row means defaults everywhere.
		return nil
	}
	return settings
}

func failure(operation, msg string) models.InventoryDeductionResult {
	monitoring.DeductionFailures.WithLabelValues(operation).Inc()
	return models.InventoryDeductionResult{Success: false, Errors: []string{msg}}
}

// DeductInventoryForOrder converts one paid order into stock decrements and
// audit records, applied in a single transaction.
func (s *Service) DeductInventoryForOrder(orderID uint) models.InventoryDeductionResult {
	order, err := s.store.LoadOrder(orderID)
	if err != nil {
		return failure("order_deduction", fmt.Sprintf("order %d not found: %v", orderID, err))
	}
	settings := s.settingsFor(order.LocationID)

	ops, totalCost := BuildOrderOps(order, settings.Multipliers())
	if len(ops) == 0 {
		return models.InventoryDeductionResult{Success: true}
	}
	if err := s.store.ApplyStockOps(ops); err != nil {
		log.Printf("deduction: order %d apply failed: %v", orderID, err)
		return failure("order_deduction", fmt.Sprintf("applying deductions: %v", err))
	}
	monitoring.DeductionsApplied.WithLabelValues("order_deduction").Inc()
	return models.InventoryDeductionResult{
		Success:       true,
		ItemsDeducted: len(ops),
		TotalCost:     totalCost,
	}
}

// DeductInventoryForVoidedItem deducts stock for a single voided item when
// the void reason indicates the product was wasted. Any other reason is a
// no-op that performs no store query at all.
func (s *Service) DeductInventoryForVoidedItem(orderItemID uint, voidReason string) models.InventoryDeductionResult {
	if !s.config.IsWasteReason(voidReason) {
		return models.InventoryDeductionResult{Success: true}
	}
	item, locationID, err := s.store.LoadOrderItem(orderItemID)
	if err != nil {
		return failure("void_deduction", fmt.Sprintf("order item %d not found: %v", orderItemID, err))
	}
	settings := s.settingsFor(locationID)

	ops, totalCost := BuildVoidOps(item, locationID, voidReason, settings.Multipliers())
	if len(ops) == 0 {
		return models.InventoryDeductionResult{Success: true}
	}
	if err := s.store.ApplyStockOps(ops); err != nil {
		log.Printf("deduction: void of item %d apply failed: %v", orderItemID, err)
		return failure("void_deduction", fmt.Sprintf("applying waste deductions: %v", err))
	}
	monitoring.DeductionsApplied.WithLabelValues("void_deduction").Inc()
	return models.InventoryDeductionResult{
		Success:       true,
		ItemsDeducted: len(ops),
		TotalCost:     totalCost,
	}
}

// RestoreInventoryForRestoredItem reverses a void deduction by incrementing
// what was decremented. It only applies when the item was never actually
// made; voiding prepared food does not refund stock.
func (s *Service) RestoreInventoryForRestoredItem(orderItemID uint) models.InventoryDeductionResult {
	item, locationID, err := s.store.LoadOrderItem(orderItemID)
	if err != nil {
		return failure("restoration", fmt.Sprintf("order item %d not found: %v", orderItemID, err))
	}
	if item.WasMade {
		return models.InventoryDeductionResult{Success: true}
	}
	settings := s.settingsFor(locationID)

	ops, totalCost := BuildRestoreOps(item, locationID, settings.Multipliers())
	if len(ops) == 0 {
		return models.InventoryDeductionResult{Success: true}
	}
	if err := s.store.ApplyStockOps(ops); err != nil {
		log.Printf("deduction: restoration of item %d apply failed: %v", orderItemID, err)
		return failure("restoration", fmt.Sprintf("applying restorations: %v", err))
	}
	monitoring.DeductionsApplied.WithLabelValues("restoration").Inc()
	return models.InventoryDeductionResult{
		Success:       true,
		ItemsDeducted: len(ops),
		TotalCost:     totalCost,
	}
}

// DeductPrepStockForOrder decrements the prepared-today counters of the
// daily-count ingredients an order consumes, triggered on send-to-kitchen.
// When orderItemIDs is non-empty only those items are counted.
func (s *Service) DeductPrepStockForOrder(orderID uint, orderItemIDs []uint) models.PrepStockDeductionResult {
	order, err := s.store.LoadOrder(orderID)
	if err != nil {
		monitoring.DeductionFailures.WithLabelValues("prep_deduction").Inc()
		return models.PrepStockDeductionResult{Success: false, Errors: []string{fmt.Sprintf("order %d not found: %v", orderID, err)}}
	}
	settings := s.settingsFor(order.LocationID)
	if !settings.PrepTrackingEnabled() || !settings.DeductPrepOnSendEnabled() {
		return models.PrepStockDeductionResult{Success: true}
	}

	wanted := map[uint]bool{}
	for _, id := range orderItemIDs {
		wanted[id] = true
	}

	var ops []PrepOp
	for i := range order.Items {
		item := &order.Items[i]
		if len(wanted) > 0 && !wanted[item.ID] {
			continue
		}
		ops = append(ops, BuildPrepOps(item, settings.Multipliers(), false)...)
	}
	if len(ops) == 0 {
		return models.PrepStockDeductionResult{Success: true}
	}
	if err := s.store.ApplyPrepOps(ops); err != nil {
		log.Printf("deduction: prep stock for order %d apply failed: %v", orderID, err)
		monitoring.DeductionFailures.WithLabelValues("prep_deduction").Inc()
		return models.PrepStockDeductionResult{Success: false, Errors: []string{fmt.Sprintf("applying prep deductions: %v", err)}}
	}
	monitoring.DeductionsApplied.WithLabelValues("prep_deduction").Inc()
	return models.PrepStockDeductionResult{Success: true, DeductedItems: prepDeductions(ops)}
}

// RestorePrepStockForVoid increments prepared-today counters for a voided
// item that was never fired, gated by the location's restore toggle.
func (s *Service) RestorePrepStockForVoid(orderItemID uint) models.PrepStockDeductionResult {
	item, locationID, err := s.store.LoadOrderItem(orderItemID)
	if err != nil {
		monitoring.DeductionFailures.WithLabelValues("prep_restoration").Inc()
		return models.PrepStockDeductionResult{Success: false, Errors: []string{fmt.Sprintf("order item %d not found: %v", orderItemID, err)}}
	}
	if item.WasMade {
		return models.PrepStockDeductionResult{Success: true}
	}
	settings := s.settingsFor(locationID)
	if !settings.PrepTrackingEnabled() || !settings.RestorePrepOnVoidEnabled() {
		return models.PrepStockDeductionResult{Success: true}
	}

	ops := BuildPrepOps(item, settings.Multipliers(), true)
	if len(ops) == 0 {
		return models.PrepStockDeductionResult{Success: true}
	}
	if err := s.store.ApplyPrepOps(ops); err != nil {
		log.Printf("deduction: prep restoration for item %d apply failed: %v", orderItemID, err)
		monitoring.DeductionFailures.WithLabelValues("prep_restoration").Inc()
		return models.PrepStockDeductionResult{Success: false, Errors: []string{fmt.Sprintf("applying prep restorations: %v", err)}}
	}
	monitoring.DeductionsApplied.WithLabelValues("prep_restoration").Inc()
	return models.PrepStockDeductionResult{Success: true, DeductedItems: prepDeductions(ops)}
}

func prepDeductions(ops []PrepOp) []models.PrepStockDeduction {
	out := make([]models.PrepStockDeduction, 0, len(ops))
	for _, op := range ops {
		out = append(out, models.PrepStockDeduction{
			IngredientID:     op.IngredientID,
			Name:             op.Name,
			QuantityDeducted: op.Quantity,
			Unit:             op.Unit,
			StockBefore:      op.StockBefore,
			StockAfter:       op.StockAfter,
		})
	}
	return out
}
