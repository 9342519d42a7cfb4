package deduction

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/prep"
)

// GormStore implements Store over the shared relational database. Stock
// mutations are expressed as relative-delta SQL so concurrent orders
// touching the same item stay correct without application-level locks.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over a gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func orderPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.MenuItem.RecipeLines").
		Preload("Items.MenuItem.RecipeLines.InventoryItem").
		Preload("Items.MenuItem.RecipeLines.Ingredient").
		Preload("Items.MenuItem.RecipeLines.Ingredient.InventoryItem").
		Preload("Items.MenuItem.RecipeLines.Ingredient.Children").
		Preload("Items.MenuItem.RecipeLines.Ingredient.Children.InventoryItem").
		Preload("Items.MenuItem.RecipeLines.PrepItem").
		Preload("Items.MenuItem.RecipeIngredients").
		Preload("Items.MenuItem.RecipeIngredients.InventoryItem").
		Preload("Items.Modifiers").
		Preload("Items.Modifiers.InventoryItem").
		Preload("Items.Modifiers.Ingredient").
		Preload("Items.Modifiers.Ingredient.InventoryItem").
		Preload("Items.Modifiers.Ingredient.Children").
		Preload("Items.Modifiers.Ingredient.Children.InventoryItem")
}

// LoadOrder reads one order with its full item/recipe/modifier graph
func (s *GormStore) LoadOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := orderPreloads(s.db).First(&order, orderID).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("order %d does not exist", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading order %d: %w", orderID, err)
	}
	for i := range order.Items {
		if err := s.loadPrepTrees(&order.Items[i]); err != nil {
			return nil, err
		}
	}
	return &order, nil
}

// LoadOrderItem reads one order item with its graph and the owning order's
// location id.
func (s *GormStore) LoadOrderItem(orderItemID uint) (*models.OrderItem, uint, error) {
	var item models.OrderItem
	q := s.db.
		Preload("MenuItem").
		Preload("MenuItem.RecipeLines").
		Preload("MenuItem.RecipeLines.InventoryItem").
		Preload("MenuItem.RecipeLines.Ingredient").
		Preload("MenuItem.RecipeLines.Ingredient.InventoryItem").
		Preload("MenuItem.RecipeLines.Ingredient.Children").
		Preload("MenuItem.RecipeLines.Ingredient.Children.InventoryItem").
		Preload("MenuItem.RecipeLines.PrepItem").
		Preload("MenuItem.RecipeIngredients").
		Preload("MenuItem.RecipeIngredients.InventoryItem").
		Preload("Modifiers").
		Preload("Modifiers.InventoryItem").
		Preload("Modifiers.Ingredient").
		Preload("Modifiers.Ingredient.InventoryItem").
		Preload("Modifiers.Ingredient.Children").
		Preload("Modifiers.Ingredient.Children.InventoryItem")
	err := q.First(&item, orderItemID).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, 0, fmt.Errorf("order item %d does not exist", orderItemID)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("loading order item %d: %w", orderItemID, err)
	}
	if err := s.loadPrepTrees(&item); err != nil {
		return nil, 0, err
	}
	var order models.Order
	err = s.db.Select("id, location_id").First(&order, item.OrderID).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, 0, fmt.Errorf("order %d does not exist", item.OrderID)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("loading order %d: %w", item.OrderID, err)
	}
	return &item, order.LocationID, nil
}

// loadPrepTrees resolves the nested prep item composition for every recipe
// line that references one. Depth is bounded the same way the explosion is.
func (s *GormStore) loadPrepTrees(item *models.OrderItem) error {
	if item.MenuItem == nil {
		return nil
	}
	for i := range item.MenuItem.RecipeLines {
		line := &item.MenuItem.RecipeLines[i]
		if line.PrepItemID == nil {
			continue
		}
		loaded, err := s.loadPrepItem(*line.PrepItemID, 0)
		if err != nil {
			return err
		}
		line.PrepItem = loaded
	}
	return nil
}

func (s *GormStore) loadPrepItem(id uint, depth int) (*models.PrepItem, error) {
	if depth >= prep.MaxDepth {
		return nil, nil
	}
	var p models.PrepItem
	q := s.db.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Lines.InventoryItem")
	err := q.First(&p, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("prep item %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading prep item %d: %w", id, err)
	}
	for i := range p.Lines {
		line := &p.Lines[i]
		if line.SubPrepItemID == nil {
			continue
		}
		sub, err := s.loadPrepItem(*line.SubPrepItemID, depth+1)
		if err != nil {
			return nil, err
		}
		line.SubPrepItem = sub
	}
	return &p, nil
}

// LoadMenuItem reads one menu item with its recipe graph for costing
func (s *GormStore) LoadMenuItem(menuItemID uint) (*models.MenuItem, error) {
	var menuItem models.MenuItem
	q := s.db.
		Preload("RecipeLines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("RecipeLines.InventoryItem").
		Preload("RecipeLines.PrepItem")
	err := q.First(&menuItem, menuItemID).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("menu item %d does not exist", menuItemID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading menu item %d: %w", menuItemID, err)
	}
	return &menuItem, nil
}

// LoadSettings reads the location settings row
func (s *GormStore) LoadSettings(locationID uint) (*models.LocationSettings, error) {
	var settings models.LocationSettings
	err := s.db.Where("location_id = ?", locationID).First(&settings).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("no settings for location %d", locationID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings for location %d: %w", locationID, err)
	}
	return &settings, nil
}

// ApplyStockOps applies every planned stock mutation and audit insert in a
// single transaction. Any failure rolls back the whole batch.
func (s *GormStore) ApplyStockOps(ops []StockOp) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("opening transaction: %w", tx.Error)
	}
	for i := range ops {
		op := &ops[i]
		expr := gorm.Expr("current_stock + ?", op.Delta)
		if op.FloorAtZero {
			expr = gorm.Expr("MAX(0, current_stock + ?)", op.Delta)
		}
		if err := tx.Model(&models.InventoryItem{}).
			Where("id = ?", op.InventoryItemID).
			Update("current_stock", expr).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("updating stock for item %d: %w", op.InventoryItemID, err)
		}
		if err := tx.Create(&op.Transaction).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("writing transaction record: %w", err)
		}
		if op.WasteEntry != nil {
			if err := tx.Create(op.WasteEntry).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("writing waste log entry: %w", err)
			}
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("committing stock operations: %w", err)
	}
	return nil
}

// ApplyPrepOps applies prepared-today counter changes in one transaction.
// Deductions clamp at zero inside the statement, restorations are plain
// increments.
func (s *GormStore) ApplyPrepOps(ops []PrepOp) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("opening transaction: %w", tx.Error)
	}
	for i := range ops {
		op := &ops[i]
		expr := gorm.Expr("MAX(0, current_prep_stock - ?)", op.Quantity)
		if op.Restore {
			expr = gorm.Expr("current_prep_stock + ?", op.Quantity)
		}
		if err := tx.Model(&models.Ingredient{}).
			Where("id = ?", op.IngredientID).
			Update("current_prep_stock", expr).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("updating prep stock for ingredient %d: %w", op.IngredientID, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("committing prep operations: %w", err)
	}
	return nil
}

// CompletedOrders loads the completed or paid orders of a location in a
// closed date range, satisfying usage.OrderSource for the usage report.
func (s *GormStore) CompletedOrders(locationID uint, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	q := orderPreloads(s.db).
		Where("location_id = ?", locationID).
		Where("status IN (?)", []string{string(models.OrderStatusCompleted), string(models.OrderStatusPaid)}).
		Where("paid_at >= ? AND paid_at <= ?", start, end)
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("loading completed orders: %w", err)
	}
	for i := range orders {
		for j := range orders[i].Items {
			if err := s.loadPrepTrees(&orders[i].Items[j]); err != nil {
				return nil, err
			}
		}
	}
	return orders, nil
}

// Transactions lists the audit transactions of a location over a range
func (s *GormStore) Transactions(locationID uint, start, end time.Time) ([]models.InventoryTransaction, error) {
	var txs []models.InventoryTransaction
	err := s.db.
		Where("location_id = ? AND created_at >= ? AND created_at <= ?", locationID, start, end).
		Order("created_at").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("loading inventory transactions: %w", err)
	}
	return txs, nil
}

// WasteLog lists the waste entries of a location over a range
func (s *GormStore) WasteLog(locationID uint, start, end time.Time) ([]models.WasteLogEntry, error) {
	var entries []models.WasteLogEntry
	err := s.db.
		Where("location_id = ? AND created_at >= ? AND created_at <= ?", locationID, start, end).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("loading waste log: %w", err)
	}
	return entries, nil
}
