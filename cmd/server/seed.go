package main

import (
	"log"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
)

func f(v float64) *float64 { return &v }

// seedDemoData creates a small but complete menu graph for local
// development: raw items, a prep item, a daily-count ingredient, a burger
// with modifiers, a cocktail with bottle pours, and one paid order.
func seedDemoData(db *gorm.DB) error {
	var count int64
	db.Model(&models.InventoryItem{}).Count(&count)
	if count > 0 {
		log.Println("Demo data already present, skipping seed")
		return nil
	}

	beef := models.InventoryItem{Name: "Ground Beef", Category: string(models.CategoryFood), Department: string(models.DepartmentKitchen), StorageUnit: "lb", CostPerUnit: 4.25, CurrentStock: 60}
	buns := models.InventoryItem{Name: "Brioche Buns", Category: string(models.CategoryFood), Department: string(models.DepartmentKitchen), StorageUnit: "ea", CostPerUnit: 0.65, CurrentStock: 96}
	onions := models.InventoryItem{Name: "Yellow Onions", Category: string(models.CategoryFood), Department: string(models.DepartmentKitchen), StorageUnit: "g", CostPerUnit: 0.002, YieldCostPerUnit: f(0.0024), CurrentStock: 9000}
	tomatoes := models.InventoryItem{Name: "Roma Tomatoes", Category: string(models.CategoryFood), Department: string(models.DepartmentKitchen), StorageUnit: "g", CostPerUnit: 0.003, CurrentStock: 8000}
	tequila := models.InventoryItem{Name: "Blanco Tequila", Category: string(models.CategoryLiquor), Department: string(models.DepartmentBar), StorageUnit: "ml", CostPerUnit: 0.022, DefaultPourOz: f(1.5), CurrentStock: 6000}
	triplesec := models.InventoryItem{Name: "Triple Sec", Category: string(models.CategoryLiquor), Department: string(models.DepartmentBar), StorageUnit: "ml", CostPerUnit: 0.012, CurrentStock: 4000}
	for _, item := range []*models.InventoryItem{&beef, &buns, &onions, &tomatoes, &tequila, &triplesec} {
		if err := db.Create(item).Error; err != nil {
			return err
		}
	}

	// Pico de gallo batch: 1 kg yield from tomatoes and onions.
	pico := models.PrepItem{Name: "Pico de Gallo", BatchYield: 1000, OutputUnit: "g", CostPerUnit: 0.004}
	if err := db.Create(&pico).Error; err != nil {
		return err
	}
	picoLines := []models.PrepItemLine{
		{PrepItemID: pico.ID, Position: 1, Quantity: 700, Unit: "g", InventoryItemID: &tomatoes.ID},
		{PrepItemID: pico.ID, Position: 2, Quantity: 300, Unit: "g", InventoryItemID: &onions.ID},
	}
	for i := range picoLines {
		if err := db.Create(&picoLines[i]).Error; err != nil {
			return err
		}
	}

	// Patties are pressed each morning and tracked by daily count.
	patties := models.Ingredient{Name: "Pressed Patties", InventoryItemID: &beef.ID, StandardQuantity: 1, StandardUnit: "ea", IsDailyCountItem: true, CurrentPrepStock: 40}
	if err := db.Create(&patties).Error; err != nil {
		return err
	}

	burger := models.MenuItem{Name: "House Burger", Category: "entree", SellPrice: 14}
	if err := db.Create(&burger).Error; err != nil {
		return err
	}
	burgerLines := []models.RecipeLine{
		{MenuItemID: burger.ID, Position: 1, Quantity: 0.33, Unit: "lb", IngredientID: &patties.ID, InventoryItemID: &beef.ID},
		{MenuItemID: burger.ID, Position: 2, Quantity: 1, Unit: "ea", InventoryItemID: &buns.ID},
		{MenuItemID: burger.ID, Position: 3, Quantity: 30, Unit: "g", InventoryItemID: &onions.ID},
		{MenuItemID: burger.ID, Position: 4, Quantity: 50, Unit: "g", PrepItemID: &pico.ID},
	}
	for i := range burgerLines {
		if err := db.Create(&burgerLines[i]).Error; err != nil {
			return err
		}
	}
	noOnions := models.Modifier{MenuItemID: burger.ID, Name: "No Onions", Instruction: "no", UsageQuantity: f(30), UsageUnit: "g", InventoryItemID: &onions.ID}
	extraPico := models.Modifier{MenuItemID: burger.ID, Name: "Extra Pico", Instruction: "extra", Quantity: 1, UsageQuantity: f(50), UsageUnit: "g", InventoryItemID: &tomatoes.ID}
	for _, m := range []*models.Modifier{&noOnions, &extraPico} {
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}

	margarita := models.MenuItem{Name: "House Margarita", Category: "cocktail", SellPrice: 11}
	if err := db.Create(&margarita).Error; err != nil {
		return err
	}
	pours := []models.RecipeIngredient{
		{MenuItemID: margarita.ID, InventoryItemID: tequila.ID, PourCount: 1, PourSizeOz: f(2.0)},
		{MenuItemID: margarita.ID, InventoryItemID: triplesec.ID, PourCount: 1},
	}
	for i := range pours {
		if err := db.Create(&pours[i]).Error; err != nil {
			return err
		}
	}

	if err := db.Create(&models.LocationSettings{LocationID: 1}).Error; err != nil {
		return err
	}

	paidAt := time.Now()
	order := models.Order{LocationID: 1, Status: string(models.OrderStatusPaid), PaidAt: &paidAt}
	if err := db.Create(&order).Error; err != nil {
		return err
	}
	items := []models.OrderItem{
		{OrderID: order.ID, MenuItemID: burger.ID, Quantity: 2, Status: "sent", WasMade: true},
		{OrderID: order.ID, MenuItemID: margarita.ID, Quantity: 1, Status: "sent", WasMade: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded demo data: 6 inventory items, 2 menu items, 1 paid order")
	return nil
}
