package database

import (
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
)

var db *gorm.DB

// InitDB initializes the database connection
func InitDB(dbPath string) error {
	var err error
	db, err = gorm.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	db.DB().SetMaxIdleConns(10)
	db.DB().SetMaxOpenConns(100)
	db.DB().SetConnMaxLifetime(time.Hour)

	return nil
}

// Migrate creates and updates every table the engine reads or writes
func Migrate() error {
	return db.AutoMigrate(
		&models.InventoryItem{},
		&models.Ingredient{},
		&models.PrepItem{},
		&models.PrepItemLine{},
		&models.MenuItem{},
		&models.RecipeLine{},
		&models.RecipeIngredient{},
		&models.Modifier{},
		&models.VariantOptionLink{},
		&models.Order{},
		&models.OrderItem{},
		&models.LocationSettings{},
		&models.InventoryTransaction{},
		&models.WasteLogEntry{},
	).Error
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
