package deduction

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	db.LogMode(false)
	return db
}

// An unmigrated database makes every query fail with "no such table".
// Those failures must come back as errors, not as empty zero-value rows.
func TestLoadOrderSurfacesStoreErrors(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	store := NewGormStore(db)

	order, err := store.LoadOrder(1)
	assert.Nil(t, order)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such table")
}

func TestLoadOrderItemSurfacesStoreErrors(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	item, _, err := NewGormStore(db).LoadOrderItem(1)
	assert.Nil(t, item)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such table")
}

func TestDeductInventoryForOrderFailsOnStoreError(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := NewService(NewGormStore(db), DefaultConfig())

	result := svc.DeductInventoryForOrder(1)
	assert.False(t, result.Success)
	assert.Zero(t, result.ItemsDeducted)
	assert.NotEmpty(t, result.Errors)
}

func TestLoadOrderNotFound(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	db.AutoMigrate(&models.Order{}, &models.OrderItem{})

	order, err := NewGormStore(db).LoadOrder(42)
	assert.Nil(t, order)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
