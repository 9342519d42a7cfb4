package usage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
)

type stubOrderSource struct {
	orders []models.Order
	err    error
}

func (s *stubOrderSource) CompletedOrders(locationID uint, start, end time.Time) ([]models.Order, error) {
	return s.orders, s.err
}

func reportRequest() Request {
	return Request{
		LocationID: 1,
		StartDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalculateTheoreticalUsageAggregates(t *testing.T) {
	item, patty, _ := burger()
	patty.Department = "kitchen"
	patty.Category = "food"
	order := models.Order{LocationID: 1, Items: []models.OrderItem{*item, *item}}

	src := &stubOrderSource{orders: []models.Order{order, order}}
	result, err := CalculateTheoreticalUsage(src, reportRequest())
	assert.NoError(t, err)
	assert.Equal(t, 2, result.OrderCount)
	if assert.Len(t, result.Usage, 2) {
		// Two orders of two burgers each: 4 patties, 160 g onions.
		var pattyLine models.UsageLine
		for _, line := range result.Usage {
			if line.Name == "Beef Patty" {
				pattyLine = line
			}
		}
		assert.InDelta(t, 4, pattyLine.TheoreticalUsage, 1e-9)
		assert.InDelta(t, 5.0, pattyLine.TotalCost, 1e-9)
	}
	assert.InDelta(t, 5.0+160*0.002, result.TotalCost, 1e-9)
}

func TestCalculateTheoreticalUsageDepartmentFilter(t *testing.T) {
	item, patty, onions := burger()
	patty.Department = "kitchen"
	onions.Department = "bar"
	order := models.Order{LocationID: 1, Items: []models.OrderItem{*item}}

	src := &stubOrderSource{orders: []models.Order{order}}
	req := reportRequest()
	req.Department = "KITCHEN" // filter is case-insensitive

	result, err := CalculateTheoreticalUsage(src, req)
	assert.NoError(t, err)
	if assert.Len(t, result.Usage, 1) {
		assert.Equal(t, "Beef Patty", result.Usage[0].Name)
	}
}

func TestCalculateTheoreticalUsageSortsByCategoryThenName(t *testing.T) {
	whiskey := invItem(11, "Bourbon", "ml", 0.04)
	whiskey.Category = "liquor"
	flour := invItem(12, "Flour", "g", 0.001)
	flour.Category = "food"
	butter := invItem(13, "Butter", "g", 0.01)
	butter.Category = "food"

	menu := &models.MenuItem{
		Name: "Odd Plate",
		RecipeLines: []models.RecipeLine{
			{Quantity: 10, Unit: "ml", InventoryItemID: u(11), InventoryItem: whiskey},
			{Quantity: 100, Unit: "g", InventoryItemID: u(12), InventoryItem: flour},
			{Quantity: 20, Unit: "g", InventoryItemID: u(13), InventoryItem: butter},
		},
	}
	order := models.Order{LocationID: 1, Items: []models.OrderItem{{Quantity: 1, MenuItem: menu}}}

	result, err := CalculateTheoreticalUsage(&stubOrderSource{orders: []models.Order{order}}, reportRequest())
	assert.NoError(t, err)
	if assert.Len(t, result.Usage, 3) {
		assert.Equal(t, "Butter", result.Usage[0].Name)
		assert.Equal(t, "Flour", result.Usage[1].Name)
		assert.Equal(t, "Bourbon", result.Usage[2].Name)
	}
}

func TestCalculateTheoreticalUsageSourceError(t *testing.T) {
	src := &stubOrderSource{err: errors.New("store unavailable")}
	result, err := CalculateTheoreticalUsage(src, reportRequest())
	assert.Error(t, err)
	assert.Zero(t, result.OrderCount)
	assert.Empty(t, result.Usage)
}
