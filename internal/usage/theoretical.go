package usage

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
)

// OrderSource loads the completed, paid orders of a location over a closed
// date range, with the full menu/recipe/modifier graph attached.
type OrderSource interface {
	CompletedOrders(locationID uint, start, end time.Time) ([]models.Order, error)
}

// Request scopes a theoretical usage report
type Request struct {
	LocationID uint
	StartDate  time.Time
	EndDate    time.Time
	Department string // optional, case-insensitive filter
	Settings   models.MultiplierSettings
}

// CalculateTheoreticalUsage walks the completed orders in the range and
// reports the inventory consumption that should have occurred given what
// was sold, as a variance baseline against physical counts.
func CalculateTheoreticalUsage(src OrderSource, req Request) (models.TheoreticalUsageResult, error) {
	result := models.TheoreticalUsageResult{
		LocationID: req.LocationID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Department: req.Department,
	}

	orders, err := src.CompletedOrders(req.LocationID, req.StartDate, req.EndDate)
	if err != nil {
		return result, fmt.Errorf("loading completed orders: %w", err)
	}
	result.OrderCount = len(orders)

	acc := map[uint]*models.UsageLine{}
	for oi := range orders {
		order := &orders[oi]
		for ii := range order.Items {
			for _, u := range ResolveItem(&order.Items[ii], req.Settings) {
				if u.Item == nil {
					continue
				}
				if req.Department != "" && !strings.EqualFold(req.Department, u.Item.Department) {
					continue
				}
				line, ok := acc[u.Item.ID]
				if !ok {
					line = &models.UsageLine{
						InventoryItemID: u.Item.ID,
						Name:            u.Item.Name,
						Category:        u.Item.Category,
						Department:      u.Item.Department,
						Unit:            u.Item.StorageUnit,
					}
					acc[u.Item.ID] = line
				}
				line.TheoreticalUsage += u.Quantity
				line.TotalCost += u.Cost
			}
		}
	}

	result.Usage = make([]models.UsageLine, 0, len(acc))
	for _, line := range acc {
		result.Usage = append(result.Usage, *line)
		result.TotalCost += line.TotalCost
	}
	sort.Slice(result.Usage, func(i, j int) bool {
		if result.Usage[i].Category != result.Usage[j].Category {
			return result.Usage[i].Category < result.Usage[j].Category
		}
		return result.Usage[i].Name < result.Usage[j].Name
	})
	return result, nil
}
