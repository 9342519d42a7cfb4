// Package prep expands composed prep items (sauces, mixes) into the raw
// inventory quantities a requested amount consumes.
package prep

import (
	"log"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/monitoring"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/units"
)

// MaxDepth bounds the explosion recursion. A bill of materials this deep is
// almost certainly an authoring mistake; past it the result is truncated.
const MaxDepth = 10

// Requirement is one raw inventory consumption produced by an explosion.
// Quantity is expressed in Unit, the declared unit of the recipe line that
// produced it.
type Requirement struct {
	Item     *models.InventoryItem
	Quantity float64
	Unit     string
}

// Explode recursively expands quantityNeeded (in usageUnit) of a prep item
// into raw inventory requirements, depth-first in declaration order.
// Truncation by the depth bound or the cycle guard yields a partial result
// and a logged warning, never an error.
func Explode(item *models.PrepItem, quantityNeeded float64, usageUnit string) []Requirement {
	return explode(item, quantityNeeded, usageUnit, 0, map[uint]bool{})
}

func explode(item *models.PrepItem, quantityNeeded float64, usageUnit string, depth int, visited map[uint]bool) []Requirement {
	if item == nil {
		return nil
	}
	if depth >= MaxDepth {
		log.Printf("prep: explosion of %q cut off at depth %d", item.Name, depth)
		monitoring.ExplosionCutoffs.WithLabelValues("depth").Inc()
		return nil
	}
	if visited[item.ID] {
		log.Printf("prep: composition cycle at %q, truncating", item.Name)
		monitoring.ExplosionCutoffs.WithLabelValues("cycle").Inc()
		return nil
	}
	visited[item.ID] = true
	defer delete(visited, item.ID)

	batchYield := item.BatchYield
	if batchYield <= 0 {
		batchYield = 1
	}

	needed := quantityNeeded
	if !units.SameUnit(usageUnit, item.OutputUnit) {
		converted, ok := units.Convert(quantityNeeded, usageUnit, item.OutputUnit)
		if ok {
			needed = converted
		} else {
			// Tolerated approximation: deduct the raw figure and surface
			// the misconfigured unit pair through metrics.
			log.Printf("prep: cannot convert %s to %s for %q, using raw quantity", usageUnit, item.OutputUnit, item.Name)
			monitoring.ConversionFallbacks.WithLabelValues(units.Normalize(usageUnit), units.Normalize(item.OutputUnit)).Inc()
		}
	}

	scale := needed / batchYield

	var reqs []Requirement
	for i := range item.Lines {
		line := &item.Lines[i]
		lineQty := line.Quantity * scale
		switch {
		case line.IsRaw():
			reqs = append(reqs, Requirement{
				Item:     line.InventoryItem,
				Quantity: lineQty,
				Unit:     line.Unit,
			})
		case line.SubPrepItem != nil:
			reqs = append(reqs, explode(line.SubPrepItem, lineQty, line.Unit, depth+1, visited)...)
		}
	}
	return reqs
}
