package prep

import (
	"math"
	"testing"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
)

func rawItem(id uint, name string) *models.InventoryItem {
	item := &models.InventoryItem{Name: name, StorageUnit: "g"}
	item.ID = id
	return item
}

func rawLine(pos int, qty float64, unit string, item *models.InventoryItem) models.PrepItemLine {
	id := item.ID
	return models.PrepItemLine{
		Position:        pos,
		Quantity:        qty,
		Unit:            unit,
		InventoryItemID: &id,
		InventoryItem:   item,
	}
}

func nestedLine(pos int, qty float64, unit string, sub *models.PrepItem) models.PrepItemLine {
	id := sub.ID
	return models.PrepItemLine{
		Position:      pos,
		Quantity:      qty,
		Unit:          unit,
		SubPrepItemID: &id,
		SubPrepItem:   sub,
	}
}

func TestExplodeScalesByBatchYield(t *testing.T) {
	sauce := &models.PrepItem{
		Name:       "Marinara",
		BatchYield: 1000,
		OutputUnit: "g",
		Lines: []models.PrepItemLine{
			rawLine(1, 500, "g", rawItem(1, "Tomatoes")),
			rawLine(2, 300, "g", rawItem(2, "Onions")),
			rawLine(3, 200, "g", rawItem(3, "Olive Oil")),
		},
	}
	sauce.ID = 10

	reqs := Explode(sauce, 100, "g")
	if len(reqs) != 3 {
		t.Fatalf("Explode returned %d requirements, want 3", len(reqs))
	}

	want := []float64{50, 30, 20}
	for i, req := range reqs {
		if math.Abs(req.Quantity-want[i]) > 1e-9 {
			t.Errorf("requirement %d (%s) = %v, want %v", i, req.Item.Name, req.Quantity, want[i])
		}
	}
}

func TestExplodeNested(t *testing.T) {
	spiceMix := &models.PrepItem{
		Name:       "Spice Mix",
		BatchYield: 100,
		OutputUnit: "g",
		Lines: []models.PrepItemLine{
			rawLine(1, 60, "g", rawItem(1, "Paprika")),
			rawLine(2, 40, "g", rawItem(2, "Cumin")),
		},
	}
	spiceMix.ID = 20

	sauce := &models.PrepItem{
		Name:       "House Sauce",
		BatchYield: 1000,
		OutputUnit: "g",
		Lines: []models.PrepItemLine{
			rawLine(1, 900, "g", rawItem(3, "Tomatoes")),
			nestedLine(2, 100, "g", spiceMix),
		},
	}
	sauce.ID = 21

	// 500 g of sauce: scale 0.5, so 450 g tomatoes and 50 g of spice mix,
	// which compounds to 30 g paprika and 20 g cumin.
	reqs := Explode(sauce, 500, "g")
	if len(reqs) != 3 {
		t.Fatalf("Explode returned %d requirements, want 3", len(reqs))
	}
	checks := []struct {
		name string
		qty  float64
	}{
		{"Tomatoes", 450},
		{"Paprika", 30},
		{"Cumin", 20},
	}
	for i, c := range checks {
		if reqs[i].Item.Name != c.name {
			t.Errorf("requirement %d = %s, want %s", i, reqs[i].Item.Name, c.name)
		}
		if math.Abs(reqs[i].Quantity-c.qty) > 1e-9 {
			t.Errorf("requirement %d quantity = %v, want %v", i, reqs[i].Quantity, c.qty)
		}
	}
}

func TestExplodeUnitConversion(t *testing.T) {
	sauce := &models.PrepItem{
		Name:       "Brine",
		BatchYield: 1000, // ml per batch
		OutputUnit: "ml",
		Lines: []models.PrepItemLine{
			rawLine(1, 100, "g", rawItem(1, "Salt")),
		},
	}
	sauce.ID = 30

	// 1 liter requested: converts to 1000 ml, full batch.
	reqs := Explode(sauce, 1, "l")
	if len(reqs) != 1 {
		t.Fatalf("Explode returned %d requirements, want 1", len(reqs))
	}
	if math.Abs(reqs[0].Quantity-100) > 1e-9 {
		t.Errorf("salt quantity = %v, want 100", reqs[0].Quantity)
	}
}

func TestExplodeConversionFallback(t *testing.T) {
	sauce := &models.PrepItem{
		Name:       "Garnish Kit",
		BatchYield: 10,
		OutputUnit: "ea",
		Lines: []models.PrepItemLine{
			rawLine(1, 5, "ea", rawItem(1, "Lime")),
		},
	}
	sauce.ID = 40

	// g cannot convert to ea; the raw quantity is used as-is.
	reqs := Explode(sauce, 20, "g")
	if len(reqs) != 1 {
		t.Fatalf("Explode returned %d requirements, want 1", len(reqs))
	}
	if math.Abs(reqs[0].Quantity-10) > 1e-9 {
		t.Errorf("fallback quantity = %v, want 10", reqs[0].Quantity)
	}
}

func TestExplodeDefaultBatchYield(t *testing.T) {
	p := &models.PrepItem{
		Name:       "Zero Yield",
		BatchYield: 0,
		OutputUnit: "g",
		Lines: []models.PrepItemLine{
			rawLine(1, 2, "g", rawItem(1, "Salt")),
		},
	}
	p.ID = 50

	reqs := Explode(p, 3, "g")
	if len(reqs) != 1 || math.Abs(reqs[0].Quantity-6) > 1e-9 {
		t.Fatalf("Explode with zero batch yield = %+v, want one line of 6", reqs)
	}
}

func TestExplodeDepthCutoff(t *testing.T) {
	// Build a chain 15 levels deep; only the first 10 should resolve.
	leaf := rawItem(1, "Flour")
	inner := &models.PrepItem{
		Name:       "level-14",
		BatchYield: 1,
		OutputUnit: "g",
		Lines:      []models.PrepItemLine{rawLine(1, 1, "g", leaf)},
	}
	inner.ID = 114
	for i := 13; i >= 0; i-- {
		wrapper := &models.PrepItem{
			Name:       "level",
			BatchYield: 1,
			OutputUnit: "g",
			Lines:      []models.PrepItemLine{nestedLine(1, 1, "g", inner)},
		}
		wrapper.ID = uint(100 + i)
		inner = wrapper
	}

	reqs := Explode(inner, 1, "g")
	if len(reqs) != 0 {
		t.Errorf("Explode past depth bound returned %d requirements, want 0", len(reqs))
	}
}

func TestExplodeCycleGuard(t *testing.T) {
	a := &models.PrepItem{Name: "A", BatchYield: 1, OutputUnit: "g"}
	a.ID = 1
	b := &models.PrepItem{Name: "B", BatchYield: 1, OutputUnit: "g"}
	b.ID = 2
	a.Lines = []models.PrepItemLine{nestedLine(1, 1, "g", b), rawLine(2, 5, "g", rawItem(9, "Sugar"))}
	b.Lines = []models.PrepItemLine{nestedLine(1, 1, "g", a)}

	// Must terminate; the cyclic branch is dropped, the raw line survives.
	reqs := Explode(a, 1, "g")
	if len(reqs) != 1 || reqs[0].Item.Name != "Sugar" {
		t.Fatalf("Explode with cycle = %+v, want only the Sugar line", reqs)
	}
}
