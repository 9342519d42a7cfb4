package models

import (
	"github.com/jinzhu/gorm"
)

// MenuItem represents a sellable dish or drink with its recipe attached
type MenuItem struct {
	gorm.Model
	Name              string
	Category          string
	SellPrice         float64
	RecipeLines       []RecipeLine       `gorm:"foreignkey:MenuItemID"`
	RecipeIngredients []RecipeIngredient `gorm:"foreignkey:MenuItemID"`
	Modifiers         []Modifier         `gorm:"foreignkey:MenuItemID"`
}

// RecipeLine represents one ingredient line of a menu item's food recipe.
// A line consumes either a raw inventory item or a composed prep item;
// IngredientID ties the line back to the recipe-facing ingredient so that
// "no X" modifiers can cancel the dish's own X.
type RecipeLine struct {
	gorm.Model
	MenuItemID      uint
	Position        int
	Quantity        float64
	Unit            string
	IngredientID    *uint
	Ingredient      *Ingredient
	InventoryItemID *uint
	InventoryItem   *InventoryItem
	PrepItemID      *uint
	PrepItem        *PrepItem
}

// RecipeIngredient represents a liquor pour line: it links a menu item to a
// bottle product with a pour count and pour size in fluid ounces.
type RecipeIngredient struct {
	gorm.Model
	MenuItemID      uint
	InventoryItemID uint
	InventoryItem   *InventoryItem
	PourCount       float64
	PourSizeOz      *float64 // nil falls back to the bottle default, then the house pour
}

// Modifier represents a customer-selectable adjustment on a menu item.
// At most one linkage path is populated: a direct inventory link with its
// own usage quantity/unit, or an indirect link through an Ingredient whose
// standard quantity/unit apply.
type Modifier struct {
	gorm.Model
	MenuItemID  uint
	Name        string
	Instruction string
	Quantity    float64

	// Direct linkage (path A)
	UsageQuantity   *float64
	UsageUnit       string
	InventoryItemID *uint
	InventoryItem   *InventoryItem

	// Indirect linkage (path B)
	IngredientID *uint
	Ingredient   *Ingredient
}

// ModifierSourceKind discriminates the resolved linkage of a modifier
type ModifierSourceKind int

const (
	SourceNone ModifierSourceKind = iota
	SourceDirect
	SourceIndirect
)

// ModifierSource is the resolved ingredient linkage of a modifier. Direct
// linkage always wins when both paths are populated, so resolving once and
// switching on Kind makes double-counting impossible.
type ModifierSource struct {
	Kind          ModifierSourceKind
	InventoryItem *InventoryItem
	Quantity      float64
	Unit          string
}

// ResolveSource resolves the modifier's linkage into a tagged source,
// applying the direct-over-indirect precedence rule.
func (m *Modifier) ResolveSource() ModifierSource {
	if m.InventoryItem != nil && m.UsageQuantity != nil {
		return ModifierSource{
			Kind:          SourceDirect,
			InventoryItem: m.InventoryItem,
			Quantity:      *m.UsageQuantity,
			Unit:          m.UsageUnit,
		}
	}
	if m.Ingredient != nil && m.Ingredient.InventoryItem != nil {
		return ModifierSource{
			Kind:          SourceIndirect,
			InventoryItem: m.Ingredient.InventoryItem,
			Quantity:      m.Ingredient.StandardQuantity,
			Unit:          m.Ingredient.StandardUnit,
		}
	}
	return ModifierSource{Kind: SourceNone}
}

// TargetInventoryItemID returns the inventory item a modifier points at
// through whichever linkage path is present, for removal-set building.
func (m *Modifier) TargetInventoryItemID() (uint, bool) {
	src := m.ResolveSource()
	if src.Kind == SourceNone || src.InventoryItem == nil {
		return 0, false
	}
	return src.InventoryItem.ID, true
}

// VariantOptionLink represents an inventory link carried by a menu item
// variant option (a size or substitution), costed on top of the base recipe.
type VariantOptionLink struct {
	gorm.Model
	MenuItemID      uint
	Name            string
	Quantity        float64
	Unit            string
	InventoryItemID uint
	InventoryItem   *InventoryItem
}
