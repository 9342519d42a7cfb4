// Package units converts quantities between kitchen measurement units.
// Units belong to one of three categories (weight, volume, count); each
// category has a base unit and conversion only happens within a category.
package units

import (
	"strings"
)

// Category represents the measurement category of a unit
type Category string

const (
	Weight Category = "weight"
	Volume Category = "volume"
	Count  Category = "count"
)

// definition maps a unit to its category and its factor to the category
// base unit (grams, milliliters, each).
type definition struct {
	Category Category
	ToBase   float64
}

var definitions = map[string]definition{
	// Weight (base: gram)
	"g":      {Weight, 1},
	"gram":   {Weight, 1},
	"grams":  {Weight, 1},
	"kg":     {Weight, 1000},
	"oz":     {Weight, 28.3495},
	"ounce":  {Weight, 28.3495},
	"ounces": {Weight, 28.3495},
	"lb":     {Weight, 453.592},
	"lbs":    {Weight, 453.592},
	"pound":  {Weight, 453.592},
	"pounds": {Weight, 453.592},

	// Volume (base: milliliter)
	"ml":     {Volume, 1},
	"l":      {Volume, 1000},
	"liter":  {Volume, 1000},
	"liters": {Volume, 1000},
	"fl_oz":  {Volume, 29.5735},
	"floz":   {Volume, 29.5735},
	"tsp":    {Volume, 4.92892},
	"tbsp":   {Volume, 14.7868},
	"cup":    {Volume, 236.588},
	"cups":   {Volume, 236.588},
	"pt":     {Volume, 473.176},
	"qt":     {Volume, 946.353},
	"gal":    {Volume, 3785.41},
	"gallon": {Volume, 3785.41},

	// Count (base: each)
	"ea":      {Count, 1},
	"each":    {Count, 1},
	"pc":      {Count, 1},
	"piece":   {Count, 1},
	"pieces":  {Count, 1},
	"unit":    {Count, 1},
	"units":   {Count, 1},
	"slice":   {Count, 1},
	"slices":  {Count, 1},
	"portion": {Count, 1},
	"dozen":   {Count, 12},
	"case":    {Count, 24},
}

// Normalize lowercases and trims a unit string
func Normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// SameUnit reports whether two unit strings normalize to the same unit
func SameUnit(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// CategoryOf returns the measurement category of a unit. The second value
// is false for unknown units.
func CategoryOf(unit string) (Category, bool) {
	def, ok := definitions[Normalize(unit)]
	if !ok {
		return "", false
	}
	return def.Category, true
}

// Compatible reports whether two units belong to the same category, i.e.
// whether Convert can succeed for them.
func Compatible(from, to string) bool {
	fromCat, ok := CategoryOf(from)
	if !ok {
		return false
	}
	toCat, ok := CategoryOf(to)
	if !ok {
		return false
	}
	return fromCat == toCat
}

// Convert converts qty between two units via the category base unit.
// The second value is false when either unit is unknown or the categories
// differ; callers own the fallback policy in that case.
func Convert(qty float64, from, to string) (float64, bool) {
	fromDef, ok := definitions[Normalize(from)]
	if !ok {
		return 0, false
	}
	toDef, ok := definitions[Normalize(to)]
	if !ok {
		return 0, false
	}
	if fromDef.Category != toDef.Category {
		return 0, false
	}
	return qty * fromDef.ToBase / toDef.ToBase, true
}
