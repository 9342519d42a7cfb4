package models

import (
	"github.com/jinzhu/gorm"
)

// LocationSettings represents the location-scoped configuration row the
// engine reads: multiplier overrides for modifier instructions and the prep
// stock feature toggles. Multiplier fields are pointers because an explicit
// override of 0 is valid and must be distinguishable from "not set".
type LocationSettings struct {
	gorm.Model
	LocationID        uint `gorm:"unique_index"`
	MultiplierLite    *float64
	MultiplierExtra   *float64
	MultiplierTriple  *float64
	TrackPrepStock    *bool
	DeductPrepOnSend  *bool
	RestorePrepOnVoid *bool
}

// Multipliers extracts the instruction multiplier overrides
func (s *LocationSettings) Multipliers() MultiplierSettings {
	if s == nil {
		return MultiplierSettings{}
	}
	return MultiplierSettings{
		Lite:   s.MultiplierLite,
		Extra:  s.MultiplierExtra,
		Triple: s.MultiplierTriple,
	}
}

// MultiplierSettings carries the location's instruction multiplier
// overrides through every call chain that resolves modifier instructions.
type MultiplierSettings struct {
	Lite   *float64
	Extra  *float64
	Triple *float64
}

// PrepTrackingEnabled reports whether the prepared-today stock counters
// are maintained at all for this location (default on)
func (s *LocationSettings) PrepTrackingEnabled() bool {
	if s == nil || s.TrackPrepStock == nil {
		return true
	}
	return *s.TrackPrepStock
}

// DeductPrepOnSendEnabled reports whether sending an item to the kitchen
// deducts prep stock (default on)
func (s *LocationSettings) DeductPrepOnSendEnabled() bool {
	if s == nil || s.DeductPrepOnSend == nil {
		return true
	}
	return *s.DeductPrepOnSend
}

// RestorePrepOnVoidEnabled reports whether voiding an unmade item restores
// prep stock (default on)
func (s *LocationSettings) RestorePrepOnVoidEnabled() bool {
	if s == nil || s.RestorePrepOnVoid == nil {
		return true
	}
	return *s.RestorePrepOnVoid
}
