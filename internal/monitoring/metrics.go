// Package monitoring exposes prometheus metrics for the tolerated
// approximations and failures of the deduction engine, so operators can
// spot misconfigured units or failing stores without digging through logs.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ConversionFallbacks counts unit conversions that fell back to the
	// unconverted quantity. A steady rate here means a recipe or modifier
	// carries a unit incompatible with its item's storage unit.
	ConversionFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unit_conversion_fallback_total",
			Help: "Unit conversions that fell back to the raw quantity",
		},
		[]string{"from_unit", "to_unit"},
	)

	// ExplosionCutoffs counts prep item explosions stopped by the depth
	// bound or a composition cycle.
	ExplosionCutoffs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prep_explosion_cutoff_total",
			Help: "Prep item explosions truncated by depth or cycle guard",
		},
		[]string{"cause"},
	)

	// DeductionFailures counts stock mutation calls that returned
	// success=false, by operation.
	DeductionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_deduction_failure_total",
			Help: "Deduction/restoration calls that failed",
		},
		[]string{"operation"},
	)

	// DeductionsApplied counts committed stock mutations, by operation.
	DeductionsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_deduction_applied_total",
			Help: "Deduction/restoration calls committed",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(
		ConversionFallbacks,
		ExplosionCutoffs,
		DeductionFailures,
		DeductionsApplied,
	)
}
