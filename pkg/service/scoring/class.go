package scoring

import (
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// ClassForScore buckets a final MRS into a risk class. The boundaries are
// business rules confirmed with the underwriting owner; tests pin them.
func ClassForScore(mrs int) types.RiskClass {
	switch {
	case mrs >= 90:
		return types.RiskClassLow
	case mrs >= 80:
		return types.RiskClassModerate
	case mrs >= 70:
		return types.RiskClassGuarded
	case mrs >= 55:
		return types.RiskClassElevated
	case mrs >= 40:
		return types.RiskClassSevere
	default:
		return types.RiskClassCritical
	}
}

// ClassForMultiplier buckets an aggregated jurisdiction multiplier into a
// risk class. Monotonic: a higher multiplier never yields a better class.
func ClassForMultiplier(multiplier float64) types.RiskClass {
	switch {
	case multiplier >= 3.0:
		return types.RiskClassCritical
	case multiplier >= 2.25:
		return types.RiskClassSevere
	case multiplier >= 1.75:
		return types.RiskClassElevated
	case multiplier >= 1.5:
		return types.RiskClassGuarded
	case multiplier >= 1.2:
		return types.RiskClassModerate
	default:
		return types.RiskClassLow
	}
}

// ClassTerms are the insurance terms attached to one risk class.
// DeductiblePct and MaxCapacityPct are percentages of the policy limit;
// DeductiblePct is nil when the class carries no deductible.
type ClassTerms struct {
	PremiumMultiplier float64
	DeductiblePct     *float64
	MaxCapacityPct    float64
}

func pct(v float64) *float64 { return &v }

// TermsForClass maps a risk class to its terms. Worse class means a
// higher multiplier, a higher deductible and lower capacity; the premium
// calculator must use this same table (single source).
func TermsForClass(class types.RiskClass) ClassTerms {
	switch class {
	case types.RiskClassLow:
		return ClassTerms{PremiumMultiplier: 1.0, DeductiblePct: nil, MaxCapacityPct: 100}
	case types.RiskClassModerate:
		return ClassTerms{PremiumMultiplier: 1.15, DeductiblePct: pct(2), MaxCapacityPct: 90}
	case types.RiskClassGuarded:
		return ClassTerms{PremiumMultiplier: 1.35, DeductiblePct: pct(5), MaxCapacityPct: 75}
	case types.RiskClassElevated:
		return ClassTerms{PremiumMultiplier: 1.75, DeductiblePct: pct(7.5), MaxCapacityPct: 60}
	case types.RiskClassSevere:
		return ClassTerms{PremiumMultiplier: 2.5, DeductiblePct: pct(10), MaxCapacityPct: 40}
	default:
		return ClassTerms{PremiumMultiplier: 4.0, DeductiblePct: pct(15), MaxCapacityPct: 20}
	}
}
