package scoring

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// Premium quotes an insurance premium for covering one model's output in
// one jurisdiction:
//
//	premium = limit × baseRate/100 × classMultiplier(mrs) × jurisdictionMultiplier
//
// The class multiplier, deductible and capacity come from TermsForClass,
// the same table that prices ModelRiskScore records, so the quote can
// never diverge from the scoring engine.
//
// Unlike the permissive registry lookups elsewhere, an unknown
// jurisdiction here is a validation error: quoting a premium without an
// enforcement multiplier would silently understate the price.
func Premium(src interfaces.JurisdictionSource, limit, baseRatePct float64, jurisdiction types.JurisdictionCode, mrs int) (*model.PremiumCalculation, error) {
	if limit <= 0 {
		return nil, goerr.Wrap(ErrInvalidLimit, "invalid policy limit", goerr.V("limit", limit))
	}
	if baseRatePct <= 0 {
		return nil, goerr.Wrap(ErrInvalidBaseRate, "invalid base rate", goerr.V("baseRatePct", baseRatePct))
	}
	if mrs < 0 || mrs > 100 {
		return nil, goerr.Wrap(ErrInvalidScore, "invalid MRS", goerr.V("mrs", mrs))
	}

	profile, ok := src.Jurisdiction(jurisdiction)
	if !ok {
		return nil, goerr.Wrap(ErrUnknownJurisdiction, "cannot quote for unknown jurisdiction", goerr.V("jurisdiction", jurisdiction))
	}

	class := ClassForScore(mrs)
	terms := TermsForClass(class)

	calc := &model.PremiumCalculation{
		Premium:     limit * (baseRatePct / 100) * terms.PremiumMultiplier * profile.Multiplier,
		MaxCapacity: limit * terms.MaxCapacityPct / 100,
		RiskClass:   class,
	}
	if terms.DeductiblePct != nil {
		d := limit * *terms.DeductiblePct / 100
		calc.Deductible = &d
	}

	return calc, nil
}
