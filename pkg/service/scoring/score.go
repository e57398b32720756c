package scoring

import (
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// NYJurisdiction is the jurisdiction whose impacts feed the score
// adjustment term. New York's synthetic performer law is the only one
// that corrects the provenance-derived base score directly; other
// jurisdictions affect premium multipliers instead.
const NYJurisdiction = types.JurisdictionCode("NY")

// ComposeScore computes a final MRS: the provenance-derived base score
// plus every triggered risk factor impact (negative impacts are unmet
// control penalties) plus the jurisdiction adjustment, clamped to [0,100].
func ComposeScore(baseScore int, factors []model.RiskFactor, nyAdjustment int) int {
	sum := baseScore + nyAdjustment
	for _, f := range factors {
		sum += f.ScoreImpact
	}
	return model.ClampScore(sum)
}

// NYAdjustment derives the jurisdiction-specific correction term from a
// model's jurisdiction impacts
func NYAdjustment(impacts []model.JurisdictionImpact) int {
	var adj int
	for _, ji := range impacts {
		if ji.Jurisdiction == NYJurisdiction {
			adj += ji.ScorePenalty
		}
	}
	return adj
}

// Finalize recomputes every derived field of a model risk score from its
// base score, factors and jurisdiction impacts. Call it after any factor
// or impact mutation so the stored record never violates the score
// composition invariant.
func Finalize(m *model.ModelRiskScore) {
	m.NYAdjustment = NYAdjustment(m.JurisdictionImpacts)
	m.FinalMRS = ComposeScore(m.BaseScore, m.RiskFactors, m.NYAdjustment)
	m.RiskClass = ClassForScore(m.FinalMRS)

	terms := TermsForClass(m.RiskClass)
	m.PremiumMultiplier = terms.PremiumMultiplier
	if terms.DeductiblePct != nil {
		v := *terms.DeductiblePct
		m.DeductiblePct = &v
	} else {
		m.DeductiblePct = nil
	}
	m.MaxCapacityPct = terms.MaxCapacityPct
}
