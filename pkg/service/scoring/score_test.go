package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/service/scoring"
)

func TestNYAdjustment(t *testing.T) {
	impacts := []model.JurisdictionImpact{
		{Jurisdiction: "NY", ScorePenalty: -5},
		{Jurisdiction: "CA", ScorePenalty: -9},
		{Jurisdiction: "NY", ScorePenalty: -2},
	}
	// Only New York impacts feed the adjustment term
	gt.Number(t, scoring.NYAdjustment(impacts)).Equal(-7)
	gt.Number(t, scoring.NYAdjustment(nil)).Equal(0)
}

func TestComposeScore(t *testing.T) {
	factors := []model.RiskFactor{
		{ScoreImpact: -10},
		{ScoreImpact: -4},
		{ScoreImpact: 0},
	}
	gt.Number(t, scoring.ComposeScore(90, factors, -6)).Equal(70)

	t.Run("clamped at zero", func(t *testing.T) {
		gt.Number(t, scoring.ComposeScore(10, factors, -50)).Equal(0)
	})

	t.Run("clamped at one hundred", func(t *testing.T) {
		gt.Number(t, scoring.ComposeScore(100, nil, 0)).Equal(100)
	})
}

func TestFinalize(t *testing.T) {
	m := &model.ModelRiskScore{
		ModelID:   "m1",
		BaseScore: 88,
		RiskFactors: []model.RiskFactor{
			{ID: "f1", Name: "f1", Category: types.FactorConsent, Weight: 0.6, ScoreImpact: -8, Status: types.FactorFail, EstimatedImprovement: 8},
		},
		JurisdictionImpacts: []model.JurisdictionImpact{
			{Jurisdiction: "NY", LawType: types.LawNILRights, ComplianceStatus: types.CompliancePartial, ScorePenalty: -4, MultiplierImpact: 1.2},
		},
		// Stale derived fields, Finalize must overwrite them all
		NYAdjustment: 99,
		FinalMRS:     1,
		RiskClass:    types.RiskClassCritical,
	}

	scoring.Finalize(m)

	gt.Number(t, m.NYAdjustment).Equal(-4)
	gt.Number(t, m.FinalMRS).Equal(76)
	gt.Value(t, m.RiskClass).Equal(types.RiskClassGuarded)
	gt.Value(t, m.PremiumMultiplier).Equal(1.35)
	gt.Value(t, m.DeductiblePct).NotNil()
	gt.Value(t, *m.DeductiblePct).Equal(5.0)
	gt.Value(t, m.MaxCapacityPct).Equal(75.0)

	// Finalized record satisfies the composition invariant
	gt.NoError(t, m.Validate())
}

func TestFinalize_DeductibleCopyIsolated(t *testing.T) {
	m := &model.ModelRiskScore{ModelID: "m1", BaseScore: 85}
	scoring.Finalize(m)
	gt.Value(t, m.DeductiblePct).NotNil()

	// Mutating the record's deductible must not corrupt the terms table
	*m.DeductiblePct = 42
	terms := scoring.TermsForClass(types.RiskClassModerate)
	gt.Value(t, *terms.DeductiblePct).Equal(2.0)
}

func TestFinalize_NoDeductibleForLowClass(t *testing.T) {
	m := &model.ModelRiskScore{ModelID: "m1", BaseScore: 95, DeductiblePct: new(float64)}
	scoring.Finalize(m)
	gt.Value(t, m.RiskClass).Equal(types.RiskClassLow)
	gt.Value(t, m.DeductiblePct).Nil()
}
