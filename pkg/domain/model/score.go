package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// RiskFactor is one weighted control check contributing to a model's MRS.
// A negative ScoreImpact represents an unmet control penalty; zero or
// positive impacts are neutral or bonus signals.
type RiskFactor struct {
	ID                   string
	Name                 string
	Category             types.FactorCategory
	Weight               float64
	ScoreImpact          int
	Status               types.FactorStatus
	Detail               string
	RemediationAction    string
	EstimatedImprovement int
}

// Validate checks if the RiskFactor is valid
func (f *RiskFactor) Validate() error {
	if f.ID == "" {
		return goerr.New("risk factor ID is required")
	}
	if f.Name == "" {
		return goerr.New("risk factor name is required", goerr.V("id", f.ID))
	}
	if !f.Category.IsValid() {
		return goerr.New("invalid factor category", goerr.V("id", f.ID), goerr.V("category", f.Category))
	}
	if f.Weight < 0 || f.Weight > 1 {
		return goerr.New("factor weight must be within [0,1]", goerr.V("id", f.ID), goerr.V("weight", f.Weight))
	}
	if !f.Status.IsValid() {
		return goerr.New("invalid factor status", goerr.V("id", f.ID), goerr.V("status", f.Status))
	}
	if f.EstimatedImprovement < 0 {
		return goerr.New("estimated improvement must not be negative", goerr.V("id", f.ID))
	}
	return nil
}

// JurisdictionImpact is one jurisdiction's contribution to a model's
// score and premium multiplier
type JurisdictionImpact struct {
	Jurisdiction     types.JurisdictionCode
	LawType          types.LawCategory
	ComplianceStatus types.ComplianceStatus
	ScorePenalty     int // zero or negative
	MultiplierImpact float64
}

// ScoreChange is one entry of a model's score history
type ScoreChange struct {
	ID          string
	Date        time.Time
	OldScore    int
	NewScore    int
	Reason      string
	TriggeredBy string
}

// NewScoreChangeID generates a new unique score change ID
func NewScoreChangeID() string {
	return uuid.New().String()
}

// ModelRiskScore is the 0-100 composite compliance score of one AI
// model/tool plus its insurance-relevant derivations. The score history
// lives in the repository; ScoreHistory is populated on read.
type ModelRiskScore struct {
	ModelID             string
	Name                string
	Vendor              string
	BaseScore           int
	NYAdjustment        int
	FinalMRS            int
	RiskClass           types.RiskClass
	PremiumMultiplier   float64
	DeductiblePct       *float64
	MaxCapacityPct      float64
	RiskFactors         []RiskFactor
	JurisdictionImpacts []JurisdictionImpact
	ScoreHistory        []ScoreChange
	AffectedContractIDs []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FactorImpactSum returns the sum of all risk factor score impacts
func (m *ModelRiskScore) FactorImpactSum() int {
	var sum int
	for _, f := range m.RiskFactors {
		sum += f.ScoreImpact
	}
	return sum
}

// OutstandingFactors returns the factors whose control is not satisfied,
// in their stored order
func (m *ModelRiskScore) OutstandingFactors() []RiskFactor {
	var out []RiskFactor
	for _, f := range m.RiskFactors {
		if f.Status != types.FactorPass {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks structural validity and the score composition
// invariant: FinalMRS == clamp(BaseScore + Σ factor impacts +
// NYAdjustment, 0, 100)
func (m *ModelRiskScore) Validate() error {
	if m.ModelID == "" {
		return goerr.New("model ID is required")
	}
	if m.BaseScore < 0 || m.BaseScore > 100 {
		return goerr.New("base score must be within [0,100]", goerr.V("modelID", m.ModelID), goerr.V("baseScore", m.BaseScore))
	}
	for i := range m.RiskFactors {
		if err := m.RiskFactors[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid risk factor", goerr.V("modelID", m.ModelID))
		}
	}
	for _, ji := range m.JurisdictionImpacts {
		if err := ji.Jurisdiction.Validate(); err != nil {
			return goerr.Wrap(err, "invalid jurisdiction impact", goerr.V("modelID", m.ModelID))
		}
		if ji.ScorePenalty > 0 {
			return goerr.New("jurisdiction score penalty must be zero or negative",
				goerr.V("modelID", m.ModelID), goerr.V("jurisdiction", ji.Jurisdiction))
		}
	}
	if want := ClampScore(m.BaseScore + m.FactorImpactSum() + m.NYAdjustment); m.FinalMRS != want {
		return goerr.New("final MRS does not match score composition",
			goerr.V("modelID", m.ModelID), goerr.V("finalMRS", m.FinalMRS), goerr.V("want", want))
	}
	if !m.RiskClass.IsValid() {
		return goerr.New("invalid risk class", goerr.V("modelID", m.ModelID), goerr.V("riskClass", m.RiskClass))
	}
	return nil
}

// ClampScore clamps a raw score into the [0,100] MRS range
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RemediationItem is one prioritized step of a remediation roadmap,
// derived from an outstanding risk factor
type RemediationItem struct {
	Priority             int
	Action               string
	EstimatedImprovement int
	Effort               types.Effort
}

// PremiumCalculation is the output of one premium quote. Deductible is
// nil when the risk class carries no deductible.
type PremiumCalculation struct {
	Premium     float64
	Deductible  *float64
	MaxCapacity float64
	RiskClass   types.RiskClass
}

// MultiJurisdictionRisk is the combined exposure estimate for a campaign
// spanning several jurisdictions
type MultiJurisdictionRisk struct {
	Jurisdictions           []types.JurisdictionCode
	ContentType             string
	CombinedPenaltyExposure string
	RecommendedMultiplier   float64
	RiskLevel               types.RiskClass
}
