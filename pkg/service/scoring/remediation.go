package scoring

import (
	"sort"

	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// Roadmap orders a model's outstanding risk factors into a remediation
// plan and projects the MRS after applying every listed step.
//
// Priorities are assigned by descending estimated score recovery, ties
// broken by ascending effort, then by action text so repeated calls on
// identical input yield the identical ordered list.
func Roadmap(m *model.ModelRiskScore) ([]model.RemediationItem, int) {
	outstanding := m.OutstandingFactors()

	items := make([]model.RemediationItem, 0, len(outstanding))
	for _, f := range outstanding {
		items = append(items, model.RemediationItem{
			Action:               f.RemediationAction,
			EstimatedImprovement: f.EstimatedImprovement,
			Effort:               effortForFactor(f),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].EstimatedImprovement != items[j].EstimatedImprovement {
			return items[i].EstimatedImprovement > items[j].EstimatedImprovement
		}
		if items[i].Effort.Rank() != items[j].Effort.Rank() {
			return items[i].Effort.Rank() < items[j].Effort.Rank()
		}
		return items[i].Action < items[j].Action
	})

	projected := m.FinalMRS
	for i := range items {
		items[i].Priority = i + 1
		projected += items[i].EstimatedImprovement
	}

	return items, model.ClampScore(projected)
}

// effortForFactor estimates remediation effort from the factor's weight
// and control area. Consent re-papering and provenance rebuilds are
// organizationally expensive; labeling and documentation fixes are not.
func effortForFactor(f model.RiskFactor) types.Effort {
	switch f.Category {
	case types.FactorConsent, types.FactorProvenance:
		if f.Weight >= 0.5 {
			return types.EffortHigh
		}
		return types.EffortMedium
	case types.FactorRegulatory:
		return types.EffortMedium
	default:
		if f.Weight >= 0.7 {
			return types.EffortMedium
		}
		return types.EffortLow
	}
}
