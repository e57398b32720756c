package scoring_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/service/registry"
	"github.com/rightsgrid/rightsgrid/pkg/service/scoring"
)

func riskyInput() model.AssetRiskInput {
	return model.AssetRiskInput{
		ContentType:          "AI Generative",
		TalentRightsVerified: false,
		DisclosureLabeled:    false,
	}
}

func TestDistributionRisk_EmptyScope(t *testing.T) {
	reg := registry.Default()

	result := scoring.DistributionRisk(reg, riskyInput(), &model.ProjectDistribution{})
	gt.Value(t, result.Status).Equal(types.DistributionClear)
	gt.Number(t, len(result.MarketIssues)).Equal(0)
	gt.Value(t, result.TotalPenaltyExposure).Equal(int64(0))
}

func TestDistributionRisk_AllStatesUnverifiedAI(t *testing.T) {
	reg := registry.Default()

	dist := &model.ProjectDistribution{USStates: []string{"ALL"}}
	result := scoring.DistributionRisk(reg, riskyInput(), dist)

	// California's very_high NIL enforcement blocks unverified talent
	gt.Value(t, result.Status).Equal(types.DistributionBlocked)
	gt.B(t, result.TotalPenaltyExposure > 0).True()

	markets := map[types.JurisdictionCode]bool{}
	for _, issue := range result.MarketIssues {
		markets[issue.Market] = true
	}
	for _, want := range []types.JurisdictionCode{"CA", "NY", "TX"} {
		if !markets[want] {
			t.Errorf("expected an issue for %s", want)
		}
	}

	// Issues must be ordered by jurisdiction code
	sorted := sort.SliceIsSorted(result.MarketIssues, func(i, j int) bool {
		return result.MarketIssues[i].Market <= result.MarketIssues[j].Market
	})
	gt.B(t, sorted).True()
}

func TestDistributionRisk_CompliantAssetIsClear(t *testing.T) {
	reg := registry.Default()

	input := model.AssetRiskInput{
		ContentType:          "ai_generated",
		TalentRightsVerified: true,
		DisclosureLabeled:    true,
		PlatformCompliance:   map[string]bool{"tiktok": true, "meta": true},
	}
	dist := &model.ProjectDistribution{
		USStates:  []string{"ALL"},
		Countries: []string{"GBR", "DEU"},
		Platforms: []string{"tiktok", "meta"},
	}

	result := scoring.DistributionRisk(reg, input, dist)
	gt.Value(t, result.Status).Equal(types.DistributionClear)
	gt.Number(t, len(result.MarketIssues)).Equal(0)
	gt.Value(t, result.TotalPenaltyExposure).Equal(int64(0))
}

func TestDistributionRisk_ProposedLegislationIsInert(t *testing.T) {
	reg := registry.Default()

	// Florida's law is proposed, not enacted: no rules fire
	fl, ok := reg.Jurisdiction("FL")
	gt.B(t, ok).True()
	gt.B(t, fl.Legislation != types.LegislationEnacted).True()

	dist := &model.ProjectDistribution{USStates: []string{"FL"}}
	result := scoring.DistributionRisk(reg, riskyInput(), dist)
	gt.Value(t, result.Status).Equal(types.DistributionClear)
	gt.Number(t, len(result.MarketIssues)).Equal(0)
}

func TestDistributionRisk_UnknownCodesDropped(t *testing.T) {
	reg := registry.Default()

	dist := &model.ProjectDistribution{USStates: []string{"ZZ"}, Countries: []string{"XXX"}}
	result := scoring.DistributionRisk(reg, riskyInput(), dist)
	gt.Value(t, result.Status).Equal(types.DistributionClear)
}

func TestDistributionRisk_KindMismatchDropped(t *testing.T) {
	reg := registry.Default()

	// "CA" listed as a country must not resolve to the state California
	dist := &model.ProjectDistribution{Countries: []string{"CA"}}
	result := scoring.DistributionRisk(reg, riskyInput(), dist)
	gt.Value(t, result.Status).Equal(types.DistributionClear)
	gt.Number(t, len(result.MarketIssues)).Equal(0)
}

func TestDistributionRisk_PlatformRule(t *testing.T) {
	reg := registry.Default()

	input := model.AssetRiskInput{
		ContentType:          "ai_generated",
		TalentRightsVerified: true,
		DisclosureLabeled:    true,
		PlatformCompliance:   map[string]bool{"meta": true},
	}
	// Texas tracks deepfake labeling; tiktok is not marked compliant
	dist := &model.ProjectDistribution{
		USStates:  []string{"TX"},
		Platforms: []string{"tiktok", "meta"},
	}

	result := scoring.DistributionRisk(reg, input, dist)
	gt.Value(t, result.Status).Equal(types.DistributionNeedsReview)
	gt.Number(t, len(result.MarketIssues)).Equal(1)

	issue := result.MarketIssues[0]
	gt.Value(t, issue.Market).Equal(types.JurisdictionCode("TX"))
	gt.Value(t, issue.RiskLevel).Equal(types.IssueLevelMedium)
	gt.B(t, strings.Contains(issue.Needed, "tiktok")).True()
	gt.B(t, strings.Contains(issue.Needed, "meta")).False()
}

func TestDistributionRisk_ExposureSumsPenaltySchedules(t *testing.T) {
	// A two-state registry with known penalty ceilings pins the exposure
	// arithmetic: one hit per triggered rule, priced by its law category.
	profiles := []*model.JurisdictionProfile{
		{
			Code:          "AA",
			Name:          "Alpha",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawAIAdvertising, types.LawNILRights},
			Enforcement:   types.EnforcementHigh,
			Multiplier:    1.5,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "ad law", EstimatedMax: 100_000},
				{Category: types.LawNILRights, Text: "nil law", EstimatedMax: 200_000},
			},
		},
		{
			Code:          "BB",
			Name:          "Beta",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawNILRights},
			Enforcement:   types.EnforcementMedium,
			Multiplier:    1.2,
			Penalties: []model.Penalty{
				{Category: types.LawNILRights, Text: "nil law", EstimatedMax: 50_000},
			},
		},
	}
	reg, err := registry.New(profiles)
	gt.NoError(t, err).Required()

	dist := &model.ProjectDistribution{USStates: []string{"AA", "BB"}}
	result := scoring.DistributionRisk(reg, riskyInput(), dist)

	// AA: disclosure (100k) + consent (200k); BB: consent (50k)
	gt.Number(t, len(result.MarketIssues)).Equal(3)
	gt.Value(t, result.TotalPenaltyExposure).Equal(int64(350_000))
	gt.Value(t, result.Status).Equal(types.DistributionNeedsReview)
}

func TestDistributionRisk_Deterministic(t *testing.T) {
	reg := registry.Default()
	dist := &model.ProjectDistribution{
		USStates:  []string{"ALL"},
		Countries: []string{"GBR", "JPN"},
		Platforms: []string{"tiktok"},
	}

	first := scoring.DistributionRisk(reg, riskyInput(), dist)
	second := scoring.DistributionRisk(reg, riskyInput(), dist)

	gt.Value(t, second.Status).Equal(first.Status)
	gt.Value(t, second.TotalPenaltyExposure).Equal(first.TotalPenaltyExposure)
	gt.Number(t, len(second.MarketIssues)).Equal(len(first.MarketIssues))
	for i := range first.MarketIssues {
		gt.Value(t, second.MarketIssues[i]).Equal(first.MarketIssues[i])
	}
}
