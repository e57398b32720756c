package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/service/registry"
	"github.com/rightsgrid/rightsgrid/pkg/service/scoring"
)

func TestMultiJurisdictionRisk(t *testing.T) {
	reg := registry.Default()

	t.Run("empty set rejected", func(t *testing.T) {
		_, err := scoring.MultiJurisdictionRisk(reg, nil, "ai_generated")
		gt.Error(t, err).Is(scoring.ErrNoJurisdictions)
	})

	t.Run("multiplier is the maximum over the set", func(t *testing.T) {
		ca, _ := reg.Jurisdiction("CA")
		tx, _ := reg.Jurisdiction("TX")

		result, err := scoring.MultiJurisdictionRisk(reg, []types.JurisdictionCode{"TX", "CA"}, "ai_generated")
		gt.NoError(t, err).Required()

		want := ca.Multiplier
		if tx.Multiplier > want {
			want = tx.Multiplier
		}
		gt.Value(t, result.RecommendedMultiplier).Equal(want)
		gt.Value(t, result.RiskLevel).Equal(scoring.ClassForMultiplier(want))
	})

	t.Run("duplicates counted once", func(t *testing.T) {
		single, err := scoring.MultiJurisdictionRisk(reg, []types.JurisdictionCode{"CA"}, "ai_generated")
		gt.NoError(t, err).Required()

		doubled, err := scoring.MultiJurisdictionRisk(reg, []types.JurisdictionCode{"CA", "CA"}, "ai_generated")
		gt.NoError(t, err).Required()

		gt.Value(t, doubled.CombinedPenaltyExposure).Equal(single.CombinedPenaltyExposure)
		gt.Value(t, doubled.RecommendedMultiplier).Equal(single.RecommendedMultiplier)
	})

	t.Run("unknown codes contribute nothing", func(t *testing.T) {
		result, err := scoring.MultiJurisdictionRisk(reg, []types.JurisdictionCode{"ZZ"}, "ai_generated")
		gt.NoError(t, err).Required()
		gt.Value(t, result.CombinedPenaltyExposure).Equal("$0")
		gt.Value(t, result.RecommendedMultiplier).Equal(1.0)
		gt.Value(t, result.RiskLevel).Equal(types.RiskClassLow)
	})

	t.Run("exposure sums penalty ceilings for the content category", func(t *testing.T) {
		ca, _ := reg.Jurisdiction("CA")
		ny, _ := reg.Jurisdiction("NY")
		want := ca.EstimatedPenalty(types.LawNILRights) + ny.EstimatedPenalty(types.LawNILRights)

		result, err := scoring.MultiJurisdictionRisk(reg, []types.JurisdictionCode{"CA", "NY"}, "voice likeness")
		gt.NoError(t, err).Required()
		gt.Value(t, result.CombinedPenaltyExposure).Equal(scoring.FormatUSD(want))
	})

	t.Run("adding a jurisdiction never lowers the multiplier", func(t *testing.T) {
		base, err := scoring.MultiJurisdictionRisk(reg, []types.JurisdictionCode{"TX"}, "ai_generated")
		gt.NoError(t, err).Required()

		extended, err := scoring.MultiJurisdictionRisk(reg, []types.JurisdictionCode{"TX", "CA", "GBR"}, "ai_generated")
		gt.NoError(t, err).Required()

		gt.B(t, extended.RecommendedMultiplier >= base.RecommendedMultiplier).True()
	})
}

func TestCategoryForContentType(t *testing.T) {
	cases := map[string]types.LawCategory{
		"deepfake video":   types.LawDeepfake,
		"Synthetic media":  types.LawDeepfake,
		"voice clone":      types.LawNILRights,
		"NIL campaign":     types.LawNILRights,
		"talent likeness":  types.LawNILRights,
		"ai_generated":     types.LawAIAdvertising,
		"display creative": types.LawAIAdvertising,
		"":                 types.LawAIAdvertising,
	}
	for contentType, want := range cases {
		got := scoring.CategoryForContentType(contentType)
		if got != want {
			t.Errorf("CategoryForContentType(%q) = %s, want %s", contentType, got, want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := map[int64]string{
		0:         "$0",
		950:       "$950",
		1_000:     "$1,000",
		1_250_000: "$1,250,000",
		-42_500:   "-$42,500",
	}
	for amount, want := range cases {
		gt.Value(t, scoring.FormatUSD(amount)).Equal(want)
	}
}
