package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/repository/memory"
	"github.com/rightsgrid/rightsgrid/pkg/service/registry"
	"github.com/rightsgrid/rightsgrid/pkg/usecase"
)

func newUseCases() *usecase.UseCases {
	return usecase.New(memory.New(), registry.Default())
}

func testModel() *model.ModelRiskScore {
	return &model.ModelRiskScore{
		ModelID:   "gen-tool",
		Name:      "Gen Tool",
		Vendor:    "Acme AI",
		BaseScore: 90,
		RiskFactors: []model.RiskFactor{
			{
				ID: "consent", Name: "Consent records", Category: types.FactorConsent,
				Weight: 0.8, ScoreImpact: -6, Status: types.FactorFail,
				RemediationAction: "Collect consent releases", EstimatedImprovement: 6,
			},
			{
				ID: "provenance", Name: "Provenance manifest", Category: types.FactorProvenance,
				Weight: 0.4, ScoreImpact: -2, Status: types.FactorWarning,
				RemediationAction: "Anchor C2PA manifests", EstimatedImprovement: 2,
			},
		},
		JurisdictionImpacts: []model.JurisdictionImpact{
			{Jurisdiction: "NY", LawType: types.LawNILRights, ComplianceStatus: types.CompliancePartial, ScorePenalty: -4, MultiplierImpact: 1.2},
		},
	}
}

func TestScoreUseCase_RegisterModelScore(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	created, err := uc.Score.RegisterModelScore(ctx, testModel())
	gt.NoError(t, err).Required()

	// 90 - 6 - 2 - 4
	gt.Number(t, created.FinalMRS).Equal(78)
	gt.Number(t, created.NYAdjustment).Equal(-4)
	gt.Value(t, created.RiskClass).Equal(types.RiskClassGuarded)
	gt.NoError(t, created.Validate())

	t.Run("duplicate model ID rejected", func(t *testing.T) {
		_, err := uc.Score.RegisterModelScore(ctx, testModel())
		gt.Error(t, err).Is(usecase.ErrDuplicateModelID)
	})

	t.Run("missing model ID rejected", func(t *testing.T) {
		m := testModel()
		m.ModelID = ""
		_, err := uc.Score.RegisterModelScore(ctx, m)
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid factor rejected", func(t *testing.T) {
		m := testModel()
		m.RiskFactors[0].Weight = 2.0
		_, err := uc.Score.RegisterModelScore(ctx, m)
		gt.Value(t, err).NotNil()
	})
}

func TestScoreUseCase_GetModelScore(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	_, err := uc.Score.RegisterModelScore(ctx, testModel())
	gt.NoError(t, err).Required()

	got, err := uc.Score.GetModelScore(ctx, "gen-tool")
	gt.NoError(t, err).Required()
	gt.Value(t, got.Name).Equal("Gen Tool")

	t.Run("missing model", func(t *testing.T) {
		_, err := uc.Score.GetModelScore(ctx, "nope")
		gt.Error(t, err).Is(interfaces.ErrModelScoreNotFound)
	})
}

func TestScoreUseCase_UpdateFactorStatus(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	created, err := uc.Score.RegisterModelScore(ctx, testModel())
	gt.NoError(t, err).Required()
	gt.Number(t, created.FinalMRS).Equal(78)

	updated, err := uc.Score.UpdateFactorStatus(ctx, "gen-tool", "consent", types.FactorPass, "reviewer@example.com")
	gt.NoError(t, err).Required()

	// The consent penalty is lifted: 78 + 6
	gt.Number(t, updated.FinalMRS).Equal(84)
	gt.Value(t, updated.RiskClass).Equal(types.RiskClassModerate)
	gt.NoError(t, updated.Validate())

	t.Run("change recorded in history", func(t *testing.T) {
		got, err := uc.Score.GetModelScore(ctx, "gen-tool")
		gt.NoError(t, err).Required()
		gt.Number(t, len(got.ScoreHistory)).Equal(1)

		change := got.ScoreHistory[0]
		gt.Number(t, change.OldScore).Equal(78)
		gt.Number(t, change.NewScore).Equal(84)
		gt.Value(t, change.TriggeredBy).Equal("reviewer@example.com")
		gt.B(t, change.ID != "").True()
	})

	t.Run("unknown factor", func(t *testing.T) {
		_, err := uc.Score.UpdateFactorStatus(ctx, "gen-tool", "nope", types.FactorPass, "x")
		gt.Error(t, err).Is(usecase.ErrFactorNotFound)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := uc.Score.UpdateFactorStatus(ctx, "nope", "consent", types.FactorPass, "x")
		gt.Error(t, err).Is(interfaces.ErrModelScoreNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := uc.Score.UpdateFactorStatus(ctx, "gen-tool", "provenance", types.FactorStatus("DONE"), "x")
		gt.Value(t, err).NotNil()
	})

	t.Run("no-op status change appends no history", func(t *testing.T) {
		// provenance is WARNING; setting it to WARNING again moves nothing
		_, err := uc.Score.UpdateFactorStatus(ctx, "gen-tool", "provenance", types.FactorWarning, "x")
		gt.NoError(t, err).Required()

		got, err := uc.Score.GetModelScore(ctx, "gen-tool")
		gt.NoError(t, err).Required()
		gt.Number(t, len(got.ScoreHistory)).Equal(1)
	})
}

func TestScoreUseCase_GetExplainability(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	_, err := uc.Score.RegisterModelScore(ctx, testModel())
	gt.NoError(t, err).Required()

	exp, err := uc.Score.GetExplainability(ctx, "gen-tool")
	gt.NoError(t, err).Required()

	gt.Value(t, exp.ModelID).Equal("gen-tool")
	gt.Number(t, exp.FinalMRS).Equal(78)
	gt.Number(t, len(exp.RemediationRoadmap)).Equal(2)
	gt.Value(t, exp.RemediationRoadmap[0].Action).Equal("Collect consent releases")
	// 78 + 6 + 2
	gt.Number(t, exp.ProjectedMRS).Equal(86)

	t.Run("missing model", func(t *testing.T) {
		_, err := uc.Score.GetExplainability(ctx, "nope")
		gt.Error(t, err).Is(interfaces.ErrModelScoreNotFound)
	})
}

func TestScoreUseCase_Seed(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	gt.NoError(t, uc.Score.Seed(ctx))

	scores, err := uc.Score.ListModelScores(ctx)
	gt.NoError(t, err).Required()
	gt.B(t, len(scores) > 0).True()

	for _, s := range scores {
		gt.NoError(t, s.Validate())
	}

	t.Run("idempotent", func(t *testing.T) {
		gt.NoError(t, uc.Score.Seed(ctx))
		again, err := uc.Score.ListModelScores(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(again)).Equal(len(scores))
	})
}
