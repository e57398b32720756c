package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/service/scoring"
	"github.com/rightsgrid/rightsgrid/pkg/utils/logging"
)

type ScoreUseCase struct {
	repo     interfaces.Repository
	registry interfaces.JurisdictionSource
}

func NewScoreUseCase(repo interfaces.Repository, registry interfaces.JurisdictionSource) *ScoreUseCase {
	return &ScoreUseCase{
		repo:     repo,
		registry: registry,
	}
}

// RegisterModelScore stores a new model risk score. Derived fields
// (final MRS, risk class, premium terms) are recomputed before storage
// so the stored record always satisfies the score composition invariant.
func (uc *ScoreUseCase) RegisterModelScore(ctx context.Context, score *model.ModelRiskScore) (*model.ModelRiskScore, error) {
	if score == nil || score.ModelID == "" {
		return nil, goerr.New("model ID is required")
	}

	scoring.Finalize(score)
	if err := score.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid model risk score")
	}

	if _, err := uc.repo.ModelScore().Get(ctx, score.ModelID); err == nil {
		return nil, goerr.Wrap(ErrDuplicateModelID, "model already registered", goerr.V("modelID", score.ModelID))
	} else if !errors.Is(err, interfaces.ErrModelScoreNotFound) {
		return nil, goerr.Wrap(err, "failed to check existing model score", goerr.V("modelID", score.ModelID))
	}

	created, err := uc.repo.ModelScore().Put(ctx, score)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store model risk score")
	}

	logging.From(ctx).Info("registered model risk score",
		"modelID", created.ModelID,
		"finalMRS", created.FinalMRS,
		"riskClass", created.RiskClass,
	)
	return created, nil
}

// ListModelScores returns all model risk scores ordered by model ID.
// Score history is not attached here; use GetModelScore for one model's
// full record.
func (uc *ScoreUseCase) ListModelScores(ctx context.Context) ([]*model.ModelRiskScore, error) {
	scores, err := uc.repo.ModelScore().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list model risk scores")
	}
	return scores, nil
}

// GetModelScore returns one model's score with its history attached,
// newest change first
func (uc *ScoreUseCase) GetModelScore(ctx context.Context, modelID string) (*model.ModelRiskScore, error) {
	score, err := uc.repo.ModelScore().Get(ctx, modelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get model risk score", goerr.V("modelID", modelID))
	}

	changes, err := uc.repo.ModelScore().ListChanges(ctx, modelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load score history", goerr.V("modelID", modelID))
	}
	for _, c := range changes {
		score.ScoreHistory = append(score.ScoreHistory, *c)
	}

	return score, nil
}

// GetExplainability returns the remediation roadmap for a model and the
// MRS projected after applying every listed step
func (uc *ScoreUseCase) GetExplainability(ctx context.Context, modelID string) (*model.ModelRiskExplainability, error) {
	score, err := uc.repo.ModelScore().Get(ctx, modelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get model risk score", goerr.V("modelID", modelID))
	}

	roadmap, projected := scoring.Roadmap(score)
	return &model.ModelRiskExplainability{
		ModelID:            score.ModelID,
		FinalMRS:           score.FinalMRS,
		RemediationRoadmap: roadmap,
		ProjectedMRS:       projected,
	}, nil
}

// UpdateFactorStatus changes one risk factor's status, recomputes the
// model's score and appends a score history entry when the final MRS
// moved
func (uc *ScoreUseCase) UpdateFactorStatus(ctx context.Context, modelID, factorID string, newStatus types.FactorStatus, triggeredBy string) (*model.ModelRiskScore, error) {
	if !newStatus.IsValid() {
		return nil, goerr.New("invalid factor status", goerr.V("status", newStatus))
	}

	score, err := uc.repo.ModelScore().Get(ctx, modelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get model risk score", goerr.V("modelID", modelID))
	}

	var factor *model.RiskFactor
	for i := range score.RiskFactors {
		if score.RiskFactors[i].ID == factorID {
			factor = &score.RiskFactors[i]
			break
		}
	}
	if factor == nil {
		return nil, goerr.Wrap(ErrFactorNotFound, "no such factor on model",
			goerr.V("modelID", modelID), goerr.V("factorID", factorID))
	}

	oldScore := score.FinalMRS
	oldStatus := factor.Status
	factor.Status = newStatus

	// A passed control drops its penalty for good. The original impact
	// is not retained, so moving the factor back to FAIL later does not
	// reapply it.
	if newStatus == types.FactorPass && factor.ScoreImpact < 0 {
		factor.EstimatedImprovement = 0
		factor.ScoreImpact = 0
	}

	scoring.Finalize(score)

	updated, err := uc.repo.ModelScore().Put(ctx, score)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store recomputed score", goerr.V("modelID", modelID))
	}

	if updated.FinalMRS != oldScore {
		change := &model.ScoreChange{
			ID:          model.NewScoreChangeID(),
			Date:        time.Now().UTC(),
			OldScore:    oldScore,
			NewScore:    updated.FinalMRS,
			Reason:      fmt.Sprintf("factor %q moved %s -> %s", factor.Name, oldStatus, newStatus),
			TriggeredBy: triggeredBy,
		}
		if err := uc.repo.ModelScore().AppendChange(ctx, modelID, change); err != nil {
			return nil, goerr.Wrap(err, "failed to append score history", goerr.V("modelID", modelID))
		}
	}

	return updated, nil
}

// Seed registers the reference model dataset when the repository is
// empty. Used by the memory backend so the dashboard has data to render
// out of the box.
func (uc *ScoreUseCase) Seed(ctx context.Context) error {
	existing, err := uc.repo.ModelScore().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to check existing model scores")
	}
	if len(existing) > 0 {
		return nil
	}

	for _, score := range defaultModelScores() {
		if _, err := uc.RegisterModelScore(ctx, score); err != nil {
			return goerr.Wrap(err, "failed to seed model score", goerr.V("modelID", score.ModelID))
		}
	}

	logging.From(ctx).Info("seeded reference model risk scores", "count", len(defaultModelScores()))
	return nil
}
