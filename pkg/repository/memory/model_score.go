package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
)

type modelScoreRepository struct {
	mu      sync.RWMutex
	scores  map[string]*model.ModelRiskScore
	changes map[string][]*model.ScoreChange
}

func newModelScoreRepository() *modelScoreRepository {
	return &modelScoreRepository{
		scores:  make(map[string]*model.ModelRiskScore),
		changes: make(map[string][]*model.ScoreChange),
	}
}

// copyScore returns a deep enough copy to prevent external modification
// of stored slices
func copyScore(s *model.ModelRiskScore) *model.ModelRiskScore {
	c := *s
	c.RiskFactors = append([]model.RiskFactor(nil), s.RiskFactors...)
	c.JurisdictionImpacts = append([]model.JurisdictionImpact(nil), s.JurisdictionImpacts...)
	c.ScoreHistory = append([]model.ScoreChange(nil), s.ScoreHistory...)
	c.AffectedContractIDs = append([]string(nil), s.AffectedContractIDs...)
	if s.DeductiblePct != nil {
		v := *s.DeductiblePct
		c.DeductiblePct = &v
	}
	return &c
}

func (r *modelScoreRepository) Put(ctx context.Context, score *model.ModelRiskScore) (*model.ModelRiskScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := copyScore(score)
	stored.UpdatedAt = now
	if existing, ok := r.scores[score.ModelID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}

	r.scores[stored.ModelID] = stored
	return copyScore(stored), nil
}

func (r *modelScoreRepository) Get(ctx context.Context, modelID string) (*model.ModelRiskScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	score, exists := r.scores[modelID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrModelScoreNotFound, "no score for model", goerr.V("modelID", modelID))
	}

	return copyScore(score), nil
}

func (r *modelScoreRepository) List(ctx context.Context) ([]*model.ModelRiskScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scores := make([]*model.ModelRiskScore, 0, len(r.scores))
	for _, score := range r.scores {
		scores = append(scores, copyScore(score))
	}

	sort.Slice(scores, func(i, j int) bool { return scores[i].ModelID < scores[j].ModelID })
	return scores, nil
}

func (r *modelScoreRepository) Delete(ctx context.Context, modelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scores[modelID]; !exists {
		return goerr.Wrap(interfaces.ErrModelScoreNotFound, "no score for model", goerr.V("modelID", modelID))
	}

	delete(r.scores, modelID)
	delete(r.changes, modelID)
	return nil
}

func (r *modelScoreRepository) AppendChange(ctx context.Context, modelID string, change *model.ScoreChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scores[modelID]; !exists {
		return goerr.Wrap(interfaces.ErrModelScoreNotFound, "no score for model", goerr.V("modelID", modelID))
	}

	c := *change
	r.changes[modelID] = append(r.changes[modelID], &c)
	return nil
}

func (r *modelScoreRepository) ListChanges(ctx context.Context, modelID string) ([]*model.ScoreChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	changes := make([]*model.ScoreChange, 0, len(r.changes[modelID]))
	for _, c := range r.changes[modelID] {
		cc := *c
		changes = append(changes, &cc)
	}

	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Date.After(changes[j].Date) })
	return changes, nil
}
