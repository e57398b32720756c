package interfaces

import (
	"context"

	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
)

type ModelScoreRepository interface {
	// Put creates or replaces a model risk score keyed by its model ID
	Put(ctx context.Context, score *model.ModelRiskScore) (*model.ModelRiskScore, error)

	// Get retrieves a model risk score by model ID
	Get(ctx context.Context, modelID string) (*model.ModelRiskScore, error)

	// List retrieves all model risk scores
	List(ctx context.Context) ([]*model.ModelRiskScore, error)

	// Delete deletes a model risk score by model ID
	Delete(ctx context.Context, modelID string) error

	// AppendChange appends one score history entry for a model
	AppendChange(ctx context.Context, modelID string, change *model.ScoreChange) error

	// ListChanges retrieves a model's score history, newest first
	ListChanges(ctx context.Context, modelID string) ([]*model.ScoreChange, error)
}
