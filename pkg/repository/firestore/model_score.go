package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type riskFactorDocument struct {
	ID                   string  `firestore:"id"`
	Name                 string  `firestore:"name"`
	Category             string  `firestore:"category"`
	Weight               float64 `firestore:"weight"`
	ScoreImpact          int     `firestore:"score_impact"`
	Status               string  `firestore:"status"`
	Detail               string  `firestore:"detail"`
	RemediationAction    string  `firestore:"remediation_action"`
	EstimatedImprovement int     `firestore:"estimated_improvement"`
}

type jurisdictionImpactDocument struct {
	Jurisdiction     string  `firestore:"jurisdiction"`
	LawType          string  `firestore:"law_type"`
	ComplianceStatus string  `firestore:"compliance_status"`
	ScorePenalty     int     `firestore:"score_penalty"`
	MultiplierImpact float64 `firestore:"multiplier_impact"`
}

type modelScoreDocument struct {
	ModelID             string                       `firestore:"model_id"`
	Name                string                       `firestore:"name"`
	Vendor              string                       `firestore:"vendor"`
	BaseScore           int                          `firestore:"base_score"`
	NYAdjustment        int                          `firestore:"ny_adjustment"`
	FinalMRS            int                          `firestore:"final_mrs"`
	RiskClass           string                       `firestore:"risk_class"`
	PremiumMultiplier   float64                      `firestore:"premium_multiplier"`
	DeductiblePct       *float64                     `firestore:"deductible_pct"`
	MaxCapacityPct      float64                      `firestore:"max_capacity_pct"`
	RiskFactors         []riskFactorDocument         `firestore:"risk_factors"`
	JurisdictionImpacts []jurisdictionImpactDocument `firestore:"jurisdiction_impacts"`
	AffectedContractIDs []string                     `firestore:"affected_contract_ids"`
	CreatedAt           time.Time                    `firestore:"created_at"`
	UpdatedAt           time.Time                    `firestore:"updated_at"`
}

type scoreChangeDocument struct {
	ID          string    `firestore:"id"`
	ModelID     string    `firestore:"model_id"`
	ChangedAt   time.Time `firestore:"changed_at"`
	OldScore    int       `firestore:"old_score"`
	NewScore    int       `firestore:"new_score"`
	Reason      string    `firestore:"reason"`
	TriggeredBy string    `firestore:"triggered_by"`
}

type modelScoreRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newModelScoreRepository(client *firestore.Client) *modelScoreRepository {
	return &modelScoreRepository{
		client:           client,
		collectionPrefix: "",
	}
}

// ScoresCollection returns the model score collection name for a prefix.
// The index migration builds names with the same helpers so the indexes
// land on the collections the repository actually uses.
func ScoresCollection(prefix string) string {
	if prefix != "" {
		return prefix + "_model_scores"
	}
	return "model_scores"
}

// ChangesCollection returns the score change collection name for a prefix
func ChangesCollection(prefix string) string {
	if prefix != "" {
		return prefix + "_score_changes"
	}
	return "score_changes"
}

func (r *modelScoreRepository) scoresCollection() string {
	return ScoresCollection(r.collectionPrefix)
}

func (r *modelScoreRepository) changesCollection() string {
	return ChangesCollection(r.collectionPrefix)
}

func toDocument(score *model.ModelRiskScore) *modelScoreDocument {
	doc := &modelScoreDocument{
		ModelID:             score.ModelID,
		Name:                score.Name,
		Vendor:              score.Vendor,
		BaseScore:           score.BaseScore,
		NYAdjustment:        score.NYAdjustment,
		FinalMRS:            score.FinalMRS,
		RiskClass:           score.RiskClass.String(),
		PremiumMultiplier:   score.PremiumMultiplier,
		MaxCapacityPct:      score.MaxCapacityPct,
		AffectedContractIDs: score.AffectedContractIDs,
		CreatedAt:           score.CreatedAt,
		UpdatedAt:           score.UpdatedAt,
	}
	if score.DeductiblePct != nil {
		v := *score.DeductiblePct
		doc.DeductiblePct = &v
	}
	for _, f := range score.RiskFactors {
		doc.RiskFactors = append(doc.RiskFactors, riskFactorDocument{
			ID:                   f.ID,
			Name:                 f.Name,
			Category:             f.Category.String(),
			Weight:               f.Weight,
			ScoreImpact:          f.ScoreImpact,
			Status:               f.Status.String(),
			Detail:               f.Detail,
			RemediationAction:    f.RemediationAction,
			EstimatedImprovement: f.EstimatedImprovement,
		})
	}
	for _, ji := range score.JurisdictionImpacts {
		doc.JurisdictionImpacts = append(doc.JurisdictionImpacts, jurisdictionImpactDocument{
			Jurisdiction:     ji.Jurisdiction.String(),
			LawType:          ji.LawType.String(),
			ComplianceStatus: ji.ComplianceStatus.String(),
			ScorePenalty:     ji.ScorePenalty,
			MultiplierImpact: ji.MultiplierImpact,
		})
	}
	return doc
}

func fromDocument(doc *modelScoreDocument) *model.ModelRiskScore {
	score := &model.ModelRiskScore{
		ModelID:             doc.ModelID,
		Name:                doc.Name,
		Vendor:              doc.Vendor,
		BaseScore:           doc.BaseScore,
		NYAdjustment:        doc.NYAdjustment,
		FinalMRS:            doc.FinalMRS,
		RiskClass:           types.RiskClass(doc.RiskClass),
		PremiumMultiplier:   doc.PremiumMultiplier,
		MaxCapacityPct:      doc.MaxCapacityPct,
		AffectedContractIDs: doc.AffectedContractIDs,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
	if doc.DeductiblePct != nil {
		v := *doc.DeductiblePct
		score.DeductiblePct = &v
	}
	for _, f := range doc.RiskFactors {
		score.RiskFactors = append(score.RiskFactors, model.RiskFactor{
			ID:                   f.ID,
			Name:                 f.Name,
			Category:             types.FactorCategory(f.Category),
			Weight:               f.Weight,
			ScoreImpact:          f.ScoreImpact,
			Status:               types.FactorStatus(f.Status),
			Detail:               f.Detail,
			RemediationAction:    f.RemediationAction,
			EstimatedImprovement: f.EstimatedImprovement,
		})
	}
	for _, ji := range doc.JurisdictionImpacts {
		score.JurisdictionImpacts = append(score.JurisdictionImpacts, model.JurisdictionImpact{
			Jurisdiction:     types.JurisdictionCode(ji.Jurisdiction),
			LawType:          types.LawCategory(ji.LawType),
			ComplianceStatus: types.ComplianceStatus(ji.ComplianceStatus),
			ScorePenalty:     ji.ScorePenalty,
			MultiplierImpact: ji.MultiplierImpact,
		})
	}
	return score
}

func (r *modelScoreRepository) Put(ctx context.Context, score *model.ModelRiskScore) (*model.ModelRiskScore, error) {
	docRef := r.client.Collection(r.scoresCollection()).Doc(score.ModelID)

	now := time.Now().UTC()
	doc := toDocument(score)
	doc.UpdatedAt = now
	doc.CreatedAt = now

	if existing, err := docRef.Get(ctx); err == nil {
		var prev modelScoreDocument
		if err := existing.DataTo(&prev); err == nil && !prev.CreatedAt.IsZero() {
			doc.CreatedAt = prev.CreatedAt
		}
	} else if status.Code(err) != codes.NotFound {
		return nil, goerr.Wrap(err, "failed to check existing model score", goerr.V("modelID", score.ModelID))
	}

	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to put model score", goerr.V("modelID", score.ModelID))
	}

	return fromDocument(doc), nil
}

func (r *modelScoreRepository) Get(ctx context.Context, modelID string) (*model.ModelRiskScore, error) {
	docRef := r.client.Collection(r.scoresCollection()).Doc(modelID)
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrModelScoreNotFound, "no score for model", goerr.V("modelID", modelID))
		}
		return nil, goerr.Wrap(err, "failed to get model score", goerr.V("modelID", modelID))
	}

	var doc modelScoreDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode model score", goerr.V("modelID", modelID))
	}

	return fromDocument(&doc), nil
}

func (r *modelScoreRepository) List(ctx context.Context) ([]*model.ModelRiskScore, error) {
	iter := r.client.Collection(r.scoresCollection()).OrderBy("model_id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var scores []*model.ModelRiskScore
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate model scores")
		}

		var doc modelScoreDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode model score", goerr.V("doc", snap.Ref.ID))
		}
		scores = append(scores, fromDocument(&doc))
	}

	return scores, nil
}

func (r *modelScoreRepository) Delete(ctx context.Context, modelID string) error {
	docRef := r.client.Collection(r.scoresCollection()).Doc(modelID)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrModelScoreNotFound, "no score for model", goerr.V("modelID", modelID))
		}
		return goerr.Wrap(err, "failed to check model score", goerr.V("modelID", modelID))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete model score", goerr.V("modelID", modelID))
	}
	return nil
}

func (r *modelScoreRepository) AppendChange(ctx context.Context, modelID string, change *model.ScoreChange) error {
	if _, err := r.Get(ctx, modelID); err != nil {
		return err
	}

	doc := &scoreChangeDocument{
		ID:          change.ID,
		ModelID:     modelID,
		ChangedAt:   change.Date,
		OldScore:    change.OldScore,
		NewScore:    change.NewScore,
		Reason:      change.Reason,
		TriggeredBy: change.TriggeredBy,
	}

	docRef := r.client.Collection(r.changesCollection()).Doc(change.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to append score change",
			goerr.V("modelID", modelID), goerr.V("changeID", change.ID))
	}
	return nil
}

func (r *modelScoreRepository) ListChanges(ctx context.Context, modelID string) ([]*model.ScoreChange, error) {
	iter := r.client.Collection(r.changesCollection()).
		Where("model_id", "==", modelID).
		OrderBy("changed_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var changes []*model.ScoreChange
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate score changes", goerr.V("modelID", modelID))
		}

		var doc scoreChangeDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode score change", goerr.V("doc", snap.Ref.ID))
		}
		changes = append(changes, &model.ScoreChange{
			ID:          doc.ID,
			Date:        doc.ChangedAt,
			OldScore:    doc.OldScore,
			NewScore:    doc.NewScore,
			Reason:      doc.Reason,
			TriggeredBy: doc.TriggeredBy,
		})
	}

	return changes, nil
}
