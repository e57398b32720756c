package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/service/scoring"
	"github.com/rightsgrid/rightsgrid/pkg/utils/logging"
)

type DistributionUseCase struct {
	registry interfaces.JurisdictionSource
}

func NewDistributionUseCase(registry interfaces.JurisdictionSource) *DistributionUseCase {
	return &DistributionUseCase{
		registry: registry,
	}
}

// EvaluateAsset computes the distribution risk for one raw asset record
// against one campaign's distribution scope
func (uc *DistributionUseCase) EvaluateAsset(ctx context.Context, asset *model.Asset, dist *model.ProjectDistribution) model.AssetDistributionRiskResult {
	input := model.NewAssetRiskInput(asset)
	result := scoring.DistributionRisk(uc.registry, input, dist)

	logging.From(ctx).Debug("evaluated asset distribution risk",
		"status", result.Status,
		"issues", len(result.MarketIssues),
		"exposure", result.TotalPenaltyExposure,
	)
	return result
}

// AggregateJurisdictions combines the risk of a campaign spanning
// several jurisdictions. Codes are validated before aggregation; an
// empty set is rejected.
func (uc *DistributionUseCase) AggregateJurisdictions(ctx context.Context, codes []string, contentType string) (*model.MultiJurisdictionRisk, error) {
	jcodes := make([]types.JurisdictionCode, 0, len(codes))
	for _, c := range codes {
		code := types.JurisdictionCode(c)
		if err := code.Validate(); err != nil {
			return nil, goerr.Wrap(ErrInvalidJurisdictionCode, err.Error(), goerr.V("code", c))
		}
		jcodes = append(jcodes, code)
	}

	result, err := scoring.MultiJurisdictionRisk(uc.registry, jcodes, contentType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate jurisdiction risk")
	}
	return result, nil
}
