package usecase

import (
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
)

type UseCases struct {
	repo     interfaces.Repository
	registry interfaces.JurisdictionSource

	Distribution *DistributionUseCase
	Score        *ScoreUseCase
	Premium      *PremiumUseCase
}

func New(repo interfaces.Repository, registry interfaces.JurisdictionSource) *UseCases {
	return &UseCases{
		repo:         repo,
		registry:     registry,
		Distribution: NewDistributionUseCase(registry),
		Score:        NewScoreUseCase(repo, registry),
		Premium:      NewPremiumUseCase(registry),
	}
}

// Registry exposes the jurisdiction reference data for read-only views
func (uc *UseCases) Registry() interfaces.JurisdictionSource {
	return uc.registry
}
