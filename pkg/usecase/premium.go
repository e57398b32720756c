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

type PremiumUseCase struct {
	registry interfaces.JurisdictionSource
}

func NewPremiumUseCase(registry interfaces.JurisdictionSource) *PremiumUseCase {
	return &PremiumUseCase{
		registry: registry,
	}
}

// Quote prices coverage for one model's output in one jurisdiction. The
// MRS drives the risk class, the jurisdiction drives the enforcement
// multiplier.
func (uc *PremiumUseCase) Quote(ctx context.Context, limit, baseRatePct float64, jurisdiction string, mrs int) (*model.PremiumCalculation, error) {
	code := types.JurisdictionCode(jurisdiction)
	if err := code.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidJurisdictionCode, err.Error(), goerr.V("code", jurisdiction))
	}

	calc, err := scoring.Premium(uc.registry, limit, baseRatePct, code, mrs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to calculate premium",
			goerr.V("jurisdiction", code), goerr.V("mrs", mrs))
	}

	logging.From(ctx).Debug("calculated premium quote",
		"jurisdiction", code,
		"riskClass", calc.RiskClass,
		"premium", calc.Premium,
	)
	return calc, nil
}
