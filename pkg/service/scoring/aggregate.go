package scoring

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// MultiJurisdictionRisk combines per-jurisdiction multipliers and penalty
// schedules across a campaign's jurisdiction set.
//
// The recommended multiplier is the maximum over the set, which keeps the
// aggregation monotonic non-decreasing under union: adding a jurisdiction
// can only add exposure, never remove it. The combined exposure is the sum
// of penalty ceilings for the content type's law category. Unknown codes
// contribute nothing. An empty set is a validation error.
func MultiJurisdictionRisk(src interfaces.JurisdictionSource, codes []types.JurisdictionCode, contentType string) (*model.MultiJurisdictionRisk, error) {
	if len(codes) == 0 {
		return nil, goerr.Wrap(ErrNoJurisdictions, "cannot aggregate an empty jurisdiction set")
	}

	category := CategoryForContentType(contentType)

	seen := map[types.JurisdictionCode]bool{}
	multiplier := 1.0
	var exposure int64

	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true

		profile, ok := src.Jurisdiction(code)
		if !ok {
			continue
		}
		if profile.Multiplier > multiplier {
			multiplier = profile.Multiplier
		}
		exposure += profile.EstimatedPenalty(category)
	}

	return &model.MultiJurisdictionRisk{
		Jurisdictions:           codes,
		ContentType:             contentType,
		CombinedPenaltyExposure: FormatUSD(exposure),
		RecommendedMultiplier:   multiplier,
		RiskLevel:               ClassForMultiplier(multiplier),
	}, nil
}

// CategoryForContentType maps a free-form campaign content type onto the
// law category whose penalty schedule applies
func CategoryForContentType(contentType string) types.LawCategory {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "deepfake"), strings.Contains(ct, "synthetic"):
		return types.LawDeepfake
	case strings.Contains(ct, "nil"), strings.Contains(ct, "likeness"), strings.Contains(ct, "voice"):
		return types.LawNILRights
	default:
		return types.LawAIAdvertising
	}
}

// FormatUSD renders a dollar amount with thousands separators, e.g.
// "$1,250,000"
func FormatUSD(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
