package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// ruleHit is one unmet rule: the market issue to surface plus the law
// category whose penalty schedule prices it
type ruleHit struct {
	issue    model.MarketIssue
	category types.LawCategory
}

// DistributionRisk evaluates one asset against one campaign's
// distribution scope. Pure and deterministic: same inputs always produce
// the same result, and issues are ordered by jurisdiction code.
//
// An empty distribution yields a clear result with zero exposure. Codes
// absent from the registry contribute no rules and no penalties.
func DistributionRisk(src interfaces.JurisdictionSource, input model.AssetRiskInput, dist *model.ProjectDistribution) model.AssetDistributionRiskResult {
	result := model.AssetDistributionRiskResult{
		Status: types.DistributionClear,
	}
	if dist.IsEmpty() {
		return result
	}

	for _, profile := range inScopeJurisdictions(src, dist) {
		for _, hit := range evaluateJurisdiction(profile, input, dist.Platforms) {
			result.MarketIssues = append(result.MarketIssues, hit.issue)
			result.TotalPenaltyExposure += profile.EstimatedPenalty(hit.category)
		}
	}

	result.Status = deriveStatus(result.MarketIssues)
	return result
}

// inScopeJurisdictions resolves the distribution scope into registry
// profiles: the "ALL" sentinel expands to every supported state, explicit
// codes are looked up individually and unknown ones dropped, countries
// are filtered to the supported international-market set.
func inScopeJurisdictions(src interfaces.JurisdictionSource, dist *model.ProjectDistribution) []*model.JurisdictionProfile {
	seen := map[types.JurisdictionCode]bool{}
	var profiles []*model.JurisdictionProfile

	add := func(p *model.JurisdictionProfile) {
		if p != nil && !seen[p.Code] {
			seen[p.Code] = true
			profiles = append(profiles, p)
		}
	}

	if dist.WantsAllStates() {
		for _, p := range src.States() {
			add(p)
		}
	} else {
		for _, code := range dist.USStates {
			if p, ok := src.Jurisdiction(types.JurisdictionCode(code)); ok && p.Kind == types.JurisdictionKindState {
				add(p)
			}
		}
	}

	for _, code := range dist.Countries {
		if p, ok := src.Jurisdiction(types.JurisdictionCode(code)); ok && p.Kind == types.JurisdictionKindCountry {
			add(p)
		}
	}

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Code < profiles[j].Code })
	return profiles
}

// evaluateJurisdiction applies the jurisdiction's enacted rules to the
// asset. Rules fail closed: a missing field counts as unmet.
func evaluateJurisdiction(p *model.JurisdictionProfile, input model.AssetRiskInput, platforms []string) []ruleHit {
	if p.Legislation.Normalize() != types.LegislationEnacted {
		return nil
	}

	var hits []ruleHit

	// Disclosure rule: AI-generated content must carry an AI disclosure
	// label in jurisdictions with advertising transparency laws.
	if p.HasCategory(types.LawAIAdvertising) && input.AIGenerated() && !input.DisclosureLabeled {
		hits = append(hits, ruleHit{
			category: types.LawAIAdvertising,
			issue: model.MarketIssue{
				Market:    p.Code,
				RiskLevel: disclosureLevel(p.Enforcement),
				Needed:    fmt.Sprintf("Add AI disclosure label required by %s advertising transparency law", p.Name),
			},
		})
	}

	// Consent rule: talent NIL rights must be verified wherever a
	// right-of-publicity law applies.
	if p.HasCategory(types.LawNILRights) && !input.TalentRightsVerified {
		hits = append(hits, ruleHit{
			category: types.LawNILRights,
			issue: model.MarketIssue{
				Market:    p.Code,
				RiskLevel: consentLevel(p.Enforcement),
				Needed:    fmt.Sprintf("Obtain verified talent NIL consent before distribution in %s", p.Name),
			},
		})
	}

	// Platform rule: deepfake labeling laws require per-platform
	// compliance for every targeted platform.
	if p.HasCategory(types.LawDeepfake) && len(platforms) > 0 {
		var unmet []string
		for _, platform := range platforms {
			if !input.PlatformCompliant(platform) {
				unmet = append(unmet, platform)
			}
		}
		if len(unmet) > 0 {
			hits = append(hits, ruleHit{
				category: types.LawDeepfake,
				issue: model.MarketIssue{
					Market:    p.Code,
					RiskLevel: types.IssueLevelMedium,
					Needed:    fmt.Sprintf("Complete synthetic-media labeling for %s (%s)", strings.Join(unmet, ", "), p.Name),
				},
			})
		}
	}

	return hits
}

func disclosureLevel(e types.Enforcement) types.IssueLevel {
	switch e {
	case types.EnforcementVeryHigh, types.EnforcementHigh:
		return types.IssueLevelHigh
	case types.EnforcementMedium:
		return types.IssueLevelMedium
	default:
		return types.IssueLevelLow
	}
}

func consentLevel(e types.Enforcement) types.IssueLevel {
	switch e {
	case types.EnforcementVeryHigh:
		return types.IssueLevelBlocked
	case types.EnforcementHigh:
		return types.IssueLevelHigh
	default:
		return types.IssueLevelMedium
	}
}

func deriveStatus(issues []model.MarketIssue) types.DistributionStatus {
	if len(issues) == 0 {
		return types.DistributionClear
	}
	for _, issue := range issues {
		if issue.RiskLevel == types.IssueLevelBlocked {
			return types.DistributionBlocked
		}
	}
	return types.DistributionNeedsReview
}
