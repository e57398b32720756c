package model

import (
	"time"

	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// AllStatesSentinel in ProjectDistribution.USStates means "every supported
// US state"
const AllStatesSentinel = "ALL"

// ProjectDistribution is the distribution scope of one campaign, owned by
// the dashboard's project store. The engine only reads it.
type ProjectDistribution struct {
	PrimaryUse string
	USStates   []string
	Countries  []string
	Platforms  []string
	StartDate  time.Time
	EndDate    *time.Time
}

// IsEmpty reports whether the distribution targets no jurisdiction at all
func (d *ProjectDistribution) IsEmpty() bool {
	return d == nil || (len(d.USStates) == 0 && len(d.Countries) == 0)
}

// WantsAllStates reports whether the "ALL" sentinel is present in USStates
func (d *ProjectDistribution) WantsAllStates() bool {
	if d == nil {
		return false
	}
	for _, s := range d.USStates {
		if s == AllStatesSentinel {
			return true
		}
	}
	return false
}

// Asset is the dashboard's raw asset record. Older records carry
// ContentType instead of AIMethod; NewAssetRiskInput resolves the
// fallback once so the engine never sees both shapes.
type Asset struct {
	ID                   string
	Name                 string
	AIMethod             string
	ContentType          string // legacy field, superseded by AIMethod
	CreatorIDs           []string
	TalentRightsVerified bool
	DisclosureLabeled    bool
	PlatformCompliance   map[string]bool
}

// ContentTypeAIGenerated marks an asset as AI-generated for rule
// evaluation purposes
const ContentTypeAIGenerated = "ai_generated"

// AssetRiskInput is the canonical derived view of an asset consumed by the
// distribution risk calculator. Computed on demand, never persisted.
type AssetRiskInput struct {
	ContentType          string
	CreatorIDs           []string
	TalentRightsVerified bool
	DisclosureLabeled    bool
	PlatformCompliance   map[string]bool
}

// AIGenerated reports whether the asset content is AI-generated
func (in *AssetRiskInput) AIGenerated() bool {
	switch in.ContentType {
	case ContentTypeAIGenerated, "AI Generative", "ai_generative":
		return true
	default:
		return false
	}
}

// PlatformCompliant reports whether the asset is marked compliant for the
// given platform. A missing map or entry fails closed: under-reporting
// risk is the worse failure mode for a compliance tool.
func (in *AssetRiskInput) PlatformCompliant(platform string) bool {
	if in.PlatformCompliance == nil {
		return false
	}
	return in.PlatformCompliance[platform]
}

// NewAssetRiskInput converts a raw asset record into the canonical risk
// input, resolving legacy field fallbacks at the boundary
func NewAssetRiskInput(asset *Asset) AssetRiskInput {
	if asset == nil {
		return AssetRiskInput{}
	}

	contentType := asset.AIMethod
	if contentType == "" {
		contentType = asset.ContentType
	}

	return AssetRiskInput{
		ContentType:          contentType,
		CreatorIDs:           asset.CreatorIDs,
		TalentRightsVerified: asset.TalentRightsVerified,
		DisclosureLabeled:    asset.DisclosureLabeled,
		PlatformCompliance:   asset.PlatformCompliance,
	}
}

// MarketIssue is one unresolved compliance requirement for one asset in
// one jurisdiction
type MarketIssue struct {
	Market    types.JurisdictionCode
	RiskLevel types.IssueLevel
	Needed    string
}

// AssetDistributionRiskResult is the computed compliance posture of one
// (asset, distribution) pair. Recomputed whenever inputs change, never
// persisted.
type AssetDistributionRiskResult struct {
	Status               types.DistributionStatus
	MarketIssues         []MarketIssue
	TotalPenaltyExposure int64
}
