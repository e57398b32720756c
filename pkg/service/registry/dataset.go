package registry

import (
	"time"

	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// DefaultProfiles returns a fresh copy of the compiled-in legal dataset
// so callers can overlay their own entries before building a registry
func DefaultProfiles() []*model.JurisdictionProfile {
	return defaultProfiles()
}

// defaultProfiles is the compiled-in legal dataset. Operators can extend
// or override it with a jurisdiction TOML file; the engine itself never
// mutates it. Penalty estimates are per-campaign exposure ceilings agreed
// with the legal team, not statutory maxima.
func defaultProfiles() []*model.JurisdictionProfile {
	return []*model.JurisdictionProfile{
		// US states
		{
			Code:          "CA",
			Name:          "California",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawAIAdvertising, types.LawNILRights, types.LawDeepfake},
			Enforcement:   types.EnforcementVeryHigh,
			Multiplier:    2.0,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "AB 2602 / Civ. Code §3344: statutory damages plus profits per unlabeled AI ad", EstimatedMax: 250_000},
				{Category: types.LawNILRights, Text: "Right of publicity: actual damages, profits and punitive exposure", EstimatedMax: 750_000},
				{Category: types.LawDeepfake, Text: "AB 602: private action per non-consensual synthetic likeness", EstimatedMax: 150_000},
			},
			EffectiveDate: date(2025, time.January, 1),
		},
		{
			Code:          "NY",
			Name:          "New York",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawAIAdvertising, types.LawNILRights},
			Enforcement:   types.EnforcementHigh,
			Multiplier:    1.8,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "S7676B: synthetic performer disclosure in commercial content", EstimatedMax: 200_000},
				{Category: types.LawNILRights, Text: "Civil Rights Law §§50-51: injunction plus compensatory damages", EstimatedMax: 500_000},
			},
			EffectiveDate: date(2024, time.June, 5),
		},
		{
			Code:          "TX",
			Name:          "Texas",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawAIAdvertising, types.LawDeepfake},
			Enforcement:   types.EnforcementHigh,
			Multiplier:    1.6,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "SB 751-derived disclosure duty for synthetic political/commercial media", EstimatedMax: 125_000},
				{Category: types.LawDeepfake, Text: "Criminal referral plus civil exposure per deceptive deepfake", EstimatedMax: 100_000},
			},
		},
		{
			Code:          "FL",
			Name:          "Florida",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationProposed,
			LawCategories: []types.LawCategory{types.LawNILRights},
			Enforcement:   types.EnforcementMedium,
			Multiplier:    1.3,
			Penalties: []model.Penalty{
				{Category: types.LawNILRights, Text: "§540.08 unauthorized publication of likeness", EstimatedMax: 300_000},
			},
		},
		{
			Code:          "IL",
			Name:          "Illinois",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawNILRights},
			Enforcement:   types.EnforcementMedium,
			Multiplier:    1.4,
			Penalties: []model.Penalty{
				{Category: types.LawNILRights, Text: "Right of Publicity Act (765 ILCS 1075): $1,000 minimum per violation", EstimatedMax: 350_000},
			},
		},
		{
			Code:          "WA",
			Name:          "Washington",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawDeepfake},
			Enforcement:   types.EnforcementMedium,
			Multiplier:    1.35,
			Penalties: []model.Penalty{
				{Category: types.LawDeepfake, Text: "HB 1999: civil action for synthetic intimate/deceptive media", EstimatedMax: 90_000},
			},
		},
		{
			Code:          "TN",
			Name:          "Tennessee",
			Kind:          types.JurisdictionKindState,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawNILRights},
			Enforcement:   types.EnforcementHigh,
			Multiplier:    1.7,
			Penalties: []model.Penalty{
				{Category: types.LawNILRights, Text: "ELVIS Act: voice and likeness protection against AI simulation", EstimatedMax: 450_000},
			},
			EffectiveDate: date(2024, time.July, 1),
		},

		// International markets
		{
			Code:          "GBR",
			Name:          "United Kingdom",
			Kind:          types.JurisdictionKindCountry,
			Legislation:   types.LegislationProposed,
			LawCategories: []types.LawCategory{types.LawAIAdvertising},
			Enforcement:   types.EnforcementMedium,
			Multiplier:    1.25,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "ASA/CAP code enforcement on undisclosed synthetic media", EstimatedMax: 120_000},
			},
		},
		{
			Code:          "DEU",
			Name:          "Germany",
			Kind:          types.JurisdictionKindCountry,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawAIAdvertising, types.LawDeepfake},
			Enforcement:   types.EnforcementHigh,
			Multiplier:    1.6,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "EU AI Act Art. 50 transparency obligations for synthetic content", EstimatedMax: 400_000},
				{Category: types.LawDeepfake, Text: "EU AI Act deepfake labeling plus KUG likeness claims", EstimatedMax: 250_000},
			},
			EffectiveDate: date(2025, time.August, 2),
		},
		{
			Code:          "FRA",
			Name:          "France",
			Kind:          types.JurisdictionKindCountry,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawAIAdvertising, types.LawDeepfake},
			Enforcement:   types.EnforcementHigh,
			Multiplier:    1.55,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "EU AI Act transparency plus Code civil image rights", EstimatedMax: 380_000},
				{Category: types.LawDeepfake, Text: "SREN law: criminal exposure for non-consensual deepfakes", EstimatedMax: 220_000},
			},
			EffectiveDate: date(2025, time.August, 2),
		},
		{
			Code:          "CAN",
			Name:          "Canada",
			Kind:          types.JurisdictionKindCountry,
			Legislation:   types.LegislationInCommittee,
			LawCategories: []types.LawCategory{types.LawAIAdvertising},
			Enforcement:   types.EnforcementMedium,
			Multiplier:    1.2,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "AIDA (Bill C-27) transparency duties, pending", EstimatedMax: 100_000},
			},
		},
		{
			Code:          "AUS",
			Name:          "Australia",
			Kind:          types.JurisdictionKindCountry,
			Legislation:   types.LegislationInCommittee,
			LawCategories: []types.LawCategory{types.LawAIAdvertising},
			Enforcement:   types.EnforcementLow,
			Multiplier:    1.1,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "ACCC misleading conduct exposure for undisclosed AI ads", EstimatedMax: 80_000},
			},
		},
		{
			Code:        "JPN",
			Name:        "Japan",
			Kind:        types.JurisdictionKindCountry,
			Legislation: types.LegislationNone,
			Enforcement: types.EnforcementLow,
			Multiplier:  1.0,
		},
		{
			Code:          "KOR",
			Name:          "South Korea",
			Kind:          types.JurisdictionKindCountry,
			Legislation:   types.LegislationEnacted,
			LawCategories: []types.LawCategory{types.LawDeepfake},
			Enforcement:   types.EnforcementHigh,
			Multiplier:    1.5,
			Penalties: []model.Penalty{
				{Category: types.LawDeepfake, Text: "Information and Communications Network Act deepfake provisions", EstimatedMax: 180_000},
			},
		},
		{
			Code:          "BRA",
			Name:          "Brazil",
			Kind:          types.JurisdictionKindCountry,
			Legislation:   types.LegislationProposed,
			LawCategories: []types.LawCategory{types.LawAIAdvertising},
			Enforcement:   types.EnforcementMedium,
			Multiplier:    1.15,
			Penalties: []model.Penalty{
				{Category: types.LawAIAdvertising, Text: "PL 2338/2023 AI framework, pending", EstimatedMax: 90_000},
			},
		},
	}
}
