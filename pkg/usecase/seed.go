package usecase

import (
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// defaultModelScores is the reference dataset of scored AI generation
// tools. Derived fields are recomputed on registration, only the base
// score, factors and jurisdiction impacts matter here.
func defaultModelScores() []*model.ModelRiskScore {
	return []*model.ModelRiskScore{
		{
			ModelID:   "veristyle-v4",
			Name:      "VeriStyle Image v4",
			Vendor:    "VeriStyle AI",
			BaseScore: 92,
			RiskFactors: []model.RiskFactor{
				{
					ID:          "consent-chain",
					Name:        "Talent consent chain verified",
					Category:    types.FactorConsent,
					Weight:      0.9,
					ScoreImpact: 0,
					Status:      types.FactorPass,
					Detail:      "All likeness sources covered by signed NIL releases",
				},
				{
					ID:                   "c2pa-manifest",
					Name:                 "C2PA provenance manifest",
					Category:             types.FactorProvenance,
					Weight:               0.6,
					ScoreImpact:          -4,
					Status:               types.FactorWarning,
					Detail:               "Manifests emitted but not yet anchored to a trust list",
					RemediationAction:    "Register signing certificate with the C2PA trust list",
					EstimatedImprovement: 4,
				},
			},
			JurisdictionImpacts: []model.JurisdictionImpact{
				{
					Jurisdiction:     types.JurisdictionCode("CA"),
					LawType:          types.LawAIAdvertising,
					ComplianceStatus: types.ComplianceCompliant,
					ScorePenalty:     0,
					MultiplierImpact: 1.0,
				},
			},
			AffectedContractIDs: []string{"CNT-2025-0114"},
		},
		{
			ModelID:   "sonavoice-pro",
			Name:      "SonaVoice Pro",
			Vendor:    "Resona Labs",
			BaseScore: 84,
			RiskFactors: []model.RiskFactor{
				{
					ID:                   "voice-consent",
					Name:                 "Voice talent consent records",
					Category:             types.FactorConsent,
					Weight:               0.85,
					ScoreImpact:          -8,
					Status:               types.FactorFail,
					Detail:               "Legacy voice bank predates the consent workflow",
					RemediationAction:    "Re-paper legacy voice bank with verified consent releases",
					EstimatedImprovement: 8,
				},
				{
					ID:          "disclosure-tagging",
					Name:        "Synthetic audio disclosure tagging",
					Category:    types.FactorRegulatory,
					Weight:      0.5,
					ScoreImpact: 0,
					Status:      types.FactorPass,
					Detail:      "Outputs carry machine-readable synthetic markers",
				},
				{
					ID:                   "watermark-robustness",
					Name:                 "Watermark survives transcoding",
					Category:             types.FactorTechnical,
					Weight:               0.4,
					ScoreImpact:          -3,
					Status:               types.FactorWarning,
					Detail:               "Watermark stripped by aggressive re-encoding",
					RemediationAction:    "Upgrade to the frequency-domain watermarking pipeline",
					EstimatedImprovement: 3,
				},
			},
			JurisdictionImpacts: []model.JurisdictionImpact{
				{
					Jurisdiction:     types.JurisdictionCode("NY"),
					LawType:          types.LawNILRights,
					ComplianceStatus: types.CompliancePartial,
					ScorePenalty:     -5,
					MultiplierImpact: 1.2,
				},
				{
					Jurisdiction:     types.JurisdictionCode("TN"),
					LawType:          types.LawNILRights,
					ComplianceStatus: types.CompliancePartial,
					ScorePenalty:     0,
					MultiplierImpact: 1.1,
				},
			},
			AffectedContractIDs: []string{"CNT-2025-0088", "CNT-2025-0121"},
		},
		{
			ModelID:   "framewright-motion",
			Name:      "FrameWright Motion",
			Vendor:    "FrameWright",
			BaseScore: 71,
			RiskFactors: []model.RiskFactor{
				{
					ID:                   "training-data-audit",
					Name:                 "Training data rights audit",
					Category:             types.FactorProvenance,
					Weight:               0.8,
					ScoreImpact:          -10,
					Status:               types.FactorFail,
					Detail:               "Third-party dataset licenses unverified",
					RemediationAction:    "Complete rights audit of licensed training datasets",
					EstimatedImprovement: 10,
				},
				{
					ID:                   "deepfake-screening",
					Name:                 "Deepfake misuse screening",
					Category:             types.FactorOperational,
					Weight:               0.55,
					ScoreImpact:          -6,
					Status:               types.FactorWarning,
					Detail:               "Manual review only, no automated likeness matching",
					RemediationAction:    "Deploy automated likeness matching against opt-out registry",
					EstimatedImprovement: 5,
				},
				{
					ID:          "output-logging",
					Name:        "Generation audit logging",
					Category:    types.FactorOperational,
					Weight:      0.3,
					ScoreImpact: 0,
					Status:      types.FactorPass,
					Detail:      "Per-generation prompts and outputs retained 24 months",
				},
			},
			JurisdictionImpacts: []model.JurisdictionImpact{
				{
					Jurisdiction:     types.JurisdictionCode("NY"),
					LawType:          types.LawAIAdvertising,
					ComplianceStatus: types.ComplianceNonCompliant,
					ScorePenalty:     -7,
					MultiplierImpact: 1.4,
				},
				{
					Jurisdiction:     types.JurisdictionCode("CA"),
					LawType:          types.LawDeepfake,
					ComplianceStatus: types.CompliancePartial,
					ScorePenalty:     0,
					MultiplierImpact: 1.25,
				},
			},
			AffectedContractIDs: []string{"CNT-2025-0102"},
		},
		{
			ModelID:   "adcopy-lm",
			Name:      "AdCopy LM",
			Vendor:    "Brightline AI",
			BaseScore: 96,
			RiskFactors: []model.RiskFactor{
				{
					ID:          "text-only-scope",
					Name:        "No likeness generation capability",
					Category:    types.FactorTechnical,
					Weight:      0.2,
					ScoreImpact: 0,
					Status:      types.FactorPass,
					Detail:      "Text-only model, likeness laws attach via usage not output",
				},
			},
		},
	}
}
