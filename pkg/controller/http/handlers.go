package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/service/scoring"
	"github.com/rightsgrid/rightsgrid/pkg/usecase"
	"github.com/rightsgrid/rightsgrid/pkg/utils/errutil"
)

// statusForError maps domain errors onto HTTP status codes. Validation
// failures become 400, missing records 404, everything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrModelScoreNotFound),
		errors.Is(err, usecase.ErrFactorNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDuplicateModelID):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidJurisdictionCode),
		errors.Is(err, scoring.ErrNoJurisdictions),
		errors.Is(err, scoring.ErrInvalidLimit),
		errors.Is(err, scoring.ErrInvalidBaseRate),
		errors.Is(err, scoring.ErrInvalidScore),
		errors.Is(err, scoring.ErrUnknownJurisdiction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	return nil
}

type assetRequest struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	AIMethod             string          `json:"aiMethod"`
	ContentType          string          `json:"contentType"`
	CreatorIDs           []string        `json:"creatorIds"`
	TalentRightsVerified bool            `json:"talentRightsVerified"`
	DisclosureLabeled    bool            `json:"disclosureLabeled"`
	PlatformCompliance   map[string]bool `json:"platformCompliance"`
}

type distributionRequest struct {
	PrimaryUse string     `json:"primaryUse"`
	USStates   []string   `json:"usStates"`
	Countries  []string   `json:"countries"`
	Platforms  []string   `json:"platforms"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
}

type marketIssueResponse struct {
	Market    string `json:"market"`
	RiskLevel string `json:"riskLevel"`
	Needed    string `json:"needed"`
}

type distributionRiskResponse struct {
	Status               string                `json:"status"`
	MarketIssues         []marketIssueResponse `json:"marketIssues"`
	TotalPenaltyExposure int64                 `json:"totalPenaltyExposure"`
}

// distributionRiskHandler evaluates one asset against one campaign's
// distribution scope
func distributionRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Asset        assetRequest        `json:"asset"`
		Distribution distributionRequest `json:"distribution"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		asset := &model.Asset{
			ID:                   req.Asset.ID,
			Name:                 req.Asset.Name,
			AIMethod:             req.Asset.AIMethod,
			ContentType:          req.Asset.ContentType,
			CreatorIDs:           req.Asset.CreatorIDs,
			TalentRightsVerified: req.Asset.TalentRightsVerified,
			DisclosureLabeled:    req.Asset.DisclosureLabeled,
			PlatformCompliance:   req.Asset.PlatformCompliance,
		}
		dist := &model.ProjectDistribution{
			PrimaryUse: req.Distribution.PrimaryUse,
			USStates:   req.Distribution.USStates,
			Countries:  req.Distribution.Countries,
			Platforms:  req.Distribution.Platforms,
			StartDate:  req.Distribution.StartDate,
			EndDate:    req.Distribution.EndDate,
		}

		result := uc.Distribution.EvaluateAsset(r.Context(), asset, dist)

		resp := distributionRiskResponse{
			Status:               result.Status.String(),
			MarketIssues:         make([]marketIssueResponse, 0, len(result.MarketIssues)),
			TotalPenaltyExposure: result.TotalPenaltyExposure,
		}
		for _, issue := range result.MarketIssues {
			resp.MarketIssues = append(resp.MarketIssues, marketIssueResponse{
				Market:    issue.Market.String(),
				RiskLevel: issue.RiskLevel.String(),
				Needed:    issue.Needed,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// jurisdictionRiskHandler aggregates campaign risk across jurisdictions
func jurisdictionRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Jurisdictions []string `json:"jurisdictions"`
		ContentType   string   `json:"contentType"`
	}
	type response struct {
		Jurisdictions           []string `json:"jurisdictions"`
		ContentType             string   `json:"contentType"`
		CombinedPenaltyExposure string   `json:"combinedPenaltyExposure"`
		RecommendedMultiplier   float64  `json:"recommendedMultiplier"`
		RiskLevel               string   `json:"riskLevel"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		result, err := uc.Distribution.AggregateJurisdictions(r.Context(), req.Jurisdictions, req.ContentType)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}

		resp := response{
			Jurisdictions:           make([]string, 0, len(result.Jurisdictions)),
			ContentType:             result.ContentType,
			CombinedPenaltyExposure: result.CombinedPenaltyExposure,
			RecommendedMultiplier:   result.RecommendedMultiplier,
			RiskLevel:               result.RiskLevel.String(),
		}
		for _, code := range result.Jurisdictions {
			resp.Jurisdictions = append(resp.Jurisdictions, code.String())
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

type riskFactorResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Category             string  `json:"category"`
	Weight               float64 `json:"weight"`
	ScoreImpact          int     `json:"scoreImpact"`
	Status               string  `json:"status"`
	Detail               string  `json:"detail,omitempty"`
	RemediationAction    string  `json:"remediationAction,omitempty"`
	EstimatedImprovement int     `json:"estimatedImprovement"`
}

type jurisdictionImpactResponse struct {
	Jurisdiction     string  `json:"jurisdiction"`
	LawType          string  `json:"lawType"`
	ComplianceStatus string  `json:"complianceStatus"`
	ScorePenalty     int     `json:"scorePenalty"`
	MultiplierImpact float64 `json:"multiplierImpact"`
}

type scoreChangeResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	OldScore    int       `json:"oldScore"`
	NewScore    int       `json:"newScore"`
	Reason      string    `json:"reason"`
	TriggeredBy string    `json:"triggeredBy"`
}

type modelScoreResponse struct {
	ModelID             string                       `json:"modelId"`
	Name                string                       `json:"name"`
	Vendor              string                       `json:"vendor"`
	BaseScore           int                          `json:"baseScore"`
	NYAdjustment        int                          `json:"nyAdjustment"`
	FinalMRS            int                          `json:"finalMRS"`
	RiskClass           string                       `json:"riskClass"`
	PremiumMultiplier   float64                      `json:"premiumMultiplier"`
	DeductiblePct       *float64                     `json:"deductiblePct"`
	MaxCapacityPct      float64                      `json:"maxCapacityPct"`
	RiskFactors         []riskFactorResponse         `json:"riskFactors"`
	JurisdictionImpacts []jurisdictionImpactResponse `json:"jurisdictionImpacts"`
	ScoreHistory        []scoreChangeResponse        `json:"scoreHistory,omitempty"`
	AffectedContractIDs []string                     `json:"affectedContractIds,omitempty"`
	CreatedAt           time.Time                    `json:"createdAt"`
	UpdatedAt           time.Time                    `json:"updatedAt"`
}

func toModelScoreResponse(m *model.ModelRiskScore) modelScoreResponse {
	resp := modelScoreResponse{
		ModelID:             m.ModelID,
		Name:                m.Name,
		Vendor:              m.Vendor,
		BaseScore:           m.BaseScore,
		NYAdjustment:        m.NYAdjustment,
		FinalMRS:            m.FinalMRS,
		RiskClass:           m.RiskClass.String(),
		PremiumMultiplier:   m.PremiumMultiplier,
		DeductiblePct:       m.DeductiblePct,
		MaxCapacityPct:      m.MaxCapacityPct,
		RiskFactors:         make([]riskFactorResponse, 0, len(m.RiskFactors)),
		JurisdictionImpacts: make([]jurisdictionImpactResponse, 0, len(m.JurisdictionImpacts)),
		AffectedContractIDs: m.AffectedContractIDs,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	for _, f := range m.RiskFactors {
		resp.RiskFactors = append(resp.RiskFactors, riskFactorResponse{
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
	for _, ji := range m.JurisdictionImpacts {
		resp.JurisdictionImpacts = append(resp.JurisdictionImpacts, jurisdictionImpactResponse{
			Jurisdiction:     ji.Jurisdiction.String(),
			LawType:          ji.LawType.String(),
			ComplianceStatus: ji.ComplianceStatus.String(),
			ScorePenalty:     ji.ScorePenalty,
			MultiplierImpact: ji.MultiplierImpact,
		})
	}
	for _, c := range m.ScoreHistory {
		resp.ScoreHistory = append(resp.ScoreHistory, scoreChangeResponse{
			ID:          c.ID,
			Date:        c.Date,
			OldScore:    c.OldScore,
			NewScore:    c.NewScore,
			Reason:      c.Reason,
			TriggeredBy: c.TriggeredBy,
		})
	}
	return resp
}

func listModelsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Models []modelScoreResponse `json:"models"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		scores, err := uc.Score.ListModelScores(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}

		resp := response{Models: make([]modelScoreResponse, 0, len(scores))}
		for _, m := range scores {
			resp.Models = append(resp.Models, toModelScoreResponse(m))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// registerModelHandler registers a new model risk score. Derived fields
// in the request body are ignored; the engine recomputes them.
func registerModelHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		ModelID             string                       `json:"modelId"`
		Name                string                       `json:"name"`
		Vendor              string                       `json:"vendor"`
		BaseScore           int                          `json:"baseScore"`
		RiskFactors         []riskFactorResponse         `json:"riskFactors"`
		JurisdictionImpacts []jurisdictionImpactResponse `json:"jurisdictionImpacts"`
		AffectedContractIDs []string                     `json:"affectedContractIds"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		score := &model.ModelRiskScore{
			ModelID:             req.ModelID,
			Name:                req.Name,
			Vendor:              req.Vendor,
			BaseScore:           req.BaseScore,
			AffectedContractIDs: req.AffectedContractIDs,
		}
		for _, f := range req.RiskFactors {
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
		for _, ji := range req.JurisdictionImpacts {
			score.JurisdictionImpacts = append(score.JurisdictionImpacts, model.JurisdictionImpact{
				Jurisdiction:     types.JurisdictionCode(ji.Jurisdiction),
				LawType:          types.LawCategory(ji.LawType),
				ComplianceStatus: types.ComplianceStatus(ji.ComplianceStatus),
				ScorePenalty:     ji.ScorePenalty,
				MultiplierImpact: ji.MultiplierImpact,
			})
		}

		created, err := uc.Score.RegisterModelScore(r.Context(), score)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrDuplicateModelID) {
				status = http.StatusConflict
			}
			errutil.HandleHTTP(r.Context(), w, err, status)
			return
		}
		respondJSON(w, http.StatusCreated, toModelScoreResponse(created))
	}
}

func getModelHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modelID := chi.URLParam(r, "modelID")

		score, err := uc.Score.GetModelScore(r.Context(), modelID)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, http.StatusOK, toModelScoreResponse(score))
	}
}

func explainabilityHandler(uc *usecase.UseCases) http.HandlerFunc {
	type remediationItemResponse struct {
		Priority             int    `json:"priority"`
		Action               string `json:"action"`
		EstimatedImprovement int    `json:"estimatedImprovement"`
		Effort               string `json:"effort"`
	}
	type response struct {
		ModelID            string                    `json:"modelId"`
		FinalMRS           int                       `json:"finalMRS"`
		RemediationRoadmap []remediationItemResponse `json:"remediationRoadmap"`
		ProjectedMRS       int                       `json:"projectedMRS"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		modelID := chi.URLParam(r, "modelID")

		exp, err := uc.Score.GetExplainability(r.Context(), modelID)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}

		resp := response{
			ModelID:            exp.ModelID,
			FinalMRS:           exp.FinalMRS,
			RemediationRoadmap: make([]remediationItemResponse, 0, len(exp.RemediationRoadmap)),
			ProjectedMRS:       exp.ProjectedMRS,
		}
		for _, item := range exp.RemediationRoadmap {
			resp.RemediationRoadmap = append(resp.RemediationRoadmap, remediationItemResponse{
				Priority:             item.Priority,
				Action:               item.Action,
				EstimatedImprovement: item.EstimatedImprovement,
				Effort:               item.Effort.String(),
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func updateFactorHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Status      string `json:"status"`
		TriggeredBy string `json:"triggeredBy"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		modelID := chi.URLParam(r, "modelID")
		factorID := chi.URLParam(r, "factorID")

		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		status, err := types.ParseFactorStatus(req.Status)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid factor status"), http.StatusBadRequest)
			return
		}

		updated, err := uc.Score.UpdateFactorStatus(r.Context(), modelID, factorID, status, req.TriggeredBy)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, http.StatusOK, toModelScoreResponse(updated))
	}
}

func premiumHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Limit        float64 `json:"limit"`
		BaseRatePct  float64 `json:"baseRatePct"`
		Jurisdiction string  `json:"jurisdiction"`
		MRS          int     `json:"mrs"`
	}
	type response struct {
		Premium     float64  `json:"premium"`
		Deductible  *float64 `json:"deductible"`
		MaxCapacity float64  `json:"maxCapacity"`
		RiskClass   string   `json:"riskClass"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		calc, err := uc.Premium.Quote(r.Context(), req.Limit, req.BaseRatePct, req.Jurisdiction, req.MRS)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}

		respondJSON(w, http.StatusOK, response{
			Premium:     calc.Premium,
			Deductible:  calc.Deductible,
			MaxCapacity: calc.MaxCapacity,
			RiskClass:   calc.RiskClass.String(),
		})
	}
}

type penaltyResponse struct {
	Category     string `json:"category"`
	Text         string `json:"text"`
	EstimatedMax int64  `json:"estimatedMax"`
}

type jurisdictionResponse struct {
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	Kind          string            `json:"kind"`
	Legislation   string            `json:"legislation"`
	LawCategories []string          `json:"lawCategories"`
	Enforcement   string            `json:"enforcement"`
	Multiplier    float64           `json:"multiplier"`
	Penalties     []penaltyResponse `json:"penalties,omitempty"`
	EffectiveDate *time.Time        `json:"effectiveDate,omitempty"`
}

func toJurisdictionResponse(p *model.JurisdictionProfile) jurisdictionResponse {
	resp := jurisdictionResponse{
		Code:          p.Code.String(),
		Name:          p.Name,
		Kind:          p.Kind.String(),
		Legislation:   p.Legislation.Normalize().String(),
		LawCategories: make([]string, 0, len(p.LawCategories)),
		Enforcement:   p.Enforcement.String(),
		Multiplier:    p.Multiplier,
		EffectiveDate: p.EffectiveDate,
	}
	for _, cat := range p.LawCategories {
		resp.LawCategories = append(resp.LawCategories, cat.String())
	}
	for _, pen := range p.Penalties {
		resp.Penalties = append(resp.Penalties, penaltyResponse{
			Category:     pen.Category.String(),
			Text:         pen.Text,
			EstimatedMax: pen.EstimatedMax,
		})
	}
	return resp
}

// listJurisdictionsHandler serves the jurisdiction registry, optionally
// filtered with ?kind=state or ?kind=country
func listJurisdictionsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Jurisdictions []jurisdictionResponse `json:"jurisdictions"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		registry := uc.Registry()

		var profiles []*model.JurisdictionProfile
		switch kind := r.URL.Query().Get("kind"); kind {
		case "":
			profiles = append(profiles, registry.States()...)
			profiles = append(profiles, registry.Countries()...)
		case string(types.JurisdictionKindState):
			profiles = registry.States()
		case string(types.JurisdictionKindCountry):
			profiles = registry.Countries()
		default:
			errutil.HandleHTTP(r.Context(), w, goerr.New("unknown jurisdiction kind", goerr.V("kind", kind)), http.StatusBadRequest)
			return
		}

		resp := response{Jurisdictions: make([]jurisdictionResponse, 0, len(profiles))}
		for _, p := range profiles {
			resp.Jurisdictions = append(resp.Jurisdictions, toJurisdictionResponse(p))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func getJurisdictionHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := types.JurisdictionCode(chi.URLParam(r, "code"))
		if err := code.Validate(); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		profile, ok := uc.Registry().Jurisdiction(code)
		if !ok {
			errutil.HandleHTTP(r.Context(), w, goerr.New("jurisdiction not found", goerr.V("code", code)), http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, toJurisdictionResponse(profile))
	}
}
