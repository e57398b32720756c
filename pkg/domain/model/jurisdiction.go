package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// Penalty describes one jurisdiction's penalty schedule for one law
// category. Text is the human-readable statute summary shown in the
// dashboard; EstimatedMax is the USD ceiling used for exposure totals.
type Penalty struct {
	Category     types.LawCategory
	Text         string
	EstimatedMax int64
}

// JurisdictionProfile is the immutable legal metadata for one US state or
// country. Created by legal-data maintenance, read-only to the engine.
type JurisdictionProfile struct {
	Code          types.JurisdictionCode
	Name          string
	Kind          types.JurisdictionKind
	Legislation   types.LegislationStatus
	LawCategories []types.LawCategory
	Enforcement   types.Enforcement
	Multiplier    float64
	Penalties     []Penalty
	EffectiveDate *time.Time
}

// Validate checks if the JurisdictionProfile is valid
func (p *JurisdictionProfile) Validate() error {
	if err := p.Code.Validate(); err != nil {
		return goerr.Wrap(err, "invalid jurisdiction code")
	}
	if p.Name == "" {
		return goerr.New("jurisdiction name is required", goerr.V("code", p.Code))
	}
	if !p.Kind.IsValid() {
		return goerr.New("invalid jurisdiction kind", goerr.V("code", p.Code), goerr.V("kind", p.Kind))
	}
	if !p.Legislation.Normalize().IsValid() {
		return goerr.New("invalid legislation status", goerr.V("code", p.Code), goerr.V("status", p.Legislation))
	}
	if !p.Enforcement.IsValid() {
		return goerr.New("invalid enforcement intensity", goerr.V("code", p.Code), goerr.V("enforcement", p.Enforcement))
	}
	if p.Multiplier < 0 {
		return goerr.New("multiplier must not be negative", goerr.V("code", p.Code), goerr.V("multiplier", p.Multiplier))
	}
	for _, cat := range p.LawCategories {
		if !cat.IsValid() {
			return goerr.New("invalid law category", goerr.V("code", p.Code), goerr.V("category", cat))
		}
	}
	for _, pen := range p.Penalties {
		if !pen.Category.IsValid() {
			return goerr.New("invalid penalty category", goerr.V("code", p.Code), goerr.V("category", pen.Category))
		}
		if pen.EstimatedMax < 0 {
			return goerr.New("penalty estimate must not be negative", goerr.V("code", p.Code), goerr.V("category", pen.Category))
		}
	}
	return nil
}

// HasCategory reports whether the jurisdiction tracks a law of the given
// category
func (p *JurisdictionProfile) HasCategory(cat types.LawCategory) bool {
	for _, c := range p.LawCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// PenaltyFor returns the penalty schedule entry for a law category
func (p *JurisdictionProfile) PenaltyFor(cat types.LawCategory) (Penalty, bool) {
	for _, pen := range p.Penalties {
		if pen.Category == cat {
			return pen, true
		}
	}
	return Penalty{}, false
}

// EstimatedPenalty returns the USD penalty ceiling for a law category, or
// zero when the jurisdiction has no schedule for it
func (p *JurisdictionProfile) EstimatedPenalty(cat types.LawCategory) int64 {
	pen, ok := p.PenaltyFor(cat)
	if !ok {
		return 0
	}
	return pen.EstimatedMax
}
