package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/service/registry"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the jurisdiction reference data configuration.
// When no config file is given the compiled-in legal dataset is used;
// a config file extends it, overriding builtin entries with the same
// code.
type AppConfig struct {
	path string

	Jurisdictions []Jurisdiction `toml:"jurisdiction"`
}

// Jurisdiction is one jurisdiction profile entry in the TOML file
type Jurisdiction struct {
	Code          string     `toml:"code"`
	Name          string     `toml:"name"`
	Kind          string     `toml:"kind"`
	Legislation   string     `toml:"legislation"`
	LawCategories []string   `toml:"law_categories"`
	Enforcement   string     `toml:"enforcement"`
	Multiplier    float64    `toml:"multiplier"`
	Penalties     []Penalty  `toml:"penalty"`
	EffectiveDate *time.Time `toml:"effective_date"`
}

// Penalty is one penalty schedule entry of a jurisdiction
type Penalty struct {
	Category     string `toml:"category"`
	Text         string `toml:"text"`
	EstimatedMax int64  `toml:"estimated_max"`
}

// Validate checks if the Jurisdiction entry is valid
func (j *Jurisdiction) Validate() error {
	code := types.JurisdictionCode(j.Code)
	if err := code.Validate(); err != nil {
		return goerr.Wrap(err, "invalid jurisdiction code")
	}
	if j.Name == "" {
		return goerr.Wrap(ErrMissingName, "jurisdiction name is required", goerr.V("code", j.Code))
	}
	if kind := types.JurisdictionKind(j.Kind); !kind.IsValid() {
		return goerr.Wrap(ErrInvalidJurisdictionKind, "unknown kind", goerr.V("code", j.Code), goerr.V("kind", j.Kind))
	}
	if j.Legislation != "" {
		if _, err := types.ParseLegislationStatus(j.Legislation); err != nil {
			return goerr.Wrap(err, "invalid legislation status", goerr.V("code", j.Code))
		}
	}
	if _, err := types.ParseEnforcement(j.Enforcement); err != nil {
		return goerr.Wrap(err, "invalid enforcement intensity", goerr.V("code", j.Code))
	}
	if j.Multiplier < 0 {
		return goerr.Wrap(ErrInvalidConfig, "multiplier must not be negative", goerr.V("code", j.Code))
	}
	for _, cat := range j.LawCategories {
		if !types.LawCategory(cat).IsValid() {
			return goerr.Wrap(ErrInvalidConfig, "invalid law category", goerr.V("code", j.Code), goerr.V("category", cat))
		}
	}
	for _, pen := range j.Penalties {
		if !types.LawCategory(pen.Category).IsValid() {
			return goerr.Wrap(ErrInvalidConfig, "invalid penalty category", goerr.V("code", j.Code), goerr.V("category", pen.Category))
		}
		if pen.EstimatedMax < 0 {
			return goerr.Wrap(ErrInvalidConfig, "penalty estimate must not be negative", goerr.V("code", j.Code), goerr.V("category", pen.Category))
		}
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	codes := make(map[string]bool)
	for _, j := range a.Jurisdictions {
		if err := j.Validate(); err != nil {
			return goerr.Wrap(err, "invalid jurisdiction entry")
		}
		if codes[j.Code] {
			return goerr.Wrap(ErrDuplicateJurisdiction, "duplicate jurisdiction code", goerr.V("code", j.Code))
		}
		codes[j.Code] = true
	}
	return nil
}

// Flags returns CLI flags for reference data configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Jurisdiction reference data file (TOML). Extends the builtin dataset.",
			Sources:     cli.EnvVars("RIGHTSGRID_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure loads the jurisdiction registry: builtin dataset plus any
// configured overrides
func (a *AppConfig) Configure() (*registry.Registry, error) {
	if a.path == "" {
		return registry.Default(), nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", a.path))
	}

	if err := toml.Unmarshal(data, a); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", a.path))
	}

	if err := a.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", a.path))
	}

	reg, err := registry.New(a.mergedProfiles())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build jurisdiction registry", goerr.V("path", a.path))
	}
	return reg, nil
}

// mergedProfiles overlays configured entries onto the builtin dataset,
// keyed by jurisdiction code
func (a *AppConfig) mergedProfiles() []*model.JurisdictionProfile {
	configured := make(map[types.JurisdictionCode]bool, len(a.Jurisdictions))
	var profiles []*model.JurisdictionProfile

	for _, j := range a.Jurisdictions {
		p := j.toProfile()
		configured[p.Code] = true
		profiles = append(profiles, p)
	}
	for _, p := range registry.DefaultProfiles() {
		if !configured[p.Code] {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

func (j *Jurisdiction) toProfile() *model.JurisdictionProfile {
	p := &model.JurisdictionProfile{
		Code:          types.JurisdictionCode(j.Code),
		Name:          j.Name,
		Kind:          types.JurisdictionKind(j.Kind),
		Legislation:   types.LegislationStatus(j.Legislation).Normalize(),
		Enforcement:   types.Enforcement(j.Enforcement),
		Multiplier:    j.Multiplier,
		EffectiveDate: j.EffectiveDate,
	}
	for _, cat := range j.LawCategories {
		p.LawCategories = append(p.LawCategories, types.LawCategory(cat))
	}
	for _, pen := range j.Penalties {
		p.Penalties = append(p.Penalties, model.Penalty{
			Category:     types.LawCategory(pen.Category),
			Text:         pen.Text,
			EstimatedMax: pen.EstimatedMax,
		})
	}
	return p
}
