package types

import (
	"fmt"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// JurisdictionCode identifies a jurisdiction in the registry. US states use
// two-letter postal codes ("CA", "NY"), countries use three-letter codes
// ("GBR", "DEU") so that California and Canada never collide.
type JurisdictionCode string

var codePattern = regexp.MustCompile(`^[A-Z]{2,3}$`)

// Validate checks if the JurisdictionCode is well-formed
func (c JurisdictionCode) Validate() error {
	if c == "" {
		return goerr.New("jurisdiction code cannot be empty")
	}
	if !codePattern.MatchString(string(c)) {
		return goerr.New("jurisdiction code must be 2-3 uppercase letters", goerr.V("code", c))
	}
	return nil
}

// String returns the string representation of JurisdictionCode
func (c JurisdictionCode) String() string {
	return string(c)
}

// JurisdictionKind distinguishes US states from international markets
type JurisdictionKind string

const (
	JurisdictionKindState   JurisdictionKind = "state"
	JurisdictionKindCountry JurisdictionKind = "country"
)

// IsValid checks if the jurisdiction kind is valid
func (k JurisdictionKind) IsValid() bool {
	switch k {
	case JurisdictionKindState, JurisdictionKindCountry:
		return true
	default:
		return false
	}
}

// String returns the string representation of the jurisdiction kind
func (k JurisdictionKind) String() string {
	return string(k)
}

// LegislationStatus represents how far AI-likeness legislation has
// progressed in a jurisdiction
type LegislationStatus string

const (
	LegislationNone        LegislationStatus = "NONE"
	LegislationProposed    LegislationStatus = "PROPOSED"
	LegislationInCommittee LegislationStatus = "IN_COMMITTEE"
	LegislationEnacted     LegislationStatus = "ENACTED"
)

// AllLegislationStatuses returns all valid legislation statuses
func AllLegislationStatuses() []LegislationStatus {
	return []LegislationStatus{
		LegislationNone,
		LegislationProposed,
		LegislationInCommittee,
		LegislationEnacted,
	}
}

// IsValid checks if the legislation status is valid
func (s LegislationStatus) IsValid() bool {
	switch s {
	case LegislationNone,
		LegislationProposed,
		LegislationInCommittee,
		LegislationEnacted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as LegislationNone
func (s LegislationStatus) Normalize() LegislationStatus {
	if s == "" {
		return LegislationNone
	}
	return s
}

// String returns the string representation of the legislation status
func (s LegislationStatus) String() string {
	return string(s)
}

// ParseLegislationStatus parses a string into a LegislationStatus
func ParseLegislationStatus(s string) (LegislationStatus, error) {
	status := LegislationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid legislation status: %s", s)
	}
	return status, nil
}

// Enforcement represents how aggressively a jurisdiction enforces its
// AI-likeness laws
type Enforcement string

const (
	EnforcementNone     Enforcement = "none"
	EnforcementLow      Enforcement = "low"
	EnforcementMedium   Enforcement = "medium"
	EnforcementHigh     Enforcement = "high"
	EnforcementVeryHigh Enforcement = "very_high"
)

// AllEnforcements returns all valid enforcement intensities
func AllEnforcements() []Enforcement {
	return []Enforcement{
		EnforcementNone,
		EnforcementLow,
		EnforcementMedium,
		EnforcementHigh,
		EnforcementVeryHigh,
	}
}

// IsValid checks if the enforcement intensity is valid
func (e Enforcement) IsValid() bool {
	switch e {
	case EnforcementNone,
		EnforcementLow,
		EnforcementMedium,
		EnforcementHigh,
		EnforcementVeryHigh:
		return true
	default:
		return false
	}
}

// Level returns a numeric rank for ordering comparisons. Higher means
// more aggressive enforcement.
func (e Enforcement) Level() int {
	switch e {
	case EnforcementLow:
		return 1
	case EnforcementMedium:
		return 2
	case EnforcementHigh:
		return 3
	case EnforcementVeryHigh:
		return 4
	default:
		return 0
	}
}

// String returns the string representation of the enforcement intensity
func (e Enforcement) String() string {
	return string(e)
}

// ParseEnforcement parses a string into an Enforcement
func ParseEnforcement(s string) (Enforcement, error) {
	e := Enforcement(s)
	if !e.IsValid() {
		return "", fmt.Errorf("invalid enforcement intensity: %s", s)
	}
	return e, nil
}

// LawCategory represents a category of AI-likeness law tracked per
// jurisdiction
type LawCategory string

const (
	LawAIAdvertising LawCategory = "ai-advertising"
	LawNILRights     LawCategory = "nil-rights"
	LawDeepfake      LawCategory = "deepfake"
)

// AllLawCategories returns all valid law categories
func AllLawCategories() []LawCategory {
	return []LawCategory{
		LawAIAdvertising,
		LawNILRights,
		LawDeepfake,
	}
}

// IsValid checks if the law category is valid
func (c LawCategory) IsValid() bool {
	switch c {
	case LawAIAdvertising, LawNILRights, LawDeepfake:
		return true
	default:
		return false
	}
}

// String returns the string representation of the law category
func (c LawCategory) String() string {
	return string(c)
}
