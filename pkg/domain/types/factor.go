package types

import "fmt"

// FactorCategory represents the control area a risk factor belongs to
type FactorCategory string

const (
	FactorConsent     FactorCategory = "CONSENT"
	FactorProvenance  FactorCategory = "PROVENANCE"
	FactorRegulatory  FactorCategory = "REGULATORY"
	FactorTechnical   FactorCategory = "TECHNICAL"
	FactorOperational FactorCategory = "OPERATIONAL"
)

// AllFactorCategories returns all valid factor categories
func AllFactorCategories() []FactorCategory {
	return []FactorCategory{
		FactorConsent,
		FactorProvenance,
		FactorRegulatory,
		FactorTechnical,
		FactorOperational,
	}
}

// IsValid checks if the factor category is valid
func (c FactorCategory) IsValid() bool {
	switch c {
	case FactorConsent,
		FactorProvenance,
		FactorRegulatory,
		FactorTechnical,
		FactorOperational:
		return true
	default:
		return false
	}
}

// String returns the string representation of the factor category
func (c FactorCategory) String() string {
	return string(c)
}

// FactorStatus represents whether a risk factor's control is satisfied
type FactorStatus string

const (
	FactorPass    FactorStatus = "PASS"
	FactorWarning FactorStatus = "WARNING"
	FactorFail    FactorStatus = "FAIL"
)

// IsValid checks if the factor status is valid
func (s FactorStatus) IsValid() bool {
	switch s {
	case FactorPass, FactorWarning, FactorFail:
		return true
	default:
		return false
	}
}

// String returns the string representation of the factor status
func (s FactorStatus) String() string {
	return string(s)
}

// ParseFactorStatus parses a string into a FactorStatus
func ParseFactorStatus(s string) (FactorStatus, error) {
	status := FactorStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid factor status: %s", s)
	}
	return status, nil
}

// ComplianceStatus represents per-jurisdiction compliance of a model
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "compliant"
	CompliancePartial      ComplianceStatus = "partial"
	ComplianceNonCompliant ComplianceStatus = "non_compliant"
)

// IsValid checks if the compliance status is valid
func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceCompliant, CompliancePartial, ComplianceNonCompliant:
		return true
	default:
		return false
	}
}

// String returns the string representation of the compliance status
func (s ComplianceStatus) String() string {
	return string(s)
}

// Effort represents the estimated effort of a remediation action
type Effort string

const (
	EffortLow    Effort = "Low"
	EffortMedium Effort = "Medium"
	EffortHigh   Effort = "High"
)

// IsValid checks if the effort is valid
func (e Effort) IsValid() bool {
	switch e {
	case EffortLow, EffortMedium, EffortHigh:
		return true
	default:
		return false
	}
}

// Rank returns a numeric rank for ordering, lower means cheaper to do
func (e Effort) Rank() int {
	switch e {
	case EffortLow:
		return 1
	case EffortMedium:
		return 2
	case EffortHigh:
		return 3
	default:
		return 4
	}
}

// String returns the string representation of the effort
func (e Effort) String() string {
	return string(e)
}
