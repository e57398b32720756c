package types

import "fmt"

// IssueLevel represents the severity of a single market issue
type IssueLevel string

const (
	IssueLevelLow     IssueLevel = "low"
	IssueLevelMedium  IssueLevel = "medium"
	IssueLevelHigh    IssueLevel = "high"
	IssueLevelBlocked IssueLevel = "blocked"
)

// IsValid checks if the issue level is valid
func (l IssueLevel) IsValid() bool {
	switch l {
	case IssueLevelLow, IssueLevelMedium, IssueLevelHigh, IssueLevelBlocked:
		return true
	default:
		return false
	}
}

// Rank returns a numeric rank for severity comparisons
func (l IssueLevel) Rank() int {
	switch l {
	case IssueLevelLow:
		return 1
	case IssueLevelMedium:
		return 2
	case IssueLevelHigh:
		return 3
	case IssueLevelBlocked:
		return 4
	default:
		return 0
	}
}

// String returns the string representation of the issue level
func (l IssueLevel) String() string {
	return string(l)
}

// DistributionStatus represents the overall compliance status of one
// asset against one distribution scope
type DistributionStatus string

const (
	DistributionClear       DistributionStatus = "clear"
	DistributionNeedsReview DistributionStatus = "needs_review"
	DistributionBlocked     DistributionStatus = "blocked"
)

// IsValid checks if the distribution status is valid
func (s DistributionStatus) IsValid() bool {
	switch s {
	case DistributionClear, DistributionNeedsReview, DistributionBlocked:
		return true
	default:
		return false
	}
}

// String returns the string representation of the distribution status
func (s DistributionStatus) String() string {
	return string(s)
}

// RiskClass represents an insurance-grade risk classification derived
// from a Model Risk Score or an aggregated jurisdiction multiplier
type RiskClass string

const (
	RiskClassLow      RiskClass = "Low"
	RiskClassModerate RiskClass = "Moderate"
	RiskClassGuarded  RiskClass = "Guarded"
	RiskClassElevated RiskClass = "Elevated"
	RiskClassSevere   RiskClass = "Severe"
	RiskClassCritical RiskClass = "Critical"
)

// AllRiskClasses returns all risk classes ordered from best to worst
func AllRiskClasses() []RiskClass {
	return []RiskClass{
		RiskClassLow,
		RiskClassModerate,
		RiskClassGuarded,
		RiskClassElevated,
		RiskClassSevere,
		RiskClassCritical,
	}
}

// IsValid checks if the risk class is valid
func (c RiskClass) IsValid() bool {
	switch c {
	case RiskClassLow,
		RiskClassModerate,
		RiskClassGuarded,
		RiskClassElevated,
		RiskClassSevere,
		RiskClassCritical:
		return true
	default:
		return false
	}
}

// Rank returns a numeric rank for severity comparisons. Higher means
// worse risk.
func (c RiskClass) Rank() int {
	switch c {
	case RiskClassLow:
		return 1
	case RiskClassModerate:
		return 2
	case RiskClassGuarded:
		return 3
	case RiskClassElevated:
		return 4
	case RiskClassSevere:
		return 5
	case RiskClassCritical:
		return 6
	default:
		return 0
	}
}

// String returns the string representation of the risk class
func (c RiskClass) String() string {
	return string(c)
}

// ParseRiskClass parses a string into a RiskClass
func ParseRiskClass(s string) (RiskClass, error) {
	c := RiskClass(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid risk class: %s", s)
	}
	return c, nil
}
