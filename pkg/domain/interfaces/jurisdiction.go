package interfaces

import (
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// JurisdictionSource is the read-only jurisdiction reference data a
// computation runs against. One computation must observe a single
// snapshot; implementations are immutable after construction so callers
// can share one instance across concurrent evaluations.
type JurisdictionSource interface {
	// Jurisdiction looks up a profile by code. A missing code is not an
	// error: callers must treat it as "no jurisdiction-specific rule".
	Jurisdiction(code types.JurisdictionCode) (*model.JurisdictionProfile, bool)

	// States returns all supported US state profiles, ordered by code.
	// This list defines the expansion of the "ALL" sentinel.
	States() []*model.JurisdictionProfile

	// Countries returns all supported international market profiles,
	// ordered by code
	Countries() []*model.JurisdictionProfile
}
