package registry

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
)

// Registry is an immutable in-memory jurisdiction lookup. Build it once
// at startup and share it: every computation then runs against a single
// consistent snapshot of the legal reference data.
type Registry struct {
	byCode    map[types.JurisdictionCode]*model.JurisdictionProfile
	states    []*model.JurisdictionProfile
	countries []*model.JurisdictionProfile
}

var _ interfaces.JurisdictionSource = &Registry{}

// New builds a registry from jurisdiction profiles. Profiles are
// validated and duplicate codes rejected.
func New(profiles []*model.JurisdictionProfile) (*Registry, error) {
	r := &Registry{
		byCode: make(map[types.JurisdictionCode]*model.JurisdictionProfile, len(profiles)),
	}

	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid jurisdiction profile")
		}
		if _, exists := r.byCode[p.Code]; exists {
			return nil, goerr.New("duplicate jurisdiction code", goerr.V("code", p.Code))
		}

		r.byCode[p.Code] = p
		switch p.Kind {
		case types.JurisdictionKindState:
			r.states = append(r.states, p)
		case types.JurisdictionKindCountry:
			r.countries = append(r.countries, p)
		}
	}

	sort.Slice(r.states, func(i, j int) bool { return r.states[i].Code < r.states[j].Code })
	sort.Slice(r.countries, func(i, j int) bool { return r.countries[i].Code < r.countries[j].Code })

	return r, nil
}

// Default returns a registry built from the compiled-in legal dataset
func Default() *Registry {
	r, err := New(defaultProfiles())
	if err != nil {
		// The builtin dataset is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return r
}

// Jurisdiction looks up a profile by code
func (r *Registry) Jurisdiction(code types.JurisdictionCode) (*model.JurisdictionProfile, bool) {
	p, ok := r.byCode[code]
	return p, ok
}

// States returns all supported US state profiles, ordered by code
func (r *Registry) States() []*model.JurisdictionProfile {
	return r.states
}

// Countries returns all supported international market profiles, ordered
// by code
func (r *Registry) Countries() []*model.JurisdictionProfile {
	return r.countries
}

// Len returns the number of registered jurisdictions
func (r *Registry) Len() int {
	return len(r.byCode)
}
