package registry_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/service/registry"
)

func TestDefault(t *testing.T) {
	reg := registry.Default()

	t.Run("builtin dataset is valid and non-trivial", func(t *testing.T) {
		gt.B(t, reg.Len() > 10).True()
		gt.B(t, len(reg.States()) > 0).True()
		gt.B(t, len(reg.Countries()) > 0).True()
	})

	t.Run("California profile", func(t *testing.T) {
		ca, ok := reg.Jurisdiction("CA")
		gt.B(t, ok).True()
		gt.Value(t, ca.Kind).Equal(types.JurisdictionKindState)
		gt.Value(t, ca.Legislation).Equal(types.LegislationEnacted)
		gt.Value(t, ca.Enforcement).Equal(types.EnforcementVeryHigh)
		gt.B(t, ca.HasCategory(types.LawAIAdvertising)).True()
		gt.B(t, ca.HasCategory(types.LawNILRights)).True()
		gt.B(t, ca.HasCategory(types.LawDeepfake)).True()
		gt.B(t, ca.EstimatedPenalty(types.LawNILRights) > 0).True()
	})

	t.Run("countries use three-letter codes", func(t *testing.T) {
		for _, p := range reg.Countries() {
			if len(p.Code) != 3 {
				t.Errorf("country %s should have a three-letter code", p.Code)
			}
		}
		// "CAN" is Canada, distinct from the state "CA"
		can, ok := reg.Jurisdiction("CAN")
		gt.B(t, ok).True()
		gt.Value(t, can.Kind).Equal(types.JurisdictionKindCountry)
	})

	t.Run("lists are ordered by code", func(t *testing.T) {
		states := reg.States()
		for i := 1; i < len(states); i++ {
			if states[i].Code <= states[i-1].Code {
				t.Errorf("states out of order: %s before %s", states[i-1].Code, states[i].Code)
			}
		}
	})

	t.Run("unknown code misses", func(t *testing.T) {
		_, ok := reg.Jurisdiction("ZZ")
		gt.B(t, ok).False()
	})
}

func TestNew(t *testing.T) {
	profile := func(code string) *model.JurisdictionProfile {
		return &model.JurisdictionProfile{
			Code:        types.JurisdictionCode(code),
			Name:        "Test " + code,
			Kind:        types.JurisdictionKindState,
			Legislation: types.LegislationEnacted,
			Enforcement: types.EnforcementMedium,
			Multiplier:  1.0,
		}
	}

	t.Run("duplicate codes rejected", func(t *testing.T) {
		_, err := registry.New([]*model.JurisdictionProfile{profile("CA"), profile("CA")})
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid profile rejected", func(t *testing.T) {
		p := profile("CA")
		p.Name = ""
		_, err := registry.New([]*model.JurisdictionProfile{p})
		gt.Value(t, err).NotNil()
	})

	t.Run("kinds partitioned", func(t *testing.T) {
		country := profile("GBR")
		country.Kind = types.JurisdictionKindCountry
		reg, err := registry.New([]*model.JurisdictionProfile{profile("CA"), country})
		gt.NoError(t, err).Required()
		gt.Number(t, len(reg.States())).Equal(1)
		gt.Number(t, len(reg.Countries())).Equal(1)
		gt.Number(t, reg.Len()).Equal(2)
	})
}

func TestDefaultProfiles_Independent(t *testing.T) {
	// Mutating the returned slice must not leak into later calls
	first := registry.DefaultProfiles()
	first[0] = nil
	second := registry.DefaultProfiles()
	gt.Value(t, second[0]).NotNil()
}
