package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
)

func TestNewAssetRiskInput(t *testing.T) {
	t.Run("prefers AIMethod over legacy ContentType", func(t *testing.T) {
		input := model.NewAssetRiskInput(&model.Asset{
			AIMethod:    "ai_generated",
			ContentType: "stock_photo",
		})
		gt.Value(t, input.ContentType).Equal("ai_generated")
	})

	t.Run("falls back to legacy ContentType", func(t *testing.T) {
		input := model.NewAssetRiskInput(&model.Asset{
			ContentType: "AI Generative",
		})
		gt.Value(t, input.ContentType).Equal("AI Generative")
		gt.B(t, input.AIGenerated()).True()
	})

	t.Run("nil asset yields zero input", func(t *testing.T) {
		input := model.NewAssetRiskInput(nil)
		gt.Value(t, input.ContentType).Equal("")
		gt.B(t, input.AIGenerated()).False()
	})
}

func TestAssetRiskInput_AIGenerated(t *testing.T) {
	cases := map[string]bool{
		"ai_generated":  true,
		"AI Generative": true,
		"ai_generative": true,
		"stock_photo":   false,
		"":              false,
	}
	for contentType, want := range cases {
		input := model.AssetRiskInput{ContentType: contentType}
		if input.AIGenerated() != want {
			t.Errorf("AIGenerated(%q) = %v, want %v", contentType, !want, want)
		}
	}
}

func TestAssetRiskInput_PlatformCompliant(t *testing.T) {
	t.Run("missing map fails closed", func(t *testing.T) {
		input := model.AssetRiskInput{}
		gt.B(t, input.PlatformCompliant("tiktok")).False()
	})

	t.Run("missing entry fails closed", func(t *testing.T) {
		input := model.AssetRiskInput{PlatformCompliance: map[string]bool{"meta": true}}
		gt.B(t, input.PlatformCompliant("tiktok")).False()
		gt.B(t, input.PlatformCompliant("meta")).True()
	})
}

func TestProjectDistribution(t *testing.T) {
	t.Run("empty scope", func(t *testing.T) {
		gt.B(t, (&model.ProjectDistribution{}).IsEmpty()).True()
		gt.B(t, (*model.ProjectDistribution)(nil).IsEmpty()).True()
		gt.B(t, (&model.ProjectDistribution{USStates: []string{"CA"}}).IsEmpty()).False()
		gt.B(t, (&model.ProjectDistribution{Countries: []string{"GBR"}}).IsEmpty()).False()
	})

	t.Run("ALL sentinel", func(t *testing.T) {
		gt.B(t, (&model.ProjectDistribution{USStates: []string{"ALL"}}).WantsAllStates()).True()
		gt.B(t, (&model.ProjectDistribution{USStates: []string{"CA", "ALL"}}).WantsAllStates()).True()
		gt.B(t, (&model.ProjectDistribution{USStates: []string{"CA"}}).WantsAllStates()).False()
	})
}
