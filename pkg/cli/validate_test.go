package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rightsgrid/rightsgrid/pkg/cli"
)

func TestRun_ValidateCommand_BuiltinDataset(t *testing.T) {
	err := cli.Run(context.Background(), []string{"rightsgrid", "validate"}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jurisdictions.toml")
	content := `
[[jurisdiction]]
code = "ESP"
name = "Spain"
kind = "country"
legislation = "PROPOSED"
enforcement = "low"
multiplier = 1.1

[[jurisdiction]]
code = "CA"
name = "California (amended)"
kind = "state"
legislation = "ENACTED"
law_categories = ["ai-advertising", "nil-rights", "deepfake"]
enforcement = "very_high"
multiplier = 2.5

  [[jurisdiction.penalty]]
  category = "nil-rights"
  text = "Statutory damages up to $50,000"
  estimated_max = 50000
`
	err := os.WriteFile(configPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"rightsgrid", "validate", "--config", configPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jurisdictions.toml")

	// Invalid: lowercase jurisdiction code
	content := `
[[jurisdiction]]
code = "ca"
name = "California"
kind = "state"
enforcement = "very_high"
multiplier = 2.0
`
	err := os.WriteFile(configPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"rightsgrid", "validate", "--config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_MissingConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nonexistent.toml")

	err := cli.Run(context.Background(), []string{"rightsgrid", "validate", "--config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_QuoteCommand(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"rightsgrid", "quote",
		"--limit", "1000000",
		"--base-rate", "2",
		"--jurisdiction", "NY",
		"--mrs", "95",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_QuoteCommand_UnknownJurisdiction(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"rightsgrid", "quote",
		"--limit", "1000000",
		"--base-rate", "2",
		"--jurisdiction", "ZZ",
		"--mrs", "95",
	}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_EvaluateCommand(t *testing.T) {
	tmpDir := t.TempDir()
	assetPath := filepath.Join(tmpDir, "asset.json")
	distPath := filepath.Join(tmpDir, "distribution.json")

	asset := `{
  "ID": "a1",
  "Name": "Hero spot",
  "AIMethod": "ai_generated",
  "TalentRightsVerified": true,
  "DisclosureLabeled": true
}`
	dist := `{
  "USStates": ["CA", "NY"],
  "Platforms": ["meta"]
}`
	gt.NoError(t, os.WriteFile(assetPath, []byte(asset), 0o600)).Required()
	gt.NoError(t, os.WriteFile(distPath, []byte(dist), 0o600)).Required()

	err := cli.Run(context.Background(), []string{
		"rightsgrid", "evaluate",
		"--asset", assetPath,
		"--distribution", distPath,
	}, "test")
	gt.NoError(t, err)
}

func TestRun_EvaluateCommand_MissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	distPath := filepath.Join(tmpDir, "distribution.json")
	gt.NoError(t, os.WriteFile(distPath, []byte(`{}`), 0o600)).Required()

	err := cli.Run(context.Background(), []string{
		"rightsgrid", "evaluate",
		"--asset", filepath.Join(tmpDir, "nope.json"),
		"--distribution", distPath,
	}, "test")
	gt.Value(t, err).NotNil()
}
