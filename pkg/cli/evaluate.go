package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rightsgrid/rightsgrid/pkg/cli/config"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/usecase"
)

// cmdEvaluate runs one distribution risk evaluation from JSON files and
// prints the result to stdout. Useful for CI checks on campaign assets
// without running the server.
func cmdEvaluate() *cli.Command {
	var assetPath string
	var distPath string
	var appCfg config.AppConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "asset",
			Usage:       "Asset record file (JSON)",
			Required:    true,
			Sources:     cli.EnvVars("RIGHTSGRID_ASSET"),
			Destination: &assetPath,
		},
		&cli.StringFlag{
			Name:        "distribution",
			Usage:       "Distribution scope file (JSON)",
			Required:    true,
			Sources:     cli.EnvVars("RIGHTSGRID_DISTRIBUTION"),
			Destination: &distPath,
		},
	}
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:    "evaluate",
		Aliases: []string{"e"},
		Usage:   "Evaluate distribution risk for one asset",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			registry, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load jurisdiction configuration")
			}

			var asset model.Asset
			if err := readJSONFile(assetPath, &asset); err != nil {
				return err
			}
			var dist model.ProjectDistribution
			if err := readJSONFile(distPath, &dist); err != nil {
				return err
			}

			uc := usecase.NewDistributionUseCase(registry)
			result := uc.EvaluateAsset(ctx, &asset, &dist)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return goerr.Wrap(err, "failed to encode result")
			}
			return nil
		},
	}
}

func readJSONFile(path string, v any) error {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(err, "failed to parse JSON input", goerr.V("path", path))
	}
	return nil
}
