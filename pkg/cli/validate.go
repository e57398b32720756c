package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rightsgrid/rightsgrid/pkg/cli/config"
	"github.com/rightsgrid/rightsgrid/pkg/domain/model"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var appCfg config.AppConfig

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate jurisdiction reference data and print the effective registry",
		Flags:   appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			registry, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logging.Default().Info("Configuration validation passed",
				"jurisdictions", registry.Len(),
			)

			printProfiles("US states", registry.States())
			printProfiles("Countries", registry.Countries())

			color.Green("OK: %d jurisdictions loaded", registry.Len())
			return nil
		},
	}
}

func printProfiles(title string, profiles []*model.JurisdictionProfile) {
	color.New(color.Bold).Printf("%s (%d)\n", title, len(profiles))
	for _, p := range profiles {
		status := color.HiBlackString(string(p.Legislation.Normalize()))
		if p.Legislation == types.LegislationEnacted {
			status = color.YellowString(string(p.Legislation))
		}
		fmt.Printf("  %-4s %-16s %-12s enforcement=%-9s x%.2f\n",
			p.Code, p.Name, status, p.Enforcement, p.Multiplier)
	}
}
