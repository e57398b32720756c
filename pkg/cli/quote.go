package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rightsgrid/rightsgrid/pkg/cli/config"
	"github.com/rightsgrid/rightsgrid/pkg/domain/types"
	"github.com/rightsgrid/rightsgrid/pkg/usecase"
)

// cmdQuote prices coverage from the command line
func cmdQuote() *cli.Command {
	var limit float64
	var baseRate float64
	var jurisdiction string
	var mrs int
	var appCfg config.AppConfig

	flags := []cli.Flag{
		&cli.FloatFlag{
			Name:        "limit",
			Usage:       "Policy limit in USD",
			Required:    true,
			Destination: &limit,
		},
		&cli.FloatFlag{
			Name:        "base-rate",
			Usage:       "Base rate as percent of limit (e.g. 2 means 2%)",
			Required:    true,
			Destination: &baseRate,
		},
		&cli.StringFlag{
			Name:        "jurisdiction",
			Usage:       "Jurisdiction code (e.g. NY, CA, GBR)",
			Required:    true,
			Destination: &jurisdiction,
		},
		&cli.IntFlag{
			Name:        "mrs",
			Usage:       "Model Risk Score (0-100)",
			Required:    true,
			Destination: &mrs,
		},
	}
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:    "quote",
		Aliases: []string{"q"},
		Usage:   "Calculate a premium quote",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			registry, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load jurisdiction configuration")
			}

			uc := usecase.NewPremiumUseCase(registry)
			calc, err := uc.Quote(ctx, limit, baseRate, jurisdiction, mrs)
			if err != nil {
				return err
			}

			classColor := color.New(color.FgGreen)
			switch calc.RiskClass {
			case types.RiskClassGuarded, types.RiskClassElevated:
				classColor = color.New(color.FgYellow)
			case types.RiskClassSevere, types.RiskClassCritical:
				classColor = color.New(color.FgRed)
			}

			fmt.Printf("Risk class:   %s\n", classColor.Sprint(calc.RiskClass))
			fmt.Printf("Premium:      $%.2f\n", calc.Premium)
			if calc.Deductible != nil {
				fmt.Printf("Deductible:   $%.2f\n", *calc.Deductible)
			} else {
				fmt.Printf("Deductible:   none\n")
			}
			fmt.Printf("Max capacity: $%.2f\n", calc.MaxCapacity)
			return nil
		},
	}
}
