package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/finwatch-lab/anchorboard/pkg/cli/config"
	"github.com/finwatch-lab/anchorboard/pkg/dataset"
)

func cmdValidate() *cli.Command {
	var appCfg config.App
	var datasetCfg config.Dataset

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, datasetCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the dashboard configuration and dataset file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			okMark := color.New(color.FgGreen).Sprint("OK")
			failMark := color.New(color.FgRed, color.Bold).Sprint("FAIL")

			// Step 1: dashboard configuration
			dashboardCfg, err := appCfg.Configure()
			if err != nil {
				fmt.Printf("[%s] dashboard configuration\n", failMark)
				return goerr.Wrap(err, "configuration validation failed")
			}
			if appCfg.Path() == "" {
				fmt.Printf("[%s] dashboard configuration (defaults, no file given)\n", okMark)
			} else {
				fmt.Printf("[%s] dashboard configuration: %s\n", okMark, appCfg.Path())
			}
			fmt.Printf("      title=%q max_multiplier=%.2f step=%.2f\n",
				dashboardCfg.Title, dashboardCfg.Scenario.MaxMultiplier, dashboardCfg.Scenario.Step)

			// Step 2: dataset file
			ds, err := dataset.Load(datasetCfg.Path())
			if err != nil {
				fmt.Printf("[%s] dataset: %s\n", failMark, datasetCfg.Path())
				return goerr.Wrap(err, "dataset validation failed")
			}
			fmt.Printf("[%s] dataset: %s\n", okMark, datasetCfg.Path())
			fmt.Printf("      attributions=%d sources=%d metrics=%d risk_factors=%d\n",
				len(ds.Attributions), len(ds.Sources), len(ds.Metrics), len(ds.RiskFactors))

			sum := 0.0
			for _, f := range ds.RiskFactors {
				fmt.Printf("      factor %-28s base=%.2f correlation=%s\n",
					f.Name, f.BaseContribution, f.Correlation)
				sum += f.BaseContribution
			}
			fmt.Printf("      base contribution sum=%.3f\n", sum)

			color.Green("Validation passed")
			return nil
		},
	}
}
