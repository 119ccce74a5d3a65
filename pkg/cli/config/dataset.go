package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/finwatch-lab/anchorboard/pkg/dataset"
	"github.com/finwatch-lab/anchorboard/pkg/domain/interfaces"
	"github.com/finwatch-lab/anchorboard/pkg/repository/memory"
	"github.com/finwatch-lab/anchorboard/pkg/utils/logging"
)

// Dataset holds the CLI flag for the dashboard dataset file
type Dataset struct {
	path string
}

// Flags returns CLI flags for the dataset
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Usage:       "Path to the dashboard dataset CSV",
			Value:       "data/combined_hypothetical_data.csv",
			Sources:     cli.EnvVars("ANCHORBOARD_DATASET"),
			Destination: &d.path,
		},
	}
}

// Path returns the configured dataset path
func (d *Dataset) Path() string {
	return d.path
}

// Configure loads the dataset file once and returns the read-only store
// backing every dashboard query and scenario recompute
func (d *Dataset) Configure(ctx context.Context) (interfaces.DatasetStore, error) {
	ds, err := dataset.Load(d.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset")
	}

	logging.From(ctx).Info("Dataset loaded",
		"path", d.path,
		"attributions", len(ds.Attributions),
		"sources", len(ds.Sources),
		"metrics", len(ds.Metrics),
		"risk_factors", len(ds.RiskFactors),
	)

	return memory.New(ds), nil
}
