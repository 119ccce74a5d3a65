package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/finwatch-lab/anchorboard/pkg/domain/interfaces"
	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
)

// DashboardUseCase serves the read-only chart sections of the dashboard
type DashboardUseCase struct {
	store interfaces.DatasetStore
}

func NewDashboardUseCase(store interfaces.DatasetStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Overview is the full payload for the page's initial fetch
type Overview struct {
	Attributions []model.FeatureAttribution
	Sources      []model.DataSource
	Metrics      []model.ModelMetric
	RiskFactors  []model.RiskFactor
}

// Interpretability returns the feature attribution rows ordered by
// absolute SHAP value, largest first, matching the bar chart ordering
func (uc *DashboardUseCase) Interpretability(ctx context.Context) ([]model.FeatureAttribution, error) {
	rows, err := uc.store.Attributions(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load feature attributions")
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return math.Abs(rows[i].SHAPValue) > math.Abs(rows[j].SHAPValue)
	})
	return rows, nil
}

// Sources returns the data source share rows
func (uc *DashboardUseCase) Sources(ctx context.Context) ([]model.DataSource, error) {
	rows, err := uc.store.Sources(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load data sources")
	}
	return rows, nil
}

// Metrics returns the model accuracy and compliance rate rows
func (uc *DashboardUseCase) Metrics(ctx context.Context) ([]model.ModelMetric, error) {
	rows, err := uc.store.Metrics(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load model metrics")
	}
	return rows, nil
}

// RiskProfile returns the risk factors with their base contributions and
// correlation labels, in dataset order. The rows feed both the heatmap
// and the slider defaults.
func (uc *DashboardUseCase) RiskProfile(ctx context.Context) ([]model.RiskFactor, error) {
	rows, err := uc.store.RiskFactors(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load risk factors")
	}
	return rows, nil
}

// Overview gathers all four sections for the page's initial fetch
func (uc *DashboardUseCase) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		rows, err := uc.Interpretability(ctx)
		overview.Attributions = rows
		return err
	})
	eg.Go(func() error {
		rows, err := uc.Sources(ctx)
		overview.Sources = rows
		return err
	})
	eg.Go(func() error {
		rows, err := uc.Metrics(ctx)
		overview.Metrics = rows
		return err
	})
	eg.Go(func() error {
		rows, err := uc.RiskProfile(ctx)
		overview.RiskFactors = rows
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to gather dashboard sections")
	}
	return &overview, nil
}
