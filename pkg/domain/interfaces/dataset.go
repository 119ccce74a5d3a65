package interfaces

import (
	"context"

	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
)

// DatasetStore is the read interface over the startup-loaded dataset.
// Implementations must be safe for concurrent reads and must never expose
// internal slices for mutation; the dataset is immutable after startup.
type DatasetStore interface {
	// Attributions returns the feature attribution rows in dataset order
	Attributions(ctx context.Context) ([]model.FeatureAttribution, error)

	// Sources returns the data source rows in dataset order
	Sources(ctx context.Context) ([]model.DataSource, error)

	// Metrics returns the model metric rows in dataset order
	Metrics(ctx context.Context) ([]model.ModelMetric, error)

	// RiskFactors returns the risk factor rows in dataset order
	RiskFactors(ctx context.Context) ([]model.RiskFactor, error)
}
