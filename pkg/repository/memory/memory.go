package memory

import (
	"context"

	"github.com/finwatch-lab/anchorboard/pkg/domain/interfaces"
	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
)

// Store is a read-only in-memory dataset table. It is constructed once
// from the loaded dataset and never mutated, so concurrent reads need no
// locking. Accessors return copies to keep callers from mutating the
// table through the returned slices.
type Store struct {
	dataset model.Dataset
}

var _ interfaces.DatasetStore = &Store{}

// New creates a store over the given dataset. The store takes its own
// copy of the section slices; later changes to ds by the caller do not
// leak into the store.
func New(ds *model.Dataset) *Store {
	return &Store{
		dataset: model.Dataset{
			Attributions: append([]model.FeatureAttribution(nil), ds.Attributions...),
			Sources:      append([]model.DataSource(nil), ds.Sources...),
			Metrics:      append([]model.ModelMetric(nil), ds.Metrics...),
			RiskFactors:  append([]model.RiskFactor(nil), ds.RiskFactors...),
		},
	}
}

// Attributions returns the feature attribution rows in dataset order
func (s *Store) Attributions(ctx context.Context) ([]model.FeatureAttribution, error) {
	return append([]model.FeatureAttribution(nil), s.dataset.Attributions...), nil
}

// Sources returns the data source rows in dataset order
func (s *Store) Sources(ctx context.Context) ([]model.DataSource, error) {
	return append([]model.DataSource(nil), s.dataset.Sources...), nil
}

// Metrics returns the model metric rows in dataset order
func (s *Store) Metrics(ctx context.Context) ([]model.ModelMetric, error) {
	return append([]model.ModelMetric(nil), s.dataset.Metrics...), nil
}

// RiskFactors returns the risk factor rows in dataset order
func (s *Store) RiskFactors(ctx context.Context) ([]model.RiskFactor, error) {
	return append([]model.RiskFactor(nil), s.dataset.RiskFactors...), nil
}
