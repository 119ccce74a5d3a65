package model

import (
	"math"

	"github.com/m-mizutani/goerr/v2"

	"github.com/finwatch-lab/anchorboard/pkg/domain/types"
)

// ErrInvalidDataset is returned when a loaded dataset violates a semantic
// constraint (empty section, duplicate factor, out-of-range value)
var ErrInvalidDataset = goerr.New("invalid dataset")

// contributionSumTolerance is how far the base contributions may deviate
// from summing to exactly 1.0
const contributionSumTolerance = 0.01

// Dataset is the read-only in-memory table loaded from the source CSV at
// startup. It is owned by the caller and passed by reference into the
// store; no package keeps ambient global state.
type Dataset struct {
	Attributions []FeatureAttribution
	Sources      []DataSource
	Metrics      []ModelMetric
	RiskFactors  []RiskFactor
}

// Validate checks the semantic constraints of the dataset: every section
// must be non-empty, risk factor names must be unique, base contributions
// must lie in [0, 1] and sum to 1.0 within tolerance, and percentage
// columns must lie in [0, 100].
func (d *Dataset) Validate() error {
	if len(d.Attributions) == 0 {
		return goerr.Wrap(ErrInvalidDataset, "no feature attribution rows",
			goerr.V("component", types.ComponentInterpretability))
	}
	if len(d.Sources) == 0 {
		return goerr.Wrap(ErrInvalidDataset, "no data source rows",
			goerr.V("component", types.ComponentDataSources))
	}
	if len(d.Metrics) == 0 {
		return goerr.Wrap(ErrInvalidDataset, "no key metric rows",
			goerr.V("component", types.ComponentKeyMetrics))
	}
	if len(d.RiskFactors) == 0 {
		return goerr.Wrap(ErrInvalidDataset, "no risk factor rows",
			goerr.V("component", types.ComponentScenario))
	}

	for _, src := range d.Sources {
		if src.Share < 0 || src.Share > 100 {
			return goerr.Wrap(ErrInvalidDataset, "data source share out of range",
				goerr.V("source", src.Name), goerr.V("share", src.Share))
		}
	}

	for _, m := range d.Metrics {
		if m.Accuracy < 0 || m.Accuracy > 100 {
			return goerr.Wrap(ErrInvalidDataset, "model accuracy out of range",
				goerr.V("model", m.Model), goerr.V("accuracy", m.Accuracy))
		}
		if m.ComplianceRate < 0 || m.ComplianceRate > 100 {
			return goerr.Wrap(ErrInvalidDataset, "compliance rate out of range",
				goerr.V("model", m.Model), goerr.V("compliance_rate", m.ComplianceRate))
		}
	}

	seen := make(map[types.FactorName]bool, len(d.RiskFactors))
	sum := 0.0
	for _, f := range d.RiskFactors {
		if err := f.Name.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidDataset, "invalid risk factor name", goerr.V("cause", err.Error()))
		}
		if seen[f.Name] {
			return goerr.Wrap(ErrInvalidDataset, "duplicate risk factor",
				goerr.V("factor", f.Name))
		}
		seen[f.Name] = true

		if f.BaseContribution < 0 || f.BaseContribution > 1 {
			return goerr.Wrap(ErrInvalidDataset, "base contribution out of range",
				goerr.V("factor", f.Name), goerr.V("base_contribution", f.BaseContribution))
		}
		sum += f.BaseContribution
	}

	if math.Abs(sum-1.0) > contributionSumTolerance {
		return goerr.Wrap(ErrInvalidDataset, "base contributions must sum to 1.0",
			goerr.V("sum", sum), goerr.V("tolerance", contributionSumTolerance))
	}

	return nil
}
