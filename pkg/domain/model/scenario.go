package model

import (
	"github.com/finwatch-lab/anchorboard/pkg/domain/types"
)

// ScenarioInput maps each risk factor name to a user-chosen multiplier.
// A fresh input is built for every slider interaction.
type ScenarioInput map[types.FactorName]float64

// FactorContribution is one factor's share of the aggregate score after
// applying its multiplier
type FactorContribution struct {
	Name         types.FactorName
	Base         float64
	Multiplier   float64
	Contribution float64
}

// ScenarioResult is the outcome of one scenario evaluation. Contributions
// preserve the dataset's factor order. Saturated reports that the raw sum
// exceeded 1.0 and AggregateScore was capped.
type ScenarioResult struct {
	ID             types.ScenarioID
	Contributions  []FactorContribution
	AggregateScore float64
	Saturated      bool
}
