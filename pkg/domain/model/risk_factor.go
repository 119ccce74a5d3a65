package model

import (
	"github.com/finwatch-lab/anchorboard/pkg/domain/types"
)

// RiskFactor is a named input to the aggregate risk score with a fixed
// base contribution in [0, 1]. The factor set is loaded once at startup
// and never changes afterwards. Correlation is a display label from the
// dataset used by the risk heatmap.
type RiskFactor struct {
	Name             types.FactorName
	BaseContribution float64
	Correlation      string
}
