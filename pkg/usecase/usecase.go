package usecase

import (
	"github.com/finwatch-lab/anchorboard/pkg/domain/interfaces"
)

// DefaultMaxMultiplier is the upper slider bound applied when no dashboard
// configuration overrides it
const DefaultMaxMultiplier = 2.0

type UseCases struct {
	store         interfaces.DatasetStore
	maxMultiplier float64

	Dashboard *DashboardUseCase
	Scenario  *ScenarioUseCase
}

type Option func(*UseCases)

// WithMaxMultiplier overrides the maximum accepted scenario multiplier
func WithMaxMultiplier(max float64) Option {
	return func(uc *UseCases) {
		uc.maxMultiplier = max
	}
}

func New(store interfaces.DatasetStore, opts ...Option) *UseCases {
	uc := &UseCases{
		store:         store,
		maxMultiplier: DefaultMaxMultiplier,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Dashboard = NewDashboardUseCase(store)
	uc.Scenario = NewScenarioUseCase(store, uc.maxMultiplier)

	return uc
}
