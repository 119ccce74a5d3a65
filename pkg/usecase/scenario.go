package usecase

import (
	"context"
	"math"

	"github.com/m-mizutani/goerr/v2"

	"github.com/finwatch-lab/anchorboard/pkg/domain/interfaces"
	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
	"github.com/finwatch-lab/anchorboard/pkg/domain/types"
	"github.com/finwatch-lab/anchorboard/pkg/utils/logging"
)

// ScenarioUseCase recomputes the aggregate risk score for a user-chosen
// set of multipliers over the startup-fixed risk factor table
type ScenarioUseCase struct {
	store         interfaces.DatasetStore
	maxMultiplier float64
}

func NewScenarioUseCase(store interfaces.DatasetStore, maxMultiplier float64) *ScenarioUseCase {
	return &ScenarioUseCase{
		store:         store,
		maxMultiplier: maxMultiplier,
	}
}

// MaxMultiplier returns the upper bound accepted for a single multiplier
func (uc *ScenarioUseCase) MaxMultiplier() float64 {
	return uc.maxMultiplier
}

// Recompute applies the input multipliers to the risk factor table and
// returns the per-factor contributions and the aggregate score, clamped to
// [0, 1]. A raw sum above 1 is reported as saturated.
//
// The input must carry a finite multiplier in [0, maxMultiplier] for every
// known factor and for no other names. Recompute is a pure function of its
// input: the factor table never changes after startup and nothing here is
// stateful or random.
func (uc *ScenarioUseCase) Recompute(ctx context.Context, input model.ScenarioInput) (*model.ScenarioResult, error) {
	factors, err := uc.store.RiskFactors(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load risk factors")
	}

	if err := uc.validate(factors, input); err != nil {
		return nil, err
	}

	result := &model.ScenarioResult{
		ID:            types.NewScenarioID(),
		Contributions: make([]model.FactorContribution, len(factors)),
	}

	sum := 0.0
	for i, factor := range factors {
		multiplier := input[factor.Name]
		contribution := factor.BaseContribution * multiplier
		result.Contributions[i] = model.FactorContribution{
			Name:         factor.Name,
			Base:         factor.BaseContribution,
			Multiplier:   multiplier,
			Contribution: contribution,
		}
		sum += contribution
	}

	// A sum above 1 means a saturated risk signal; cap the score
	result.AggregateScore = sum
	if sum > 1 {
		result.AggregateScore = 1
		result.Saturated = true
	}

	logging.From(ctx).Debug("scenario recomputed",
		"scenario_id", result.ID,
		"aggregate_score", result.AggregateScore,
		"saturated", result.Saturated,
	)

	return result, nil
}

func (uc *ScenarioUseCase) validate(factors []model.RiskFactor, input model.ScenarioInput) error {
	known := make(map[types.FactorName]bool, len(factors))
	for _, factor := range factors {
		known[factor.Name] = true
		multiplier, ok := input[factor.Name]
		if !ok {
			return goerr.Wrap(ErrMissingFactor, "every risk factor needs a multiplier",
				goerr.V(FactorKey, factor.Name))
		}
		if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
			return goerr.Wrap(ErrInvalidMultiplier, "multiplier must be finite",
				goerr.V(FactorKey, factor.Name), goerr.V(MultiplierKey, multiplier))
		}
		if multiplier < 0 {
			return goerr.Wrap(ErrInvalidMultiplier, "multiplier must be non-negative",
				goerr.V(FactorKey, factor.Name), goerr.V(MultiplierKey, multiplier))
		}
		if multiplier > uc.maxMultiplier {
			return goerr.Wrap(ErrInvalidMultiplier, "multiplier exceeds configured maximum",
				goerr.V(FactorKey, factor.Name), goerr.V(MultiplierKey, multiplier),
				goerr.V(MaxKey, uc.maxMultiplier))
		}
	}

	for name := range input {
		if !known[name] {
			return goerr.Wrap(ErrUnknownFactor, "multiplier given for unknown factor",
				goerr.V(FactorKey, name))
		}
	}

	return nil
}
