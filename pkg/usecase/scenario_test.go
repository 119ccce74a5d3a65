package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
	"github.com/finwatch-lab/anchorboard/pkg/domain/types"
	"github.com/finwatch-lab/anchorboard/pkg/repository/memory"
	"github.com/finwatch-lab/anchorboard/pkg/usecase"
)

func buildScenarioTestStore() *memory.Store {
	return memory.New(&model.Dataset{
		Attributions: []model.FeatureAttribution{
			{Feature: "Loan-to-Income Ratio", SHAPValue: 0.42, LIMEWeight: 0.39},
		},
		Sources: []model.DataSource{
			{Name: "Credit Bureau", Share: 100},
		},
		Metrics: []model.ModelMetric{
			{Model: "XGBoost", Accuracy: 94.2, ComplianceRate: 97.5},
		},
		RiskFactors: []model.RiskFactor{
			{Name: "LoanToIncome", BaseContribution: 0.4, Correlation: "Strong Positive"},
			{Name: "PaymentHistory", BaseContribution: 0.6, Correlation: "Strong Negative"},
		},
	})
}

func TestRecompute_AllOnesEqualsBaseSum(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore())
	ctx := context.Background()

	result, err := uc.Scenario.Recompute(ctx, model.ScenarioInput{
		"LoanToIncome":   1.0,
		"PaymentHistory": 1.0,
	})
	gt.NoError(t, err).Required()

	gt.Number(t, result.AggregateScore).Equal(1.0)
	gt.Bool(t, result.Saturated).False()
	gt.Array(t, result.Contributions).Length(2)
	gt.Value(t, result.Contributions[0].Name).Equal(types.FactorName("LoanToIncome"))
	gt.Number(t, result.Contributions[0].Contribution).Equal(0.4)
	gt.Value(t, result.Contributions[1].Name).Equal(types.FactorName("PaymentHistory"))
	gt.Number(t, result.Contributions[1].Contribution).Equal(0.6)
}

func TestRecompute_ZeroMultiplierZeroesContribution(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore())

	result, err := uc.Scenario.Recompute(context.Background(), model.ScenarioInput{
		"LoanToIncome":   0.0,
		"PaymentHistory": 1.0,
	})
	gt.NoError(t, err).Required()

	gt.Number(t, result.Contributions[0].Contribution).Equal(0.0)
	gt.Number(t, result.Contributions[1].Contribution).Equal(0.6)
	gt.Number(t, result.AggregateScore).Equal(0.6)
	gt.Bool(t, result.Saturated).False()
}

func TestRecompute_ClampsSaturatedScore(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore())

	result, err := uc.Scenario.Recompute(context.Background(), model.ScenarioInput{
		"LoanToIncome":   2.0,
		"PaymentHistory": 2.0,
	})
	gt.NoError(t, err).Required()

	gt.Number(t, result.AggregateScore).Equal(1.0)
	gt.Bool(t, result.Saturated).True()
	// Per-factor contributions stay unclamped
	gt.Number(t, result.Contributions[0].Contribution).Equal(0.8)
	gt.Number(t, result.Contributions[1].Contribution).Equal(1.2)
}

func TestRecompute_ScoreAlwaysInUnitInterval(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore())
	ctx := context.Background()

	for _, m := range []float64{0, 0.05, 0.5, 1, 1.5, 2} {
		result, err := uc.Scenario.Recompute(ctx, model.ScenarioInput{
			"LoanToIncome":   m,
			"PaymentHistory": m,
		})
		gt.NoError(t, err).Required()
		gt.Number(t, result.AggregateScore).GreaterOrEqual(0.0)
		gt.Number(t, result.AggregateScore).LessOrEqual(1.0)
	}
}

func TestRecompute_Deterministic(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore())
	ctx := context.Background()
	input := model.ScenarioInput{
		"LoanToIncome":   1.25,
		"PaymentHistory": 0.75,
	}

	first, err := uc.Scenario.Recompute(ctx, input)
	gt.NoError(t, err).Required()
	second, err := uc.Scenario.Recompute(ctx, input)
	gt.NoError(t, err).Required()

	gt.Number(t, first.AggregateScore).Equal(second.AggregateScore)
	gt.Array(t, first.Contributions).Length(len(second.Contributions))
	for i := range first.Contributions {
		gt.Value(t, first.Contributions[i].Name).Equal(second.Contributions[i].Name)
		gt.Number(t, first.Contributions[i].Contribution).Equal(second.Contributions[i].Contribution)
	}
}

func TestRecompute_MissingFactor(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore())

	_, err := uc.Scenario.Recompute(context.Background(), model.ScenarioInput{
		"LoanToIncome": 1.0,
	})
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrMissingFactor)).True()
}

func TestRecompute_UnknownFactorRejected(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore())

	_, err := uc.Scenario.Recompute(context.Background(), model.ScenarioInput{
		"LoanToIncome":   1.0,
		"PaymentHistory": 1.0,
		"CreditScore":    1.0,
	})
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrUnknownFactor)).True()
}

func TestRecompute_InvalidMultipliers(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore())
	ctx := context.Background()

	cases := map[string]float64{
		"negative": -0.5,
		"nan":      math.NaN(),
		"posInf":   math.Inf(1),
		"negInf":   math.Inf(-1),
		"aboveMax": 2.5,
	}

	for name, multiplier := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Scenario.Recompute(ctx, model.ScenarioInput{
				"LoanToIncome":   multiplier,
				"PaymentHistory": 1.0,
			})
			gt.Error(t, err)
			gt.Bool(t, errors.Is(err, usecase.ErrInvalidMultiplier)).True()
		})
	}
}

func TestRecompute_CustomMaxMultiplier(t *testing.T) {
	uc := usecase.New(buildScenarioTestStore(), usecase.WithMaxMultiplier(5.0))
	ctx := context.Background()

	result, err := uc.Scenario.Recompute(ctx, model.ScenarioInput{
		"LoanToIncome":   4.5,
		"PaymentHistory": 0.0,
	})
	gt.NoError(t, err).Required()
	gt.Bool(t, result.Saturated).True()
	gt.Number(t, result.AggregateScore).Equal(1.0)

	_, err = uc.Scenario.Recompute(ctx, model.ScenarioInput{
		"LoanToIncome":   5.5,
		"PaymentHistory": 0.0,
	})
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidMultiplier)).True()
}
