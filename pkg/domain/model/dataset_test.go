package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
)

func buildValidDataset() *model.Dataset {
	return &model.Dataset{
		Attributions: []model.FeatureAttribution{
			{Feature: "Loan-to-Income Ratio", SHAPValue: 0.42},
		},
		Sources: []model.DataSource{
			{Name: "Credit Bureau", Share: 100},
		},
		Metrics: []model.ModelMetric{
			{Model: "XGBoost", Accuracy: 94.2, ComplianceRate: 97.5},
		},
		RiskFactors: []model.RiskFactor{
			{Name: "LoanToIncome", BaseContribution: 0.4},
			{Name: "PaymentHistory", BaseContribution: 0.6},
		},
	}
}

func TestDatasetValidate_Valid(t *testing.T) {
	gt.NoError(t, buildValidDataset().Validate())
}

func TestDatasetValidate_SumWithinTolerance(t *testing.T) {
	ds := buildValidDataset()
	ds.RiskFactors[0].BaseContribution = 0.405
	gt.NoError(t, ds.Validate())
}

func TestDatasetValidate_Invalid(t *testing.T) {
	cases := map[string]func(*model.Dataset){
		"emptyAttributions": func(ds *model.Dataset) { ds.Attributions = nil },
		"emptySources":      func(ds *model.Dataset) { ds.Sources = nil },
		"emptyMetrics":      func(ds *model.Dataset) { ds.Metrics = nil },
		"emptyRiskFactors":  func(ds *model.Dataset) { ds.RiskFactors = nil },
		"shareOutOfRange":   func(ds *model.Dataset) { ds.Sources[0].Share = 120 },
		"accuracyNegative":  func(ds *model.Dataset) { ds.Metrics[0].Accuracy = -1 },
		"complianceTooHigh": func(ds *model.Dataset) { ds.Metrics[0].ComplianceRate = 101 },
		"emptyFactorName":   func(ds *model.Dataset) { ds.RiskFactors[0].Name = "" },
		"duplicateFactor":   func(ds *model.Dataset) { ds.RiskFactors[1].Name = "LoanToIncome" },
		"contributionAboveOne": func(ds *model.Dataset) {
			ds.RiskFactors[0].BaseContribution = 1.2
		},
		"sumBelowOne": func(ds *model.Dataset) {
			ds.RiskFactors[0].BaseContribution = 0.1
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			ds := buildValidDataset()
			mutate(ds)
			err := ds.Validate()
			gt.Error(t, err)
			gt.Bool(t, errors.Is(err, model.ErrInvalidDataset)).True()
		})
	}
}
