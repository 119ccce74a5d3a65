package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
	"github.com/finwatch-lab/anchorboard/pkg/repository/memory"
	"github.com/finwatch-lab/anchorboard/pkg/usecase"
)

func buildDashboardTestStore() *memory.Store {
	return memory.New(&model.Dataset{
		Attributions: []model.FeatureAttribution{
			{Feature: "Employment Length", SHAPValue: 0.12, LIMEWeight: 0.10},
			{Feature: "Loan-to-Income Ratio", SHAPValue: 0.42, LIMEWeight: 0.39},
			{Feature: "Recent Inquiries", SHAPValue: -0.28, LIMEWeight: -0.21},
		},
		Sources: []model.DataSource{
			{Name: "Credit Bureau", Share: 40},
			{Name: "Bank Transactions", Share: 60},
		},
		Metrics: []model.ModelMetric{
			{Model: "XGBoost", Accuracy: 94.2, ComplianceRate: 97.5},
			{Model: "Random Forest", Accuracy: 91.8, ComplianceRate: 96.1},
		},
		RiskFactors: []model.RiskFactor{
			{Name: "LoanToIncome", BaseContribution: 0.4},
			{Name: "PaymentHistory", BaseContribution: 0.6},
		},
	})
}

func TestInterpretability_SortedByAbsoluteSHAP(t *testing.T) {
	uc := usecase.New(buildDashboardTestStore())

	rows, err := uc.Dashboard.Interpretability(context.Background())
	gt.NoError(t, err).Required()

	gt.Array(t, rows).Length(3)
	gt.Value(t, rows[0].Feature).Equal("Loan-to-Income Ratio")
	gt.Value(t, rows[1].Feature).Equal("Recent Inquiries")
	gt.Value(t, rows[2].Feature).Equal("Employment Length")
}

func TestRiskProfile_PreservesDatasetOrder(t *testing.T) {
	uc := usecase.New(buildDashboardTestStore())

	rows, err := uc.Dashboard.RiskProfile(context.Background())
	gt.NoError(t, err).Required()

	gt.Array(t, rows).Length(2)
	gt.Value(t, rows[0].Name.String()).Equal("LoanToIncome")
	gt.Value(t, rows[1].Name.String()).Equal("PaymentHistory")
}

func TestOverview_GathersAllSections(t *testing.T) {
	uc := usecase.New(buildDashboardTestStore())

	overview, err := uc.Dashboard.Overview(context.Background())
	gt.NoError(t, err).Required()

	gt.Array(t, overview.Attributions).Length(3)
	gt.Array(t, overview.Sources).Length(2)
	gt.Array(t, overview.Metrics).Length(2)
	gt.Array(t, overview.RiskFactors).Length(2)

	// Overview uses the same sorting as the section query
	gt.Value(t, overview.Attributions[0].Feature).Equal("Loan-to-Income Ratio")
}
