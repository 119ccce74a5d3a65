package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
	"github.com/finwatch-lab/anchorboard/pkg/domain/model/config"
	"github.com/finwatch-lab/anchorboard/pkg/usecase"
	"github.com/finwatch-lab/anchorboard/pkg/utils/errutil"
	"github.com/finwatch-lab/anchorboard/pkg/utils/safe"
)

type attributionResponse struct {
	Feature    string  `json:"feature"`
	SHAPValue  float64 `json:"shap_value"`
	LIMEWeight float64 `json:"lime_weight"`
}

type sourceResponse struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

type metricResponse struct {
	Model          string  `json:"model"`
	Accuracy       float64 `json:"accuracy"`
	ComplianceRate float64 `json:"compliance_rate"`
	Date           string  `json:"date,omitempty"`
}

type riskFactorResponse struct {
	Name             string  `json:"name"`
	BaseContribution float64 `json:"base_contribution"`
	Correlation      string  `json:"correlation,omitempty"`
}

type sectionLabelsResponse struct {
	Interpretability string `json:"interpretability"`
	Sources          string `json:"sources"`
	Metrics          string `json:"metrics"`
	Scenario         string `json:"scenario"`
}

type overviewResponse struct {
	Title         string                `json:"title"`
	Description   string                `json:"description,omitempty"`
	MaxMultiplier float64               `json:"max_multiplier"`
	Step          float64               `json:"step"`
	Sections      sectionLabelsResponse `json:"sections"`
	Attributions  []attributionResponse `json:"attributions"`
	Sources       []sourceResponse      `json:"sources"`
	Metrics       []metricResponse      `json:"metrics"`
	RiskFactors   []riskFactorResponse  `json:"risk_factors"`
}

func overviewHandler(uc *usecase.DashboardUseCase, cfg *config.DashboardConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := uc.Overview(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		resp := overviewResponse{
			Title:         cfg.Title,
			Description:   cfg.Description,
			MaxMultiplier: cfg.MaxMultiplier,
			Step:          cfg.Step,
			Sections: sectionLabelsResponse{
				Interpretability: cfg.Sections.Interpretability,
				Sources:          cfg.Sections.Sources,
				Metrics:          cfg.Sections.Metrics,
				Scenario:         cfg.Sections.Scenario,
			},
			Attributions:  toAttributionResponses(overview.Attributions),
			Sources:       toSourceResponses(overview.Sources),
			Metrics:       toMetricResponses(overview.Metrics),
			RiskFactors:   toRiskFactorResponses(overview.RiskFactors),
		}
		writeJSON(r.Context(), w, resp)
	}
}

func interpretabilityHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := uc.Interpretability(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}
		writeJSON(r.Context(), w, toAttributionResponses(rows))
	}
}

func sourcesHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := uc.Sources(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}
		writeJSON(r.Context(), w, toSourceResponses(rows))
	}
}

func metricsHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := uc.Metrics(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}
		writeJSON(r.Context(), w, toMetricResponses(rows))
	}
}

func riskProfileHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := uc.RiskProfile(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}
		writeJSON(r.Context(), w, toRiskFactorResponses(rows))
	}
}

func toAttributionResponses(rows []model.FeatureAttribution) []attributionResponse {
	out := make([]attributionResponse, len(rows))
	for i, row := range rows {
		out[i] = attributionResponse{
			Feature:    row.Feature,
			SHAPValue:  row.SHAPValue,
			LIMEWeight: row.LIMEWeight,
		}
	}
	return out
}

func toSourceResponses(rows []model.DataSource) []sourceResponse {
	out := make([]sourceResponse, len(rows))
	for i, row := range rows {
		out[i] = sourceResponse{Name: row.Name, Share: row.Share}
	}
	return out
}

func toMetricResponses(rows []model.ModelMetric) []metricResponse {
	out := make([]metricResponse, len(rows))
	for i, row := range rows {
		out[i] = metricResponse{
			Model:          row.Model,
			Accuracy:       row.Accuracy,
			ComplianceRate: row.ComplianceRate,
		}
		if !row.Date.IsZero() {
			out[i].Date = row.Date.Format("2006-01-02")
		}
	}
	return out
}

func toRiskFactorResponses(rows []model.RiskFactor) []riskFactorResponse {
	out := make([]riskFactorResponse, len(rows))
	for i, row := range rows {
		out[i] = riskFactorResponse{
			Name:             row.Name.String(),
			BaseContribution: row.BaseContribution,
			Correlation:      row.Correlation,
		}
	}
	return out
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(ctx, w, data)
}
