package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
	"github.com/finwatch-lab/anchorboard/pkg/domain/types"
	"github.com/finwatch-lab/anchorboard/pkg/usecase"
	"github.com/finwatch-lab/anchorboard/pkg/utils/errutil"
	"github.com/finwatch-lab/anchorboard/pkg/utils/logging"
)

type scenarioRequest struct {
	Multipliers map[string]float64 `json:"multipliers"`
}

type contributionResponse struct {
	Name         string  `json:"name"`
	Base         float64 `json:"base"`
	Multiplier   float64 `json:"multiplier"`
	Contribution float64 `json:"contribution"`
}

type scenarioResponse struct {
	ID             string                 `json:"id"`
	Contributions  []contributionResponse `json:"contributions"`
	AggregateScore float64                `json:"aggregate_score"`
	Saturated      bool                   `json:"saturated"`
}

type scenarioErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func scenarioHandler(uc *usecase.ScenarioUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scenarioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeScenarioError(w, r, http.StatusBadRequest, "bad_request",
				goerr.Wrap(err, "failed to decode scenario request"))
			return
		}

		input := make(model.ScenarioInput, len(req.Multipliers))
		for name, multiplier := range req.Multipliers {
			input[types.FactorName(name)] = multiplier
		}

		result, err := uc.Recompute(r.Context(), input)
		if err != nil {
			code, status := scenarioErrorCode(err)
			if status >= http.StatusInternalServerError {
				errutil.HandleHTTP(r.Context(), w, err, status)
				return
			}
			writeScenarioError(w, r, status, code, err)
			return
		}

		resp := scenarioResponse{
			ID:             result.ID.String(),
			Contributions:  make([]contributionResponse, len(result.Contributions)),
			AggregateScore: result.AggregateScore,
			Saturated:      result.Saturated,
		}
		for i, c := range result.Contributions {
			resp.Contributions[i] = contributionResponse{
				Name:         c.Name.String(),
				Base:         c.Base,
				Multiplier:   c.Multiplier,
				Contribution: c.Contribution,
			}
		}
		writeJSON(r.Context(), w, resp)
	}
}

// scenarioErrorCode maps the recoverable scenario error taxonomy to
// machine-readable codes for the inline UI message
func scenarioErrorCode(err error) (string, int) {
	switch {
	case errors.Is(err, usecase.ErrMissingFactor):
		return "missing_factor", http.StatusBadRequest
	case errors.Is(err, usecase.ErrUnknownFactor):
		return "unknown_factor", http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidMultiplier):
		return "invalid_multiplier", http.StatusBadRequest
	}
	return "internal", http.StatusInternalServerError
}

func writeScenarioError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	logging.From(r.Context()).Warn("scenario request rejected",
		"code", code,
		"error", err.Error(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := scenarioErrorResponse{Code: code, Message: err.Error()}
	if data, merr := json.Marshal(resp); merr == nil {
		_, _ = w.Write(data)
	}
}
