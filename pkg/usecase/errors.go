package usecase

import "errors"

// Sentinel errors for use case layer. The scenario errors are recoverable:
// the UI keeps its previous valid result and shows an inline message.
var (
	// ErrMissingFactor means the scenario input lacks a multiplier for a
	// known risk factor
	ErrMissingFactor = errors.New("missing multiplier for risk factor")

	// ErrUnknownFactor means the scenario input names a factor that is not
	// in the dataset
	ErrUnknownFactor = errors.New("unknown risk factor")

	// ErrInvalidMultiplier means a multiplier is negative, non-finite, or
	// above the configured maximum
	ErrInvalidMultiplier = errors.New("invalid multiplier")
)

// Context keys for error values
const (
	FactorKey     = "factor"
	MultiplierKey = "multiplier"
	MaxKey        = "max_multiplier"
)
