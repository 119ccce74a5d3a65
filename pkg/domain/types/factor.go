package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// FactorName represents the unique name of a risk factor, e.g.
// "Loan-to-Income Ratio". Names come from the dataset and are treated as
// opaque display strings.
type FactorName string

// Validate checks if the FactorName is valid
func (f FactorName) Validate() error {
	if f == "" {
		return goerr.New("risk factor name cannot be empty")
	}
	return nil
}

// String returns the string representation of FactorName
func (f FactorName) String() string {
	return string(f)
}
