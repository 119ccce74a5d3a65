package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Component identifies which dashboard section a dataset row belongs to.
// The values match the `Component` column of the source CSV.
type Component string

const (
	// ComponentInterpretability holds SHAP/LIME feature attribution rows
	ComponentInterpretability Component = "Model Interpretability"
	// ComponentDataSources holds data source share rows
	ComponentDataSources Component = "Data Sources"
	// ComponentKeyMetrics holds model accuracy and compliance rate rows
	ComponentKeyMetrics Component = "Key Metrics"
	// ComponentScenario holds risk factor rows for scenario testing
	ComponentScenario Component = "Real-World Scenario"
)

// Components returns all known components in display order
func Components() []Component {
	return []Component{
		ComponentInterpretability,
		ComponentDataSources,
		ComponentKeyMetrics,
		ComponentScenario,
	}
}

// Validate checks if the Component is a known section
func (c Component) Validate() error {
	switch c {
	case ComponentInterpretability, ComponentDataSources, ComponentKeyMetrics, ComponentScenario:
		return nil
	}
	return goerr.New("unknown component", goerr.V("component", c))
}

// String returns the string representation of Component
func (c Component) String() string {
	return string(c)
}
