package config

// DashboardConfig holds the presentation settings and scenario slider
// bounds shared by the HTTP layer and the use cases
type DashboardConfig struct {
	Title         string
	Description   string
	MaxMultiplier float64
	Step          float64
	Sections      SectionLabels
}

// SectionLabels are the headings of the four dashboard sections
type SectionLabels struct {
	Interpretability string
	Sources          string
	Metrics          string
	Scenario         string
}
