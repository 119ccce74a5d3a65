package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/finwatch-lab/anchorboard/pkg/domain/model/config"
)

// Dashboard is the optional TOML configuration of the dashboard page.
// Every field has a default; the file only overrides presentation and the
// scenario slider bounds.
type Dashboard struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Sections    Sections `toml:"sections"`
	Scenario    Scenario `toml:"scenario"`
}

// Sections holds the headings of the four dashboard sections
type Sections struct {
	Interpretability string `toml:"interpretability"`
	Sources          string `toml:"sources"`
	Metrics          string `toml:"metrics"`
	Scenario         string `toml:"scenario"`
}

// Scenario holds the slider bounds for scenario testing
type Scenario struct {
	MaxMultiplier float64 `toml:"max_multiplier"`
	Step          float64 `toml:"step"`
}

// DefaultDashboard returns the configuration used when no file is given
func DefaultDashboard() *Dashboard {
	return &Dashboard{
		Title:       "Financial Risk Prediction Dashboard",
		Description: "An interactive dashboard showcasing SHAP insights, data sources, key metrics, and financial risk prediction scenarios.",
		Sections: Sections{
			Interpretability: "Model Interpretability (SHAP & LIME)",
			Sources:          "Data Sources",
			Metrics:          "Key Metrics & Performance",
			Scenario:         "Real-World Scenario Testing",
		},
		Scenario: Scenario{
			MaxMultiplier: 2.0,
			Step:          0.05,
		},
	}
}

// Validate checks if the Scenario bounds are usable
func (s *Scenario) Validate() error {
	if s.MaxMultiplier <= 0 {
		return goerr.Wrap(ErrInvalidConfig, "max_multiplier must be positive",
			goerr.V(FieldKey, "scenario.max_multiplier"), goerr.V("value", s.MaxMultiplier))
	}
	if s.Step <= 0 || s.Step > s.MaxMultiplier {
		return goerr.Wrap(ErrInvalidConfig, "step must be positive and not exceed max_multiplier",
			goerr.V(FieldKey, "scenario.step"), goerr.V("value", s.Step))
	}
	return nil
}

// Validate checks if the Sections labels are usable
func (s *Sections) Validate() error {
	labels := map[string]string{
		"sections.interpretability": s.Interpretability,
		"sections.sources":          s.Sources,
		"sections.metrics":          s.Metrics,
		"sections.scenario":         s.Scenario,
	}
	for field, label := range labels {
		if label == "" {
			return goerr.Wrap(ErrInvalidConfig, "section label cannot be empty",
				goerr.V(FieldKey, field))
		}
	}
	return nil
}

// Validate checks if the Dashboard configuration is valid
func (d *Dashboard) Validate() error {
	if d.Title == "" {
		return goerr.Wrap(ErrInvalidConfig, "title is required", goerr.V(FieldKey, "title"))
	}
	if err := d.Sections.Validate(); err != nil {
		return err
	}
	return d.Scenario.Validate()
}

// ToDomainDashboardConfig converts the TOML configuration to the domain
// DashboardConfig consumed by the use cases and the HTTP layer
func (d *Dashboard) ToDomainDashboardConfig() *domainConfig.DashboardConfig {
	return &domainConfig.DashboardConfig{
		Title:         d.Title,
		Description:   d.Description,
		MaxMultiplier: d.Scenario.MaxMultiplier,
		Step:          d.Scenario.Step,
		Sections: domainConfig.SectionLabels{
			Interpretability: d.Sections.Interpretability,
			Sources:          d.Sections.Sources,
			Metrics:          d.Sections.Metrics,
			Scenario:         d.Sections.Scenario,
		},
	}
}

// App holds the CLI flag for the optional dashboard configuration file
type App struct {
	configPath string
}

// Flags returns CLI flags for the dashboard configuration
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to dashboard configuration TOML (optional)",
			Sources:     cli.EnvVars("ANCHORBOARD_CONFIG"),
			Destination: &a.configPath,
		},
	}
}

// Path returns the configured file path, empty when defaults apply
func (a *App) Path() string {
	return a.configPath
}

// Configure loads and validates the dashboard configuration, falling back
// to defaults when no file is given
func (a *App) Configure() (*Dashboard, error) {
	if a.configPath == "" {
		return DefaultDashboard(), nil
	}
	return LoadDashboard(a.configPath)
}

// LoadDashboard loads the dashboard configuration from a TOML file. File
// values override the defaults field-by-field.
func LoadDashboard(path string) (*Dashboard, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	cfg := DefaultDashboard()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed",
			goerr.V(ConfigPathKey, path))
	}

	return cfg, nil
}
