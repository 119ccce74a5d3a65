package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/finwatch-lab/anchorboard/pkg/cli/config"
)

func TestDefaultDashboard(t *testing.T) {
	cfg := config.DefaultDashboard()
	gt.NoError(t, cfg.Validate())
	gt.Number(t, cfg.Scenario.MaxMultiplier).Equal(2.0)
	gt.Number(t, cfg.Scenario.Step).Equal(0.05)
	gt.Value(t, cfg.Sections.Sources).Equal("Data Sources")
}

func TestDashboardValidate_BadScenarioBounds(t *testing.T) {
	cases := map[string]config.Scenario{
		"zeroMax":        {MaxMultiplier: 0, Step: 0.05},
		"negativeMax":    {MaxMultiplier: -1, Step: 0.05},
		"zeroStep":       {MaxMultiplier: 2, Step: 0},
		"stepAboveRange": {MaxMultiplier: 2, Step: 3},
	}

	for name, scenario := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultDashboard()
			cfg.Scenario = scenario
			err := cfg.Validate()
			gt.Error(t, err)
			gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
		})
	}
}

func TestDashboardValidate_EmptyTitle(t *testing.T) {
	cfg := config.DefaultDashboard()
	cfg.Title = ""
	err := cfg.Validate()
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
}

func TestDashboardValidate_EmptySectionLabel(t *testing.T) {
	cfg := config.DefaultDashboard()
	cfg.Sections.Metrics = ""
	err := cfg.Validate()
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
}

func TestLoadDashboardTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.toml")
	content := `title = "Custom Risk Dashboard"
description = "Test description"

[sections]
metrics = "Model Performance"

[scenario]
max_multiplier = 3.0
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()

	cfg, err := config.LoadDashboard(path)
	gt.NoError(t, err).Required()

	gt.Value(t, cfg.Title).Equal("Custom Risk Dashboard")
	gt.Number(t, cfg.Scenario.MaxMultiplier).Equal(3.0)
	gt.Value(t, cfg.Sections.Metrics).Equal("Model Performance")
	// Fields absent from the file keep their defaults
	gt.Number(t, cfg.Scenario.Step).Equal(0.05)
	gt.Value(t, cfg.Sections.Sources).Equal("Data Sources")
}

func TestLoadDashboardTOML_NotFound(t *testing.T) {
	_, err := config.LoadDashboard(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrConfigNotFound)).True()
}

func TestLoadDashboardTOML_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.toml")
	content := `title = "Broken"

[scenario]
max_multiplier = -2.0
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()

	_, err := config.LoadDashboard(path)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
}

func TestToDomainDashboardConfig(t *testing.T) {
	cfg := config.DefaultDashboard()
	domain := cfg.ToDomainDashboardConfig()

	gt.Value(t, domain.Title).Equal(cfg.Title)
	gt.Number(t, domain.MaxMultiplier).Equal(cfg.Scenario.MaxMultiplier)
	gt.Number(t, domain.Step).Equal(cfg.Scenario.Step)
	gt.Value(t, domain.Sections.Scenario).Equal(cfg.Sections.Scenario)
}
