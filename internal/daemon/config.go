// Package daemon manages the heropath daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/heropath-app/heropath/internal/domain"
)

// Config holds all daemon configuration.
type Config struct {
	Engine     EngineConfig      `toml:"engine"`
	Activities []ActivityConfig  `toml:"activity"`
	Stages     []domain.StageDef `toml:"stage"`
	API        APIConfig         `toml:"api"`
	Telemetry  TelemetryConfig   `toml:"telemetry"`
	Logging    LoggingConfig     `toml:"logging"`
}

// EngineConfig tunes the progress engine.
type EngineConfig struct {
	BasePointsPerDay      int    `toml:"base_points_per_day"`
	WeeklyRewardThreshold int    `toml:"weekly_reward_threshold"`
	DefaultReward         string `toml:"default_reward"`
}

// ActivityConfig is one catalog entry.
type ActivityConfig struct {
	Label  string `toml:"label"`
	Points int    `toml:"points"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// TelemetryConfig controls observability endpoints.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns the out-of-the-box configuration: the original
// eight-activity catalog, the six hero's-journey stages, and a 15-point
// daily goal.
func DefaultConfig() Config {
	homeDir := heropathHome()
	return Config{
		Engine: EngineConfig{
			BasePointsPerDay:      15,
			WeeklyRewardThreshold: 100,
			DefaultReward:         "Treat yourself when you reach 100 weekly points!",
		},
		Activities: []ActivityConfig{
			{Label: "Trained", Points: 10},
			{Label: "Walked 30 min", Points: 5},
			{Label: "Ate healthy", Points: 5},
			{Label: "Slept 7h+", Points: 5},
			{Label: "No screens", Points: 5},
			{Label: "Reflected", Points: 5},
			{Label: "Work task", Points: 10},
			{Label: "Learned something", Points: 5},
		},
		Stages: []domain.StageDef{
			{Level: 1, Name: "The Call to Adventure", Color: "#4CAF50", Weight: 0.8},
			{Level: 2, Name: "First Steps", Color: "#00BCD4", Weight: 0.9},
			{Level: 3, Name: "The Road of Trials", Color: "#FFEB3B", Weight: 1.0},
			{Level: 4, Name: "Facing the Abyss", Color: "#F44336", Weight: 1.1},
			{Level: 5, Name: "Leap of Faith", Color: "#9C27B0", Weight: 1.2},
			{Level: 6, Name: "Eternal Glory", Color: "#FFD700", Weight: 1.0},
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        7315,
			CORSOrigins: []string{"*"},
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "heropath.log"),
		},
	}
}

// LoadConfig reads config from ~/.heropath/config.toml, falling back to
// defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(heropathHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.heropath/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(heropathHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// Validate checks the catalog and stage configuration.
func (c Config) Validate() error {
	if c.Engine.BasePointsPerDay <= 0 {
		return domain.ErrBasePointsGoal
	}
	if c.Engine.WeeklyRewardThreshold <= 0 {
		return domain.ErrRewardThreshold
	}
	if len(c.Stages) != 6 {
		return domain.ErrStageCount
	}

	seen := make(map[string]bool, len(c.Activities))
	for _, a := range c.Activities {
		if a.Points <= 0 {
			return fmt.Errorf("%w: %q", domain.ErrActivityPoints, a.Label)
		}
		if seen[a.Label] {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateLabel, a.Label)
		}
		seen[a.Label] = true
	}
	return nil
}

// Catalog converts the configured activities into domain entries.
func (c Config) Catalog() []domain.Activity {
	catalog := make([]domain.Activity, len(c.Activities))
	for i, a := range c.Activities {
		catalog[i] = domain.Activity{Label: a.Label, Points: a.Points}
	}
	return catalog
}

// heropathHome returns the heropath data directory.
func heropathHome() string {
	if env := os.Getenv("HEROPATH_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".heropath")
}

// Home is exported for use by other packages.
func Home() string {
	return heropathHome()
}
