package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// BlackoutOverride marks recurring dates on which no meeting is held.
// Meeting dates matching the rrule are generated as blackout meetings.
type BlackoutOverride struct {
	RRule  string `yaml:"rrule" validate:"required"`
	Reason string `yaml:"reason,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL       string             `yaml:"databaseURL" validate:"required"`
	RosterSheetID     string             `yaml:"rosterSheetID,omitempty"`
	RosterTab         string             `yaml:"rosterTab,omitempty"`
	BlackoutOverrides []BlackoutOverride `yaml:"blackoutOverrides,omitempty" validate:"dive"`
}

// BlackoutRules returns the raw rrule strings of every blackout override
func (c *Config) BlackoutRules() []string {
	rules := make([]string, len(c.BlackoutOverrides))
	for i, override := range c.BlackoutOverrides {
		rules[i] = override.RRule
	}
	return rules
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from club_scheduler_config.yaml,
// looking in the current directory first, then in the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, override := range cfg.BlackoutOverrides {
		if _, err := rrule.StrToRRule(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in blackoutOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in cwd and home directory
func findConfigFile() (string, error) {
	configFileName := "club_scheduler_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
