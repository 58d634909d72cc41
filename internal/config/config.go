package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileName = "weekshift.yaml"

// Config represents the application configuration.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// CalendarID identifies the Google Calendar imports read from. Left
	// empty, every import fails with a "not configured" outcome before any
	// external call is made.
	CalendarID string `yaml:"calendarID,omitempty"`

	// Timezone is the IANA zone events are bucketed into. Defaults to UTC.
	Timezone string `yaml:"timezone,omitempty"`

	// AnchorRule is the RRULE describing the cadence schedules anchor to.
	// Defaults to the upcoming Monday of each week.
	AnchorRule string `yaml:"anchorRule,omitempty"`

	// CredentialsFile optionally points at the Google service-account JSON.
	// When empty, serviceAccount.json is searched for in the current and
	// home directories.
	CredentialsFile string `yaml:"credentialsFile,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from weekshift.yaml, searching
// the current directory first and then the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
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

// Validate validates the configuration struct, the anchor rule syntax, and
// the timezone.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.AnchorRule != "" {
		if _, err := rrule.StrToRRule(cfg.AnchorRule); err != nil {
			return fmt.Errorf("invalid anchorRule: %w", err)
		}
	}

	if cfg.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Timezone); err != nil {
			return fmt.Errorf("invalid timezone: %w", err)
		}
	}

	return nil
}

// Location returns the configured timezone, defaulting to UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	return loc, nil
}

// findConfigFile searches for weekshift.yaml in the current directory and
// the home directory.
func findConfigFile() (string, error) {
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
