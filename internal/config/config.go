// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/medintake/examsched/internal/schedule"
)

// SchedulingConfig carries the slot-generation parameters the admin portal
// maintains. Working hours are minutes from UTC midnight; duration options
// are minutes.
type SchedulingConfig struct {
	StartWorkingHourUTC int   `yaml:"start_working_hour_utc"`
	EndWorkingHourUTC   int   `yaml:"end_working_hour_utc"`
	DurationOptions     []int `yaml:"duration_options"`
	MinDaysAhead        int   `yaml:"min_days_ahead"`
	MaxDaysAhead        int   `yaml:"max_days_ahead"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
	} `yaml:"app"`

	Scheduling SchedulingConfig `yaml:"scheduling"`
}

// Load loads both .env and yaml configuration. Defaults are applied before
// validation, so a minimal file naming only the app is usable.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if env := os.Getenv("APP_ENVIRONMENT"); env != "" {
		cfg.App.Environment = env
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	sched := &c.Scheduling
	if sched.StartWorkingHourUTC == 0 && sched.EndWorkingHourUTC == 0 {
		sched.StartWorkingHourUTC = schedule.DefaultStartMinuteUTC
		sched.EndWorkingHourUTC = schedule.DefaultEndMinuteUTC
	}
	if len(sched.DurationOptions) == 0 {
		sched.DurationOptions = []int{30, 45, 60}
	}
	if sched.MaxDaysAhead == 0 {
		sched.MaxDaysAhead = 30
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}

	sched := c.Scheduling
	if _, err := schedule.NewWorkingHours(sched.StartWorkingHourUTC, sched.EndWorkingHourUTC); err != nil {
		return fmt.Errorf("working hours: %w", err)
	}
	for _, minutes := range sched.DurationOptions {
		if minutes <= 0 {
			return fmt.Errorf("duration option %d must be positive", minutes)
		}
	}
	if sched.MinDaysAhead < 0 {
		return fmt.Errorf("min days ahead must not be negative")
	}
	if sched.MaxDaysAhead < sched.MinDaysAhead {
		return fmt.Errorf("max days ahead %d is before min days ahead %d", sched.MaxDaysAhead, sched.MinDaysAhead)
	}

	return nil
}

// WorkingHours returns the validated working window.
func (c *Config) WorkingHours() schedule.WorkingHours {
	return schedule.WorkingHours{
		StartMinuteUTC: c.Scheduling.StartWorkingHourUTC,
		EndMinuteUTC:   c.Scheduling.EndWorkingHourUTC,
	}
}

// DefaultDurationMinutes returns the first configured duration option.
func (c *Config) DefaultDurationMinutes() int {
	return c.Scheduling.DurationOptions[0]
}
