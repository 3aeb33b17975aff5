package internal

import (
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hartmannw/navigate/internal/frecency"
	"github.com/hartmannw/navigate/internal/menu"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Database DatabaseConfig    `yaml:"database"`
	Frecency FrecencyConfig    `yaml:"frecency"`
	Menu     MenuConfig        `yaml:"menu"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Frecency.Validate(); err != nil {
		return err
	}
	return c.Menu.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// DatabaseConfig holds the database file settings. The file always lives
// inside the data directory, so Filename must be a bare name. A name ending
// in .gz selects gzip compression for the stored database.
type DatabaseConfig struct {
	Filename string `yaml:"filename"`
}

// Validate validates the database configuration.
func (c *DatabaseConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Filename, validation.Required, validation.By(bareFilename)),
	)
}

func bareFilename(value interface{}) error {
	name, _ := value.(string)
	if name != filepath.Base(name) {
		return errors.New("must be a bare file name")
	}
	return nil
}

// FrecencyConfig tunes the visit-scoring model.
type FrecencyConfig struct {
	DiscountFactor float64 `yaml:"discount_factor"`
	MaxAgeDays     int     `yaml:"max_age_days"`
}

// Validate validates the frecency configuration.
func (c *FrecencyConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DiscountFactor, validation.Required, validation.Min(0.0).Exclusive(), validation.Max(1.0)),
		validation.Field(&c.MaxAgeDays, validation.Required, validation.Min(1)),
	)
}

// Model returns the scoring model tuned by this configuration.
func (c *FrecencyConfig) Model() frecency.Model {
	return frecency.Model{
		Discount: c.DiscountFactor,
		MaxAge:   time.Duration(c.MaxAgeDays) * 24 * time.Hour,
	}
}

// MenuConfig holds interactive menu settings.
type MenuConfig struct {
	MaxChoices int `yaml:"max_choices"`
}

// Validate validates the menu configuration.
func (c *MenuConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MaxChoices, validation.Required, validation.Min(1)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Database: DatabaseConfig{
			Filename: "navigate.json",
		},
		Frecency: FrecencyConfig{
			DiscountFactor: frecency.DiscountFactor,
			MaxAgeDays:     30,
		},
		Menu: MenuConfig{
			MaxChoices: menu.MaxChoices,
		},
	}
}
