package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix for application settings
const EnvPrefix = "CATFIGHT"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title string `mapstructure:"title"`
	// Scale multiplies the arena size to get the window size.
	Scale int `mapstructure:"scale"`
}

// AssetsConfig points at optional sprite files.
type AssetsConfig struct {
	// Dir holds player, opponent and background images. Empty disables sprites.
	Dir string `mapstructure:"dir"`
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// ControlsConfig binds actions to normalized key names.
type ControlsConfig struct {
	Left  string `mapstructure:"left"`
	Right string `mapstructure:"right"`
	Jump  string `mapstructure:"jump"`
	Punch string `mapstructure:"punch"`
	Kick  string `mapstructure:"kick"`
	Laser string `mapstructure:"laser"`
}

// Keys returns every bound key name
func (c ControlsConfig) Keys() []string {
	return []string{c.Left, c.Right, c.Jump, c.Punch, c.Kick, c.Laser}
}

// DefaultControls returns the arrow-keys layout
func DefaultControls() ControlsConfig {
	return ControlsConfig{
		Left:  "arrowleft",
		Right: "arrowright",
		Jump:  "space",
		Punch: "e",
		Kick:  "s",
		Laser: "d",
	}
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Display  WindowConfig   `mapstructure:"display"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Controls ControlsConfig `mapstructure:"controls"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

// Validate checks all application settings.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c AppConfig) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}
	if c.Display.Scale < 1 {
		errs = append(errs, fmt.Sprintf("display.scale must be >= 1, got %d", c.Display.Scale))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Sprintf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	seen := make(map[string]bool)
	for _, key := range c.Controls.Keys() {
		if key == "" {
			errs = append(errs, "controls must not contain empty bindings")
			continue
		}
		if seen[key] {
			errs = append(errs, fmt.Sprintf("controls bind %q more than once", key))
		}
		seen[key] = true
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

// LoadApp reads application settings from the optional YAML file at path,
// applies CATFIGHT_* environment overrides, and validates the result.
// An empty path uses defaults and environment only.
func LoadApp(path string) (AppConfig, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setAppDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadAppFromViper(v)
}

// LoadAppFromViper builds an AppConfig from an already-configured Viper instance.
func LoadAppFromViper(v *viper.Viper) (AppConfig, error) {
	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func setAppDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("display.title", "Cat Fighter")
	v.SetDefault("display.scale", 1)

	v.SetDefault("assets.dir", "")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	controls := DefaultControls()
	v.SetDefault("controls.left", controls.Left)
	v.SetDefault("controls.right", controls.Right)
	v.SetDefault("controls.jump", controls.Jump)
	v.SetDefault("controls.punch", controls.Punch)
	v.SetDefault("controls.kick", controls.Kick)
	v.SetDefault("controls.laser", controls.Laser)

	v.SetDefault("seed", 0)
}
