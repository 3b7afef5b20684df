// Package config loads runtime settings from defaults, an optional file and CORRIDOR_* env vars
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/corridor/parameter"
)

// EnvPrefix namespaces environment overrides, session.maxHealth reads CORRIDOR_SESSION_MAXHEALTH
const EnvPrefix = "CORRIDOR"

// SessionConfig holds starting values for each session
type SessionConfig struct {
	MaxHealth    int  `json:"maxHealth" mapstructure:"maxHealth"`
	StartingAmmo int  `json:"startingAmmo" mapstructure:"startingAmmo"`
	NoClip       bool `json:"noClip" mapstructure:"noClip"`
}

// AudioConfig holds cue player settings
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// InputConfig holds terminal input settings
type InputConfig struct {
	// HoldWindow keeps a movement key held between terminal auto-repeats, e.g. "500ms"
	HoldWindow time.Duration `json:"holdWindow" mapstructure:"holdWindow"`
}

// TelemetryConfig toggles the metric recorder
type TelemetryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// Config is the full runtime configuration
type Config struct {
	LogLevel string `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string `json:"logFile" mapstructure:"logFile"`
	TickRate int    `json:"tickRate" mapstructure:"tickRate"`
	Seed     uint64 `json:"seed" mapstructure:"seed"` // Zero seeds from the clock

	Session   SessionConfig   `json:"session" mapstructure:"session"`
	Audio     AudioConfig     `json:"audio" mapstructure:"audio"`
	Input     InputConfig     `json:"input" mapstructure:"input"`
	Telemetry TelemetryConfig `json:"telemetry" mapstructure:"telemetry"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("tickRate", parameter.TickRate)
	v.SetDefault("seed", 0)

	v.SetDefault("session.maxHealth", parameter.PlayerMaxHealth)
	v.SetDefault("session.startingAmmo", parameter.StartingAmmo)
	v.SetDefault("session.noClip", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioDefaultVolume)

	v.SetDefault("input.holdWindow", parameter.KeyHoldWindow)

	v.SetDefault("telemetry.enabled", false)
}

// Load builds a Config from defaults, the file at path when non-empty, then the environment
// The file format follows its extension: json, toml or yaml
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used without a file or environment
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: defaults invalid: %v", err))
	}
	return cfg
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tickRate must be positive, got %d", c.TickRate))
	}
	if c.Session.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("session.maxHealth must be positive, got %d", c.Session.MaxHealth))
	}
	if c.Session.StartingAmmo < 0 {
		errs = append(errs, fmt.Errorf("session.startingAmmo must not be negative, got %d", c.Session.StartingAmmo))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("input.holdWindow must be positive, got %v", c.Input.HoldWindow))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// TickInterval returns the simulation step for TickRate
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
