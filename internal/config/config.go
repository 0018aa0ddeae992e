// Package config provides configuration management for the gridkit driver
// using Viper for loading from files, environment variables and command-line
// flags.
//
// Sources, highest priority first:
//  1. command-line flags bound to keys (--mode, --log-level, ...)
//  2. GRIDKIT_<SECTION>_<OPTION> environment variables
//  3. the config file: --config, else GRIDKIT_CONFIG_FILE, else .gridkit.yml
//  4. built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/gridkit/pathfind"
	"github.com/katalvlaran/gridkit/position"
)

// EnvPrefix prefixes every environment variable read by the driver.
const EnvPrefix = "GRIDKIT"

// EnvConfigFile names the environment variable holding a config file path.
const EnvConfigFile = EnvPrefix + "_CONFIG_FILE"

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete gridkit configuration.
type Config struct {
	Grid   GridConfig   `mapstructure:"grid" yaml:"grid"`
	Search SearchConfig `mapstructure:"search" yaml:"search"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// GridConfig names the cell characters of input maps. Each is one byte.
type GridConfig struct {
	Free   string `mapstructure:"free" yaml:"free"`
	Wall   string `mapstructure:"wall" yaml:"wall"`
	Start  string `mapstructure:"start" yaml:"start"`
	Finish string `mapstructure:"finish" yaml:"finish"`
	// Facing is the start direction glyph: ^ > v <.
	Facing string `mapstructure:"facing" yaml:"facing"`
}

// SearchConfig selects the search mode and its costs.
type SearchConfig struct {
	Mode        string `mapstructure:"mode" yaml:"mode"`
	TurnPenalty int    `mapstructure:"turn_penalty" yaml:"turn_penalty"`
	// Slack applies to the bounded mode only; the others prune exactly.
	Slack   int `mapstructure:"slack" yaml:"slack"`
	MaxCost int `mapstructure:"max_cost" yaml:"max_cost"`
}

// OutputConfig selects how command results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig sets the logger level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{"text", "json", "yaml"}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("grid.free", ".")
	v.SetDefault("grid.wall", "#")
	v.SetDefault("grid.start", "S")
	v.SetDefault("grid.finish", "E")
	v.SetDefault("grid.facing", ">")
	v.SetDefault("search.mode", pathfind.ModeBoundedPaths.String())
	v.SetDefault("search.turn_penalty", pathfind.DefaultTurnPenalty)
	v.SetDefault("search.slack", pathfind.DefaultSlack)
	v.SetDefault("search.max_cost", 0)
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// New returns a Viper instance with defaults and GRIDKIT_ environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// ReadFile points v at a config file and reads it. An explicit path wins over
// GRIDKIT_CONFIG_FILE; with neither, .gridkit.yml in the working directory is
// read if present. It returns the file used, or "" if none was found.
func ReadFile(v *viper.Viper, path string) (string, error) {
	explicit := true
	switch {
	case path != "":
		v.SetConfigFile(path)
	case os.Getenv(EnvConfigFile) != "":
		v.SetConfigFile(os.Getenv(EnvConfigFile))
	default:
		explicit = false
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".gridkit")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("config: read: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting and reports the first problem found.
func (c *Config) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"grid.free", c.Grid.Free},
		{"grid.wall", c.Grid.Wall},
		{"grid.start", c.Grid.Start},
		{"grid.finish", c.Grid.Finish},
		{"grid.facing", c.Grid.Facing},
	} {
		if len(f.value) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, f.name, f.value)
		}
	}
	if !position.FromGlyph(c.Grid.Facing[0]).IsCardinal() {
		return fmt.Errorf("%w: grid.facing %q is not one of ^ > v <", ErrInvalidConfig, c.Grid.Facing)
	}
	if _, err := pathfind.ParseMode(c.Search.Mode); err != nil {
		return fmt.Errorf("%w: search.mode: %v", ErrInvalidConfig, err)
	}
	if c.Search.TurnPenalty < 0 || c.Search.Slack < 0 || c.Search.MaxCost < 0 {
		return fmt.Errorf("%w: search costs cannot be negative", ErrInvalidConfig)
	}
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (want one of %s)",
			ErrInvalidConfig, c.Output.Format, strings.Join(OutputFormats, ", "))
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// StartDirection returns the start facing as a direction.
func (g GridConfig) StartDirection() position.Direction {
	return position.FromGlyph(g.Facing[0])
}

// SearchMode returns the configured mode. Validate guarantees it parses.
func (s SearchConfig) SearchMode() pathfind.Mode {
	m, _ := pathfind.ParseMode(s.Mode)
	return m
}

// Options translates the search settings into pathfind options.
func (s SearchConfig) Options() []pathfind.Option {
	opts := []pathfind.Option{
		pathfind.WithTurnPenalty(s.TurnPenalty),
		pathfind.WithMaxCost(s.MaxCost),
	}
	if s.SearchMode() == pathfind.ModeBoundedPaths {
		opts = append(opts, pathfind.WithSlack(s.Slack))
	}
	return opts
}
