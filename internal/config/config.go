// Package config resolves the demo host's settings with precedence
// flags > env > config file > defaults.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "PERSISTENTSEARCH"

const (
	DefaultLogFile        = "persistentsearch.log"
	DefaultLogLevel       = "info"
	DefaultMaxSuggestions = 5
)

type Config struct {
	Hint           string `mapstructure:"hint"`
	Attrs          string `mapstructure:"attrs"`
	Suggestions    string `mapstructure:"suggestions"`
	Watch          bool   `mapstructure:"watch"`
	LogFile        string `mapstructure:"log_file"`
	LogLevel       string `mapstructure:"log_level"`
	MaxSuggestions int    `mapstructure:"max_suggestions"`
}

// RegisterFlags declares every flag Load understands on cmd.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (toml, yaml or json)")
	fs.String("hint", "", "placeholder shown in the empty search box (env: PERSISTENTSEARCH_HINT)")
	fs.String("attrs", "", "TOML file with styling attributes")
	fs.StringP("suggestions", "s", "", "YAML or plain-text file with one suggestion per entry")
	fs.Bool("watch", false, "reload suggestions when the file changes")
	fs.String("log-file", DefaultLogFile, "log destination, empty to disable")
	fs.String("log-level", DefaultLogLevel, "debug, info, warn or error")
	fs.Int("max-suggestions", DefaultMaxSuggestions, "rows shown before the list scrolls")
}

// Load builds a Config from cmd's flags, PERSISTENTSEARCH_* variables and the
// optional --config file.
func Load(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	fs := cmd.Flags()
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})

	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("hint", "")
	v.SetDefault("attrs", "")
	v.SetDefault("suggestions", "")
	v.SetDefault("watch", false)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("max_suggestions", DefaultMaxSuggestions)
}

func (c Config) Validate() error {
	if c.MaxSuggestions < 1 {
		return fmt.Errorf("max_suggestions must be > 0")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Watch && c.Suggestions == "" {
		return fmt.Errorf("watch requires a suggestions file")
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
