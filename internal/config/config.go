package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/drill/internal/observability"
	"github.com/abhisek/drill/internal/spacedrep"
)

// EnvPrefix is prepended to every environment variable, e.g. DRILL_ADDR.
const EnvPrefix = "DRILL"

// Keys shared by flags, environment variables and Viper lookups.
const (
	KeyDB        = "db"
	KeyAddr      = "addr"
	KeyScheduler = "scheduler"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyMode      = "mode"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG path.
	DBPath string
	// Addr is the HTTP listen address for `drill serve`.
	Addr string
	// Scheduler names the strategy used for live review submission.
	Scheduler string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
	// Mode is "prod" or "dev".
	Mode string
}

// IsDev reports whether the process runs in development mode.
func (c *Config) IsDev() bool {
	return c.Mode != "prod"
}

// NewViper returns a Viper instance with defaults and DRILL_* environment
// bindings applied. Command-line flags are bound on top by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyAddr, "127.0.0.1:8000")
	v.SetDefault(KeyScheduler, spacedrep.NameSpacedRepetition)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyMode, "prod")
	return v
}

// Load reads the configuration out of v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DBPath:    v.GetString(KeyDB),
		Addr:      v.GetString(KeyAddr),
		Scheduler: v.GetString(KeyScheduler),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Mode:      v.GetString(KeyMode),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := spacedrep.Dispatch(c.Scheduler, nil); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w (valid: %s)", KeyScheduler, err, strings.Join(spacedrep.Names(), ", ")))
	}
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, fmt.Errorf("%s: must not be empty", KeyAddr))
	}
	if _, err := observability.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", KeyLogLevel, err))
	}
	if !slices.Contains([]string{"text", "json"}, strings.ToLower(c.LogFormat)) {
		errs = append(errs, fmt.Errorf("%s: invalid format %q (valid: text, json)", KeyLogFormat, c.LogFormat))
	}
	if c.Mode != "prod" && c.Mode != "dev" {
		errs = append(errs, fmt.Errorf("%s: invalid mode %q (valid: prod, dev)", KeyMode, c.Mode))
	}

	return errors.Join(errs...)
}
