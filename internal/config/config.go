// Package config loads runtime settings from a YAML file, PLANR_*
// environment variables and built-in defaults, in that order of precedence
// (environment wins over the file).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sadopc/planr/internal/store"
)

const envPrefix = "PLANR"

type Config struct {
	DatabasePath string        `mapstructure:"database_path"`
	LogFile      string        `mapstructure:"log_file"`
	LogLevel     string        `mapstructure:"log_level"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	ExportDir    string        `mapstructure:"export_dir"`
	// Bell disables the terminal bell globally when false, regardless of
	// the in-app sound preference.
	Bell bool `mapstructure:"bell"`
}

// Dir returns the per-user planr directory, e.g. ~/.config/planr.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, "planr"), nil
}

// Load reads configuration. configPath overrides the search path; a missing
// file in the search path is not an error, a missing explicit file is.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return nil, fmt.Errorf("locate database: %w", err)
	}
	home, _ := os.UserHomeDir()
	v.SetDefault("database_path", dbPath)
	v.SetDefault("log_file", filepath.Join(dir, "planr.log"))
	v.SetDefault("log_level", "info")
	v.SetDefault("tick_interval", time.Second)
	v.SetDefault("export_dir", home)
	v.SetDefault("bell", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.TickInterval < 10*time.Millisecond {
		cfg.TickInterval = time.Second
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return &cfg, nil
}

// Used reports the config file viper would have read for configPath, for
// display in `planr status`.
func Used(configPath string) string {
	if configPath != "" {
		return configPath
	}
	dir, err := Dir()
	if err != nil {
		return ""
	}
	for _, p := range []string{"config.yaml", filepath.Join(dir, "config.yaml")} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
