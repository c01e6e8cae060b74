// Package config loads runtime settings from defaults, an optional
// config.yaml and HEALTHLOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"

	"github.com/terraincognita07/healthlog/internal/security"
)

const EnvPrefix = "HEALTHLOG"

var (
	ErrInvalidPort      = errors.New("port must be between 1 and 65535")
	ErrInvalidTimezone  = errors.New("unknown timezone")
	ErrInvalidLogLevel  = errors.New("log level must be debug, info, warn or error")
	ErrInvalidLogFormat = errors.New("log format must be text or json")
)

type Config struct {
	DBPath          string `mapstructure:"db_path"`
	Port            string `mapstructure:"port"`
	SecretKey       string `mapstructure:"secret_key"`
	Timezone        string `mapstructure:"timezone"`
	DefaultLanguage string `mapstructure:"default_language"`
	LogLevel        string `mapstructure:"log_level"`
	LogFormat       string `mapstructure:"log_format"`
}

// Load reads configuration. configFile may be empty, in which case
// config.yaml is looked up in the working directory and ./config; a missing
// file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", filepath.Join("data", "healthlog.db"))
	v.SetDefault("port", "8080")
	v.SetDefault("secret_key", "")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("default_language", "en")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names kept for container setups.
	_ = v.BindEnv("db_path", EnvPrefix+"_DB_PATH", "DB_PATH")
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
	_ = v.BindEnv("secret_key", EnvPrefix+"_SECRET_KEY", "SECRET_KEY")
	_ = v.BindEnv("timezone", EnvPrefix+"_TIMEZONE", "TZ")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) normalize() {
	c.DBPath = strings.TrimSpace(c.DBPath)
	c.Port = strings.TrimSpace(c.Port)
	c.SecretKey = strings.TrimSpace(c.SecretKey)
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.DefaultLanguage = strings.TrimSpace(c.DefaultLanguage)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate checks the settings every command needs. The secret is checked
// separately by ValidateSecret because offline commands do not use it.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, c.Port)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// ValidateSecret is required by the commands that sign or verify API tokens.
func (c *Config) ValidateSecret() error {
	if err := security.ValidateSecret(c.SecretKey); err != nil {
		return fmt.Errorf("secret_key: %w", err)
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Timezone)
	}
	return location, nil
}

func (c *Config) Address() string {
	return ":" + c.Port
}
