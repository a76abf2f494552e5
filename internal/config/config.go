package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendYAML  = "yaml"
	BackendMySQL = "mysql"
)

type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Pictograms PictogramsConfig `mapstructure:"pictograms"`
	Server     ServerConfig     `mapstructure:"server"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
}

type StorageConfig struct {
	Backend           string `mapstructure:"backend" validate:"oneof=yaml mysql"`
	RoutinesDirectory string `mapstructure:"routines_directory" validate:"required"`
	UserFile          string `mapstructure:"user_file" validate:"required"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database     string `mapstructure:"database"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	TLS          bool   `mapstructure:"tls"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

type PictogramsConfig struct {
	Host                 string `mapstructure:"host" validate:"required"`
	CacheDirectory       string `mapstructure:"cache_directory"`
	Language             string `mapstructure:"language" validate:"required"`
	SearchDebounceMillis int    `mapstructure:"search_debounce_millis" validate:"gte=0"`
	RetryAttempts        uint   `mapstructure:"retry_attempts" validate:"lte=10"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"gte=1,lte=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/rutinas")
	}

	v.SetDefault("storage.backend", BackendYAML)
	v.SetDefault("storage.routines_directory", filepath.Join("data", "routines"))
	v.SetDefault("storage.user_file", filepath.Join("data", "user.yml"))
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "rutinas")
	v.SetDefault("database.user", "rutinas")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("pictograms.host", "api.arasaac.org")
	v.SetDefault("pictograms.cache_directory", filepath.Join("data", "pictograms"))
	v.SetDefault("pictograms.language", "es")
	v.SetDefault("pictograms.search_debounce_millis", 400)
	v.SetDefault("pictograms.retry_attempts", 2)
	v.SetDefault("server.port", 8080)
	v.SetDefault("outputs.export_directory", filepath.Join("outputs", "routines"))

	// Secrets come from the environment only, never from the config file.
	if err := v.BindEnv("database.password", "RUTINAS_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind RUTINAS_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("pictograms.host", "ARASAAC_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind ARASAAC_HOST environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator > %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				messages = append(messages, fieldError.Translate(trans))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("validate.Struct > %w", err)
	}
	return nil
}
