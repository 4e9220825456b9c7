package config

import (
	"fmt"
	"path/filepath"

	"github.com/oportunidadeshoy/migration-tools/pkg/serviceaccount"
	"github.com/spf13/viper"
)

// Config holds all configuration for the migration tools
type Config struct {
	ServiceAccount ServiceAccountConfig
	Migration      MigrationConfig
	LogLevel       string
}

// ServiceAccountConfig holds service-account key settings
type ServiceAccountConfig struct {
	KeyFile string
}

// MigrationConfig holds migrator-specific settings
type MigrationConfig struct {
	FixturesDir string
	BatchSize   int
}

// Load loads configuration from environment variables and an optional
// config file under path. Defaults reproduce the fixed operator contract:
// fixtures and the key file in the current directory, batches of 500.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(filepath.Join(path, "config"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Read configuration
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file is not found, defaults and env apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Migration.BatchSize <= 0 {
		return nil, fmt.Errorf("migration batch size must be positive, got %d", config.Migration.BatchSize)
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceAccount.KeyFile", serviceaccount.DefaultKeyFile)
	v.SetDefault("Migration.FixturesDir", ".")
	v.SetDefault("Migration.BatchSize", 500)
	v.SetDefault("LogLevel", "info")
}
