package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Host           string
		Port           int
		User           string
		Password       string
		Name           string
		SSLMode        string
		TimeZone       string
		MaxOpenConns   int
		MaxIdleConns   int
		ConnMaxLifeMin int
	}
}

// Load reads config.yaml from the working directory, with SPONSRA_-prefixed
// environment variables overriding file values. A missing file is fine; the
// defaults below describe a local development setup.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SPONSRA")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "sponsra")
	v.SetDefault("database.password", "sponsra")
	v.SetDefault("database.name", "sponsra_db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.maxopenconns", 10)
	v.SetDefault("database.maxidleconns", 5)
	v.SetDefault("database.connmaxlifemin", 30)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" || cfg.Database.User == "" || cfg.Database.Name == "" {
		return nil, fmt.Errorf("invalid database config: host/user/name must not be empty")
	}

	return &cfg, nil
}
