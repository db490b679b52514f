package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Load reads the YAML config file and overrides any key that has a
// matching environment variable (e.g. API_PORT, POSTGRES_HOST).
func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	bindEnvs := map[string]string{
		"api.environment":          "API_ENVIRONMENT",
		"api.base_url":             "API_BASE_URL",
		"api.port":                 "API_PORT",
		"api.allowed_cors_domains": "API_ALLOWED_CORS_DOMAINS",
		"gin.mode":                 "GIN_MODE",
		"postgres.host":            "POSTGRES_HOST",
		"postgres.port":            "POSTGRES_PORT",
		"postgres.user":            "POSTGRES_USER",
		"postgres.password":        "POSTGRES_PASSWORD",
		"postgres.db":              "POSTGRES_DB",
		"postgres.sslmode":         "POSTGRES_SSLMODE",
	}
	for key, env := range bindEnvs {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("viper.BindEnv -> %w", err)
		}
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return conf, nil
}
