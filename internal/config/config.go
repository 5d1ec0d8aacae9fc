package config

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	IBGE     *IBGEConfig     `mapstructure:"ibge"`
}

type APIConfig struct {
	Environment       string `mapstructure:"environment"`
	BaseURL           string `mapstructure:"base_url"`
	Port              string `mapstructure:"port"`
	AllowedOrigin     string `mapstructure:"allowed_origin"`
	AssetBaseURL      string `mapstructure:"asset_base_url"`
	DefaultPointImage string `mapstructure:"default_point_image"`
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
}

type IBGEConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info(fmt.Sprintf("config file changed - %v", e.Name))
	})
	viper.WatchConfig()

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	loadEnvVariables(conf)

	return conf, nil
}

// loadEnvVariables lets deployment environment variables override what
// the config file declares.
func loadEnvVariables(conf *AppConfig) {
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		conf.API.Environment = v
	}

	if v := os.Getenv("PORT"); v != "" {
		conf.API.Port = v
	}

	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		conf.API.AllowedOrigin = v
	}

	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		conf.Postgres.Host = v
	}

	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		conf.Postgres.Port = v
	}

	if v := os.Getenv("POSTGRES_USER"); v != "" {
		conf.Postgres.User = v
	}

	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		conf.Postgres.Password = v
	}

	if v := os.Getenv("POSTGRES_DB"); v != "" {
		conf.Postgres.DB = v
	}
}
