package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Provider ProviderConfig
	Database DatabaseConfig
	FCM      FCMConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Addr string `envconfig:"SERVER_ADDR" default:":8080"`
}

type ProviderConfig struct {
	BaseURL         string        `envconfig:"PROVIDER_BASE_URL" default:"https://api.coingecko.com/api/v3"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"1m"`
	RequestTimeout  time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"15s"`
}

type DatabaseConfig struct {
	// Empty URL switches persistence to process memory.
	URL      string `envconfig:"DATABASE_URL"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type FCMConfig struct {
	CredentialsPath string `envconfig:"FIREBASE_CREDENTIALS_PATH"`
	CredentialsJSON string `envconfig:"FIREBASE_CREDENTIALS_JSON"`
}

type NotifyConfig struct {
	Cooldown time.Duration `envconfig:"NOTIFY_COOLDOWN" default:"30m"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
