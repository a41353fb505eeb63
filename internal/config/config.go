package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Belgrade"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8090"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Backend struct {
		URL      string `env:"BARBERBOOK_API_URL" envDefault:"http://localhost:8080"`
		BasePath string `env:"BARBERBOOK_API_BASE_PATH" envDefault:"/api/v1"`
	}

	Telegram struct {
		Enabled bool   `env:"TELEGRAM_ENABLED"`
		Token   string `env:"TELEGRAM_BOT_TOKEN"`
		Debug   bool   `env:"TELEGRAM_DEBUG"`
	}

	Cache struct {
		Enabled     bool `env:"CACHE_ENABLED" envDefault:"true"`
		CatalogSize int  `env:"CACHE_CATALOG_SIZE" envDefault:"256"`
	}

	TokenStore struct {
		Dir string `env:"TOKEN_STORE_DIR"`
	}
}

func NewConfig() (*Config, error) {
	// .env is optional, real environments configure via the process env
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
