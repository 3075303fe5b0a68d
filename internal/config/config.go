package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST"`
		Port int    `yaml:"port" env:"SERVER_PORT"`
		Env  string `yaml:"env" env:"SERVER_ENV"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver" env:"DATABASE_DRIVER"` // postgres, mysql, sqlite
		DSN    string `yaml:"url" env:"DATABASE_URL"`
		Seed   bool   `yaml:"seed" env:"DATABASE_SEED"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET"`
		TTL    int    `yaml:"ttl" env:"JWT_TTL"` // минуты
	} `yaml:"jwt"`

	Mongo struct {
		URL      string `yaml:"url" env:"MONGO_URL"` // пусто - предпочтения только логируются
		Database string `yaml:"database" env:"MONGO_DB_NAME"`
	} `yaml:"mongo"`

	Templates struct {
		Dir string `yaml:"dir" env:"TEMPLATES_DIR"`
	} `yaml:"templates"`
}

// Default возвращает конфигурацию для локальной разработки (sqlite рядом с бинарником).
func Default() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "placement.db"
	cfg.Database.Seed = true
	cfg.JWT.Secret = "change-me"
	cfg.JWT.TTL = 60
	cfg.Mongo.Database = "placement_tracker_mongo"
	cfg.Templates.Dir = "templates"
	return &cfg
}

// Load собирает конфигурацию: значения по умолчанию, затем config.yaml (если есть),
// затем .env и переменные окружения.
func Load() (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Config file %s not found, using defaults and environment", configPath)
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("invalid jwt ttl %d", c.JWT.TTL)
	}
	return nil
}

// IsProduction - в продакшене причины 5xx ошибок не отдаются клиенту.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
