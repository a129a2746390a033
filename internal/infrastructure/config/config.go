package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is read from the process environment (a .env file is autoloaded by
// the entrypoint).
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	DatabaseURL   string `env:"DATABASE_URL"`

	DynamoDB DynamoDBConfig
}

type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	CreateTables    bool   `env:"DYNAMODB_CREATE_TABLES" envDefault:"false"`
	TablePrefix     string `env:"DYNAMODB_TABLE_PREFIX"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	case StoragePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
