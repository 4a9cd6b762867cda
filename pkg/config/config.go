package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP              HTTP
	Logger            Logger
	Postgres          Postgres
	Kafka             Kafka
	ClientsServiceURL string `env:"CLIENTS_SERVICE_URL"`
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers             []string `env:"KAFKA_BROKERS"`
	ConsumerID          string   `env:"KAFKA_CONSUMER_ID" envDefault:"schedule-service"`
	ClientUpdatedTopic  string   `env:"KAFKA_CLIENT_UPDATED_TOPIC"`
	ScheduleSyncedTopic string   `env:"KAFKA_SCHEDULE_SYNCED_TOPIC"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
