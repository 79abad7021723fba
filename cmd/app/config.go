package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	Environment    string `mapstructure:"ENVIRONMENT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	DB       DBConfig       `mapstructure:",squash"`
	RabbitMQ RabbitMQConfig `mapstructure:",squash"`
}

type DBConfig struct {
	Host     string `mapstructure:"POSTGRES_HOST"`
	Port     string `mapstructure:"POSTGRES_PORT"`
	User     string `mapstructure:"POSTGRES_USER"`
	Password string `mapstructure:"POSTGRES_PASSWORD"`
	Name     string `mapstructure:"POSTGRES_DB"`
}

// RabbitMQConfig is optional. An empty host runs the service without events.
type RabbitMQConfig struct {
	Host     string `mapstructure:"RABBITMQ_HOST"`
	Port     string `mapstructure:"RABBITMQ_PORT"`
	User     string `mapstructure:"RABBITMQ_USER"`
	Password string `mapstructure:"RABBITMQ_PASSWORD"`
}

var configDefaults = map[string]any{
	"PORT":              "3003",
	"ENVIRONMENT":       "development",
	"LOG_LEVEL":         "info",
	"MIGRATIONS_PATH":   "file://migrations",
	"POSTGRES_HOST":     "localhost",
	"POSTGRES_PORT":     "5432",
	"POSTGRES_USER":     "postgres",
	"POSTGRES_PASSWORD": "postgres",
	"POSTGRES_DB":       "bloglist",
	"RABBITMQ_HOST":     "",
	"RABBITMQ_PORT":     "5672",
	"RABBITMQ_USER":     "guest",
	"RABBITMQ_PASSWORD": "guest",
}

// loadConfig reads the env file at path and lets process environment variables
// override it. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("invalid ENVIRONMENT %q: must be development, production or test", c.Environment)
	}

	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}

	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) EventsEnabled() bool {
	return c.RabbitMQ.Host != ""
}
