// Package config loads runtime settings from the environment through viper.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Supported values of DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds runtime settings for the registration service.
type Config struct {
	AppPort        string
	DatabaseDriver string
	DatabaseDSN    string
	AutoMigrate    bool
	BcryptCost     int
	LoginURL       string
	RabbitMQURL    string
	RabbitMQQueue  string
	LogLevel       string
	LogFormat      string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=signup port=5432 sslmode=disable")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("LOGIN_URL", "/login")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "account_events")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads the configuration from v, falling back to defaults.
// In the dev environment a local .env file is loaded first.
func Load(v *viper.Viper) Config {
	if os.Getenv("ENV") == "dev" {
		_ = godotenv.Load()
	}

	SetDefaults(v)
	v.AutomaticEnv()

	cost := v.GetInt("BCRYPT_COST")
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return Config{
		AppPort:        v.GetString("APP_PORT"),
		DatabaseDriver: v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		AutoMigrate:    v.GetBool("AUTO_MIGRATE"),
		BcryptCost:     cost,
		LoginURL:       v.GetString("LOGIN_URL"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:  v.GetString("RABBITMQ_QUEUE"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
	}
}
