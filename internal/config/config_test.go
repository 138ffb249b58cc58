package config_test

import (
	"testing"

	"signup/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load(viper.New())

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverPostgres, cfg.DatabaseDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, "/login", cfg.LoginURL)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "account_events", cfg.RabbitMQQueue)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DATABASE_DRIVER", config.DriverSQLite)
	t.Setenv("DATABASE_DSN", "file:signup.db")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("BCRYPT_COST", "12")

	cfg := config.Load(viper.New())

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "file:signup.db", cfg.DatabaseDSN)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_OutOfRangeCostFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "99")

	cfg := config.Load(viper.New())

	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}
