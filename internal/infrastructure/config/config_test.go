package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTPServer.Address)
	assert.Equal(t, 3000, cfg.HTTPServer.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTPServer.ListenAddr())
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTPServer.Port)
}

func TestLoad_DriverFromEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, cfg.Database.Driver)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDatabase_URL(t *testing.T) {
	db := config.Database{
		Username: "app",
		Password: "p@ss word",
		Host:     "db",
		Port:     "5432",
		DbName:   "timeline",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/timeline?sslmode=disable", db.URL("postgres"))
	assert.Equal(t, "pgx5://app:p%40ss%20word@db:5432/timeline?sslmode=disable", db.URL("pgx5"))
}
