package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.App.StoreDriver)
	assert.Equal(t, 100, cfg.Listing.PageSize)
	assert.Equal(t, "0.0.0.0:3001", cfg.HTTP.Addr())
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("VACANCY_PAGE_SIZE", "25")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.Listing.PageSize)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORE_DRIVER", "mongo")
	_, err = Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "jobs", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/jobs?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
