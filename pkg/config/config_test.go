package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitasport-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "vitasport-api", cfg.App.Name)
	assert.Equal(t, "vitasport", cfg.DB.DBName)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 480, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("JWT_SECRET", "super-secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "super-secreto", cfg.JWT.Secret)
}

// DATABASE_URL tiene prioridad sobre los campos sueltos.
func TestConnectionString_DatabaseURLPrioridad(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgres://app:pw@remoto:5432/ventas",
		Host:        "localhost",
	}
	assert.Equal(t, "postgres://app:pw@remoto:5432/ventas", db.ConnectionString())
}

// El DSN construido escapa caracteres especiales de la contraseña.
func TestDSN_EscapaPassword(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "vitasport",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}
