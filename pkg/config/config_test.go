package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/informetec/visitas-web/pkg/config"
)

func TestLoad_SinSecretFallaEnElArranque(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := config.Load()

	require.Error(t, err, "sin secreto no debe arrancar; fallar aquí y no en el primer login")
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_ConSecretAplicaDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "super-secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "super-secreto", cfg.Sesion.Secret)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 480, cfg.Sesion.Expiration)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("SESSION_SECRET", "super-secreto")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("BACKEND_BASE_URL", "http://backend:5000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "http://backend:5000", cfg.Backend.BaseURL)
}
