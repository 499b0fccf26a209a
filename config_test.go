package bintoken_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bintoken"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("TOKEN_ISSUER", "myapp")

	cfg, err := bintoken.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Secret)
	assert.Equal(t, 30*time.Minute, cfg.TTL)
	assert.Equal(t, "myapp", cfg.Issuer)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "env-secret")
	os.Unsetenv("TOKEN_TTL")
	os.Unsetenv("TOKEN_ISSUER")

	cfg, err := bintoken.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.TTL)
	assert.Empty(t, cfg.Issuer)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	os.Unsetenv("TOKEN_SECRET")

	_, err := bintoken.LoadConfig()
	require.Error(t, err)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "1m")

	svc, err := bintoken.NewFromEnv()
	require.NoError(t, err)

	token, _, err := svc.Issue("user-42")
	require.NoError(t, err)

	got, err := bintoken.VerifyToken[bintoken.Claims]("env-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", got.Subject)
}
