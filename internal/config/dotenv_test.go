package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotEnv(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestDotEnvFiles_Order(t *testing.T) {
	files := dotEnvFiles("/srv", "staging")

	assert.Equal(t, []string{
		"/srv/.env.staging.local",
		"/srv/.env.staging",
		"/srv/.env.local",
		"/srv/.env",
	}, files)
}

func TestDotEnvFiles_DefaultMode(t *testing.T) {
	files := dotEnvFiles("/srv", "")

	assert.Equal(t, "/srv/.env.production.local", files[0])
	assert.Equal(t, "/srv/.env.production", files[1])
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	clearEnvVars(t)

	err := loadDotEnv(t.TempDir(), "development")

	require.NoError(t, err)
	_, ok := os.LookupEnv("APP_TITLE")
	assert.False(t, ok)
}

func TestLoadDotEnv_ModeFileWins(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	writeDotEnv(t, dir, ".env", "APP_TITLE=Orbit Base\nAPP_VERSION=0.1.0\n")
	writeDotEnv(t, dir, ".env.staging", "APP_TITLE=Orbit Staging\n")

	require.NoError(t, loadDotEnv(dir, "staging"))

	assert.Equal(t, "Orbit Staging", os.Getenv("APP_TITLE"))
	assert.Equal(t, "0.1.0", os.Getenv("APP_VERSION"))
}

func TestLoadDotEnv_LocalOverridesShared(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	writeDotEnv(t, dir, ".env", "BASE_URL=/\n")
	writeDotEnv(t, dir, ".env.local", "BASE_URL=/local/\n")
	writeDotEnv(t, dir, ".env.production", "BASE_URL=/prod/\n")
	writeDotEnv(t, dir, ".env.production.local", "BASE_URL=/prod-local/\n")

	require.NoError(t, loadDotEnv(dir, ""))

	assert.Equal(t, "/prod-local/", os.Getenv("BASE_URL"))
}

func TestLoadDotEnv_ProcessEnvWins(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_LOG_LEVEL", "warn")
	dir := t.TempDir()
	writeDotEnv(t, dir, ".env", "APP_LOG_LEVEL=debug\n")

	require.NoError(t, loadDotEnv(dir, "production"))

	assert.Equal(t, "warn", os.Getenv("APP_LOG_LEVEL"))
}

func TestLoadDotEnv_MalformedFile(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	writeDotEnv(t, dir, ".env", "APP_TITLE='unterminated\n")

	err := loadDotEnv(dir, "production")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading dotenv file")
}

func TestLoadDotEnv_FeedsParseEnv(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	writeDotEnv(t, dir, ".env", "APP_CANISTER_ID_APP_WALLET=abc\nPROD=true\n")

	require.NoError(t, loadDotEnv(dir, "production"))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "abc", cfg.App.Canisters.AppWallet)
	assert.True(t, cfg.App.Production)
}
