package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, defaultReadTimeout, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 8080
	cfg.Session = &SessionConfig{CookieName: "custom_session", Secure: true}

	applyDefaults(cfg)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "custom_session", cfg.Session.CookieName)
	assert.True(t, cfg.Session.Secure)
}

func TestApplyDefaults_BlankCookieName(t *testing.T) {
	cfg := &Config{Session: &SessionConfig{CookieName: "   "}}

	applyDefaults(cfg)

	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	content := `
env:
  env: test
  serviceName: ladle
  log:
    level: debug
http:
  port: 6000
  timeouts:
    readTimeout: 5s
session:
  cookieName: test_session
auth:
  bcryptCost: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "ladle", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 6000, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, "test_session", cfg.Session.CookieName)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := `
session:
  cookiename: from_yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("SESSION_COOKIENAME", "from_env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Session)
	assert.Equal(t, "from_env", cfg.Session.CookieName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = LoadWithEnv[Config]("nonexistent")
	assert.Error(t, err)
}
