package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
			"timeout": "10s",
		},
		"tokenStore": map[string]any{
			"path": "",
		},
		"gate": map[string]any{
			"loginPath": "/login",
		},
		"log": nil,
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_TIMEOUT", want: "api.timeout"},
		{envKey: "TOKENSTORE_PATH", want: "tokenStore.path"},
		{envKey: "GATE_LOGINPATH", want: "gate.loginPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "LOG_LEVEL", want: "log.level"},
		{envKey: "API_TIMEOUT_MS", want: ""},
		{envKey: "GATE_LOGINPATH_SUFFIX", want: ""},
		{envKey: "API", want: ""},
		{envKey: "TOKENSTORE", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  env: test
  serviceName: jobboard
api:
  baseUrl: http://yaml.example
  timeout: 3s
tokenStore:
  path: ""
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jobboard-test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("API_BASEURL", "http://env.example/")

	cfg, err := LoadWithEnv[Config]("jobboard-test")
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, "http://env.example", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, defaultTokenStorePath, cfg.TokenStore.Path)
	assert.Equal(t, "/login", cfg.Gate.LoginPath)
	assert.Equal(t, "/", cfg.Gate.HomePath)
	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
}

func TestLoadWithEnv_IgnoresVariablesBelowScalarKeys(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  env: test
api:
  baseUrl: http://yaml.example
  timeout: 3s
gate:
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jobboard-test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("API_TIMEOUT_MS", "250")
	t.Setenv("API", "unrelated")
	t.Setenv("GATE_LOGINPATH", "/signin")

	cfg, err := LoadWithEnv[Config]("jobboard-test")
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "http://yaml.example", cfg.API.BaseURL)
	assert.Equal(t, "/signin", cfg.Gate.LoginPath)
}
