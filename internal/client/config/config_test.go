package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"foodcourt"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)
	cfg := LoadConfig()

	require.Equal(t, "https://api-bootcamp.do.dibimbing.id", cfg.BaseURL)
	require.NotEmpty(t, cfg.APIKey)
	require.Equal(t, "foodcourt.db", cfg.DatabaseFile)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Env(t *testing.T) {
	withArgs(t)
	t.Setenv("FOODCOURT_BASE_URL", "https://env.example.com")
	t.Setenv("FOODCOURT_API_KEY", "env-key")
	t.Setenv("FOODCOURT_TIMEOUT", "7s")

	cfg := LoadConfig()
	require.Equal(t, "https://env.example.com", cfg.BaseURL)
	require.Equal(t, "env-key", cfg.APIKey)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
	require.Equal(t, "foodcourt.db", cfg.DatabaseFile, "unset vars keep defaults")
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "https://json.example.com",
		"database_file": "json.db",
		"request_timeout": "30s"
	}`), 0o600))
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com", cfg.BaseURL)
	require.Equal(t, "json.db", cfg.DatabaseFile)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsWinOverJSONAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url": "https://json.example.com"}`), 0o600))

	t.Setenv("FOODCOURT_BASE_URL", "https://env.example.com")
	withArgs(t, "-c", path, "-a", "https://flag.example.com", "-t", "3")

	cfg := LoadConfig()
	require.Equal(t, "https://flag.example.com", cfg.BaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JSONWinsOverEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": "json-key"}`), 0o600))

	t.Setenv("FOODCOURT_API_KEY", "env-key")
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "json-key", cfg.APIKey)
}
