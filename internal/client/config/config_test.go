package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8000", cfg.ServerBaseURL)
	require.NotEmpty(t, cfg.StateFile)
	require.Equal(t, "session.json", filepath.Base(cfg.StateFile))
}

func TestParseJson_OverlaysPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url":"http://api:9000"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"client", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	stateFile := cfg.StateFile
	parseJson(cfg)

	require.Equal(t, "http://api:9000", cfg.ServerBaseURL)
	// field absent from JSON keeps its default
	require.Equal(t, stateFile, cfg.StateFile)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"client", "-a", "http://other:8000", "-f", "/tmp/s.json"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://other:8000", cfg.ServerBaseURL)
	require.Equal(t, "/tmp/s.json", cfg.StateFile)
}
