package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorContains(t, err, "read config file")
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"main": {
			"log-level": "debug",
			"metrics": true
		},
		"key-recovery": {
			"max-concurrent-rooms": 4,
			"request-timeout": "5s",
			"peer-cooldown": "1m"
		}
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.CollectMetrics)
	require.Equal(t, 4, cfg.KeyRecovery.MaxConcurrentRooms)
	require.Equal(t, 5*time.Second, cfg.KeyRecovery.RequestTimeout)
	require.Equal(t, time.Minute, cfg.KeyRecovery.PeerCooldown)
	// untouched fields keep their defaults
	require.Equal(t, 150*time.Millisecond, cfg.KeyRecovery.ScanInterval)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"key-recovery": {"no-such-knob": 1}
	}`), 0o600))

	_, err := Load(path)
	require.ErrorContains(t, err, "unmarshal config")
}
