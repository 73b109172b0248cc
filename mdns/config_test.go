package mdns

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3, cfg.ProbeCount)
	assert.Equal(t, 2, cfg.AnnounceCount)
	assert.Equal(t, 250*time.Millisecond, cfg.ProbeInterval)
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mdns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("probe_count: 5\nservices:\n  - instance: Printer\n    type: _ipp._tcp\n    domain: local\n    port: 631\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.ProbeCount)
	assert.Equal(t, 2, cfg.AnnounceCount) // default preserved
	require.Len(t, cfg.Services, 1)
	assert.Equal(t, "Printer", cfg.Services[0].Instance)
	assert.Equal(t, uint16(631), cfg.Services[0].Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/mdns.yaml")
	assert.Error(t, err)
}
