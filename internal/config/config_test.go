package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 9090, cfg.MetricsPort)
	assert.Equal(t, "pos.db", cfg.DatabasePath)
	assert.Empty(t, cfg.WasteReasons)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("port: 9000\ndatabase_path: /tmp/test.db\nwaste_reasons:\n  - kitchen_error\n  - dropped\n")
	assert.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 9090, cfg.MetricsPort) // unset falls back to default
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, []string{"kitchen_error", "dropped"}, cfg.WasteReasons)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
