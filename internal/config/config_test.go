package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "./input", cfg.InputDir)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "./input_archive", cfg.InputArchiveDir)
	assert.Equal(t, "./reports", cfg.ReportDir)
	assert.Equal(t, 100, cfg.MaxErrors)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ',', cfg.DelimiterRune())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
input_dir: /data/in
max_errors: 5
delimiter: "|"
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, 5, cfg.MaxErrors)
	assert.Equal(t, '|', cfg.DelimiterRune())
	assert.Equal(t, "debug", cfg.LogLevel)

	// Unset options fall back to defaults.
	assert.Equal(t, "./output", cfg.OutputDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "input_dir: [unclosed"},
		{name: "negative max_errors", content: "max_errors: -1"},
		{name: "multi-char delimiter", content: `delimiter: "||"`},
		{name: "unknown log level", content: "log_level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
