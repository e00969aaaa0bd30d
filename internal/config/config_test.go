package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Format: FormatTable, LogLevel: "warn", LogFormat: "text"}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	viper.SetEnvPrefix("LONGPATH")
	viper.AutomaticEnv()
	t.Setenv("LONGPATH_FORMAT", "json")
	t.Setenv("LONGPATH_EARLY_EXIT", "true")
	t.Setenv("LONGPATH_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.EarlyExit)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_ConfigFile(t *testing.T) {
	viper.Reset()
	p := filepath.Join(t.TempDir(), ".longpath.yaml")
	require.NoError(t, os.WriteFile(p, []byte("format: plain\nlog_format: json\n"), 0o600))
	viper.SetConfigFile(p)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, cfg.Format)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	base := Config{Format: FormatTable, LogLevel: "info", LogFormat: "text"}
	require.NoError(t, base.Validate())

	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "xml" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"log format", func(c *Config) { c.LogFormat = "logfmt" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mut(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	Config{LogLevel: "info", LogFormat: "json"}.Logger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	Config{LogLevel: "info", LogFormat: "json"}.Logger(&buf).Info("shown", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":1`)
}
