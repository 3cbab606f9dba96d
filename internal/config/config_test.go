package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every field has its default
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.Equal(t, "Make your move (row-column) [e.g. 0-0]:", conf.Console.Prompt)
		assert.Equal(t, "-", conf.Console.Separator)
		assert.False(t, conf.Console.Rematch)
	})

	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nlog-format: json\nconsole:\n  separator: \",\"\n  rematch: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values are used, the rest keeps defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
		assert.Equal(t, ",", conf.Console.Separator)
		assert.True(t, conf.Console.Rematch)
		assert.Equal(t, "Make your move (row-column) [e.g. 0-0]:", conf.Console.Prompt)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: environment variables
		t.Setenv("LOG_LEVEL", "info")
		t.Setenv("TICTACTOE_SEPARATOR", " ")

		// When: the config is loaded without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: environment values are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, " ", conf.Console.Separator)
	})

	t.Run("Unknown log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrUnknownLogLevel)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Empty separator", func(t *testing.T) {
		conf := &Config{LogLevel: "info", LogFormat: "text"}

		require.ErrorIs(t, conf.Validate(), ErrEmptySeparator)
	})

	t.Run("Unknown log format", func(t *testing.T) {
		conf := &Config{LogLevel: "info", LogFormat: "xml", Console: Console{Separator: "-"}}

		require.ErrorIs(t, conf.Validate(), ErrUnknownLogFormat)
	})

	t.Run("Valid", func(t *testing.T) {
		conf := &Config{LogLevel: "error", LogFormat: "json", Console: Console{Separator: "-"}}

		require.NoError(t, conf.Validate())
	})
}

func TestMustLoad(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
	})
}
