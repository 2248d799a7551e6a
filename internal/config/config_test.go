package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	RegisterFlags(cmd.Flags())
	return cmd
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HINT", "ATTRS", "SUGGESTIONS", "WATCH", "LOG_FILE", "LOG_LEVEL", "MAX_SUGGESTIONS"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+"_"+k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(newTestCmd())
	require.NoError(t, err)

	assert.Equal(t, Config{
		LogFile:        DefaultLogFile,
		LogLevel:       DefaultLogLevel,
		MaxSuggestions: DefaultMaxSuggestions,
	}, cfg)
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "search.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
hint = "from file"
max_suggestions = 9
log_level = "warn"
`), 0o644))

	t.Setenv("PERSISTENTSEARCH_HINT", "from env")
	t.Setenv("PERSISTENTSEARCH_MAX_SUGGESTIONS", "7")

	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("hint", "from flag"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "from flag", cfg.Hint)
	assert.Equal(t, 7, cfg.MaxSuggestions)
	assert.Equal(t, "warn", cfg.LogLevel)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.toml")))

	_, err := Load(cmd)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{LogLevel: "info", MaxSuggestions: 1}
	require.NoError(t, base.Validate())

	bad := base
	bad.MaxSuggestions = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.LogLevel = "loud"
	assert.Error(t, bad.Validate())

	bad = base
	bad.Watch = true
	assert.Error(t, bad.Validate())

	bad.Suggestions = "fruit.txt"
	assert.NoError(t, bad.Validate())
}
