package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	level := &slog.LevelVar{}
	cmd := NewRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)), level, viper.New(), &bytes.Buffer{})

	for _, name := range []string{"serve", "migrate", "seed"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestServeCmd_PortFlagOverridesConfig(t *testing.T) {
	v := viper.New()
	level := &slog.LevelVar{}
	cmd := NewRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)), level, v, &bytes.Buffer{})
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	require.NoError(t, serve.Flags().Set("port", "8081"))
	assert.Equal(t, "8081", v.GetString("APP_PORT"))
}

func TestVerboseFlag_SetsDebugLevel(t *testing.T) {
	level := &slog.LevelVar{}
	cmd := NewRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)), level, viper.New(), &bytes.Buffer{})
	require.NoError(t, cmd.PersistentFlags().Set("verbose", "true"))

	cmd.PersistentPreRun(cmd, nil)
	assert.Equal(t, slog.LevelDebug, level.Level())
}
