package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/zboyco/toast-mcp/internal/config"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", dir)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	// Flag values and Changed bits survive between Execute calls.
	defer resetFlags(rootCmd)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestGreetCommand(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "greet", "Ada")
	require.NoError(t, err)
	require.Equal(t, "Hello, Ada! You've been greeted from Go!\n", out)
}

func TestIdentityCommandUnpackaged(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("depends on how the binary was launched")
	}
	isolateConfig(t)

	out, err := execute(t, "identity")
	require.NoError(t, err)
	require.Equal(t, "Not packaged\n", out)
}

func TestNotifyCommandRejectsTooManyArgs(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "notify", "a", "b", "c")
	require.Error(t, err)
}

func TestConfigCommandSavesAndShows(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "config", "--app-id", "Contoso.Toast", "--level", "debug")
	require.NoError(t, err)

	cfgPath, err := config.Path()
	require.NoError(t, err)
	require.FileExists(t, cfgPath)

	out, err := execute(t, "config")
	require.NoError(t, err)

	var got config.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "Contoso.Toast", got.AppID)
	require.Equal(t, "debug", got.LogLevel)
}

func TestConfigCommandWithoutSettings(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "config")
	require.ErrorContains(t, err, "no settings saved yet")
}

func TestNewLoggerWritesJSONWhenNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log.json"))
	require.NoError(t, err)
	defer f.Close()

	l := newLogger(f, zerolog.InfoLevel)
	l.Debug().Msg("hidden")
	l.Info().Str("k", "v").Msg("shown")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "v", entry["k"])
}

func writeSettingsFile(t *testing.T, contents string) string {
	t.Helper()
	cfgPath, err := config.Path()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0o600))
	return cfgPath
}

func TestConfigCommandRepairsInvalidSettings(t *testing.T) {
	isolateConfig(t)
	cfgPath := writeSettingsFile(t, `{"appId":"x","logLevel":"verbose"}`)

	_, err := execute(t, "greet", "Ada")
	require.ErrorContains(t, err, "invalid log level")

	_, err = execute(t, "config", "--level", "info")
	require.NoError(t, err)

	got, err := config.LoadFile(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "x", got.AppID)
	require.Equal(t, "info", got.LogLevel)

	out, err := execute(t, "greet", "Ada")
	require.NoError(t, err)
	require.Equal(t, "Hello, Ada! You've been greeted from Go!\n", out)
}

func TestConfigCommandShowsInvalidSettings(t *testing.T) {
	isolateConfig(t)
	writeSettingsFile(t, `{"appId":"x","logLevel":"verbose"}`)

	out, err := execute(t, "config")
	require.NoError(t, err)
	require.Contains(t, out, `"logLevel": "verbose"`)
}
