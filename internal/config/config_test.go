package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "config.json"))
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestSaveThenLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	require.NoError(t, SaveFile(path, Settings{AppID: "Contoso.Toast"}))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Contoso.Toast", got.AppID)
	require.Equal(t, DefaultTitle, got.DefaultTitle)
	require.Equal(t, DefaultLogLevel, got.LogLevel)
}

func TestLoadFileRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"appId":"x","logLevel":"loud"}`), 0o600))

	_, err := LoadFile(path)
	require.ErrorContains(t, err, "invalid log level")
}

func TestValidateRelativeIcon(t *testing.T) {
	s := Default()
	s.IconPath = "icon.png"
	require.Error(t, s.Validate())
}

func TestLevel(t *testing.T) {
	s := Default()
	s.LogLevel = "debug"
	level, err := s.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)
}

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	require.Equal(t, DefaultAppID, s.AppID)
}

func TestReadFileKeepsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"appId":"x","logLevel":"verbose"}`), 0o600))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "verbose", got.LogLevel)
	require.Error(t, got.Validate())
}
