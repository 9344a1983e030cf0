package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "shotdiff", configBaseName)
	assert.Equal(t, "shotdiff.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "db", databaseFlagName)
	assert.Equal(t, "workers", workersFlagName)
	assert.Equal(t, "address", addressFlagName)
	assert.Equal(t, "database.path", databasePathKey)
	assert.Equal(t, "server.address", serverAddressKey)
	assert.Equal(t, "compare.workers", compareWorkersKey)
	assert.Equal(t, "shotdiff.db", defaultDatabasePath)
	assert.Equal(t, "127.0.0.1:3000", defaultServerAddress)
	assert.Equal(t, 4, defaultCompareWorkers)
	assert.Equal(t, "SHOTDIFF", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestShutdownTimeout(t *testing.T) {
	original := viper.Get(serverShutdownTimeout)
	defer viper.Set(serverShutdownTimeout, original)

	viper.Set(serverShutdownTimeout, 3)
	assert.Equal(t, 3*time.Second, shutdownTimeout())

	viper.Set(serverShutdownTimeout, 0)
	assert.Equal(t, defaultShutdownTimeout, shutdownTimeout())
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARNING ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestReadConfig(t *testing.T) {
	original := filepath.Join(configFolderPath, configFileName)
	t.Cleanup(func() { viper.SetConfigFile(original) })

	dir := t.TempDir()

	viper.SetConfigFile(filepath.Join(dir, configFileName))
	assert.NoError(t, readConfig(), "a missing config file is not an error")

	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unterminated\n"), 0o644))
	viper.SetConfigFile(path)
	assert.Error(t, readConfig())
}
