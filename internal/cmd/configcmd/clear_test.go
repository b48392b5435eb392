package configcmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/ubb-cli/internal/config"
)

func TestRunClear_WithExistingConfig(t *testing.T) {
	opts, stdout := newTestOptions(t)
	cfg := &config.Config{DefaultColor: "#333333"}
	require.NoError(t, cfg.Save(opts.ConfigPath))

	err := runClear(opts)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Configuration cleared from "+opts.ConfigPath)

	_, err = os.Stat(opts.ConfigPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRunClear_NoConfigFile(t *testing.T) {
	opts, stdout := newTestOptions(t)

	err := runClear(opts)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No config file to remove")
}

func TestRunClear_Idempotent(t *testing.T) {
	opts, _ := newTestOptions(t)

	require.NoError(t, runClear(opts))
	require.NoError(t, runClear(opts))
}

func TestRunClear_ReportsEnvVars(t *testing.T) {
	opts, stdout := newTestOptions(t)
	t.Setenv("UBB_FLASH_IMAGE", "/f.png")

	err := runClear(opts)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "UBB_FLASH_IMAGE")
}
