package config

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/iotaledger/hive.go/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cfgBindAddress = "webapi.bindAddress"

func newFlagSet(args ...string) *flag.FlagSet {
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.String(cfgBindAddress, "127.0.0.1:8080", "the bind address for the web API")
	addLoggerFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		panic(err)
	}

	return flagSet
}

func TestLoadDefaults(t *testing.T) {
	v, err := Load(newFlagSet(), t.TempDir(), "config")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", v.GetString(cfgBindAddress))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"webapi": {"bindAddress": "0.0.0.0:9000"}}`), 0o600))

	v, err := Load(newFlagSet(), dir, "config")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", v.GetString(cfgBindAddress))

	// explicitly set flags win over the config file
	v, err = Load(newFlagSet("--webapi.bindAddress=localhost:1234"), dir, "config")
	require.NoError(t, err)
	assert.Equal(t, "localhost:1234", v.GetString(cfgBindAddress))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("WEBAPI_BINDADDRESS", "10.0.0.1:80")

	v, err := Load(newFlagSet(), t.TempDir(), "config")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:80", v.GetString(cfgBindAddress))
}

func TestLoadInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"webapi": `), 0o600))

	_, err := Load(newFlagSet(), dir, "config")
	assert.Error(t, err)
}

func TestLoggerConfigurationDefaults(t *testing.T) {
	v, err := Load(newFlagSet(), t.TempDir(), "config")
	require.NoError(t, err)

	loggerConfig, err := LoggerConfiguration(v)
	require.NoError(t, err)
	assert.Equal(t, "info", loggerConfig.String(logger.ConfigurationKeyLevel))
	assert.Equal(t, "console", loggerConfig.String(logger.ConfigurationKeyEncoding))
	assert.Equal(t, []string{"stdout"}, loggerConfig.Strings(logger.ConfigurationKeyOutputPaths))

	root, err := logger.NewRootLoggerFromConfiguration(loggerConfig)
	require.NoError(t, err)
	assert.False(t, root.Desugar().Core().Enabled(logger.LevelDebug))
	assert.True(t, root.Desugar().Core().Enabled(logger.LevelInfo))
}

func TestLoggerConfigurationFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"logger": {"level": "debug", "encoding": "json"}}`), 0o600))

	v, err := Load(newFlagSet(), dir, "config")
	require.NoError(t, err)

	loggerConfig, err := LoggerConfiguration(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", loggerConfig.String(logger.ConfigurationKeyLevel))
	assert.Equal(t, "json", loggerConfig.String(logger.ConfigurationKeyEncoding))

	root, err := logger.NewRootLoggerFromConfiguration(loggerConfig)
	require.NoError(t, err)
	assert.True(t, root.Desugar().Core().Enabled(logger.LevelDebug))
}

func TestLoggerConfigurationFromFlag(t *testing.T) {
	v, err := Load(newFlagSet("--logger.level=error"), t.TempDir(), "config")
	require.NoError(t, err)

	loggerConfig, err := LoggerConfiguration(v)
	require.NoError(t, err)

	root, err := logger.NewRootLoggerFromConfiguration(loggerConfig)
	require.NoError(t, err)
	assert.False(t, root.Desugar().Core().Enabled(logger.LevelWarn))
	assert.True(t, root.Desugar().Core().Enabled(logger.LevelError))
}
