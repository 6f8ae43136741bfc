package config

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/logger"
	"github.com/spf13/viper"
)

// LoggerConfiguration copies the logger.* settings of v into a configuration that can be passed to
// logger.InitGlobalLogger.
func LoggerConfiguration(v *viper.Viper) (*configuration.Configuration, error) {
	loggerConfig := configuration.New()

	settings := map[string]interface{}{
		logger.ConfigurationKeyLevel:         v.GetString(CfgLoggerLevel),
		logger.ConfigurationKeyEncoding:      v.GetString(CfgLoggerEncoding),
		logger.ConfigurationKeyOutputPaths:   v.GetStringSlice(CfgLoggerOutputPaths),
		logger.ConfigurationKeyDisableCaller: v.GetBool(CfgLoggerDisableCaller),
	}
	for key, value := range settings {
		if err := loggerConfig.Set(key, value); err != nil {
			return nil, errors.Errorf("failed to set %s: %w", key, err)
		}
	}

	return loggerConfig, nil
}
