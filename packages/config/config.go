// Package config loads the configuration from flags, environment variables and an optional config file.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load creates a viper instance with the given flags bound to it. Values are looked up in this order: flags that
// were set explicitly, environment variables (dots replaced by underscores, e.g. WEBAPI_BINDADDRESS), the config
// file and finally the flag defaults.
//
// The config file is named configName (without extension) and is searched in configDir. It can be .json, .toml,
// .yaml or .yml. A missing config file is not an error.
func Load(flagSet *flag.FlagSet, configDir string, configName string) (*viper.Viper, error) {
	v := viper.New()

	// replace dots with underscores in env
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flagSet); err != nil {
		return nil, errors.Errorf("failed to bind flags: %w", err)
	}

	v.SetConfigName(configName)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Errorf("failed to read config file %s in %s: %w", configName, configDir, err)
		}
	}

	return v, nil
}
