package config

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgLoggerLevel defines the minimum enabled logging level.
	CfgLoggerLevel = "logger.level"

	// CfgLoggerEncoding defines the log encoding, "console" or "json".
	CfgLoggerEncoding = "logger.encoding"

	// CfgLoggerOutputPaths defines the files or stdout/stderr the logs are written to.
	CfgLoggerOutputPaths = "logger.outputPaths"

	// CfgLoggerDisableCaller stops annotating logs with the calling file and line.
	CfgLoggerDisableCaller = "logger.disableCaller"
)

var (
	// ConfigName is the filename of the config file without the file extension.
	ConfigName = flag.StringP("config", "c", "config", "Filename of the config file without the file extension")

	// ConfigDirPath is the path to the directory containing the config file.
	ConfigDirPath = flag.StringP("config-dir", "d", ".", "Path to the directory containing the config file")
)

func init() {
	addLoggerFlags(flag.CommandLine)
}

func addLoggerFlags(flagSet *flag.FlagSet) {
	flagSet.String(CfgLoggerLevel, "info", "the minimum enabled logging level")
	flagSet.String(CfgLoggerEncoding, "console", "the log encoding (console or json)")
	flagSet.StringSlice(CfgLoggerOutputPaths, []string{"stdout"}, "the files or stdout/stderr to write logs to")
	flagSet.Bool(CfgLoggerDisableCaller, false, "stop annotating logs with the calling file and line")
}
