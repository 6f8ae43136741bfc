package webapi

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgBindAddress defines the config flag of the web API binding address.
	CfgBindAddress = "webapi.bindAddress"
	// CfgShutdownTimeout defines the config flag of the time the web API gets to finish running requests on shutdown.
	CfgShutdownTimeout = "webapi.shutdownTimeout"
)

func init() {
	flag.String(CfgBindAddress, "127.0.0.1:8080", "the bind address for the web API")
	flag.Duration(CfgShutdownTimeout, defaultShutdownTimeout, "the time the web API gets to finish running requests on shutdown")
}
