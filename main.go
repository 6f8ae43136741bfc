package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iotaledger/hive.go/logger"
	flag "github.com/spf13/pflag"

	"github.com/velas/vlxaddress/packages/config"
	"github.com/velas/vlxaddress/packages/metrics"
	"github.com/velas/vlxaddress/packages/webapi"
)

var version = flag.BoolP("version", "v", false, "Prints the vlxaddress version")

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if *version {
		fmt.Println(AppName + " " + AppVersion)
		return
	}

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	switch command, args := flag.Arg(0), flag.Args()[1:]; command {
	case commandEthToVlx, commandVlxToEth:
		if err := convert(os.Stdout, command, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case commandServe:
		if err := serve(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case commandHelp:
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown [COMMAND]: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func serve() error {
	cfg, err := config.Load(flag.CommandLine, *config.ConfigDirPath, *config.ConfigName)
	if err != nil {
		return err
	}

	loggerConfig, err := config.LoggerConfiguration(cfg)
	if err != nil {
		return err
	}
	if err := logger.InitGlobalLogger(loggerConfig); err != nil {
		return err
	}
	log := logger.NewLogger(AppName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := webapi.NewServer(log, metrics.NewConversions())

	return server.Run(ctx, cfg.GetString(webapi.CfgBindAddress), cfg.GetDuration(webapi.CfgShutdownTimeout))
}
