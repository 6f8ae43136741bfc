package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"github.com/velas/vlxaddress/packages/address"
)

const (
	// AppName is the name of the application.
	AppName = "vlxaddress"
	// AppVersion is the version of the application.
	AppVersion = "v0.1.0"
)

const (
	commandEthToVlx = "eth2vlx"
	commandVlxToEth = "vlx2eth"
	commandServe    = "serve"
	commandHelp     = "help"
)

// convert converts the single address in args in the direction given by command and writes the result to out.
func convert(out io.Writer, command string, args []string) error {
	var conversion func(string) (string, error)
	switch command {
	case commandEthToVlx:
		conversion = address.EthToVlx
	case commandVlxToEth:
		conversion = address.VlxToEth
	default:
		return errors.Errorf("unknown conversion %s", command)
	}

	if len(args) != 1 {
		return errors.Errorf("%s expects exactly one address, got %d", command, len(args))
	}

	converted, err := conversion(args[0])
	if err != nil {
		return errors.Errorf("failed to convert %s: %w", args[0], err)
	}

	_, err = fmt.Fprintln(out, converted)

	return err
}

func printUsage() {
	_, err := fmt.Fprintf(
		os.Stderr,
		"\n"+
			"%s %s\n\n"+
			"  Converts between 0x hex addresses and V-prefixed base58check addresses.\n\n"+
			"Usage:\n\n"+
			"  %s [OPTIONS] %s <hex address>\n"+
			"  %s [OPTIONS] %s <encoded address>\n"+
			"  %s [OPTIONS] %s\n\n"+
			"Options:\n\n",
		AppName, AppVersion,
		filepath.Base(os.Args[0]), commandEthToVlx,
		filepath.Base(os.Args[0]), commandVlxToEth,
		filepath.Base(os.Args[0]), commandServe,
	)
	if err != nil {
		panic(err)
	}

	flag.PrintDefaults()
}
