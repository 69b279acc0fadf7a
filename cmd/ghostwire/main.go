// ghostwire builds, inspects and answers TLV packets from the command line.
//
//	ghostwire fields [--kind K]
//	ghostwire encode --spec packet.toml [--session HEX] [--key HEX]
//	ghostwire decode [--format yaml|json|cbor] [HEX|-]
//	ghostwire respond [--result CODE] [HEX|-]
//	ghostwire serve --config session.toml [--listen ADDR] [--admin ADDR]
//	ghostwire config init --kind session|packet --out PATH [--force]
//	ghostwire config validate --in PATH
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/danmuck/ghostwire/internal/logging"
)

type command struct {
	name    string
	summary string
	run     func(args []string, stdin io.Reader, stdout io.Writer) error
}

func commands() []command {
	return []command{
		{"fields", "list the field taxonomy", runFields},
		{"encode", "build a packet from a TOML description and print it as hex", runEncode},
		{"decode", "decode a hex packet and print it as a document", runDecode},
		{"respond", "print the hex of an empty response to a hex request", runRespond},
		{"serve", "answer packets over TCP with an admin HTTP endpoint", runServe},
		{"config", "write or validate config templates", runConfig},
	}
}

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ghostwire: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(stdout)
		return nil
	}
	for _, c := range commands() {
		if c.name == args[0] {
			return c.run(args[1:], stdin, stdout)
		}
	}
	return fmt.Errorf("unknown command %q (see ghostwire help)", args[0])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ghostwire <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands() {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}

// parseFlags parses args into fs, treating --help as a clean exit.
func parseFlags(fs *pflag.FlagSet, args []string, stdout io.Writer) (bool, error) {
	fs.SetOutput(stdout)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
