package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/danmuck/ghostwire/internal/config"
)

func runConfig(args []string, _ io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("config: expected init or validate")
	}
	switch args[0] {
	case "init":
		fs := pflag.NewFlagSet("config init", pflag.ContinueOnError)
		kind := fs.String("kind", "session", "template kind: session|packet")
		out := fs.String("out", "", "output path for the template")
		force := fs.Bool("force", false, "overwrite an existing file")
		if ok, err := parseFlags(fs, args[1:], stdout); !ok {
			return err
		}
		if *out == "" {
			return fmt.Errorf("config init: --out is required")
		}
		if err := config.WriteTemplate(*out, *kind, *force); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s template to %s\n", *kind, *out)
		return nil
	case "validate":
		fs := pflag.NewFlagSet("config validate", pflag.ContinueOnError)
		in := fs.String("in", "", "session config to validate")
		if ok, err := parseFlags(fs, args[1:], stdout); !ok {
			return err
		}
		if *in == "" {
			return fmt.Errorf("config validate: --in is required")
		}
		if _, err := config.LoadSessionConfig(*in); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "validated session config at %s\n", *in)
		return nil
	}
	return fmt.Errorf("config: unknown subcommand %q", args[0])
}
