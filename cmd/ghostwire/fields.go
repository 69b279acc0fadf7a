package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/danmuck/ghostwire/internal/protocol/tlv"
)

func runFields(args []string, _ io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("fields", pflag.ContinueOnError)
	kindName := fs.String("kind", "", "only list fields of this kind (string, uint32, bytes, bool, uint64, group, complex)")
	if ok, err := parseFlags(fs, args, stdout); !ok {
		return err
	}

	var filter tlv.FieldKind
	if *kindName != "" {
		k, err := tlv.ParseKind(*kindName)
		if err != nil {
			return err
		}
		filter = k
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, id := range tlv.FieldIDs() {
		if *kindName != "" && id.Kind() != filter {
			continue
		}
		fmt.Fprintf(tw, "%s\t0x%08x\t%s\n", id, uint32(id), id.Kind())
	}
	return tw.Flush()
}
