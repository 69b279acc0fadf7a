package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/danmuck/ghostwire/internal/protocol/inspect"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
	"github.com/danmuck/ghostwire/internal/protocol/wire"
)

func runEncode(args []string, _ io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	specPath := fs.String("spec", "", "packet description TOML (see ghostwire config init --kind packet)")
	sessionHex := fs.String("session", "", "session id as 32 hex chars (overrides the spec)")
	keyHex := fs.String("key", "", "obfuscation key as 8 hex chars (random when empty)")
	if ok, err := parseFlags(fs, args, stdout); !ok {
		return err
	}
	if *specPath == "" {
		return fmt.Errorf("encode: --spec is required")
	}

	spec, err := loadPacketSpec(*specPath)
	if err != nil {
		return err
	}
	if *sessionHex != "" {
		if spec.Session, err = packet.ParseSessionID(*sessionHex); err != nil {
			return err
		}
	}

	var buf []byte
	if *keyHex != "" {
		key, err := parseKey(*keyHex)
		if err != nil {
			return err
		}
		buf, err = spec.Packet.EncodeWithKey(spec.Session, key)
		if err != nil {
			return err
		}
	} else if buf, err = spec.Packet.Encode(spec.Session); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hex.EncodeToString(buf))
	return err
}

func runDecode(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	formatName := fs.String("format", "yaml", "output format: yaml, json or cbor")
	maxDepth := fs.Int("max-depth", tlv.DefaultMaxDepth, "maximum group nesting accepted")
	if ok, err := parseFlags(fs, args, stdout); !ok {
		return err
	}
	format, err := inspect.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	p, err := readPacket(fs.Args(), stdin, *maxDepth)
	if err != nil {
		return err
	}
	return inspect.Render(stdout, inspect.FromPacket(p), format)
}

func runRespond(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("respond", pflag.ContinueOnError)
	result := fs.Uint32("result", uint32(packet.ResultSuccess), "result code to report")
	if ok, err := parseFlags(fs, args, stdout); !ok {
		return err
	}
	req, err := readPacket(fs.Args(), stdin, tlv.DefaultMaxDepth)
	if err != nil {
		return err
	}
	if !req.Kind().IsRequest() {
		return fmt.Errorf("respond: packet is a %s, not a request", req.Kind())
	}
	resp := req.CreateResponse()
	resp.SetResult(packet.ResultCode(*result))
	buf, err := resp.Encode(req.Session())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hex.EncodeToString(buf))
	return err
}

// readPacket decodes the hex packet given as the only argument, or read from
// stdin when the argument is "-" or missing.
func readPacket(args []string, stdin io.Reader, maxDepth int) (*packet.Packet, error) {
	var text string
	switch {
	case len(args) > 1:
		return nil, fmt.Errorf("expected one hex packet, got %d arguments", len(args))
	case len(args) == 1 && args[0] != "-":
		text = args[0]
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		text = string(b)
	}
	raw, err := hex.DecodeString(strings.Join(strings.Fields(text), ""))
	if err != nil {
		return nil, fmt.Errorf("packet is not hex: %w", err)
	}
	opts := packet.DefaultDecodeOptions
	opts.MaxDepth = maxDepth
	r := wire.NewReader(raw)
	p, err := packet.DecodeFrom(r, opts)
	if err != nil {
		return nil, err
	}
	if !r.Done() {
		return nil, fmt.Errorf("%d trailing bytes after packet", r.Len())
	}
	return p, nil
}

func parseKey(raw string) (packet.XORKey, error) {
	var key packet.XORKey
	b, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil || len(b) != len(key) {
		return key, fmt.Errorf("key must be %d hex bytes", len(key))
	}
	copy(key[:], b)
	return key, nil
}
