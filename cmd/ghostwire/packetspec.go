package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/ghostwire/internal/protocol/inspect"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
)

// packetFile is the TOML description read by encode.
type packetFile struct {
	Kind      string          `toml:"kind"`
	Method    string          `toml:"method"`
	RequestID string          `toml:"request_id"`
	SessionID string          `toml:"session_id"`
	Fields    []inspect.Field `toml:"field"`
}

type packetSpec struct {
	Packet  *packet.Packet
	Session packet.SessionID
}

func loadPacketSpec(path string) (packetSpec, error) {
	var raw packetFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return packetSpec{}, fmt.Errorf("load packet spec: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return packetSpec{}, fmt.Errorf("packet spec: unknown key %q", undecoded[0].String())
	}
	if !meta.IsDefined("method") || strings.TrimSpace(raw.Method) == "" {
		return packetSpec{}, fmt.Errorf("packet spec: method is required")
	}

	doc := inspect.Document{
		Kind:   raw.Kind,
		Method: strings.TrimSpace(raw.Method),
		Fields: raw.Fields,
	}
	if meta.IsDefined("request_id") {
		doc.RequestID = strings.TrimSpace(raw.RequestID)
	}
	p, err := inspect.Build(doc)
	if err != nil {
		return packetSpec{}, err
	}

	spec := packetSpec{Packet: p}
	if meta.IsDefined("session_id") {
		id, err := packet.ParseSessionID(raw.SessionID)
		if err != nil {
			return packetSpec{}, err
		}
		spec.Session = id
	}
	return spec, nil
}
