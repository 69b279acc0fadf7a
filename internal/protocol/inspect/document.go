// Package inspect converts packets to and from plain document trees that
// render as YAML, JSON or CBOR and can be edited by hand.
package inspect

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
)

// Document is the plain form of one packet. Method and RequestID are
// surfaced for reading; Fields holds every top-level node, the envelope
// fields included.
type Document struct {
	Kind      string  `json:"kind" yaml:"kind" cbor:"kind" toml:"kind"`
	SessionID string  `json:"session_id,omitempty" yaml:"session_id,omitempty" cbor:"session_id,omitempty" toml:"session_id"`
	Method    string  `json:"method" yaml:"method" cbor:"method" toml:"method"`
	RequestID string  `json:"request_id,omitempty" yaml:"request_id,omitempty" cbor:"request_id,omitempty" toml:"request_id"`
	Fields    []Field `json:"fields,omitempty" yaml:"fields,omitempty" cbor:"fields,omitempty" toml:"field"`
}

// Field is one node. Value holds a string, uint32, uint64 or bool; byte
// payloads are lowercase hex. Groups carry Fields instead of Value.
type Field struct {
	Name   string  `json:"name" yaml:"name" cbor:"name" toml:"name"`
	ID     string  `json:"id,omitempty" yaml:"id,omitempty" cbor:"id,omitempty" toml:"id"`
	Kind   string  `json:"kind,omitempty" yaml:"kind,omitempty" cbor:"kind,omitempty" toml:"kind"`
	Value  any     `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty" toml:"value"`
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty" cbor:"fields,omitempty" toml:"field"`
}

// FromPacket builds the document for p.
func FromPacket(p *packet.Packet) Document {
	doc := Document{
		Kind:      p.Kind().String(),
		Method:    p.Method(),
		RequestID: p.RequestID(),
		Fields:    fieldsOf(p.All()),
	}
	if !p.Session().IsZero() {
		doc.SessionID = p.Session().String()
	}
	return doc
}

func fieldsOf(nodes []*tlv.Node) []Field {
	out := make([]Field, 0, len(nodes))
	for _, n := range nodes {
		f := Field{
			Name: n.ID().String(),
			ID:   fmt.Sprintf("0x%08x", uint32(n.ID())),
			Kind: n.Kind().String(),
		}
		if n.IsGroup() {
			f.Fields = fieldsOf(n.All())
		} else {
			f.Value = plainValue(n.Value())
		}
		out = append(out, f)
	}
	return out
}

func plainValue(v tlv.Value) any {
	switch v := v.(type) {
	case tlv.StringValue:
		return string(v)
	case tlv.Uint32Value:
		return uint32(v)
	case tlv.Uint64Value:
		return uint64(v)
	case tlv.BoolValue:
		return bool(v)
	case tlv.BytesValue:
		return hex.EncodeToString(v)
	}
	return nil
}

// Build turns doc back into a packet. Method and RequestID, when set, replace
// whatever the field list says; a missing request id is generated.
func Build(doc Document) (*packet.Packet, error) {
	kind := packet.KindRequest
	if strings.TrimSpace(doc.Kind) != "" {
		k, err := packet.ParseKind(doc.Kind)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	var fields tlv.Fields
	for i, f := range doc.Fields {
		if err := addField(&fields, f); err != nil {
			return nil, fmt.Errorf("inspect: field %d (%s): %w", i, f.label(), err)
		}
	}

	method := doc.Method
	if method == "" {
		method, _ = fields.GetString(tlv.FieldMethod)
	}
	requestID := doc.RequestID
	if requestID == "" {
		requestID, _ = fields.GetString(tlv.FieldRequestID)
	}

	var p *packet.Packet
	switch kind {
	case packet.KindRequest:
		p = packet.NewRequest(method)
	case packet.KindPlainRequest:
		p = packet.NewPlainRequest(method)
	case packet.KindResponse:
		p = packet.NewRequest(method).CreateResponse()
	default:
		p = packet.NewPlainRequest(method).CreateResponse()
	}
	if requestID != "" {
		p.SetRequestID(requestID)
	}
	for _, n := range fields.All() {
		if n.ID() == tlv.FieldMethod || n.ID() == tlv.FieldRequestID {
			continue
		}
		if err := p.Add(n); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (f Field) label() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

func (f Field) resolve() (tlv.FieldID, error) {
	if f.Name != "" {
		return tlv.FieldIDByName(f.Name)
	}
	raw, err := strconv.ParseUint(strings.TrimSpace(f.ID), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", protocol.ErrUnknownFieldID, f.ID)
	}
	return tlv.LookupFieldID(uint32(raw))
}

func addField(parent tlv.Container, f Field) error {
	id, err := f.resolve()
	if err != nil {
		return err
	}
	if f.Kind != "" {
		declared, err := tlv.ParseKind(f.Kind)
		if err != nil {
			return err
		}
		if declared != id.Kind() {
			return fmt.Errorf("%w: %s is %s, document says %s", protocol.ErrTypeMismatch, id, id.Kind(), declared)
		}
	}

	if id.Kind() == tlv.KindGroup {
		if f.Value != nil {
			return fmt.Errorf("%w: group %s has a value", protocol.ErrTypeMismatch, id)
		}
		group, err := tlv.NewGroup(id)
		if err != nil {
			return err
		}
		for i, child := range f.Fields {
			if err := addField(group, child); err != nil {
				return fmt.Errorf("child %d (%s): %w", i, child.label(), err)
			}
		}
		return parent.Add(group)
	}

	if len(f.Fields) > 0 {
		return fmt.Errorf("%w: %s", protocol.ErrNotAGroup, id)
	}
	v, err := coerce(id.Kind(), f.Value)
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	n, err := tlv.NewValue(id, v)
	if err != nil {
		return err
	}
	return parent.Add(n)
}

// coerce converts a decoded document value to the value type for kind.
// Numbers arrive as int64 from TOML, json.Number from JSON, int or uint64
// from YAML and uint64 from CBOR.
func coerce(kind tlv.FieldKind, raw any) (tlv.Value, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: missing value", protocol.ErrNoValue)
	}
	switch kind {
	case tlv.KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: want string, got %T", protocol.ErrTypeMismatch, raw)
		}
		return tlv.StringValue(s), nil
	case tlv.KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: want bool, got %T", protocol.ErrTypeMismatch, raw)
		}
		return tlv.BoolValue(b), nil
	case tlv.KindUint32:
		n, err := unsigned(raw, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return tlv.Uint32Value(uint32(n)), nil
	case tlv.KindUint64:
		n, err := unsigned(raw, math.MaxUint64)
		if err != nil {
			return nil, err
		}
		return tlv.Uint64Value(n), nil
	case tlv.KindBytes, tlv.KindComplex:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: want hex string, got %T", protocol.ErrTypeMismatch, raw)
		}
		b, err := hex.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", protocol.ErrTypeMismatch, err)
		}
		return tlv.BytesValue(b), nil
	}
	return nil, fmt.Errorf("%w: kind %s", protocol.ErrUnsupportedFeature, kind)
}

func unsigned(raw any, limit uint64) (uint64, error) {
	var n uint64
	switch v := raw.(type) {
	case int:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative %d", protocol.ErrTypeMismatch, v)
		}
		n = uint64(v)
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative %d", protocol.ErrTypeMismatch, v)
		}
		n = uint64(v)
	case uint32:
		n = uint64(v)
	case uint64:
		n = v
	case json.Number:
		parsed, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, fmt.Errorf("%w: %v", protocol.ErrTypeMismatch, err)
			}
			return unsigned(f, limit)
		}
		n = parsed
	case float64:
		// float64(math.MaxUint64) rounds up to 2^64, so compare against 2^64.
		if v < 0 || v != math.Trunc(v) || v >= 0x1p64 {
			return 0, fmt.Errorf("%w: %v is not an unsigned integer in range", protocol.ErrTypeMismatch, v)
		}
		n = uint64(v)
	case string:
		parsed, err := strconv.ParseUint(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", protocol.ErrTypeMismatch, err)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: want integer, got %T", protocol.ErrTypeMismatch, raw)
	}
	if n > limit {
		return 0, fmt.Errorf("%w: %d overflows", protocol.ErrTypeMismatch, n)
	}
	return n, nil
}
