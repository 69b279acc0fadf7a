package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
	"github.com/danmuck/ghostwire/internal/testutil/testlog"
)

func samplePacket(t *testing.T) *packet.Packet {
	t.Helper()
	p := packet.NewRequest("core_channel_write")
	if err := p.AddUint32(tlv.FieldChannelID, 4); err != nil {
		t.Fatal(err)
	}
	if err := p.AddBytes(tlv.FieldChannelData, []byte{0xca, 0xfe}); err != nil {
		t.Fatal(err)
	}
	if err := p.AddBool(tlv.FieldBool, false); err != nil {
		t.Fatal(err)
	}
	if err := p.AddUint64(tlv.FieldMountSpaceFree, 1<<40); err != nil {
		t.Fatal(err)
	}
	g, err := p.AddGroup(tlv.FieldChannelDataGroup)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddString(tlv.FieldChannelType, "stdapi_net_tcp_client"); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFromPacket(t *testing.T) {
	testlog.Start(t)
	p := samplePacket(t)
	doc := FromPacket(p)
	if doc.Kind != "request" || doc.Method != "core_channel_write" || doc.RequestID != p.RequestID() {
		t.Fatalf("envelope = %+v", doc)
	}
	if doc.SessionID != "" {
		t.Fatalf("local packet has session %q", doc.SessionID)
	}
	if len(doc.Fields) != 7 {
		t.Fatalf("fields = %d", len(doc.Fields))
	}
	data := doc.Fields[3]
	if data.Name != "channel_data" || data.Kind != "bytes" || data.Value != "cafe" {
		t.Fatalf("bytes field = %+v", data)
	}
	group := doc.Fields[6]
	if group.Value != nil || len(group.Fields) != 1 || group.Fields[0].Value != "stdapi_net_tcp_client" {
		t.Fatalf("group field = %+v", group)
	}
}

func TestRenderParseBuildRoundTrip(t *testing.T) {
	testlog.Start(t)
	p := samplePacket(t)
	for _, v := range []uint64{math.MaxUint64, 1<<53 + 1, 0} {
		if err := p.AddUint64(tlv.FieldMountSpaceTotal, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.AddUint32(tlv.FieldSeekPos, math.MaxUint32); err != nil {
		t.Fatal(err)
	}
	for _, format := range []Format{FormatYAML, FormatJSON, FormatCBOR} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, FromPacket(p), format); err != nil {
				t.Fatalf("render: %v", err)
			}
			doc, err := Parse(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got, err := Build(doc)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if !got.Equal(p) {
				t.Fatalf("round trip mismatch:\n got %v\nwant %v", got.All(), p.All())
			}
		})
	}
}

func TestRenderYAMLIsReadable(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	if err := Render(&buf, FromPacket(samplePacket(t)), FormatYAML); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"method: core_channel_write", "name: channel_data_group", "value: false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("yaml missing %q:\n%s", want, out)
		}
	}
}

func TestCBORIsDeterministic(t *testing.T) {
	testlog.Start(t)
	doc := FromPacket(samplePacket(t))
	var a, b bytes.Buffer
	if err := Render(&a, doc, FormatCBOR); err != nil {
		t.Fatal(err)
	}
	if err := Render(&b, doc, FormatCBOR); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("cbor output differs between runs")
	}
}

func TestBuildFromHandWrittenDocument(t *testing.T) {
	testlog.Start(t)
	doc := Document{
		Kind:   "plain_request",
		Method: "stdapi_fs_stat",
		Fields: []Field{
			{Name: "file_path", Value: "/etc/hosts"},
			{ID: "0x00020032", Value: int64(12)},
		},
	}
	p, err := Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind() != packet.KindPlainRequest || p.Method() != "stdapi_fs_stat" || p.RequestID() == "" {
		t.Fatalf("envelope: %s %q %q", p.Kind(), p.Method(), p.RequestID())
	}
	if got, _ := p.GetString(tlv.FieldFilePath); got != "/etc/hosts" {
		t.Fatalf("file_path = %q", got)
	}
	if got, _ := p.GetUint32(tlv.FieldChannelID); got != 12 {
		t.Fatalf("channel_id = %d", got)
	}
}

func TestBuildRejects(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name  string
		field Field
		want  error
	}{
		{"unknown name", Field{Name: "no_such_field", Value: "x"}, protocol.ErrUnknownFieldID},
		{"wrong value type", Field{Name: "channel_id", Value: "twelve"}, protocol.ErrTypeMismatch},
		{"uint32 overflow", Field{Name: "channel_id", Value: int64(1) << 33}, protocol.ErrTypeMismatch},
		{"negative", Field{Name: "channel_id", Value: int64(-1)}, protocol.ErrTypeMismatch},
		{"bad hex", Field{Name: "channel_data", Value: "zz"}, protocol.ErrTypeMismatch},
		{"missing value", Field{Name: "channel_type"}, protocol.ErrNoValue},
		{"children on scalar", Field{Name: "channel_id", Fields: []Field{{Name: "channel_type", Value: "x"}}}, protocol.ErrNotAGroup},
		{"declared kind disagrees", Field{Name: "channel_id", Kind: "string", Value: "x"}, protocol.ErrTypeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(Document{Method: "m", Fields: []Field{tc.field}})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	testlog.Start(t)
	if f, err := ParseFormat(" YML "); err != nil || f != FormatYAML {
		t.Fatalf("yml = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("xml accepted")
	}
}

func TestUnsignedKeepsPrecision(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name  string
		raw   any
		limit uint64
		want  uint64
		err   bool
	}{
		{"json max uint64", json.Number("18446744073709551615"), math.MaxUint64, math.MaxUint64, false},
		{"json 2^53+1", json.Number("9007199254740993"), math.MaxUint64, 1<<53 + 1, false},
		{"json integral float", json.Number("12.0"), math.MaxUint32, 12, false},
		{"json over uint32", json.Number("4294967296"), math.MaxUint32, 0, true},
		{"json negative", json.Number("-1"), math.MaxUint64, 0, true},
		{"json fraction", json.Number("1.5"), math.MaxUint64, 0, true},
		{"float 2^64", float64(math.MaxUint64), math.MaxUint64, 0, true},
		{"float in range", float64(1 << 52), math.MaxUint64, 1 << 52, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := unsigned(tc.raw, tc.limit)
			if tc.err {
				if !errors.Is(err, protocol.ErrTypeMismatch) {
					t.Fatalf("expected ErrTypeMismatch, got %d %v", got, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("unsigned(%v) = %d %v, want %d", tc.raw, got, err, tc.want)
			}
		})
	}
}
