package frame

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
	"github.com/danmuck/ghostwire/internal/testutil/testlog"
)

func encoded(t *testing.T, method string, data int) []byte {
	t.Helper()
	p := packet.NewRequest(method)
	if data > 0 {
		if err := p.AddBytes(tlv.FieldData, make([]byte, data)); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := p.Encode(packet.SessionID{1})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf
}

func TestReadWriteFrameRoundTrip(t *testing.T) {
	testlog.Start(t)
	first := encoded(t, "core_enumextcmd", 0)
	second := encoded(t, "stdapi_fs_ls", 40)

	var stream bytes.Buffer
	for _, b := range [][]byte{first, second} {
		if err := WriteFrame(&stream, b, DefaultLimits()); err != nil {
			t.Fatalf("write frame: %v", err)
		}
	}

	for i, want := range [][]byte{first, second} {
		got, err := ReadFrame(&stream, DefaultLimits())
		if err != nil {
			t.Fatalf("read frame %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("frame %d mismatch", i)
		}
		if _, err := packet.Decode(got); err != nil {
			t.Fatalf("decode frame %d: %v", i, err)
		}
	}
	if _, err := ReadFrame(&stream, DefaultLimits()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after last frame, got %v", err)
	}
}

func TestReadFrameMalformedHeaderIsDeterministic(t *testing.T) {
	testlog.Start(t)
	_, err := ReadFrame(bytes.NewReader([]byte{1, 2, 3}), DefaultLimits())
	if !errors.Is(err, ErrShortHeader) || !protocol.IsRecoverable(err) {
		t.Fatalf("expected ErrShortHeader, got %v", err)
	}
}

func TestReadFrameShortBody(t *testing.T) {
	testlog.Start(t)
	buf := encoded(t, "m", 16)
	_, err := ReadFrame(bytes.NewReader(buf[:len(buf)-1]), DefaultLimits())
	if !errors.Is(err, ErrShortBody) {
		t.Fatalf("expected ErrShortBody, got %v", err)
	}
}

func TestReadFrameEnforcesLimit(t *testing.T) {
	testlog.Start(t)
	buf := encoded(t, "m", 512)
	_, err := ReadFrame(bytes.NewReader(buf), Limits{MaxBodyBytes: 256})
	if !errors.Is(err, protocol.ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestWriteFrameRejectsInconsistentLength(t *testing.T) {
	testlog.Start(t)
	buf := encoded(t, "m", 0)
	var out bytes.Buffer
	err := WriteFrame(&out, append(buf, 0), DefaultLimits())
	if !errors.Is(err, protocol.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if err := WriteFrame(&out, buf, Limits{MaxBodyBytes: 4}); !errors.Is(err, protocol.ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatal("rejected frame was written")
	}
}
