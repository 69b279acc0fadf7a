package tlv

import (
	"errors"
	"testing"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/testutil/testlog"
)

func TestKindOfMasksReservedBits(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		id   FieldID
		want FieldKind
	}{
		{FieldAny, KindNone},
		{FieldMethod, KindString},
		{FieldChannelID, KindUint32},
		{FieldMountSpaceTotal, KindUint64},
		{FieldProxyCfgAutodetect, KindBool},
		{FieldTransCertHash, KindBytes},
		{FieldTransGroup, KindGroup},
		{FieldStatBuf, KindComplex},
	}
	for _, tc := range cases {
		if got := KindOf(tc.id); got != tc.want {
			t.Fatalf("KindOf(%s) = %s want %s", tc.id, got, tc.want)
		}
	}
}

func TestTaxonomyIsWellFormed(t *testing.T) {
	testlog.Start(t)
	ids := FieldIDs()
	if len(ids) < 200 {
		t.Fatalf("expected a full taxonomy, got %d ids", len(ids))
	}
	names := make(map[string]FieldID, len(ids))
	for _, id := range ids {
		if id != FieldAny && !KindOf(id).Encodable() {
			t.Fatalf("field %s has non-encodable kind %s", id, KindOf(id))
		}
		name := id.String()
		if prev, dup := names[name]; dup {
			t.Fatalf("name %q shared by 0x%08x and 0x%08x", name, uint32(prev), uint32(id))
		}
		names[name] = id
		byName, err := FieldIDByName(name)
		if err != nil || byName != id {
			t.Fatalf("FieldIDByName(%q) = %s, %v", name, byName, err)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("FieldIDs not strictly ordered at %d", i)
		}
	}
}

func TestReservedWireValues(t *testing.T) {
	testlog.Start(t)
	if uint32(FieldMethod) != 0x00010001 {
		t.Fatalf("method id changed: 0x%08x", uint32(FieldMethod))
	}
	if uint32(FieldRequestID) != 0x00010002 {
		t.Fatalf("request id changed: 0x%08x", uint32(FieldRequestID))
	}
	if uint32(FieldResult) != 0x00020004 {
		t.Fatalf("result id changed: 0x%08x", uint32(FieldResult))
	}
}

func TestLookupFieldIDRejectsUnknown(t *testing.T) {
	testlog.Start(t)
	id, err := LookupFieldID(0x00020032)
	if err != nil || id != FieldChannelID {
		t.Fatalf("lookup channel id: %s %v", id, err)
	}
	if _, err := LookupFieldID(0x00010000 | 9999); !errors.Is(err, protocol.ErrUnknownFieldID) {
		t.Fatalf("expected ErrUnknownFieldID, got %v", err)
	}
	if _, err := FieldIDByName("no_such_field"); !errors.Is(err, protocol.ErrUnknownFieldID) {
		t.Fatalf("expected ErrUnknownFieldID, got %v", err)
	}
}

func TestKindNames(t *testing.T) {
	testlog.Start(t)
	k, err := ParseKind(" Group ")
	if err != nil || k != KindGroup {
		t.Fatalf("ParseKind group = %s %v", k, err)
	}
	if _, err := ParseKind("float"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if got := FieldKind(KindString | KindCompressed).String(); got != "kind(0x20010000)" {
		t.Fatalf("unexpected combined kind name %q", got)
	}
	if KindCompressed.Encodable() || KindNone.Encodable() {
		t.Fatalf("reserved kinds must not be encodable")
	}
}
