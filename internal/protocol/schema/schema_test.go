package schema

import (
	"errors"
	"testing"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
	"github.com/danmuck/ghostwire/internal/testutil/testlog"
)

func TestValidateEnvelopeOK(t *testing.T) {
	testlog.Start(t)
	var f tlv.Fields
	_ = f.AddString(tlv.FieldMethod, "core_channel_open")
	_ = f.AddString(tlv.FieldRequestID, "abc")
	_ = f.AddUint32(tlv.FieldChannelID, 1)
	_ = f.AddUint32(tlv.FieldChannelID, 2)
	if err := Validate("packet", &f, Envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMissingField(t *testing.T) {
	testlog.Start(t)
	var f tlv.Fields
	_ = f.AddString(tlv.FieldMethod, "core_channel_open")
	err := Validate("packet", &f, Envelope)
	if !errors.Is(err, protocol.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	var verr ValidationError
	if !errors.As(err, &verr) || verr.FieldID != tlv.FieldRequestID {
		t.Fatalf("expected request_id validation error, got %v", err)
	}
}

func TestValidateDuplicateUniqueField(t *testing.T) {
	testlog.Start(t)
	var f tlv.Fields
	_ = f.AddString(tlv.FieldMethod, "a")
	_ = f.AddString(tlv.FieldMethod, "b")
	_ = f.AddString(tlv.FieldRequestID, "abc")
	if err := Validate("packet", &f, Envelope); !errors.Is(err, protocol.ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
}

func TestValidateOptionalRepeatable(t *testing.T) {
	testlog.Start(t)
	g, err := tlv.NewGroup(tlv.FieldNetworkInterface)
	if err != nil {
		t.Fatalf("new group: %v", err)
	}
	reqs := []Requirement{
		{ID: tlv.FieldMacName, Required: true, Unique: true},
		{ID: tlv.FieldNetworkRoute},
	}
	_ = g.AddString(tlv.FieldMacName, "eth0")
	if err := Validate("interface", g, reqs); err != nil {
		t.Fatalf("optional field absent should pass: %v", err)
	}
}
