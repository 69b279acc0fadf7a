package packet

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/schema"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
	"github.com/danmuck/ghostwire/internal/protocol/wire"
)

// Packet is a top-level container of TLV nodes plus its kind. Every packet
// built here carries exactly one Method and one RequestId.
//
// A Packet is not safe for concurrent mutation.
type Packet struct {
	tlv.Fields

	kind       Kind
	session    SessionID
	encryption Encryption
}

// NewRequest builds a request for method with a freshly generated request id.
func NewRequest(method string) *Packet {
	return newWithID(KindRequest, method, NewRequestID())
}

// NewPlainRequest is NewRequest for the plain (unencrypted-class) request kind.
func NewPlainRequest(method string) *Packet {
	return newWithID(KindPlainRequest, method, NewRequestID())
}

func newWithID(kind Kind, method, requestID string) *Packet {
	p := &Packet{kind: kind}
	p.SetMethod(method)
	p.SetRequestID(requestID)
	return p
}

// CreateResponse derives the reply to p. A Request becomes a Response; every
// other kind becomes a PlainResponse. Only Method and RequestId are copied.
func (p *Packet) CreateResponse() *Packet {
	kind := KindPlainResponse
	if p.kind == KindRequest {
		kind = KindResponse
	}
	method, _ := p.GetString(tlv.FieldMethod)
	requestID, _ := p.GetString(tlv.FieldRequestID)
	return newWithID(kind, method, requestID)
}

func (p *Packet) Kind() Kind {
	return p.kind
}

// Session returns the session id the packet was decoded with. Packets built
// locally report the zero id.
func (p *Packet) Session() SessionID {
	return p.session
}

func (p *Packet) Method() string {
	s, _ := p.GetString(tlv.FieldMethod)
	return s
}

func (p *Packet) RequestID() string {
	s, _ := p.GetString(tlv.FieldRequestID)
	return s
}

// SetMethod replaces the method, keeping it unique.
func (p *Packet) SetMethod(method string) {
	p.Remove(tlv.FieldMethod)
	p.mustAdd(p.AddString(tlv.FieldMethod, method))
}

// SetRequestID replaces the request id, keeping it unique.
func (p *Packet) SetRequestID(id string) {
	p.Remove(tlv.FieldRequestID)
	p.mustAdd(p.AddString(tlv.FieldRequestID, id))
}

// SetEncryption records the encryption flag to send. Encoding fails with
// ErrUnsupportedFeature for anything but EncryptionNone.
func (p *Packet) SetEncryption(e Encryption) {
	p.encryption = e
}

// mustAdd panics on builder errors for the reserved envelope fields, whose
// kinds are fixed and cannot mismatch.
func (p *Packet) mustAdd(err error) {
	if err != nil {
		panic(fmt.Sprintf("packet: envelope field: %v", err))
	}
}

// Equal reports whether both packets have the same kind and the same
// children in the same order. The session id is transport state and is not
// compared.
func (p *Packet) Equal(other *Packet) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.kind == other.kind && p.Fields.Equal(&other.Fields)
}

// Validate checks the envelope invariants.
func (p *Packet) Validate() error {
	return schema.Validate("packet", &p.Fields, schema.Envelope)
}

// Encode serializes p for session with a fresh obfuscation key.
func (p *Packet) Encode(session SessionID) ([]byte, error) {
	return p.EncodeWithKey(session, NewXORKey())
}

// EncodeWithKey serializes p for session, obfuscating with key.
func (p *Packet) EncodeWithKey(session SessionID, key XORKey) ([]byte, error) {
	if p.encryption != EncryptionNone {
		return nil, fmt.Errorf("%w: encryption flag %d", protocol.ErrUnsupportedFeature, p.encryption)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w := wire.NewWriter(HeaderLen + 64)
	w.WriteU32(0)
	w.WriteBytes(session[:])
	w.WriteU32(uint32(p.encryption))
	w.WriteU32(0)
	w.WriteU32(uint32(p.kind))
	for _, n := range p.All() {
		if err := n.Encode(w); err != nil {
			return nil, err
		}
	}

	bodyLen := uint64(w.Len()-HeaderLen) + bodyLenOverhead
	if bodyLen > math.MaxUint32 {
		return nil, fmt.Errorf("%w: body of %d bytes", protocol.ErrPayloadTooLarge, bodyLen)
	}
	w.PutU32At(offsetBodyLen, uint32(bodyLen))

	out := w.Bytes()
	Obfuscate(out, key)

	log.Debug().
		Str("kind", p.kind.String()).
		Str("method", p.Method()).
		Str("request_id", p.RequestID()).
		Int("bytes", len(out)).
		Msg("packet encoded")
	return out, nil
}

// MarshalBinary encodes p for the zero session.
func (p *Packet) MarshalBinary() ([]byte, error) {
	return p.Encode(SessionID{})
}

// DecodeOptions bound what a decoder will accept from a peer.
type DecodeOptions struct {
	// MaxBodyBytes caps the TLV stream length; zero means unlimited.
	MaxBodyBytes int
	// MaxDepth caps group nesting; zero means tlv.DefaultMaxDepth.
	MaxDepth int
}

var DefaultDecodeOptions = DecodeOptions{
	MaxBodyBytes: 8 << 20,
	MaxDepth:     tlv.DefaultMaxDepth,
}

// Decode parses one packet from buf with DefaultDecodeOptions. Trailing bytes
// after the announced body are ignored.
func Decode(buf []byte) (*Packet, error) {
	return DecodeFrom(wire.NewReader(buf), DefaultDecodeOptions)
}

// DecodeFrom parses one packet at the reader's position. On success the
// reader sits after the packet's body. No packet is returned on error.
func DecodeFrom(r *wire.Reader, opts DecodeOptions) (*Packet, error) {
	start := r.Pos()
	raw, err := r.ReadBytes(HeaderLen)
	if err != nil {
		return nil, protocol.WrapDecode(err, start, 0)
	}
	h, err := ParseHeader(raw)
	if err != nil {
		return nil, protocol.WrapDecode(err, start, 0)
	}
	if h.Encryption != EncryptionNone {
		log.Warn().Uint32("flag", uint32(h.Encryption)).Msg("packet rejected: encryption not supported")
		return nil, protocol.WrapDecode(
			fmt.Errorf("%w: encryption flag %d", protocol.ErrUnsupportedFeature, h.Encryption),
			start+offsetEncryption, 0)
	}
	tlvLen, ok := h.TLVLen()
	if !ok {
		return nil, protocol.WrapDecode(
			fmt.Errorf("%w: body length %d", protocol.ErrInvalidLength, h.BodyLen),
			start+offsetBodyLen, 0)
	}
	if opts.MaxBodyBytes > 0 && tlvLen > opts.MaxBodyBytes {
		return nil, protocol.WrapDecode(
			fmt.Errorf("%w: %d > %d", protocol.ErrPayloadTooLarge, tlvLen, opts.MaxBodyBytes),
			start+offsetBodyLen, 0)
	}
	kind, err := LookupKind(h.Kind)
	if err != nil {
		return nil, protocol.WrapDecode(err, start+offsetBodyLen+4, 0)
	}

	bodyStart := r.Pos()
	body, err := r.ReadBytes(tlvLen)
	if err != nil {
		return nil, protocol.WrapDecode(err, bodyStart, 0)
	}
	// The body starts at a multiple of four, so its key phase matches
	// byte i of the slice.
	Obfuscate(body, h.Key)

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = tlv.DefaultMaxDepth
	}
	nodes, err := tlv.DecodeAll(wire.NewBoundedReaderAt(body, bodyStart), maxDepth)
	if err != nil {
		return nil, err
	}

	p := &Packet{kind: kind, session: h.SessionID}
	for _, n := range nodes {
		if err := p.Add(n); err != nil {
			return nil, err
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("kind", kind.String()).
		Str("method", p.Method()).
		Str("request_id", p.RequestID()).
		Int("bytes", HeaderLen+tlvLen).
		Msg("packet decoded")
	return p, nil
}
