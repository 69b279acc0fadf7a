package packet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/danmuck/ghostwire/internal/protocol/wire"
)

const (
	HeaderLen = 4 + SessionIDLen + 4 + 4 + 4

	SessionIDLen = 16

	// bodyLenOverhead counts the length and kind fields, which the declared
	// body length includes.
	bodyLenOverhead = 8

	offsetSessionID  = 4
	offsetEncryption = 20
	offsetBodyLen    = 24
)

// Encryption is the header encryption flag. Only EncryptionNone is
// implemented; every other value fails closed.
type Encryption uint32

const (
	EncryptionNone   Encryption = 0
	EncryptionAES256 Encryption = 1
)

// SessionID is the opaque session identifier supplied by the session layer.
type SessionID [SessionIDLen]byte

func (s SessionID) String() string {
	return hex.EncodeToString(s[:])
}

func (s SessionID) IsZero() bool {
	return s == SessionID{}
}

// ParseSessionID decodes 32 hex characters.
func ParseSessionID(raw string) (SessionID, error) {
	var s SessionID
	b, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return s, fmt.Errorf("packet: session id: %w", err)
	}
	if len(b) != SessionIDLen {
		return s, fmt.Errorf("packet: session id must be %d bytes, got %d", SessionIDLen, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// Header is the de-obfuscated fixed header.
type Header struct {
	Key        XORKey
	SessionID  SessionID
	Encryption Encryption
	BodyLen    uint32
	Kind       uint32
}

// TLVLen returns the length of the encoded TLV stream the header announces.
func (h Header) TLVLen() (int, bool) {
	if h.BodyLen < bodyLenOverhead {
		return 0, false
	}
	return int(h.BodyLen - bodyLenOverhead), true
}

// ParseHeader recovers the key from the first four bytes of raw and
// de-obfuscates the rest of the fixed header. raw is not modified.
func ParseHeader(raw []byte) (Header, error) {
	if len(raw) < HeaderLen {
		return Header{}, fmt.Errorf("packet: header needs %d bytes, got %d", HeaderLen, len(raw))
	}
	var h Header
	copy(h.Key[:], raw[0:4])
	plain := make([]byte, HeaderLen)
	copy(plain, raw[:HeaderLen])
	Obfuscate(plain, h.Key)

	r := wire.NewReader(plain[offsetSessionID:])
	session, _ := r.ReadBytes(SessionIDLen)
	copy(h.SessionID[:], session)
	enc, _ := r.ReadU32()
	h.Encryption = Encryption(enc)
	h.BodyLen, _ = r.ReadU32()
	h.Kind, _ = r.ReadU32()
	return h, nil
}
