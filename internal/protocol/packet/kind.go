package packet

import (
	"fmt"
	"strings"

	"github.com/danmuck/ghostwire/internal/protocol"
)

// Kind is the direction and encryption class of a packet.
type Kind uint32

const (
	KindRequest       Kind = 0
	KindResponse      Kind = 1
	KindPlainRequest  Kind = 10
	KindPlainResponse Kind = 11
)

var kindNames = map[Kind]string{
	KindRequest:       "request",
	KindResponse:      "response",
	KindPlainRequest:  "plain_request",
	KindPlainResponse: "plain_response",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

func (k Kind) IsRequest() bool {
	return k == KindRequest || k == KindPlainRequest
}

func (k Kind) IsResponse() bool {
	return k == KindResponse || k == KindPlainResponse
}

// LookupKind resolves a raw wire value, failing with ErrUnknownPacketKind for
// values outside the declared set.
func LookupKind(raw uint32) (Kind, error) {
	k := Kind(raw)
	if _, ok := kindNames[k]; !ok {
		return 0, fmt.Errorf("%w: %d", protocol.ErrUnknownPacketKind, raw)
	}
	return k, nil
}

// ParseKind resolves a kind by name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", protocol.ErrUnknownPacketKind, name)
}
