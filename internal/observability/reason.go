package observability

import (
	"errors"

	"github.com/danmuck/ghostwire/internal/protocol"
)

// FailureReason maps a decode error to a bounded metric label.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, protocol.ErrTruncated):
		return "truncated"
	case errors.Is(err, protocol.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, protocol.ErrInvalidUTF8):
		return "invalid_utf8"
	case errors.Is(err, protocol.ErrUnknownFieldID):
		return "unknown_field"
	case errors.Is(err, protocol.ErrUnknownPacketKind):
		return "unknown_kind"
	case errors.Is(err, protocol.ErrUnsupportedFeature):
		return "unsupported"
	case errors.Is(err, protocol.ErrNestingTooDeep):
		return "too_deep"
	case errors.Is(err, protocol.ErrPayloadTooLarge):
		return "too_large"
	case errors.Is(err, protocol.ErrMissingField), errors.Is(err, protocol.ErrDuplicateField):
		return "envelope"
	default:
		return "other"
	}
}
