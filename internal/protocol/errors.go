package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated          = errors.New("protocol: truncated data")
	ErrInvalidLength      = errors.New("protocol: invalid length")
	ErrInvalidUTF8        = errors.New("protocol: invalid utf-8 string")
	ErrUnknownFieldID     = errors.New("protocol: unknown field id")
	ErrUnknownPacketKind  = errors.New("protocol: unknown packet kind")
	ErrTypeMismatch       = errors.New("protocol: field type mismatch")
	ErrNoValue            = errors.New("protocol: field has no value")
	ErrUnsupportedFeature = errors.New("protocol: unsupported feature")
	ErrNotAGroup          = errors.New("protocol: children require a group container")
	ErrNodeAttached       = errors.New("protocol: node already attached to a container")
	ErrNodeCycle          = errors.New("protocol: node cannot contain itself")
	ErrNestingTooDeep     = errors.New("protocol: group nesting too deep")
	ErrPayloadTooLarge    = errors.New("protocol: payload too large")
	ErrMissingField       = errors.New("protocol: missing required field")
	ErrDuplicateField     = errors.New("protocol: duplicate unique field")
)

// DecodeError annotates a decode failure with the buffer offset it occurred at
// and, when known, the raw id of the field being decoded.
type DecodeError struct {
	Offset  int
	FieldID uint32
	Err     error
}

func (e *DecodeError) Error() string {
	if e.FieldID == 0 {
		return fmt.Sprintf("decode at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("decode at offset %d field=0x%08x: %v", e.Offset, e.FieldID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// WrapDecode attaches offset and field context to err. Errors that already
// carry decode context are returned unchanged so the innermost location wins.
func WrapDecode(err error, offset int, fieldID uint32) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Offset: offset, FieldID: fieldID, Err: err}
}

// IsRecoverable reports whether err only means more bytes are needed.
// Everything else on the decode path means the stream is corrupt or
// incompatible and the connection must be reset.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrTruncated)
}
