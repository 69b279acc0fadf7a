package tlv

import (
	"fmt"
	"math"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/wire"
)

// HeaderLen is the size of the {u32 length, u32 field id} prefix. The
// declared length of every node includes it.
const HeaderLen = 8

// DefaultMaxDepth bounds group nesting accepted by Decode.
const DefaultMaxDepth = 32

func ReadFieldID(r *wire.Reader) (FieldID, error) {
	raw, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return LookupFieldID(raw)
}

func WriteFieldID(w *wire.Writer, id FieldID) {
	w.WriteU32(uint32(id))
}

// Encode appends the framed encoding of n to w. Group children are written
// in insertion order. On error w holds a partial encoding and should be
// discarded.
func (n *Node) Encode(w *wire.Writer) error {
	kind := KindOf(n.id)
	if !kind.Encodable() {
		return fmt.Errorf("%w: field %s has kind %s", protocol.ErrUnsupportedFeature, n.id, kind)
	}

	start := w.Len()
	w.WriteU32(0)
	WriteFieldID(w, n.id)

	switch kind {
	case KindGroup:
		for _, child := range n.order {
			if err := child.Encode(w); err != nil {
				return err
			}
		}
	case KindBool:
		v, err := n.AsBool()
		if err != nil {
			return err
		}
		w.WriteBool(v)
	case KindUint32:
		v, err := n.AsUint32()
		if err != nil {
			return err
		}
		w.WriteU32(v)
	case KindUint64:
		v, err := n.AsUint64()
		if err != nil {
			return err
		}
		w.WriteU64(v)
	case KindString:
		v, err := n.AsString()
		if err != nil {
			return err
		}
		w.WriteString(v)
	case KindBytes, KindComplex:
		v, err := n.AsBytes()
		if err != nil {
			return err
		}
		w.WriteBytes(v)
	}

	length := w.Len() - start
	if uint64(length) > math.MaxUint32 {
		return fmt.Errorf("%w: field %s encodes to %d bytes", protocol.ErrPayloadTooLarge, n.id, length)
	}
	w.PutU32At(start, uint32(length))
	return nil
}

// MarshalBinary returns the standalone encoding of n.
func (n *Node) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(64)
	if err := n.Encode(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Decode reads one node from r, nesting at most DefaultMaxDepth groups.
func Decode(r *wire.Reader) (*Node, error) {
	return DecodeWithDepth(r, DefaultMaxDepth)
}

// DecodeWithDepth reads one node from r. Input is treated as untrusted:
// every failure is returned as a *protocol.DecodeError wrapping one of the
// protocol sentinels.
func DecodeWithDepth(r *wire.Reader, maxDepth int) (*Node, error) {
	return decode(r, 0, maxDepth)
}

// DecodeAll reads nodes from r until it is exhausted.
func DecodeAll(r *wire.Reader, maxDepth int) ([]*Node, error) {
	var out []*Node
	for !r.Done() {
		n, err := decode(r, 0, maxDepth)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func decode(r *wire.Reader, depth, maxDepth int) (*Node, error) {
	start := r.Pos()
	length, err := r.ReadU32()
	if err != nil {
		return nil, protocol.WrapDecode(err, start, 0)
	}
	raw, err := r.ReadU32()
	if err != nil {
		return nil, protocol.WrapDecode(err, start, 0)
	}
	if length < HeaderLen {
		return nil, protocol.WrapDecode(
			fmt.Errorf("%w: declared %d is below header size", protocol.ErrInvalidLength, length),
			start, raw)
	}
	id, err := LookupFieldID(raw)
	if err != nil {
		return nil, protocol.WrapDecode(err, start, raw)
	}
	if uint64(length-HeaderLen) > uint64(math.MaxInt32) {
		return nil, protocol.WrapDecode(protocol.ErrPayloadTooLarge, start, raw)
	}
	payloadLen := int(length - HeaderLen)
	body, err := r.Sub(payloadLen)
	if err != nil {
		return nil, protocol.WrapDecode(err, start, raw)
	}

	kind := KindOf(id)
	if kind == KindGroup {
		if depth >= maxDepth {
			return nil, protocol.WrapDecode(protocol.ErrNestingTooDeep, start, raw)
		}
		node := &Node{id: id}
		for !body.Done() {
			child, err := decode(body, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if err := node.Add(child); err != nil {
				return nil, protocol.WrapDecode(err, start, raw)
			}
		}
		return node, nil
	}

	value, err := decodeValue(body, kind, payloadLen)
	if err != nil {
		return nil, protocol.WrapDecode(err, start, raw)
	}
	return &Node{id: id, value: value}, nil
}

func decodeValue(body *wire.Reader, kind FieldKind, payloadLen int) (Value, error) {
	switch kind {
	case KindBool:
		if err := expectLen(kind, payloadLen, 1); err != nil {
			return nil, err
		}
		v, err := body.ReadBool()
		return BoolValue(v), err
	case KindUint32:
		if err := expectLen(kind, payloadLen, 4); err != nil {
			return nil, err
		}
		v, err := body.ReadU32()
		return Uint32Value(v), err
	case KindUint64:
		if err := expectLen(kind, payloadLen, 8); err != nil {
			return nil, err
		}
		v, err := body.ReadU64()
		return Uint64Value(v), err
	case KindString:
		v, err := body.ReadString(payloadLen)
		return StringValue(v), err
	case KindBytes, KindComplex:
		v, err := body.ReadBytes(payloadLen)
		return BytesValue(v), err
	default:
		return nil, fmt.Errorf("%w: kind %s has no wire form", protocol.ErrUnsupportedFeature, kind)
	}
}

func expectLen(kind FieldKind, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s payload is %d bytes, want %d", protocol.ErrInvalidLength, kind, got, want)
	}
	return nil
}
