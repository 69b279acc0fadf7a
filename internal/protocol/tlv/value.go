package tlv

import "bytes"

// Value is the scalar payload of a non-group node. The concrete types below
// are the only implementations.
type Value interface {
	Kind() FieldKind
	isValue()
}

type (
	BoolValue   bool
	Uint32Value uint32
	Uint64Value uint64
	StringValue string
	BytesValue  []byte
)

func (BoolValue) Kind() FieldKind   { return KindBool }
func (Uint32Value) Kind() FieldKind { return KindUint32 }
func (Uint64Value) Kind() FieldKind { return KindUint64 }
func (StringValue) Kind() FieldKind { return KindString }
func (BytesValue) Kind() FieldKind  { return KindBytes }

func (BoolValue) isValue()   {}
func (Uint32Value) isValue() {}
func (Uint64Value) isValue() {}
func (StringValue) isValue() {}
func (BytesValue) isValue()  {}

// accepts reports whether a field of kind k may carry v. Complex fields are
// opaque and carry raw bytes.
func accepts(k FieldKind, v Value) bool {
	switch v.(type) {
	case BytesValue:
		return k == KindBytes || k == KindComplex
	case nil:
		return false
	default:
		return v.Kind() == k
	}
}

func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ab, aIsBytes := a.(BytesValue)
	bb, bIsBytes := b.(BytesValue)
	if aIsBytes || bIsBytes {
		return aIsBytes && bIsBytes && bytes.Equal(ab, bb)
	}
	return a == b
}
