package tlv

import (
	"fmt"
	"strings"
)

// FieldKind is the value category a field identifier is permanently bound
// to. Kinds occupy the high bits of every FieldID.
type FieldKind uint32

const (
	KindNone       FieldKind = 0
	KindString     FieldKind = 1 << 16
	KindUint32     FieldKind = 1 << 17
	KindBytes      FieldKind = 1 << 18
	KindBool       FieldKind = 1 << 19
	KindUint64     FieldKind = 1 << 20
	KindCompressed FieldKind = 1 << 29
	KindGroup      FieldKind = 1 << 30
	KindComplex    FieldKind = 1 << 31
)

// kindMask covers every bit reserved for kind flags.
const kindMask = uint32(KindString | KindUint32 | KindBytes | KindBool |
	KindUint64 | KindCompressed | KindGroup | KindComplex)

var kindNames = map[FieldKind]string{
	KindNone:       "none",
	KindString:     "string",
	KindUint32:     "uint32",
	KindBytes:      "bytes",
	KindBool:       "bool",
	KindUint64:     "uint64",
	KindCompressed: "compressed",
	KindGroup:      "group",
	KindComplex:    "complex",
}

func (k FieldKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(0x%08x)", uint32(k))
}

// Encodable reports whether values of this kind have a wire representation.
// None and Compressed are reserved, as is any combination of flags.
func (k FieldKind) Encodable() bool {
	switch k {
	case KindString, KindUint32, KindBytes, KindBool, KindUint64, KindGroup, KindComplex:
		return true
	default:
		return false
	}
}

// ParseKind resolves a kind by its String name.
func ParseKind(name string) (FieldKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("tlv: unknown field kind %q", name)
}

// KindOf derives the kind of id by masking its reserved high bits.
func KindOf(id FieldID) FieldKind {
	return FieldKind(uint32(id) & kindMask)
}
