package tlv

import (
	"fmt"
	"slices"
	"strings"

	"github.com/danmuck/ghostwire/internal/protocol"
)

// FieldID identifies one field in the closed taxonomy. Equality is by the
// full 32-bit value.
type FieldID uint32

var fieldsByName = func() map[string]FieldID {
	out := make(map[string]FieldID, len(fieldNames))
	for id, name := range fieldNames {
		out[name] = id
	}
	return out
}()

func (id FieldID) Kind() FieldKind {
	return KindOf(id)
}

func (id FieldID) String() string {
	if name, ok := fieldNames[id]; ok {
		return name
	}
	return fmt.Sprintf("field(0x%08x)", uint32(id))
}

// Known reports whether id is part of the taxonomy.
func (id FieldID) Known() bool {
	_, ok := fieldNames[id]
	return ok
}

// LookupFieldID resolves a raw wire value. Values outside the taxonomy fail
// with ErrUnknownFieldID rather than being reinterpreted.
func LookupFieldID(raw uint32) (FieldID, error) {
	id := FieldID(raw)
	if !id.Known() {
		return 0, fmt.Errorf("%w: 0x%08x", protocol.ErrUnknownFieldID, raw)
	}
	return id, nil
}

// FieldIDByName resolves a field by its wire name, e.g. "channel_id".
func FieldIDByName(name string) (FieldID, error) {
	id, ok := fieldsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", protocol.ErrUnknownFieldID, name)
	}
	return id, nil
}

// FieldIDs lists the taxonomy ordered by numeric value.
func FieldIDs() []FieldID {
	out := make([]FieldID, 0, len(fieldNames))
	for id := range fieldNames {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
