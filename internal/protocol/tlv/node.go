package tlv

import (
	"fmt"

	"github.com/danmuck/ghostwire/internal/protocol"
)

// Node is one TLV in a tree. Group nodes hold children and no value; every
// other node holds exactly one value and no children. A node exclusively
// owns its subtree.
type Node struct {
	Fields

	id    FieldID
	value Value

	attached bool
	parent   *Node
}

// NewValue builds a scalar node, checking v against the kind of id.
func NewValue(id FieldID, v Value) (*Node, error) {
	kind := KindOf(id)
	if !kind.Encodable() {
		return nil, fmt.Errorf("%w: field %s has kind %s", protocol.ErrUnsupportedFeature, id, kind)
	}
	if kind == KindGroup {
		return nil, fmt.Errorf("%w: group field %s cannot hold a value", protocol.ErrTypeMismatch, id)
	}
	if !accepts(kind, v) {
		return nil, fmt.Errorf("%w: field %s is %s, got %T", protocol.ErrTypeMismatch, id, kind, v)
	}
	return &Node{id: id, value: v}, nil
}

// NewGroup builds an empty group node.
func NewGroup(id FieldID) (*Node, error) {
	if kind := KindOf(id); kind != KindGroup {
		return nil, fmt.Errorf("%w: field %s is %s, not a group", protocol.ErrTypeMismatch, id, kind)
	}
	return &Node{id: id}, nil
}

func (n *Node) ID() FieldID {
	return n.id
}

func (n *Node) Kind() FieldKind {
	return KindOf(n.id)
}

func (n *Node) IsGroup() bool {
	return KindOf(n.id) == KindGroup
}

func (n *Node) notAGroup() error {
	return fmt.Errorf("%w: %s is %s", protocol.ErrNotAGroup, n.id, n.Kind())
}

// Add appends child to a group node. It fails with ErrNotAGroup on any other
// kind and with ErrNodeCycle when child is n or one of its ancestors.
func (n *Node) Add(child *Node) error {
	if !n.IsGroup() {
		return n.notAGroup()
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("%w: %s", protocol.ErrNodeCycle, child.id)
		}
	}
	if err := n.Fields.Add(child); err != nil {
		return err
	}
	child.parent = n
	return nil
}

func (n *Node) AddValue(id FieldID, v Value) error {
	if !n.IsGroup() {
		return n.notAGroup()
	}
	child, err := NewValue(id, v)
	if err != nil {
		return err
	}
	return n.Add(child)
}

func (n *Node) AddString(id FieldID, v string) error {
	return n.AddValue(id, StringValue(v))
}

func (n *Node) AddUint32(id FieldID, v uint32) error {
	return n.AddValue(id, Uint32Value(v))
}

func (n *Node) AddUint64(id FieldID, v uint64) error {
	return n.AddValue(id, Uint64Value(v))
}

func (n *Node) AddBool(id FieldID, v bool) error {
	return n.AddValue(id, BoolValue(v))
}

// AddBytes stores a copy of v.
func (n *Node) AddBytes(id FieldID, v []byte) error {
	return n.AddValue(id, BytesValue(append([]byte(nil), v...)))
}

// AddGroup appends an empty group node and returns it for population.
func (n *Node) AddGroup(id FieldID) (*Node, error) {
	if !n.IsGroup() {
		return nil, n.notAGroup()
	}
	g, err := NewGroup(id)
	if err != nil {
		return nil, err
	}
	if err := n.Add(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Value returns the scalar payload, nil for groups.
func (n *Node) Value() Value {
	return n.value
}

func (n *Node) scalar() (Value, error) {
	if n.value == nil {
		return nil, fmt.Errorf("%w: %s", protocol.ErrNoValue, n.id)
	}
	return n.value, nil
}

func mismatch(n *Node, want FieldKind) error {
	return fmt.Errorf("%w: %s holds %s, want %s", protocol.ErrTypeMismatch, n.id, n.value.Kind(), want)
}

func (n *Node) AsString() (string, error) {
	v, err := n.scalar()
	if err != nil {
		return "", err
	}
	s, ok := v.(StringValue)
	if !ok {
		return "", mismatch(n, KindString)
	}
	return string(s), nil
}

func (n *Node) AsBool() (bool, error) {
	v, err := n.scalar()
	if err != nil {
		return false, err
	}
	b, ok := v.(BoolValue)
	if !ok {
		return false, mismatch(n, KindBool)
	}
	return bool(b), nil
}

func (n *Node) AsUint32() (uint32, error) {
	v, err := n.scalar()
	if err != nil {
		return 0, err
	}
	u, ok := v.(Uint32Value)
	if !ok {
		return 0, mismatch(n, KindUint32)
	}
	return uint32(u), nil
}

func (n *Node) AsUint64() (uint64, error) {
	v, err := n.scalar()
	if err != nil {
		return 0, err
	}
	u, ok := v.(Uint64Value)
	if !ok {
		return 0, mismatch(n, KindUint64)
	}
	return uint64(u), nil
}

// AsBytes returns the raw payload of a bytes or complex node. The slice is
// shared with the node.
func (n *Node) AsBytes() ([]byte, error) {
	v, err := n.scalar()
	if err != nil {
		return nil, err
	}
	b, ok := v.(BytesValue)
	if !ok {
		return nil, mismatch(n, KindBytes)
	}
	return []byte(b), nil
}

// Equal compares id, value and children recursively.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.id != other.id || !valuesEqual(n.value, other.value) {
		return false
	}
	return n.Fields.Equal(&other.Fields)
}

func (n *Node) String() string {
	if n.value == nil {
		return fmt.Sprintf("%s{%d children}", n.id, n.Len())
	}
	return fmt.Sprintf("%s=%v", n.id, n.value)
}
