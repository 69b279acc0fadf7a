package tlv

import (
	"fmt"

	"github.com/danmuck/ghostwire/internal/protocol"
)

// Container is the appendable capability shared by group nodes and packets.
// Both store children in Fields; Node adds the group check on top.
type Container interface {
	Add(child *Node) error
	Children(id FieldID) []*Node
	All() []*Node
}

// Fields is an ordered multimap of child nodes. A field id may repeat (for
// example several route entries under one group); insertion order is kept
// across ids and is the order children are encoded in.
//
// The zero value accepts children. Node shadows the builders so that only
// group-kind nodes do.
type Fields struct {
	order []*Node
	byID  map[FieldID][]*Node
}

// Add appends child under its own field id. A child belongs to at most one
// container; adding one that is already attached fails with ErrNodeAttached.
func (f *Fields) Add(child *Node) error {
	if child == nil {
		return fmt.Errorf("tlv: nil child")
	}
	if child.attached {
		return fmt.Errorf("%w: %s", protocol.ErrNodeAttached, child.id)
	}
	if f.byID == nil {
		f.byID = make(map[FieldID][]*Node)
	}
	child.attached = true
	f.order = append(f.order, child)
	f.byID[child.id] = append(f.byID[child.id], child)
	return nil
}

// Children returns the nodes stored under id in insertion order.
func (f *Fields) Children(id FieldID) []*Node {
	return f.byID[id]
}

// All returns every child in insertion order.
func (f *Fields) All() []*Node {
	return f.order
}

func (f *Fields) Len() int {
	return len(f.order)
}

// First returns the first node stored under id.
func (f *Fields) First(id FieldID) (*Node, bool) {
	nodes := f.byID[id]
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// Remove drops every node stored under id and returns how many were removed.
// Removed nodes are detached and may be added elsewhere.
func (f *Fields) Remove(id FieldID) int {
	nodes := f.byID[id]
	removed := len(nodes)
	if removed == 0 {
		return 0
	}
	for _, n := range nodes {
		n.attached = false
		n.parent = nil
	}
	delete(f.byID, id)
	kept := f.order[:0]
	for _, n := range f.order {
		if n.id != id {
			kept = append(kept, n)
		}
	}
	clear(f.order[len(kept):])
	f.order = kept
	return removed
}

func (f *Fields) AddValue(id FieldID, v Value) error {
	n, err := NewValue(id, v)
	if err != nil {
		return err
	}
	return f.Add(n)
}

func (f *Fields) AddString(id FieldID, v string) error {
	return f.AddValue(id, StringValue(v))
}

func (f *Fields) AddUint32(id FieldID, v uint32) error {
	return f.AddValue(id, Uint32Value(v))
}

func (f *Fields) AddUint64(id FieldID, v uint64) error {
	return f.AddValue(id, Uint64Value(v))
}

func (f *Fields) AddBool(id FieldID, v bool) error {
	return f.AddValue(id, BoolValue(v))
}

// AddBytes stores a copy of v.
func (f *Fields) AddBytes(id FieldID, v []byte) error {
	return f.AddValue(id, BytesValue(append([]byte(nil), v...)))
}

// AddGroup appends an empty group node and returns it for population.
func (f *Fields) AddGroup(id FieldID) (*Node, error) {
	g, err := NewGroup(id)
	if err != nil {
		return nil, err
	}
	if err := f.Add(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (f *Fields) first(id FieldID) (*Node, error) {
	n, ok := f.First(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", protocol.ErrMissingField, id)
	}
	return n, nil
}

// GetString returns the value of the first id child.
func (f *Fields) GetString(id FieldID) (string, error) {
	n, err := f.first(id)
	if err != nil {
		return "", err
	}
	return n.AsString()
}

func (f *Fields) GetUint32(id FieldID) (uint32, error) {
	n, err := f.first(id)
	if err != nil {
		return 0, err
	}
	return n.AsUint32()
}

func (f *Fields) GetUint64(id FieldID) (uint64, error) {
	n, err := f.first(id)
	if err != nil {
		return 0, err
	}
	return n.AsUint64()
}

func (f *Fields) GetBool(id FieldID) (bool, error) {
	n, err := f.first(id)
	if err != nil {
		return false, err
	}
	return n.AsBool()
}

func (f *Fields) GetBytes(id FieldID) ([]byte, error) {
	n, err := f.first(id)
	if err != nil {
		return nil, err
	}
	return n.AsBytes()
}

// Equal reports whether both containers hold equal children in the same order.
func (f *Fields) Equal(other *Fields) bool {
	if len(f.order) != len(other.order) {
		return false
	}
	for i := range f.order {
		if !f.order[i].Equal(other.order[i]) {
			return false
		}
	}
	return true
}
