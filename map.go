package ordered

import (
	"ordered/internal/invariants"
)

// Map is an ordered association of unique byte keys to byte values. Keys
// and values are copied on insertion and owned by the map.
type Map struct {
	t      *tree
	logger Logger
}

// NewMap returns an empty map ordered by cmp. A nil cmp selects Signum,
// which compares in DefaultByteOrder. The comparator is borrowed: it must
// stay valid for the life of the map.
func NewMap(cmp Compare, opts ...Option) *Map {
	if cmp == nil {
		cmp = Signum
	}
	o := makeOptions(opts)
	return &Map{
		t:      newTree(cmp, true, o.maxNodes),
		logger: o.logger,
	}
}

// Insert stores value under key unless key is already present, in which
// case the stored value is kept and Insert reports false. The only error
// is ErrArenaFull.
func (m *Map) Insert(key Key, value Value) (bool, error) {
	inserted, err := m.t.insert(key, value)
	if inserted {
		m.checkInvariants("insert")
	}
	return inserted, err
}

// Find returns the value stored under key. The returned slice belongs to
// the map and is only valid until key is deleted or the map destroyed.
func (m *Map) Find(key Key) (Value, bool) {
	id := m.t.find(key)
	if id == nilNode {
		return nil, false
	}
	return m.t.node(id).value, true
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key Key) bool {
	deleted := m.t.delete(key)
	if deleted {
		m.checkInvariants("delete")
	}
	return deleted
}

// Size returns the number of entries.
func (m *Map) Size() int {
	return m.t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (m *Map) Height() int {
	return m.t.height()
}

// Verify checks the ordering and red-black invariants of the map.
func (m *Map) Verify() error {
	return m.t.verify()
}

// Destroy removes every entry and releases their storage. The map can be
// used again afterwards.
func (m *Map) Destroy() {
	if invariants.Enabled && m.t.size > 0 {
		m.logger.Infof("ordered: destroying map with %d entries", m.t.size)
	}
	m.t.destroy()
}

func (m *Map) checkInvariants(op string) {
	if !invariants.Enabled {
		return
	}
	if err := m.t.verify(); err != nil {
		m.logger.Fatalf("ordered: map %s: %v", op, err)
	}
}
