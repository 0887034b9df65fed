package ordered

import (
	"ordered/internal/invariants"
)

// Set is an ordered collection of unique byte keys. It is a Map without
// values: nodes carry only their key.
type Set struct {
	t      *tree
	logger Logger
}

// NewSet returns an empty set ordered by cmp. A nil cmp selects Signum.
func NewSet(cmp Compare, opts ...Option) *Set {
	if cmp == nil {
		cmp = Signum
	}
	o := makeOptions(opts)
	return &Set{
		t:      newTree(cmp, false, o.maxNodes),
		logger: o.logger,
	}
}

// Insert adds key and reports whether it was absent.
func (s *Set) Insert(key Key) (bool, error) {
	inserted, err := s.t.insert(key, nil)
	if inserted {
		s.checkInvariants("insert")
	}
	return inserted, err
}

// Delete removes key and reports whether it was present.
func (s *Set) Delete(key Key) bool {
	deleted := s.t.delete(key)
	if deleted {
		s.checkInvariants("delete")
	}
	return deleted
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key Key) bool {
	return s.t.find(key) != nilNode
}

// Count returns the number of elements equal to key, 0 or 1.
func (s *Set) Count(key Key) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Size returns the number of elements.
func (s *Set) Size() int {
	return s.t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (s *Set) Height() int {
	return s.t.height()
}

// Verify checks the ordering and red-black invariants of the set.
func (s *Set) Verify() error {
	return s.t.verify()
}

// Destroy removes every element. The set can be used again afterwards.
func (s *Set) Destroy() {
	if invariants.Enabled && s.t.size > 0 {
		s.logger.Infof("ordered: destroying set with %d elements", s.t.size)
	}
	s.t.destroy()
}

func (s *Set) checkInvariants(op string) {
	if !invariants.Enabled {
		return
	}
	if err := s.t.verify(); err != nil {
		s.logger.Fatalf("ordered: set %s: %v", op, err)
	}
}
