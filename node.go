package ordered

import (
	"bytes"

	"github.com/cockroachdb/errors"
)

// ErrArenaFull is returned by Insert when the container was built with
// WithMaxNodes and every node slot is in use.
var ErrArenaFull = errors.New("allocation failed because arena is full")

// nodeID addresses a node in the arena.
type nodeID uint32

// nilNode is the sentinel leaf. It is black, holds no key, and stands for
// every absent child as well as the root's parent.
const nilNode nodeID = 0

// node is a red-black tree node. Children are owned by their parent; the
// parent link is only a back reference.
type node struct {
	left   nodeID
	right  nodeID
	parent nodeID
	color  Color
	key    Key
	value  Value
}

func (n *node) isRed() bool   { return n.color == Red }
func (n *node) isBlack() bool { return n.color == Black }

// arena owns the node storage of one tree. Slot 0 is the sentinel.
type arena struct {
	nodes []node
	free  []nodeID
	// maxNodes bounds the number of live nodes, 0 means unbounded.
	maxNodes int
	live     int
}

// newArena returns an arena holding only the sentinel.
func newArena(maxNodes int) *arena {
	return &arena{
		nodes:    make([]node, 1),
		maxNodes: maxNodes,
	}
}

// get returns the node at id. The pointer is invalidated by alloc.
func (a *arena) get(id nodeID) *node {
	return &a.nodes[id]
}

// alloc hands out a zeroed slot, reusing released slots first.
func (a *arena) alloc() (nodeID, error) {
	if a.maxNodes > 0 && a.live >= a.maxNodes {
		return nilNode, ErrArenaFull
	}
	a.live++
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		return id, nil
	}
	a.nodes = append(a.nodes, node{})
	return nodeID(len(a.nodes) - 1), nil
}

// release drops the buffers held by id and makes the slot reusable.
func (a *arena) release(id nodeID) {
	if id == nilNode {
		return
	}
	a.nodes[id] = node{}
	a.free = append(a.free, id)
	a.live--
}

// reset returns the arena to its initial state, dropping all storage.
func (a *arena) reset() {
	a.nodes = make([]node, 1)
	a.free = nil
	a.live = 0
}

// newNode allocates a red node holding owned copies of key and value.
func (a *arena) newNode(key Key, value Value, withValue bool) (nodeID, error) {
	id, err := a.alloc()
	if err != nil {
		return nilNode, err
	}
	n := a.get(id)
	n.color = Red
	n.key = bytes.Clone(key)
	if withValue {
		n.value = bytes.Clone(value)
	}
	return id, nil
}
