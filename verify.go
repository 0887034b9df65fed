package ordered

import (
	"github.com/cockroachdb/errors"
)

// verify checks the red-black and ordering invariants of the whole tree.
func (t *tree) verify() error {
	if !t.node(nilNode).isBlack() {
		return errors.AssertionFailedf("sentinel is red")
	}
	if t.root == nilNode {
		if t.size != 0 {
			return errors.AssertionFailedf("empty tree has size %d", t.size)
		}
		return nil
	}
	if t.node(t.root).isRed() {
		return errors.AssertionFailedf("root %d is red", t.root)
	}
	if p := t.node(t.root).parent; p != nilNode {
		return errors.AssertionFailedf("root %d has parent %d", t.root, p)
	}
	if _, err := t.verifyNode(t.root); err != nil {
		return err
	}

	count := 0
	var prev Key
	var err error
	t.walk(func(id nodeID, n *node) bool {
		if count > 0 && t.cmp(prev, n.key) >= 0 {
			err = errors.AssertionFailedf("keys out of order at node %d: %x >= %x", id, prev, n.key)
			return false
		}
		prev = n.key
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != t.size {
		return errors.AssertionFailedf("size is %d but %d nodes are reachable", t.size, count)
	}
	if count != t.arena.live {
		return errors.AssertionFailedf("arena holds %d live nodes but %d are reachable", t.arena.live, count)
	}
	return nil
}

// verifyNode checks the subtree at x and returns its black-height.
func (t *tree) verifyNode(x nodeID) (int, error) {
	if x == nilNode {
		return 0, nil
	}
	n := t.node(x)
	for _, c := range [2]nodeID{n.left, n.right} {
		if c == nilNode {
			continue
		}
		if t.node(c).parent != x {
			return 0, errors.AssertionFailedf("child %d of %d points to parent %d", c, x, t.node(c).parent)
		}
		if n.isRed() && t.node(c).isRed() {
			return 0, errors.AssertionFailedf("red node %d has red child %d", x, c)
		}
	}
	lh, err := t.verifyNode(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := t.verifyNode(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.AssertionFailedf("node %d has black-heights %d and %d", x, lh, rh)
	}
	if n.isBlack() {
		lh++
	}
	return lh, nil
}
