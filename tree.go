package ordered

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// tree - red-black tree shared by Map and Set.
type tree struct {
	arena *arena
	cmp   Compare
	root  nodeID
	size  int
	// withValues is set for Map; Set nodes carry no value.
	withValues bool
}

// newTree returns an empty tree ordered by cmp.
func newTree(cmp Compare, withValues bool, maxNodes int) *tree {
	return &tree{
		arena:      newArena(maxNodes),
		cmp:        cmp,
		root:       nilNode,
		withValues: withValues,
	}
}

func (t *tree) node(id nodeID) *node {
	return t.arena.get(id)
}

// find returns the node holding key, or nilNode.
func (t *tree) find(key Key) nodeID {
	x := t.root
	for x != nilNode {
		n := t.node(x)
		switch c := t.cmp(n.key, key); {
		case c < 0:
			x = n.right
		case c > 0:
			x = n.left
		default:
			return x
		}
	}
	return nilNode
}

// insert adds key (and value for maps). An existing equal key is left
// untouched and insert reports false.
func (t *tree) insert(key Key, value Value) (bool, error) {
	parent := nilNode
	x := t.root
	c := 0
	for x != nilNode {
		parent = x
		n := t.node(x)
		c = t.cmp(key, n.key)
		switch {
		case c < 0:
			x = n.left
		case c > 0:
			x = n.right
		default:
			return false, nil
		}
	}

	z, err := t.arena.newNode(key, value, t.withValues)
	if err != nil {
		return false, err
	}
	t.node(z).parent = parent
	switch {
	case parent == nilNode:
		t.root = z
	case c < 0:
		t.node(parent).left = z
	default:
		t.node(parent).right = z
	}

	t.fixInsert(z)
	t.size++
	return true, nil
}

func (t *tree) fixInsert(z nodeID) {
	for t.node(t.node(z).parent).isRed() {
		p := t.node(z).parent
		g := t.node(p).parent
		if p == t.node(g).left {
			u := t.node(g).right // uncle
			if t.node(u).isRed() {
				t.node(p).color = Black
				t.node(u).color = Black
				t.node(g).color = Red
				z = g
				continue
			}
			if z == t.node(p).right { // inner child, turn it outer
				z = p
				t.rotateLeft(z)
				p = t.node(z).parent
			}
			t.node(p).color = Black
			t.node(g).color = Red
			t.rotateRight(g)
		} else {
			u := t.node(g).left // uncle
			if t.node(u).isRed() {
				t.node(p).color = Black
				t.node(u).color = Black
				t.node(g).color = Red
				z = g
				continue
			}
			if z == t.node(p).left { // inner child, turn it outer
				z = p
				t.rotateRight(z)
				p = t.node(z).parent
			}
			t.node(p).color = Black
			t.node(g).color = Red
			t.rotateLeft(g)
		}
	}
	t.node(t.root).color = Black
}

// rotateLeft lifts x's right child into x's place.
func (t *tree) rotateLeft(x nodeID) {
	y := t.node(x).right

	t.node(x).right = t.node(y).left
	if t.node(y).left != nilNode {
		t.node(t.node(y).left).parent = x
	}

	t.node(y).parent = t.node(x).parent
	t.replaceChild(t.node(x).parent, x, y)

	t.node(y).left = x
	t.node(x).parent = y
}

// rotateRight lifts x's left child into x's place.
func (t *tree) rotateRight(x nodeID) {
	y := t.node(x).left

	t.node(x).left = t.node(y).right
	if t.node(y).right != nilNode {
		t.node(t.node(y).right).parent = x
	}

	t.node(y).parent = t.node(x).parent
	t.replaceChild(t.node(x).parent, x, y)

	t.node(y).right = x
	t.node(x).parent = y
}

// replaceChild points parent's link to old at repl instead. A nilNode
// parent means old was the root.
func (t *tree) replaceChild(parent, old, repl nodeID) {
	switch {
	case parent == nilNode:
		t.root = repl
	case t.node(parent).left == old:
		t.node(parent).left = repl
	default:
		t.node(parent).right = repl
	}
}

// transplant puts the subtree at v where the subtree at u was. v may be
// the sentinel, whose parent is then set for fixDelete.
func (t *tree) transplant(u, v nodeID) {
	up := t.node(u).parent
	t.replaceChild(up, u, v)
	t.node(v).parent = up
}

func (t *tree) minimum(x nodeID) nodeID {
	for t.node(x).left != nilNode {
		x = t.node(x).left
	}
	return x
}

// delete removes key and reports whether it was present.
func (t *tree) delete(key Key) bool {
	z := t.find(key)
	if z == nilNode {
		return false
	}

	var x nodeID
	y := z
	yOriginalColor := t.node(y).color

	switch {
	case t.node(z).left == nilNode: // no children or only right
		x = t.node(z).right
		t.transplant(z, x)
	case t.node(z).right == nilNode: // only left
		x = t.node(z).left
		t.transplant(z, x)
	default: // both, splice out the successor
		y = t.minimum(t.node(z).right)
		yOriginalColor = t.node(y).color
		x = t.node(y).right

		if t.node(y).parent == z {
			t.node(x).parent = y
		} else {
			t.transplant(y, x)
			t.node(y).right = t.node(z).right
			t.node(t.node(y).right).parent = y
		}

		t.transplant(z, y)
		t.node(y).left = t.node(z).left
		t.node(t.node(y).left).parent = y
		t.node(y).color = t.node(z).color
	}

	if yOriginalColor == Black {
		t.fixDelete(x)
	}

	// The sentinel keeps no links between operations.
	*t.node(nilNode) = node{}
	t.arena.release(z)
	t.size--
	return true
}

func (t *tree) fixDelete(x nodeID) {
	for x != t.root && t.node(x).isBlack() {
		xp := t.node(x).parent
		if x == t.node(xp).left {
			w := t.node(xp).right // sibling

			if t.node(w).isRed() {
				t.node(w).color = Black
				t.node(xp).color = Red
				t.rotateLeft(xp)
				w = t.node(xp).right
			}

			if t.node(t.node(w).left).isBlack() && t.node(t.node(w).right).isBlack() {
				t.node(w).color = Red
				x = xp
				continue
			}

			if t.node(t.node(w).right).isBlack() {
				t.node(t.node(w).left).color = Black
				t.node(w).color = Red
				t.rotateRight(w)
				w = t.node(xp).right
			}

			t.node(w).color = t.node(xp).color
			t.node(xp).color = Black
			t.node(t.node(w).right).color = Black
			t.rotateLeft(xp)
			x = t.root
		} else {
			w := t.node(xp).left // sibling

			if t.node(w).isRed() {
				t.node(w).color = Black
				t.node(xp).color = Red
				t.rotateRight(xp)
				w = t.node(xp).left
			}

			if t.node(t.node(w).right).isBlack() && t.node(t.node(w).left).isBlack() {
				t.node(w).color = Red
				x = xp
				continue
			}

			if t.node(t.node(w).left).isBlack() {
				t.node(t.node(w).right).color = Black
				t.node(w).color = Red
				t.rotateLeft(w)
				w = t.node(xp).left
			}

			t.node(w).color = t.node(xp).color
			t.node(xp).color = Black
			t.node(t.node(w).left).color = Black
			t.rotateRight(xp)
			x = t.root
		}
	}
	t.node(x).color = Black
}

// destroy releases every node and leaves an empty, reusable tree. The
// walk uses an explicit work-list so deep trees cannot exhaust the stack.
func (t *tree) destroy() {
	if t.root != nilNode {
		work := arraystack.New()
		work.Push(t.root)
		for !work.Empty() {
			v, _ := work.Pop()
			id := v.(nodeID)
			n := t.node(id)
			if n.left != nilNode {
				work.Push(n.left)
			}
			if n.right != nilNode {
				work.Push(n.right)
			}
			t.arena.release(id)
		}
	}
	t.arena.reset()
	t.root = nilNode
	t.size = 0
}

// walk visits the nodes in order until fn returns false.
func (t *tree) walk(fn func(id nodeID, n *node) bool) {
	work := arraystack.New()
	x := t.root
	for x != nilNode || !work.Empty() {
		for x != nilNode {
			work.Push(x)
			x = t.node(x).left
		}
		v, _ := work.Pop()
		id := v.(nodeID)
		n := t.node(id)
		if !fn(id, n) {
			return
		}
		x = n.right
	}
}

// height returns the number of nodes on the longest root-to-leaf path.
func (t *tree) height() int {
	return t.heightOf(t.root)
}

func (t *tree) heightOf(x nodeID) int {
	if x == nilNode {
		return 0
	}
	n := t.node(x)
	return 1 + max(t.heightOf(n.left), t.heightOf(n.right))
}
