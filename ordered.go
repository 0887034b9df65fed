// Package ordered provides a Map and a Set ordered by a three-way
// comparator over raw byte keys. Both are backed by the same red-black
// tree.
//
// Containers are not safe for concurrent use.
package ordered

// Color - red-black tree node color.
type Color uint8

// Colors of node. The zero value is black so that the sentinel leaf is
// black without initialisation.
const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Key type.
type Key = []byte

// Value type.
type Value = []byte

// Compare returns -1, 0, or +1 depending on whether a orders before, equal
// to, or after b. Only the sign of the result is inspected.
type Compare func(a, b []byte) int
