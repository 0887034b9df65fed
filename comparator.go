package ordered

import (
	"bytes"
	"fmt"
)

// ByteOrder selects which end of a buffer holds the most significant byte.
type ByteOrder uint8

// Byte orders.
const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// DefaultByteOrder is the order behind Signum, Smaller and Greater. It is
// little-endian on every platform.
const DefaultByteOrder = LittleEndian

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	}
	return fmt.Sprintf("ByteOrder(%d)", uint8(o))
}

// Comparator orders byte buffers without interpreting them. A longer
// buffer always orders after a shorter one: [0x01] is before [0x01 0x00]
// although both encode 1 in little-endian. Buffers of equal length are
// compared from the most significant byte under the comparator's order.
type Comparator struct {
	order ByteOrder
}

// NewComparator returns a comparator using the given byte order.
func NewComparator(order ByteOrder) Comparator {
	return Comparator{order: order}
}

// ByteOrder returns the byte order the comparator was built with.
func (c Comparator) ByteOrder() ByteOrder {
	return c.order
}

// Equal reports whether a and b hold the same bytes.
func (c Comparator) Equal(a, b []byte) bool {
	return Equal(a, b)
}

// Smaller reports whether a orders before b or equals it.
func (c Comparator) Smaller(a, b []byte) bool {
	return signum(c.order, a, b) <= 0
}

// Greater reports whether a orders strictly after b.
func (c Comparator) Greater(a, b []byte) bool {
	return signum(c.order, a, b) > 0
}

// Signum returns the three-way comparison of a and b.
func (c Comparator) Signum(a, b []byte) int {
	return signum(c.order, a, b)
}

// Compare returns the comparator's three-way form for use with NewMap and
// NewSet.
func (c Comparator) Compare() Compare {
	return c.Signum
}

func signum(order ByteOrder, a, b []byte) int {
	if len(a) != len(b) {
		return SignumSize(a, b)
	}
	if order == BigEndian {
		// Equal lengths: lexicographic order is most-significant-first.
		return bytes.Compare(a, b)
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b have the same length and bytes.
func Equal(a, b []byte) bool {
	return len(a) == len(b) && bytes.Equal(a, b)
}

// Shorter reports whether a is not longer than b.
func Shorter(a, b []byte) bool { return len(a) <= len(b) }

// Longer reports whether a is longer than b.
func Longer(a, b []byte) bool { return len(a) > len(b) }

// SignumSize returns the sign of len(a) - len(b).
func SignumSize(a, b []byte) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// SignumLE compares a and b as little-endian buffers.
func SignumLE(a, b []byte) int { return signum(LittleEndian, a, b) }

// SignumBE compares a and b as big-endian buffers.
func SignumBE(a, b []byte) int { return signum(BigEndian, a, b) }

// SmallerLE reports whether a <= b in little-endian.
func SmallerLE(a, b []byte) bool { return SignumLE(a, b) <= 0 }

// GreaterLE reports whether a > b in little-endian.
func GreaterLE(a, b []byte) bool { return SignumLE(a, b) > 0 }

// SmallerBE reports whether a <= b in big-endian.
func SmallerBE(a, b []byte) bool { return SignumBE(a, b) <= 0 }

// GreaterBE reports whether a > b in big-endian.
func GreaterBE(a, b []byte) bool { return SignumBE(a, b) > 0 }

// Signum compares a and b in DefaultByteOrder.
func Signum(a, b []byte) int { return signum(DefaultByteOrder, a, b) }

// Smaller reports whether a <= b in DefaultByteOrder.
func Smaller(a, b []byte) bool { return Signum(a, b) <= 0 }

// Greater reports whether a > b in DefaultByteOrder.
func Greater(a, b []byte) bool { return Signum(a, b) > 0 }
