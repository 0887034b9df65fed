// Package deque provides a double-ended queue of byte items with indexed
// access.
package deque

import (
	"bytes"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Deque holds copies of the pushed items.
type Deque struct {
	l *doublylinkedlist.List
}

// New returns an empty deque.
func New() *Deque {
	return &Deque{l: doublylinkedlist.New()}
}

// Size returns the number of items.
func (d *Deque) Size() int { return d.l.Size() }

// Empty reports whether the deque holds no items.
func (d *Deque) Empty() bool { return d.l.Empty() }

// Front returns the first item.
func (d *Deque) Front() ([]byte, bool) { return d.At(0) }

// Back returns the last item.
func (d *Deque) Back() ([]byte, bool) { return d.At(d.l.Size() - 1) }

// PushFront inserts a copy of item at the beginning.
func (d *Deque) PushFront(item []byte) {
	d.l.Prepend(bytes.Clone(item))
}

// PushBack inserts a copy of item at the end.
func (d *Deque) PushBack(item []byte) {
	d.l.Append(bytes.Clone(item))
}

// PopFront removes and returns the first item.
func (d *Deque) PopFront() ([]byte, bool) {
	v, ok := d.Front()
	if ok {
		d.l.Remove(0)
	}
	return v, ok
}

// PopBack removes and returns the last item.
func (d *Deque) PopBack() ([]byte, bool) {
	v, ok := d.Back()
	if ok {
		d.l.Remove(d.l.Size() - 1)
	}
	return v, ok
}

// Insert places a copy of item at index at. An index past the end appends;
// a negative index inserts at the front.
func (d *Deque) Insert(at int, item []byte) {
	switch {
	case at >= d.l.Size():
		d.PushBack(item)
	case at <= 0:
		d.PushFront(item)
	default:
		d.l.Insert(at, bytes.Clone(item))
	}
}

// Remove deletes the item at index at. Out of range indexes are ignored.
func (d *Deque) Remove(at int) {
	d.l.Remove(at)
}

// At returns the item at index at.
func (d *Deque) At(at int) ([]byte, bool) {
	v, ok := d.l.Get(at)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Count returns the number of items equal to item.
func (d *Deque) Count(item []byte) int {
	n := 0
	d.l.Each(func(_ int, v interface{}) {
		if bytes.Equal(v.([]byte), item) {
			n++
		}
	})
	return n
}
