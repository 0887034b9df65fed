// Package queue provides a FIFO queue of byte items.
package queue

import (
	"bytes"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Queue holds copies of the pushed items.
type Queue struct {
	q *linkedlistqueue.Queue
	// back is the most recently pushed item, nil when empty.
	back []byte
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{q: linkedlistqueue.New()}
}

// Push appends a copy of item at the back.
func (q *Queue) Push(item []byte) {
	c := bytes.Clone(item)
	q.q.Enqueue(c)
	q.back = c
}

// Pop removes and returns the front item.
func (q *Queue) Pop() ([]byte, bool) {
	v, ok := q.q.Dequeue()
	if !ok {
		return nil, false
	}
	if q.q.Empty() {
		q.back = nil
	}
	return v.([]byte), true
}

// Front returns the front item.
func (q *Queue) Front() ([]byte, bool) {
	v, ok := q.q.Peek()
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Back returns the last pushed item.
func (q *Queue) Back() ([]byte, bool) {
	if q.q.Empty() {
		return nil, false
	}
	return q.back, true
}

// Size returns the number of items.
func (q *Queue) Size() int { return q.q.Size() }

// Empty reports whether the queue holds no items.
func (q *Queue) Empty() bool { return q.q.Empty() }
