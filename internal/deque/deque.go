package deque

import (
	"fmt"
	"iter"

	platformerror "linked-lists/internal/platform/error"
	"linked-lists/internal/platform/helper"
	"linked-lists/internal/platform/parser"

	"github.com/google/uuid"
)

// Deque is a doubly-linked list whose nodes live in an arena and link to each other by index.
// Views handed out by the Peek methods are tracked per node; mutating a node that has an
// outstanding view panics with a *platformerror.StackTraceError.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	id    uuid.UUID
	arena arena[T]
	head  index
	tail  index
	count int
}

func New[T any]() *Deque[T] {
	return &Deque[T]{
		id:   uuid.New(),
		head: nilIndex,
		tail: nilIndex,
	}
}

func (d *Deque[T]) ID() uuid.UUID {
	return d.id
}

func (d *Deque[T]) Count() int {
	return d.count
}

func (d *Deque[T]) PushFront(val T) {
	if d.head == nilIndex {
		n := d.arena.alloc(val)
		d.head, d.tail = n, n
		d.count++
		return
	}

	old := d.head
	d.checkMut(old)
	n := d.arena.alloc(val)
	d.arena.at(old).prev = n
	d.arena.at(n).next = old
	d.head = n
	d.count++
}

func (d *Deque[T]) PushBack(val T) {
	if d.tail == nilIndex {
		n := d.arena.alloc(val)
		d.head, d.tail = n, n
		d.count++
		return
	}

	old := d.tail
	d.checkMut(old)
	n := d.arena.alloc(val)
	d.arena.at(old).next = n
	d.arena.at(n).prev = old
	d.tail = n
	d.count++
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.head == nilIndex {
		return zero, false
	}

	old := d.head
	next := d.arena.at(old).next
	d.checkMut(old)
	if next != nilIndex {
		d.checkMut(next)
		d.arena.at(next).prev = nilIndex
		helper.Log.Tracef("deque %s: head %d -> %d", d.id, old, next)
		d.head = next
	} else {
		d.head = nilIndex
		d.tail = nilIndex
	}
	d.count--
	return d.arena.release(old), true
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.tail == nilIndex {
		return zero, false
	}

	old := d.tail
	prev := d.arena.at(old).prev
	d.checkMut(old)
	if prev != nilIndex {
		d.checkMut(prev)
		d.arena.at(prev).next = nilIndex
		helper.Log.Tracef("deque %s: tail %d -> %d", d.id, old, prev)
		d.tail = prev
	} else {
		d.head = nilIndex
		d.tail = nilIndex
	}
	d.count--
	return d.arena.release(old), true
}

func (d *Deque[T]) PeekFront() (*Ref[T], bool) {
	if d.head == nilIndex {
		return nil, false
	}
	return d.newRef(d.head), true
}

func (d *Deque[T]) PeekBack() (*Ref[T], bool) {
	if d.tail == nilIndex {
		return nil, false
	}
	return d.newRef(d.tail), true
}

func (d *Deque[T]) PeekFrontMut() (*RefMut[T], bool) {
	if d.head == nilIndex {
		return nil, false
	}
	return d.newRefMut(d.head), true
}

func (d *Deque[T]) PeekBackMut() (*RefMut[T], bool) {
	if d.tail == nilIndex {
		return nil, false
	}
	return d.newRefMut(d.tail), true
}

// All yields elements front to back. The node being yielded holds a shared borrow
// until the loop body returns.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.head; i != nilIndex; {
			if !d.visit(i, yield) {
				return
			}
			i = d.arena.at(i).next
		}
	}
}

func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.tail; i != nilIndex; {
			if !d.visit(i, yield) {
				return
			}
			i = d.arena.at(i).prev
		}
	}
}

func (d *Deque[T]) visit(i index, yield func(T) bool) bool {
	d.borrow(i)
	defer d.unborrow(i)
	return yield(d.arena.at(i).elem)
}

func (d *Deque[T]) Values() []T {
	values := make([]T, 0, d.count)
	for val := range d.All() {
		values = append(values, val)
	}
	return values
}

// Clear pops every node from the front and then drops the arena storage.
// Every node is checked for outstanding views first so a fault leaves the deque untouched.
func (d *Deque[T]) Clear() {
	for i := d.head; i != nilIndex; i = d.arena.at(i).next {
		d.checkMut(i)
	}
	released := 0
	for {
		if _, ok := d.PopFront(); !ok {
			break
		}
		released++
	}
	d.arena.sweep()
	helper.Log.Debugf("deque %s: released %d nodes", d.id, released)
}

// MarshalBinary encodes the elements front to back.
func (d *Deque[T]) MarshalBinary() ([]byte, error) {
	return parser.EncodeValues(d.Values())
}

// UnmarshalBinary replaces the contents of d with the encoded elements.
func (d *Deque[T]) UnmarshalBinary(data []byte) error {
	values, err := parser.DecodeValues[T](data)
	if err != nil {
		return err
	}
	d.Clear()
	for _, val := range values {
		d.PushBack(val)
	}
	return nil
}

// checkMut fails fast unless node i is free of views.
func (d *Deque[T]) checkMut(i index) {
	switch b := d.arena.at(i).borrow; {
	case b < 0:
		d.fault(platformerror.AlreadyBorrowedErrorCode, "node %d is mutably borrowed", i)
	case b > 0:
		d.fault(platformerror.AlreadyBorrowedErrorCode, "node %d has %d outstanding views", i, b)
	}
}

func (d *Deque[T]) borrow(i index) {
	s := d.arena.at(i)
	if s.borrow < 0 {
		d.fault(platformerror.AlreadyMutablyBorrowedErrorCode, "node %d is mutably borrowed", i)
	}
	s.borrow++
}

func (d *Deque[T]) unborrow(i index) {
	d.arena.at(i).borrow--
}

func (d *Deque[T]) borrowMut(i index) {
	d.checkMut(i)
	d.arena.at(i).borrow = -1
}

func (d *Deque[T]) fault(code platformerror.Code, format string, args ...any) {
	msg := fmt.Sprintf("%s: deque %s: %s", code, d.id, fmt.Sprintf(format, args...))
	helper.Log.Error(msg)
	panic(platformerror.NewStackTraceError(msg, code))
}
