package stack

import (
	"linked-lists/internal/platform/helper"
	"linked-lists/internal/platform/parser"
)

type (
	node[T any] struct {
		val  T
		next *node[T]
	}

	// List is a generic singly-linked stack. The front of the list is the most recently pushed element.
	List[T any] struct {
		head  *node[T]
		count int
	}
)

func New[T any]() *List[T] {
	return &List[T]{head: nil}
}

func (l *List[T]) Count() int {
	return l.count
}

func (l *List[T]) Push(val T) {
	l.head = &node[T]{
		val:  val,
		next: l.head,
	}
	l.count++
}

func (l *List[T]) Pop() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	old := l.head
	l.head = old.next
	old.next = nil
	l.count--
	return old.val, true
}

func (l *List[T]) Peek() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	return l.head.val, true
}

// PeekMut returns a pointer to the front element. It stays valid until that element is popped.
func (l *List[T]) PeekMut() (*T, bool) {
	if l.head == nil {
		return nil, false
	}
	return &l.head.val, true
}

func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	for val := range l.Iter() {
		values = append(values, val)
	}
	return values
}

// Clear unlinks nodes one by one from the head so teardown never recurses.
func (l *List[T]) Clear() {
	released := 0
	curr := l.head
	l.head = nil
	for curr != nil {
		next := curr.next
		curr.next = nil
		curr = next
		released++
	}
	l.count = 0
	helper.Log.Debugf("stack: released %d nodes", released)
}

// ContainsCycle runs Floyd's tortoise and hare. The hare starts one node ahead
// and moves two nodes for every one the tortoise moves.
func (l *List[T]) ContainsCycle() bool {
	if l.head == nil {
		return false
	}

	slow := l.head
	fast := l.head.next
	for fast != nil && fast.next != nil {
		if slow == fast {
			return true
		}
		slow = slow.next
		fast = fast.next.next
	}
	return false
}

// Reverse relinks every node to point at its predecessor.
func (l *List[T]) Reverse() {
	if l.head == nil || l.head.next == nil {
		return
	}

	var prev *node[T]
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		if prev != nil {
			helper.Log.Tracef("stack: reverse %v -> %v", curr.val, prev.val)
		}
		prev = curr
		curr = next
	}
	l.head = prev
}

// MarshalBinary encodes the elements front to back.
func (l *List[T]) MarshalBinary() ([]byte, error) {
	return parser.EncodeValues(l.Values())
}

// UnmarshalBinary replaces the contents of l with the encoded elements, keeping their order.
func (l *List[T]) UnmarshalBinary(data []byte) error {
	values, err := parser.DecodeValues[T](data)
	if err != nil {
		return err
	}
	l.Clear()
	for i := len(values) - 1; i >= 0; i-- {
		l.Push(values[i])
	}
	return nil
}
