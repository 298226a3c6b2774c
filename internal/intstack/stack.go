package intstack

import "linked-lists/internal/platform/helper"

type (
	node struct {
		val  int32
		next *node
	}

	// Stack is a singly-linked LIFO of int32 values. The zero value is an empty stack.
	Stack struct {
		head  *node
		count int
	}
)

func New() *Stack {
	return &Stack{head: nil}
}

func (s *Stack) Count() int {
	return s.count
}

func (s *Stack) Push(val int32) {
	s.head = &node{
		val:  val,
		next: s.head,
	}
	s.count++
}

// Pop returns false when the stack is empty.
func (s *Stack) Pop() (int32, bool) {
	if s.head == nil {
		return 0, false
	}
	old := s.head
	s.head = old.next
	old.next = nil
	s.count--
	return old.val, true
}

// Clear unlinks every node one at a time starting from the head.
func (s *Stack) Clear() {
	released := 0
	curr := s.head
	s.head = nil
	for curr != nil {
		next := curr.next
		curr.next = nil
		curr = next
		released++
	}
	s.count = 0
	helper.Log.Debugf("intstack: released %d nodes", released)
}
