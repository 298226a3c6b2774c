package stack

import "iter"

// cursor walks the chain one node at a time. All borrowing iterators share it.
type cursor[T any] struct {
	next *node[T]
}

func (c *cursor[T]) advance() *node[T] {
	n := c.next
	if n != nil {
		c.next = n.next
	}
	return n
}

// IntoIter pops each element as it is yielded. Stopping early leaves the rest in the list.
func (l *List[T]) IntoIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := l.Pop()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := cursor[T]{next: l.head}
		for n := c.advance(); n != nil; n = c.advance() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// IterMut yields a pointer to every element once. Writes through it update the list in place.
func (l *List[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		c := cursor[T]{next: l.head}
		for n := c.advance(); n != nil; n = c.advance() {
			if !yield(&n.val) {
				return
			}
		}
	}
}
