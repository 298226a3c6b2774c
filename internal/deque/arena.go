package deque

type index int

const nilIndex index = -1

type slot[T any] struct {
	elem T
	next index
	prev index
	// borrow counts outstanding views: n > 0 shared, -1 exclusive.
	borrow int
}

// arena owns every node of a deque. Slots are heap-allocated once so element
// pointers stay valid while the index table grows; freed slots are recycled first.
type arena[T any] struct {
	slots []*slot[T]
	free  []index
}

func (a *arena[T]) at(i index) *slot[T] {
	return a.slots[i]
}

func (a *arena[T]) alloc(val T) index {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		*a.slots[i] = slot[T]{elem: val, next: nilIndex, prev: nilIndex}
		return i
	}
	a.slots = append(a.slots, &slot[T]{elem: val, next: nilIndex, prev: nilIndex})
	return index(len(a.slots) - 1)
}

// release hands back the element of slot i and puts the slot on the free list.
func (a *arena[T]) release(i index) T {
	s := a.at(i)
	val := s.elem
	*s = slot[T]{next: nilIndex, prev: nilIndex}
	a.free = append(a.free, i)
	return val
}

func (a *arena[T]) live() int {
	return len(a.slots) - len(a.free)
}

func (a *arena[T]) sweep() {
	a.slots = nil
	a.free = nil
}
