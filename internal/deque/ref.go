package deque

import platformerror "linked-lists/internal/platform/error"

// Ref is a read-only view of one deque element. Release it before mutating the node.
type Ref[T any] struct {
	deque    *Deque[T]
	idx      index
	released bool
}

func (d *Deque[T]) newRef(i index) *Ref[T] {
	d.borrow(i)
	return &Ref[T]{deque: d, idx: i}
}

func (r *Ref[T]) Value() T {
	r.live()
	return r.deque.arena.at(r.idx).elem
}

func (r *Ref[T]) Release() {
	r.live()
	r.released = true
	r.deque.unborrow(r.idx)
}

func (r *Ref[T]) live() {
	if r.released {
		r.deque.fault(platformerror.ReleasedBorrowErrorCode, "view of node %d used after release", r.idx)
	}
}

// RefMut is an exclusive view of one deque element. No other view of the node may exist while it is held.
type RefMut[T any] struct {
	deque    *Deque[T]
	idx      index
	released bool
}

func (d *Deque[T]) newRefMut(i index) *RefMut[T] {
	d.borrowMut(i)
	return &RefMut[T]{deque: d, idx: i}
}

// Value returns a pointer to the element, valid until Release. The slot is recycled once the
// element is popped, so a pointer kept past Release may alias a later element without any fault.
func (r *RefMut[T]) Value() *T {
	r.live()
	return &r.deque.arena.at(r.idx).elem
}

// Release ends the exclusive view. Pointers obtained from Value must not be used afterwards.
func (r *RefMut[T]) Release() {
	r.live()
	r.released = true
	r.deque.arena.at(r.idx).borrow = 0
}

func (r *RefMut[T]) live() {
	if r.released {
		r.deque.fault(platformerror.ReleasedBorrowErrorCode, "exclusive view of node %d used after release", r.idx)
	}
}
