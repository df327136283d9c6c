package game

// Deque is a growable ring buffer with O(1) front removal and back insertion
type Deque[T any] struct {
	buf   []T
	head  int // index of the front element
	count int
}

// NewDeque creates a deque with room for capacity elements before growing
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// Len returns the number of stored elements
func (d *Deque[T]) Len() int {
	return d.count
}

// PushBack appends v after the last element
func (d *Deque[T]) PushBack(v T) {
	if d.count == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.count)%len(d.buf)] = v
	d.count++
}

// PopFront removes and returns the first element
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return v, true
}

// Front returns the first element without removing it
func (d *Deque[T]) Front() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the last element without removing it
func (d *Deque[T]) Back() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.buf[(d.head+d.count-1)%len(d.buf)], true
}

// At returns the i-th element counted from the front
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.count {
		panic("deque: index out of range")
	}
	return d.buf[(d.head+i)%len(d.buf)]
}

// ForEach visits elements front to back
func (d *Deque[T]) ForEach(fn func(T)) {
	for i := 0; i < d.count; i++ {
		fn(d.buf[(d.head+i)%len(d.buf)])
	}
}

// Slice copies the elements front to back into a new slice
func (d *Deque[T]) Slice() []T {
	out := make([]T, 0, d.count)
	d.ForEach(func(v T) {
		out = append(out, v)
	})
	return out
}

// grow doubles capacity and unwraps the ring so head is at index 0
func (d *Deque[T]) grow() {
	next := make([]T, len(d.buf)*2)
	n := copy(next, d.buf[d.head:])
	copy(next[n:], d.buf[:d.head])
	d.buf = next
	d.head = 0
}
