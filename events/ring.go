package events

func newRing[T any](size int) *ring[T] {
	return &ring[T]{data: make([]T, size)}
}

// ring keeps the last cap() inserted values.
type ring[T any] struct {
	data  []T
	next  int
	count int
}

func (r *ring[T]) cap() int {
	return len(r.data)
}

func (r *ring[T]) insert(val T) {
	r.data[r.next] = val
	r.next = (r.next + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// iterate visits values from the oldest to the newest until f returns false.
func (r *ring[T]) iterate(f func(val T) bool) {
	start := (r.next - r.count + len(r.data)) % len(r.data)
	for i := 0; i < r.count; i++ {
		if !f(r.data[(start+i)%len(r.data)]) {
			return
		}
	}
}
