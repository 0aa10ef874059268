package queue

import "sync"

// DefaultCapacity is the inter-stage buffer size used by the pipeline.
const DefaultCapacity = 100

// Bounded is a circular buffer guarded by one mutex and two condition
// variables. The pipeline uses each instance with exactly one producer and
// one consumer.
type Bounded[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	buf      []T
	head     int
	tail     int
	count    int
}

// NewBounded creates a queue holding at most capacity values.
// It panics if capacity is less than 1.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		panic("queue: capacity must be at least 1")
	}
	q := &Bounded[T]{buf: make([]T, capacity)}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// Put appends v at the tail, blocking while the queue is full.
func (q *Bounded[T]) Put(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == len(q.buf) {
		q.notFull.Wait()
	}

	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.count++

	q.notEmpty.Signal()
}

// Get removes and returns the head value, blocking while the queue is empty.
func (q *Bounded[T]) Get() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 {
		q.notEmpty.Wait()
	}

	var zero T
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	q.notFull.Signal()
	return v
}

// Len returns the number of buffered values.
func (q *Bounded[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the fixed capacity.
func (q *Bounded[T]) Cap() int {
	return len(q.buf)
}
