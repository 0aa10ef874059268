package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBounded_PanicsOnNonPositiveCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewBounded[int](0) })
	assert.Panics(t, func() { NewBounded[int](-3) })
}

func TestBounded_RoundTripPreservesOrder(t *testing.T) {
	t.Parallel()

	q := NewBounded[int](DefaultCapacity)
	for i := 0; i < 40; i++ {
		q.Put(i)
	}
	require.Equal(t, 40, q.Len())

	for i := 0; i < 40; i++ {
		assert.Equal(t, i, q.Get())
	}
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, DefaultCapacity, q.Cap())
}

func TestBounded_WrapsAround(t *testing.T) {
	t.Parallel()

	q := NewBounded[string](3)
	q.Put("a")
	q.Put("b")
	assert.Equal(t, "a", q.Get())
	q.Put("c")
	q.Put("d")
	assert.Equal(t, "b", q.Get())
	assert.Equal(t, "c", q.Get())
	assert.Equal(t, "d", q.Get())
}

func TestBounded_FillToCapacityDoesNotBlock(t *testing.T) {
	t.Parallel()

	q := NewBounded[int](DefaultCapacity)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < DefaultCapacity; i++ {
			q.Put(i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("putting %d values into an empty queue blocked", DefaultCapacity)
	}
	assert.Equal(t, DefaultCapacity, q.Len())
}

func TestBounded_PutBlocksWhileFull(t *testing.T) {
	t.Parallel()

	q := NewBounded[int](2)
	q.Put(1)
	q.Put(2)

	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Put(3)
	}()

	select {
	case <-done:
		t.Fatalf("put into a full queue returned without a get")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Equal(t, 1, q.Get())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("blocked put was not released by get")
	}
	assert.Equal(t, 2, q.Get())
	assert.Equal(t, 3, q.Get())
}

func TestBounded_GetBlocksWhileEmpty(t *testing.T) {
	t.Parallel()

	q := NewBounded[int](1)
	got := make(chan int, 1)
	go func() {
		got <- q.Get()
	}()

	select {
	case v := <-got:
		t.Fatalf("get on an empty queue returned %d", v)
	case <-time.After(50 * time.Millisecond):
	}

	q.Put(42)

	select {
	case v := <-got:
		assert.Equal(t, 42, v)
	case <-time.After(2 * time.Second):
		t.Fatalf("blocked get was not released by put")
	}
}

func TestBounded_ProducerConsumer(t *testing.T) {
	t.Parallel()

	const n = 20000
	q := NewBounded[int](7)
	received := make([]int, 0, n)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Put(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			received = append(received, q.Get())
		}
	}()
	wg.Wait()

	require.Len(t, received, n)
	for i, v := range received {
		if v != i {
			t.Fatalf("position %d: expected %d, got %d", i, i, v)
		}
	}
}
