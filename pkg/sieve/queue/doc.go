// Package queue contains the fixed-capacity blocking FIFO that connects two
// neighbouring filter stages. Put blocks while the buffer is full and Get
// blocks while it is empty; there is no close, peek or non-blocking variant.
package queue
