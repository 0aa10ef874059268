package sieve

import "context"

type OptionKey string

const QueueOptionKey OptionKey = "queue_options"

type QueueOptions struct {
	Capacity int
}

func WithQueueCapacity(ctx context.Context, capacity int) context.Context {
	return context.WithValue(ctx, QueueOptionKey, QueueOptions{Capacity: capacity})
}

// GetQueueCapacity returns the capacity stored in ctx, or defaultCapacity when
// none is set or the stored value is not positive.
func GetQueueCapacity(ctx context.Context, defaultCapacity int) int {
	options, ok := ctx.Value(QueueOptionKey).(QueueOptions)
	if ok && options.Capacity > 0 {
		return options.Capacity
	}
	return defaultCapacity
}
