package sieve

import "context"

// Collect returns the primes up to limit once the pipeline has quiesced.
func Collect(ctx context.Context, limit int) []int {
	primes := make([]int, 0)
	Run(ctx, limit, Handlers{
		OnPrime: func(_ context.Context, prime int) {
			primes = append(primes, prime)
		},
	})
	return primes
}

// Stream returns primes as they are discovered. The channel is closed after
// every stage has terminated. The caller must drain it: an abandoned channel
// blocks the stage trying to report and, through the bounded queues, the
// whole chain.
func Stream(ctx context.Context, limit int) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)
		Run(ctx, limit, Handlers{
			OnPrime: func(_ context.Context, prime int) {
				out <- prime
			},
		})
	}()

	return out
}
