package sieve

import (
	"context"

	"github.com/google/uuid"
)

// StageInfo is a snapshot of one stage.
type StageInfo struct {
	RunID     uuid.UUID
	ID        uuid.UUID
	Position  int // 1-based place in the chain
	Prime     int // 0 while unassigned
	State     State
	Forwarded int
	Discarded int
}

// Handlers are optional callbacks invoked from stage goroutines.
//
// OnPrime calls never overlap and arrive in increasing order of prime: a
// stage reports its prime before it forwards anything, and its successor
// cannot report until it has received a forwarded value. OnStageStart and
// OnStageStop run concurrently across stages and must be safe for that.
type Handlers struct {
	OnPrime      func(ctx context.Context, prime int)
	OnStageStart func(ctx context.Context, info StageInfo)
	OnStageStop  func(ctx context.Context, info StageInfo)
}

// Compose returns Handlers that call each of hs in order.
func Compose(hs ...Handlers) Handlers {
	return Handlers{
		OnPrime: func(ctx context.Context, prime int) {
			for _, h := range hs {
				if h.OnPrime != nil {
					h.OnPrime(ctx, prime)
				}
			}
		},
		OnStageStart: func(ctx context.Context, info StageInfo) {
			for _, h := range hs {
				if h.OnStageStart != nil {
					h.OnStageStart(ctx, info)
				}
			}
		},
		OnStageStop: func(ctx context.Context, info StageInfo) {
			for _, h := range hs {
				if h.OnStageStop != nil {
					h.OnStageStop(ctx, info)
				}
			}
		},
	}
}
