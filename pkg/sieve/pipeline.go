package sieve

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/sieve/pkg/sieve/queue"
)

// Report describes a finished run.
type Report struct {
	RunID   uuid.UUID
	Limit   int
	Primes  int
	Stages  []StageInfo
	Elapsed time.Duration
}

// Run pushes 2..limit and one end-of-stream message through a fresh chain
// and returns after every stage has terminated.
//
// For limit >= 2 every stage owns a prime, so len(Report.Stages) equals the
// number of primes up to limit. A limit below 2 sends only the end marker:
// no primes are reported, but the first stage still exists and shows up in
// Report.Stages with Prime 0.
func Run(ctx context.Context, limit int, handlers Handlers) Report {
	start := time.Now()

	env := &runEnv{
		ctx:      ctx,
		runID:    uuid.New(),
		registry: NewRegistry(),
		handlers: handlers,
		capacity: GetQueueCapacity(ctx, queue.DefaultCapacity),
	}

	first := newStage(env, 1)
	env.registry.Register(first)

	for c := 2; c <= limit; c++ {
		first.in.Put(Candidate(c))
	}
	first.in.Put(EndOfStream())

	env.registry.AwaitAll()

	stages := env.registry.Stages()
	found := 0
	for _, s := range stages {
		if s.Prime != 0 {
			found++
		}
	}

	return Report{
		RunID:   env.runID,
		Limit:   limit,
		Primes:  found,
		Stages:  stages,
		Elapsed: time.Since(start),
	}
}
