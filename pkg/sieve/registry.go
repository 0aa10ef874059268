package sieve

import (
	"sync"

	"github.com/sourcegraph/conc"
)

// Registry tracks every stage goroutine of a run. Stages register their own
// successors, so the set grows while AwaitAll is already waiting.
type Registry struct {
	mu     sync.Mutex
	stages []*Stage
	wg     *conc.WaitGroup
}

func NewRegistry() *Registry {
	return &Registry{wg: conc.NewWaitGroup()}
}

// Register records s and starts it.
//
// A stage registers its successor while it is itself still counted by the
// wait group, so the count cannot reach zero between a stage finishing and
// the successor it spawned being added.
func (r *Registry) Register(s *Stage) {
	r.mu.Lock()
	r.stages = append(r.stages, s)
	r.mu.Unlock()

	r.wg.Go(s.run)
}

// AwaitAll blocks until every registered stage has returned. A stage that
// panics still drains its input and ends its successor, so the chain
// quiesces and the first panic is re-raised here.
func (r *Registry) AwaitAll() {
	r.wg.Wait()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stages)
}

// Stages returns snapshots in chain order. Call it only after AwaitAll.
func (r *Registry) Stages() []StageInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]StageInfo, len(r.stages))
	for i, s := range r.stages {
		infos[i] = s.Info()
	}
	return infos
}
