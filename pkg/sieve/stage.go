package sieve

import (
	"context"

	"github.com/google/uuid"
	"github.com/ib-77/sieve/pkg/sieve/queue"
)

type State int

const (
	Unassigned State = iota
	Active
	Terminated
)

func (s State) String() string {
	switch s {
	case Unassigned:
		return "unassigned"
	case Active:
		return "active"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// runEnv is shared by every stage of one run and is read-only after Run
// builds it.
type runEnv struct {
	ctx      context.Context
	runID    uuid.UUID
	registry *Registry
	handlers Handlers
	capacity int
}

// Stage is one filter in the chain.
//
// Only the goroutine executing run writes prime, state, out, next and the
// counters. Its predecessor touches nothing but the input queue, so creating
// the successor needs no locking. Other goroutines may read a Stage only
// after Registry.AwaitAll has returned.
type Stage struct {
	env      *runEnv
	id       uuid.UUID
	position int
	in       *queue.Bounded[Message]

	prime     int
	state     State
	out       *queue.Bounded[Message]
	next      *Stage
	forwarded int
	discarded int
	inDone    bool // end of stream taken from in
	outDone   bool // end of stream passed to out
}

func newStage(env *runEnv, position int) *Stage {
	return &Stage{
		env:      env,
		id:       uuid.New(),
		position: position,
		in:       queue.NewBounded[Message](env.capacity),
		state:    Unassigned,
	}
}

func (s *Stage) Info() StageInfo {
	return StageInfo{
		RunID:     s.env.runID,
		ID:        s.id,
		Position:  s.position,
		Prime:     s.prime,
		State:     s.state,
		Forwarded: s.forwarded,
		Discarded: s.discarded,
	}
}

func (s *Stage) run() {
	ctx := s.env.ctx
	defer func() {
		if r := recover(); r != nil {
			s.shutdown()
			panic(r)
		}
	}()

	if s.env.handlers.OnStageStart != nil {
		s.env.handlers.OnStageStart(ctx, s.Info())
	}

	for {
		m := s.in.Get()

		if m.IsEnd() {
			s.inDone = true
			if s.out != nil {
				s.out.Put(EndOfStream())
			}
			s.outDone = true
			s.state = Terminated
			if s.env.handlers.OnStageStop != nil {
				s.env.handlers.OnStageStop(ctx, s.Info())
			}
			return
		}

		switch s.state {
		case Unassigned:
			s.prime = m.Value()
			s.state = Active
			if s.env.handlers.OnPrime != nil {
				s.env.handlers.OnPrime(ctx, s.prime)
			}
		case Active:
			s.filter(m)
		}
	}
}

// shutdown finishes the termination protocol for a stage that panicked:
// the predecessor may be blocked on a full input queue and the successor is
// waiting for end of stream, so both ends are settled before the panic
// reaches the registry.
func (s *Stage) shutdown() {
	for !s.inDone {
		s.inDone = s.in.Get().IsEnd()
	}
	if s.out != nil && !s.outDone {
		s.out.Put(EndOfStream())
		s.outDone = true
	}
	s.state = Terminated
}

func (s *Stage) filter(m Message) {
	if m.Value()%s.prime == 0 {
		s.discarded++
		return
	}

	if s.next == nil {
		s.next = newStage(s.env, s.position+1)
		s.out = s.next.in
		s.env.registry.Register(s.next)
	}

	s.out.Put(m)
	s.forwarded++
}
