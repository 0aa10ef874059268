package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/ib-77/sieve/pkg/sieve"
)

// Handlers logs stage lifecycle and discovered primes at debug level.
func Handlers(l *Logger) sieve.Handlers {
	return sieve.Handlers{
		OnPrime: func(_ context.Context, prime int) {
			l.Debug("prime found", zap.Int("prime", prime))
		},
		OnStageStart: func(_ context.Context, info sieve.StageInfo) {
			l.Debug("stage started", stageFields(info)...)
		},
		OnStageStop: func(_ context.Context, info sieve.StageInfo) {
			l.Debug("stage terminated",
				append(stageFields(info),
					zap.Int("forwarded", info.Forwarded),
					zap.Int("discarded", info.Discarded))...)
		},
	}
}

// Report logs a run summary at info level.
func Report(l *Logger, r sieve.Report) {
	l.Info("run complete",
		zap.String("run_id", r.RunID.String()),
		zap.Int("limit", r.Limit),
		zap.Int("primes", r.Primes),
		zap.Int("stages", len(r.Stages)),
		zap.Duration("elapsed", r.Elapsed),
	)
}

func stageFields(info sieve.StageInfo) []zap.Field {
	return []zap.Field{
		zap.String("run_id", info.RunID.String()),
		zap.String("stage_id", info.ID.String()),
		zap.Int("position", info.Position),
		zap.Int("prime", info.Prime),
		zap.Stringer("state", info.State),
	}
}
