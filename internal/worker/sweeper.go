package worker

import (
	"context"
	"time"

	"github.com/ventara/stayhub/pkg/logging"
)

// Expirer is the slice of the booking service the sweep needs.
type Expirer interface {
	ExpirePendingReservations(ctx context.Context) (int, error)
}

// Sweeper periodically expires stale pending reservations. It shares
// the store with foreground requests; each record is transitioned in
// its own short transaction, so the sweep never holds long-lived
// locks.
type Sweeper struct {
	expirer  Expirer
	interval time.Duration
	logger   *logging.Logger
}

const defaultSweepInterval = 10 * time.Minute

func NewSweeper(expirer Expirer, interval time.Duration, logger *logging.Logger) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Sweeper{
		expirer:  expirer,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until the context is cancelled, sweeping on every tick.
// Sweep failures are logged and the next tick retries.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.expirer.ExpirePendingReservations(ctx)
			if err != nil {
				s.logger.Error("expiration sweep", "error", err)
				continue
			}
			if n > 0 {
				s.logger.Info("expired stale reservations", "count", n)
			}
		}
	}
}
