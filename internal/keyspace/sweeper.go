package keyspace

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper drives the active half of expiration: on a fixed period it
// takes the keyspace lock once, scans every entry in the expiry table,
// and removes anything elapsed. Lazy expiration (checked on every
// access, see liveLocked) already guarantees no caller ever observes
// an expired key; the sweeper exists purely to reclaim memory for keys
// nobody is reading.
type Sweeper struct {
	keyspace *Keyspace
	interval time.Duration
	logger   *zap.Logger

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewSweeper constructs a Sweeper for ks that wakes every interval.
func NewSweeper(ks *Keyspace, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		keyspace: ks,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks, sweeping on every tick, until Stop is called. Intended to
// be launched in its own goroutine.
func (s *Sweeper) Run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.keyspace.sweepExpired(); removed > 0 {
				s.logger.Debug("active expiration removed keys", zap.Int("removed", removed))
			}
		case <-s.stop:
			return
		}
	}
}

// Stop signals the sweeper to exit and waits for it to do so.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}
