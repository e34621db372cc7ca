package jobs

import (
	"log"
	"sync"
	"time"
)

// Sweeper is anything that can drop expired entries and report how many went
type Sweeper interface {
	Sweep() int
}

// RateLimitSweeper periodically evicts expired rate-limit windows
type RateLimitSweeper struct {
	limiter  Sweeper
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewRateLimitSweeper creates a new sweeper job
func NewRateLimitSweeper(limiter Sweeper, interval time.Duration) *RateLimitSweeper {
	return &RateLimitSweeper{
		limiter:  limiter,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the sweep loop and blocks until Stop is called
func (s *RateLimitSweeper) Start() {
	log.Printf("[RateLimitSweeper] Starting sweep job (interval: %v)", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopChan:
			log.Println("[RateLimitSweeper] Stopping sweep job")
			return
		}
	}
}

// Stop stops the sweep loop
func (s *RateLimitSweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

func (s *RateLimitSweeper) sweep() {
	if removed := s.limiter.Sweep(); removed > 0 {
		log.Printf("[RateLimitSweeper] Removed %d expired windows", removed)
	}
}
