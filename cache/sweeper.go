package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const stopWaitTimeout = 5 * time.Second

// sweepable is the slice of Cache the sweeper needs.
type sweepable interface {
	Sweep() int
}

// Sweeper periodically evicts expired entries from a cache.
type Sweeper struct {
	target   sweepable
	name     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweeper creates a sweeper for target. The name only labels status lines.
func NewSweeper(target sweepable, name string, interval time.Duration) *Sweeper {
	ctx, cancel := context.WithCancel(context.Background())

	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &Sweeper{
		target:   target,
		name:     name,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the periodic sweep loop.
func (s *Sweeper) Start() {
	fmt.Printf("%s sweeper: starting with %v interval\n", s.name, s.interval)
	s.wg.Add(1)
	go s.sweepLoop()
}

// Stop gracefully shuts down the sweeper.
func (s *Sweeper) Stop() {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopWaitTimeout):
		fmt.Printf("%s sweeper: timed out waiting for shutdown\n", s.name)
	}
}

func (s *Sweeper) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if removed := s.target.Sweep(); removed > 0 {
				fmt.Printf("%s sweeper: evicted %d expired entries\n", s.name, removed)
			}
		}
	}
}
