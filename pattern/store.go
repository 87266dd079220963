package pattern

import (
	"time"

	"github.com/omriShneor/timewise/cache"
	"github.com/omriShneor/timewise/schedule"
)

// DefaultTTL is how long a learned profile is served before it must be
// relearned from fresh history.
const DefaultTTL = 24 * time.Hour

// Store memoizes learned profiles per subject with a TTL. It is the engine's
// only shared mutable state and lives purely in process memory.
type Store struct {
	profiles *cache.Cache[string, Profile]
	sweeper  *cache.Sweeper
}

// NewStore creates a store; ttl <= 0 selects DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{profiles: cache.New[string, Profile](ttl)}
}

// Learn rebuilds the subject's profile from history and caches it.
func (s *Store) Learn(subjectID string, history []schedule.BusyEvent) Profile {
	profile := Learn(subjectID, history)
	s.profiles.Set(subjectID, profile)
	return profile
}

// Get returns the cached profile if it has not expired.
func (s *Store) Get(subjectID string) (Profile, bool) {
	return s.profiles.Get(subjectID)
}

// Invalidate drops one subject's cached profile.
func (s *Store) Invalidate(subjectID string) {
	s.profiles.Invalidate(subjectID)
}

// Clear drops every cached profile.
func (s *Store) Clear() {
	s.profiles.Clear()
}

// StartSweeper begins background eviction of expired profiles.
func (s *Store) StartSweeper(interval time.Duration) {
	if s.sweeper != nil {
		return
	}
	s.sweeper = cache.NewSweeper(s.profiles, "pattern cache", interval)
	s.sweeper.Start()
}

// StopSweeper shuts the background eviction down.
func (s *Store) StopSweeper() {
	if s.sweeper == nil {
		return
	}
	s.sweeper.Stop()
	s.sweeper = nil
}
