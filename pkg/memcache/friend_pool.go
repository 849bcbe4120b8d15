// pkg/memcache/friend_pool.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// FriendPoolStore caches a user's friend candidate pool so roster validation
// does not hit the friend graph on every add. Entries expire after their TTL;
// the friend graph is the source of truth.
type FriendPoolStore interface {
	Set(userID uuid.UUID, pool []uuid.UUID, ttl time.Duration)

	// Get returns the cached pool for userID if not expired.
	Get(userID uuid.UUID) ([]uuid.UUID, bool)
}

type poolEntry struct {
	pool      []uuid.UUID
	expiresAt time.Time
}

type FriendPools struct {
	mu   sync.RWMutex
	data map[uuid.UUID]poolEntry
}

func NewFriendPools() *FriendPools {
	return &FriendPools{
		data: make(map[uuid.UUID]poolEntry),
	}
}

func (s *FriendPools) Set(userID uuid.UUID, pool []uuid.UUID, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = poolEntry{
		pool:      pool,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *FriendPools) Get(userID uuid.UUID) ([]uuid.UUID, bool) {
	s.mu.RLock()
	e, ok := s.data[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, userID) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.pool, true
}
