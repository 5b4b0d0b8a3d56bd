package conversation

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/oklog/ulid/v2"
)

// Store is the transcript storage abstraction injected into the chat
// service. Implementations decide retention; the service never assumes a
// transcript survives between calls.
type Store interface {
	Get(id string) (*Conversation, bool)
	GetOrCreate(id string) *Conversation
	Append(id string, role Role, content string)
	Delete(id string) bool
}

// lruStore bounds transcript storage with an LRU of maxEntries and a TTL,
// so idle conversations expire instead of accumulating for the life of the
// process. Eviction is an explicit, tunable policy here.
type lruStore struct {
	mu      sync.Mutex
	cache   *expirable.LRU[string, *Conversation]
	entropy *rand.Rand
}

// NewStore creates a bounded conversation store. maxEntries caps how many
// conversations are retained; ttl expires idle ones.
func NewStore(maxEntries int, ttl time.Duration) Store {
	return &lruStore{
		cache:   expirable.NewLRU[string, *Conversation](maxEntries, nil, ttl),
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *lruStore) Get(id string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(id)
}

func (s *lruStore) GetOrCreate(id string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(id)
}

func (s *lruStore) Append(id string, role Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.getOrCreateLocked(id)
	now := time.Now()
	conv.Messages = append(conv.Messages, Message{
		ID:        s.newMessageID(now),
		Role:      role,
		Content:   content,
		CreatedAt: now,
	})
	conv.UpdatedAt = now
	// Re-add to refresh the TTL clock for active conversations.
	s.cache.Add(id, conv)
}

func (s *lruStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(id)
}

func (s *lruStore) getOrCreateLocked(id string) *Conversation {
	if conv, ok := s.cache.Get(id); ok {
		return conv
	}

	now := time.Now()
	conv := &Conversation{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Messages: []Message{{
			ID:        s.newMessageID(now),
			Role:      RoleSystem,
			Content:   SystemGreeting,
			CreatedAt: now,
		}},
	}
	s.cache.Add(id, conv)
	return conv
}

func (s *lruStore) newMessageID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}
