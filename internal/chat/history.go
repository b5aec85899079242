package chat

import (
	"context"
	"sync"
	"time"
)

// maxHistoryTurns caps per-conversation history so long-lived sessions do
// not grow without bound.
const maxHistoryTurns = 50

// Turn is one exchange in a conversation.
type Turn struct {
	Query      string    `json:"query"`
	Response   string    `json:"response"`
	IntentType string    `json:"intentType"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Store persists conversation history.
type Store interface {
	Append(ctx context.Context, conversationID string, turn Turn) error
	Recent(ctx context.Context, conversationID string, limit int) ([]Turn, error)
	Clear(ctx context.Context, conversationID string) error
}

// MemoryStore keeps conversation history in process memory.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string][]Turn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{conversations: make(map[string][]Turn)}
}

func (s *MemoryStore) Append(_ context.Context, conversationID string, turn Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.conversations[conversationID], turn)
	if len(turns) > maxHistoryTurns {
		turns = turns[len(turns)-maxHistoryTurns:]
	}
	s.conversations[conversationID] = turns
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, conversationID string, limit int) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.conversations[conversationID]
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, conversationID)
	return nil
}
