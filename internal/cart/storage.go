package cart

import (
	"context"
	"sync"
)

// Storage persists cart state between requests. Load returns (nil, nil)
// when no cart exists for the session.
type Storage interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStorage keeps carts in process memory. It backs tests and local
// runs without redis.
type MemoryStorage struct {
	mu    sync.Mutex
	carts map[string]State
}

// NewMemoryStorage builds an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: map[string]State{}}
}

func (m *MemoryStorage) Load(_ context.Context, sessionID string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.carts[sessionID]
	if !ok {
		return nil, nil
	}
	copied := state.Copy()
	return &copied, nil
}

func (m *MemoryStorage) Save(_ context.Context, sessionID string, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[sessionID] = state.Copy()
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}
