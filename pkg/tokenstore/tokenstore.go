// Package tokenstore persists the bearer token issued by POST /auth/token so
// that later client invocations can present it.
package tokenstore

import (
	"context"
	"sync"
)

// TokenKey is the name the token is stored under in every backend.
const TokenKey = "user-token"

// Store reads and writes the current bearer token. Implementations satisfy
// devmarks.TokenProvider through AccessToken.
type Store interface {
	AccessToken(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) AccessToken(context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	return s.SetToken(context.Background(), "")
}
