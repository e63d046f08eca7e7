package memory

import (
	"context"
	"fmt"
	"sync"
)

// SessionStore отображает выданные токены на почту пользователя.
// Токен живёт до перезапуска процесса: сессии не истекают и не
// отзываются, повторный вход выдаёт новый токен, не трогая старые.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewSessionStore создаёт пустую карту сессий.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]string)}
}

// SaveSession привязывает токен к почте пользователя.
func (s *SessionStore) SaveSession(ctx context.Context, token, email string) error {
	const op = "storage.memory.SaveSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = email
	return nil
}

// GetEmailByToken возвращает почту владельца токена или
// ErrSessionNotFound для пустого либо неизвестного токена.
func (s *SessionStore) GetEmailByToken(ctx context.Context, token string) (string, error) {
	const op = "storage.memory.GetEmailByToken"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.sessions[token]
	if !ok || token == "" {
		return "", fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	return email, nil
}
