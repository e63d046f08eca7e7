// Package memory реализует хранилища демо-магазина в памяти процесса:
// справочник пользователей, карту сессий и журнал тикетов поддержки.
// Данные живут только до перезапуска. Каждое хранилище закрыто
// собственным мьютексом: HTTP-сервер обслуживает запросы параллельно,
// а записи в общие карты и срезы не должны перемешиваться.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/demo-storefront/internal/models"
)

// Ошибки хранилищ, по которым сервисы различают исходы операций.
var (
	// ErrUserExists — пользователь с такой почтой уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound — пользователь с такой почтой не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound — токен не соответствует ни одной сессии.
	ErrSessionNotFound = errors.New("session not found")
)

// UserStore хранит пользователей по почте. Почта сравнивается
// точно, с учётом регистра.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserStore создаёт пустой справочник пользователей.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

// SaveUser сохраняет нового пользователя. Возвращает ErrUserExists,
// если почта уже занята; запись при этом не перезаписывается.
func (s *UserStore) SaveUser(ctx context.Context, user models.User) error {
	const op = "storage.memory.SaveUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return fmt.Errorf("%s: %w", op, ErrUserExists)
	}
	s.users[user.Email] = user
	return nil
}

// GetUserByEmail возвращает пользователя по почте или ErrUserNotFound.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.memory.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return &user, nil
}
