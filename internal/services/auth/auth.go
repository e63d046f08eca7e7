// Package auth содержит бизнес-логику регистрации, входа и проверки
// сессий. Пароли сравниваются как строки, без хэширования: сервис
// демонстрационный. Ошибка входа одинакова для неизвестной почты и
// неверного пароля, чтобы по ответу нельзя было перебирать аккаунты.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/demo-storefront/internal/models"
	"github.com/magabrotheeeer/demo-storefront/internal/storage/memory"
)

// Ошибки сервиса, по которым обработчики выбирают HTTP-статус.
var (
	// ErrMissingFields — не заполнены обязательные поля регистрации.
	ErrMissingFields = errors.New("name, email, and password are required")
	// ErrUserExists — почта уже занята другим пользователем.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials — неизвестная почта или неверный пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthRequired — пустой или неизвестный токен сессии.
	ErrAuthRequired = errors.New("auth required")
)

// DefaultRole присваивается пользователю, не указавшему роль.
const DefaultRole = "member"

// UserRepository определяет методы справочника пользователей.
type UserRepository interface {
	// SaveUser сохраняет нового пользователя, не перезаписывая занятую почту.
	SaveUser(ctx context.Context, user models.User) error
	// GetUserByEmail возвращает пользователя по почте.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionRepository определяет методы карты сессий.
type SessionRepository interface {
	// SaveSession привязывает токен к почте.
	SaveSession(ctx context.Context, token, email string) error
	// GetEmailByToken возвращает почту владельца токена.
	GetEmailByToken(ctx context.Context, token string) (string, error)
}

// Service реализует регистрацию, вход и проверку сессий поверх
// справочника пользователей и карты сессий.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, sessions SessionRepository, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

// Register регистрирует нового пользователя. Пустые имя, почта или
// пароль дают ErrMissingFields, занятая почта — ErrUserExists.
// Роль по умолчанию — member.
func (s *Service) Register(ctx context.Context, name, email, password, role string) error {
	if name == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if role == "" {
		role = DefaultRole
	}
	user := models.User{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := s.users.SaveUser(ctx, user); err != nil {
		if errors.Is(err, memory.ErrUserExists) {
			return ErrUserExists
		}
		return err
	}
	s.log.Info("registered new user", slog.String("email", email), slog.String("role", role))
	return nil
}

// Login проверяет учётные данные и выдаёт новый токен сессии.
// Старые токены того же пользователя остаются действительными.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.PublicUser, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.Password != password {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.SaveSession(ctx, token, email); err != nil {
		return "", nil, err
	}

	s.log.Info("user logged in", slog.String("email", email))
	public := user.Public()
	return token, &public, nil
}

// Resolve возвращает почту владельца токена. Пустой, отсутствующий
// или неизвестный токен даёт ErrAuthRequired. Сессии не истекают:
// выданный токен действителен до перезапуска процесса.
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrAuthRequired
	}
	email, err := s.sessions.GetEmailByToken(ctx, token)
	if err != nil {
		if errors.Is(err, memory.ErrSessionNotFound) {
			return "", ErrAuthRequired
		}
		return "", err
	}
	return email, nil
}

// SeedDemoUser добавляет демонстрационный аккаунт, чтобы по свежему
// процессу можно было сразу войти. Ошибка занятой почты игнорируется.
func (s *Service) SeedDemoUser(ctx context.Context) {
	demo := models.User{
		Name:      "Demo User",
		Email:     "demo@example.com",
		Password:  "DemoPass123!",
		Role:      "manager",
		CreatedAt: time.Now(),
	}
	if err := s.users.SaveUser(ctx, demo); err != nil && !errors.Is(err, memory.ErrUserExists) {
		s.log.Warn("failed to seed demo user", slog.Any("err", err))
	}
}
