// Package support реализует журнал обращений в поддержку: создание
// тикета и выдачу последних обращений владельца. Обе операции требуют
// действительной сессии.
package support

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/demo-storefront/internal/models"
)

// ErrMissingFields — не заполнены тема или текст обращения.
var ErrMissingFields = errors.New("topic and detail are required")

// ownerListLimit — сколько последних тикетов владельца возвращается.
const ownerListLimit = 10

// SessionResolver проверяет токен сессии и возвращает почту владельца.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// TicketRepository определяет методы журнала тикетов.
type TicketRepository interface {
	// AppendTicket дописывает тикет в конец журнала.
	AppendTicket(ctx context.Context, ticket models.SupportTicket) error
	// ListTicketsByEmail возвращает последние тикеты владельца в порядке добавления.
	ListTicketsByEmail(ctx context.Context, email string, limit int) ([]models.SupportTicket, error)
}

// Service реализует операции поддержки поверх проверки сессий и журнала.
type Service struct {
	sessions SessionResolver
	tickets  TicketRepository
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(sessions SessionResolver, tickets TicketRepository, log *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		tickets:  tickets,
		log:      log,
	}
}

// Create заводит тикет от имени владельца сессии и возвращает его.
// Владелец тикета — почта, на которую указывает токен в момент
// создания.
func (s *Service) Create(ctx context.Context, token, topic, detail string) (*models.SupportTicket, error) {
	email, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if topic == "" || detail == "" {
		return nil, ErrMissingFields
	}

	ticket := models.SupportTicket{
		ID:        "tkt_" + uuid.NewString(),
		Email:     email,
		Topic:     topic,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := s.tickets.AppendTicket(ctx, ticket); err != nil {
		return nil, err
	}

	s.log.Info("created support ticket",
		slog.String("ticket_id", ticket.ID),
		slog.String("email", email))
	return &ticket, nil
}

// ListByOwner возвращает до десяти последних тикетов владельца сессии
// в порядке добавления.
func (s *Service) ListByOwner(ctx context.Context, token string) ([]models.SupportTicket, error) {
	email, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.tickets.ListTicketsByEmail(ctx, email, ownerListLimit)
}
