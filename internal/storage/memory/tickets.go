package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/demo-storefront/internal/models"
)

// TicketStore — журнал тикетов поддержки. Журнал только пополняется,
// порядок записей совпадает с порядком создания.
type TicketStore struct {
	mu      sync.RWMutex
	tickets []models.SupportTicket
}

// NewTicketStore создаёт пустой журнал тикетов.
func NewTicketStore() *TicketStore {
	return &TicketStore{}
}

// AppendTicket дописывает тикет в конец журнала.
func (s *TicketStore) AppendTicket(ctx context.Context, ticket models.SupportTicket) error {
	const op = "storage.memory.AppendTicket"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = append(s.tickets, ticket)
	return nil
}

// ListTicketsByEmail возвращает не больше limit последних тикетов
// владельца в порядке добавления: хвост журнала без пересортировки.
func (s *TicketStore) ListTicketsByEmail(ctx context.Context, email string, limit int) ([]models.SupportTicket, error) {
	const op = "storage.memory.ListTicketsByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	owned := make([]models.SupportTicket, 0, limit)
	for _, ticket := range s.tickets {
		if ticket.Email == email {
			owned = append(owned, ticket)
		}
	}
	if limit > 0 && len(owned) > limit {
		owned = owned[len(owned)-limit:]
	}
	return owned, nil
}
