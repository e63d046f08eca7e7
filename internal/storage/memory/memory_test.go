package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/demo-storefront/internal/models"
)

func TestUserStore(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	require.NoError(t, store.SaveUser(ctx, models.User{Email: "qa@x.com", Password: "pw1"}))
	assert.ErrorIs(t, store.SaveUser(ctx, models.User{Email: "qa@x.com", Password: "pw2"}), ErrUserExists)

	// Конфликт не перезаписывает существующую запись.
	user, err := store.GetUserByEmail(ctx, "qa@x.com")
	require.NoError(t, err)
	assert.Equal(t, "pw1", user.Password)

	_, err = store.GetUserByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, "token-1", "qa@x.com"))
	email, err := store.GetEmailByToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "qa@x.com", email)

	_, err = store.GetEmailByToken(ctx, "unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.GetEmailByToken(ctx, "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTicketStore_TailLimit(t *testing.T) {
	store := NewTicketStore()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, store.AppendTicket(ctx, models.SupportTicket{
			ID:    fmt.Sprintf("tkt_%d", i),
			Email: "qa@x.com",
		}))
	}
	require.NoError(t, store.AppendTicket(ctx, models.SupportTicket{ID: "tkt_x", Email: "other@x.com"}))

	tickets, err := store.ListTicketsByEmail(ctx, "qa@x.com", 10)
	require.NoError(t, err)
	require.Len(t, tickets, 10)
	assert.Equal(t, "tkt_2", tickets[0].ID)
	assert.Equal(t, "tkt_11", tickets[9].ID)

	empty, err := store.ListTicketsByEmail(ctx, "nobody@x.com", 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestStores_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, NewUserStore().SaveUser(ctx, models.User{Email: "qa@x.com"}))
	assert.Error(t, NewSessionStore().SaveSession(ctx, "token", "qa@x.com"))
	assert.Error(t, NewTicketStore().AppendTicket(ctx, models.SupportTicket{}))
}

func TestStores_ConcurrentAccess(t *testing.T) {
	users := NewUserStore()
	sessions := NewSessionStore()
	tickets := NewTicketStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("user-%d@x.com", i)
			_ = users.SaveUser(ctx, models.User{Email: email})
			_ = sessions.SaveSession(ctx, fmt.Sprintf("token-%d", i), email)
			_ = tickets.AppendTicket(ctx, models.SupportTicket{ID: fmt.Sprintf("tkt_%d", i), Email: email})
			_, _ = users.GetUserByEmail(ctx, email)
			_, _ = sessions.GetEmailByToken(ctx, fmt.Sprintf("token-%d", i))
			_, _ = tickets.ListTicketsByEmail(ctx, email, 10)
		}(i)
	}
	wg.Wait()

	all, err := tickets.ListTicketsByEmail(ctx, "user-1@x.com", 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
