package ports

import (
	"context"

	"bank-ledger/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// UserRepository is the persisted account directory (credentials + roles).
// The ledger state machine itself is in-process; only identity is durable.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// EventJournal is the append-only record of bank events. Appends are
// fire-and-forget from the facade; reads serve the per-account history
// endpoint.
type EventJournal interface {
	Append(ctx context.Context, event *domain.Event) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.Event, int64, error)
}
