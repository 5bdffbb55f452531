package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bank-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *inMemoryUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// --- In-Memory Event Journal ---

type inMemoryEventJournal struct {
	mu     sync.RWMutex
	events []domain.Event
}

func newInMemoryEventJournal() *inMemoryEventJournal {
	return &inMemoryEventJournal{}
}

func (j *inMemoryEventJournal) Append(ctx context.Context, event *domain.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, *event)
	return nil
}

func (j *inMemoryEventJournal) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.Event, int64, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var matched []domain.Event
	for _, e := range j.events {
		if e.AccountID == accountID {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, k int) bool {
		return matched[i].Sequence > matched[k].Sequence
	})

	total := int64(len(matched))
	offset := (page - 1) * pageSize
	if offset >= len(matched) {
		return []domain.Event{}, total, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (j *inMemoryEventJournal) count() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.events)
}
