package postgres

import (
	"context"
	"fmt"
	"math/big"

	"bank-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// EventJournalRepo implements ports.EventJournal. Amounts exceed int64 at
// the 18-decimal scale, so they are stored as decimal strings.
type EventJournalRepo struct {
	pool Pool
}

// NewEventJournalRepo creates a new EventJournalRepo.
func NewEventJournalRepo(pool Pool) *EventJournalRepo {
	return &EventJournalRepo{pool: pool}
}

// Append inserts one event.
func (r *EventJournalRepo) Append(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO bank_events (id, sequence, account_id, type, amount, accrued, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var accrued *string
	if e.Accrued != nil {
		s := e.Accrued.String()
		accrued = &s
	}
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Sequence, e.AccountID, e.Type, e.Amount.String(), accrued, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank event: %w", err)
	}
	return nil
}

// ListByAccount returns one page of an account's events, newest first, plus
// the total count.
func (r *EventJournalRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.Event, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM bank_events WHERE account_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, accountID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bank events: %w", err)
	}

	query := `SELECT id, sequence, account_id, type, amount, accrued, created_at
		FROM bank_events WHERE account_id = $1
		ORDER BY sequence DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list bank events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0, pageSize)
	for rows.Next() {
		var (
			e       domain.Event
			amount  string
			accrued *string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &e.AccountID, &e.Type, &amount, &accrued, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan bank event: %w", err)
		}
		e.Amount, err = parseAmount(amount)
		if err != nil {
			return nil, 0, err
		}
		if accrued != nil {
			e.Accrued, err = parseAmount(*accrued)
			if err != nil {
				return nil, 0, err
			}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bank events: %w", err)
	}
	return events, total, nil
}

func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("malformed stored amount %q", s)
	}
	return v, nil
}
