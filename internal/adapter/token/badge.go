package token

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Badge identity. Matches the wording shown to VIP depositors.
const (
	BadgeName   = "You are a VIP"
	BadgeSymbol = "VIP"
)

// RewardBadge is the VIP badge ledger. Badge ids are sequential from 0 and
// never reused. Implements ports.BadgeMinter.
type RewardBadge struct {
	mu sync.Mutex

	nextID uint64
	owners map[uint64]uuid.UUID
	counts map[uuid.UUID]int

	log zerolog.Logger
}

// NewRewardBadge creates an empty badge ledger.
func NewRewardBadge(log zerolog.Logger) *RewardBadge {
	return &RewardBadge{
		owners: make(map[uint64]uuid.UUID),
		counts: make(map[uuid.UUID]int),
		log:    log,
	}
}

// Mint issues the next badge to recipient and returns its id.
func (b *RewardBadge) Mint(_ context.Context, recipient uuid.UUID) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.owners[id] = recipient
	b.counts[recipient]++

	b.log.Debug().
		Uint64("badge_id", id).
		Str("recipient", recipient.String()).
		Msg("vip badge minted")
	return id, nil
}

// BalanceOf returns how many badges the account holds.
func (b *RewardBadge) BalanceOf(account uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[account]
}

// OwnerOf returns the holder of a badge id.
func (b *RewardBadge) OwnerOf(id uint64) (uuid.UUID, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	owner, ok := b.owners[id]
	return owner, ok
}

// TotalMinted returns how many badges have been issued.
func (b *RewardBadge) TotalMinted() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nextID
}
