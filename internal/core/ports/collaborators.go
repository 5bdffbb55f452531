package ports

import (
	"context"
	"math/big"

	"github.com/google/uuid"
)

//go:generate mockgen -source=collaborators.go -destination=mocks/collaborators.go -package=mocks

// RewardMinter mints the companion reward token. amount is in native
// 18-decimal precision; the token converts it to its own units at its swap
// ratio and returns how much it actually credited. The token enforces its
// own supply cap; a violation surfaces as an error and is never absorbed.
type RewardMinter interface {
	Mint(ctx context.Context, recipient uuid.UUID, amount *big.Int) (*big.Int, error)
}

// BadgeMinter mints the reward badge with a strictly increasing sequential
// identifier. The bank treats the returned id as opaque.
type BadgeMinter interface {
	Mint(ctx context.Context, recipient uuid.UUID) (uint64, error)
}
