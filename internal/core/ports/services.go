package ports

import (
	"context"
	"math/big"
	"time"

	"bank-ledger/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// BankService is the single-writer bank state machine facade. Every mutating
// operation passes the access gate, settles any due interest or reward
// against the pre-mutation principal, mutates balances and reconciles the
// leaderboard as one indivisible unit.
type BankService interface {
	Deposit(ctx context.Context, account uuid.UUID, amount *big.Int) error
	Withdraw(ctx context.Context, account uuid.UUID, amount *big.Int) error
	Stake(ctx context.Context, account uuid.UUID, amount *big.Int) error
	Unstake(ctx context.Context, account uuid.UUID, amount *big.Int) error
	ClaimInterest(ctx context.Context, account uuid.UUID) (*InterestSettlement, error)
	ClaimReward(ctx context.Context, account uuid.UUID) (*big.Int, error)

	// Owner operations. caller must be the current owner.
	Pause(caller uuid.UUID) error
	Unpause(caller uuid.UUID) error
	SetBlacklist(caller, account uuid.UUID, flag bool) error
	InvokeCircuitBreaker(caller uuid.UUID, seconds int64) error
	TransferOwnership(caller, newOwner uuid.UUID) error
	DepositPotMoney(caller uuid.UUID, amount *big.Int) error
	WithdrawPotMoney(caller uuid.UUID, amount *big.Int) error

	// Read side.
	UserInfo(account uuid.UUID, selector InfoSelector) *UserInfo
	PotMoney() *big.Int
	CheckLeaderRankIn(account uuid.UUID, threshold int) bool
	ShowLeaders(count int) []domain.LeaderboardEntry
	GetSlicedLeaders(start, end int) []domain.LeaderboardEntry
	GetUsers(page int) []domain.LeaderboardEntry
}

// InterestSettlement reports an interest settlement: Accrued is what the
// elapsed interval earned, Paid what the reserve actually funded.
type InterestSettlement struct {
	Accrued *big.Int
	Paid    *big.Int
}

// InfoSelector picks which sections of a user snapshot to include.
type InfoSelector struct {
	Deposit bool
	Stake   bool
}

// UserInfo is the fixed-shape snapshot tuple returned by the read
// aggregator. Unselected sections are zeroed.
type UserInfo struct {
	DepositBalance    *big.Int
	DepositCheckpoint int64
	InterestPaid      *big.Int
	StakeBalance      *big.Int
	RewardCheckpoint  int64
	Blacklisted       bool
	ReferenceSequence uint64
}

// AuthService defines registration and login for the account directory.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
	// EnsureOwner creates (or fetches) the bootstrap owner identity.
	EnsureOwner(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(accountID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Role      domain.Role
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
