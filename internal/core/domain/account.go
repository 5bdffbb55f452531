package domain

import (
	"math/big"

	"github.com/google/uuid"
)

// Account is the per-account ledger record. Amounts are in the native
// currency's smallest (18-decimal) unit.
type Account struct {
	ID                uuid.UUID `json:"id"`
	DepositBalance    *big.Int  `json:"deposit_balance"`
	DepositCheckpoint int64     `json:"deposit_checkpoint"` // unix seconds of last deposit mutation or interest claim
	StakeBalance      *big.Int  `json:"stake_balance"`
	RewardCheckpoint  int64     `json:"reward_checkpoint"` // unix seconds of last reward settlement or stake mutation
	InterestPaid      *big.Int  `json:"interest_paid"` // cumulative interest transferred out of the pot to this account
	Blacklisted       bool      `json:"blacklisted"`
}

// NewAccount creates a zeroed account record. A record with zero balances
// and zero checkpoints is indistinguishable from one that never existed.
func NewAccount(id uuid.UUID) *Account {
	return &Account{
		ID:             id,
		DepositBalance: new(big.Int),
		StakeBalance:   new(big.Int),
		InterestPaid:   new(big.Int),
	}
}

// HasDeposit reports whether the account holds a nonzero deposit balance.
func (a *Account) HasDeposit() bool {
	return a.DepositBalance.Sign() > 0
}

// HasStake reports whether the account holds a nonzero stake balance.
func (a *Account) HasStake() bool {
	return a.StakeBalance.Sign() > 0
}

// User is a registered identity in the account directory.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose
	Role         Role      `json:"role"`
	CreatedAt    int64     `json:"created_at"`
}

// Role distinguishes the bank owner from regular depositors.
type Role string

const (
	RoleUser  Role = "USER"
	RoleOwner Role = "OWNER"
)
