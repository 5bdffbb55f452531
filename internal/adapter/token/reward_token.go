// Package token holds the in-process companion token and badge ledgers the
// bank mints into. They keep their own books and enforce their own rules;
// the bank only sees the ports.RewardMinter and ports.BadgeMinter surfaces.
package token

import (
	"context"
	"math/big"
	"sync"

	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RewardToken is a capped-supply 6-decimal token ledger. Mints arrive in
// native 18-decimal precision and are converted at the owner-settable swap
// ratio. Minting past the cap or while paused fails; the caller decides
// what to do with that.
type RewardToken struct {
	mu sync.Mutex

	name   string
	symbol string

	maxSupply   *big.Int
	totalSupply *big.Int
	balances    map[uuid.UUID]*big.Int

	// swapRatio is the native-to-token conversion denominator. It may be
	// tuned downward but never past the 18-to-6 decimal bridge.
	swapRatio *big.Int
	maxRatio  *big.Int

	paused bool
	log    zerolog.Logger
}

// NewRewardToken creates the token ledger. maxSupply and swapRatio are in
// the token's smallest (6-decimal) unit and the bridge denominator
// respectively; both come from configuration.
func NewRewardToken(name, symbol string, maxSupply, swapRatio *big.Int, log zerolog.Logger) *RewardToken {
	return &RewardToken{
		name:        name,
		symbol:      symbol,
		maxSupply:   new(big.Int).Set(maxSupply),
		totalSupply: new(big.Int),
		balances:    make(map[uuid.UUID]*big.Int),
		swapRatio:   new(big.Int).Set(swapRatio),
		maxRatio:    new(big.Int).Set(swapRatio),
		log:         log,
	}
}

// Mint converts a native-precision amount to token units at the current
// swap ratio and credits them to recipient. An amount too small to convert
// to a single token unit is a no-op. Returns the credited token amount.
// Implements ports.RewardMinter.
func (t *RewardToken) Mint(_ context.Context, recipient uuid.UUID, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.paused {
		return nil, apperror.ErrTokenPaused()
	}
	tokens := new(big.Int).Quo(amount, t.swapRatio)
	if tokens.Sign() == 0 {
		return tokens, nil
	}
	next := new(big.Int).Add(t.totalSupply, tokens)
	if next.Cmp(t.maxSupply) > 0 {
		return nil, apperror.ErrMaxSupplyViolated()
	}
	t.totalSupply = next

	bal, ok := t.balances[recipient]
	if !ok {
		bal = new(big.Int)
		t.balances[recipient] = bal
	}
	bal.Add(bal, tokens)

	t.log.Debug().
		Str("recipient", recipient.String()).
		Str("native_amount", amount.String()).
		Str("minted", tokens.String()).
		Str("total_supply", t.totalSupply.String()).
		Msg("reward token minted")
	return tokens, nil
}

// BalanceOf returns the recipient's token balance.
func (t *RewardToken) BalanceOf(account uuid.UUID) *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	bal, ok := t.balances[account]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(bal)
}

// TotalSupply returns the minted supply.
func (t *RewardToken) TotalSupply() *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return new(big.Int).Set(t.totalSupply)
}

// MaxSupply returns the supply cap.
func (t *RewardToken) MaxSupply() *big.Int {
	return new(big.Int).Set(t.maxSupply)
}

// SetRatio tunes the swap ratio. A ratio must be positive and can never
// exceed the decimal-bridge ceiling it started from.
func (t *RewardToken) SetRatio(ratio *big.Int) error {
	if ratio == nil || ratio.Sign() <= 0 {
		return apperror.ErrInvalidSwapRatio()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if ratio.Cmp(t.maxRatio) > 0 {
		return apperror.ErrInvalidSwapRatio()
	}
	t.swapRatio.Set(ratio)
	return nil
}

// Ratio returns the current swap ratio.
func (t *RewardToken) Ratio() *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return new(big.Int).Set(t.swapRatio)
}

// SetPaused halts or resumes minting.
func (t *RewardToken) SetPaused(paused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paused = paused
}

// Name returns the token name.
func (t *RewardToken) Name() string { return t.name }

// Symbol returns the token symbol.
func (t *RewardToken) Symbol() string { return t.symbol }
