package service

import (
	"context"
	"math/big"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
)

// rewardEngine settles stake rewards by minting the companion token.
type rewardEngine struct {
	minter ports.RewardMinter
}

// settle mints the reward accrued on acct's stake since its reward
// checkpoint and advances the checkpoint. With no stake held the settlement
// only initializes the checkpoint, so a first stake starts a fresh accrual
// interval instead of inheriting a stale one.
//
// The accrual is handed to the token in native precision; the token
// converts it at its swap ratio and reports what it credited. An interval
// whose payout converts to zero leaves the checkpoint alone and keeps
// accruing; only a genuine payout restarts the clock. Returns the credited
// token amount.
//
// A mint failure (supply cap, paused token) is returned before any account
// state changes, so the caller can abort the surrounding operation intact.
func (e *rewardEngine) settle(ctx context.Context, acct *domain.Account, now int64) (*big.Int, error) {
	if !acct.HasStake() || acct.RewardCheckpoint == 0 {
		acct.RewardCheckpoint = now
		return new(big.Int), nil
	}

	reward := domain.StakeReward(acct.StakeBalance, now-acct.RewardCheckpoint)
	if reward.Sign() == 0 {
		return reward, nil
	}
	minted, err := e.minter.Mint(ctx, acct.ID, reward)
	if err != nil {
		return nil, err
	}
	if minted.Sign() == 0 {
		return minted, nil
	}
	acct.RewardCheckpoint = now
	return minted, nil
}
