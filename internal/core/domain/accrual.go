package domain

import "math/big"

const (
	// SecondsPerYear is the nominal year used by both accrual formulas.
	SecondsPerYear = 31_536_000

	// LockWindowSeconds is how long stake principal stays locked after a
	// reward settlement.
	LockWindowSeconds = 24 * 60 * 60

	// BreakerMaxSeconds caps a single circuit breaker invocation at 3 hours.
	BreakerMaxSeconds = 3 * 60 * 60
)

// interestDivisor yields a 50% nominal APR: principal / (2 * secondsPerYear)
// per second, floor division.
var interestDivisor = big.NewInt(2 * SecondsPerYear)


// InterestPerSecond returns the per-second interest accrual for a principal.
// Small principals floor to zero; that is an arithmetic artifact, not a
// policy threshold.
func InterestPerSecond(principal *big.Int) *big.Int {
	return new(big.Int).Quo(principal, interestDivisor)
}

// InterestAccrued returns the interest earned by a principal over elapsed
// seconds, before any reserve capping.
func InterestAccrued(principal *big.Int, elapsed int64) *big.Int {
	if elapsed <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Mul(InterestPerSecond(principal), big.NewInt(elapsed))
}

// StakeReward returns the reward accrued by a stake over elapsed seconds in
// native 18-decimal precision: stake * 2 / secondsPerYear * elapsed, a 200%
// nominal annual rate. The companion token converts it to its own coarser
// units at its swap ratio when minting.
func StakeReward(stake *big.Int, elapsed int64) *big.Int {
	if elapsed <= 0 {
		return new(big.Int)
	}
	reward := new(big.Int).Mul(stake, big.NewInt(2))
	reward.Quo(reward, big.NewInt(SecondsPerYear))
	return reward.Mul(reward, big.NewInt(elapsed))
}
