package service

import (
	"math/big"

	"bank-ledger/internal/core/domain"
)

// settleInterest pays the interest accrued on acct's deposit balance since
// its deposit checkpoint, funded by the pot reserve. The payout is capped at
// whatever the pot holds; the uncovered remainder is forfeited, because the
// checkpoint advances to now regardless of how much was actually paid.
//
// The payout leaves the ledger: it moves from the pot to the account's
// cumulative InterestPaid figure, never into the deposit balance, so
// deposit plus stake always equals the account's net deposits.
//
// pot is debited in place. Returns (accrued, paid).
func settleInterest(acct *domain.Account, pot *big.Int, now int64) (*big.Int, *big.Int) {
	accrued := new(big.Int)
	if acct.HasDeposit() && acct.DepositCheckpoint > 0 {
		accrued = domain.InterestAccrued(acct.DepositBalance, now-acct.DepositCheckpoint)
	}
	acct.DepositCheckpoint = now

	paid := new(big.Int).Set(accrued)
	if paid.Cmp(pot) > 0 {
		paid.Set(pot)
	}
	if paid.Sign() > 0 {
		pot.Sub(pot, paid)
		acct.InterestPaid.Add(acct.InterestPaid, paid)
	}
	return accrued, paid
}
