package dto

import (
	"math/big"

	"bank-ledger/pkg/apperror"
)

// ParseAmount parses a decimal-string amount into a positive big integer.
// Anything that is not a plain base-10 positive integer is rejected.
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return v, nil
}
