package service

import (
	"bank-ledger/internal/core/domain"
	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// accessGate guards every mutating bank operation. It tracks the current
// owner, the manual pause flag and the circuit breaker expiry. The breaker
// needs no background timer: it is compared against the caller's clock on
// every check, so expiry is observed lazily.
//
// Not safe for concurrent use; the facade serializes access.
type accessGate struct {
	owner        uuid.UUID
	paused       bool
	breakerUntil int64 // unix seconds; 0 = never armed
}

func newAccessGate(owner uuid.UUID) *accessGate {
	return &accessGate{owner: owner}
}

// checkMutation enforces the gate ordering: pause first, then circuit
// breaker, then blacklist. Blacklisting only blocks withdrawal-shaped
// operations; a blacklisted account may still deposit.
func (g *accessGate) checkMutation(acct *domain.Account, now int64, withdrawal bool) error {
	if g.paused {
		return apperror.ErrPaused()
	}
	if g.breakerActive(now) {
		return apperror.ErrCircuitBreakerActive()
	}
	if withdrawal && acct != nil && acct.Blacklisted {
		return apperror.ErrBlacklisted()
	}
	return nil
}

func (g *accessGate) breakerActive(now int64) bool {
	return now < g.breakerUntil
}

// invokeBreaker arms the circuit breaker for the given number of seconds.
// Re-invoking while active replaces the expiry rather than extending it.
func (g *accessGate) invokeBreaker(now, seconds int64) error {
	if seconds <= 0 {
		return apperror.Validation("circuit breaker duration must be positive")
	}
	if seconds > domain.BreakerMaxSeconds {
		return apperror.ErrBreakerDurationTooLong()
	}
	g.breakerUntil = now + seconds
	return nil
}

func (g *accessGate) isOwner(caller uuid.UUID) bool {
	return caller == g.owner
}

func (g *accessGate) transferOwnership(newOwner uuid.UUID) {
	g.owner = newOwner
}
