package domain

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a state-changing bank operation.
type EventType string

const (
	EventDeposit        EventType = "DEPOSIT"
	EventWithdraw       EventType = "WITHDRAW"
	EventClaimInterest  EventType = "CLAIM_INTEREST"
	EventStake          EventType = "STAKE"
	EventUnstake        EventType = "UNSTAKE"
	EventClaimReward    EventType = "CLAIM_REWARD"
	EventBadgeMint      EventType = "BADGE_MINT"
	EventPotDeposit     EventType = "POT_DEPOSIT"
	EventPotWithdraw    EventType = "POT_WITHDRAW"
	EventPause          EventType = "PAUSE"
	EventUnpause        EventType = "UNPAUSE"
	EventBlacklist      EventType = "BLACKLIST"
	EventCircuitBreaker EventType = "CIRCUIT_BREAKER"
)

// Event records a state-changing call. Amount is the value moved or paid;
// for interest settlements Accrued additionally carries the earned amount so
// observers can distinguish earned-but-unfunded interest from paid interest.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Sequence  uint64    `json:"sequence"`
	AccountID uuid.UUID `json:"account_id"`
	Type      EventType `json:"type"`
	Amount    *big.Int  `json:"amount"`
	Accrued   *big.Int  `json:"accrued,omitempty"` // interest settlements only
	CreatedAt time.Time `json:"created_at"`
}
