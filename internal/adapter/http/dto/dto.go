package dto

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// AmountRequest carries a single amount. Amounts are decimal strings in the
// smallest (18-decimal) unit because they exceed what JSON numbers carry
// losslessly.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// BreakerRequest is the request body for invoking the circuit breaker.
type BreakerRequest struct {
	Seconds int64 `json:"seconds" binding:"required"`
}

// BlacklistRequest flags or unflags an account by username.
type BlacklistRequest struct {
	Username    string `json:"username" binding:"required"`
	Blacklisted *bool  `json:"blacklisted" binding:"required"`
}

// TransferOwnershipRequest hands bank ownership to another account.
type TransferOwnershipRequest struct {
	Username string `json:"username" binding:"required"`
}

// RatioRequest tunes the reward token swap ratio.
type RatioRequest struct {
	Ratio string `json:"ratio" binding:"required"`
}

// TokenPauseRequest toggles reward token minting.
type TokenPauseRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

// UserInfoResponse is the fixed-shape account snapshot. Sections excluded
// by the selector come back zeroed, never omitted.
type UserInfoResponse struct {
	DepositBalance    string `json:"deposit_balance"`
	DepositCheckpoint int64  `json:"deposit_checkpoint"`
	InterestPaid      string `json:"interest_paid"`
	StakeBalance      string `json:"stake_balance"`
	RewardCheckpoint  int64  `json:"reward_checkpoint"`
	Blacklisted       bool   `json:"blacklisted"`
	ReferenceSequence uint64 `json:"reference_sequence"`
}

// SettlementResponse reports an interest settlement.
type SettlementResponse struct {
	Accrued string `json:"accrued"`
	Paid    string `json:"paid"`
}

// RewardResponse reports a stake reward settlement.
type RewardResponse struct {
	Reward string `json:"reward"`
}

// LeaderboardEntryResponse is one ranked account.
type LeaderboardEntryResponse struct {
	Rank      int    `json:"rank"`
	AccountID string `json:"account_id"`
	Amount    string `json:"amount"`
}

// RankResponse reports whether the caller ranks within a threshold.
type RankResponse struct {
	Within    bool `json:"within"`
	Threshold int  `json:"threshold"`
}

// PotResponse reports the interest reserve.
type PotResponse struct {
	Pot string `json:"pot"`
}

// EventResponse is one journal entry.
type EventResponse struct {
	ID        string  `json:"id"`
	Sequence  uint64  `json:"sequence"`
	Type      string  `json:"type"`
	Amount    string  `json:"amount"`
	Accrued   *string `json:"accrued,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// EventListResponse wraps a paginated event list.
type EventListResponse struct {
	Items      []EventResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// TokenInfoResponse describes the reward token.
type TokenInfoResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TotalSupply string `json:"total_supply"`
	MaxSupply   string `json:"max_supply"`
	Ratio       string `json:"ratio"`
}

// TokenBalanceResponse is the caller's reward holdings.
type TokenBalanceResponse struct {
	Balance string `json:"balance"`
	Badges  int    `json:"badges"`
}
