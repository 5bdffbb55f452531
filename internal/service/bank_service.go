package service

import (
	"context"
	"math/big"
	"sync"
	"time"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BankServiceImpl implements ports.BankService as a single-writer state
// machine. One mutex serializes every operation, mutating or read-only, so
// each call observes and produces a consistent snapshot: balances, the pot
// and the leaderboard never disagree mid-operation.
type BankServiceImpl struct {
	mu sync.Mutex

	gate     *accessGate
	accounts map[uuid.UUID]*domain.Account
	board    *domain.Leaderboard
	pot      *big.Int

	reward      rewardEngine
	badges      ports.BadgeMinter
	badgeMinted map[uuid.UUID]bool

	journal ports.EventJournal
	seq     uint64

	vipThreshold int
	pageSize     int
	nowFn        func() time.Time
	log          zerolog.Logger
}

// BankOption configures a BankServiceImpl.
type BankOption func(*BankServiceImpl)

// WithClock overrides the time source. Tests use this to drive accrual
// intervals deterministically.
func WithClock(fn func() time.Time) BankOption {
	return func(s *BankServiceImpl) { s.nowFn = fn }
}

// NewBankService creates the bank state machine with the given bootstrap
// owner. journal may be nil, in which case events are only logged.
func NewBankService(
	owner uuid.UUID,
	minter ports.RewardMinter,
	badges ports.BadgeMinter,
	journal ports.EventJournal,
	vipThreshold int,
	pageSize int,
	log zerolog.Logger,
	opts ...BankOption,
) *BankServiceImpl {
	s := &BankServiceImpl{
		gate:         newAccessGate(owner),
		accounts:     make(map[uuid.UUID]*domain.Account),
		board:        domain.NewLeaderboard(),
		pot:          new(big.Int),
		reward:       rewardEngine{minter: minter},
		badges:       badges,
		badgeMinted:  make(map[uuid.UUID]bool),
		journal:      journal,
		vipThreshold: vipThreshold,
		pageSize:     pageSize,
		nowFn:        time.Now,
		log:          log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deposit settles pending interest against the pre-deposit principal, then
// credits the amount and reconciles the leaderboard.
func (s *BankServiceImpl) Deposit(ctx context.Context, account uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	acct := s.ensure(account)
	if err := s.gate.checkMutation(acct, now, false); err != nil {
		return err
	}

	accrued, paid := settleInterest(acct, s.pot, now)
	if accrued.Sign() > 0 {
		s.record(ctx, domain.EventClaimInterest, account, paid, accrued)
	}
	acct.DepositBalance.Add(acct.DepositBalance, amount)
	s.reconcileBoard(ctx, acct)

	s.record(ctx, domain.EventDeposit, account, amount, nil)
	return nil
}

// Withdraw settles pending interest against the pre-debit principal, then
// debits the amount. Interest is paid out of the pot, never into the
// balance, so only deposited principal is withdrawable.
func (s *BankServiceImpl) Withdraw(ctx context.Context, account uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	acct := s.ensure(account)
	if err := s.gate.checkMutation(acct, now, true); err != nil {
		return err
	}
	if acct.DepositBalance.Cmp(amount) < 0 {
		return apperror.ErrInsufficientBalance()
	}

	accrued, paid := settleInterest(acct, s.pot, now)
	if accrued.Sign() > 0 {
		s.record(ctx, domain.EventClaimInterest, account, paid, accrued)
	}
	acct.DepositBalance.Sub(acct.DepositBalance, amount)
	if !acct.HasDeposit() {
		// A full exit leaves the record indistinguishable from a fresh one.
		acct.DepositCheckpoint = 0
	}
	s.reconcileBoard(ctx, acct)

	s.record(ctx, domain.EventWithdraw, account, amount, nil)
	return nil
}

// Stake moves deposit balance into stake. The reward accrued on the
// pre-mutation stake is settled first so the old principal earns at its own
// rate; a mint failure aborts the whole operation untouched.
func (s *BankServiceImpl) Stake(ctx context.Context, account uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	acct := s.ensure(account)
	if err := s.gate.checkMutation(acct, now, false); err != nil {
		return err
	}
	if acct.DepositBalance.Cmp(amount) < 0 {
		return apperror.ErrInsufficientBalance()
	}

	reward, err := s.reward.settle(ctx, acct, now)
	if err != nil {
		return err
	}

	acct.DepositBalance.Sub(acct.DepositBalance, amount)
	acct.StakeBalance.Add(acct.StakeBalance, amount)
	s.reconcileBoard(ctx, acct)

	s.record(ctx, domain.EventStake, account, amount, nil)
	if reward.Sign() > 0 {
		s.record(ctx, domain.EventClaimReward, account, reward, nil)
	}
	return nil
}

// Unstake moves stake back into deposit balance. Refused inside the 24h
// lock window following the last reward settlement, measured against the
// pre-settlement checkpoint.
func (s *BankServiceImpl) Unstake(ctx context.Context, account uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	acct := s.ensure(account)
	if err := s.gate.checkMutation(acct, now, false); err != nil {
		return err
	}
	if acct.StakeBalance.Cmp(amount) < 0 {
		return apperror.ErrInsufficientStake()
	}
	if acct.RewardCheckpoint > 0 && now-acct.RewardCheckpoint < domain.LockWindowSeconds {
		return apperror.ErrLockWindowActive()
	}

	reward, err := s.reward.settle(ctx, acct, now)
	if err != nil {
		return err
	}

	acct.StakeBalance.Sub(acct.StakeBalance, amount)
	acct.DepositBalance.Add(acct.DepositBalance, amount)
	s.reconcileBoard(ctx, acct)

	s.record(ctx, domain.EventUnstake, account, amount, nil)
	if reward.Sign() > 0 {
		s.record(ctx, domain.EventClaimReward, account, reward, nil)
	}
	return nil
}

// ClaimInterest settles interest explicitly. The payout is capped by the
// pot; the checkpoint advances either way, so the uncovered remainder is
// forfeited rather than carried forward.
func (s *BankServiceImpl) ClaimInterest(ctx context.Context, account uuid.UUID) (*ports.InterestSettlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	acct := s.ensure(account)
	if err := s.gate.checkMutation(acct, now, false); err != nil {
		return nil, err
	}

	accrued, paid := settleInterest(acct, s.pot, now)

	s.record(ctx, domain.EventClaimInterest, account, paid, accrued)
	return &ports.InterestSettlement{Accrued: accrued, Paid: paid}, nil
}

// ClaimReward settles the stake reward explicitly, minting the companion
// token to the caller.
func (s *BankServiceImpl) ClaimReward(ctx context.Context, account uuid.UUID) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	acct := s.ensure(account)
	if err := s.gate.checkMutation(acct, now, false); err != nil {
		return nil, err
	}

	reward, err := s.reward.settle(ctx, acct, now)
	if err != nil {
		return nil, err
	}

	if reward.Sign() > 0 {
		s.record(ctx, domain.EventClaimReward, account, reward, nil)
	}
	return reward, nil
}

// Pause halts all mutating operations until Unpause.
func (s *BankServiceImpl) Pause(caller uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.isOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	s.gate.paused = true
	s.record(context.Background(), domain.EventPause, caller, nil, nil)
	return nil
}

// Unpause lifts a manual pause. It does not clear an active circuit breaker.
func (s *BankServiceImpl) Unpause(caller uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.isOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	s.gate.paused = false
	s.record(context.Background(), domain.EventUnpause, caller, nil, nil)
	return nil
}

// SetBlacklist flags or unflags an account. Blacklisting blocks withdrawals
// only; deposits and claims keep working.
func (s *BankServiceImpl) SetBlacklist(caller, account uuid.UUID, flag bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.isOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	s.ensure(account).Blacklisted = flag
	s.record(context.Background(), domain.EventBlacklist, account, nil, nil)
	return nil
}

// InvokeCircuitBreaker halts all mutating operations for the given number
// of seconds, capped at three hours. Expiry is automatic.
func (s *BankServiceImpl) InvokeCircuitBreaker(caller uuid.UUID, seconds int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.isOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	if err := s.gate.invokeBreaker(s.now(), seconds); err != nil {
		return err
	}
	s.record(context.Background(), domain.EventCircuitBreaker, caller, big.NewInt(seconds), nil)
	return nil
}

// TransferOwnership hands owner privileges to another account. The previous
// owner loses them immediately.
func (s *BankServiceImpl) TransferOwnership(caller, newOwner uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.isOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	s.gate.transferOwnership(newOwner)
	s.log.Info().
		Str("previous_owner", caller.String()).
		Str("new_owner", newOwner.String()).
		Msg("bank ownership transferred")
	return nil
}

// DepositPotMoney funds the interest reserve.
func (s *BankServiceImpl) DepositPotMoney(caller uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.isOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	s.pot.Add(s.pot, amount)
	s.record(context.Background(), domain.EventPotDeposit, caller, amount, nil)
	return nil
}

// WithdrawPotMoney drains part of the interest reserve. Cannot exceed what
// the pot currently holds.
func (s *BankServiceImpl) WithdrawPotMoney(caller uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.isOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	if amount.Cmp(s.pot) > 0 {
		return apperror.ErrReserveExceeded()
	}
	s.pot.Sub(s.pot, amount)
	s.record(context.Background(), domain.EventPotWithdraw, caller, amount, nil)
	return nil
}

// UserInfo returns a fixed-shape snapshot of an account. Sections the
// selector excludes come back zeroed, so the response shape never varies.
// An account that never transacted reads as all zeroes.
func (s *BankServiceImpl) UserInfo(account uuid.UUID, selector ports.InfoSelector) *ports.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := &ports.UserInfo{
		DepositBalance:    new(big.Int),
		InterestPaid:      new(big.Int),
		StakeBalance:      new(big.Int),
		ReferenceSequence: s.seq,
	}
	acct, ok := s.accounts[account]
	if !ok {
		return info
	}
	info.Blacklisted = acct.Blacklisted
	if selector.Deposit {
		info.DepositBalance.Set(acct.DepositBalance)
		info.DepositCheckpoint = acct.DepositCheckpoint
		info.InterestPaid.Set(acct.InterestPaid)
	}
	if selector.Stake {
		info.StakeBalance.Set(acct.StakeBalance)
		info.RewardCheckpoint = acct.RewardCheckpoint
	}
	return info
}

// PotMoney returns the current interest reserve.
func (s *BankServiceImpl) PotMoney() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return new(big.Int).Set(s.pot)
}

// CheckLeaderRankIn reports whether the account ranks within threshold.
func (s *BankServiceImpl) CheckLeaderRankIn(account uuid.UUID, threshold int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.RankWithin(account, threshold)
}

// ShowLeaders returns the top count leaderboard entries.
func (s *BankServiceImpl) ShowLeaders(count int) []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Top(count)
}

// GetSlicedLeaders returns leaderboard entries in [start, end), 0-based.
func (s *BankServiceImpl) GetSlicedLeaders(start, end int) []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Slice(start, end)
}

// GetUsers returns one leaderboard page. Pages are 1-based.
func (s *BankServiceImpl) GetUsers(page int) []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		return []domain.LeaderboardEntry{}
	}
	start := (page - 1) * s.pageSize
	return s.board.Slice(start, start+s.pageSize)
}

// now returns the current unix second from the injected clock.
func (s *BankServiceImpl) now() int64 {
	return s.nowFn().Unix()
}

// ensure returns the account record, creating a zeroed one on first touch.
func (s *BankServiceImpl) ensure(account uuid.UUID) *domain.Account {
	acct, ok := s.accounts[account]
	if !ok {
		acct = domain.NewAccount(account)
		s.accounts[account] = acct
	}
	return acct
}

// reconcileBoard re-syncs the leaderboard with the account's deposit
// balance: insert on first nonzero balance, reposition on change, remove on
// zero. A rank landing inside the VIP threshold mints the badge once per
// account, best-effort.
func (s *BankServiceImpl) reconcileBoard(ctx context.Context, acct *domain.Account) {
	if !acct.HasDeposit() {
		s.board.Remove(acct.ID)
		return
	}
	var rank int
	if s.board.Rank(acct.ID) > 0 {
		rank = s.board.Reposition(acct.ID, acct.DepositBalance)
	} else {
		rank = s.board.Insert(acct.ID, acct.DepositBalance)
	}
	if rank <= s.vipThreshold && !s.badgeMinted[acct.ID] {
		s.mintBadge(ctx, acct.ID)
	}
}

// mintBadge mints the VIP badge. Failures are logged and swallowed: the
// badge is a side effect and must never fail the ledger mutation that
// triggered it.
func (s *BankServiceImpl) mintBadge(ctx context.Context, account uuid.UUID) {
	if s.badges == nil {
		return
	}
	id, err := s.badges.Mint(ctx, account)
	if err != nil {
		s.log.Warn().Err(err).Str("account", account.String()).Msg("vip badge mint failed")
		return
	}
	s.badgeMinted[account] = true
	s.record(ctx, domain.EventBadgeMint, account, new(big.Int).SetUint64(id), nil)
}

// record assigns the next sequence number and appends the event to the
// journal asynchronously. Journal failures are logged, never propagated;
// the ledger state is authoritative, the journal is an observer.
func (s *BankServiceImpl) record(_ context.Context, typ domain.EventType, account uuid.UUID, amount, accrued *big.Int) {
	s.seq++
	event := &domain.Event{
		ID:        uuid.New(),
		Sequence:  s.seq,
		AccountID: account,
		Type:      typ,
		Amount:    copyOrZero(amount),
		CreatedAt: s.nowFn().UTC(),
	}
	if accrued != nil {
		event.Accrued = new(big.Int).Set(accrued)
	}

	s.log.Info().
		Uint64("sequence", event.Sequence).
		Str("type", string(typ)).
		Str("account", account.String()).
		Str("amount", event.Amount.String()).
		Msg("bank event")

	if s.journal == nil {
		return
	}
	go func() {
		if err := s.journal.Append(context.Background(), event); err != nil {
			s.log.Warn().Err(err).Uint64("sequence", event.Sequence).Msg("failed to persist bank event")
		}
	}()
}

func copyOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
