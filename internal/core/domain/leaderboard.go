package domain

import (
	"math/big"

	"github.com/google/uuid"
)

// LeaderboardEntry pairs an account with its deposit balance.
type LeaderboardEntry struct {
	Account uuid.UUID
	Amount  *big.Int
}

// Leaderboard is an order-maintained sequence of (account, amount) pairs
// sorted descending by amount, plus a reverse lookup from account to its
// 1-based rank (0 = absent). Ties keep insertion order. The forward sequence
// and the reverse index always agree; all mutation goes through Insert,
// Reposition and Remove so no caller can observe an intermediate state.
//
// Not safe for concurrent use; callers serialize access.
type Leaderboard struct {
	entries []LeaderboardEntry
	ranks   map[uuid.UUID]int // 1-based
}

// NewLeaderboard creates an empty leaderboard.
func NewLeaderboard() *Leaderboard {
	return &Leaderboard{ranks: make(map[uuid.UUID]int)}
}

// Len returns the number of ranked accounts.
func (l *Leaderboard) Len() int {
	return len(l.entries)
}

// Rank returns the 1-based position of an account, or 0 if absent.
func (l *Leaderboard) Rank(account uuid.UUID) int {
	return l.ranks[account]
}

// RankWithin reports whether the account's rank is within threshold.
// Absent accounts are never within any threshold.
func (l *Leaderboard) RankWithin(account uuid.UUID, threshold int) bool {
	r := l.ranks[account]
	return r > 0 && r <= threshold
}

// Insert adds a new account with the given amount and returns its resulting
// 1-based rank. The entry is appended and bubbled leftward past strictly
// smaller amounts, so an equal amount ranks behind earlier insertions.
func (l *Leaderboard) Insert(account uuid.UUID, amount *big.Int) int {
	l.entries = append(l.entries, LeaderboardEntry{
		Account: account,
		Amount:  new(big.Int).Set(amount),
	})
	i := len(l.entries) - 1
	l.ranks[account] = i + 1
	return l.bubbleLeft(i) + 1
}

// Reposition updates the amount stored for an already ranked account and
// restores sort order, bubbling in whichever direction is needed. Returns
// the resulting 1-based rank.
func (l *Leaderboard) Reposition(account uuid.UUID, amount *big.Int) int {
	i := l.ranks[account] - 1
	if i < 0 {
		return 0
	}
	l.entries[i].Amount.Set(amount)
	i = l.bubbleLeft(i)
	i = l.bubbleRight(i)
	return i + 1
}

// Remove deletes an account, shifting every lower-ranked entry up by one so
// ordering stays contiguous, and clears the reverse index.
func (l *Leaderboard) Remove(account uuid.UUID) {
	i := l.ranks[account] - 1
	if i < 0 {
		return
	}
	copy(l.entries[i:], l.entries[i+1:])
	l.entries[len(l.entries)-1] = LeaderboardEntry{}
	l.entries = l.entries[:len(l.entries)-1]
	delete(l.ranks, account)
	for j := i; j < len(l.entries); j++ {
		l.ranks[l.entries[j].Account] = j + 1
	}
}

// Top returns the first count entries. A count beyond the current size
// returns a shorter result.
func (l *Leaderboard) Top(count int) []LeaderboardEntry {
	return l.Slice(0, count)
}

// Slice returns entries in [start, end), 0-based, clamped to the current
// size. Amounts are copies; mutating them does not affect the board.
func (l *Leaderboard) Slice(start, end int) []LeaderboardEntry {
	if start < 0 {
		start = 0
	}
	if end > len(l.entries) {
		end = len(l.entries)
	}
	if start >= end {
		return []LeaderboardEntry{}
	}
	out := make([]LeaderboardEntry, end-start)
	for i := range out {
		e := l.entries[start+i]
		out[i] = LeaderboardEntry{Account: e.Account, Amount: new(big.Int).Set(e.Amount)}
	}
	return out
}

// bubbleLeft moves entries[i] toward the front while its predecessor holds a
// strictly smaller amount, swapping rank entries in lockstep.
func (l *Leaderboard) bubbleLeft(i int) int {
	for i > 0 && l.entries[i-1].Amount.Cmp(l.entries[i].Amount) < 0 {
		l.swap(i-1, i)
		i--
	}
	return i
}

// bubbleRight moves entries[i] toward the back while its successor holds a
// strictly greater amount.
func (l *Leaderboard) bubbleRight(i int) int {
	for i < len(l.entries)-1 && l.entries[i+1].Amount.Cmp(l.entries[i].Amount) > 0 {
		l.swap(i, i+1)
		i++
	}
	return i
}

func (l *Leaderboard) swap(i, j int) {
	l.entries[i], l.entries[j] = l.entries[j], l.entries[i]
	l.ranks[l.entries[i].Account] = i + 1
	l.ranks[l.entries[j].Account] = j + 1
}
