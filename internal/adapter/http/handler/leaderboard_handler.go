package handler

import (
	"strconv"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler serves the public deposit leaderboard views and the
// authenticated rank check.
type LeaderboardHandler struct {
	bankSvc      ports.BankService
	vipThreshold int
	pageSize     int
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(bankSvc ports.BankService, vipThreshold, pageSize int) *LeaderboardHandler {
	return &LeaderboardHandler{bankSvc: bankSvc, vipThreshold: vipThreshold, pageSize: pageSize}
}

// Show handles GET /api/v1/leaderboard. The count query param bounds the
// number of entries returned and defaults to the configured page size.
func (h *LeaderboardHandler) Show(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(h.pageSize)))
	if err != nil || count < 0 {
		response.Error(c, apperror.Validation("count must be a non-negative integer"))
		return
	}
	entries := h.bankSvc.ShowLeaders(count)
	response.OK(c, mapEntries(entries, 0))
}

// Slice handles GET /api/v1/leaderboard/slice with half-open [start, end)
// zero-based bounds.
func (h *LeaderboardHandler) Slice(c *gin.Context) {
	start, err1 := strconv.Atoi(c.DefaultQuery("start", "0"))
	end, err2 := strconv.Atoi(c.DefaultQuery("end", strconv.Itoa(h.pageSize)))
	if err1 != nil || err2 != nil || start < 0 || end < start {
		response.Error(c, apperror.Validation("start and end must be integers with 0 <= start <= end"))
		return
	}
	entries := h.bankSvc.GetSlicedLeaders(start, end)
	response.OK(c, mapEntries(entries, start))
}

// Page handles GET /api/v1/leaderboard/pages/:page with fixed-size 1-based
// pages. Out-of-range pages return an empty list.
func (h *LeaderboardHandler) Page(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		response.Error(c, apperror.Validation("page must be an integer"))
		return
	}
	entries := h.bankSvc.GetUsers(page)
	offset := 0
	if page >= 1 {
		offset = (page - 1) * h.pageSize
	}
	response.OK(c, mapEntries(entries, offset))
}

// Rank handles GET /api/v1/leaderboard/rank. The threshold query param
// defaults to the VIP threshold.
func (h *LeaderboardHandler) Rank(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	threshold, err := strconv.Atoi(c.DefaultQuery("threshold", strconv.Itoa(h.vipThreshold)))
	if err != nil || threshold < 0 {
		response.Error(c, apperror.Validation("threshold must be a non-negative integer"))
		return
	}
	response.OK(c, dto.RankResponse{
		Within:    h.bankSvc.CheckLeaderRankIn(account, threshold),
		Threshold: threshold,
	})
}

func mapEntries(entries []domain.LeaderboardEntry, offset int) []dto.LeaderboardEntryResponse {
	out := make([]dto.LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.LeaderboardEntryResponse{
			Rank:      offset + i + 1,
			AccountID: e.Account.String(),
			Amount:    e.Amount.String(),
		}
	}
	return out
}
