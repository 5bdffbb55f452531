package handler

import (
	"strconv"
	"time"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/adapter/http/middleware"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BankHandler handles the depositor-facing bank endpoints.
type BankHandler struct {
	bankSvc ports.BankService
	journal ports.EventJournal
}

// NewBankHandler creates a new BankHandler. journal may be nil, which
// disables the events endpoint.
func NewBankHandler(bankSvc ports.BankService, journal ports.EventJournal) *BankHandler {
	return &BankHandler{bankSvc: bankSvc, journal: journal}
}

// callerAccount extracts the authenticated account id set by JWTAuth.
func callerAccount(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.CtxAccountID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// Deposit handles POST /api/v1/bank/deposit.
func (h *BankHandler) Deposit(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.bankSvc.Deposit(c.Request.Context(), account, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.snapshot(account))
}

// Withdraw handles POST /api/v1/bank/withdraw.
func (h *BankHandler) Withdraw(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.bankSvc.Withdraw(c.Request.Context(), account, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.snapshot(account))
}

// Stake handles POST /api/v1/bank/stake.
func (h *BankHandler) Stake(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.bankSvc.Stake(c.Request.Context(), account, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.snapshot(account))
}

// Unstake handles POST /api/v1/bank/unstake.
func (h *BankHandler) Unstake(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.bankSvc.Unstake(c.Request.Context(), account, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.snapshot(account))
}

// ClaimInterest handles POST /api/v1/bank/claim-interest.
func (h *BankHandler) ClaimInterest(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	settlement, err := h.bankSvc.ClaimInterest(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SettlementResponse{
		Accrued: settlement.Accrued.String(),
		Paid:    settlement.Paid.String(),
	})
}

// ClaimReward handles POST /api/v1/bank/claim-reward.
func (h *BankHandler) ClaimReward(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	reward, err := h.bankSvc.ClaimReward(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RewardResponse{Reward: reward.String()})
}

// Me handles GET /api/v1/bank/me. Query params deposit and stake select
// sections; both default to true. Unselected sections are zeroed, never
// omitted.
func (h *BankHandler) Me(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	selector := ports.InfoSelector{
		Deposit: c.DefaultQuery("deposit", "true") == "true",
		Stake:   c.DefaultQuery("stake", "true") == "true",
	}
	info := h.bankSvc.UserInfo(account, selector)
	response.OK(c, dto.UserInfoResponse{
		DepositBalance:    info.DepositBalance.String(),
		DepositCheckpoint: info.DepositCheckpoint,
		InterestPaid:      info.InterestPaid.String(),
		StakeBalance:      info.StakeBalance.String(),
		RewardCheckpoint:  info.RewardCheckpoint,
		Blacklisted:       info.Blacklisted,
		ReferenceSequence: info.ReferenceSequence,
	})
}

// Events handles GET /api/v1/bank/events with page/page_size pagination.
func (h *BankHandler) Events(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if h.journal == nil {
		response.OK(c, dto.EventListResponse{Items: []dto.EventResponse{}})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	events, total, err := h.journal.ListByAccount(c.Request.Context(), account, page, pageSize)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.EventResponse, len(events))
	for i, e := range events {
		items[i] = dto.EventResponse{
			ID:        e.ID.String(),
			Sequence:  e.Sequence,
			Type:      string(e.Type),
			Amount:    e.Amount.String(),
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if e.Accrued != nil {
			s := e.Accrued.String()
			items[i].Accrued = &s
		}
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	response.OK(c, dto.EventListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// Pot handles GET /api/v1/bank/pot.
func (h *BankHandler) Pot(c *gin.Context) {
	response.OK(c, dto.PotResponse{Pot: h.bankSvc.PotMoney().String()})
}

func (h *BankHandler) snapshot(account uuid.UUID) dto.UserInfoResponse {
	info := h.bankSvc.UserInfo(account, ports.InfoSelector{Deposit: true, Stake: true})
	return dto.UserInfoResponse{
		DepositBalance:    info.DepositBalance.String(),
		DepositCheckpoint: info.DepositCheckpoint,
		InterestPaid:      info.InterestPaid.String(),
		StakeBalance:      info.StakeBalance.String(),
		RewardCheckpoint:  info.RewardCheckpoint,
		Blacklisted:       info.Blacklisted,
		ReferenceSequence: info.ReferenceSequence,
	}
}
