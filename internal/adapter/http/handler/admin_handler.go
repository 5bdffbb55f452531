package handler

import (
	"math/big"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the owner-only bank and token controls. Bank-level
// operations are authorized inside the bank facade against the current
// owner, which survives ownership transfers; token-level operations are
// gated by the directory role.
type AdminHandler struct {
	bankSvc  ports.BankService
	userRepo ports.UserRepository
	token    TokenAccess
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bankSvc ports.BankService, userRepo ports.UserRepository, token TokenAccess) *AdminHandler {
	return &AdminHandler{bankSvc: bankSvc, userRepo: userRepo, token: token}
}

// Pause handles POST /api/v1/admin/pause.
func (h *AdminHandler) Pause(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if err := h.bankSvc.Pause(caller); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"paused": true})
}

// Unpause handles POST /api/v1/admin/unpause.
func (h *AdminHandler) Unpause(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if err := h.bankSvc.Unpause(caller); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"paused": false})
}

// Blacklist handles POST /api/v1/admin/blacklist. The target is named by
// username and resolved through the account directory.
func (h *AdminHandler) Blacklist(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	user, err := h.userRepo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if user == nil {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}
	if err := h.bankSvc.SetBlacklist(caller, user.ID, *req.Blacklisted); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"account_id": user.ID.String(), "blacklisted": *req.Blacklisted})
}

// CircuitBreaker handles POST /api/v1/admin/circuit-breaker.
func (h *AdminHandler) CircuitBreaker(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.BreakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := h.bankSvc.InvokeCircuitBreaker(caller, req.Seconds); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"seconds": req.Seconds})
}

// TransferOwnership handles POST /api/v1/admin/transfer-ownership.
func (h *AdminHandler) TransferOwnership(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	user, err := h.userRepo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if user == nil {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}
	if err := h.bankSvc.TransferOwnership(caller, user.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"owner": user.ID.String()})
}

// PotDeposit handles POST /api/v1/admin/pot/deposit.
func (h *AdminHandler) PotDeposit(c *gin.Context) {
	caller, ok := callerAccount(c)
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
	if err := h.bankSvc.DepositPotMoney(caller, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PotResponse{Pot: h.bankSvc.PotMoney().String()})
}

// PotWithdraw handles POST /api/v1/admin/pot/withdraw.
func (h *AdminHandler) PotWithdraw(c *gin.Context) {
	caller, ok := callerAccount(c)
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
	if err := h.bankSvc.WithdrawPotMoney(caller, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PotResponse{Pot: h.bankSvc.PotMoney().String()})
}

// TokenRatio handles POST /api/v1/admin/token/ratio.
func (h *AdminHandler) TokenRatio(c *gin.Context) {
	var req dto.RatioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	ratio, ok := new(big.Int).SetString(req.Ratio, 10)
	if !ok {
		response.Error(c, apperror.ErrInvalidSwapRatio())
		return
	}
	if err := h.token.SetRatio(ratio); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ratio": ratio.String()})
}

// TokenPause handles POST /api/v1/admin/token/pause.
func (h *AdminHandler) TokenPause(c *gin.Context) {
	var req dto.TokenPauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	h.token.SetPaused(*req.Paused)
	response.OK(c, gin.H{"paused": *req.Paused})
}
