package handler

import (
	"math/big"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenAccess is the reward token surface the HTTP layer needs.
type TokenAccess interface {
	Name() string
	Symbol() string
	TotalSupply() *big.Int
	MaxSupply() *big.Int
	Ratio() *big.Int
	BalanceOf(account uuid.UUID) *big.Int
	SetRatio(ratio *big.Int) error
	SetPaused(paused bool)
}

// BadgeAccess is the VIP badge surface the HTTP layer needs.
type BadgeAccess interface {
	BalanceOf(account uuid.UUID) int
}

// TokenHandler serves reward token metadata and the caller's holdings.
type TokenHandler struct {
	token  TokenAccess
	badges BadgeAccess
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(token TokenAccess, badges BadgeAccess) *TokenHandler {
	return &TokenHandler{token: token, badges: badges}
}

// Info handles GET /api/v1/token.
func (h *TokenHandler) Info(c *gin.Context) {
	response.OK(c, dto.TokenInfoResponse{
		Name:        h.token.Name(),
		Symbol:      h.token.Symbol(),
		TotalSupply: h.token.TotalSupply().String(),
		MaxSupply:   h.token.MaxSupply().String(),
		Ratio:       h.token.Ratio().String(),
	})
}

// Me handles GET /api/v1/token/me.
func (h *TokenHandler) Me(c *gin.Context) {
	account, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	response.OK(c, dto.TokenBalanceResponse{
		Balance: h.token.BalanceOf(account).String(),
		Badges:  h.badges.BalanceOf(account),
	})
}
