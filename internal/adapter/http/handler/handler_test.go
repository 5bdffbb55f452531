package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/adapter/http/middleware"
	"bank-ledger/internal/adapter/token"
	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/internal/core/ports/mocks"
	"bank-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fullSnapshot() ports.InfoSelector {
	return ports.InfoSelector{Deposit: true, Stake: true}
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	accountID := uuid.New()
	mockAuth.EXPECT().Register(gomock.Any(), "alice", "password123").Return(&domain.User{
		ID:       accountID,
		Username: "alice",
		Role:     domain.RoleUser,
	}, nil)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "password123"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, accountID.String(), data["account_id"])
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "USER", data["role"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	// Empty body => binding error
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_UsernameExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), "taken", "password123").Return(nil, apperror.ErrUsernameExists())

	body, _ := json.Marshal(dto.RegisterRequest{Username: "taken", Password: "password123"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(24 * time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "alice", "password123").Return("jwt-token-123", expiry, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "password123"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token-123", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "bad", "badpassword").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.LoginRequest{Username: "bad", Password: "badpassword"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Bank Handler Tests ---

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	accountID := uuid.New()
	amount, _ := new(big.Int).SetString("100000000000000000000", 10)
	mockBank.EXPECT().Deposit(gomock.Any(), accountID, amount).Return(nil)
	mockBank.EXPECT().UserInfo(accountID, fullSnapshot()).Return(&ports.UserInfo{
		DepositBalance:    amount,
		DepositCheckpoint: 1700000000,
		InterestPaid:      new(big.Int),
		StakeBalance:      new(big.Int),
	})

	body, _ := json.Marshal(dto.AmountRequest{Amount: "100000000000000000000"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, accountID)

	h.Deposit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "100000000000000000000", data["deposit_balance"])
	assert.Equal(t, float64(1700000000), data["deposit_checkpoint"])
	assert.Equal(t, "0", data["stake_balance"])
}

func TestDeposit_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	body, _ := json.Marshal(dto.AmountRequest{Amount: "-5"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, uuid.New())

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeposit_MissingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	h.Deposit(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	accountID := uuid.New()
	mockBank.EXPECT().Withdraw(gomock.Any(), accountID, big.NewInt(500)).Return(apperror.ErrInsufficientBalance())

	body, _ := json.Marshal(dto.AmountRequest{Amount: "500"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, accountID)

	h.Withdraw(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestUnstake_LockWindowActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	accountID := uuid.New()
	mockBank.EXPECT().Unstake(gomock.Any(), accountID, big.NewInt(1000)).Return(apperror.ErrLockWindowActive())

	body, _ := json.Marshal(dto.AmountRequest{Amount: "1000"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, accountID)

	h.Unstake(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClaimInterest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	accountID := uuid.New()
	mockBank.EXPECT().ClaimInterest(gomock.Any(), accountID).Return(&ports.InterestSettlement{
		Accrued: big.NewInt(158548959918800),
		Paid:    big.NewInt(158548959918800),
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(middleware.CtxAccountID, accountID)

	h.ClaimInterest(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "158548959918800", data["accrued"])
	assert.Equal(t, "158548959918800", data["paid"])
}

func TestClaimReward_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	accountID := uuid.New()
	mockBank.EXPECT().ClaimReward(gomock.Any(), accountID).Return(big.NewInt(59999999), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(middleware.CtxAccountID, accountID)

	h.ClaimReward(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "59999999", data["reward"])
}

func TestClaimReward_MaxSupplyViolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	accountID := uuid.New()
	mockBank.EXPECT().ClaimReward(gomock.Any(), accountID).Return(nil, apperror.ErrMaxSupplyViolated())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(middleware.CtxAccountID, accountID)

	h.ClaimReward(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMe_StakeOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	accountID := uuid.New()
	mockBank.EXPECT().UserInfo(accountID, ports.InfoSelector{Deposit: false, Stake: true}).Return(&ports.UserInfo{
		DepositBalance:   new(big.Int),
		InterestPaid:     new(big.Int),
		StakeBalance:     big.NewInt(30000),
		RewardCheckpoint: 1700000000,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?deposit=false&stake=true", nil)
	c.Set(middleware.CtxAccountID, accountID)

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "0", data["deposit_balance"])
	assert.Equal(t, "30000", data["stake_balance"])
	assert.Equal(t, float64(1700000000), data["reward_checkpoint"])
}

func TestEvents_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockJournal := mocks.NewMockEventJournal(ctrl)
	h := NewBankHandler(mockBank, mockJournal)

	accountID := uuid.New()
	accrued := big.NewInt(42)
	mockJournal.EXPECT().ListByAccount(gomock.Any(), accountID, 1, 10).Return([]domain.Event{
		{
			ID:        uuid.New(),
			Sequence:  7,
			AccountID: accountID,
			Type:      domain.EventClaimInterest,
			Amount:    big.NewInt(1000),
			Accrued:   accrued,
			CreatedAt: time.Unix(1700000000, 0),
		},
	}, int64(11), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.CtxAccountID, accountID)

	h.Events(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "CLAIM_INTEREST", first["type"])
	assert.Equal(t, "1000", first["amount"])
	assert.Equal(t, "42", first["accrued"])
	assert.Equal(t, float64(11), data["total"])
	assert.Equal(t, float64(2), data["total_pages"])
}

func TestEvents_JournalDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.CtxAccountID, uuid.New())

	h.Events(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
}

func TestPot_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewBankHandler(mockBank, nil)

	mockBank.EXPECT().PotMoney().Return(big.NewInt(123456))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.Pot(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "123456", data["pot"])
}

// --- Leaderboard Handler Tests ---

func TestLeaderboardShow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewLeaderboardHandler(mockBank, 10, 10)

	first := uuid.New()
	second := uuid.New()
	mockBank.EXPECT().ShowLeaders(3).Return([]domain.LeaderboardEntry{
		{Account: first, Amount: big.NewInt(900)},
		{Account: second, Amount: big.NewInt(100)},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?count=3", nil)

	h.Show(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	top := data[0].(map[string]interface{})
	assert.Equal(t, float64(1), top["rank"])
	assert.Equal(t, first.String(), top["account_id"])
	assert.Equal(t, "900", top["amount"])
}

func TestLeaderboardShow_BadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewLeaderboardHandler(mockBank, 10, 10)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?count=-1", nil)

	h.Show(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderboardPage_RanksOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewLeaderboardHandler(mockBank, 10, 10)

	account := uuid.New()
	mockBank.EXPECT().GetUsers(3).Return([]domain.LeaderboardEntry{
		{Account: account, Amount: big.NewInt(5)},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "page", Value: "3"}}

	h.Page(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	entry := data[0].(map[string]interface{})
	assert.Equal(t, float64(21), entry["rank"])
}

func TestLeaderboardSlice_RanksFromStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewLeaderboardHandler(mockBank, 10, 10)

	account := uuid.New()
	mockBank.EXPECT().GetSlicedLeaders(5, 7).Return([]domain.LeaderboardEntry{
		{Account: account, Amount: big.NewInt(40)},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?start=5&end=7", nil)

	h.Slice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	entry := data[0].(map[string]interface{})
	assert.Equal(t, float64(6), entry["rank"])
}

func TestRank_DefaultThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	h := NewLeaderboardHandler(mockBank, 10, 10)

	accountID := uuid.New()
	mockBank.EXPECT().CheckLeaderRankIn(accountID, 10).Return(true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.CtxAccountID, accountID)

	h.Rank(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["within"])
	assert.Equal(t, float64(10), data["threshold"])
}

// --- Token Handler Tests ---

func newTestToken() *token.RewardToken {
	maxSupply, _ := new(big.Int).SetString("1000000000000", 10)
	ratio, _ := new(big.Int).SetString("1000000000000", 10)
	return token.NewRewardToken("Reward Token", "RWD", maxSupply, ratio, zerolog.Nop())
}

func TestTokenInfo(t *testing.T) {
	h := NewTokenHandler(newTestToken(), token.NewRewardBadge(zerolog.Nop()))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.Info(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Reward Token", data["name"])
	assert.Equal(t, "RWD", data["symbol"])
	assert.Equal(t, "0", data["total_supply"])
	assert.Equal(t, "1000000000000", data["max_supply"])
}

func TestTokenMe(t *testing.T) {
	rt := newTestToken()
	badges := token.NewRewardBadge(zerolog.Nop())
	h := NewTokenHandler(rt, badges)

	accountID := uuid.New()
	// 5000 * 10^12 native converts to 5000 token units at the bridge ratio.
	nativeAmount := new(big.Int).Mul(big.NewInt(5000), big.NewInt(1_000_000_000_000))
	_, err := rt.Mint(nil, accountID, nativeAmount)
	require.NoError(t, err)
	_, err = badges.Mint(nil, accountID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.CtxAccountID, accountID)

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "5000", data["balance"])
	assert.Equal(t, float64(1), data["badges"])
}

// --- Admin Handler Tests ---

func TestBlacklist_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	h := NewAdminHandler(mockBank, mockUsers, newTestToken())

	owner := uuid.New()
	target := uuid.New()
	mockUsers.EXPECT().GetByUsername(gomock.Any(), "mallory").Return(&domain.User{ID: target, Username: "mallory"}, nil)
	mockBank.EXPECT().SetBlacklist(owner, target, true).Return(nil)

	flag := true
	body, _ := json.Marshal(dto.BlacklistRequest{Username: "mallory", Blacklisted: &flag})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, owner)

	h.Blacklist(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, target.String(), data["account_id"])
	assert.Equal(t, true, data["blacklisted"])
}

func TestBlacklist_UnknownUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	h := NewAdminHandler(mockBank, mockUsers, newTestToken())

	mockUsers.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	flag := true
	body, _ := json.Marshal(dto.BlacklistRequest{Username: "ghost", Blacklisted: &flag})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, uuid.New())

	h.Blacklist(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPause_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	h := NewAdminHandler(mockBank, mockUsers, newTestToken())

	caller := uuid.New()
	mockBank.EXPECT().Pause(caller).Return(apperror.ErrUnauthorized())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(middleware.CtxAccountID, caller)

	h.Pause(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCircuitBreaker_DurationTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	h := NewAdminHandler(mockBank, mockUsers, newTestToken())

	caller := uuid.New()
	mockBank.EXPECT().InvokeCircuitBreaker(caller, int64(10801)).Return(apperror.ErrBreakerDurationTooLong())

	body, _ := json.Marshal(dto.BreakerRequest{Seconds: 10801})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, caller)

	h.CircuitBreaker(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPotDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	h := NewAdminHandler(mockBank, mockUsers, newTestToken())

	caller := uuid.New()
	mockBank.EXPECT().DepositPotMoney(caller, big.NewInt(700)).Return(nil)
	mockBank.EXPECT().PotMoney().Return(big.NewInt(700))

	body, _ := json.Marshal(dto.AmountRequest{Amount: "700"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, caller)

	h.PotDeposit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "700", data["pot"])
}

func TestPotWithdraw_ReserveExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	h := NewAdminHandler(mockBank, mockUsers, newTestToken())

	caller := uuid.New()
	mockBank.EXPECT().WithdrawPotMoney(caller, big.NewInt(999)).Return(apperror.ErrReserveExceeded())

	body, _ := json.Marshal(dto.AmountRequest{Amount: "999"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxAccountID, caller)

	h.PotWithdraw(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokenRatio_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	rt := newTestToken()
	h := NewAdminHandler(mockBank, mockUsers, rt)

	body, _ := json.Marshal(dto.RatioRequest{Ratio: "500000000000"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.TokenRatio(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "500000000000", rt.Ratio().String())
}

func TestTokenRatio_AboveCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	h := NewAdminHandler(mockBank, mockUsers, newTestToken())

	body, _ := json.Marshal(dto.RatioRequest{Ratio: "1000000000001"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.TokenRatio(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokenPause_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBank := mocks.NewMockBankService(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	rt := newTestToken()
	h := NewAdminHandler(mockBank, mockUsers, rt)

	flag := true
	body, _ := json.Marshal(dto.TokenPauseRequest{Paused: &flag})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.TokenPause(c)

	assert.Equal(t, http.StatusOK, w.Code)
	_, err := rt.Mint(nil, uuid.New(), big.NewInt(1_000_000_000_000))
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TOKEN_002", appErr.Code)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
