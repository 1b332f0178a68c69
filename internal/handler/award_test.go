package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"economy-engine/internal/model"
	mocks "economy-engine/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.AwardService, *mocks.TradeService) {
	gin.SetMode(gin.TestMode)
	awardSvc := mocks.NewAwardService(t)
	tradeSvc := mocks.NewTradeService(t)
	h := NewHandler(awardSvc, tradeSvc, mocks.NewAuctionService(t), mocks.NewTicketService(t),
		mocks.NewTransferService(t), nil, zerolog.Nop())
	return h, awardSvc, tradeSvc
}

func TestHandler_BulkAward_Success(t *testing.T) {
	h, awardSvc, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/awards", h.BulkAward)

	reqBody := model.BulkAwardRequest{
		AccountIDs: []int64{1, 2},
		Amount:     50,
		Kind:       "award",
		Reason:     "group project",
	}
	body, _ := json.Marshal(reqBody)

	awardSvc.On("ApplyBulkAward", mock.Anything, mock.MatchedBy(func(r *model.BulkAwardRequest) bool {
		return r.Amount == 50 && r.Kind == "award"
	}), int64(99)).Return(&model.BulkAwardResponse{
		Status:   "success",
		Accounts: 2,
	}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/awards", bytes.NewBuffer(body))
	req.Header.Set("X-Account-ID", "99")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.BulkAwardResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Accounts)
}

func TestHandler_BulkAward_MissingActorHeader(t *testing.T) {
	h, awardSvc, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/awards", h.BulkAward)

	body, _ := json.Marshal(model.BulkAwardRequest{AccountIDs: []int64{1}, Amount: 50, Kind: "award"})
	req, _ := http.NewRequest(http.MethodPost, "/awards", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "UNAUTHENTICATED", resp.Code)
	awardSvc.AssertNotCalled(t, "ApplyBulkAward")
}

func TestHandler_BulkAward_InvalidBody(t *testing.T) {
	h, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/awards", h.BulkAward)

	req, _ := http.NewRequest(http.MethodPost, "/awards", bytes.NewBufferString(`{"amount":`))
	req.Header.Set("X-Account-ID", "99")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestHandler_BulkAward_InsufficientFunds(t *testing.T) {
	h, awardSvc, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/awards", h.BulkAward)

	body, _ := json.Marshal(model.BulkAwardRequest{AccountIDs: []int64{1}, Amount: 500, Kind: "penalize"})
	awardSvc.On("ApplyBulkAward", mock.Anything, mock.Anything, int64(99)).
		Return(nil, model.ErrInsufficientFunds)

	req, _ := http.NewRequest(http.MethodPost, "/awards", bytes.NewBuffer(body))
	req.Header.Set("X-Account-ID", "99")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INSUFFICIENT_FUNDS", resp.Code)
}

func TestHandler_GetBalance_Success(t *testing.T) {
	h, awardSvc, _ := newTestHandler(t)

	router := gin.New()
	router.GET("/accounts/:id/balance", h.GetBalance)

	awardSvc.On("GetBalance", mock.Anything, int64(7)).Return(&model.BalanceResponse{
		AccountID: 7,
		Balance:   1250,
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/accounts/7/balance", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.BalanceResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(1250), resp.Balance)
}

func TestHandler_GetBalance_NotFound(t *testing.T) {
	h, awardSvc, _ := newTestHandler(t)

	router := gin.New()
	router.GET("/accounts/:id/balance", h.GetBalance)

	awardSvc.On("GetBalance", mock.Anything, int64(404)).Return(nil, model.ErrAccountNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/accounts/404/balance", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", resp.Code)
}

func TestHandler_GetMultiplier_Success(t *testing.T) {
	h, awardSvc, _ := newTestHandler(t)

	router := gin.New()
	router.GET("/accounts/:id/multiplier", h.GetMultiplier)

	awardSvc.On("GetMultiplier", mock.Anything, int64(7)).Return(&model.MultiplierResponse{
		AccountID:  7,
		Multiplier: "2.5",
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/accounts/7/multiplier", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.MultiplierResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "2.5", resp.Multiplier)
}
