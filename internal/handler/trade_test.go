package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"economy-engine/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_ProposeTrade_Created(t *testing.T) {
	h, _, tradeSvc := newTestHandler(t)

	router := gin.New()
	router.POST("/trades", h.ProposeTrade)

	reqBody := model.TradeProposalRequest{
		TargetID:       2,
		OfferInitiator: model.OfferPayload{Currency: 300, SlotIDs: []int64{10}},
		OfferTarget:    model.OfferPayload{Currency: 400},
	}
	body, _ := json.Marshal(reqBody)

	tradeSvc.On("Propose", mock.Anything, mock.MatchedBy(func(r *model.TradeProposalRequest) bool {
		return r.TargetID == 2
	}), int64(1)).Return(&model.TradeResponse{
		TradeID:       "550e8400-e29b-41d4-a716-446655440000",
		Status:        "pending",
		FairnessRatio: "0.875",
	}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/trades", bytes.NewBuffer(body))
	req.Header.Set("X-Account-ID", "1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.TradeResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "0.875", resp.FairnessRatio)
}

func TestHandler_ProposeTrade_Unfair(t *testing.T) {
	h, _, tradeSvc := newTestHandler(t)

	router := gin.New()
	router.POST("/trades", h.ProposeTrade)

	body, _ := json.Marshal(model.TradeProposalRequest{
		TargetID:    2,
		OfferTarget: model.OfferPayload{Currency: 500},
	})
	tradeSvc.On("Propose", mock.Anything, mock.Anything, int64(1)).
		Return(nil, model.ErrUnfairTrade)

	req, _ := http.NewRequest(http.MethodPost, "/trades", bytes.NewBuffer(body))
	req.Header.Set("X-Account-ID", "1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "UNFAIR_TRADE", resp.Code)
}

func TestHandler_AcceptTrade_Success(t *testing.T) {
	h, _, tradeSvc := newTestHandler(t)

	router := gin.New()
	router.POST("/trades/:id/accept", h.AcceptTrade)

	tradeSvc.On("Accept", mock.Anything, "t-1", int64(2)).Return(&model.TradeResponse{
		TradeID: "t-1",
		Status:  "accepted",
	}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/trades/t-1/accept", nil)
	req.Header.Set("X-Account-ID", "2")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.TradeResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "accepted", resp.Status)
}

func TestHandler_AcceptTrade_NotParticipant(t *testing.T) {
	h, _, tradeSvc := newTestHandler(t)

	router := gin.New()
	router.POST("/trades/:id/accept", h.AcceptTrade)

	tradeSvc.On("Accept", mock.Anything, "t-1", int64(9)).Return(nil, model.ErrNotParticipant)

	req, _ := http.NewRequest(http.MethodPost, "/trades/t-1/accept", nil)
	req.Header.Set("X-Account-ID", "9")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "NOT_PARTICIPANT", resp.Code)
}

func TestHandler_AcceptTrade_SettlementConflict(t *testing.T) {
	h, _, tradeSvc := newTestHandler(t)

	router := gin.New()
	router.POST("/trades/:id/accept", h.AcceptTrade)

	tradeSvc.On("Accept", mock.Anything, "t-1", int64(2)).Return(nil, model.ErrConflict)

	req, _ := http.NewRequest(http.MethodPost, "/trades/t-1/accept", nil)
	req.Header.Set("X-Account-ID", "2")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelTrade_Success(t *testing.T) {
	h, _, tradeSvc := newTestHandler(t)

	router := gin.New()
	router.POST("/trades/:id/cancel", h.CancelTrade)

	tradeSvc.On("Cancel", mock.Anything, "t-1", int64(1)).Return(&model.TradeResponse{
		TradeID: "t-1",
		Status:  "cancelled",
	}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/trades/t-1/cancel", nil)
	req.Header.Set("X-Account-ID", "1")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
