package handler

import (
	"net/http"

	"economy-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// ProposeTrade
// @Summary Propose a trade
// @Description Opens a two-sided negotiation with currency and items on each side. Unfair offers are rejected when fairness enforcement is on.
// @Tags trades
// @Accept json
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param request body model.TradeProposalRequest true "Proposal"
// @Success 201 {object} model.TradeResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Item not owned"
// @Router /trades [post]
func (h *Handler) ProposeTrade(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	var req model.TradeProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.tradeService.Propose(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AcceptTrade
// @Summary Accept a pending trade
// @Description Settles the trade atomically. Only the target account may accept.
// @Tags trades
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param id path string true "Trade ID"
// @Success 200 {object} model.TradeResponse
// @Failure 400 {object} model.ErrorResponse "Invalid state"
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Router /trades/{id}/accept [post]
func (h *Handler) AcceptTrade(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	resp, err := h.tradeService.Accept(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelTrade
// @Summary Cancel a pending trade
// @Description Either participant may cancel while the trade is still pending.
// @Tags trades
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param id path string true "Trade ID"
// @Success 200 {object} model.TradeResponse
// @Failure 400 {object} model.ErrorResponse "Invalid state"
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Router /trades/{id}/cancel [post]
func (h *Handler) CancelTrade(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	resp, err := h.tradeService.Cancel(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTrades
// @Summary List my pending trades
// @Description Returns the pending negotiations the acting account is part of
// @Tags trades
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Success 200 {array} model.Trade
// @Router /trades [get]
func (h *Handler) ListTrades(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	trades, err := h.tradeService.ListMine(c.Request.Context(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trades)
}
