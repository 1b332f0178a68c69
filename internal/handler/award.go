package handler

import (
	"net/http"
	"strconv"

	"economy-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// BulkAward
// @Summary Apply a bulk award or penalty
// @Description Credits or debits every named account in one atomic batch. Awards are scaled by each account's multiplier; penalties are applied flat.
// @Tags awards
// @Accept json
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param request body model.BulkAwardRequest true "Batch details"
// @Success 200 {object} model.BulkAwardResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /awards [post]
func (h *Handler) BulkAward(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	var req model.BulkAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.awardService.ApplyBulkAward(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBalance
// @Summary Get account balance
// @Description Returns the current balance for an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /accounts/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.handleError(c, model.ErrAccountNotFound)
		return
	}

	resp, err := h.awardService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMultiplier
// @Summary Get effective reward multiplier
// @Description Resolves the account's current reward multiplier from its live buffs and roles
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} model.MultiplierResponse
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /accounts/{id}/multiplier [get]
func (h *Handler) GetMultiplier(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.handleError(c, model.ErrAccountNotFound)
		return
	}

	resp, err := h.awardService.GetMultiplier(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
