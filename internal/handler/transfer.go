package handler

import (
	"net/http"

	"economy-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// Transfer
// @Summary Send currency to another account
// @Description Moves currency between two accounts and charges the flat fee, unless a tax exemption waives it.
// @Tags transfers
// @Accept json
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param request body model.TransferRequest true "Transfer details"
// @Success 200 {object} model.TransferResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient funds or bad request"
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /transfers [post]
func (h *Handler) Transfer(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	var req model.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.transferService.Transfer(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
