package handler

import (
	"net/http"
	"strconv"

	"economy-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// IssueTicket
// @Summary Issue a redemption ticket
// @Description Consumes one unit or charge of an owned slot and mints a single-use redemption code.
// @Tags tickets
// @Accept json
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param request body model.IssueTicketRequest true "Slot to redeem from"
// @Success 201 {object} model.TicketResponse
// @Failure 400 {object} model.ErrorResponse "Nothing left to redeem"
// @Failure 403 {object} model.ErrorResponse "Item not owned"
// @Router /tickets [post]
func (h *Handler) IssueTicket(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	var req model.IssueTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.ticketService.Issue(c.Request.Context(), req.SlotID, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RedeemTicket
// @Summary Redeem a ticket by its code
// @Description Settles an active ticket exactly once. A second presentation of the same code fails.
// @Tags tickets
// @Accept json
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param request body model.RedeemTicketRequest true "Ticket code"
// @Success 200 {object} model.TicketResponse
// @Failure 400 {object} model.ErrorResponse "Already settled"
// @Failure 404 {object} model.ErrorResponse "Ticket not found"
// @Router /tickets/redeem [post]
func (h *Handler) RedeemTicket(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	var req model.RedeemTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.ticketService.Redeem(c.Request.Context(), req.Hash, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelTicket
// @Summary Cancel an active ticket
// @Description Voids the ticket and returns the consumed unit to the owner's inventory.
// @Tags tickets
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param id path int true "Ticket ID"
// @Success 200 {object} model.TicketResponse
// @Failure 400 {object} model.ErrorResponse "Already settled"
// @Failure 403 {object} model.ErrorResponse "Not the owner"
// @Router /tickets/{id}/cancel [post]
func (h *Handler) CancelTicket(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.handleError(c, model.ErrTicketNotFound)
		return
	}

	resp, err := h.ticketService.Cancel(c.Request.Context(), ticketID, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTickets
// @Summary List my tickets
// @Tags tickets
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Success 200 {array} model.RedemptionTicket
// @Router /tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListMine(c.Request.Context(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}
