package handler

import (
	"net/http"

	"economy-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// ListAuctions
// @Summary List open auction lots
// @Tags auctions
// @Produce json
// @Success 200 {array} model.AuctionLot
// @Router /auctions [get]
func (h *Handler) ListAuctions(c *gin.Context) {
	lots, err := h.auctionService.ListOpen(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lots)
}

// CreateAuction
// @Summary Create an auction lot
// @Tags auctions
// @Accept json
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param request body model.CreateLotRequest true "Lot details"
// @Success 201 {object} model.AuctionLot
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /auctions [post]
func (h *Handler) CreateAuction(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	var req model.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	lot, err := h.auctionService.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lot)
}

// UpdateAuction
// @Summary Edit an open lot
// @Description Everything is editable before the first bid; afterwards only the title and description.
// @Tags auctions
// @Accept json
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param id path string true "Lot ID"
// @Param request body model.UpdateLotRequest true "Fields to change"
// @Success 200 {object} model.AuctionLot
// @Failure 400 {object} model.ErrorResponse "Invalid state"
// @Failure 404 {object} model.ErrorResponse "Lot not found"
// @Router /auctions/{id} [patch]
func (h *Handler) UpdateAuction(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	var req model.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	lot, err := h.auctionService.Update(c.Request.Context(), c.Param("id"), &req, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lot)
}

// PlaceBid
// @Summary Bid on an open lot
// @Description Records a bid strictly above the current high. No funds are held until the lot closes.
// @Tags auctions
// @Accept json
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param id path string true "Lot ID"
// @Param request body model.BidRequest true "Bid amount"
// @Success 200 {object} model.AuctionLot
// @Failure 400 {object} model.ErrorResponse "Bid too low"
// @Failure 404 {object} model.ErrorResponse "Lot not found"
// @Router /auctions/{id}/bids [post]
func (h *Handler) PlaceBid(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	var req model.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	lot, err := h.auctionService.PlaceBid(c.Request.Context(), c.Param("id"), actorID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lot)
}

// CloseAuction
// @Summary Close an open lot
// @Description Finalizes the lot and debits the winner. Safe to race with the scheduled sweep.
// @Tags auctions
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param id path string true "Lot ID"
// @Success 200 {object} model.CloseLotResponse
// @Failure 400 {object} model.ErrorResponse "Invalid state"
// @Failure 404 {object} model.ErrorResponse "Lot not found"
// @Router /auctions/{id}/close [post]
func (h *Handler) CloseAuction(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	resp, err := h.auctionService.Close(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeliverAuction
// @Summary Deliver a finalized lot
// @Description Mints the won item into the winner's inventory, or their room's for house items.
// @Tags auctions
// @Produce json
// @Param X-Account-ID header int true "Acting account"
// @Param id path string true "Lot ID"
// @Success 200 {object} model.CloseLotResponse
// @Failure 400 {object} model.ErrorResponse "Invalid state"
// @Failure 404 {object} model.ErrorResponse "Lot not found"
// @Router /auctions/{id}/deliver [post]
func (h *Handler) DeliverAuction(c *gin.Context) {
	actorID, ok := h.actingAccount(c)
	if !ok {
		return
	}

	resp, err := h.auctionService.Deliver(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
