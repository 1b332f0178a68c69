package handler

import (
	"errors"
	"net/http"
	"strconv"

	"economy-engine/internal/model"
	"economy-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	awardService    service.AwardService
	tradeService    service.TradeService
	auctionService  service.AuctionService
	ticketService   service.TicketService
	transferService service.TransferService
	wsHandler       gin.HandlerFunc
	logger          zerolog.Logger
}

func NewHandler(
	awardService service.AwardService,
	tradeService service.TradeService,
	auctionService service.AuctionService,
	ticketService service.TicketService,
	transferService service.TransferService,
	wsHandler gin.HandlerFunc,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		awardService:    awardService,
		tradeService:    tradeService,
		auctionService:  auctionService,
		ticketService:   ticketService,
		transferService: transferService,
		wsHandler:       wsHandler,
		logger:          logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if h.wsHandler != nil {
		router.GET("/ws", h.wsHandler)
	}

	// API routes
	v1 := router.Group("/api/v1")

	accounts := v1.Group("/accounts")
	accounts.GET("/:id/balance", h.GetBalance)
	accounts.GET("/:id/multiplier", h.GetMultiplier)

	awards := v1.Group("/awards")
	awards.POST("", h.BulkAward)

	transfers := v1.Group("/transfers")
	transfers.POST("", h.Transfer)

	trades := v1.Group("/trades")
	trades.POST("", h.ProposeTrade)
	trades.GET("", h.ListTrades)
	trades.POST("/:id/accept", h.AcceptTrade)
	trades.POST("/:id/cancel", h.CancelTrade)

	auctions := v1.Group("/auctions")
	auctions.GET("", h.ListAuctions)
	auctions.POST("", h.CreateAuction)
	auctions.PATCH("/:id", h.UpdateAuction)
	auctions.POST("/:id/bids", h.PlaceBid)
	auctions.POST("/:id/close", h.CloseAuction)
	auctions.POST("/:id/deliver", h.DeliverAuction)

	tickets := v1.Group("/tickets")
	tickets.POST("", h.IssueTicket)
	tickets.GET("", h.ListTickets)
	tickets.POST("/redeem", h.RedeemTicket)
	tickets.POST("/:id/cancel", h.CancelTicket)

	return router
}

// actingAccount extracts the authenticated account from the X-Account-ID
// header. The gateway in front of the engine fills it in after verifying
// the session.
func (h *Handler) actingAccount(c *gin.Context) (int64, bool) {
	idStr := c.GetHeader("X-Account-ID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error: "X-Account-ID header is required",
			Code:  "UNAUTHENTICATED",
		})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidAwardKind):
		status = http.StatusBadRequest
		code = "INVALID_AWARD_KIND"
	case errors.Is(err, model.ErrInvalidBuffEffect):
		status = http.StatusBadRequest
		code = "INVALID_BUFF_EFFECT"
	case errors.Is(err, model.ErrInvalidState):
		status = http.StatusBadRequest
		code = "INVALID_STATE"
	case errors.Is(err, model.ErrSelfTarget):
		status = http.StatusBadRequest
		code = "SELF_TARGET"
	case errors.Is(err, model.ErrBidTooLow):
		status = http.StatusBadRequest
		code = "BID_TOO_LOW"
	case errors.Is(err, model.ErrUnfairTrade):
		status = http.StatusBadRequest
		code = "UNFAIR_TRADE"
	case errors.Is(err, model.ErrSkillNotTradable):
		status = http.StatusBadRequest
		code = "SKILL_NOT_TRADABLE"
	case errors.Is(err, model.ErrNoExemption):
		status = http.StatusBadRequest
		code = "NO_EXEMPTION"
	case errors.Is(err, model.ErrItemNotOwned):
		status = http.StatusForbidden
		code = "ITEM_NOT_OWNED"
	case errors.Is(err, model.ErrNotParticipant):
		status = http.StatusForbidden
		code = "NOT_PARTICIPANT"
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		code = "ACCOUNT_NOT_FOUND"
	case errors.Is(err, model.ErrSlotNotFound):
		status = http.StatusNotFound
		code = "SLOT_NOT_FOUND"
	case errors.Is(err, model.ErrTradeNotFound):
		status = http.StatusNotFound
		code = "TRADE_NOT_FOUND"
	case errors.Is(err, model.ErrLotNotFound):
		status = http.StatusNotFound
		code = "LOT_NOT_FOUND"
	case errors.Is(err, model.ErrTicketNotFound):
		status = http.StatusNotFound
		code = "TICKET_NOT_FOUND"
	case errors.Is(err, model.ErrConflict):
		status = http.StatusConflict
		code = "CONFLICT"
	case errors.Is(err, model.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
		code = "STORE_UNAVAILABLE"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
