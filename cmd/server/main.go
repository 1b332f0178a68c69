package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"economy-engine/internal/config"
	"economy-engine/internal/database"
	"economy-engine/internal/handler"
	"economy-engine/internal/logger"
	"economy-engine/internal/notifier"
	"economy-engine/internal/repository/postgres"
	"economy-engine/internal/service"
	"economy-engine/internal/skills"
	"economy-engine/internal/worker"

	_ "economy-engine/docs"
)

// @title Economy Engine API
// @version 1.0
// @description Transactional engine for the PC$ school economy: awards, trades, auctions and redemption tickets
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	inventoryRepo := postgres.NewInventoryRepository(dbPool)
	tradeRepo := postgres.NewTradeRepository(dbPool)
	auctionRepo := postgres.NewAuctionRepository(dbPool)
	ticketRepo := postgres.NewTicketRepository(dbPool)
	auditRepo := postgres.NewAuditRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Websocket hub for auction updates
	hub := notifier.NewHub(log)

	// Services
	granter := skills.NewGranter(accountRepo, inventoryRepo, log)
	awardService := service.NewAwardService(accountRepo, auditRepo, txManager, granter, cfg.Economy, log)
	tradeService := service.NewTradeService(accountRepo, inventoryRepo, tradeRepo, auditRepo, txManager, cfg.Economy, log)
	auctionService := service.NewAuctionService(accountRepo, inventoryRepo, auctionRepo, auditRepo, txManager, hub, log)
	ticketService := service.NewTicketService(accountRepo, inventoryRepo, ticketRepo, auditRepo, txManager, log)
	transferService := service.NewTransferService(accountRepo, inventoryRepo, auditRepo, txManager, cfg.Economy, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker sweeping expired auction lots
	auctionCloser := worker.NewAuctionCloser(auctionService, auctionRepo,
		cfg.Worker.AuctionCloseInterval, cfg.Worker.AuctionCloseBatch, log)
	auctionCloser.Start(ctx)
	defer auctionCloser.Stop()

	// http handler
	h := handler.NewHandler(awardService, tradeService, auctionService, ticketService, transferService, hub.Handler, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
