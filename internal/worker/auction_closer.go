package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"economy-engine/internal/model"
	"economy-engine/internal/repository"
	"economy-engine/internal/service"

	"github.com/rs/zerolog"
)

// systemActorID marks audit entries written by the scheduler rather than a
// person.
const systemActorID = 0

// AuctionCloser periodically sweeps open lots whose end time has passed and
// settles them.
type AuctionCloser struct {
	auctionSvc  service.AuctionService
	auctionRepo repository.AuctionRepository
	interval    time.Duration
	batchSize   int
	logger      zerolog.Logger
	stopChan    chan struct{}
	wg          *sync.WaitGroup
}

func NewAuctionCloser(svc service.AuctionService, repo repository.AuctionRepository, interval time.Duration, batchSize int, logger zerolog.Logger) *AuctionCloser {
	return &AuctionCloser{
		auctionSvc:  svc,
		auctionRepo: repo,
		interval:    interval,
		batchSize:   batchSize,
		logger:      logger,
		stopChan:    make(chan struct{}),
		wg:          &sync.WaitGroup{},
	}
}

func (w *AuctionCloser) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Auction closer started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Sweeping expired auctions")
				if err := w.sweep(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to sweep expired auctions")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Auction closer stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Auction closer stopping (context done)")
				return
			}
		}
	}()
}

func (w *AuctionCloser) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

// sweep closes every expired open lot, up to the batch size per tick. An
// operator closing a lot mid-sweep is fine; the second closer just loses
// the status race and moves on.
func (w *AuctionCloser) sweep(ctx context.Context) error {
	lots, err := w.auctionRepo.ListExpiredOpen(ctx, time.Now(), w.batchSize)
	if err != nil {
		return err
	}
	for _, lot := range lots {
		resp, err := w.auctionSvc.Close(ctx, lot.LotID, systemActorID)
		if err != nil {
			if errors.Is(err, model.ErrInvalidState) {
				continue
			}
			w.logger.Error().Err(err).Str("lot_id", lot.LotID).Msg("Failed to close expired lot")
			continue
		}
		w.logger.Info().Str("lot_id", lot.LotID).Str("status", resp.Status).
			Interface("winner_id", resp.WinnerID).Msg("Expired lot closed")
	}
	return nil
}
