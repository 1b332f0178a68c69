package service

import (
	"context"
	"fmt"
	"time"

	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type AuctionServiceImpl struct {
	accountRepo   repository.AccountRepository
	inventoryRepo repository.InventoryRepository
	auctionRepo   repository.AuctionRepository
	auditRepo     repository.AuditRepository
	dbManager     repository.DBManager
	notifier      AuctionNotifier
	logger        zerolog.Logger
}

func NewAuctionService(
	accountRepo repository.AccountRepository,
	inventoryRepo repository.InventoryRepository,
	auctionRepo repository.AuctionRepository,
	auditRepo repository.AuditRepository,
	dbManager repository.DBManager,
	notifier AuctionNotifier,
	logger zerolog.Logger,
) AuctionService {
	return &AuctionServiceImpl{
		accountRepo:   accountRepo,
		inventoryRepo: inventoryRepo,
		auctionRepo:   auctionRepo,
		auditRepo:     auditRepo,
		dbManager:     dbManager,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *AuctionServiceImpl) Create(ctx context.Context, req *model.CreateLotRequest, actorID int64) (*model.AuctionLot, error) {
	if req.MinBid <= 0 {
		return nil, fmt.Errorf("%w: minimum bid must be positive", model.ErrInvalidAmount)
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time must be RFC 3339", model.ErrInvalidAmount)
	}
	if !endTime.After(time.Now()) {
		return nil, fmt.Errorf("%w: end_time is in the past", model.ErrInvalidAmount)
	}

	lot := &model.AuctionLot{
		LotID:        uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		ItemRef:      req.ItemRef,
		MinBid:       req.MinBid,
		CurrentBid:   req.MinBid,
		HouseItem:    req.HouseItem,
		ValidityDays: req.ValidityDays,
		EndTime:      endTime,
		Status:       model.LotOpen,
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.auctionRepo.InsertLot(ctx, lot, tx); err != nil {
			return err
		}
		return s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID: actorID,
			Action:  "AUCTION_CREATED",
			Detail:  fmt.Sprintf("Lot %s (%s), minimum %d PC$, ends %s", lot.LotID, lot.Title, lot.MinBid, lot.EndTime.Format(time.RFC3339)),
		}, tx)
	})
	if err != nil {
		return nil, fmt.Errorf("create lot: %w", err)
	}

	s.logger.Info().Str("lot_id", lot.LotID).Int64("min_bid", lot.MinBid).Msg("auction lot created")
	s.notifier.LotUpdated(lot)
	return lot, nil
}

// Update edits lot metadata. Before the first bid everything may change;
// once someone has bid, the minimum bid and end time are frozen so bidders'
// expectations hold, and only the descriptive fields stay editable.
func (s *AuctionServiceImpl) Update(ctx context.Context, lotID string, req *model.UpdateLotRequest, actorID int64) (*model.AuctionLot, error) {
	var lot *model.AuctionLot

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		lot, err = s.auctionRepo.GetLotForUpdate(ctx, lotID, tx)
		if err != nil {
			return fmt.Errorf("get lot for update: %w", err)
		}
		if lot.Status != model.LotOpen {
			return fmt.Errorf("%w: lot is %s", model.ErrInvalidState, lot.Status)
		}

		hasBids := lot.CurrentBidderID != nil

		if req.Title != nil {
			lot.Title = *req.Title
		}
		if req.Description != nil {
			lot.Description = *req.Description
		}
		if req.MinBid != nil {
			if hasBids {
				return fmt.Errorf("%w: minimum bid is frozen after the first bid", model.ErrInvalidState)
			}
			if *req.MinBid <= 0 {
				return fmt.Errorf("%w: minimum bid must be positive", model.ErrInvalidAmount)
			}
			lot.MinBid = *req.MinBid
			lot.CurrentBid = *req.MinBid
		}
		if req.EndTime != nil {
			if hasBids {
				return fmt.Errorf("%w: end time is frozen after the first bid", model.ErrInvalidState)
			}
			endTime, err := time.Parse(time.RFC3339, *req.EndTime)
			if err != nil {
				return fmt.Errorf("%w: end_time must be RFC 3339", model.ErrInvalidAmount)
			}
			if !endTime.After(time.Now()) {
				return fmt.Errorf("%w: end_time is in the past", model.ErrInvalidAmount)
			}
			lot.EndTime = endTime
		}

		return s.auctionRepo.UpdateLotFields(ctx, lot, tx)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.LotUpdated(lot)
	return lot, nil
}

// PlaceBid records a strictly higher bid on an open, unexpired lot. No
// funds are held: a bid is a promise, checked against the balance when the
// lot closes.
func (s *AuctionServiceImpl) PlaceBid(ctx context.Context, lotID string, bidderID, amount int64) (*model.AuctionLot, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: bid must be positive", model.ErrInvalidAmount)
	}

	var lot *model.AuctionLot
	var previousBidder *int64

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		lot, err = s.auctionRepo.GetLotForUpdate(ctx, lotID, tx)
		if err != nil {
			return fmt.Errorf("get lot for update: %w", err)
		}
		if lot.Status != model.LotOpen {
			return fmt.Errorf("%w: lot is %s", model.ErrInvalidState, lot.Status)
		}
		if time.Now().After(lot.EndTime) {
			return fmt.Errorf("%w: bidding has ended", model.ErrInvalidState)
		}
		if amount <= lot.CurrentBid {
			return fmt.Errorf("%w: current highest is %d", model.ErrBidTooLow, lot.CurrentBid)
		}
		if _, err := s.accountRepo.GetAccount(ctx, bidderID, tx); err != nil {
			return fmt.Errorf("get bidder: %w", err)
		}

		previousBidder = lot.CurrentBidderID

		bid := &model.Bid{LotID: lot.ID, BidderID: bidderID, Amount: amount}
		if err := s.auctionRepo.RecordBid(ctx, lot.ID, bid, tx); err != nil {
			return fmt.Errorf("record bid: %w", err)
		}
		lot.CurrentBid = amount
		lot.CurrentBidderID = &bidderID
		lot.BidCount++

		return s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID: bidderID,
			Action:  "BID_PLACED",
			Detail:  fmt.Sprintf("Bid %d PC$ on %s (%s)", amount, lot.Title, lot.LotID),
		}, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lot_id", lotID).Int64("bidder_id", bidderID).Int64("amount", amount).Msg("bid placed")
	s.notifier.LotUpdated(lot)
	if previousBidder != nil && *previousBidder != bidderID {
		s.notifier.Outbid(*previousBidder, lot)
	}
	return lot, nil
}

// Close finalizes an open lot. The winning bid is debited here, not at bid
// time; a winner who has since spent the money forfeits the lot, which
// finalizes with no winner. Guarded by the open-status precondition so the
// scheduler and an operator can both call it without double-settling.
func (s *AuctionServiceImpl) Close(ctx context.Context, lotID string, actorID int64) (*model.CloseLotResponse, error) {
	var resp *model.CloseLotResponse
	var lot *model.AuctionLot

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		lot, err = s.auctionRepo.GetLotForUpdate(ctx, lotID, tx)
		if err != nil {
			return fmt.Errorf("get lot for update: %w", err)
		}
		if lot.Status != model.LotOpen {
			return fmt.Errorf("%w: lot is %s", model.ErrInvalidState, lot.Status)
		}

		if lot.CurrentBidderID == nil {
			if _, err := s.auctionRepo.FinalizeLot(ctx, lot.ID, nil, tx); err != nil {
				return fmt.Errorf("finalize lot: %w", err)
			}
			lot.Status = model.LotFinalized
			resp = &model.CloseLotResponse{Status: string(model.LotFinalized), Message: "No bids"}
			return nil
		}

		winnerID := *lot.CurrentBidderID
		winner, err := s.accountRepo.GetAccountForUpdate(ctx, winnerID, tx)
		if err != nil {
			return fmt.Errorf("get winner for update: %w", err)
		}

		if winner.Balance < lot.CurrentBid {
			// The promised funds are gone. The lot still finalizes, just
			// with no winner, and the forfeit is logged.
			if _, err := s.auctionRepo.FinalizeLot(ctx, lot.ID, nil, tx); err != nil {
				return fmt.Errorf("finalize lot: %w", err)
			}
			lot.Status = model.LotFinalized
			if err := s.auditRepo.Append(ctx, &model.AuditEntry{
				ActorID:  actorID,
				TargetID: &winnerID,
				Action:   "AUCTION_FORFEIT",
				Detail: fmt.Sprintf("Lot %s: top bidder %d could not cover %d PC$ at close",
					lot.LotID, winnerID, lot.CurrentBid),
			}, tx); err != nil {
				return err
			}
			resp = &model.CloseLotResponse{Status: string(model.LotFinalized),
				Message: "Top bidder could not cover the bid; lot finalized with no winner"}
			return nil
		}

		if err := s.accountRepo.UpdateBalance(ctx, winnerID, winner.Balance-lot.CurrentBid, tx); err != nil {
			return fmt.Errorf("debit winner: %w", err)
		}
		if _, err := s.auctionRepo.FinalizeLot(ctx, lot.ID, &winnerID, tx); err != nil {
			return fmt.Errorf("finalize lot: %w", err)
		}
		lot.Status = model.LotFinalized
		lot.WinnerID = &winnerID

		if err := s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID:  actorID,
			TargetID: &winnerID,
			Action:   "AUCTION_WON",
			Detail:   fmt.Sprintf("Won %s (%s) for %d PC$", lot.Title, lot.LotID, lot.CurrentBid),
		}, tx); err != nil {
			return err
		}

		resp = &model.CloseLotResponse{
			Status:   string(model.LotFinalized),
			WinnerID: &winnerID,
			Amount:   lot.CurrentBid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lot_id", lotID).Interface("winner_id", resp.WinnerID).Msg("auction closed")
	s.notifier.LotUpdated(lot)
	return resp, nil
}

// Deliver mints the inventory slot for the winner of a finalized lot.
// House items land in the winner's room inventory, personal items in the
// winner's own.
func (s *AuctionServiceImpl) Deliver(ctx context.Context, lotID string, actorID int64) (*model.CloseLotResponse, error) {
	var resp *model.CloseLotResponse

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		lot, err := s.auctionRepo.GetLotForUpdate(ctx, lotID, tx)
		if err != nil {
			return fmt.Errorf("get lot for update: %w", err)
		}
		if lot.Status != model.LotFinalized || lot.WinnerID == nil {
			return fmt.Errorf("%w: lot is not finalized with a winner", model.ErrInvalidState)
		}

		winner, err := s.accountRepo.GetAccount(ctx, *lot.WinnerID, tx)
		if err != nil {
			return fmt.Errorf("get winner: %w", err)
		}

		var expiresAt *time.Time
		if lot.ValidityDays > 0 {
			t := time.Now().AddDate(0, 0, lot.ValidityDays)
			expiresAt = &t
		}

		ownerKind, ownerID := model.OwnerKindUser, winner.ID
		if lot.HouseItem {
			ownerKind, ownerID = model.OwnerKindRoom, winner.RoomID
		}

		slot := &model.InventorySlot{
			OwnerKind:  ownerKind,
			OwnerID:    ownerID,
			AcquiredBy: winner.ID,
			Kind:       model.SlotKindItem,
			ItemRef:    lot.ItemRef,
			Name:       lot.Title,
			BasePrice:  lot.CurrentBid,
			Quantity:   1,
			Origin:     model.OriginAuction,
			ExpiresAt:  expiresAt,
		}
		if err := s.inventoryRepo.InsertSlot(ctx, slot, tx); err != nil {
			return fmt.Errorf("insert won slot: %w", err)
		}

		delivered, err := s.auctionRepo.MarkDelivered(ctx, lot.ID, tx)
		if err != nil {
			return fmt.Errorf("mark delivered: %w", err)
		}
		if !delivered {
			return model.ErrConflict
		}

		if err := s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID:  actorID,
			TargetID: lot.WinnerID,
			Action:   "AUCTION_DELIVERED",
			Detail:   fmt.Sprintf("Delivered %s (%s) to account %d", lot.Title, lot.LotID, *lot.WinnerID),
		}, tx); err != nil {
			return err
		}

		resp = &model.CloseLotResponse{Status: string(model.LotDelivered), WinnerID: lot.WinnerID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lot_id", lotID).Msg("auction lot delivered")
	return resp, nil
}

func (s *AuctionServiceImpl) ListOpen(ctx context.Context) ([]*model.AuctionLot, error) {
	lots, err := s.auctionRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open lots: %w", err)
	}
	return lots, nil
}
