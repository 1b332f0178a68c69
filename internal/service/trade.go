package service

import (
	"context"
	"fmt"

	"economy-engine/internal/config"
	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type TradeServiceImpl struct {
	accountRepo   repository.AccountRepository
	inventoryRepo repository.InventoryRepository
	tradeRepo     repository.TradeRepository
	auditRepo     repository.AuditRepository
	dbManager     repository.DBManager
	cfg           config.EconomyConfig
	logger        zerolog.Logger
}

func NewTradeService(
	accountRepo repository.AccountRepository,
	inventoryRepo repository.InventoryRepository,
	tradeRepo repository.TradeRepository,
	auditRepo repository.AuditRepository,
	dbManager repository.DBManager,
	cfg config.EconomyConfig,
	logger zerolog.Logger,
) TradeService {
	return &TradeServiceImpl{
		accountRepo:   accountRepo,
		inventoryRepo: inventoryRepo,
		tradeRepo:     tradeRepo,
		auditRepo:     auditRepo,
		dbManager:     dbManager,
		cfg:           cfg,
		logger:        logger,
	}
}

// Propose validates both offers and records a pending negotiation. Nothing
// is escrowed: items and currency stay with their holders until acceptance,
// and the settlement re-validates everything then.
func (s *TradeServiceImpl) Propose(ctx context.Context, req *model.TradeProposalRequest, initiatorID int64) (*model.TradeResponse, error) {
	if req.TargetID == initiatorID {
		return nil, model.ErrSelfTarget
	}
	if req.OfferInitiator.Currency < 0 || req.OfferTarget.Currency < 0 {
		return nil, fmt.Errorf("%w: offered currency cannot be negative", model.ErrInvalidAmount)
	}

	if _, err := s.accountRepo.GetAccount(ctx, req.TargetID); err != nil {
		return nil, fmt.Errorf("get target account: %w", err)
	}

	slotsInit, err := s.validateOfferSlots(ctx, req.OfferInitiator.SlotIDs, initiatorID)
	if err != nil {
		return nil, err
	}
	slotsTarget, err := s.validateOfferSlots(ctx, req.OfferTarget.SlotIDs, req.TargetID)
	if err != nil {
		return nil, err
	}

	totalInit := model.OfferTotal(req.OfferInitiator.Currency, slotsInit)
	totalTarget := model.OfferTotal(req.OfferTarget.Currency, slotsTarget)
	ratio := model.FairnessRatio(totalInit, totalTarget)

	if s.cfg.EnforceFairness {
		threshold := decimal.NewFromFloat(s.cfg.FairnessThreshold)
		if ratio.LessThan(threshold) {
			return nil, fmt.Errorf("%w: ratio %s below %s", model.ErrUnfairTrade,
				ratio.String(), threshold.String())
		}
	}

	trade := &model.Trade{
		TradeID:     uuid.New().String(),
		InitiatorID: initiatorID,
		TargetID:    req.TargetID,
		OfferInitiator: model.Offer{
			Currency: req.OfferInitiator.Currency,
			SlotIDs:  req.OfferInitiator.SlotIDs,
		},
		OfferTarget: model.Offer{
			Currency: req.OfferTarget.Currency,
			SlotIDs:  req.OfferTarget.SlotIDs,
		},
		FairnessRatio: ratio,
		Status:        model.TradePending,
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		return s.tradeRepo.InsertTrade(ctx, trade, tx)
	})
	if err != nil {
		return nil, fmt.Errorf("insert trade: %w", err)
	}

	s.logger.Info().
		Str("trade_id", trade.TradeID).
		Int64("initiator_id", initiatorID).
		Int64("target_id", req.TargetID).
		Str("fairness", ratio.String()).
		Msg("trade proposed")

	return &model.TradeResponse{
		TradeID:       trade.TradeID,
		Status:        string(trade.Status),
		FairnessRatio: ratio.String(),
	}, nil
}

// validateOfferSlots checks each referenced slot currently belongs to the
// stated holder and is an exchangeable item. Skills are never tradable.
func (s *TradeServiceImpl) validateOfferSlots(ctx context.Context, slotIDs []int64, holderID int64) ([]*model.InventorySlot, error) {
	slots := make([]*model.InventorySlot, 0, len(slotIDs))
	for _, id := range slotIDs {
		slot, err := s.inventoryRepo.GetSlot(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get slot %d: %w", id, err)
		}
		if slot.Kind == model.SlotKindSkill {
			return nil, model.ErrSkillNotTradable
		}
		if !heldBy(slot, holderID) {
			return nil, fmt.Errorf("%w: slot %d", model.ErrItemNotOwned, id)
		}
		if !slot.Consumable() {
			return nil, fmt.Errorf("%w: slot %d is empty", model.ErrItemNotOwned, id)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// heldBy reports whether the account can dispose of the slot: direct
// ownership for user slots, acquisition for room-held slots.
func heldBy(slot *model.InventorySlot, accountID int64) bool {
	switch slot.OwnerKind {
	case model.OwnerKindUser:
		return slot.OwnerID == accountID
	case model.OwnerKindRoom:
		return slot.AcquiredBy == accountID
	}
	return false
}

// Accept settles a pending negotiation atomically. Only the target may
// accept. Balances and item ownership are re-validated under row locks;
// when a referenced item was traded away in the meantime the settlement
// fails whole and the negotiation stays pending.
func (s *TradeServiceImpl) Accept(ctx context.Context, tradeID string, actingID int64) (*model.TradeResponse, error) {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trade, err := s.tradeRepo.GetTradeForUpdate(ctx, tradeID, tx)
		if err != nil {
			return fmt.Errorf("get trade for update: %w", err)
		}
		if trade.Status != model.TradePending {
			return fmt.Errorf("%w: trade is %s", model.ErrInvalidState, trade.Status)
		}
		if trade.TargetID != actingID {
			return fmt.Errorf("%w: only the target may accept", model.ErrNotParticipant)
		}

		// Both parties locked in ascending-ID order so two settlements
		// touching the same pair cannot deadlock.
		accounts, err := s.accountRepo.GetAccountsForUpdate(ctx, []int64{trade.InitiatorID, trade.TargetID}, tx)
		if err != nil {
			return fmt.Errorf("lock accounts: %w", err)
		}
		byID := map[int64]*model.Account{}
		for _, acc := range accounts {
			byID[acc.ID] = acc
		}
		initiator, target := byID[trade.InitiatorID], byID[trade.TargetID]

		if initiator.Balance < trade.OfferInitiator.Currency {
			return fmt.Errorf("%w: initiator cannot cover the offer", model.ErrInsufficientFunds)
		}
		if target.Balance < trade.OfferTarget.Currency {
			return fmt.Errorf("%w: target cannot cover the offer", model.ErrInsufficientFunds)
		}

		if err := s.moveOfferItems(ctx, tx, trade.OfferInitiator.SlotIDs, initiator, target); err != nil {
			return err
		}
		if err := s.moveOfferItems(ctx, tx, trade.OfferTarget.SlotIDs, target, initiator); err != nil {
			return err
		}

		// Currency nets out to zero across the pair: awards are the only
		// operation that mints PC$.
		newInitiator := initiator.Balance - trade.OfferInitiator.Currency + trade.OfferTarget.Currency
		newTarget := target.Balance - trade.OfferTarget.Currency + trade.OfferInitiator.Currency
		if newInitiator < 0 || newTarget < 0 {
			return model.ErrInsufficientFunds
		}
		if err := s.accountRepo.UpdateBalance(ctx, initiator.ID, newInitiator, tx); err != nil {
			return fmt.Errorf("update initiator balance: %w", err)
		}
		if err := s.accountRepo.UpdateBalance(ctx, target.ID, newTarget, tx); err != nil {
			return fmt.Errorf("update target balance: %w", err)
		}

		updated, err := s.tradeRepo.SetStatus(ctx, trade.ID, model.TradePending, model.TradeAccepted, tx)
		if err != nil {
			return fmt.Errorf("set trade status: %w", err)
		}
		if !updated {
			return model.ErrConflict
		}

		targetID := trade.TargetID
		return s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID:  actingID,
			TargetID: &targetID,
			Action:   "TRADE_SETTLED",
			Detail: fmt.Sprintf("Trade %s settled: %d PC$ + %d item(s) against %d PC$ + %d item(s)",
				trade.TradeID, trade.OfferInitiator.Currency, len(trade.OfferInitiator.SlotIDs),
				trade.OfferTarget.Currency, len(trade.OfferTarget.SlotIDs)),
		}, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("trade_id", tradeID).Int64("accepted_by", actingID).Msg("trade settled")
	return &model.TradeResponse{TradeID: tradeID, Status: string(model.TradeAccepted), Message: "Trade settled"}, nil
}

// moveOfferItems transfers one unit of every offered slot from giver to
// receiver. Each slot is locked and its holder re-checked first: whoever
// commits first wins the item, the later settlement fails here.
func (s *TradeServiceImpl) moveOfferItems(ctx context.Context, tx pgx.Tx, slotIDs []int64, giver, receiver *model.Account) error {
	for _, slotID := range slotIDs {
		slot, err := s.inventoryRepo.GetSlotForUpdate(ctx, slotID, tx)
		if err != nil {
			return fmt.Errorf("lock slot %d: %w", slotID, err)
		}
		if slot.Kind == model.SlotKindSkill {
			return model.ErrSkillNotTradable
		}
		if !heldBy(slot, giver.ID) || !slot.Consumable() {
			return fmt.Errorf("%w: slot %d left %s's inventory", model.ErrItemNotOwned, slotID, giver.Name)
		}

		// Room-held items stay room-held, landing in the receiver's room;
		// personal items stay personal.
		destKind, destOwner := model.OwnerKindUser, receiver.ID
		if slot.OwnerKind == model.OwnerKindRoom {
			destKind, destOwner = model.OwnerKindRoom, receiver.RoomID
		}

		if slot.Quantity > 1 {
			if err := s.inventoryRepo.AdjustQuantity(ctx, slot.ID, -1, tx); err != nil {
				return fmt.Errorf("decrement slot %d: %w", slot.ID, err)
			}
			moved := &model.InventorySlot{
				OwnerKind:  destKind,
				OwnerID:    destOwner,
				AcquiredBy: receiver.ID,
				Kind:       slot.Kind,
				ItemRef:    slot.ItemRef,
				Name:       slot.Name,
				BasePrice:  slot.BasePrice,
				Quantity:   1,
				Origin:     model.OriginTrade,
				ExpiresAt:  slot.ExpiresAt,
			}
			if err := s.inventoryRepo.InsertSlot(ctx, moved, tx); err != nil {
				return fmt.Errorf("insert transferred slot: %w", err)
			}
		} else {
			if err := s.inventoryRepo.UpdateOwner(ctx, slot.ID, destKind, destOwner, receiver.ID, model.OriginTrade, tx); err != nil {
				return fmt.Errorf("transfer slot %d: %w", slot.ID, err)
			}
		}
	}
	return nil
}

// Cancel closes a pending negotiation without moving anything. Either party
// may cancel.
func (s *TradeServiceImpl) Cancel(ctx context.Context, tradeID string, actingID int64) (*model.TradeResponse, error) {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trade, err := s.tradeRepo.GetTradeForUpdate(ctx, tradeID, tx)
		if err != nil {
			return fmt.Errorf("get trade for update: %w", err)
		}
		if trade.Status != model.TradePending {
			return fmt.Errorf("%w: trade is %s", model.ErrInvalidState, trade.Status)
		}
		if trade.InitiatorID != actingID && trade.TargetID != actingID {
			return model.ErrNotParticipant
		}

		updated, err := s.tradeRepo.SetStatus(ctx, trade.ID, model.TradePending, model.TradeCancelled, tx)
		if err != nil {
			return fmt.Errorf("set trade status: %w", err)
		}
		if !updated {
			return model.ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("trade_id", tradeID).Int64("cancelled_by", actingID).Msg("trade cancelled")
	return &model.TradeResponse{TradeID: tradeID, Status: string(model.TradeCancelled)}, nil
}

func (s *TradeServiceImpl) ListMine(ctx context.Context, accountID int64) ([]*model.Trade, error) {
	trades, err := s.tradeRepo.ListPendingByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return trades, nil
}
