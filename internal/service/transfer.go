package service

import (
	"context"
	"fmt"
	"time"

	"economy-engine/internal/config"
	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SkillTaxExemption is the skill code whose charges waive the transfer fee.
const SkillTaxExemption = "tax_exemption"

type TransferServiceImpl struct {
	accountRepo   repository.AccountRepository
	inventoryRepo repository.InventoryRepository
	auditRepo     repository.AuditRepository
	dbManager     repository.DBManager
	cfg           config.EconomyConfig
	logger        zerolog.Logger
}

func NewTransferService(
	accountRepo repository.AccountRepository,
	inventoryRepo repository.InventoryRepository,
	auditRepo repository.AuditRepository,
	dbManager repository.DBManager,
	cfg config.EconomyConfig,
	logger zerolog.Logger,
) TransferService {
	return &TransferServiceImpl{
		accountRepo:   accountRepo,
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
		dbManager:     dbManager,
		cfg:           cfg,
		logger:        logger,
	}
}

// Transfer moves currency from the sender to the target and charges the
// flat fee on top. With use_exemption set, an active tax exemption buff
// waives the fee outright, and failing that one charge of the matching
// skill is consumed for the same effect.
func (s *TransferServiceImpl) Transfer(ctx context.Context, req *model.TransferRequest, senderID int64) (*model.TransferResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: transfer amount must be positive", model.ErrInvalidAmount)
	}
	if req.TargetID == senderID {
		return nil, model.ErrSelfTarget
	}

	var resp *model.TransferResponse

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		accounts, err := s.accountRepo.GetAccountsForUpdate(ctx, []int64{senderID, req.TargetID}, tx)
		if err != nil {
			return fmt.Errorf("lock accounts: %w", err)
		}
		var sender, target *model.Account
		for _, a := range accounts {
			switch a.ID {
			case senderID:
				sender = a
			case req.TargetID:
				target = a
			}
		}
		if sender == nil || target == nil {
			return model.ErrAccountNotFound
		}

		fee := s.cfg.TransferFee
		if req.UseExemption {
			waived, err := s.consumeExemption(ctx, sender, tx)
			if err != nil {
				return err
			}
			if !waived {
				return model.ErrNoExemption
			}
			fee = 0
		}

		total := req.Amount + fee
		if sender.Balance < total {
			return fmt.Errorf("%w: need %d, have %d", model.ErrInsufficientFunds, total, sender.Balance)
		}

		if err := s.accountRepo.UpdateBalance(ctx, sender.ID, sender.Balance-total, tx); err != nil {
			return fmt.Errorf("debit sender: %w", err)
		}
		if err := s.accountRepo.UpdateBalance(ctx, target.ID, target.Balance+req.Amount, tx); err != nil {
			return fmt.Errorf("credit target: %w", err)
		}

		if err := s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID:  sender.ID,
			TargetID: &target.ID,
			Action:   "TRANSFER",
			Detail:   fmt.Sprintf("Sent %d PC$ to %s (fee %d)", req.Amount, target.Name, fee),
		}, tx); err != nil {
			return err
		}

		resp = &model.TransferResponse{
			Status:     "success",
			NewBalance: sender.Balance - total,
			FeePaid:    fee,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("sender_id", senderID).
		Int64("target_id", req.TargetID).
		Int64("amount", req.Amount).
		Int64("fee", resp.FeePaid).
		Msg("transfer settled")
	return resp, nil
}

// consumeExemption reports whether the sender holds a fee waiver. A live
// buff waives without being spent; otherwise one skill charge is consumed.
func (s *TransferServiceImpl) consumeExemption(ctx context.Context, sender *model.Account, tx pgx.Tx) (bool, error) {
	for _, b := range sender.ActiveBuffs(time.Now()) {
		if b.Effect == model.BuffTaxExemption {
			return true, nil
		}
	}

	slots, err := s.inventoryRepo.ListByOwner(ctx, model.OwnerKindUser, sender.ID, tx)
	if err != nil {
		return false, fmt.Errorf("list sender slots: %w", err)
	}
	for _, slot := range slots {
		if slot.Kind != model.SlotKindSkill || slot.SkillCode != SkillTaxExemption {
			continue
		}
		locked, err := s.inventoryRepo.GetSlotForUpdate(ctx, slot.ID, tx)
		if err != nil {
			return false, fmt.Errorf("lock exemption slot: %w", err)
		}
		if locked.ChargesLeft <= 0 {
			continue
		}
		if err := s.inventoryRepo.AdjustCharges(ctx, locked.ID, -1, tx); err != nil {
			return false, fmt.Errorf("consume exemption charge: %w", err)
		}
		return true, nil
	}
	return false, nil
}
