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
	"github.com/shopspring/decimal"
)

type AwardServiceImpl struct {
	accountRepo repository.AccountRepository
	auditRepo   repository.AuditRepository
	dbManager   repository.DBManager
	granter     SkillGranter
	cfg         config.EconomyConfig
	logger      zerolog.Logger
}

func NewAwardService(
	accountRepo repository.AccountRepository,
	auditRepo repository.AuditRepository,
	dbManager repository.DBManager,
	granter SkillGranter,
	cfg config.EconomyConfig,
	logger zerolog.Logger,
) AwardService {
	return &AwardServiceImpl{
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		dbManager:   dbManager,
		granter:     granter,
		cfg:         cfg,
		logger:      logger,
	}
}

// ApplyBulkAward applies a reward or fine to every named account inside one
// transaction. Awards go through the multiplier per account; penalties are a
// single flat decrement with no multiplier. Nothing is visible unless the
// whole batch commits.
func (s *AwardServiceImpl) ApplyBulkAward(ctx context.Context, req *model.BulkAwardRequest, actorID int64) (*model.BulkAwardResponse, error) {
	kind, err := model.ParseAwardKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidAwardKind, req.Kind)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if len(req.AccountIDs) == 0 {
		return nil, fmt.Errorf("%w: no accounts named", model.ErrInvalidAmount)
	}
	// A repeated ID would make the batch row count disagree with the input
	// length and surface as a missing account.
	req.AccountIDs = dedupeIDs(req.AccountIDs)

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		switch kind {
		case model.AwardKindAward:
			return s.applyAward(ctx, tx, req, actorID)
		default:
			return s.applyPenalty(ctx, tx, req, actorID)
		}
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("kind", kind.String()).
		Int64("actor_id", actorID).
		Int("accounts", len(req.AccountIDs)).
		Int64("base_amount", req.Amount).
		Str("reason", req.Reason).
		Msg("bulk award applied")

	return &model.BulkAwardResponse{
		Status:   "success",
		Accounts: len(req.AccountIDs),
		Message:  "Points updated",
	}, nil
}

func (s *AwardServiceImpl) applyAward(ctx context.Context, tx pgx.Tx, req *model.BulkAwardRequest, actorID int64) error {
	accounts, err := s.accountRepo.GetAccountsForUpdate(ctx, req.AccountIDs, tx)
	if err != nil {
		return fmt.Errorf("lock accounts: %w", err)
	}

	now := time.Now()
	base := decimal.NewFromInt(req.Amount)

	for _, acc := range accounts {
		// Multiplier is re-derived per account at apply time; buffs may
		// have expired since any earlier read.
		mult := model.ResolveMultiplier(acc, now)
		delta := base.Mul(mult).Floor().IntPart()
		newBalance := acc.Balance + delta

		if err := s.accountRepo.UpdateBalance(ctx, acc.ID, newBalance, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		if newBalance > acc.MaxBalance {
			if err := s.accountRepo.UpdateMaxBalance(ctx, acc.ID, newBalance, tx); err != nil {
				return fmt.Errorf("update max balance: %w", err)
			}
			acc.MaxBalance = newBalance
			acc.Balance = newBalance
			changed, err := s.granter.GrantForNewMax(ctx, tx, acc)
			if err != nil {
				return fmt.Errorf("grant rank skills: %w", err)
			}
			if changed {
				s.logger.Info().Int64("account_id", acc.ID).Int64("new_max", newBalance).
					Msg("rank skills granted on new historical maximum")
			}
		}

		detail := fmt.Sprintf("Awarded %d PC$ (base %d, x%s). Reason: %s",
			delta, req.Amount, mult.String(), req.Reason)
		target := acc.ID
		if err := s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID:  actorID,
			TargetID: &target,
			Action:   "BULK_AWARD",
			Detail:   detail,
		}, tx); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}
	}
	return nil
}

func (s *AwardServiceImpl) applyPenalty(ctx context.Context, tx pgx.Tx, req *model.BulkAwardRequest, actorID int64) error {
	if !s.cfg.AllowDebt {
		// Debt disabled: every account must cover the fine or the whole
		// batch is rejected.
		accounts, err := s.accountRepo.GetAccountsForUpdate(ctx, req.AccountIDs, tx)
		if err != nil {
			return fmt.Errorf("lock accounts: %w", err)
		}
		for _, acc := range accounts {
			if acc.Balance < req.Amount {
				return fmt.Errorf("%w: account %d cannot cover penalty of %d",
					model.ErrInsufficientFunds, acc.ID, req.Amount)
			}
		}
	}

	if err := s.accountRepo.BulkAdjustBalance(ctx, req.AccountIDs, -req.Amount, tx); err != nil {
		return fmt.Errorf("bulk decrement: %w", err)
	}

	for _, id := range req.AccountIDs {
		target := id
		if err := s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID:  actorID,
			TargetID: &target,
			Action:   "BULK_PENALTY",
			Detail:   fmt.Sprintf("Removed %d PC$. Reason: %s", req.Amount, req.Reason),
		}, tx); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}
	}
	return nil
}

func (s *AwardServiceImpl) GetBalance(ctx context.Context, accountID int64) (*model.BalanceResponse, error) {
	balance, err := s.accountRepo.GetBalance(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &model.BalanceResponse{AccountID: accountID, Balance: balance}, nil
}

func (s *AwardServiceImpl) GetMultiplier(ctx context.Context, accountID int64) (*model.MultiplierResponse, error) {
	acc, err := s.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	mult := model.ResolveMultiplier(acc, time.Now())
	return &model.MultiplierResponse{AccountID: accountID, Multiplier: mult.String()}, nil
}

// dedupeIDs drops repeated IDs, keeping first-seen order.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
