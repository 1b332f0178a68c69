package skills

import (
	"context"
	"fmt"

	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// buffSource tags rank-granted buffs so a re-sync can tell them apart from
// buffs bought in the store or granted by hand.
const buffSource = "rank"

// Granter reconciles an account's holdings with the skills its historical
// maximum unlocks. Grants are additive and idempotent: nothing already held
// is duplicated and nothing is ever taken away.
type Granter struct {
	accountRepo   repository.AccountRepository
	inventoryRepo repository.InventoryRepository
	logger        zerolog.Logger
}

func NewGranter(accountRepo repository.AccountRepository, inventoryRepo repository.InventoryRepository, logger zerolog.Logger) *Granter {
	return &Granter{
		accountRepo:   accountRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// GrantForNewMax runs inside the caller's transaction so the balance write
// and the grants commit together. It reports whether anything was granted.
func (g *Granter) GrantForNewMax(ctx context.Context, tx pgx.Tx, account *model.Account) (bool, error) {
	unlocked := Unlocked(account.MaxBalance)
	if len(unlocked) == 0 {
		return false, nil
	}

	heldBuffs := make(map[model.BuffEffect]bool)
	for _, b := range account.Buffs {
		if b.Source == buffSource {
			heldBuffs[b.Effect] = true
		}
	}

	slots, err := g.inventoryRepo.ListByOwner(ctx, model.OwnerKindUser, account.ID, tx)
	if err != nil {
		return false, fmt.Errorf("list account slots: %w", err)
	}
	heldSkills := make(map[string]bool)
	for _, s := range slots {
		if s.Kind == model.SlotKindSkill && s.Origin == model.OriginRank {
			heldSkills[s.SkillCode] = true
		}
	}

	changed := false
	for _, skill := range unlocked {
		switch skill.Kind {
		case KindPassive:
			if skill.Effect == "" || heldBuffs[skill.Effect] {
				continue
			}
			buff := &model.Buff{
				AccountID: account.ID,
				Effect:    skill.Effect,
				Source:    buffSource,
			}
			if err := g.accountRepo.InsertBuff(ctx, buff, tx); err != nil {
				return changed, fmt.Errorf("insert rank buff %s: %w", skill.Code, err)
			}
			account.Buffs = append(account.Buffs, *buff)
			heldBuffs[skill.Effect] = true
			changed = true

		case KindActive:
			if heldSkills[skill.Code] {
				continue
			}
			slot := &model.InventorySlot{
				OwnerKind:   model.OwnerKindUser,
				OwnerID:     account.ID,
				AcquiredBy:  account.ID,
				Kind:        model.SlotKindSkill,
				SkillCode:   skill.Code,
				Name:        skill.Name,
				ChargesLeft: skill.Charges,
				ChargesMax:  skill.Charges,
				Origin:      model.OriginRank,
			}
			if err := g.inventoryRepo.InsertSlot(ctx, slot, tx); err != nil {
				return changed, fmt.Errorf("insert rank skill %s: %w", skill.Code, err)
			}
			heldSkills[skill.Code] = true
			changed = true
		}
	}

	if changed {
		g.logger.Debug().
			Int64("account_id", account.ID).
			Str("rank", RankFor(account.MaxBalance).ID).
			Msg("rank skills reconciled")
	}
	return changed, nil
}
