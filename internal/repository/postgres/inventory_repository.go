package postgres

import (
	"context"
	"errors"
	"fmt"

	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.InventoryRepository = (*InventoryRepositoryImpl)(nil)

// InventoryRepositoryImpl is the PostgreSQL implementation of InventoryRepository
type InventoryRepositoryImpl struct {
	*TransactionManager
}

func NewInventoryRepository(pool *pgxpool.Pool) repository.InventoryRepository {
	return &InventoryRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const slotColumns = `id, owner_kind, owner_id, acquired_by, kind, item_ref, skill_code,
	name, base_price, quantity, charges_left, charges_max, origin, expires_at,
	created_at, updated_at`

func scanSlot(row pgx.Row) (*model.InventorySlot, error) {
	s := &model.InventorySlot{}
	err := row.Scan(&s.ID, &s.OwnerKind, &s.OwnerID, &s.AcquiredBy, &s.Kind,
		&s.ItemRef, &s.SkillCode, &s.Name, &s.BasePrice, &s.Quantity,
		&s.ChargesLeft, &s.ChargesMax, &s.Origin, &s.ExpiresAt,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to scan inventory slot: %w", err)
	}
	return s, nil
}

func (r *InventoryRepositoryImpl) GetSlot(ctx context.Context, slotID int64, tx ...pgx.Tx) (*model.InventorySlot, error) {
	executor := r.getExecutor(tx...)
	return scanSlot(executor.QueryRow(ctx,
		`SELECT `+slotColumns+` FROM inventory_slots WHERE id = $1`, slotID))
}

// GetSlotForUpdate locks the slot row for a settlement or consumption
func (r *InventoryRepositoryImpl) GetSlotForUpdate(ctx context.Context, slotID int64, tx pgx.Tx) (*model.InventorySlot, error) {
	return scanSlot(tx.QueryRow(ctx,
		`SELECT `+slotColumns+` FROM inventory_slots WHERE id = $1 FOR UPDATE`, slotID))
}

func (r *InventoryRepositoryImpl) ListByOwner(ctx context.Context, ownerKind model.OwnerKind, ownerID int64, tx ...pgx.Tx) ([]*model.InventorySlot, error) {
	executor := r.getExecutor(tx...)
	rows, err := executor.Query(ctx,
		`SELECT `+slotColumns+` FROM inventory_slots
		 WHERE owner_kind = $1 AND owner_id = $2
		 ORDER BY created_at`, ownerKind, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var slots []*model.InventorySlot
	for rows.Next() {
		s := &model.InventorySlot{}
		if err := rows.Scan(&s.ID, &s.OwnerKind, &s.OwnerID, &s.AcquiredBy, &s.Kind,
			&s.ItemRef, &s.SkillCode, &s.Name, &s.BasePrice, &s.Quantity,
			&s.ChargesLeft, &s.ChargesMax, &s.Origin, &s.ExpiresAt,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *InventoryRepositoryImpl) InsertSlot(ctx context.Context, slot *model.InventorySlot, tx pgx.Tx) error {
	err := tx.QueryRow(ctx, `
        INSERT INTO inventory_slots
            (owner_kind, owner_id, acquired_by, kind, item_ref, skill_code,
             name, base_price, quantity, charges_left, charges_max, origin, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at, updated_at`,
		slot.OwnerKind, slot.OwnerID, slot.AcquiredBy, slot.Kind, slot.ItemRef,
		slot.SkillCode, slot.Name, slot.BasePrice, slot.Quantity,
		slot.ChargesLeft, slot.ChargesMax, slot.Origin, slot.ExpiresAt).
		Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inventory slot: %w", err)
	}
	return nil
}

func (r *InventoryRepositoryImpl) UpdateOwner(ctx context.Context, slotID int64, ownerKind model.OwnerKind, ownerID, acquiredBy int64, origin model.SlotOrigin, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `
        UPDATE inventory_slots
        SET owner_kind = $1, owner_id = $2, acquired_by = $3, origin = $4, updated_at = NOW()
        WHERE id = $5`, ownerKind, ownerID, acquiredBy, origin, slotID)
	if err != nil {
		return fmt.Errorf("failed to update slot owner: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrSlotNotFound
	}
	return nil
}

func (r *InventoryRepositoryImpl) AdjustQuantity(ctx context.Context, slotID int64, delta int, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `
        UPDATE inventory_slots
        SET quantity = quantity + $1, updated_at = NOW()
        WHERE id = $2 AND kind = 'item'`, delta, slotID)
	if err != nil {
		return fmt.Errorf("failed to adjust slot quantity: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrSlotNotFound
	}
	return nil
}

func (r *InventoryRepositoryImpl) AdjustCharges(ctx context.Context, slotID int64, delta int, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `
        UPDATE inventory_slots
        SET charges_left = charges_left + $1, updated_at = NOW()
        WHERE id = $2 AND kind = 'skill'`, delta, slotID)
	if err != nil {
		return fmt.Errorf("failed to adjust slot charges: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrSlotNotFound
	}
	return nil
}

func (r *InventoryRepositoryImpl) DeleteSlot(ctx context.Context, slotID int64, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `DELETE FROM inventory_slots WHERE id = $1`, slotID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory slot: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrSlotNotFound
	}
	return nil
}
