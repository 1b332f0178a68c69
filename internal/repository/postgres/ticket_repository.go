package postgres

import (
	"context"
	"errors"
	"fmt"

	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TicketRepository = (*TicketRepositoryImpl)(nil)

// TicketRepositoryImpl is the PostgreSQL implementation of TicketRepository
type TicketRepositoryImpl struct {
	*TransactionManager
}

func NewTicketRepository(pool *pgxpool.Pool) repository.TicketRepository {
	return &TicketRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const ticketColumns = `id, owner_id, hash, slot_kind, item_ref, skill_code, item_name,
	base_price, room_id, item_expiry, status, redeemed_by, redeemed_at, created_at, updated_at`

func scanTicket(row pgx.Row) (*model.RedemptionTicket, error) {
	t := &model.RedemptionTicket{}
	err := row.Scan(&t.ID, &t.OwnerID, &t.Hash, &t.SlotKind, &t.ItemRef,
		&t.SkillCode, &t.ItemName, &t.BasePrice, &t.RoomID, &t.ItemExpiry, &t.Status,
		&t.RedeemedBy, &t.RedeemedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to scan ticket: %w", err)
	}
	return t, nil
}

// InsertTicket stores a freshly minted ticket. A hash collision comes back
// as model.ErrConflict so the caller can mint a fresh code and retry. The
// insert runs inside a savepoint: a unique violation would otherwise abort
// the surrounding transaction and every later statement in it would fail
// with 25P02 instead of being retryable.
func (r *TicketRepositoryImpl) InsertTicket(ctx context.Context, ticket *model.RedemptionTicket, tx pgx.Tx) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to open savepoint: %w", err)
	}

	err = sp.QueryRow(ctx, `
        INSERT INTO redemption_tickets
            (owner_id, hash, slot_kind, item_ref, skill_code, item_name,
             base_price, room_id, item_expiry, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`,
		ticket.OwnerID, ticket.Hash, ticket.SlotKind, ticket.ItemRef,
		ticket.SkillCode, ticket.ItemName, ticket.BasePrice, ticket.RoomID,
		ticket.ItemExpiry, ticket.Status).
		Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
	if err != nil {
		_ = sp.Rollback(ctx)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}
	return nil
}

func (r *TicketRepositoryImpl) GetByHashForUpdate(ctx context.Context, hash string, tx pgx.Tx) (*model.RedemptionTicket, error) {
	return scanTicket(tx.QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM redemption_tickets WHERE hash = $1 FOR UPDATE`, hash))
}

func (r *TicketRepositoryImpl) GetTicketForUpdate(ctx context.Context, ticketID int64, tx pgx.Tx) (*model.RedemptionTicket, error) {
	return scanTicket(tx.QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM redemption_tickets WHERE id = $1 FOR UPDATE`, ticketID))
}

// SetStatusIfActive transitions an active ticket exactly once
func (r *TicketRepositoryImpl) SetStatusIfActive(ctx context.Context, ticketID int64, to model.TicketStatus, redeemedBy *int64, tx pgx.Tx) (bool, error) {
	commandTag, err := tx.Exec(ctx, `
        UPDATE redemption_tickets
        SET status = $1,
            redeemed_by = $2,
            redeemed_at = CASE WHEN $1 = 'used' THEN NOW() ELSE redeemed_at END,
            updated_at = NOW()
        WHERE id = $3 AND status = 'active'`, to, redeemedBy, ticketID)
	if err != nil {
		return false, fmt.Errorf("failed to update ticket status: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *TicketRepositoryImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*model.RedemptionTicket, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+ticketColumns+` FROM redemption_tickets
        WHERE owner_id = $1
        ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*model.RedemptionTicket
	for rows.Next() {
		t := &model.RedemptionTicket{}
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Hash, &t.SlotKind, &t.ItemRef,
			&t.SkillCode, &t.ItemName, &t.BasePrice, &t.RoomID, &t.ItemExpiry, &t.Status,
			&t.RedeemedBy, &t.RedeemedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
