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
var _ repository.TradeRepository = (*TradeRepositoryImpl)(nil)

// TradeRepositoryImpl is the PostgreSQL implementation of TradeRepository
type TradeRepositoryImpl struct {
	*TransactionManager
}

func NewTradeRepository(pool *pgxpool.Pool) repository.TradeRepository {
	return &TradeRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const tradeColumns = `id, trade_id, initiator_id, target_id, currency_initiator,
	currency_target, fairness_ratio, status, created_at, updated_at`

func scanTrade(row pgx.Row) (*model.Trade, error) {
	t := &model.Trade{}
	err := row.Scan(&t.ID, &t.TradeID, &t.InitiatorID, &t.TargetID,
		&t.OfferInitiator.Currency, &t.OfferTarget.Currency,
		&t.FairnessRatio, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to scan trade: %w", err)
	}
	return t, nil
}

// loadItems fills in both offers' slot references.
func (r *TradeRepositoryImpl) loadItems(ctx context.Context, t *model.Trade, q Querier) error {
	rows, err := q.Query(ctx,
		`SELECT side, slot_id FROM trade_items WHERE trade_id = $1 ORDER BY id`, t.ID)
	if err != nil {
		return fmt.Errorf("failed to query trade items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var side string
		var slotID int64
		if err := rows.Scan(&side, &slotID); err != nil {
			return fmt.Errorf("failed to scan trade item: %w", err)
		}
		if side == "initiator" {
			t.OfferInitiator.SlotIDs = append(t.OfferInitiator.SlotIDs, slotID)
		} else {
			t.OfferTarget.SlotIDs = append(t.OfferTarget.SlotIDs, slotID)
		}
	}
	return rows.Err()
}

// InsertTrade stores the negotiation and both offers
func (r *TradeRepositoryImpl) InsertTrade(ctx context.Context, trade *model.Trade, tx pgx.Tx) error {
	err := tx.QueryRow(ctx, `
        INSERT INTO trades
            (trade_id, initiator_id, target_id, currency_initiator, currency_target,
             fairness_ratio, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`,
		trade.TradeID, trade.InitiatorID, trade.TargetID,
		trade.OfferInitiator.Currency, trade.OfferTarget.Currency,
		trade.FairnessRatio, trade.Status).
		Scan(&trade.ID, &trade.CreatedAt, &trade.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	for _, slotID := range trade.OfferInitiator.SlotIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO trade_items (trade_id, side, slot_id) VALUES ($1, 'initiator', $2)`,
			trade.ID, slotID); err != nil {
			return fmt.Errorf("failed to insert trade item: %w", err)
		}
	}
	for _, slotID := range trade.OfferTarget.SlotIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO trade_items (trade_id, side, slot_id) VALUES ($1, 'target', $2)`,
			trade.ID, slotID); err != nil {
			return fmt.Errorf("failed to insert trade item: %w", err)
		}
	}
	return nil
}

func (r *TradeRepositoryImpl) GetTradeByTradeID(ctx context.Context, tradeID string, tx ...pgx.Tx) (*model.Trade, error) {
	executor := r.getExecutor(tx...)
	t, err := scanTrade(executor.QueryRow(ctx,
		`SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1`, tradeID))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, t, executor); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTradeForUpdate locks the negotiation row for settlement
func (r *TradeRepositoryImpl) GetTradeForUpdate(ctx context.Context, tradeID string, tx pgx.Tx) (*model.Trade, error) {
	t, err := scanTrade(tx.QueryRow(ctx,
		`SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1 FOR UPDATE`, tradeID))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, t, tx); err != nil {
		return nil, err
	}
	return t, nil
}

// SetStatus transitions from one status to another
func (r *TradeRepositoryImpl) SetStatus(ctx context.Context, id int64, from, to model.TradeStatus, tx pgx.Tx) (bool, error) {
	commandTag, err := tx.Exec(ctx, `
        UPDATE trades
        SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update trade status: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *TradeRepositoryImpl) ListPendingByAccount(ctx context.Context, accountID int64) ([]*model.Trade, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+tradeColumns+` FROM trades
        WHERE (initiator_id = $1 OR target_id = $1) AND status = 'pending'
        ORDER BY created_at DESC`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []*model.Trade
	for rows.Next() {
		t := &model.Trade{}
		if err := rows.Scan(&t.ID, &t.TradeID, &t.InitiatorID, &t.TargetID,
			&t.OfferInitiator.Currency, &t.OfferTarget.Currency,
			&t.FairnessRatio, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range trades {
		if err := r.loadItems(ctx, t, r.pool); err != nil {
			return nil, err
		}
	}
	return trades, nil
}
