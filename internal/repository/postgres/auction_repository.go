package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AuctionRepository = (*AuctionRepositoryImpl)(nil)

// AuctionRepositoryImpl is the PostgreSQL implementation of AuctionRepository
type AuctionRepositoryImpl struct {
	*TransactionManager
}

func NewAuctionRepository(pool *pgxpool.Pool) repository.AuctionRepository {
	return &AuctionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const lotColumns = `id, lot_id, title, description, item_ref, min_bid, current_bid,
	current_bidder_id, winner_id, bid_count, house_item, validity_days,
	end_time, status, created_at, updated_at`

func scanLot(row pgx.Row) (*model.AuctionLot, error) {
	l := &model.AuctionLot{}
	err := row.Scan(&l.ID, &l.LotID, &l.Title, &l.Description, &l.ItemRef,
		&l.MinBid, &l.CurrentBid, &l.CurrentBidderID, &l.WinnerID, &l.BidCount,
		&l.HouseItem, &l.ValidityDays, &l.EndTime, &l.Status,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLotNotFound
		}
		return nil, fmt.Errorf("failed to scan auction lot: %w", err)
	}
	return l, nil
}

func (r *AuctionRepositoryImpl) InsertLot(ctx context.Context, lot *model.AuctionLot, tx pgx.Tx) error {
	err := tx.QueryRow(ctx, `
        INSERT INTO auction_lots
            (lot_id, title, description, item_ref, min_bid, current_bid,
             house_item, validity_days, end_time, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`,
		lot.LotID, lot.Title, lot.Description, lot.ItemRef, lot.MinBid,
		lot.CurrentBid, lot.HouseItem, lot.ValidityDays, lot.EndTime, lot.Status).
		Scan(&lot.ID, &lot.CreatedAt, &lot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert auction lot: %w", err)
	}
	return nil
}

func (r *AuctionRepositoryImpl) GetLotByLotID(ctx context.Context, lotID string, tx ...pgx.Tx) (*model.AuctionLot, error) {
	executor := r.getExecutor(tx...)
	return scanLot(executor.QueryRow(ctx,
		`SELECT `+lotColumns+` FROM auction_lots WHERE lot_id = $1`, lotID))
}

func (r *AuctionRepositoryImpl) GetLotForUpdate(ctx context.Context, lotID string, tx pgx.Tx) (*model.AuctionLot, error) {
	return scanLot(tx.QueryRow(ctx,
		`SELECT `+lotColumns+` FROM auction_lots WHERE lot_id = $1 FOR UPDATE`, lotID))
}

// RecordBid sets the new highest bid and appends the bid history row.
// The guard repeats the monotonicity check so a racing bid can never move
// the price down even if the caller's validation went stale.
func (r *AuctionRepositoryImpl) RecordBid(ctx context.Context, lotID int64, bid *model.Bid, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `
        UPDATE auction_lots
        SET current_bid = $1, current_bidder_id = $2, bid_count = bid_count + 1,
            updated_at = NOW()
        WHERE id = $3 AND status = 'open' AND current_bid < $1`,
		bid.Amount, bid.BidderID, lotID)
	if err != nil {
		return fmt.Errorf("failed to update highest bid: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrConflict
	}

	err = tx.QueryRow(ctx, `
        INSERT INTO auction_bids (lot_id, bidder_id, amount)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`, lotID, bid.BidderID, bid.Amount).
		Scan(&bid.ID, &bid.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert bid record: %w", err)
	}
	return nil
}

// FinalizeLot moves an open lot to finalized
func (r *AuctionRepositoryImpl) FinalizeLot(ctx context.Context, lotID int64, winnerID *int64, tx pgx.Tx) (bool, error) {
	commandTag, err := tx.Exec(ctx, `
        UPDATE auction_lots
        SET status = 'finalized', winner_id = $1, updated_at = NOW()
        WHERE id = $2 AND status = 'open'`, winnerID, lotID)
	if err != nil {
		return false, fmt.Errorf("failed to finalize lot: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// MarkDelivered moves a finalized lot to delivered
func (r *AuctionRepositoryImpl) MarkDelivered(ctx context.Context, lotID int64, tx pgx.Tx) (bool, error) {
	commandTag, err := tx.Exec(ctx, `
        UPDATE auction_lots
        SET status = 'delivered', updated_at = NOW()
        WHERE id = $1 AND status = 'finalized' AND winner_id IS NOT NULL`, lotID)
	if err != nil {
		return false, fmt.Errorf("failed to mark lot delivered: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// UpdateLotFields persists edited lot metadata
func (r *AuctionRepositoryImpl) UpdateLotFields(ctx context.Context, lot *model.AuctionLot, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `
        UPDATE auction_lots
        SET title = $1, description = $2, min_bid = $3, current_bid = $4,
            end_time = $5, updated_at = NOW()
        WHERE id = $6`,
		lot.Title, lot.Description, lot.MinBid, lot.CurrentBid, lot.EndTime, lot.ID)
	if err != nil {
		return fmt.Errorf("failed to update lot: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrLotNotFound
	}
	return nil
}

func (r *AuctionRepositoryImpl) ListOpen(ctx context.Context) ([]*model.AuctionLot, error) {
	return r.queryLots(ctx, `
        SELECT `+lotColumns+` FROM auction_lots
        WHERE status = 'open'
        ORDER BY end_time`)
}

// ListExpiredOpen returns open lots whose end time has passed
func (r *AuctionRepositoryImpl) ListExpiredOpen(ctx context.Context, now time.Time, limit int) ([]*model.AuctionLot, error) {
	return r.queryLots(ctx, `
        SELECT `+lotColumns+` FROM auction_lots
        WHERE status = 'open' AND end_time <= $1
        ORDER BY end_time
        LIMIT $2`, now, limit)
}

func (r *AuctionRepositoryImpl) queryLots(ctx context.Context, query string, args ...any) ([]*model.AuctionLot, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query auction lots: %w", err)
	}
	defer rows.Close()

	var lots []*model.AuctionLot
	for rows.Next() {
		l := &model.AuctionLot{}
		if err := rows.Scan(&l.ID, &l.LotID, &l.Title, &l.Description, &l.ItemRef,
			&l.MinBid, &l.CurrentBid, &l.CurrentBidderID, &l.WinnerID, &l.BidCount,
			&l.HouseItem, &l.ValidityDays, &l.EndTime, &l.Status,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan auction lot: %w", err)
		}
		lots = append(lots, l)
	}
	return lots, rows.Err()
}
