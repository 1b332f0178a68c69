package repository

import (
	"context"
	"time"

	"economy-engine/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management. Every operation that
// touches more than one record runs inside a single WithTransaction call, so
// all writes land together or not at all.
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// AccountRepository defines operations for account/balance management.
type AccountRepository interface {
	// GetAccount retrieves an account with its buffs and roles (read-only)
	GetAccount(ctx context.Context, accountID int64, tx ...pgx.Tx) (*model.Account, error)

	// GetAccountForUpdate retrieves an account with a row-level lock,
	// buffs included (must be in transaction)
	GetAccountForUpdate(ctx context.Context, accountID int64, tx pgx.Tx) (*model.Account, error)

	// GetAccountsForUpdate locks many accounts in ascending-ID order to
	// keep concurrent batches from deadlocking against each other
	GetAccountsForUpdate(ctx context.Context, accountIDs []int64, tx pgx.Tx) ([]*model.Account, error)

	// GetBalance retrieves the current balance for an account (read-only)
	GetBalance(ctx context.Context, accountID int64, tx ...pgx.Tx) (int64, error)

	// UpdateBalance sets an account's balance
	UpdateBalance(ctx context.Context, accountID int64, balance int64, tx pgx.Tx) error

	// UpdateMaxBalance records a new historical maximum
	UpdateMaxBalance(ctx context.Context, accountID int64, maxBalance int64, tx pgx.Tx) error

	// BulkAdjustBalance applies one unconditional delta to every named
	// account (the penalty path; balances may go negative here)
	BulkAdjustBalance(ctx context.Context, accountIDs []int64, delta int64, tx pgx.Tx) error

	// InsertBuff attaches a buff to an account
	InsertBuff(ctx context.Context, buff *model.Buff, tx pgx.Tx) error
}

// InventoryRepository defines operations on inventory slots.
type InventoryRepository interface {
	GetSlot(ctx context.Context, slotID int64, tx ...pgx.Tx) (*model.InventorySlot, error)

	// GetSlotForUpdate locks the slot row; settlement re-validates
	// ownership under this lock (first committer wins)
	GetSlotForUpdate(ctx context.Context, slotID int64, tx pgx.Tx) (*model.InventorySlot, error)

	ListByOwner(ctx context.Context, ownerKind model.OwnerKind, ownerID int64, tx ...pgx.Tx) ([]*model.InventorySlot, error)

	InsertSlot(ctx context.Context, slot *model.InventorySlot, tx pgx.Tx) error

	// UpdateOwner reassigns a whole slot to a new holder
	UpdateOwner(ctx context.Context, slotID int64, ownerKind model.OwnerKind, ownerID, acquiredBy int64, origin model.SlotOrigin, tx pgx.Tx) error

	// AdjustQuantity adds delta to an item slot's quantity
	AdjustQuantity(ctx context.Context, slotID int64, delta int, tx pgx.Tx) error

	// AdjustCharges adds delta to a skill slot's remaining charges
	AdjustCharges(ctx context.Context, slotID int64, delta int, tx pgx.Tx) error

	DeleteSlot(ctx context.Context, slotID int64, tx pgx.Tx) error
}

// TradeRepository defines operations for trade negotiations.
type TradeRepository interface {
	// InsertTrade stores the negotiation and both offers
	InsertTrade(ctx context.Context, trade *model.Trade, tx pgx.Tx) error

	GetTradeByTradeID(ctx context.Context, tradeID string, tx ...pgx.Tx) (*model.Trade, error)

	// GetTradeForUpdate locks the negotiation row for settlement
	GetTradeForUpdate(ctx context.Context, tradeID string, tx pgx.Tx) (*model.Trade, error)

	// SetStatus transitions from one status to another; reports false when
	// the row was not in the expected source status
	SetStatus(ctx context.Context, id int64, from, to model.TradeStatus, tx pgx.Tx) (bool, error)

	ListPendingByAccount(ctx context.Context, accountID int64) ([]*model.Trade, error)
}

// AuctionRepository defines operations for auction lots and bids.
type AuctionRepository interface {
	InsertLot(ctx context.Context, lot *model.AuctionLot, tx pgx.Tx) error

	GetLotByLotID(ctx context.Context, lotID string, tx ...pgx.Tx) (*model.AuctionLot, error)

	GetLotForUpdate(ctx context.Context, lotID string, tx pgx.Tx) (*model.AuctionLot, error)

	// RecordBid sets the new highest bid and appends the bid history row
	RecordBid(ctx context.Context, lotID int64, bid *model.Bid, tx pgx.Tx) error

	// FinalizeLot moves an open lot to finalized; false when not open
	FinalizeLot(ctx context.Context, lotID int64, winnerID *int64, tx pgx.Tx) (bool, error)

	// MarkDelivered moves a finalized lot to delivered; false otherwise
	MarkDelivered(ctx context.Context, lotID int64, tx pgx.Tx) (bool, error)

	// UpdateLotFields persists edited lot metadata
	UpdateLotFields(ctx context.Context, lot *model.AuctionLot, tx pgx.Tx) error

	ListOpen(ctx context.Context) ([]*model.AuctionLot, error)

	// ListExpiredOpen returns open lots whose end time has passed, for the
	// closer worker
	ListExpiredOpen(ctx context.Context, now time.Time, limit int) ([]*model.AuctionLot, error)
}

// TicketRepository defines operations for redemption tickets.
type TicketRepository interface {
	// InsertTicket stores a freshly minted ticket; a hash collision
	// surfaces as model.ErrConflict so the caller can mint a new code
	InsertTicket(ctx context.Context, ticket *model.RedemptionTicket, tx pgx.Tx) error

	GetByHashForUpdate(ctx context.Context, hash string, tx pgx.Tx) (*model.RedemptionTicket, error)

	GetTicketForUpdate(ctx context.Context, ticketID int64, tx pgx.Tx) (*model.RedemptionTicket, error)

	// SetStatusIfActive transitions an active ticket to used or cancelled
	// exactly once; false when the ticket was no longer active
	SetStatusIfActive(ctx context.Context, ticketID int64, to model.TicketStatus, redeemedBy *int64, tx pgx.Tx) (bool, error)

	ListByOwner(ctx context.Context, ownerID int64) ([]*model.RedemptionTicket, error)
}

// AuditRepository is the append-only log sink. The engine writes entries in
// the same transaction as the mutation they describe and never reads them.
type AuditRepository interface {
	Append(ctx context.Context, entry *model.AuditEntry, tx pgx.Tx) error
}
