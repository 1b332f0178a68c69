package service

import (
	"context"

	"economy-engine/internal/model"

	"github.com/jackc/pgx/v5"
)

// AwardService is the bulk award/penalty processor plus the ledger read
// paths that go with it.
type AwardService interface {
	// ApplyBulkAward mutates every named account inside one atomic commit;
	// any failure rejects the whole batch
	ApplyBulkAward(ctx context.Context, req *model.BulkAwardRequest, actorID int64) (*model.BulkAwardResponse, error)
	GetBalance(ctx context.Context, accountID int64) (*model.BalanceResponse, error)
	GetMultiplier(ctx context.Context, accountID int64) (*model.MultiplierResponse, error)
}

// TradeService manages two-sided negotiations and their settlement.
type TradeService interface {
	Propose(ctx context.Context, req *model.TradeProposalRequest, initiatorID int64) (*model.TradeResponse, error)
	Accept(ctx context.Context, tradeID string, actingID int64) (*model.TradeResponse, error)
	Cancel(ctx context.Context, tradeID string, actingID int64) (*model.TradeResponse, error)
	ListMine(ctx context.Context, accountID int64) ([]*model.Trade, error)
}

// AuctionService manages lots through open, finalized and delivered.
type AuctionService interface {
	Create(ctx context.Context, req *model.CreateLotRequest, actorID int64) (*model.AuctionLot, error)
	Update(ctx context.Context, lotID string, req *model.UpdateLotRequest, actorID int64) (*model.AuctionLot, error)
	PlaceBid(ctx context.Context, lotID string, bidderID, amount int64) (*model.AuctionLot, error)
	// Close is idempotent: safe to call from the scheduler and an operator
	// at once, the second caller gets an invalid-state failure
	Close(ctx context.Context, lotID string, actorID int64) (*model.CloseLotResponse, error)
	Deliver(ctx context.Context, lotID string, actorID int64) (*model.CloseLotResponse, error)
	ListOpen(ctx context.Context) ([]*model.AuctionLot, error)
}

// TicketService mints and settles single-use redemption codes.
type TicketService interface {
	Issue(ctx context.Context, slotID, ownerID int64) (*model.TicketResponse, error)
	Redeem(ctx context.Context, hash string, operatorID int64) (*model.TicketResponse, error)
	Cancel(ctx context.Context, ticketID, ownerID int64) (*model.TicketResponse, error)
	ListMine(ctx context.Context, ownerID int64) ([]*model.RedemptionTicket, error)
}

// TransferService moves currency between two accounts, fee included.
type TransferService interface {
	Transfer(ctx context.Context, req *model.TransferRequest, senderID int64) (*model.TransferResponse, error)
}

// SkillGranter is the collaborator invoked when an account crosses a new
// historical-maximum balance. Its writes ride the caller's transaction so
// the whole batch still commits or aborts as one.
type SkillGranter interface {
	GrantForNewMax(ctx context.Context, tx pgx.Tx, account *model.Account) (bool, error)
}

// AuctionNotifier pushes lot changes to connected clients. Best effort;
// notification failures never fail a settlement.
type AuctionNotifier interface {
	LotUpdated(lot *model.AuctionLot)
	Outbid(accountID int64, lot *model.AuctionLot)
}
