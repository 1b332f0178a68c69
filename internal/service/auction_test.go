package service

import (
	"context"
	"testing"
	"time"

	"economy-engine/internal/model"
	mocks "economy-engine/mocks/repository"
	svcmocks "economy-engine/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type auctionFixture struct {
	accountRepo   *mocks.AccountRepository
	inventoryRepo *mocks.InventoryRepository
	auctionRepo   *mocks.AuctionRepository
	auditRepo     *mocks.AuditRepository
	dbManager     *mocks.DBManager
	notifier      *svcmocks.AuctionNotifier
	service       AuctionService
}

func newAuctionFixture(t *testing.T) *auctionFixture {
	f := &auctionFixture{
		accountRepo:   mocks.NewAccountRepository(t),
		inventoryRepo: mocks.NewInventoryRepository(t),
		auctionRepo:   mocks.NewAuctionRepository(t),
		auditRepo:     mocks.NewAuditRepository(t),
		dbManager:     mocks.NewDBManager(t),
		notifier:      svcmocks.NewAuctionNotifier(t),
	}
	f.service = NewAuctionService(f.accountRepo, f.inventoryRepo, f.auctionRepo, f.auditRepo,
		f.dbManager, f.notifier, zerolog.Nop())
	return f
}

func (f *auctionFixture) passthroughTx(ctx context.Context) {
	f.dbManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
}

func TestCreateLot_HappyPath(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	endTime := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	f.auctionRepo.On("InsertLot", ctx, mock.MatchedBy(func(l *model.AuctionLot) bool {
		return l.Status == model.LotOpen && l.CurrentBid == 300 && l.CurrentBidderID == nil
	}), mock.Anything).Return(nil)
	f.auditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "AUCTION_CREATED"
	}), mock.Anything).Return(nil)
	f.notifier.On("LotUpdated", mock.Anything).Return()

	lot, err := f.service.Create(ctx, &model.CreateLotRequest{
		Title:   "Front row seat",
		ItemRef: "front_seat",
		MinBid:  300,
		EndTime: endTime,
	}, 99)

	require.NoError(t, err)
	assert.NotEmpty(t, lot.LotID)
	assert.Equal(t, int64(300), lot.CurrentBid)
}

func TestCreateLot_PastEndTime(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)

	_, err := f.service.Create(ctx, &model.CreateLotRequest{
		Title:   "Front row seat",
		ItemRef: "front_seat",
		MinBid:  300,
		EndTime: time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
	}, 99)

	require.ErrorIs(t, err, model.ErrInvalidAmount)
	f.auctionRepo.AssertNotCalled(t, "InsertLot")
}

func TestPlaceBid_RaisesAndNotifiesOutbid(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	previous := int64(5)
	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", Title: "Front row seat", MinBid: 300,
		CurrentBid: 350, CurrentBidderID: &previous, BidCount: 1,
		EndTime: time.Now().Add(time.Hour), Status: model.LotOpen,
	}, nil)
	f.accountRepo.On("GetAccount", ctx, int64(3), mock.Anything).Return(&model.Account{ID: 3}, nil)
	f.auctionRepo.On("RecordBid", ctx, int64(7), mock.MatchedBy(func(b *model.Bid) bool {
		return b.BidderID == 3 && b.Amount == 400
	}), mock.Anything).Return(nil)
	f.auditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "BID_PLACED"
	}), mock.Anything).Return(nil)
	f.notifier.On("LotUpdated", mock.Anything).Return()
	f.notifier.On("Outbid", int64(5), mock.Anything).Return()

	lot, err := f.service.PlaceBid(ctx, "lot-1", 3, 400)

	require.NoError(t, err)
	assert.Equal(t, int64(400), lot.CurrentBid)
	assert.Equal(t, int64(3), *lot.CurrentBidderID)
	assert.Equal(t, 2, lot.BidCount)
}

func TestPlaceBid_EqualToCurrentRejected(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", CurrentBid: 350,
		EndTime: time.Now().Add(time.Hour), Status: model.LotOpen,
	}, nil)

	_, err := f.service.PlaceBid(ctx, "lot-1", 3, 350)

	require.ErrorIs(t, err, model.ErrBidTooLow)
	f.auctionRepo.AssertNotCalled(t, "RecordBid")
}

func TestPlaceBid_AfterEndTime(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", CurrentBid: 350,
		EndTime: time.Now().Add(-time.Minute), Status: model.LotOpen,
	}, nil)

	_, err := f.service.PlaceBid(ctx, "lot-1", 3, 400)

	require.ErrorIs(t, err, model.ErrInvalidState)
}

func TestUpdateLot_MinBidFrozenAfterFirstBid(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	bidder := int64(3)
	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", MinBid: 300, CurrentBid: 400, CurrentBidderID: &bidder,
		Status: model.LotOpen,
	}, nil)

	newMin := int64(500)
	_, err := f.service.Update(ctx, "lot-1", &model.UpdateLotRequest{MinBid: &newMin}, 99)

	require.ErrorIs(t, err, model.ErrInvalidState)
	f.auctionRepo.AssertNotCalled(t, "UpdateLotFields")
}

func TestUpdateLot_PastEndTimeRejected(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", MinBid: 300, CurrentBid: 300,
		EndTime: time.Now().Add(time.Hour), Status: model.LotOpen,
	}, nil)

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	_, err := f.service.Update(ctx, "lot-1", &model.UpdateLotRequest{EndTime: &past}, 99)

	require.ErrorIs(t, err, model.ErrInvalidAmount)
	f.auctionRepo.AssertNotCalled(t, "UpdateLotFields")
}

func TestUpdateLot_TitleStillEditableAfterBid(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	bidder := int64(3)
	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", Title: "old", MinBid: 300, CurrentBid: 400,
		CurrentBidderID: &bidder, Status: model.LotOpen,
	}, nil)
	f.auctionRepo.On("UpdateLotFields", ctx, mock.MatchedBy(func(l *model.AuctionLot) bool {
		return l.Title == "new title" && l.MinBid == 300
	}), mock.Anything).Return(nil)
	f.notifier.On("LotUpdated", mock.Anything).Return()

	title := "new title"
	lot, err := f.service.Update(ctx, "lot-1", &model.UpdateLotRequest{Title: &title}, 99)

	require.NoError(t, err)
	assert.Equal(t, "new title", lot.Title)
}

func TestUpdateLot_MinBidResetsCurrentBeforeBids(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", MinBid: 300, CurrentBid: 300, Status: model.LotOpen,
	}, nil)
	f.auctionRepo.On("UpdateLotFields", ctx, mock.MatchedBy(func(l *model.AuctionLot) bool {
		return l.MinBid == 500 && l.CurrentBid == 500
	}), mock.Anything).Return(nil)
	f.notifier.On("LotUpdated", mock.Anything).Return()

	newMin := int64(500)
	lot, err := f.service.Update(ctx, "lot-1", &model.UpdateLotRequest{MinBid: &newMin}, 99)

	require.NoError(t, err)
	assert.Equal(t, int64(500), lot.CurrentBid)
}

func TestCloseLot_WinnerDebited(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	bidder := int64(3)
	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", Title: "Front row seat", CurrentBid: 400,
		CurrentBidderID: &bidder, Status: model.LotOpen,
	}, nil)
	f.accountRepo.On("GetAccountForUpdate", ctx, int64(3), mock.Anything).Return(&model.Account{
		ID: 3, Balance: 1000,
	}, nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(3), int64(600), mock.Anything).Return(nil)
	f.auctionRepo.On("FinalizeLot", ctx, int64(7), &bidder, mock.Anything).Return(true, nil)
	f.auditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "AUCTION_WON"
	}), mock.Anything).Return(nil)
	f.notifier.On("LotUpdated", mock.Anything).Return()

	resp, err := f.service.Close(ctx, "lot-1", 99)

	require.NoError(t, err)
	assert.Equal(t, "finalized", resp.Status)
	require.NotNil(t, resp.WinnerID)
	assert.Equal(t, int64(3), *resp.WinnerID)
	assert.Equal(t, int64(400), resp.Amount)
}

func TestCloseLot_NoBids(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", Status: model.LotOpen,
	}, nil)
	f.auctionRepo.On("FinalizeLot", ctx, int64(7), (*int64)(nil), mock.Anything).Return(true, nil)
	f.notifier.On("LotUpdated", mock.Anything).Return()

	resp, err := f.service.Close(ctx, "lot-1", 99)

	require.NoError(t, err)
	assert.Nil(t, resp.WinnerID)
	assert.Equal(t, "No bids", resp.Message)
}

func TestCloseLot_WinnerCannotCover(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	bidder := int64(3)
	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", CurrentBid: 400,
		CurrentBidderID: &bidder, Status: model.LotOpen,
	}, nil)
	// The promised funds were spent elsewhere after the bid.
	f.accountRepo.On("GetAccountForUpdate", ctx, int64(3), mock.Anything).Return(&model.Account{
		ID: 3, Balance: 250,
	}, nil)
	f.auctionRepo.On("FinalizeLot", ctx, int64(7), (*int64)(nil), mock.Anything).Return(true, nil)
	f.auditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "AUCTION_FORFEIT"
	}), mock.Anything).Return(nil)
	f.notifier.On("LotUpdated", mock.Anything).Return()

	resp, err := f.service.Close(ctx, "lot-1", 99)

	require.NoError(t, err)
	assert.Nil(t, resp.WinnerID)
	f.accountRepo.AssertNotCalled(t, "UpdateBalance")
}

func TestCloseLot_AlreadyFinalized(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", Status: model.LotFinalized,
	}, nil)

	_, err := f.service.Close(ctx, "lot-1", 99)

	require.ErrorIs(t, err, model.ErrInvalidState)
}

func TestDeliver_MintsPersonalSlot(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	winner := int64(3)
	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", Title: "Front row seat", ItemRef: "front_seat",
		CurrentBid: 400, WinnerID: &winner, Status: model.LotFinalized,
	}, nil)
	f.accountRepo.On("GetAccount", ctx, int64(3), mock.Anything).Return(&model.Account{
		ID: 3, RoomID: 4,
	}, nil)
	f.inventoryRepo.On("InsertSlot", ctx, mock.MatchedBy(func(s *model.InventorySlot) bool {
		return s.OwnerKind == model.OwnerKindUser && s.OwnerID == 3 &&
			s.Origin == model.OriginAuction && s.Quantity == 1 && s.ExpiresAt == nil
	}), mock.Anything).Return(nil)
	f.auctionRepo.On("MarkDelivered", ctx, int64(7), mock.Anything).Return(true, nil)
	f.auditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "AUCTION_DELIVERED"
	}), mock.Anything).Return(nil)

	resp, err := f.service.Deliver(ctx, "lot-1", 99)

	require.NoError(t, err)
	assert.Equal(t, "delivered", resp.Status)
}

func TestDeliver_HouseItemLandsInRoom(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	winner := int64(3)
	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", Title: "Class beanbag", ItemRef: "beanbag",
		CurrentBid: 400, WinnerID: &winner, HouseItem: true, ValidityDays: 30,
		Status: model.LotFinalized,
	}, nil)
	f.accountRepo.On("GetAccount", ctx, int64(3), mock.Anything).Return(&model.Account{
		ID: 3, RoomID: 4,
	}, nil)
	f.inventoryRepo.On("InsertSlot", ctx, mock.MatchedBy(func(s *model.InventorySlot) bool {
		return s.OwnerKind == model.OwnerKindRoom && s.OwnerID == 4 &&
			s.AcquiredBy == 3 && s.ExpiresAt != nil
	}), mock.Anything).Return(nil)
	f.auctionRepo.On("MarkDelivered", ctx, int64(7), mock.Anything).Return(true, nil)
	f.auditRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Deliver(ctx, "lot-1", 99)

	require.NoError(t, err)
}

func TestDeliver_NotFinalized(t *testing.T) {
	ctx := context.Background()
	f := newAuctionFixture(t)
	f.passthroughTx(ctx)

	f.auctionRepo.On("GetLotForUpdate", ctx, "lot-1", mock.Anything).Return(&model.AuctionLot{
		ID: 7, LotID: "lot-1", Status: model.LotOpen,
	}, nil)

	_, err := f.service.Deliver(ctx, "lot-1", 99)

	require.ErrorIs(t, err, model.ErrInvalidState)
	f.inventoryRepo.AssertNotCalled(t, "InsertSlot")
}
