package service

import (
	"context"
	"testing"

	"economy-engine/internal/model"
	mocks "economy-engine/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tradeFixture struct {
	accountRepo   *mocks.AccountRepository
	inventoryRepo *mocks.InventoryRepository
	tradeRepo     *mocks.TradeRepository
	auditRepo     *mocks.AuditRepository
	dbManager     *mocks.DBManager
	service       TradeService
}

func newTradeFixture(t *testing.T) *tradeFixture {
	f := &tradeFixture{
		accountRepo:   mocks.NewAccountRepository(t),
		inventoryRepo: mocks.NewInventoryRepository(t),
		tradeRepo:     mocks.NewTradeRepository(t),
		auditRepo:     mocks.NewAuditRepository(t),
		dbManager:     mocks.NewDBManager(t),
	}
	f.service = NewTradeService(f.accountRepo, f.inventoryRepo, f.tradeRepo, f.auditRepo,
		f.dbManager, defaultEconomyConfig(), zerolog.Nop())
	return f
}

func (f *tradeFixture) passthroughTx(ctx context.Context) {
	f.dbManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
}

func TestPropose_HappyPath(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	f.accountRepo.On("GetAccount", ctx, int64(2)).Return(&model.Account{ID: 2}, nil)
	f.inventoryRepo.On("GetSlot", ctx, int64(10)).Return(&model.InventorySlot{
		ID: 10, OwnerKind: model.OwnerKindUser, OwnerID: 1,
		Kind: model.SlotKindItem, BasePrice: 100, Quantity: 1,
	}, nil)
	f.tradeRepo.On("InsertTrade", ctx, mock.MatchedBy(func(tr *model.Trade) bool {
		return tr.InitiatorID == 1 && tr.TargetID == 2 &&
			tr.Status == model.TradePending && tr.TradeID != ""
	}), mock.Anything).Return(nil)

	resp, err := f.service.Propose(ctx, &model.TradeProposalRequest{
		TargetID:       2,
		OfferInitiator: model.OfferPayload{Currency: 300, SlotIDs: []int64{10}},
		OfferTarget:    model.OfferPayload{Currency: 400},
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "1", resp.FairnessRatio)
}

func TestPropose_UnfairRejected(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)

	f.accountRepo.On("GetAccount", ctx, int64(2)).Return(&model.Account{ID: 2}, nil)

	// 100 against 500 is a 0.2 ratio, well under the 0.8 floor.
	_, err := f.service.Propose(ctx, &model.TradeProposalRequest{
		TargetID:       2,
		OfferInitiator: model.OfferPayload{Currency: 100},
		OfferTarget:    model.OfferPayload{Currency: 500},
	}, 1)

	require.ErrorIs(t, err, model.ErrUnfairTrade)
	f.tradeRepo.AssertNotCalled(t, "InsertTrade")
}

func TestPropose_FairnessNotEnforced(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)

	cfg := defaultEconomyConfig()
	cfg.EnforceFairness = false
	f.service = NewTradeService(f.accountRepo, f.inventoryRepo, f.tradeRepo, f.auditRepo,
		f.dbManager, cfg, zerolog.Nop())
	f.passthroughTx(ctx)

	f.accountRepo.On("GetAccount", ctx, int64(2)).Return(&model.Account{ID: 2}, nil)
	f.tradeRepo.On("InsertTrade", ctx, mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Propose(ctx, &model.TradeProposalRequest{
		TargetID:       2,
		OfferInitiator: model.OfferPayload{Currency: 100},
		OfferTarget:    model.OfferPayload{Currency: 500},
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, "0.2", resp.FairnessRatio)
}

func TestPropose_SelfTarget(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)

	_, err := f.service.Propose(ctx, &model.TradeProposalRequest{TargetID: 1}, 1)

	require.ErrorIs(t, err, model.ErrSelfTarget)
}

func TestPropose_SkillNotTradable(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)

	f.accountRepo.On("GetAccount", ctx, int64(2)).Return(&model.Account{ID: 2}, nil)
	f.inventoryRepo.On("GetSlot", ctx, int64(11)).Return(&model.InventorySlot{
		ID: 11, OwnerKind: model.OwnerKindUser, OwnerID: 1,
		Kind: model.SlotKindSkill, SkillCode: "divine_hint", ChargesLeft: 2,
	}, nil)

	_, err := f.service.Propose(ctx, &model.TradeProposalRequest{
		TargetID:       2,
		OfferInitiator: model.OfferPayload{SlotIDs: []int64{11}},
		OfferTarget:    model.OfferPayload{Currency: 50},
	}, 1)

	require.ErrorIs(t, err, model.ErrSkillNotTradable)
}

func TestPropose_SlotNotHeld(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)

	f.accountRepo.On("GetAccount", ctx, int64(2)).Return(&model.Account{ID: 2}, nil)
	f.inventoryRepo.On("GetSlot", ctx, int64(12)).Return(&model.InventorySlot{
		ID: 12, OwnerKind: model.OwnerKindUser, OwnerID: 7,
		Kind: model.SlotKindItem, Quantity: 1,
	}, nil)

	_, err := f.service.Propose(ctx, &model.TradeProposalRequest{
		TargetID:       2,
		OfferInitiator: model.OfferPayload{SlotIDs: []int64{12}},
		OfferTarget:    model.OfferPayload{},
	}, 1)

	require.ErrorIs(t, err, model.ErrItemNotOwned)
}

func TestAccept_SettlesCurrencyAndItems(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	trade := &model.Trade{
		ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2,
		OfferInitiator: model.Offer{Currency: 300, SlotIDs: []int64{10}},
		OfferTarget:    model.Offer{Currency: 400},
		Status:         model.TradePending,
	}
	f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(trade, nil)
	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Name: "ana", Balance: 500},
		{ID: 2, Name: "bruno", Balance: 600},
	}, nil)
	f.inventoryRepo.On("GetSlotForUpdate", ctx, int64(10), mock.Anything).Return(&model.InventorySlot{
		ID: 10, OwnerKind: model.OwnerKindUser, OwnerID: 1,
		Kind: model.SlotKindItem, Quantity: 1,
	}, nil)
	f.inventoryRepo.On("UpdateOwner", ctx, int64(10), model.OwnerKindUser, int64(2), int64(2),
		model.OriginTrade, mock.Anything).Return(nil)
	// Initiator nets +100, target nets -100; the pair sums to zero.
	f.accountRepo.On("UpdateBalance", ctx, int64(1), int64(600), mock.Anything).Return(nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(2), int64(500), mock.Anything).Return(nil)
	f.tradeRepo.On("SetStatus", ctx, int64(55), model.TradePending, model.TradeAccepted, mock.Anything).
		Return(true, nil)
	f.auditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "TRADE_SETTLED"
	}), mock.Anything).Return(nil)

	resp, err := f.service.Accept(ctx, "t-1", 2)

	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
}

func TestAccept_OnlyTargetMayAccept(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(&model.Trade{
		ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2, Status: model.TradePending,
	}, nil)

	_, err := f.service.Accept(ctx, "t-1", 1)

	require.ErrorIs(t, err, model.ErrNotParticipant)
}

func TestAccept_AlreadySettled(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(&model.Trade{
		ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2, Status: model.TradeAccepted,
	}, nil)

	_, err := f.service.Accept(ctx, "t-1", 2)

	require.ErrorIs(t, err, model.ErrInvalidState)
}

func TestAccept_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(&model.Trade{
		ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2,
		OfferInitiator: model.Offer{Currency: 300},
		OfferTarget:    model.Offer{Currency: 350},
		Status:         model.TradePending,
	}, nil)
	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 200},
		{ID: 2, Balance: 600},
	}, nil)

	_, err := f.service.Accept(ctx, "t-1", 2)

	require.ErrorIs(t, err, model.ErrInsufficientFunds)
	f.accountRepo.AssertNotCalled(t, "UpdateBalance")
}

func TestAccept_SlotLeftInventory(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(&model.Trade{
		ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2,
		OfferInitiator: model.Offer{SlotIDs: []int64{10}},
		Status:         model.TradePending,
	}, nil)
	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Name: "ana", Balance: 500},
		{ID: 2, Name: "bruno", Balance: 600},
	}, nil)
	// The slot was traded away by a concurrent settlement that committed
	// first; this one must fail whole.
	f.inventoryRepo.On("GetSlotForUpdate", ctx, int64(10), mock.Anything).Return(&model.InventorySlot{
		ID: 10, OwnerKind: model.OwnerKindUser, OwnerID: 9,
		Kind: model.SlotKindItem, Quantity: 1,
	}, nil)

	_, err := f.service.Accept(ctx, "t-1", 2)

	require.ErrorIs(t, err, model.ErrItemNotOwned)
	f.tradeRepo.AssertNotCalled(t, "SetStatus")
}

func TestAccept_StatusRace(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(&model.Trade{
		ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2, Status: model.TradePending,
	}, nil)
	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 500},
		{ID: 2, Balance: 600},
	}, nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(1), int64(500), mock.Anything).Return(nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(2), int64(600), mock.Anything).Return(nil)
	f.tradeRepo.On("SetStatus", ctx, int64(55), model.TradePending, model.TradeAccepted, mock.Anything).
		Return(false, nil)

	_, err := f.service.Accept(ctx, "t-1", 2)

	require.ErrorIs(t, err, model.ErrConflict)
}

func TestAccept_MultiQuantitySplitsStack(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(&model.Trade{
		ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2,
		OfferInitiator: model.Offer{SlotIDs: []int64{10}},
		Status:         model.TradePending,
	}, nil)
	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Name: "ana", Balance: 500},
		{ID: 2, Name: "bruno", Balance: 600, RoomID: 4},
	}, nil)
	f.inventoryRepo.On("GetSlotForUpdate", ctx, int64(10), mock.Anything).Return(&model.InventorySlot{
		ID: 10, OwnerKind: model.OwnerKindUser, OwnerID: 1,
		Kind: model.SlotKindItem, ItemRef: "snack_pass", Quantity: 3,
	}, nil)
	f.inventoryRepo.On("AdjustQuantity", ctx, int64(10), -1, mock.Anything).Return(nil)
	f.inventoryRepo.On("InsertSlot", ctx, mock.MatchedBy(func(s *model.InventorySlot) bool {
		return s.OwnerID == 2 && s.Quantity == 1 && s.Origin == model.OriginTrade &&
			s.ItemRef == "snack_pass"
	}), mock.Anything).Return(nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(1), int64(500), mock.Anything).Return(nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(2), int64(600), mock.Anything).Return(nil)
	f.tradeRepo.On("SetStatus", ctx, int64(55), model.TradePending, model.TradeAccepted, mock.Anything).
		Return(true, nil)
	f.auditRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Accept(ctx, "t-1", 2)

	require.NoError(t, err)
}

func TestCancel_EitherParty(t *testing.T) {
	ctx := context.Background()

	for _, actingID := range []int64{1, 2} {
		f := newTradeFixture(t)
		f.passthroughTx(ctx)

		f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(&model.Trade{
			ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2, Status: model.TradePending,
		}, nil)
		f.tradeRepo.On("SetStatus", ctx, int64(55), model.TradePending, model.TradeCancelled, mock.Anything).
			Return(true, nil)

		resp, err := f.service.Cancel(ctx, "t-1", actingID)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	}
}

func TestCancel_OutsiderRejected(t *testing.T) {
	ctx := context.Background()
	f := newTradeFixture(t)
	f.passthroughTx(ctx)

	f.tradeRepo.On("GetTradeForUpdate", ctx, "t-1", mock.Anything).Return(&model.Trade{
		ID: 55, TradeID: "t-1", InitiatorID: 1, TargetID: 2, Status: model.TradePending,
	}, nil)

	_, err := f.service.Cancel(ctx, "t-1", 9)

	require.ErrorIs(t, err, model.ErrNotParticipant)
}
