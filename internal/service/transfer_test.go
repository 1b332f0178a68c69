package service

import (
	"context"
	"testing"
	"time"

	"economy-engine/internal/model"
	mocks "economy-engine/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transferFixture struct {
	accountRepo   *mocks.AccountRepository
	inventoryRepo *mocks.InventoryRepository
	auditRepo     *mocks.AuditRepository
	dbManager     *mocks.DBManager
	service       TransferService
}

func newTransferFixture(t *testing.T) *transferFixture {
	f := &transferFixture{
		accountRepo:   mocks.NewAccountRepository(t),
		inventoryRepo: mocks.NewInventoryRepository(t),
		auditRepo:     mocks.NewAuditRepository(t),
		dbManager:     mocks.NewDBManager(t),
	}
	f.service = NewTransferService(f.accountRepo, f.inventoryRepo, f.auditRepo,
		f.dbManager, defaultEconomyConfig(), zerolog.Nop())
	return f
}

func (f *transferFixture) passthroughTx(ctx context.Context) {
	f.dbManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
}

func TestTransfer_FlatFeeCharged(t *testing.T) {
	ctx := context.Background()
	f := newTransferFixture(t)
	f.passthroughTx(ctx)

	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Name: "ana", Balance: 2000},
		{ID: 2, Name: "bruno", Balance: 100},
	}, nil)
	// 500 to the target plus the 800 fee off the sender; the fee leaves
	// the economy entirely.
	f.accountRepo.On("UpdateBalance", ctx, int64(1), int64(700), mock.Anything).Return(nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(2), int64(600), mock.Anything).Return(nil)
	f.auditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "TRANSFER"
	}), mock.Anything).Return(nil)

	resp, err := f.service.Transfer(ctx, &model.TransferRequest{TargetID: 2, Amount: 500}, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(700), resp.NewBalance)
	assert.Equal(t, int64(800), resp.FeePaid)
}

func TestTransfer_BuffWaivesFeeWithoutConsuming(t *testing.T) {
	ctx := context.Background()
	f := newTransferFixture(t)
	f.passthroughTx(ctx)

	future := time.Now().Add(time.Hour)
	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 600, Buffs: []model.Buff{{Effect: model.BuffTaxExemption, ExpiresAt: &future}}},
		{ID: 2, Balance: 100},
	}, nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(1), int64(100), mock.Anything).Return(nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(2), int64(600), mock.Anything).Return(nil)
	f.auditRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Transfer(ctx, &model.TransferRequest{
		TargetID: 2, Amount: 500, UseExemption: true,
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.FeePaid)
	f.inventoryRepo.AssertNotCalled(t, "AdjustCharges")
}

func TestTransfer_SkillChargeConsumedForWaiver(t *testing.T) {
	ctx := context.Background()
	f := newTransferFixture(t)
	f.passthroughTx(ctx)

	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 600},
		{ID: 2, Balance: 100},
	}, nil)
	f.inventoryRepo.On("ListByOwner", ctx, model.OwnerKindUser, int64(1), mock.Anything).Return([]*model.InventorySlot{
		{ID: 30, Kind: model.SlotKindItem, ItemRef: "snack_pass", Quantity: 1},
		{ID: 31, Kind: model.SlotKindSkill, SkillCode: SkillTaxExemption, ChargesLeft: 2},
	}, nil)
	f.inventoryRepo.On("GetSlotForUpdate", ctx, int64(31), mock.Anything).Return(&model.InventorySlot{
		ID: 31, Kind: model.SlotKindSkill, SkillCode: SkillTaxExemption, ChargesLeft: 2,
	}, nil)
	f.inventoryRepo.On("AdjustCharges", ctx, int64(31), -1, mock.Anything).Return(nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(1), int64(100), mock.Anything).Return(nil)
	f.accountRepo.On("UpdateBalance", ctx, int64(2), int64(600), mock.Anything).Return(nil)
	f.auditRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Transfer(ctx, &model.TransferRequest{
		TargetID: 2, Amount: 500, UseExemption: true,
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.FeePaid)
}

func TestTransfer_NoExemptionAvailable(t *testing.T) {
	ctx := context.Background()
	f := newTransferFixture(t)
	f.passthroughTx(ctx)

	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 600},
		{ID: 2, Balance: 100},
	}, nil)
	f.inventoryRepo.On("ListByOwner", ctx, model.OwnerKindUser, int64(1), mock.Anything).
		Return([]*model.InventorySlot{}, nil)

	_, err := f.service.Transfer(ctx, &model.TransferRequest{
		TargetID: 2, Amount: 500, UseExemption: true,
	}, 1)

	require.ErrorIs(t, err, model.ErrNoExemption)
	f.accountRepo.AssertNotCalled(t, "UpdateBalance")
}

func TestTransfer_InsufficientForAmountPlusFee(t *testing.T) {
	ctx := context.Background()
	f := newTransferFixture(t)
	f.passthroughTx(ctx)

	// 500 + 800 fee against a balance of 1000.
	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 1000},
		{ID: 2, Balance: 100},
	}, nil)

	_, err := f.service.Transfer(ctx, &model.TransferRequest{TargetID: 2, Amount: 500}, 1)

	require.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestTransfer_SelfTarget(t *testing.T) {
	ctx := context.Background()
	f := newTransferFixture(t)

	_, err := f.service.Transfer(ctx, &model.TransferRequest{TargetID: 1, Amount: 50}, 1)

	require.ErrorIs(t, err, model.ErrSelfTarget)
	f.dbManager.AssertNotCalled(t, "WithTransaction")
}

func TestTransfer_TargetMissing(t *testing.T) {
	ctx := context.Background()
	f := newTransferFixture(t)
	f.passthroughTx(ctx)

	f.accountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 2000},
	}, nil)

	_, err := f.service.Transfer(ctx, &model.TransferRequest{TargetID: 2, Amount: 500}, 1)

	require.ErrorIs(t, err, model.ErrAccountNotFound)
}
