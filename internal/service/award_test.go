package service

import (
	"context"
	"testing"
	"time"

	"economy-engine/internal/config"
	"economy-engine/internal/model"
	mocks "economy-engine/mocks/repository"
	svcmocks "economy-engine/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultEconomyConfig() config.EconomyConfig {
	return config.EconomyConfig{
		AllowDebt:         true,
		EnforceFairness:   true,
		FairnessThreshold: 0.80,
		TransferFee:       800,
	}
}

func TestApplyBulkAward_MultiplierPerAccount(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockAuditRepo := mocks.NewAuditRepository(t)
	mockDBManager := mocks.NewDBManager(t)
	mockGranter := svcmocks.NewSkillGranter(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })

	// Account 2 holds a double-reward buff, so the same base of 50 lands
	// as 100 there and 50 on account 1.
	mockAccountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 100, MaxBalance: 500},
		{ID: 2, Balance: 0, MaxBalance: 500, Buffs: []model.Buff{{Effect: model.BuffDoubleReward}}},
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), int64(150), mock.Anything).Return(nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(2), int64(100), mock.Anything).Return(nil)
	mockAuditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "BULK_AWARD" && e.ActorID == 99
	}), mock.Anything).Return(nil).Times(2)

	service := NewAwardService(mockAccountRepo, mockAuditRepo, mockDBManager, mockGranter, defaultEconomyConfig(), logger)

	resp, err := service.ApplyBulkAward(ctx, &model.BulkAwardRequest{
		AccountIDs: []int64{1, 2},
		Amount:     50,
		Kind:       "award",
		Reason:     "group project",
	}, 99)

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Accounts)
	mockGranter.AssertNotCalled(t, "GrantForNewMax")
}

func TestApplyBulkAward_NewMaxTriggersGrants(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockAuditRepo := mocks.NewAuditRepository(t)
	mockDBManager := mocks.NewDBManager(t)
	mockGranter := svcmocks.NewSkillGranter(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })

	mockAccountRepo.On("GetAccountsForUpdate", ctx, []int64{7}, mock.Anything).Return([]*model.Account{
		{ID: 7, Balance: 950, MaxBalance: 950},
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(7), int64(1050), mock.Anything).Return(nil)
	mockAccountRepo.On("UpdateMaxBalance", ctx, int64(7), int64(1050), mock.Anything).Return(nil)
	mockGranter.On("GrantForNewMax", ctx, mock.Anything, mock.MatchedBy(func(a *model.Account) bool {
		return a.ID == 7 && a.MaxBalance == 1050
	})).Return(true, nil)
	mockAuditRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)

	service := NewAwardService(mockAccountRepo, mockAuditRepo, mockDBManager, mockGranter, defaultEconomyConfig(), logger)

	_, err := service.ApplyBulkAward(ctx, &model.BulkAwardRequest{
		AccountIDs: []int64{7},
		Amount:     100,
		Kind:       "award",
	}, 99)

	require.NoError(t, err)
}

func TestApplyBulkAward_FractionalDeltaFloored(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockAuditRepo := mocks.NewAuditRepository(t)
	mockDBManager := mocks.NewDBManager(t)
	mockGranter := svcmocks.NewSkillGranter(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })

	// Blessing role: 25 * 1.5 = 37.5, floored to 37.
	mockAccountRepo.On("GetAccountsForUpdate", ctx, []int64{3}, mock.Anything).Return([]*model.Account{
		{ID: 3, Balance: 0, MaxBalance: 500, Roles: []string{model.RoleBlessing}},
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(3), int64(37), mock.Anything).Return(nil)
	mockAuditRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)

	service := NewAwardService(mockAccountRepo, mockAuditRepo, mockDBManager, mockGranter, defaultEconomyConfig(), logger)

	_, err := service.ApplyBulkAward(ctx, &model.BulkAwardRequest{
		AccountIDs: []int64{3},
		Amount:     25,
		Kind:       "award",
	}, 99)

	require.NoError(t, err)
}

func TestApplyBulkAward_PenaltyIsFlat(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockAuditRepo := mocks.NewAuditRepository(t)
	mockDBManager := mocks.NewDBManager(t)
	mockGranter := svcmocks.NewSkillGranter(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })

	// With debt allowed no per-account balance check happens; the decrement
	// is one flat statement, multipliers never apply.
	mockAccountRepo.On("BulkAdjustBalance", ctx, []int64{1, 2, 3}, int64(-200), mock.Anything).Return(nil)
	mockAuditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "BULK_PENALTY"
	}), mock.Anything).Return(nil).Times(3)

	service := NewAwardService(mockAccountRepo, mockAuditRepo, mockDBManager, mockGranter, defaultEconomyConfig(), logger)

	resp, err := service.ApplyBulkAward(ctx, &model.BulkAwardRequest{
		AccountIDs: []int64{1, 2, 3},
		Amount:     200,
		Kind:       "penalize",
		Reason:     "late homework",
	}, 99)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Accounts)
	mockAccountRepo.AssertNotCalled(t, "GetAccountsForUpdate")
}

func TestApplyBulkAward_DuplicateAccountsCollapsed(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockAuditRepo := mocks.NewAuditRepository(t)
	mockDBManager := mocks.NewDBManager(t)
	mockGranter := svcmocks.NewSkillGranter(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })

	// A repeated ID fines the account once, not twice, and must not make
	// the batch look like it touched a missing account.
	mockAccountRepo.On("BulkAdjustBalance", ctx, []int64{1, 2}, int64(-200), mock.Anything).Return(nil)
	mockAuditRepo.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == "BULK_PENALTY"
	}), mock.Anything).Return(nil).Times(2)

	service := NewAwardService(mockAccountRepo, mockAuditRepo, mockDBManager, mockGranter, defaultEconomyConfig(), logger)

	resp, err := service.ApplyBulkAward(ctx, &model.BulkAwardRequest{
		AccountIDs: []int64{1, 2, 1},
		Amount:     200,
		Kind:       "penalize",
		Reason:     "late homework",
	}, 99)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Accounts)
}

func TestApplyBulkAward_PenaltyRejectedWithoutDebt(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockAuditRepo := mocks.NewAuditRepository(t)
	mockDBManager := mocks.NewDBManager(t)
	mockGranter := svcmocks.NewSkillGranter(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })

	mockAccountRepo.On("GetAccountsForUpdate", ctx, []int64{1, 2}, mock.Anything).Return([]*model.Account{
		{ID: 1, Balance: 500},
		{ID: 2, Balance: 100},
	}, nil)

	cfg := defaultEconomyConfig()
	cfg.AllowDebt = false
	service := NewAwardService(mockAccountRepo, mockAuditRepo, mockDBManager, mockGranter, cfg, logger)

	_, err := service.ApplyBulkAward(ctx, &model.BulkAwardRequest{
		AccountIDs: []int64{1, 2},
		Amount:     200,
		Kind:       "penalize",
	}, 99)

	require.ErrorIs(t, err, model.ErrInsufficientFunds)
	mockAccountRepo.AssertNotCalled(t, "BulkAdjustBalance")
}

func TestApplyBulkAward_InvalidKind(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockAuditRepo := mocks.NewAuditRepository(t)
	mockDBManager := mocks.NewDBManager(t)
	mockGranter := svcmocks.NewSkillGranter(t)

	service := NewAwardService(mockAccountRepo, mockAuditRepo, mockDBManager, mockGranter, defaultEconomyConfig(), logger)

	_, err := service.ApplyBulkAward(ctx, &model.BulkAwardRequest{
		AccountIDs: []int64{1},
		Amount:     50,
		Kind:       "gift",
	}, 99)

	require.ErrorIs(t, err, model.ErrInvalidAwardKind)
	mockDBManager.AssertNotCalled(t, "WithTransaction")
}

func TestApplyBulkAward_NonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	service := NewAwardService(mocks.NewAccountRepository(t), mocks.NewAuditRepository(t),
		mocks.NewDBManager(t), svcmocks.NewSkillGranter(t), defaultEconomyConfig(), logger)

	_, err := service.ApplyBulkAward(ctx, &model.BulkAwardRequest{
		AccountIDs: []int64{1},
		Amount:     -10,
		Kind:       "award",
	}, 99)

	require.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestGetMultiplier_UsesLiveBuffs(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockAccountRepo := mocks.NewAccountRepository(t)

	past := time.Now().Add(-time.Hour)
	mockAccountRepo.On("GetAccount", ctx, int64(5)).Return(&model.Account{
		ID:    5,
		Buffs: []model.Buff{{Effect: model.BuffTripleReward, ExpiresAt: &past}},
	}, nil)

	service := NewAwardService(mockAccountRepo, mocks.NewAuditRepository(t),
		mocks.NewDBManager(t), svcmocks.NewSkillGranter(t), defaultEconomyConfig(), logger)

	resp, err := service.GetMultiplier(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, "1", resp.Multiplier)
}
