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
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

// AccountRepositoryImpl is the PostgreSQL implementation of AccountRepository
type AccountRepositoryImpl struct {
	*TransactionManager
}

func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const accountColumns = `id, name, room_id, roles, balance, max_balance, version, created_at, updated_at`

func scanAccount(row pgx.Row) (*model.Account, error) {
	acc := &model.Account{}
	err := row.Scan(&acc.ID, &acc.Name, &acc.RoomID, &acc.Roles, &acc.Balance,
		&acc.MaxBalance, &acc.Version, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return acc, nil
}

// loadBuffs attaches all stored buffs to the account. Expired rows are
// included on purpose; filtering is the resolver's job.
func (r *AccountRepositoryImpl) loadBuffs(ctx context.Context, acc *model.Account, q Querier) error {
	rows, err := q.Query(ctx,
		`SELECT id, account_id, effect, source, expires_at, created_at
		 FROM account_buffs WHERE account_id = $1`, acc.ID)
	if err != nil {
		return fmt.Errorf("failed to query buffs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Buff
		if err := rows.Scan(&b.ID, &b.AccountID, &b.Effect, &b.Source, &b.ExpiresAt, &b.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan buff: %w", err)
		}
		acc.Buffs = append(acc.Buffs, b)
	}
	return rows.Err()
}

// GetAccount retrieves an account with its buffs and roles
func (r *AccountRepositoryImpl) GetAccount(ctx context.Context, accountID int64, tx ...pgx.Tx) (*model.Account, error) {
	executor := r.getExecutor(tx...)
	acc, err := scanAccount(executor.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, accountID))
	if err != nil {
		return nil, err
	}
	if err := r.loadBuffs(ctx, acc, executor); err != nil {
		return nil, err
	}
	return acc, nil
}

// GetAccountForUpdate retrieves an account with a row-level lock
func (r *AccountRepositoryImpl) GetAccountForUpdate(ctx context.Context, accountID int64, tx pgx.Tx) (*model.Account, error) {
	acc, err := scanAccount(tx.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, accountID))
	if err != nil {
		return nil, err
	}
	if err := r.loadBuffs(ctx, acc, tx); err != nil {
		return nil, err
	}
	return acc, nil
}

// GetAccountsForUpdate locks many accounts in ascending-ID order
func (r *AccountRepositoryImpl) GetAccountsForUpdate(ctx context.Context, accountIDs []int64, tx pgx.Tx) ([]*model.Account, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		acc := &model.Account{}
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.RoomID, &acc.Roles, &acc.Balance,
			&acc.MaxBalance, &acc.Version, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(accounts) != len(accountIDs) {
		return nil, model.ErrAccountNotFound
	}

	for _, acc := range accounts {
		if err := r.loadBuffs(ctx, acc, tx); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

// GetBalance retrieves the current balance for an account
func (r *AccountRepositoryImpl) GetBalance(ctx context.Context, accountID int64, tx ...pgx.Tx) (int64, error) {
	var balance int64
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrAccountNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// UpdateBalance sets an account's balance
func (r *AccountRepositoryImpl) UpdateBalance(ctx context.Context, accountID int64, balance int64, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `
        UPDATE accounts
        SET balance = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`, balance, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// UpdateMaxBalance records a new historical maximum
func (r *AccountRepositoryImpl) UpdateMaxBalance(ctx context.Context, accountID int64, maxBalance int64, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `
        UPDATE accounts
        SET max_balance = $1, updated_at = NOW()
        WHERE id = $2`, maxBalance, accountID)
	if err != nil {
		return fmt.Errorf("failed to update max balance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// BulkAdjustBalance applies one unconditional delta to every named account
func (r *AccountRepositoryImpl) BulkAdjustBalance(ctx context.Context, accountIDs []int64, delta int64, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `
        UPDATE accounts
        SET balance = balance + $1, version = version + 1, updated_at = NOW()
        WHERE id = ANY($2)`, delta, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk adjust balances: %w", err)
	}
	if commandTag.RowsAffected() != int64(len(accountIDs)) {
		return model.ErrAccountNotFound
	}
	return nil
}

// InsertBuff attaches a buff to an account
func (r *AccountRepositoryImpl) InsertBuff(ctx context.Context, buff *model.Buff, tx pgx.Tx) error {
	err := tx.QueryRow(ctx, `
        INSERT INTO account_buffs (account_id, effect, source, expires_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`,
		buff.AccountID, buff.Effect, buff.Source, buff.ExpiresAt).
		Scan(&buff.ID, &buff.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert buff: %w", err)
	}
	return nil
}
