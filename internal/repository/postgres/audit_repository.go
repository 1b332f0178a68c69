package postgres

import (
	"context"
	"fmt"

	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AuditRepository = (*AuditRepositoryImpl)(nil)

// AuditRepositoryImpl appends to the write-once audit_log table.
type AuditRepositoryImpl struct {
	*TransactionManager
}

func NewAuditRepository(pool *pgxpool.Pool) repository.AuditRepository {
	return &AuditRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *AuditRepositoryImpl) Append(ctx context.Context, entry *model.AuditEntry, tx pgx.Tx) error {
	err := tx.QueryRow(ctx, `
        INSERT INTO audit_log (actor_id, target_id, action, detail)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`,
		entry.ActorID, entry.TargetID, entry.Action, entry.Detail).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}
