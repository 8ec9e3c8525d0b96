package postgres

import (
	"context"
	"fmt"
)

func (r *auditRepository) Append(ctx context.Context, actor, action, entity string, entityID int64) error {
	query := `
		INSERT INTO audit_logs (actor, action, entity, entity_id)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, actor, action, entity, entityID); err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}
