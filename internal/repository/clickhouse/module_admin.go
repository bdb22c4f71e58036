package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// ModuleAdmin returns the registered admin of a module, if any.
func (r *Repository) ModuleAdmin(ctx context.Context, module string) (model.Account, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("module_admin", err, start)
	}()

	const query = `
SELECT admin
FROM module_admins FINAL
WHERE module = ?`

	rows, err := r.conn.Query(ctx, query, module)
	if err != nil {
		return "", false, fmt.Errorf("query module admin: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return "", false, fmt.Errorf("iterate module admin: %w", err)
		}
		return "", false, nil
	}

	var admin string
	if err = rows.Scan(&admin); err != nil {
		return "", false, fmt.Errorf("scan module admin: %w", err)
	}
	if err = rows.Err(); err != nil {
		return "", false, fmt.Errorf("iterate module admin: %w", err)
	}

	return model.Account(admin), true, nil
}

// SetModuleAdmin stores the admin of a module, replacing any prior row.
func (r *Repository) SetModuleAdmin(ctx context.Context, module string, admin model.Account) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_module_admin", err, start)
	}()

	const query = `
INSERT INTO module_admins (
	module,
	admin,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare module admin batch: %w", err)
	}
	if err = batch.Append(module, string(admin), time.Now().UTC()); err != nil {
		return fmt.Errorf("append module admin: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert module admin: %w", err)
	}
	return nil
}
