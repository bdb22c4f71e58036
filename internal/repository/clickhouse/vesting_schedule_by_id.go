package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// VestingScheduleByID returns the latest version of a vesting schedule row.
func (r *Repository) VestingScheduleByID(ctx context.Context, id uint32) (model.VestingSchedule, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("vesting_schedule_by_id", err, start)
	}()

	const query = `
SELECT
	id,
	grantor,
	beneficiary,
	token,
	total_amount,
	claimed_amount,
	start_time,
	cliff_duration,
	cliff_amount,
	total_duration,
	label,
	revocable,
	status,
	updated_at
FROM vesting_schedules FINAL
WHERE id = ?`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return model.VestingSchedule{}, false, fmt.Errorf("query vesting schedule: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.VestingSchedule{}, false, fmt.Errorf("iterate vesting schedule: %w", err)
		}
		return model.VestingSchedule{}, false, nil
	}

	var (
		schedule             model.VestingSchedule
		grantor, beneficiary string
		token, status        string
		total, claimed       big.Int
		cliff                big.Int
	)
	if err = rows.Scan(
		&schedule.ID,
		&grantor,
		&beneficiary,
		&token,
		&total,
		&claimed,
		&schedule.StartTime,
		&schedule.CliffDuration,
		&cliff,
		&schedule.TotalDuration,
		&schedule.Label,
		&schedule.Revocable,
		&status,
		&schedule.UpdatedAt,
	); err != nil {
		return model.VestingSchedule{}, false, fmt.Errorf("scan vesting schedule: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.VestingSchedule{}, false, fmt.Errorf("iterate vesting schedule: %w", err)
	}

	schedule.Grantor = model.Account(grantor)
	schedule.Beneficiary = model.Account(beneficiary)
	schedule.Token = model.Token(token)
	schedule.TotalAmount = &total
	schedule.ClaimedAmount = &claimed
	schedule.CliffAmount = &cliff
	schedule.Status = model.VestingStatus(status)

	return schedule, true, nil
}
