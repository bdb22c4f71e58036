package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// InsertVestingSchedules stores vesting schedule rows in ClickHouse.
func (r *Repository) InsertVestingSchedules(ctx context.Context, schedules []model.VestingSchedule) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_vesting_schedules", err, start)
	}()

	err = r.insertVestingSchedules(ctx, schedules)
	return err
}

// ReplaceVestingSchedule stores a new version of a vesting schedule row.
func (r *Repository) ReplaceVestingSchedule(ctx context.Context, schedule model.VestingSchedule) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("replace_vesting_schedule", err, start)
	}()

	err = r.insertVestingSchedules(ctx, []model.VestingSchedule{schedule})
	return err
}

func (r *Repository) insertVestingSchedules(ctx context.Context, schedules []model.VestingSchedule) error {
	if len(schedules) == 0 {
		return nil
	}

	const query = `
INSERT INTO vesting_schedules (
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
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare vesting schedules batch: %w", err)
	}

	for _, schedule := range schedules {
		if err := batch.Append(
			schedule.ID,
			string(schedule.Grantor),
			string(schedule.Beneficiary),
			string(schedule.Token),
			schedule.TotalAmount,
			schedule.ClaimedAmount,
			schedule.StartTime,
			schedule.CliffDuration,
			schedule.CliffAmount,
			schedule.TotalDuration,
			schedule.Label,
			schedule.Revocable,
			string(schedule.Status),
			schedule.UpdatedAt,
		); err != nil {
			return fmt.Errorf("append vesting schedule: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert vesting schedules: %w", err)
	}
	return nil
}
