package repository

import (
	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
)

func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO shifts (schedule_id, date, start_time, end_time, break_minutes, employee_id, position_id, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`

	args := []any{shift.ScheduleID, shift.Date, shift.StartTime, shift.EndTime, shift.BreakMinutes, shift.EmployeeID, shift.PositionID, shift.Cost}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftByID(id int64) (*domain.Shift, error) {
	query := `
		SELECT schedule_id, date, start_time, end_time, break_minutes, employee_id, position_id, cost, created_at, version
		FROM shifts WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	shift := &domain.Shift{
		ID: id,
	}

	dst := []any{&shift.ScheduleID, &shift.Date, &shift.StartTime, &shift.EndTime, &shift.BreakMinutes, &shift.EmployeeID, &shift.PositionID, &shift.Cost, &shift.CreatedAt, &shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return shift, nil
}

// GetShiftsByScheduleID 返回一张排班表下的所有班次，按日期和开始时间排序。
func (r *Repository) GetShiftsByScheduleID(scheduleID int64) ([]*domain.Shift, error) {
	query := `
		SELECT id, date, start_time, end_time, break_minutes, employee_id, position_id, cost, created_at, version
		FROM shifts WHERE schedule_id = $1
		ORDER BY date, start_time, id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift := &domain.Shift{
			ScheduleID: scheduleID,
		}
		dst := []any{&shift.ID, &shift.Date, &shift.StartTime, &shift.EndTime, &shift.BreakMinutes, &shift.EmployeeID, &shift.PositionID, &shift.Cost, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) UpdateShift(shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET
			date = $1,
			start_time = $2,
			end_time = $3,
			break_minutes = $4,
			employee_id = $5,
			position_id = $6,
			cost = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{shift.Date, shift.StartTime, shift.EndTime, shift.BreakMinutes, shift.EmployeeID, shift.PositionID, shift.Cost, shift.ID, shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShift(id int64) error {
	query := `
		DELETE FROM shifts WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
