package repository

import (
	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
)

func (r *Repository) CreateSchedule(schedule *domain.Schedule) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO schedules (name, week_start, min_hour, max_hour)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_published, created_at, version
	`

	args := []any{schedule.Name, schedule.WeekStart, schedule.MinHour, schedule.MaxHour}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &schedule.IsPublished, &schedule.CreatedAt, &schedule.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetScheduleByID(id int64) (*domain.Schedule, error) {
	query := `
		SELECT name, week_start, min_hour, max_hour, is_published, created_at, version
		FROM schedules WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	schedule := &domain.Schedule{
		ID: id,
	}

	dst := []any{&schedule.Name, &schedule.WeekStart, &schedule.MinHour, &schedule.MaxHour, &schedule.IsPublished, &schedule.CreatedAt, &schedule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (r *Repository) GetAllSchedules() ([]*domain.Schedule, error) {
	query := `
		SELECT id, name, week_start, min_hour, max_hour, is_published, created_at, version
		FROM schedules ORDER BY week_start DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		schedule := &domain.Schedule{}
		dst := []any{&schedule.ID, &schedule.Name, &schedule.WeekStart, &schedule.MinHour, &schedule.MaxHour, &schedule.IsPublished, &schedule.CreatedAt, &schedule.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) UpdateSchedule(schedule *domain.Schedule) error {
	query := `
		UPDATE schedules
		SET
			name = $1,
			min_hour = $2,
			max_hour = $3,
			is_published = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{schedule.Name, schedule.MinHour, schedule.MaxHour, schedule.IsPublished, schedule.ID, schedule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&schedule.Version); err != nil {
		return err
	}

	return nil
}

// DeleteSchedule 删除排班表，表上的班次依赖外键级联删除。
func (r *Repository) DeleteSchedule(id int64) error {
	query := `
		DELETE FROM schedules WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
