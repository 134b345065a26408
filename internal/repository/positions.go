package repository

import (
	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
)

func (r *Repository) CreatePosition(position *domain.Position) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO positions (name, zone, color)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	args := []any{position.Name, position.Zone, position.Color}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&position.ID, &position.CreatedAt, &position.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPositionByID(id int64) (*domain.Position, error) {
	query := `
		SELECT name, zone, color, created_at, version
		FROM positions WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	position := &domain.Position{
		ID: id,
	}

	dst := []any{&position.Name, &position.Zone, &position.Color, &position.CreatedAt, &position.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return position, nil
}

func (r *Repository) GetAllPositions() ([]*domain.Position, error) {
	query := `
		SELECT id, name, zone, color, created_at, version FROM positions ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]*domain.Position, 0)
	for rows.Next() {
		position := &domain.Position{}
		dst := []any{&position.ID, &position.Name, &position.Zone, &position.Color, &position.CreatedAt, &position.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

func (r *Repository) UpdatePosition(position *domain.Position) error {
	query := `
		UPDATE positions
		SET
			name = $1,
			zone = $2,
			color = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{position.Name, position.Zone, position.Color, position.ID, position.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&position.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePosition(id int64) error {
	query := `
		DELETE FROM positions WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
