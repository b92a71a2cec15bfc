package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
)

// PositionRepository handles database operations for staff positions
// and applied positions
type PositionRepository struct {
	db *pgxpool.Pool
}

// NewPositionRepository creates a new PositionRepository
func NewPositionRepository(db *pgxpool.Pool) *PositionRepository {
	return &PositionRepository{db: db}
}

// GetAllPositions retrieves all staff positions ordered by name
func (r *PositionRepository) GetAllPositions(ctx context.Context) ([]models.Position, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM positions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var positions []models.Position
	for rows.Next() {
		var position models.Position
		if err := rows.Scan(&position.ID, &position.Name); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

// GetAllAppliedPositions retrieves all applied positions ordered by name
func (r *PositionRepository) GetAllAppliedPositions(ctx context.Context) ([]models.AppliedPosition, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM applied_positions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var positions []models.AppliedPosition
	for rows.Next() {
		var position models.AppliedPosition
		if err := rows.Scan(&position.ID, &position.Name); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

// AppliedPositionExists checks whether an applied position exists
func (r *PositionRepository) AppliedPositionExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applied_positions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking applied position existence: %w", err)
	}
	return exists, nil
}
