package services

import (
	"context"
	"fmt"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
)

// PositionStore is the position persistence surface services depend on
type PositionStore interface {
	GetAllPositions(ctx context.Context) ([]models.Position, error)
	GetAllAppliedPositions(ctx context.Context) ([]models.AppliedPosition, error)
	AppliedPositionExists(ctx context.Context, id int64) (bool, error)
}

// PositionService handles the position lookup lists
type PositionService struct {
	positionRepo PositionStore
}

// NewPositionService creates a new PositionService
func NewPositionService(positionRepo PositionStore) *PositionService {
	return &PositionService{positionRepo: positionRepo}
}

// ListPositions retrieves all internal positions
func (s *PositionService) ListPositions(ctx context.Context) ([]models.Position, error) {
	positions, err := s.positionRepo.GetAllPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing positions: %w", err)
	}
	return positions, nil
}

// ListAppliedPositions retrieves all positions candidates can apply to
func (s *PositionService) ListAppliedPositions(ctx context.Context) ([]models.AppliedPosition, error) {
	positions, err := s.positionRepo.GetAllAppliedPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing applied positions: %w", err)
	}
	return positions, nil
}
