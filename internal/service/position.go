package service

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/repository"
)

// PositionService translates between position entities and DTOs with the
// same create-if-not-exists guard as the department service.
type PositionService struct {
	positions *repository.PositionRepository
	logs      *logger.Logs
}

// NewPositionService creates the service.
func NewPositionService(positions *repository.PositionRepository, logs *logger.Logs) *PositionService {
	return &PositionService{positions: positions, logs: logs}
}

// CreatePosition stores a position under name unless one already exists.
func (s *PositionService) CreatePosition(ctx context.Context, name string) *PositionDto {
	if s.positions.Exists(ctx, predicate.Eq("position_name", name)) {
		return nil
	}
	created := s.positions.Create(ctx, &domain.PositionEntity{PositionName: name})
	return toPositionDto(created)
}

// GetOnePosition returns the first position matching pred, or nil.
func (s *PositionService) GetOnePosition(ctx context.Context, pred predicate.Predicate) *PositionDto {
	return toPositionDto(s.positions.GetOne(ctx, pred))
}

// GetPositions returns up to take positions matching pred. Failures surface
// as an empty result.
func (s *PositionService) GetPositions(ctx context.Context, pred predicate.Predicate, take int) []PositionDto {
	positions, err := s.positions.Get(ctx, pred, take)
	if err != nil {
		s.logs.LogToFile(err.Error(), "PositionService - GetPositions")
		return []PositionDto{}
	}
	return toPositionDtos(positions)
}

// GetAllPositions returns every position, or nil on failure.
func (s *PositionService) GetAllPositions(ctx context.Context) []PositionDto {
	positions, err := s.positions.GetAll(ctx)
	if err != nil {
		s.logs.LogToFile(err.Error(), "PositionService - GetAllPositions")
		return nil
	}
	return toPositionDtos(positions)
}

// UpdatePosition renames the position identified by updated.ID.
func (s *PositionService) UpdatePosition(ctx context.Context, updated UpdatedPositionDto) *PositionDto {
	if updated.PositionName == "" {
		s.logs.LogWarning("position name is blank during position update", "PositionService - UpdatePosition")
		return nil
	}
	entity, err := s.positions.Update(ctx, predicate.Eq("position_id", updated.ID),
		&domain.PositionEntity{PositionName: updated.PositionName})
	if err != nil {
		s.logs.LogToFile(err.Error(), "PositionService - UpdatePosition")
		return nil
	}
	return toPositionDto(entity)
}

// DeletePosition removes the first position matching pred.
func (s *PositionService) DeletePosition(ctx context.Context, pred predicate.Predicate) bool {
	deleted, err := s.positions.Delete(ctx, pred)
	if err != nil {
		s.logs.LogToFile(err.Error(), "PositionService - DeletePosition")
		return false
	}
	return deleted
}
