package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// PositionRepository adds eager loading of a position's employees. GetAll and
// Get propagate store failures; GetOne swallows them. Update keeps the
// generic key-preserving merge.
type PositionRepository struct {
	*Repository[domain.PositionEntity, *domain.PositionEntity]
	employees storage.Store[domain.EmployeeEntity]
}

// NewPositionRepository creates the repository over the position table.
func NewPositionRepository(stores storage.Stores, logs *logger.Logs) *PositionRepository {
	return &PositionRepository{
		Repository: NewRepository[domain.PositionEntity, *domain.PositionEntity](
			stores.Positions, logs, "PositionRepository"),
		employees: stores.Employees,
	}
}

// GetAll returns every position with its employees attached.
func (r *PositionRepository) GetAll(ctx context.Context) ([]domain.PositionEntity, error) {
	positions, err := r.Store().All(ctx)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "PositionRepository - GetAll")
		return nil, err
	}
	if err := r.attachEmployees(ctx, positions); err != nil {
		r.Logs().LogToFile(err.Error(), "PositionRepository - GetAll")
		return nil, err
	}
	return positions, nil
}

// Get returns up to take matching positions with employees attached.
func (r *PositionRepository) Get(ctx context.Context, pred predicate.Predicate, take int) ([]domain.PositionEntity, error) {
	positions, err := r.Store().Find(ctx, pred, take)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "PositionRepository - Get")
		return nil, err
	}
	if err := r.attachEmployees(ctx, positions); err != nil {
		r.Logs().LogToFile(err.Error(), "PositionRepository - Get")
		return nil, err
	}
	return positions, nil
}

// GetOne returns the first matching position with employees attached, or nil
// when none matches or on failure.
func (r *PositionRepository) GetOne(ctx context.Context, pred predicate.Predicate) *domain.PositionEntity {
	position, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "PositionRepository - GetOne")
		return nil
	}
	if position == nil {
		return nil
	}
	one := []domain.PositionEntity{*position}
	if err := r.attachEmployees(ctx, one); err != nil {
		r.Logs().LogToFile(err.Error(), "PositionRepository - GetOne")
		return nil
	}
	return &one[0]
}

func (r *PositionRepository) attachEmployees(ctx context.Context, positions []domain.PositionEntity) error {
	if len(positions) == 0 {
		return nil
	}
	ids := make([]int, len(positions))
	for i := range positions {
		ids[i] = positions[i].PositionID
	}
	employees, err := r.employees.Find(ctx, predicate.In("position_id", keyArgs(ids)...), -1)
	if err != nil {
		return err
	}
	grouped := map[int][]domain.EmployeeEntity{}
	for _, e := range employees {
		grouped[e.PositionID] = append(grouped[e.PositionID], e)
	}
	for i := range positions {
		positions[i].Employees = grouped[positions[i].PositionID]
	}
	return nil
}
