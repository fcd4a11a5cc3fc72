package service

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/repository"
)

// DepartmentService translates between department entities and DTOs. Create
// is a no-op returning nil when a department with the same name already
// exists. Failures are logged and surfaced as nil or empty results.
type DepartmentService struct {
	departments *repository.DepartmentRepository
	logs        *logger.Logs
}

// NewDepartmentService creates the service.
func NewDepartmentService(departments *repository.DepartmentRepository, logs *logger.Logs) *DepartmentService {
	return &DepartmentService{departments: departments, logs: logs}
}

// CreateDepartment stores a department under name unless one already exists.
func (s *DepartmentService) CreateDepartment(ctx context.Context, name string) *DepartmentDto {
	if s.departments.Exists(ctx, predicate.Eq("department_name", name)) {
		return nil
	}
	created := s.departments.Create(ctx, &domain.DepartmentEntity{DepartmentName: name})
	return toDepartmentDto(created)
}

// GetOneDepartment returns the first department matching pred, or nil.
func (s *DepartmentService) GetOneDepartment(ctx context.Context, pred predicate.Predicate) *DepartmentDto {
	return toDepartmentDto(s.departments.GetOne(ctx, pred))
}

// GetDepartments returns up to take departments matching pred.
func (s *DepartmentService) GetDepartments(ctx context.Context, pred predicate.Predicate, take int) []DepartmentDto {
	return toDepartmentDtos(s.departments.Get(ctx, pred, take))
}

// GetAllDepartments returns every department.
func (s *DepartmentService) GetAllDepartments(ctx context.Context) []DepartmentDto {
	return toDepartmentDtos(s.departments.GetAll(ctx))
}

// UpdateDepartment renames the department identified by updated.ID. A blank
// name is rejected with a warning. Returns nil when the update did not happen.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, updated UpdatedDepartmentDto) *DepartmentDto {
	if updated.DepartmentName == "" {
		s.logs.LogWarning("department name is blank during department update", "DepartmentService - UpdateDepartment")
		return nil
	}
	entity, err := s.departments.Update(ctx, predicate.Eq("department_id", updated.ID),
		&domain.DepartmentEntity{DepartmentName: updated.DepartmentName})
	if err != nil {
		s.logs.LogToFile(err.Error(), "DepartmentService - UpdateDepartment")
		return nil
	}
	return toDepartmentDto(entity)
}

// DeleteDepartment removes the first department matching pred.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, pred predicate.Predicate) bool {
	deleted, err := s.departments.Delete(ctx, pred)
	if err != nil {
		s.logs.LogToFile(err.Error(), "DepartmentService - DeleteDepartment")
		return false
	}
	return deleted
}
