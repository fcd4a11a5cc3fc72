package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// DepartmentRepository adds eager loading of a department's employees. Its
// read operations swallow failures like the generic base; Update assigns the
// department name explicitly.
type DepartmentRepository struct {
	*Repository[domain.DepartmentEntity, *domain.DepartmentEntity]
	employees storage.Store[domain.EmployeeEntity]
}

// NewDepartmentRepository creates the repository over the department table.
func NewDepartmentRepository(stores storage.Stores, logs *logger.Logs) *DepartmentRepository {
	return &DepartmentRepository{
		Repository: NewRepository[domain.DepartmentEntity, *domain.DepartmentEntity](
			stores.Departments, logs, "DepartmentRepository"),
		employees: stores.Employees,
	}
}

// GetAll returns every department with its employees attached, or an empty
// slice on failure.
func (r *DepartmentRepository) GetAll(ctx context.Context) []domain.DepartmentEntity {
	departments, err := r.Store().All(ctx)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "DepartmentRepository - GetAll")
		return []domain.DepartmentEntity{}
	}
	if err := r.attachEmployees(ctx, departments); err != nil {
		r.Logs().LogToFile(err.Error(), "DepartmentRepository - GetAll")
		return []domain.DepartmentEntity{}
	}
	return departments
}

// Get returns up to take matching departments with employees attached, or an
// empty slice on failure.
func (r *DepartmentRepository) Get(ctx context.Context, pred predicate.Predicate, take int) []domain.DepartmentEntity {
	departments, err := r.Store().Find(ctx, pred, take)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "DepartmentRepository - Get")
		return []domain.DepartmentEntity{}
	}
	if err := r.attachEmployees(ctx, departments); err != nil {
		r.Logs().LogToFile(err.Error(), "DepartmentRepository - Get")
		return []domain.DepartmentEntity{}
	}
	return departments
}

// GetOne returns the first matching department with employees attached, or
// nil when none matches or on failure.
func (r *DepartmentRepository) GetOne(ctx context.Context, pred predicate.Predicate) *domain.DepartmentEntity {
	department, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "DepartmentRepository - GetOne")
		return nil
	}
	if department == nil {
		return nil
	}
	one := []domain.DepartmentEntity{*department}
	if err := r.attachEmployees(ctx, one); err != nil {
		r.Logs().LogToFile(err.Error(), "DepartmentRepository - GetOne")
		return nil
	}
	return &one[0]
}

// Update assigns the department name onto the first match, keeping its key.
func (r *DepartmentRepository) Update(ctx context.Context, pred predicate.Predicate, updated *domain.DepartmentEntity) (*domain.DepartmentEntity, error) {
	existing, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "DepartmentRepository - Update")
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.DepartmentName = updated.DepartmentName

	if err := r.Store().Update(ctx, existing); err != nil {
		r.Logs().LogToFile(err.Error(), "DepartmentRepository - Update")
		return nil, err
	}
	return existing, nil
}

func (r *DepartmentRepository) attachEmployees(ctx context.Context, departments []domain.DepartmentEntity) error {
	if len(departments) == 0 {
		return nil
	}
	ids := make([]int, len(departments))
	for i := range departments {
		ids[i] = departments[i].DepartmentID
	}
	employees, err := r.employees.Find(ctx, predicate.In("department_id", keyArgs(ids)...), -1)
	if err != nil {
		return err
	}
	grouped := map[int][]domain.EmployeeEntity{}
	for _, e := range employees {
		grouped[e.DepartmentID] = append(grouped[e.DepartmentID], e)
	}
	for i := range departments {
		departments[i].Employees = grouped[departments[i].DepartmentID]
	}
	return nil
}
