package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// SalaryRepository eager-loads employees only where the call sites consume
// them. GetAll swallows failures, Get propagates without eager loading, and
// GetOne swallows with employees attached.
type SalaryRepository struct {
	*Repository[domain.SalaryEntity, *domain.SalaryEntity]
	employees storage.Store[domain.EmployeeEntity]
}

// NewSalaryRepository creates the repository over the salary table.
func NewSalaryRepository(stores storage.Stores, logs *logger.Logs) *SalaryRepository {
	return &SalaryRepository{
		Repository: NewRepository[domain.SalaryEntity, *domain.SalaryEntity](
			stores.Salaries, logs, "SalaryRepository"),
		employees: stores.Employees,
	}
}

// GetAll returns every salary band with its employees attached. Failures are
// logged and reported as an empty result.
func (r *SalaryRepository) GetAll(ctx context.Context) []domain.SalaryEntity {
	salaries, err := r.Store().All(ctx)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "SalaryRepository - GetAll")
		return []domain.SalaryEntity{}
	}
	if err := r.attachEmployees(ctx, salaries); err != nil {
		r.Logs().LogToFile(err.Error(), "SalaryRepository - GetAll")
		return []domain.SalaryEntity{}
	}
	return salaries
}

// Get returns up to take matching salary bands without related employees.
func (r *SalaryRepository) Get(ctx context.Context, pred predicate.Predicate, take int) ([]domain.SalaryEntity, error) {
	salaries, err := r.Store().Find(ctx, pred, take)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "SalaryRepository - Get")
		return nil, err
	}
	return salaries, nil
}

// GetOne returns the first matching salary band with employees attached, or
// nil when none matches or on failure.
func (r *SalaryRepository) GetOne(ctx context.Context, pred predicate.Predicate) *domain.SalaryEntity {
	salary, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "SalaryRepository - GetOne")
		return nil
	}
	if salary == nil {
		return nil
	}
	one := []domain.SalaryEntity{*salary}
	if err := r.attachEmployees(ctx, one); err != nil {
		r.Logs().LogToFile(err.Error(), "SalaryRepository - GetOne")
		return nil
	}
	return &one[0]
}

func (r *SalaryRepository) attachEmployees(ctx context.Context, salaries []domain.SalaryEntity) error {
	if len(salaries) == 0 {
		return nil
	}
	ids := make([]int, len(salaries))
	for i := range salaries {
		ids[i] = salaries[i].SalaryID
	}
	employees, err := r.employees.Find(ctx, predicate.In("salary_id", keyArgs(ids)...), -1)
	if err != nil {
		return err
	}
	grouped := map[int][]domain.EmployeeEntity{}
	for _, e := range employees {
		grouped[e.SalaryID] = append(grouped[e.SalaryID], e)
	}
	for i := range salaries {
		salaries[i].Employees = grouped[salaries[i].SalaryID]
	}
	return nil
}
