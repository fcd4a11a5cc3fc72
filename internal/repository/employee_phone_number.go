package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// EmployeePhoneNumberRepository eager-loads the owning employee of each
// number. GetAll and GetOne swallow failures; Get propagates them. Update
// only rewrites the number itself.
type EmployeePhoneNumberRepository struct {
	*Repository[domain.EmployeePhoneNumberEntity, *domain.EmployeePhoneNumberEntity]
	employees storage.Store[domain.EmployeeEntity]
}

// NewEmployeePhoneNumberRepository creates the repository over the phone
// number table.
func NewEmployeePhoneNumberRepository(stores storage.Stores, logs *logger.Logs) *EmployeePhoneNumberRepository {
	return &EmployeePhoneNumberRepository{
		Repository: NewRepository[domain.EmployeePhoneNumberEntity, *domain.EmployeePhoneNumberEntity](
			stores.PhoneNumbers, logs, "EmployeePhoneNumberRepository"),
		employees: stores.Employees,
	}
}

// GetAll returns every phone number with its employee attached. Failures are
// logged and reported as an empty result.
func (r *EmployeePhoneNumberRepository) GetAll(ctx context.Context) []domain.EmployeePhoneNumberEntity {
	numbers, err := r.Store().All(ctx)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeePhoneNumberRepository - GetAll")
		return []domain.EmployeePhoneNumberEntity{}
	}
	if err := r.attachEmployees(ctx, numbers); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeePhoneNumberRepository - GetAll")
		return []domain.EmployeePhoneNumberEntity{}
	}
	return numbers
}

// Get returns up to take matching phone numbers with employees attached.
func (r *EmployeePhoneNumberRepository) Get(ctx context.Context, pred predicate.Predicate, take int) ([]domain.EmployeePhoneNumberEntity, error) {
	numbers, err := r.Store().Find(ctx, pred, take)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeePhoneNumberRepository - Get")
		return nil, err
	}
	if err := r.attachEmployees(ctx, numbers); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeePhoneNumberRepository - Get")
		return nil, err
	}
	return numbers, nil
}

// GetOne returns the first matching phone number with its employee attached,
// or nil when none matches or on failure.
func (r *EmployeePhoneNumberRepository) GetOne(ctx context.Context, pred predicate.Predicate) *domain.EmployeePhoneNumberEntity {
	number, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeePhoneNumberRepository - GetOne")
		return nil
	}
	if number == nil {
		return nil
	}
	one := []domain.EmployeePhoneNumberEntity{*number}
	if err := r.attachEmployees(ctx, one); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeePhoneNumberRepository - GetOne")
		return nil
	}
	return &one[0]
}

// Update rewrites the matched row's phone number. The key and the owning
// employee stay as loaded.
func (r *EmployeePhoneNumberRepository) Update(ctx context.Context, pred predicate.Predicate, updated *domain.EmployeePhoneNumberEntity) (*domain.EmployeePhoneNumberEntity, error) {
	existing, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeePhoneNumberRepository - Update")
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.PhoneNumber = updated.PhoneNumber
	if err := r.Store().Update(ctx, existing); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeePhoneNumberRepository - Update")
		return nil, err
	}
	return existing, nil
}

func (r *EmployeePhoneNumberRepository) attachEmployees(ctx context.Context, numbers []domain.EmployeePhoneNumberEntity) error {
	if len(numbers) == 0 {
		return nil
	}
	ids := make([]int, len(numbers))
	for i := range numbers {
		ids[i] = numbers[i].EmployeeID
	}
	employees, err := r.employees.Find(ctx, predicate.In("employee_id", keyArgs(ids)...), -1)
	if err != nil {
		return err
	}
	empByID := map[int]*domain.EmployeeEntity{}
	for i := range employees {
		empByID[employees[i].EmployeeID] = &employees[i]
	}
	for i := range numbers {
		numbers[i].Employee = empByID[numbers[i].EmployeeID]
	}
	return nil
}
