package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// EmployeeAddressRepository manages the link rows between employees and
// addresses. GetAll and Get propagate failures; GetOne swallows them.
// Update only moves the link to a different address.
type EmployeeAddressRepository struct {
	*Repository[domain.EmployeeAddressEntity, *domain.EmployeeAddressEntity]
	employees storage.Store[domain.EmployeeEntity]
	addresses storage.Store[domain.AddressEntity]
}

// NewEmployeeAddressRepository creates the repository over the link table.
func NewEmployeeAddressRepository(stores storage.Stores, logs *logger.Logs) *EmployeeAddressRepository {
	return &EmployeeAddressRepository{
		Repository: NewRepository[domain.EmployeeAddressEntity, *domain.EmployeeAddressEntity](
			stores.EmployeeAddresses, logs, "EmployeeAddressRepository"),
		employees: stores.Employees,
		addresses: stores.Addresses,
	}
}

// GetAll returns every link row with its employee and address attached.
func (r *EmployeeAddressRepository) GetAll(ctx context.Context) ([]domain.EmployeeAddressEntity, error) {
	links, err := r.Store().All(ctx)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeAddressRepository - GetAll")
		return nil, err
	}
	if err := r.attachEnds(ctx, links); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeAddressRepository - GetAll")
		return nil, err
	}
	return links, nil
}

// Get returns up to take matching link rows without related records.
func (r *EmployeeAddressRepository) Get(ctx context.Context, pred predicate.Predicate, take int) ([]domain.EmployeeAddressEntity, error) {
	links, err := r.Store().Find(ctx, pred, take)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeAddressRepository - Get")
		return nil, err
	}
	return links, nil
}

// GetOne returns the first matching link row with its employee and address
// attached, or nil when none matches or on failure.
func (r *EmployeeAddressRepository) GetOne(ctx context.Context, pred predicate.Predicate) *domain.EmployeeAddressEntity {
	link, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeAddressRepository - GetOne")
		return nil
	}
	if link == nil {
		return nil
	}
	one := []domain.EmployeeAddressEntity{*link}
	if err := r.attachEnds(ctx, one); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeAddressRepository - GetOne")
		return nil
	}
	return &one[0]
}

// Update repoints the matched link at the address carried by updated. The
// key and the employee side of the link stay as loaded.
func (r *EmployeeAddressRepository) Update(ctx context.Context, pred predicate.Predicate, updated *domain.EmployeeAddressEntity) (*domain.EmployeeAddressEntity, error) {
	existing, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeAddressRepository - Update")
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.AddressID = updated.AddressID
	if err := r.Store().Update(ctx, existing); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeAddressRepository - Update")
		return nil, err
	}
	return existing, nil
}

func (r *EmployeeAddressRepository) attachEnds(ctx context.Context, links []domain.EmployeeAddressEntity) error {
	if len(links) == 0 {
		return nil
	}
	employeeIDs := make([]int, len(links))
	addressIDs := make([]int, len(links))
	for i := range links {
		employeeIDs[i] = links[i].EmployeeID
		addressIDs[i] = links[i].AddressID
	}
	employees, err := r.employees.Find(ctx, predicate.In("employee_id", keyArgs(employeeIDs)...), -1)
	if err != nil {
		return err
	}
	addresses, err := r.addresses.Find(ctx, predicate.In("address_id", keyArgs(addressIDs)...), -1)
	if err != nil {
		return err
	}
	empByID := map[int]*domain.EmployeeEntity{}
	for i := range employees {
		empByID[employees[i].EmployeeID] = &employees[i]
	}
	addrByID := map[int]*domain.AddressEntity{}
	for i := range addresses {
		addrByID[addresses[i].AddressID] = &addresses[i]
	}
	for i := range links {
		links[i].Employee = empByID[links[i].EmployeeID]
		links[i].Address = addrByID[links[i].AddressID]
	}
	return nil
}
