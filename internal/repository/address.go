package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// AddressRepository adds eager loading of the employee links referencing an
// address. Its read operations and Update propagate store failures, unlike
// the generic base.
type AddressRepository struct {
	*Repository[domain.AddressEntity, *domain.AddressEntity]
	links     storage.Store[domain.EmployeeAddressEntity]
	employees storage.Store[domain.EmployeeEntity]
}

// NewAddressRepository creates the repository over the address table.
func NewAddressRepository(stores storage.Stores, logs *logger.Logs) *AddressRepository {
	return &AddressRepository{
		Repository: NewRepository[domain.AddressEntity, *domain.AddressEntity](
			stores.Addresses, logs, "AddressRepository"),
		links:     stores.EmployeeAddresses,
		employees: stores.Employees,
	}
}

// GetAll returns every address with its employee links attached.
func (r *AddressRepository) GetAll(ctx context.Context) ([]domain.AddressEntity, error) {
	addresses, err := r.Store().All(ctx)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "AddressRepository - GetAll")
		return nil, err
	}
	if err := r.attachLinks(ctx, addresses); err != nil {
		r.Logs().LogToFile(err.Error(), "AddressRepository - GetAll")
		return nil, err
	}
	return addresses, nil
}

// Get returns up to take matching addresses with employee links attached.
func (r *AddressRepository) Get(ctx context.Context, pred predicate.Predicate, take int) ([]domain.AddressEntity, error) {
	addresses, err := r.Store().Find(ctx, pred, take)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "AddressRepository - Get")
		return nil, err
	}
	if err := r.attachLinks(ctx, addresses); err != nil {
		r.Logs().LogToFile(err.Error(), "AddressRepository - Get")
		return nil, err
	}
	return addresses, nil
}

// GetOne returns the first matching address with employee links attached, or
// nil when none matches.
func (r *AddressRepository) GetOne(ctx context.Context, pred predicate.Predicate) (*domain.AddressEntity, error) {
	address, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "AddressRepository - GetOne")
		return nil, err
	}
	if address == nil {
		return nil, nil
	}
	one := []domain.AddressEntity{*address}
	if err := r.attachLinks(ctx, one); err != nil {
		r.Logs().LogToFile(err.Error(), "AddressRepository - GetOne")
		return nil, err
	}
	return &one[0], nil
}

// Update assigns the explicit address field list onto the first match:
// street name, street number, postal code and city. The key of the located
// row is never touched.
func (r *AddressRepository) Update(ctx context.Context, pred predicate.Predicate, updated *domain.AddressEntity) (*domain.AddressEntity, error) {
	existing, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "AddressRepository - Update")
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.StreetName = updated.StreetName
	existing.StreetNumber = updated.StreetNumber
	existing.PostalCode = updated.PostalCode
	existing.City = updated.City

	if err := r.Store().Update(ctx, existing); err != nil {
		r.Logs().LogToFile(err.Error(), "AddressRepository - Update")
		return nil, err
	}
	return existing, nil
}

func (r *AddressRepository) attachLinks(ctx context.Context, addresses []domain.AddressEntity) error {
	if len(addresses) == 0 {
		return nil
	}
	ids := make([]int, len(addresses))
	for i := range addresses {
		ids[i] = addresses[i].AddressID
	}
	links, err := r.links.Find(ctx, predicate.In("address_id", keyArgs(ids)...), -1)
	if err != nil {
		return err
	}

	empIDs := make([]int, len(links))
	for i := range links {
		empIDs[i] = links[i].EmployeeID
	}
	byEmployee := map[int]*domain.EmployeeEntity{}
	if len(links) > 0 {
		employees, err := r.employees.Find(ctx, predicate.In("employee_id", keyArgs(empIDs)...), -1)
		if err != nil {
			return err
		}
		for i := range employees {
			byEmployee[employees[i].EmployeeID] = &employees[i]
		}
	}

	grouped := map[int][]domain.EmployeeAddressEntity{}
	for _, link := range links {
		link.Employee = byEmployee[link.EmployeeID]
		grouped[link.AddressID] = append(grouped[link.AddressID], link)
	}
	for i := range addresses {
		addresses[i].EmployeeAddresses = grouped[addresses[i].AddressID]
	}
	return nil
}
