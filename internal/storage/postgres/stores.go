package postgres

import (
	"database/sql"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// NewStores opens one store per entity table over the shared pool.
func NewStores(db *sql.DB) storage.Stores {
	return storage.Stores{
		Addresses:         NewStore[domain.AddressEntity, *domain.AddressEntity](db),
		Departments:       NewStore[domain.DepartmentEntity, *domain.DepartmentEntity](db),
		Employees:         NewStore[domain.EmployeeEntity, *domain.EmployeeEntity](db),
		EmployeeAddresses: NewStore[domain.EmployeeAddressEntity, *domain.EmployeeAddressEntity](db),
		PhoneNumbers:      NewStore[domain.EmployeePhoneNumberEntity, *domain.EmployeePhoneNumberEntity](db),
		Positions:         NewStore[domain.PositionEntity, *domain.PositionEntity](db),
		Salaries:          NewStore[domain.SalaryEntity, *domain.SalaryEntity](db),
		Skills:            NewStore[domain.SkillEntity, *domain.SkillEntity](db),
	}
}
