package memory

import (
	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// Stores holds the concrete in-memory stores so tests can reach Fail,
// OnDelete and Prune directly.
type Stores struct {
	Addresses         *Store[domain.AddressEntity, *domain.AddressEntity]
	Departments       *Store[domain.DepartmentEntity, *domain.DepartmentEntity]
	Employees         *Store[domain.EmployeeEntity, *domain.EmployeeEntity]
	EmployeeAddresses *Store[domain.EmployeeAddressEntity, *domain.EmployeeAddressEntity]
	PhoneNumbers      *Store[domain.EmployeePhoneNumberEntity, *domain.EmployeePhoneNumberEntity]
	Positions         *Store[domain.PositionEntity, *domain.PositionEntity]
	Salaries          *Store[domain.SalaryEntity, *domain.SalaryEntity]
	Skills            *Store[domain.SkillEntity, *domain.SkillEntity]
}

// NewStores creates empty in-memory stores with the same cascade behavior the
// relational schema declares: deleting an employee prunes its phone numbers
// and address links, deleting an address prunes its links.
func NewStores() *Stores {
	s := &Stores{
		Addresses:         NewStore[domain.AddressEntity, *domain.AddressEntity](),
		Departments:       NewStore[domain.DepartmentEntity, *domain.DepartmentEntity](),
		Employees:         NewStore[domain.EmployeeEntity, *domain.EmployeeEntity](),
		EmployeeAddresses: NewStore[domain.EmployeeAddressEntity, *domain.EmployeeAddressEntity](),
		PhoneNumbers:      NewStore[domain.EmployeePhoneNumberEntity, *domain.EmployeePhoneNumberEntity](),
		Positions:         NewStore[domain.PositionEntity, *domain.PositionEntity](),
		Salaries:          NewStore[domain.SalaryEntity, *domain.SalaryEntity](),
		Skills:            NewStore[domain.SkillEntity, *domain.SkillEntity](),
	}

	s.Employees.OnDelete(func(deleted *domain.EmployeeEntity) {
		s.PhoneNumbers.Prune(func(pn *domain.EmployeePhoneNumberEntity) bool {
			return pn.EmployeeID == deleted.EmployeeID
		})
		s.EmployeeAddresses.Prune(func(ea *domain.EmployeeAddressEntity) bool {
			return ea.EmployeeID == deleted.EmployeeID
		})
	})
	s.Addresses.OnDelete(func(deleted *domain.AddressEntity) {
		s.EmployeeAddresses.Prune(func(ea *domain.EmployeeAddressEntity) bool {
			return ea.AddressID == deleted.AddressID
		})
	})

	return s
}

// Stores returns the bundle as the storage contract the repositories accept.
func (s *Stores) Stores() storage.Stores {
	return storage.Stores{
		Addresses:         s.Addresses,
		Departments:       s.Departments,
		Employees:         s.Employees,
		EmployeeAddresses: s.EmployeeAddresses,
		PhoneNumbers:      s.PhoneNumbers,
		Positions:         s.Positions,
		Salaries:          s.Salaries,
		Skills:            s.Skills,
	}
}
