package storage

import "github.com/staffdesk/employee_directory/internal/domain"

// Stores bundles one session per entity table, the unit the repositories and
// the bootstrap wire against.
type Stores struct {
	Addresses         Store[domain.AddressEntity]
	Departments       Store[domain.DepartmentEntity]
	Employees         Store[domain.EmployeeEntity]
	EmployeeAddresses Store[domain.EmployeeAddressEntity]
	PhoneNumbers      Store[domain.EmployeePhoneNumberEntity]
	Positions         Store[domain.PositionEntity]
	Salaries          Store[domain.SalaryEntity]
	Skills            Store[domain.SkillEntity]
}
