package service

import (
	"context"
	"errors"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/repository"
)

// ErrEmployeeNotFound is returned by UpdateEmployee when no employee matches
// the predicate.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeService orchestrates the per-entity services. Creation resolves
// the named department, position and skill plus the salary amount against
// existing records and gives up when any lookup misses. Reads return the
// flattened display DTO; UpdateEmployee propagates failures to the caller.
type EmployeeService struct {
	employees         *repository.EmployeeRepository
	phoneNumbers      *repository.EmployeePhoneNumberRepository
	employeeAddresses *repository.EmployeeAddressRepository
	departments       *DepartmentService
	positions         *PositionService
	skills            *SkillService
	salaries          *SalaryService
	logs              *logger.Logs
}

// NewEmployeeService creates the service.
func NewEmployeeService(
	employees *repository.EmployeeRepository,
	phoneNumbers *repository.EmployeePhoneNumberRepository,
	employeeAddresses *repository.EmployeeAddressRepository,
	departments *DepartmentService,
	positions *PositionService,
	skills *SkillService,
	salaries *SalaryService,
	logs *logger.Logs,
) *EmployeeService {
	return &EmployeeService{
		employees:         employees,
		phoneNumbers:      phoneNumbers,
		employeeAddresses: employeeAddresses,
		departments:       departments,
		positions:         positions,
		skills:            skills,
		salaries:          salaries,
		logs:              logs,
	}
}

// CreateEmployee resolves the request's department, position and skill by
// name and the salary by amount, then stores the employee. Returns nil when
// any referenced record cannot be found or the insert fails; nothing is
// persisted in that case.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) *EmployeeDto {
	department := s.departments.GetOneDepartment(ctx, predicate.Eq("department_name", req.DepartmentName))
	position := s.positions.GetOnePosition(ctx, predicate.Eq("position_name", req.PositionName))
	skill := s.skills.GetOneSkill(ctx, predicate.Eq("skill_name", req.SkillName))
	salary := s.salaries.GetOneSalary(ctx, predicate.Eq("amount", req.SalaryAmount))

	if department == nil || position == nil || skill == nil || salary == nil {
		return nil
	}

	entity := s.employees.Create(ctx, &domain.EmployeeEntity{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		BirthDate:    req.BirthDate,
		Gender:       req.Gender,
		DepartmentID: department.ID,
		PositionID:   position.ID,
		SalaryID:     salary.ID,
		SkillID:      skill.ID,
	})
	if entity == nil {
		return nil
	}

	dto := toEmployeeDto(entity)
	dto.DepartmentName = department.DepartmentName
	dto.PositionName = position.PositionName
	dto.SkillName = skill.SkillName
	dto.Salary = salary.Amount
	return dto
}

// GetOneEmployee returns the first employee matching pred as a flattened
// DTO, or nil when none matches or on failure.
func (s *EmployeeService) GetOneEmployee(ctx context.Context, pred predicate.Predicate) *EmployeeDto {
	employee, err := s.employees.GetOne(ctx, pred)
	if err != nil {
		s.logs.LogToFile(err.Error(), "EmployeeService - GetOneEmployee")
		return nil
	}
	return toEmployeeDto(employee)
}

// GetEmployees returns up to take employees matching pred as flattened DTOs.
func (s *EmployeeService) GetEmployees(ctx context.Context, pred predicate.Predicate, take int) []EmployeeDto {
	return toEmployeeDtos(s.employees.Get(ctx, pred, take))
}

// GetAllEmployees returns every employee as a flattened DTO.
func (s *EmployeeService) GetAllEmployees(ctx context.Context) []EmployeeDto {
	return toEmployeeDtos(s.employees.GetAll(ctx))
}

// UpdateEmployee rewrites the editable fields of the first employee matching
// pred. Unlike the other operations the failure is handed to the caller:
// ErrEmployeeNotFound when nothing matches, the store error otherwise.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, pred predicate.Predicate, updated UpdatedEmployeeDto) (*EmployeeDto, error) {
	entity, err := s.employees.Update(ctx, pred, &domain.EmployeeEntity{
		FirstName:    updated.FirstName,
		LastName:     updated.LastName,
		Email:        updated.Email,
		BirthDate:    updated.BirthDate,
		Gender:       updated.Gender,
		DepartmentID: updated.DepartmentID,
		PositionID:   updated.PositionID,
		SalaryID:     updated.SalaryID,
		SkillID:      updated.SkillID,
	})
	if err != nil {
		s.logs.LogToFile(err.Error(), "EmployeeService - UpdateEmployee")
		return nil, err
	}
	if entity == nil {
		s.logs.LogToFile(ErrEmployeeNotFound.Error(), "EmployeeService - UpdateEmployee")
		return nil, ErrEmployeeNotFound
	}
	return s.GetOneEmployee(ctx, predicate.Eq("employee_id", entity.EmployeeID)), nil
}

// DeleteEmployee removes the first employee matching pred. Link rows cascade
// in the store.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, pred predicate.Predicate) bool {
	deleted, err := s.employees.Delete(ctx, pred)
	if err != nil {
		s.logs.LogToFile(err.Error(), "EmployeeService - DeleteEmployee")
		return false
	}
	return deleted
}

// AttachPhoneNumber links number to the employee. Phone numbers are globally
// unique, so an already-stored number is a no-op returning false.
func (s *EmployeeService) AttachPhoneNumber(ctx context.Context, employeeID int, number string) bool {
	if s.phoneNumbers.Exists(ctx, predicate.Eq("phone_number", number)) {
		return false
	}
	created := s.phoneNumbers.Create(ctx, &domain.EmployeePhoneNumberEntity{
		PhoneNumber: number,
		EmployeeID:  employeeID,
	})
	return created != nil
}

// AttachAddress links the employee to an existing address. The pair is
// unique, so an existing link is a no-op returning false.
func (s *EmployeeService) AttachAddress(ctx context.Context, employeeID, addressID int) bool {
	exists := s.employeeAddresses.Exists(ctx, predicate.And(
		predicate.Eq("employee_id", employeeID),
		predicate.Eq("address_id", addressID),
	))
	if exists {
		return false
	}
	created := s.employeeAddresses.Create(ctx, &domain.EmployeeAddressEntity{
		EmployeeID: employeeID,
		AddressID:  addressID,
	})
	return created != nil
}
