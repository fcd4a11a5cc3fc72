package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// EmployeeRepository loads each employee together with its department,
// position, salary, skill, phone numbers and addresses. GetAll and Get
// swallow store failures into an empty result; GetOne and Update propagate
// them so callers can react to a missing employee.
type EmployeeRepository struct {
	*Repository[domain.EmployeeEntity, *domain.EmployeeEntity]
	stores storage.Stores
}

// NewEmployeeRepository creates the repository over the employee table.
func NewEmployeeRepository(stores storage.Stores, logs *logger.Logs) *EmployeeRepository {
	return &EmployeeRepository{
		Repository: NewRepository[domain.EmployeeEntity, *domain.EmployeeEntity](
			stores.Employees, logs, "EmployeeRepository"),
		stores: stores,
	}
}

// GetAll returns every employee with related records attached. Failures are
// logged and reported as an empty result.
func (r *EmployeeRepository) GetAll(ctx context.Context) []domain.EmployeeEntity {
	employees, err := r.Store().All(ctx)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeRepository - GetAll")
		return []domain.EmployeeEntity{}
	}
	if err := r.attachRelated(ctx, employees); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeRepository - GetAll")
		return []domain.EmployeeEntity{}
	}
	return employees
}

// Get returns up to take matching employees with related records attached.
// Failures are logged and reported as an empty result.
func (r *EmployeeRepository) Get(ctx context.Context, pred predicate.Predicate, take int) []domain.EmployeeEntity {
	employees, err := r.Store().Find(ctx, pred, take)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeRepository - Get")
		return []domain.EmployeeEntity{}
	}
	if err := r.attachRelated(ctx, employees); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeRepository - Get")
		return []domain.EmployeeEntity{}
	}
	return employees
}

// GetOne returns the first matching employee with related records attached.
func (r *EmployeeRepository) GetOne(ctx context.Context, pred predicate.Predicate) (*domain.EmployeeEntity, error) {
	employee, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeRepository - GetOne")
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	one := []domain.EmployeeEntity{*employee}
	if err := r.attachRelated(ctx, one); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeRepository - GetOne")
		return nil, err
	}
	return &one[0], nil
}

// Update copies the editable fields onto the stored employee and persists
// it. The key and email stay as loaded unless the caller changes them.
func (r *EmployeeRepository) Update(ctx context.Context, pred predicate.Predicate, updated *domain.EmployeeEntity) (*domain.EmployeeEntity, error) {
	existing, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeRepository - Update")
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.FirstName = updated.FirstName
	existing.LastName = updated.LastName
	existing.Email = updated.Email
	existing.BirthDate = updated.BirthDate
	existing.Gender = updated.Gender
	existing.DepartmentID = updated.DepartmentID
	existing.PositionID = updated.PositionID
	existing.SalaryID = updated.SalaryID
	existing.SkillID = updated.SkillID
	if err := r.Store().Update(ctx, existing); err != nil {
		r.Logs().LogToFile(err.Error(), "EmployeeRepository - Update")
		return nil, err
	}
	return existing, nil
}

// attachRelated resolves the four lookups plus phone numbers and addresses
// for a batch of employees with one query per related table.
func (r *EmployeeRepository) attachRelated(ctx context.Context, employees []domain.EmployeeEntity) error {
	if len(employees) == 0 {
		return nil
	}
	ids := make([]int, len(employees))
	deptIDs := make([]int, len(employees))
	posIDs := make([]int, len(employees))
	salIDs := make([]int, len(employees))
	skillIDs := make([]int, len(employees))
	for i := range employees {
		ids[i] = employees[i].EmployeeID
		deptIDs[i] = employees[i].DepartmentID
		posIDs[i] = employees[i].PositionID
		salIDs[i] = employees[i].SalaryID
		skillIDs[i] = employees[i].SkillID
	}

	departments, err := r.stores.Departments.Find(ctx, predicate.In("department_id", keyArgs(deptIDs)...), -1)
	if err != nil {
		return err
	}
	positions, err := r.stores.Positions.Find(ctx, predicate.In("position_id", keyArgs(posIDs)...), -1)
	if err != nil {
		return err
	}
	salaries, err := r.stores.Salaries.Find(ctx, predicate.In("salary_id", keyArgs(salIDs)...), -1)
	if err != nil {
		return err
	}
	skills, err := r.stores.Skills.Find(ctx, predicate.In("skill_id", keyArgs(skillIDs)...), -1)
	if err != nil {
		return err
	}
	phones, err := r.stores.PhoneNumbers.Find(ctx, predicate.In("employee_id", keyArgs(ids)...), -1)
	if err != nil {
		return err
	}
	links, err := r.stores.EmployeeAddresses.Find(ctx, predicate.In("employee_id", keyArgs(ids)...), -1)
	if err != nil {
		return err
	}

	addressIDs := make([]int, len(links))
	for i := range links {
		addressIDs[i] = links[i].AddressID
	}
	var addresses []domain.AddressEntity
	if len(links) > 0 {
		addresses, err = r.stores.Addresses.Find(ctx, predicate.In("address_id", keyArgs(addressIDs)...), -1)
		if err != nil {
			return err
		}
	}

	deptByID := map[int]*domain.DepartmentEntity{}
	for i := range departments {
		deptByID[departments[i].DepartmentID] = &departments[i]
	}
	posByID := map[int]*domain.PositionEntity{}
	for i := range positions {
		posByID[positions[i].PositionID] = &positions[i]
	}
	salByID := map[int]*domain.SalaryEntity{}
	for i := range salaries {
		salByID[salaries[i].SalaryID] = &salaries[i]
	}
	skillByID := map[int]*domain.SkillEntity{}
	for i := range skills {
		skillByID[skills[i].SkillID] = &skills[i]
	}
	addrByID := map[int]*domain.AddressEntity{}
	for i := range addresses {
		addrByID[addresses[i].AddressID] = &addresses[i]
	}

	phonesByEmployee := map[int][]domain.EmployeePhoneNumberEntity{}
	for _, p := range phones {
		phonesByEmployee[p.EmployeeID] = append(phonesByEmployee[p.EmployeeID], p)
	}
	linksByEmployee := map[int][]domain.EmployeeAddressEntity{}
	for _, l := range links {
		l.Address = addrByID[l.AddressID]
		linksByEmployee[l.EmployeeID] = append(linksByEmployee[l.EmployeeID], l)
	}

	for i := range employees {
		e := &employees[i]
		e.Department = deptByID[e.DepartmentID]
		e.Position = posByID[e.PositionID]
		e.Salary = salByID[e.SalaryID]
		e.Skill = skillByID[e.SkillID]
		e.PhoneNumbers = phonesByEmployee[e.EmployeeID]
		e.Addresses = linksByEmployee[e.EmployeeID]
	}
	return nil
}
