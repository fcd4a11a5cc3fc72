package domain

import "time"

// AddressEntity represents the addresses table.
type AddressEntity struct {
	AddressID    int    `json:"address_id" db:"address_id"`
	StreetName   string `json:"street_name" db:"street_name"`
	StreetNumber string `json:"street_number" db:"street_number"`
	PostalCode   string `json:"postal_code" db:"postal_code"`
	City         string `json:"city" db:"city"`

	// Link rows referencing this address, populated by eager loading only.
	EmployeeAddresses []EmployeeAddressEntity `json:"employee_addresses,omitempty" db:"-"`
}

func (a *AddressEntity) Table() string { return "addresses" }
func (a *AddressEntity) Key() string   { return "address_id" }
func (a *AddressEntity) ID() int       { return a.AddressID }
func (a *AddressEntity) SetID(id int)  { a.AddressID = id }
func (a *AddressEntity) Columns() []string {
	return []string{"address_id", "street_name", "street_number", "postal_code", "city"}
}
func (a *AddressEntity) Values() []any {
	return []any{a.AddressID, a.StreetName, a.StreetNumber, a.PostalCode, a.City}
}
func (a *AddressEntity) Dest() []any {
	return []any{&a.AddressID, &a.StreetName, &a.StreetNumber, &a.PostalCode, &a.City}
}

// DepartmentEntity represents the departments table.
type DepartmentEntity struct {
	DepartmentID   int    `json:"department_id" db:"department_id"`
	DepartmentName string `json:"department_name" db:"department_name"`

	Employees []EmployeeEntity `json:"employees,omitempty" db:"-"`
}

func (d *DepartmentEntity) Table() string { return "departments" }
func (d *DepartmentEntity) Key() string   { return "department_id" }
func (d *DepartmentEntity) ID() int       { return d.DepartmentID }
func (d *DepartmentEntity) SetID(id int)  { d.DepartmentID = id }
func (d *DepartmentEntity) Columns() []string {
	return []string{"department_id", "department_name"}
}
func (d *DepartmentEntity) Values() []any {
	return []any{d.DepartmentID, d.DepartmentName}
}
func (d *DepartmentEntity) Dest() []any {
	return []any{&d.DepartmentID, &d.DepartmentName}
}

// PositionEntity represents the positions table.
type PositionEntity struct {
	PositionID   int    `json:"position_id" db:"position_id"`
	PositionName string `json:"position_name" db:"position_name"`

	Employees []EmployeeEntity `json:"employees,omitempty" db:"-"`
}

func (p *PositionEntity) Table() string { return "positions" }
func (p *PositionEntity) Key() string   { return "position_id" }
func (p *PositionEntity) ID() int       { return p.PositionID }
func (p *PositionEntity) SetID(id int)  { p.PositionID = id }
func (p *PositionEntity) Columns() []string {
	return []string{"position_id", "position_name"}
}
func (p *PositionEntity) Values() []any {
	return []any{p.PositionID, p.PositionName}
}
func (p *PositionEntity) Dest() []any {
	return []any{&p.PositionID, &p.PositionName}
}

// SkillEntity represents the skills table.
type SkillEntity struct {
	SkillID   int    `json:"skill_id" db:"skill_id"`
	SkillName string `json:"skill_name" db:"skill_name"`

	Employees []EmployeeEntity `json:"employees,omitempty" db:"-"`
}

func (s *SkillEntity) Table() string { return "skills" }
func (s *SkillEntity) Key() string   { return "skill_id" }
func (s *SkillEntity) ID() int       { return s.SkillID }
func (s *SkillEntity) SetID(id int)  { s.SkillID = id }
func (s *SkillEntity) Columns() []string {
	return []string{"skill_id", "skill_name"}
}
func (s *SkillEntity) Values() []any {
	return []any{s.SkillID, s.SkillName}
}
func (s *SkillEntity) Dest() []any {
	return []any{&s.SkillID, &s.SkillName}
}

// SalaryEntity represents the salaries table.
type SalaryEntity struct {
	SalaryID  int       `json:"salary_id" db:"salary_id"`
	Amount    float64   `json:"amount" db:"amount"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`

	Employees []EmployeeEntity `json:"employees,omitempty" db:"-"`
}

func (s *SalaryEntity) Table() string { return "salaries" }
func (s *SalaryEntity) Key() string   { return "salary_id" }
func (s *SalaryEntity) ID() int       { return s.SalaryID }
func (s *SalaryEntity) SetID(id int)  { s.SalaryID = id }
func (s *SalaryEntity) Columns() []string {
	return []string{"salary_id", "amount", "start_date", "end_date"}
}
func (s *SalaryEntity) Values() []any {
	return []any{s.SalaryID, s.Amount, s.StartDate, s.EndDate}
}
func (s *SalaryEntity) Dest() []any {
	return []any{&s.SalaryID, &s.Amount, &s.StartDate, &s.EndDate}
}

// EmployeeEntity represents the employees table. Email is unique; the four
// foreign keys are mandatory and resolved against existing rows.
type EmployeeEntity struct {
	EmployeeID   int       `json:"employee_id" db:"employee_id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	BirthDate    time.Time `json:"birth_date" db:"birth_date"`
	Gender       string    `json:"gender" db:"gender"`
	DepartmentID int       `json:"department_id" db:"department_id"`
	PositionID   int       `json:"position_id" db:"position_id"`
	SalaryID     int       `json:"salary_id" db:"salary_id"`
	SkillID      int       `json:"skill_id" db:"skill_id"`

	// Navigation fields, populated by eager loading only.
	Department   *DepartmentEntity           `json:"department,omitempty" db:"-"`
	Position     *PositionEntity             `json:"position,omitempty" db:"-"`
	Salary       *SalaryEntity               `json:"salary,omitempty" db:"-"`
	Skill        *SkillEntity                `json:"skill,omitempty" db:"-"`
	PhoneNumbers []EmployeePhoneNumberEntity `json:"phone_numbers,omitempty" db:"-"`
	Addresses    []EmployeeAddressEntity     `json:"addresses,omitempty" db:"-"`
}

func (e *EmployeeEntity) Table() string { return "employees" }
func (e *EmployeeEntity) Key() string   { return "employee_id" }
func (e *EmployeeEntity) ID() int       { return e.EmployeeID }
func (e *EmployeeEntity) SetID(id int)  { e.EmployeeID = id }
func (e *EmployeeEntity) Columns() []string {
	return []string{
		"employee_id", "first_name", "last_name", "email", "birth_date",
		"gender", "department_id", "position_id", "salary_id", "skill_id",
	}
}
func (e *EmployeeEntity) Values() []any {
	return []any{
		e.EmployeeID, e.FirstName, e.LastName, e.Email, e.BirthDate,
		e.Gender, e.DepartmentID, e.PositionID, e.SalaryID, e.SkillID,
	}
}
func (e *EmployeeEntity) Dest() []any {
	return []any{
		&e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.BirthDate,
		&e.Gender, &e.DepartmentID, &e.PositionID, &e.SalaryID, &e.SkillID,
	}
}

// EmployeeAddressEntity is the join table between employees and addresses.
// The (employee_id, address_id) pair is unique.
type EmployeeAddressEntity struct {
	EmployeeAddressID int `json:"employee_address_id" db:"employee_address_id"`
	EmployeeID        int `json:"employee_id" db:"employee_id"`
	AddressID         int `json:"address_id" db:"address_id"`

	Employee *EmployeeEntity `json:"employee,omitempty" db:"-"`
	Address  *AddressEntity  `json:"address,omitempty" db:"-"`
}

func (ea *EmployeeAddressEntity) Table() string { return "employee_addresses" }
func (ea *EmployeeAddressEntity) Key() string   { return "employee_address_id" }
func (ea *EmployeeAddressEntity) ID() int       { return ea.EmployeeAddressID }
func (ea *EmployeeAddressEntity) SetID(id int)  { ea.EmployeeAddressID = id }
func (ea *EmployeeAddressEntity) Columns() []string {
	return []string{"employee_address_id", "employee_id", "address_id"}
}
func (ea *EmployeeAddressEntity) Values() []any {
	return []any{ea.EmployeeAddressID, ea.EmployeeID, ea.AddressID}
}
func (ea *EmployeeAddressEntity) Dest() []any {
	return []any{&ea.EmployeeAddressID, &ea.EmployeeID, &ea.AddressID}
}

// EmployeePhoneNumberEntity represents the employee_phone_numbers table.
// Phone numbers are globally unique and belong to exactly one employee.
type EmployeePhoneNumberEntity struct {
	PhoneNumberID int    `json:"phone_number_id" db:"phone_number_id"`
	PhoneNumber   string `json:"phone_number" db:"phone_number"`
	EmployeeID    int    `json:"employee_id" db:"employee_id"`

	Employee *EmployeeEntity `json:"employee,omitempty" db:"-"`
}

func (pn *EmployeePhoneNumberEntity) Table() string { return "employee_phone_numbers" }
func (pn *EmployeePhoneNumberEntity) Key() string   { return "phone_number_id" }
func (pn *EmployeePhoneNumberEntity) ID() int       { return pn.PhoneNumberID }
func (pn *EmployeePhoneNumberEntity) SetID(id int)  { pn.PhoneNumberID = id }
func (pn *EmployeePhoneNumberEntity) Columns() []string {
	return []string{"phone_number_id", "phone_number", "employee_id"}
}
func (pn *EmployeePhoneNumberEntity) Values() []any {
	return []any{pn.PhoneNumberID, pn.PhoneNumber, pn.EmployeeID}
}
func (pn *EmployeePhoneNumberEntity) Dest() []any {
	return []any{&pn.PhoneNumberID, &pn.PhoneNumber, &pn.EmployeeID}
}
