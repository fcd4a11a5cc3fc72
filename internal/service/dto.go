package service

import (
	"fmt"
	"time"

	"github.com/staffdesk/employee_directory/internal/domain"
)

// Transfer objects consumed by the handlers. Conversion between entities and
// DTOs is always through the named functions below, never implicit, and every
// function tolerates nil input.

type DepartmentDto struct {
	ID             int    `json:"id"`
	DepartmentName string `json:"department_name"`
}

type PositionDto struct {
	ID           int    `json:"id"`
	PositionName string `json:"position_name"`
}

type SkillDto struct {
	ID        int    `json:"id"`
	SkillName string `json:"skill_name"`
}

type SalaryDto struct {
	ID        int       `json:"id"`
	Amount    float64   `json:"amount"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type AddressDto struct {
	ID           int    `json:"id"`
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
}

// EmployeeDto is the flattened display shape: lookup names and the salary
// amount are inlined and the first linked address is rendered as one line.
type EmployeeDto struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	BirthDate      time.Time `json:"birth_date"`
	Gender         string    `json:"gender"`
	DepartmentID   int       `json:"department_id"`
	PositionID     int       `json:"position_id"`
	SalaryID       int       `json:"salary_id"`
	SkillID        int       `json:"skill_id"`
	DepartmentName string    `json:"department_name"`
	PositionName   string    `json:"position_name"`
	SkillName      string    `json:"skill_name"`
	Salary         float64   `json:"salary"`
	Address        string    `json:"address"`
	PhoneNumbers   []string  `json:"phone_numbers"`
}

// CreateEmployeeRequest names the department, position and skill by value and
// the salary by amount; the service resolves each against existing records.
type CreateEmployeeRequest struct {
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	BirthDate      time.Time `json:"birth_date"`
	Gender         string    `json:"gender"`
	DepartmentName string    `json:"department_name"`
	PositionName   string    `json:"position_name"`
	SkillName      string    `json:"skill_name"`
	SalaryAmount   float64   `json:"salary_amount"`
}

// UpdatedEmployeeDto carries the editable employee fields for an update.
type UpdatedEmployeeDto struct {
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	BirthDate    time.Time `json:"birth_date"`
	Gender       string    `json:"gender"`
	DepartmentID int       `json:"department_id"`
	PositionID   int       `json:"position_id"`
	SalaryID     int       `json:"salary_id"`
	SkillID      int       `json:"skill_id"`
}

type UpdatedDepartmentDto struct {
	ID             int    `json:"id"`
	DepartmentName string `json:"department_name"`
}

type UpdatedPositionDto struct {
	ID           int    `json:"id"`
	PositionName string `json:"position_name"`
}

type UpdatedSkillDto struct {
	ID        int    `json:"id"`
	SkillName string `json:"skill_name"`
}

type UpdatedSalaryDto struct {
	ID        int       `json:"id"`
	Amount    float64   `json:"amount"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type UpdatedAddressDto struct {
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
}

func toDepartmentDto(e *domain.DepartmentEntity) *DepartmentDto {
	if e == nil {
		return nil
	}
	return &DepartmentDto{ID: e.DepartmentID, DepartmentName: e.DepartmentName}
}

func toDepartmentDtos(entities []domain.DepartmentEntity) []DepartmentDto {
	dtos := make([]DepartmentDto, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *toDepartmentDto(&entities[i]))
	}
	return dtos
}

func toPositionDto(e *domain.PositionEntity) *PositionDto {
	if e == nil {
		return nil
	}
	return &PositionDto{ID: e.PositionID, PositionName: e.PositionName}
}

func toPositionDtos(entities []domain.PositionEntity) []PositionDto {
	dtos := make([]PositionDto, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *toPositionDto(&entities[i]))
	}
	return dtos
}

func toSkillDto(e *domain.SkillEntity) *SkillDto {
	if e == nil {
		return nil
	}
	return &SkillDto{ID: e.SkillID, SkillName: e.SkillName}
}

func toSkillDtos(entities []domain.SkillEntity) []SkillDto {
	dtos := make([]SkillDto, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *toSkillDto(&entities[i]))
	}
	return dtos
}

func toSalaryDto(e *domain.SalaryEntity) *SalaryDto {
	if e == nil {
		return nil
	}
	return &SalaryDto{ID: e.SalaryID, Amount: e.Amount, StartDate: e.StartDate, EndDate: e.EndDate}
}

func toSalaryDtos(entities []domain.SalaryEntity) []SalaryDto {
	dtos := make([]SalaryDto, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *toSalaryDto(&entities[i]))
	}
	return dtos
}

func toAddressDto(e *domain.AddressEntity) *AddressDto {
	if e == nil {
		return nil
	}
	return &AddressDto{
		ID:           e.AddressID,
		StreetName:   e.StreetName,
		StreetNumber: e.StreetNumber,
		PostalCode:   e.PostalCode,
		City:         e.City,
	}
}

func toAddressDtos(entities []domain.AddressEntity) []AddressDto {
	dtos := make([]AddressDto, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *toAddressDto(&entities[i]))
	}
	return dtos
}

// formatAddress renders an address as a single display line.
func formatAddress(a *domain.AddressEntity) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%s %s, %s %s", a.StreetName, a.StreetNumber, a.PostalCode, a.City)
}

// toEmployeeDto flattens an eager-loaded employee. Missing navigation
// records leave their fields zero.
func toEmployeeDto(e *domain.EmployeeEntity) *EmployeeDto {
	if e == nil {
		return nil
	}
	dto := &EmployeeDto{
		ID:           e.EmployeeID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		BirthDate:    e.BirthDate,
		Gender:       e.Gender,
		DepartmentID: e.DepartmentID,
		PositionID:   e.PositionID,
		SalaryID:     e.SalaryID,
		SkillID:      e.SkillID,
	}
	if e.Department != nil {
		dto.DepartmentName = e.Department.DepartmentName
	}
	if e.Position != nil {
		dto.PositionName = e.Position.PositionName
	}
	if e.Skill != nil {
		dto.SkillName = e.Skill.SkillName
	}
	if e.Salary != nil {
		dto.Salary = e.Salary.Amount
	}
	if len(e.Addresses) > 0 {
		dto.Address = formatAddress(e.Addresses[0].Address)
	}
	for _, p := range e.PhoneNumbers {
		dto.PhoneNumbers = append(dto.PhoneNumbers, p.PhoneNumber)
	}
	return dto
}

func toEmployeeDtos(entities []domain.EmployeeEntity) []EmployeeDto {
	dtos := make([]EmployeeDto, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *toEmployeeDto(&entities[i]))
	}
	return dtos
}
