package service

import (
	"context"
	"time"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/repository"
)

// SalaryService translates between salary entities and DTOs. The natural key
// of a salary band is the (amount, start date, end date) triple and Create
// guards on all three.
type SalaryService struct {
	salaries *repository.SalaryRepository
	logs     *logger.Logs
}

// NewSalaryService creates the service.
func NewSalaryService(salaries *repository.SalaryRepository, logs *logger.Logs) *SalaryService {
	return &SalaryService{salaries: salaries, logs: logs}
}

// CreateSalary stores a salary band unless an identical one already exists.
func (s *SalaryService) CreateSalary(ctx context.Context, amount float64, startDate, endDate time.Time) *SalaryDto {
	exists := s.salaries.Exists(ctx, predicate.And(
		predicate.Eq("amount", amount),
		predicate.Eq("start_date", startDate),
		predicate.Eq("end_date", endDate),
	))
	if exists {
		return nil
	}
	created := s.salaries.Create(ctx, &domain.SalaryEntity{
		Amount:    amount,
		StartDate: startDate,
		EndDate:   endDate,
	})
	return toSalaryDto(created)
}

// GetOneSalary returns the first salary band matching pred, or nil.
func (s *SalaryService) GetOneSalary(ctx context.Context, pred predicate.Predicate) *SalaryDto {
	return toSalaryDto(s.salaries.GetOne(ctx, pred))
}

// GetSalaries returns up to take salary bands matching pred. Failures
// surface as an empty result.
func (s *SalaryService) GetSalaries(ctx context.Context, pred predicate.Predicate, take int) []SalaryDto {
	salaries, err := s.salaries.Get(ctx, pred, take)
	if err != nil {
		s.logs.LogToFile(err.Error(), "SalaryService - GetSalaries")
		return []SalaryDto{}
	}
	return toSalaryDtos(salaries)
}

// GetAllSalaries returns every salary band.
func (s *SalaryService) GetAllSalaries(ctx context.Context) []SalaryDto {
	return toSalaryDtos(s.salaries.GetAll(ctx))
}

// UpdateSalary rewrites the band identified by updated.ID. A zero amount is
// rejected with a warning.
func (s *SalaryService) UpdateSalary(ctx context.Context, updated UpdatedSalaryDto) *SalaryDto {
	if updated.Amount == 0 {
		s.logs.LogWarning("amount is zero during salary update", "SalaryService - UpdateSalary")
		return nil
	}
	entity, err := s.salaries.Update(ctx, predicate.Eq("salary_id", updated.ID),
		&domain.SalaryEntity{
			Amount:    updated.Amount,
			StartDate: updated.StartDate,
			EndDate:   updated.EndDate,
		})
	if err != nil {
		s.logs.LogToFile(err.Error(), "SalaryService - UpdateSalary")
		return nil
	}
	return toSalaryDto(entity)
}

// DeleteSalary removes the first salary band matching pred.
func (s *SalaryService) DeleteSalary(ctx context.Context, pred predicate.Predicate) bool {
	deleted, err := s.salaries.Delete(ctx, pred)
	if err != nil {
		s.logs.LogToFile(err.Error(), "SalaryService - DeleteSalary")
		return false
	}
	return deleted
}
