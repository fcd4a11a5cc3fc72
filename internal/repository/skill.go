package repository

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage"
)

// SkillRepository eager-loads the employees holding each skill. GetAll
// swallows failures into an empty slice while Get propagates them; GetOne
// swallows into nil.
type SkillRepository struct {
	*Repository[domain.SkillEntity, *domain.SkillEntity]
	employees storage.Store[domain.EmployeeEntity]
}

// NewSkillRepository creates the repository over the skill table.
func NewSkillRepository(stores storage.Stores, logs *logger.Logs) *SkillRepository {
	return &SkillRepository{
		Repository: NewRepository[domain.SkillEntity, *domain.SkillEntity](
			stores.Skills, logs, "SkillRepository"),
		employees: stores.Employees,
	}
}

// GetAll returns every skill with its employees attached. Failures are
// logged and reported as an empty result.
func (r *SkillRepository) GetAll(ctx context.Context) []domain.SkillEntity {
	skills, err := r.Store().All(ctx)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "SkillRepository - GetAll")
		return []domain.SkillEntity{}
	}
	if err := r.attachEmployees(ctx, skills); err != nil {
		r.Logs().LogToFile(err.Error(), "SkillRepository - GetAll")
		return []domain.SkillEntity{}
	}
	return skills
}

// Get returns up to take matching skills with employees attached.
func (r *SkillRepository) Get(ctx context.Context, pred predicate.Predicate, take int) ([]domain.SkillEntity, error) {
	skills, err := r.Store().Find(ctx, pred, take)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "SkillRepository - Get")
		return nil, err
	}
	if err := r.attachEmployees(ctx, skills); err != nil {
		r.Logs().LogToFile(err.Error(), "SkillRepository - Get")
		return nil, err
	}
	return skills, nil
}

// GetOne returns the first matching skill with employees attached, or nil
// when none matches or on failure.
func (r *SkillRepository) GetOne(ctx context.Context, pred predicate.Predicate) *domain.SkillEntity {
	skill, err := r.Store().First(ctx, pred)
	if err != nil {
		r.Logs().LogToFile(err.Error(), "SkillRepository - GetOne")
		return nil
	}
	if skill == nil {
		return nil
	}
	one := []domain.SkillEntity{*skill}
	if err := r.attachEmployees(ctx, one); err != nil {
		r.Logs().LogToFile(err.Error(), "SkillRepository - GetOne")
		return nil
	}
	return &one[0]
}

func (r *SkillRepository) attachEmployees(ctx context.Context, skills []domain.SkillEntity) error {
	if len(skills) == 0 {
		return nil
	}
	ids := make([]int, len(skills))
	for i := range skills {
		ids[i] = skills[i].SkillID
	}
	employees, err := r.employees.Find(ctx, predicate.In("skill_id", keyArgs(ids)...), -1)
	if err != nil {
		return err
	}
	grouped := map[int][]domain.EmployeeEntity{}
	for _, e := range employees {
		grouped[e.SkillID] = append(grouped[e.SkillID], e)
	}
	for i := range skills {
		skills[i].Employees = grouped[skills[i].SkillID]
	}
	return nil
}
