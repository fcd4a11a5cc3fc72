package service

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/repository"
)

// SkillService translates between skill entities and DTOs with the
// create-if-not-exists guard on the skill name.
type SkillService struct {
	skills *repository.SkillRepository
	logs   *logger.Logs
}

// NewSkillService creates the service.
func NewSkillService(skills *repository.SkillRepository, logs *logger.Logs) *SkillService {
	return &SkillService{skills: skills, logs: logs}
}

// CreateSkill stores a skill under name unless one already exists.
func (s *SkillService) CreateSkill(ctx context.Context, name string) *SkillDto {
	if s.skills.Exists(ctx, predicate.Eq("skill_name", name)) {
		return nil
	}
	created := s.skills.Create(ctx, &domain.SkillEntity{SkillName: name})
	return toSkillDto(created)
}

// GetOneSkill returns the first skill matching pred, or nil.
func (s *SkillService) GetOneSkill(ctx context.Context, pred predicate.Predicate) *SkillDto {
	return toSkillDto(s.skills.GetOne(ctx, pred))
}

// GetSkills returns up to take skills matching pred. Failures surface as an
// empty result.
func (s *SkillService) GetSkills(ctx context.Context, pred predicate.Predicate, take int) []SkillDto {
	skills, err := s.skills.Get(ctx, pred, take)
	if err != nil {
		s.logs.LogToFile(err.Error(), "SkillService - GetSkills")
		return []SkillDto{}
	}
	return toSkillDtos(skills)
}

// GetAllSkills returns every skill.
func (s *SkillService) GetAllSkills(ctx context.Context) []SkillDto {
	return toSkillDtos(s.skills.GetAll(ctx))
}

// UpdateSkill renames the skill identified by updated.ID.
func (s *SkillService) UpdateSkill(ctx context.Context, updated UpdatedSkillDto) *SkillDto {
	if updated.SkillName == "" {
		s.logs.LogWarning("skill name is blank during skill update", "SkillService - UpdateSkill")
		return nil
	}
	entity, err := s.skills.Update(ctx, predicate.Eq("skill_id", updated.ID),
		&domain.SkillEntity{SkillName: updated.SkillName})
	if err != nil {
		s.logs.LogToFile(err.Error(), "SkillService - UpdateSkill")
		return nil
	}
	return toSkillDto(entity)
}

// DeleteSkill removes the first skill matching pred.
func (s *SkillService) DeleteSkill(ctx context.Context, pred predicate.Predicate) bool {
	deleted, err := s.skills.Delete(ctx, pred)
	if err != nil {
		s.logs.LogToFile(err.Error(), "SkillService - DeleteSkill")
		return false
	}
	return deleted
}
