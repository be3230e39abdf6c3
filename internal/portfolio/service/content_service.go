package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/validation"
)

// ContentService is the single entry point for reading and writing portfolio
// content. It validates every write and hides which backend is in use.
type ContentService struct {
	store    repository.Store
	validate *validation.Validator
	log      *logger.Logger
}

// NewContentService creates a new ContentService
func NewContentService(store repository.Store, v *validation.Validator, log *logger.Logger) *ContentService {
	if v == nil {
		v = validation.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ContentService{
		store:    store,
		validate: v,
		log:      log.With("component", "content_service", "backend", store.Backend()),
	}
}

// Ping checks that the backing store is reachable.
func (s *ContentService) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return s.storeFailure("ping", err)
	}
	return nil
}

// Backend names the storage backend in use.
func (s *ContentService) Backend() string {
	return s.store.Backend()
}

// Sections

// GetSection returns the active section of the given type.
func (s *ContentService) GetSection(ctx context.Context, sectionType string) (*domain.Section, error) {
	if !domain.IsSectionType(sectionType) {
		return nil, errors.Wrapf(domain.ErrNotFound, "section %q", sectionType)
	}

	sec, err := s.store.GetActiveSection(ctx, sectionType)
	if err != nil {
		return nil, s.classify("get_section", err, "section %q", sectionType)
	}
	return sec, nil
}

// ListSections returns every active section.
func (s *ContentService) ListSections(ctx context.Context) ([]domain.Section, error) {
	secs, err := s.store.ListActiveSections(ctx)
	if err != nil {
		return nil, s.storeFailure("list_sections", err)
	}
	return secs, nil
}

// UpdateSection replaces the content of an existing section and optionally
// toggles is_active. It never creates a section.
func (s *ContentService) UpdateSection(ctx context.Context, sectionType string, upd domain.SectionUpdate) (*domain.Section, error) {
	if !domain.IsSectionType(sectionType) {
		return nil, errors.Wrapf(domain.ErrNotFound, "section %q", sectionType)
	}
	if err := s.validate.SectionUpdate(&upd); err != nil {
		return nil, err
	}

	sec, err := s.store.UpdateSection(ctx, sectionType, upd)
	if err != nil {
		return nil, s.classify("update_section", err, "section %q", sectionType)
	}

	s.log.Info("section updated", "section_type", sectionType, "is_active", sec.IsActive)
	return sec, nil
}

// Skills

func (s *ContentService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := s.store.ListSkills(ctx)
	if err != nil {
		return nil, s.storeFailure("list_skills", err)
	}
	return skills, nil
}

func (s *ContentService) CreateSkill(ctx context.Context, skill domain.Skill) (*domain.Skill, error) {
	if err := s.validate.Skill(&skill); err != nil {
		return nil, err
	}
	if err := s.store.CreateSkill(ctx, &skill); err != nil {
		return nil, s.classify("create_skill", err, "skill %q", skill.ID)
	}
	return &skill, nil
}

// ReplaceSkill overwrites every field of an existing skill, keeping its id.
func (s *ContentService) ReplaceSkill(ctx context.Context, id string, skill domain.Skill) (*domain.Skill, error) {
	if err := s.validate.Skill(&skill); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceSkill(ctx, id, &skill); err != nil {
		return nil, s.classify("replace_skill", err, "skill %q", id)
	}
	return &skill, nil
}

func (s *ContentService) DeleteSkill(ctx context.Context, id string) error {
	if err := s.store.DeleteSkill(ctx, id); err != nil {
		return s.classify("delete_skill", err, "skill %q", id)
	}
	return nil
}

// Projects

func (s *ContentService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, s.storeFailure("list_projects", err)
	}
	return projects, nil
}

func (s *ContentService) CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if err := s.validate.Project(&p); err != nil {
		return nil, err
	}
	if err := s.store.CreateProject(ctx, &p); err != nil {
		return nil, s.classify("create_project", err, "project %q", p.ID)
	}
	return &p, nil
}

// ReplaceProject overwrites an existing project, keeping its id and created_at.
func (s *ContentService) ReplaceProject(ctx context.Context, id string, p domain.Project) (*domain.Project, error) {
	if err := s.validate.Project(&p); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceProject(ctx, id, &p); err != nil {
		return nil, s.classify("replace_project", err, "project %q", id)
	}
	return &p, nil
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return s.classify("delete_project", err, "project %q", id)
	}
	return nil
}

// Experience

func (s *ContentService) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	items, err := s.store.ListExperience(ctx)
	if err != nil {
		return nil, s.storeFailure("list_experience", err)
	}
	return items, nil
}

func (s *ContentService) CreateExperience(ctx context.Context, e domain.Experience) (*domain.Experience, error) {
	if err := s.validate.Experience(&e); err != nil {
		return nil, err
	}
	if err := s.store.CreateExperience(ctx, &e); err != nil {
		return nil, s.classify("create_experience", err, "experience %q", e.ID)
	}
	return &e, nil
}

// classify passes expected outcomes through with context and turns anything
// else into a logged StoreError.
func (s *ContentService) classify(op string, err error, format string, args ...interface{}) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		return errors.Wrapf(err, format, args...)
	}
	return s.storeFailure(op, err)
}

func (s *ContentService) storeFailure(op string, err error) error {
	s.log.Error("store operation failed", "op", op, "error", err)
	return &domain.StoreError{Op: op, Err: err}
}
