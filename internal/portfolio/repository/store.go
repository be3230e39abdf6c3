package repository

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

// Backend names accepted by configuration.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// SectionStore persists portfolio sections keyed by section type.
type SectionStore interface {
	SectionExists(ctx context.Context, sectionType string) (bool, error)
	GetActiveSection(ctx context.Context, sectionType string) (*domain.Section, error)
	ListActiveSections(ctx context.Context) ([]domain.Section, error)
	UpdateSection(ctx context.Context, sectionType string, upd domain.SectionUpdate) (*domain.Section, error)
}

// SkillStore persists skills.
type SkillStore interface {
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	CreateSkill(ctx context.Context, s *domain.Skill) error
	ReplaceSkill(ctx context.Context, id string, s *domain.Skill) error
	DeleteSkill(ctx context.Context, id string) error
}

// ProjectStore persists projects.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, p *domain.Project) error
	ReplaceProject(ctx context.Context, id string, p *domain.Project) error
	DeleteProject(ctx context.Context, id string) error
}

// ExperienceStore persists work history. Entries are create-only.
type ExperienceStore interface {
	ListExperience(ctx context.Context) ([]domain.Experience, error)
	CreateExperience(ctx context.Context, e *domain.Experience) error
}

// Seeder writes a default content batch. Sections already present for a
// type are left untouched.
type Seeder interface {
	Seed(ctx context.Context, batch domain.SeedBatch) (domain.SeedResult, error)
}

// Store is the full capability set a storage backend must provide. Both
// implementations return identical records for identical logical state.
type Store interface {
	SectionStore
	SkillStore
	ProjectStore
	ExperienceStore
	Seeder

	Backend() string
	Ping(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	Close() error
}

// Option configures a store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stamp normalizes a timestamp to what PostgreSQL can round-trip so both
// backends serialize the same value.
func stamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*PostgresStore)(nil)
)
