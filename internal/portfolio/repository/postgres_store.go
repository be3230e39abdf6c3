package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

const uniqueViolation = "23505"

// PostgresStore keeps each entity kind in its own table. Free-form and list
// fields live in JSONB columns.
type PostgresStore struct {
	db   *sql.DB
	opts options
}

// NewPostgresStore creates a PostgresStore on an open database handle. The
// handle may come from either the lib/pq or the pgx stdlib driver.
func NewPostgresStore(db *sql.DB, opts ...Option) *PostgresStore {
	return &PostgresStore{db: db, opts: buildOptions(opts)}
}

func (r *PostgresStore) Backend() string { return BackendPostgres }

func (r *PostgresStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// EnsureSchema creates missing tables and indexes.
func (r *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresStore) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Sections

const sectionColumns = `id, section_type, content, is_active, created_at, updated_at`

func (r *PostgresStore) SectionExists(ctx context.Context, sectionType string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM portfolio_sections WHERE section_type = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, sectionType).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check section: %w", err)
	}
	return exists, nil
}

func (r *PostgresStore) GetActiveSection(ctx context.Context, sectionType string) (*domain.Section, error) {
	q := `SELECT ` + sectionColumns + `
FROM portfolio_sections
WHERE section_type = $1 AND is_active = TRUE`

	s, err := scanSection(r.db.QueryRowContext(ctx, q, sectionType))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return s, nil
}

func (r *PostgresStore) ListActiveSections(ctx context.Context) ([]domain.Section, error) {
	q := `SELECT ` + sectionColumns + `
FROM portfolio_sections
WHERE is_active = TRUE`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Section, 0, len(domain.SectionTypes))
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return domain.SectionOrder(out[i].SectionType) < domain.SectionOrder(out[j].SectionType)
	})
	return out, nil
}

func (r *PostgresStore) UpdateSection(ctx context.Context, sectionType string, upd domain.SectionUpdate) (*domain.Section, error) {
	q := `UPDATE portfolio_sections
SET content = $2, is_active = COALESCE($3, is_active), updated_at = GREATEST(created_at, $4)
WHERE section_type = $1
RETURNING ` + sectionColumns

	contentJSON, err := json.Marshal(upd.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}

	var active sql.NullBool
	if upd.IsActive != nil {
		active = sql.NullBool{Bool: *upd.IsActive, Valid: true}
	}

	s, err := scanSection(r.db.QueryRowContext(ctx, q, sectionType, string(contentJSON), active, stamp(r.opts.now)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	return s, nil
}

func scanSection(row rowScanner) (*domain.Section, error) {
	var s domain.Section
	var contentJSON []byte
	if err := row.Scan(&s.ID, &s.SectionType, &contentJSON, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(contentJSON, &s.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content: %w", err)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return &s, nil
}

// Skills

func (r *PostgresStore) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	const q = `
SELECT id, name, category, icon, proficiency, years_experience
FROM tech_skills
ORDER BY seq
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Skill, 0, 16)
	for rows.Next() {
		var s domain.Skill
		var icon sql.NullString
		var years sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &icon, &s.Proficiency, &years); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		s.Icon = stringPtr(icon)
		s.YearsExperience = intPtr(years)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return out, nil
}

func (r *PostgresStore) CreateSkill(ctx context.Context, s *domain.Skill) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return insertSkill(ctx, r.db, s)
}

func (r *PostgresStore) ReplaceSkill(ctx context.Context, id string, s *domain.Skill) error {
	const q = `
UPDATE tech_skills
SET name = $2, category = $3, icon = $4, proficiency = $5, years_experience = $6
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q, id, s.Name, s.Category, nullString(s.Icon), s.Proficiency, nullInt(s.YearsExperience))
	if err != nil {
		return fmt.Errorf("failed to replace skill: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *PostgresStore) DeleteSkill(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "tech_skills", id)
}

// Projects

func (r *PostgresStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, title, description, tech_stack, github_url, live_demo_url, image_url, featured, created_at
FROM projects
ORDER BY seq
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		var stackJSON []byte
		var github, demo, image sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &stackJSON, &github, &demo, &image, &p.Featured, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if err := json.Unmarshal(stackJSON, &p.TechStack); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tech_stack: %w", err)
		}
		p.GithubURL = stringPtr(github)
		p.LiveDemoURL = stringPtr(demo)
		p.ImageURL = stringPtr(image)
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return out, nil
}

func (r *PostgresStore) CreateProject(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = stamp(r.opts.now)
	return insertProject(ctx, r.db, p)
}

func (r *PostgresStore) ReplaceProject(ctx context.Context, id string, p *domain.Project) error {
	const q = `
UPDATE projects
SET title = $2, description = $3, tech_stack = $4, github_url = $5,
    live_demo_url = $6, image_url = $7, featured = $8
WHERE id = $1
RETURNING created_at
`
	stackJSON, err := json.Marshal(p.TechStack)
	if err != nil {
		return fmt.Errorf("failed to marshal tech_stack: %w", err)
	}

	var createdAt time.Time
	err = r.db.QueryRowContext(ctx, q, id, p.Title, p.Description, string(stackJSON),
		nullString(p.GithubURL), nullString(p.LiveDemoURL), nullString(p.ImageURL), p.Featured).
		Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to replace project: %w", err)
	}

	p.ID = id
	p.CreatedAt = createdAt.UTC()
	return nil
}

func (r *PostgresStore) DeleteProject(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "projects", id)
}

// Experience

func (r *PostgresStore) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	const q = `
SELECT id, title, company, location, start_date, end_date, description, technologies, is_current
FROM experience
ORDER BY seq
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Experience, 0, 8)
	for rows.Next() {
		var e domain.Experience
		var start, end sql.NullString
		var techJSON []byte
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &start, &end, &e.Description, &techJSON, &e.IsCurrent); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		e.StartDate = stringPtr(start)
		e.EndDate = stringPtr(end)
		if len(techJSON) > 0 {
			if err := json.Unmarshal(techJSON, &e.Technologies); err != nil {
				return nil, fmt.Errorf("failed to unmarshal technologies: %w", err)
			}
		}
		if e.Technologies == nil {
			e.Technologies = []string{}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	return out, nil
}

func (r *PostgresStore) CreateExperience(ctx context.Context, e *domain.Experience) error {
	const q = `
INSERT INTO experience (id, title, company, location, start_date, end_date, description, technologies, is_current)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	techJSON, err := json.Marshal(e.Technologies)
	if err != nil {
		return fmt.Errorf("failed to marshal technologies: %w", err)
	}

	_, err = r.db.ExecContext(ctx, q, e.ID, e.Title, e.Company, e.Location,
		nullString(e.StartDate), nullString(e.EndDate), e.Description, string(techJSON), e.IsCurrent)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// Seed writes the batch in one transaction. Sections whose type already
// exists are skipped.
func (r *PostgresStore) Seed(ctx context.Context, batch domain.SeedBatch) (domain.SeedResult, error) {
	const sectionQ = `
INSERT INTO portfolio_sections (id, section_type, content, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (section_type) DO NOTHING
`
	var res domain.SeedResult
	now := stamp(r.opts.now)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range batch.Sections {
		s := &batch.Sections[i]
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		s.CreatedAt, s.UpdatedAt = now, now

		contentJSON, err := json.Marshal(s.Content)
		if err != nil {
			return res, fmt.Errorf("failed to marshal content: %w", err)
		}
		result, err := tx.ExecContext(ctx, sectionQ, s.ID, s.SectionType, string(contentJSON), s.IsActive, s.CreatedAt, s.UpdatedAt)
		if err != nil {
			return res, fmt.Errorf("failed to seed section %s: %w", s.SectionType, err)
		}
		if n, err := result.RowsAffected(); err == nil && n > 0 {
			res.Sections++
		}
	}

	for i := range batch.Skills {
		s := &batch.Skills[i]
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		if err := insertSkill(ctx, tx, s); err != nil {
			return res, err
		}
		res.Skills++
	}

	for i := range batch.Projects {
		p := &batch.Projects[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		p.CreatedAt = now
		if err := insertProject(ctx, tx, p); err != nil {
			return res, err
		}
		res.Projects++
	}

	if err := tx.Commit(); err != nil {
		return domain.SeedResult{}, fmt.Errorf("failed to commit seed: %w", err)
	}
	return res, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertSkill(ctx context.Context, db execer, s *domain.Skill) error {
	const q = `
INSERT INTO tech_skills (id, name, category, icon, proficiency, years_experience)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := db.ExecContext(ctx, q, s.ID, s.Name, s.Category, nullString(s.Icon), s.Proficiency, nullInt(s.YearsExperience))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

func insertProject(ctx context.Context, db execer, p *domain.Project) error {
	const q = `
INSERT INTO projects (id, title, description, tech_stack, github_url, live_demo_url, image_url, featured, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	stackJSON, err := json.Marshal(p.TechStack)
	if err != nil {
		return fmt.Errorf("failed to marshal tech_stack: %w", err)
	}

	_, err = db.ExecContext(ctx, q, p.ID, p.Title, p.Description, string(stackJSON),
		nullString(p.GithubURL), nullString(p.LiveDemoURL), nullString(p.ImageURL), p.Featured, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// deleteByID removes one row. table is always a package constant.
func (r *PostgresStore) deleteByID(ctx context.Context, table, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueViolation recognises duplicate-key errors from either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}
