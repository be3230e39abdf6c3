package repository

// schemaStatements are run one at a time so they also work with drivers that
// reject multi-statement queries.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS portfolio_sections (
		id           TEXT PRIMARY KEY,
		section_type TEXT NOT NULL,
		content      JSONB NOT NULL,
		is_active    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS portfolio_sections_section_type_key
		ON portfolio_sections (section_type)`,
	`CREATE TABLE IF NOT EXISTS tech_skills (
		id               TEXT PRIMARY KEY,
		seq              BIGSERIAL NOT NULL,
		name             TEXT NOT NULL,
		category         TEXT NOT NULL,
		icon             TEXT,
		proficiency      INTEGER NOT NULL,
		years_experience INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id            TEXT PRIMARY KEY,
		seq           BIGSERIAL NOT NULL,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL,
		tech_stack    JSONB NOT NULL,
		github_url    TEXT,
		live_demo_url TEXT,
		image_url     TEXT,
		featured      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS experience (
		id           TEXT PRIMARY KEY,
		seq          BIGSERIAL NOT NULL,
		title        TEXT NOT NULL,
		company      TEXT NOT NULL,
		location     TEXT NOT NULL,
		start_date   TEXT,
		end_date     TEXT,
		description  TEXT NOT NULL,
		technologies JSONB NOT NULL DEFAULT '[]'::jsonb,
		is_current   BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}
