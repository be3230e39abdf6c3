package domain

import (
	"time"
)

// Section types. The set is closed; anything else is rejected on write and
// reported as not found on read.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionContact    = "contact"
)

// SectionTypes lists every section type in canonical display order.
var SectionTypes = []string{
	SectionHero,
	SectionAbout,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionContact,
}

// Skill categories.
const (
	CategoryLanguages  = "languages"
	CategoryFrameworks = "frameworks"
	CategoryDatabases  = "databases"
	CategoryCloud      = "cloud"
	CategoryTools      = "tools"
)

// IsSectionType reports whether t is one of the known section types.
func IsSectionType(t string) bool {
	return SectionOrder(t) >= 0
}

// SectionOrder returns the position of t in SectionTypes, or -1.
func SectionOrder(t string) int {
	for i, st := range SectionTypes {
		if st == t {
			return i
		}
	}
	return -1
}

// Section is a typed block of portfolio content. Content is free-form JSON.
type Section struct {
	ID          string                 `json:"id"`
	SectionType string                 `json:"section_type" validate:"required,oneof=hero about skills experience projects contact"`
	Content     map[string]interface{} `json:"content" validate:"required,min=1,nonul"`
	IsActive    bool                   `json:"is_active"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// SectionUpdate carries a partial section update. Content is replaced
// wholesale; IsActive is left untouched when nil.
type SectionUpdate struct {
	Content  map[string]interface{} `json:"content" validate:"required,min=1,nonul"`
	IsActive *bool                  `json:"is_active,omitempty"`
}

// Skill is a single technical skill.
type Skill struct {
	ID              string  `json:"id"`
	Name            string  `json:"name" validate:"required,min=1,max=100,nonul"`
	Category        string  `json:"category" validate:"required,oneof=languages frameworks databases cloud tools"`
	Icon            *string `json:"icon" validate:"omitempty,max=200,nonul"`
	Proficiency     int     `json:"proficiency" validate:"min=1,max=5"`
	YearsExperience *int    `json:"years_experience" validate:"omitempty,min=0,max=50"`
}

// Project is a showcased project.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required,min=1,max=200,nonul"`
	Description string    `json:"description" validate:"required,min=10,max=2000,nonul"`
	TechStack   []string  `json:"tech_stack" validate:"required,min=1,dive,nonul"`
	GithubURL   *string   `json:"github_url" validate:"omitempty,httpurl"`
	LiveDemoURL *string   `json:"live_demo_url" validate:"omitempty,httpurl"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,httpurl"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// Experience is a work history entry. EndDate is conventionally nil when
// IsCurrent is set, but that is not enforced.
type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required,min=1,max=200,nonul"`
	Company      string   `json:"company" validate:"required,min=1,max=200,nonul"`
	Location     string   `json:"location" validate:"required,min=1,max=200,nonul"`
	StartDate    *string  `json:"start_date" validate:"omitempty,yearmonth"`
	EndDate      *string  `json:"end_date" validate:"omitempty,yearmonth"`
	Description  string   `json:"description" validate:"required,min=10,max=2000,nonul"`
	Technologies []string `json:"technologies" validate:"omitempty,dive,nonul"`
	IsCurrent    bool     `json:"is_current"`
}

// SeedBatch is the set of records written by a single seed run.
type SeedBatch struct {
	Sections []Section
	Skills   []Skill
	Projects []Project
}

// SeedResult reports what a seed run actually inserted.
type SeedResult struct {
	Skipped  bool `json:"skipped"`
	Sections int  `json:"sections"`
	Skills   int  `json:"skills"`
	Projects int  `json:"projects"`
}

// TerminalCommand describes one command understood by the terminal UI.
type TerminalCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
	Section     string `json:"section"`
	IsAdmin     bool   `json:"is_admin"`
}
